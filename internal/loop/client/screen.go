package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomz197/nuggethunt/internal/draw"
	"github.com/tomz197/nuggethunt/internal/game"
	"github.com/tomz197/nuggethunt/internal/loop/config"
)

// drawFrame draws the current frame.
func (c *Client) drawFrame(snapshot *game.Snapshot) error {
	// On phase or overlay transitions, do a full terminal clear
	// so text from the previous screen doesn't persist.
	phaseChanged := snapshot.Phase != c.state.prevPhase
	inactiveChanged := c.state.isInactive != c.state.wasInactive
	shutdownChanged := c.state.ShuttingDown != c.state.prevShutdown
	if phaseChanged || inactiveChanged || shutdownChanged {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
		c.state.prevPhase = snapshot.Phase
		c.state.wasInactive = c.state.isInactive
		c.state.prevShutdown = c.state.ShuttingDown
	}

	c.canvas.SetLogicalSize(snapshot.Screen.W(), snapshot.Screen.H())
	c.canvas.Clear()
	c.drawWorld(snapshot)

	c.canvas.Render(c.chunkWriter)
	c.canvas.RenderBorder(c.chunkWriter)

	c.drawTexts(snapshot)
	c.drawUI(snapshot)

	return c.chunkWriter.Flush()
}

// drawUI draws the overlay for the current phase.
func (c *Client) drawUI(snapshot *game.Snapshot) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if c.state.ShuttingDown {
		c.drawShutdownScreen(centerX, centerY)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(centerX, centerY)
		return
	}

	switch snapshot.Phase {
	case game.PhaseStart:
		c.drawStartScreen(centerX, centerY)
	case game.PhasePlaying, game.PhaseBossFight:
		c.drawPlayingHUD(termWidth, termHeight, snapshot)
	case game.PhaseBossIntro:
		c.drawPlayingHUD(termWidth, termHeight, snapshot)
		c.drawBossIntro(centerX, centerY)
	case game.PhaseWon, game.PhaseGameOver:
		c.drawEndScreen(centerX, centerY, snapshot)
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	cw := c.chunkWriter
	cw.WriteCentered(centerX, centerY-2, draw.ColorBold, "INACTIVITY WARNING")

	msg := fmt.Sprintf(
		"You have been idle for a while. Disconnecting in %d seconds.",
		int(config.InactivityDisconnectUser-time.Since(c.lastInput).Seconds()),
	)
	cw.WriteCentered(centerX, centerY, "", msg)
	cw.WriteCentered(centerX, centerY+2, "", "Press any key to continue")
}

var titleArt = []string{
	" _  _ _   _  ___  ___ ___ _____   _  _ _   _ _  _ _____ ",
	"| \\| | | | |/ __|/ __| __|_   _| | || | | | | \\| |_   _|",
	"| .` | |_| | (_ | (_ | _|  | |   | __ | |_| | .` | | |  ",
	"|_|\\_|\\___/ \\___|\\___|___| |_|   |_||_|\\___/|_|\\_| |_|  ",
}

var wonArt = []string{
	"__   _____  _   _  __      _____ _  _ ",
	"\\ \\ / / _ \\| | | | \\ \\    / /_ _| \\| |",
	" \\ V / (_) | |_| |  \\ \\/\\/ / | || .` |",
	"  |_| \\___/ \\___/    \\_/\\_/ |___|_|\\_|",
}

var gameOverArt = []string{
	"  ___   _   __  __ ___    _____   _____ ___ ",
	" / __| /_\\ |  \\/  | __|  / _ \\ \\ / / __| _ \\",
	"| (_ |/ _ \\| |\\/| | _|  | (_) \\ V /| _||   /",
	" \\___/_/ \\_\\_|  |_|___|  \\___/ \\_/ |___|_|_\\",
}

// drawArt writes a block of lines centred on centerX from row top.
func (c *Client) drawArt(art []string, centerX, top int, style string) {
	width := 0
	for _, line := range art {
		width = max(width, len(line))
	}
	for i, line := range art {
		c.chunkWriter.WriteStyled(centerX-width/2, top+i, style, line)
	}
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen(centerX, centerY int) {
	cw := c.chunkWriter
	top := centerY - 8
	c.drawArt(titleArt, centerX, top, draw.ParseHex(colorNugget).Foreground())

	cw.WriteCentered(centerX, top+len(titleArt)+1, "", "~ Shoot the nuggets before they fill the screen ~")

	controlsY := top + len(titleArt) + 3
	cw.WriteCentered(centerX, controlsY, draw.ColorBold, "Controls")
	controlLines := []string{
		"A D / < >  . .  Aim",
		"W / Up  . .  Centre",
		"SPACE  . . . . Fire",
		"R  . . . .  Restart",
		"Q  . . . . . . Quit",
	}
	for i, line := range controlLines {
		cw.WriteCentered(centerX, controlsY+1+i, "", line)
	}

	// Blinking start prompt
	if time.Now().UnixMilli()/600%2 == 0 {
		cw.WriteCentered(centerX, controlsY+len(controlLines)+2, draw.ColorBrightCyan, ">>  Press SPACE to Start  <<")
	}
	if c.players != nil {
		cw.WriteCentered(centerX, controlsY+len(controlLines)+4, "", fmt.Sprintf("Hunters online: %d", c.players()))
	}
}

// drawPlayingHUD draws the in-game HUD.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (c *Client) drawPlayingHUD(termWidth, termHeight int, s *game.Snapshot) {
	cw := c.chunkWriter

	cw.WriteAt(2, 1, fmt.Sprintf("Kills: %-4d Points: %-7d", s.Kills, s.Points))

	if s.Combo > 1 {
		cw.WriteStyled(2, 2, draw.ParseHex(colorBanana).Foreground(), fmt.Sprintf("Combo x%-3d", s.Combo))
	} else {
		cw.WriteAt(2, 2, strings.Repeat(" ", 10))
	}

	if s.Timed {
		secs := int(s.TimeLeft.Round(time.Second).Seconds())
		timeText := fmt.Sprintf("Time %02d:%02d", secs/60, secs%60)
		cw.WriteAt(termWidth-len(timeText)-1, 1, timeText)
	}

	if s.Phase == game.PhasePlaying {
		var progress string
		if s.WavePaused {
			progress = fmt.Sprintf("Nuggets %3d/%-3d  (wave cleared)", s.Spawned, s.Quota)
		} else {
			progress = fmt.Sprintf("Nuggets %3d/%-3d                ", s.Spawned, s.Quota)
		}
		cw.WriteAt(centerOf(termWidth, progress), 1, progress)
	}

	if s.Phase == game.PhaseBossFight && s.BossMaxHP > 0 {
		c.drawBossBar(termWidth, s.BossHP, s.BossMaxHP)
	}

	ammo := fmt.Sprintf("Ammo: %-6s", s.Ammo)
	cw.WriteAt(2, termHeight, ammo)
	if s.Buffed {
		buff := fmt.Sprintf("TRIPLE SHOT %4.1fs", s.BuffLeft.Seconds())
		cw.WriteStyled(termWidth-len(buff)-1, termHeight, draw.ParseHex(colorPowerUp).Foreground(), buff)
	} else {
		cw.WriteAt(termWidth-18, termHeight, strings.Repeat(" ", 17))
	}
}

func centerOf(termWidth int, s string) int {
	return max(termWidth/2-len(s)/2, 1)
}

// drawBossBar draws the boss health gauge under the top line.
func (c *Client) drawBossBar(termWidth, hp, maxHP int) {
	barWidth := min(40, termWidth-20)
	if barWidth < 5 {
		return
	}
	filled := barWidth * hp / maxHP
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	text := fmt.Sprintf("BOSS %s %3d/%d", bar, hp, maxHP)
	c.chunkWriter.WriteStyled(centerOf(termWidth, "BOSS  "+strings.Repeat(" ", barWidth)), 2,
		draw.ParseHex(colorApple).Foreground(), text)
}

// drawBossIntro flashes the boss warning.
func (c *Client) drawBossIntro(centerX, centerY int) {
	if time.Now().UnixMilli()/300%2 == 0 {
		c.chunkWriter.WriteCentered(centerX, centerY, draw.ColorBold+draw.ParseHex(colorApple).Foreground(), "!!  BOSS INCOMING  !!")
	} else {
		c.chunkWriter.WriteAt(centerX-11, centerY, strings.Repeat(" ", 22))
	}
}

// drawEndScreen draws the win or time-up screen.
func (c *Client) drawEndScreen(centerX, centerY int, s *game.Snapshot) {
	cw := c.chunkWriter
	top := centerY - 6

	art, hex := gameOverArt, colorApple
	if s.Phase == game.PhaseWon {
		art, hex = wonArt, colorNugget
	}
	c.drawArt(art, centerX, top, draw.ParseHex(hex).Foreground())

	cw.WriteCentered(centerX, top+len(art)+1, "", fmt.Sprintf("Kills: %d   Points: %d", s.Kills, s.Points))
	if s.Phase == game.PhaseGameOver {
		cw.WriteCentered(centerX, top+len(art)+3, "", "The timer ran out.")
	}

	if time.Now().UnixMilli()/600%2 == 0 {
		cw.WriteCentered(centerX, top+len(art)+5, draw.ColorBrightCyan, ">>  Press SPACE to Play Again  <<")
	}
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerX, centerY int) {
	cw := c.chunkWriter
	cw.WriteCentered(centerX, centerY-3, draw.ColorBold, "SERVER SHUTTING DOWN")
	cw.WriteCentered(centerX, centerY-1, "", "The server is restarting for maintenance.")
	cw.WriteCentered(centerX, centerY, "", "Please reconnect in a moment.")

	remaining := int(c.state.shutdownTimer) + 1
	cw.WriteCentered(centerX, centerY+2, "", fmt.Sprintf("Disconnecting in %d seconds...", remaining))
	cw.WriteCentered(centerX, centerY+4, "", "Press Q to disconnect now")
}
