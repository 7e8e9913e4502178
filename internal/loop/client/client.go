package client

import (
	"bufio"
	"io"
	"math"
	"time"

	"github.com/tomz197/nuggethunt/internal/draw"
	"github.com/tomz197/nuggethunt/internal/game"
	"github.com/tomz197/nuggethunt/internal/input"
	"github.com/tomz197/nuggethunt/internal/loop/config"
	"github.com/tomz197/nuggethunt/internal/loop/server"
)

// Client handles rendering and input for a single terminal connection.
type Client struct {
	player       server.Player
	state        *ClientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	lastInput    time.Time
	audio        game.AudioCues
	players      func() int
	termSizeFunc draw.TermSizeFunc
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	// Audio plays the session's sound cues locally. Nil means silent.
	Audio game.AudioCues
	// Players reports how many sessions are live, for the HUD. Optional.
	Players func() int
}

type silent struct{}

func (silent) Play(game.Cue) {}

// NewClient creates a client that plays through p.
func NewClient(p server.Player, r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	audio := opts.Audio
	if audio == nil {
		audio = silent{}
	}

	state := NewClientState()
	state.termSizeFunc = termSizeFunc

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.ViewWidth, config.ViewHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Client{
		player:       p,
		state:        state,
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		lastInput:    time.Now(),
		inputStream:  input.StartStream(r),
		audio:        audio,
		players:      opts.Players,
		termSizeFunc: termSizeFunc,
	}
}

// Run starts the client loop. Blocks until the player quits, goes idle for
// too long, or the session ends.
func (c *Client) Run() error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	lastTime := time.Now()

	for c.state.Running {
		frameStart := time.Now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		snapshot := c.player.Snapshot()

		c.processInput(snapshot)
		c.processServerEvents()
		c.updateScreen()

		if c.state.ShuttingDown {
			c.updateShutdownState()
		}

		if err := c.drawFrame(snapshot); err != nil {
			return err
		}

		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(c.writer)
	return nil
}

// processInput reads the keyboard and turns it into session commands.
func (c *Client) processInput(snapshot *game.Snapshot) {
	in := input.ReadInput(c.inputStream)
	c.state.Input = in

	if in.Any() {
		c.lastInput = time.Now()
		c.state.isInactive = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityDisconnectUser {
		c.state.Running = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityWarnUser {
		c.state.isInactive = true
	}

	if in.Quit {
		c.state.Running = false
		return
	}
	if c.state.ShuttingDown {
		return
	}

	if in.Restart {
		input.ResetKeyInput(c.inputStream)
		c.player.Send(server.Command{Type: server.CmdRestart})
		return
	}

	switch {
	case snapshot.Phase == game.PhaseStart:
		if in.Space || in.Enter {
			input.ResetKeyInput(c.inputStream)
			c.player.Send(server.Command{Type: server.CmdStart})
		}
	case snapshot.Phase.Terminal():
		if in.Space || in.Enter {
			input.ResetKeyInput(c.inputStream)
			c.player.Send(server.Command{Type: server.CmdRestart})
		}
	default:
		c.steer(in)
		for i := 0; i < in.Fire; i++ {
			c.player.Send(server.Command{Type: server.CmdFire})
		}
	}
}

// steer turns the turret while rotate keys are held.
func (c *Client) steer(in input.Input) {
	aim := c.state.Aim
	switch {
	case in.Up:
		aim = -math.Pi / 2
	case in.Left && !in.Right:
		aim -= config.AimStep
	case in.Right && !in.Left:
		aim += config.AimStep
	}
	aim = math.Max(config.AimMinAngle, math.Min(config.AimMaxAngle, aim))
	if aim != c.state.Aim {
		c.state.Aim = aim
		c.player.Send(server.Command{Type: server.CmdAimAngle, Angle: aim})
	}
}

// processServerEvents handles events from the session.
func (c *Client) processServerEvents() {
	for {
		select {
		case event, ok := <-c.player.Events():
			if !ok {
				c.state.Running = false
				return
			}
			switch event.Type {
			case server.EventCue:
				c.audio.Play(event.Cue)
			case server.EventServerShutdown:
				c.state.ShuttingDown = true
				c.state.shutdownTimer = config.ShutdownDisplaySeconds
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(max(termWidth, 1), config.MaxTermWidth)
	renderHeight = min(max(termHeight, 1), config.MaxTermHeight)
	offsetCol = max((termWidth-renderWidth)/2, 0)
	offsetRow = max((termHeight-renderHeight)/2, 0)
	return
}

// updateShutdownState handles the shutdown screen countdown.
func (c *Client) updateShutdownState() {
	c.state.shutdownTimer -= c.state.delta.Seconds()
	if c.state.shutdownTimer <= 0 {
		c.state.Running = false
	}
}
