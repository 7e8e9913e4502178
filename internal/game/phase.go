package game

import (
	"fmt"
	"time"
)

// Phase is the top-level game state.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseBossIntro
	PhaseBossFight
	PhaseWon
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "START"
	case PhasePlaying:
		return "PLAYING"
	case PhaseBossIntro:
		return "BOSS_INTRO"
	case PhaseBossFight:
		return "BOSS_FIGHT"
	case PhaseWon:
		return "WON"
	case PhaseGameOver:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Active reports whether the level is in progress.
func (p Phase) Active() bool {
	return p == PhasePlaying || p == PhaseBossIntro || p == PhaseBossFight
}

// Terminal reports whether only Restart leaves the phase.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseGameOver
}

// CanFire reports whether the fire trigger produces projectiles.
func (p Phase) CanFire() bool {
	return p == PhasePlaying || p == PhaseBossFight
}

// setPhase moves the world to a new phase and tells the HUD.
func (g *Game) setPhase(to Phase) {
	from := g.world.Phase
	if from == to {
		return
	}
	g.world.Phase = to
	g.log.Debug("phase changed", "from", from, "to", to, "tick", g.world.Tick)
	g.hud.PhaseChanged(from, to)
}

// checkPhase applies the transitions driven by aggregate world conditions.
// It runs after compaction, so dead enemies no longer count.
func (g *Game) checkPhase() {
	w := g.world
	switch w.Phase {
	case PhasePlaying:
		if g.spawner.QuotaReached() && len(w.Enemies) == 0 && w.Boss == nil {
			g.setPhase(PhaseBossIntro)
			g.spawner.ScheduleBoss(g)
		}
	case PhaseBossFight:
		if w.Boss == nil && len(w.Enemies) == 0 {
			g.setPhase(PhaseWon)
			w.cue(CueWin)
		}
	}
}

// countdown runs the timed-profile clock. Only active phases consume time.
func (g *Game) countdown(elapsed time.Duration) {
	if !g.profile.Timed() || !g.world.Phase.Active() {
		return
	}
	g.world.TimeLeft -= elapsed
	if g.world.TimeLeft <= 0 {
		g.world.TimeLeft = 0
		g.cancelDeferred()
		g.setPhase(PhaseGameOver)
	}
}
