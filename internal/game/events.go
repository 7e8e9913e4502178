package game

import (
	"fmt"
	"time"
)

// Cue identifies a sound the audio collaborator may play.
type Cue int

const (
	CueShoot Cue = iota
	CueHit
	CueBossHit
	CueLaunch
	CueWin
)

func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "SHOOT"
	case CueHit:
		return "HIT"
	case CueBossHit:
		return "BOSS_HIT"
	case CueLaunch:
		return "LAUNCH"
	case CueWin:
		return "WIN"
	default:
		return fmt.Sprintf("Cue(%d)", int(c))
	}
}

// AudioCues receives fire-and-forget sound notifications.
type AudioCues interface {
	Play(cue Cue)
}

// HUD receives the values the overlay shows. The game pushes a value only
// when it changes.
type HUD interface {
	ScoreChanged(kills, points int)
	BossHPChanged(hp, maxHP int)
	TimeLeftChanged(left time.Duration)
	PhaseChanged(from, to Phase)
}

type nopAudio struct{}

func (nopAudio) Play(Cue) {}

type nopHUD struct{}

func (nopHUD) ScoreChanged(int, int)         {}
func (nopHUD) BossHPChanged(int, int)        {}
func (nopHUD) TimeLeftChanged(time.Duration) {}
func (nopHUD) PhaseChanged(Phase, Phase)     {}
