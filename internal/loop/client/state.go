package client

import (
	"math"
	"time"

	"github.com/tomz197/nuggethunt/internal/draw"
	"github.com/tomz197/nuggethunt/internal/game"
	"github.com/tomz197/nuggethunt/internal/input"
)

// ClientState holds per-connection state that the game itself does not
// track: local aim, overlays and lifecycle timers.
type ClientState struct {
	Input         input.Input
	Aim           float64           // turret angle sent to the session
	Running       bool              // Client loop running
	ShuttingDown  bool              // Server announced shutdown
	termSizeFunc  draw.TermSizeFunc // Function to get terminal size
	delta         time.Duration     // Frame delta time (client-side)
	shutdownTimer float64           // Countdown before auto-disconnect on shutdown
	isInactive    bool              // Whether the client is in inactive warning state

	// Previous-frame values, used to clear the terminal on screen changes.
	prevPhase    game.Phase
	prevShutdown bool
	wasInactive  bool
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		Aim:       -math.Pi / 2,
		Running:   true,
		prevPhase: game.PhaseStart,
	}
}
