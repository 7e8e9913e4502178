// Package config centralizes the session and terminal parameters.
package config

import "time"

// Logical viewport of a terminal session, in game pixels. The canvas scales
// it to whatever terminal the player has; the 4:3 ratio matches a terminal
// whose half-block cells are twice as tall as they are wide.
const (
	ViewWidth  = 1200
	ViewHeight = 900
)

// Max render resolution in terminal cells. Larger terminals get a centred,
// bordered render area.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 60
)

// Aim
const (
	AimStep     = 0.04 // radians per frame while a rotate key is held
	AimMinAngle = -3.1
	AimMaxAngle = -0.04
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
	ShutdownTimeout        = 15 * time.Second
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// Session tick rate
const (
	SessionTickRate = 60
	SessionTickTime = time.Second / SessionTickRate
)

// Channel sizes
const (
	CommandBuffer = 256
	EventBuffer   = 64
)
