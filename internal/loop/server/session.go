package server

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/nuggethunt/internal/config"
	"github.com/tomz197/nuggethunt/internal/game"
	loopconfig "github.com/tomz197/nuggethunt/internal/loop/config"
)

// Player is the interface frontends use to drive a session.
// Decouples the terminal and websocket clients from the concrete Session,
// which keeps them testable.
type Player interface {
	Send(cmd Command) bool
	Snapshot() *game.Snapshot
	Events() <-chan Event
}

// Compile-time check that Session implements Player.
var _ Player = (*Session)(nil)

// CommandType identifies an input command.
type CommandType int

const (
	CmdAim      CommandType = iota // X, Y: point to aim at
	CmdAimAngle                    // Angle: absolute turret angle
	CmdFire
	CmdStart
	CmdRestart
	CmdResize // Width, Height
)

// Command is one input for the session's game.
type Command struct {
	Type          CommandType
	X, Y          float64
	Angle         float64
	Width, Height int
}

// EventType identifies a notification leaving a session.
type EventType int

const (
	EventCue EventType = iota
	EventPhase
	EventScore
	EventBossHP
	EventTimeLeft
	EventServerShutdown
)

// Event is a HUD, audio or lifecycle notification.
type Event struct {
	Type     EventType
	Cue      game.Cue
	From, To game.Phase
	Kills    int
	Points   int
	BossHP   int
	BossMax  int
	TimeLeft time.Duration
}

// Session owns one game and runs its loop. Input arrives through a buffered
// command channel drained at the start of each tick; renderers read the
// latest snapshot through an atomic pointer.
type Session struct {
	ID       int
	Username string

	game     *game.Game
	snapshot atomic.Pointer[game.Snapshot]
	commands chan Command
	log      *log.Logger

	mu     sync.Mutex // guards events against close
	events chan Event
	closed bool
}

// SessionOption configures a Session.
type SessionOption func(*sessionOptions)

type sessionOptions struct {
	logger *log.Logger
	clock  func() time.Time
	width  int
	height int
}

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) SessionOption {
	return func(o *sessionOptions) { o.logger = l }
}

// WithClock replaces the game clock, for tests.
func WithClock(clock func() time.Time) SessionOption {
	return func(o *sessionOptions) { o.clock = clock }
}

// WithViewport sets the initial viewport size.
func WithViewport(width, height int) SessionOption {
	return func(o *sessionOptions) { o.width, o.height = width, height }
}

// NewSession creates a session around a fresh game in the START phase.
func NewSession(id int, username string, profile config.Profile, opts ...SessionOption) *Session {
	o := sessionOptions{
		logger: log.Default(),
		clock:  time.Now,
		width:  loopconfig.ViewWidth,
		height: loopconfig.ViewHeight,
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Session{
		ID:       id,
		Username: username,
		commands: make(chan Command, loopconfig.CommandBuffer),
		events:   make(chan Event, loopconfig.EventBuffer),
		log:      o.logger.With("session", id, "user", username),
	}
	s.game = game.New(profile,
		game.WithClock(o.clock),
		game.WithLogger(s.log),
		game.WithAudio(s),
		game.WithHUD(s),
		game.WithScreen(o.width, o.height),
	)
	s.snapshot.Store(s.game.Snapshot())
	return s
}

// Run ticks the game at the session tick rate until ctx is cancelled.
// The events channel is closed when Run returns.
func (s *Session) Run(ctx context.Context) {
	defer s.close()

	ticker := time.NewTicker(loopconfig.SessionTickTime)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Step()
		}
	}
}

// Step drains pending commands, runs one tick and publishes the snapshot.
// Run calls it on every tick; tests call it directly.
func (s *Session) Step() {
	s.applyCommands()
	s.game.Tick()
	s.snapshot.Store(s.game.Snapshot())
}

// Send queues a command. It reports false when the queue is full and the
// command was dropped.
func (s *Session) Send(cmd Command) bool {
	select {
	case s.commands <- cmd:
		return true
	default:
		return false
	}
}

// Snapshot returns the state published by the last tick.
func (s *Session) Snapshot() *game.Snapshot {
	return s.snapshot.Load()
}

// Events returns the notification channel. It is closed when Run returns.
func (s *Session) Events() <-chan Event {
	return s.events
}

// applyCommands feeds every queued command to the game.
func (s *Session) applyCommands() {
	for {
		select {
		case cmd := <-s.commands:
			s.apply(cmd)
		default:
			return
		}
	}
}

func (s *Session) apply(cmd Command) {
	switch cmd.Type {
	case CmdAim:
		s.game.HandleAimUpdate(cmd.X, cmd.Y)
	case CmdAimAngle:
		s.game.SetAimAngle(cmd.Angle)
	case CmdFire:
		s.game.HandleFireTrigger()
	case CmdStart:
		s.game.Start()
	case CmdRestart:
		s.game.Restart()
	case CmdResize:
		s.game.Resize(cmd.Width, cmd.Height)
	}
}

// notify delivers an event without blocking. Events are dropped when the
// consumer falls behind or the session is closed.
func (s *Session) notify(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.events <- ev:
	default:
	}
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.events)
}

// Play implements game.AudioCues.
func (s *Session) Play(cue game.Cue) {
	s.notify(Event{Type: EventCue, Cue: cue})
}

// ScoreChanged implements game.HUD.
func (s *Session) ScoreChanged(kills, points int) {
	s.notify(Event{Type: EventScore, Kills: kills, Points: points})
}

// BossHPChanged implements game.HUD.
func (s *Session) BossHPChanged(hp, maxHP int) {
	s.notify(Event{Type: EventBossHP, BossHP: hp, BossMax: maxHP})
}

// TimeLeftChanged implements game.HUD.
func (s *Session) TimeLeftChanged(left time.Duration) {
	s.notify(Event{Type: EventTimeLeft, TimeLeft: left})
}

// PhaseChanged implements game.HUD.
func (s *Session) PhaseChanged(from, to game.Phase) {
	s.notify(Event{Type: EventPhase, From: from, To: to})
}
