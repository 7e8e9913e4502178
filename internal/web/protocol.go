package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tomz197/nuggethunt/internal/game"
	"github.com/tomz197/nuggethunt/internal/loop/server"
)

// Message types. The first group travels client to server.
const (
	MsgAim     = "aim"
	MsgFire    = "fire"
	MsgStart   = "start"
	MsgRestart = "restart"
	MsgResize  = "resize"

	MsgSnapshot = "snapshot"
	MsgEvent    = "event"
)

// ErrUnknownMessage is returned for envelope types the server does not handle.
var ErrUnknownMessage = errors.New("unknown message type")

// Envelope wraps every message on the socket.
type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p,omitempty"`
}

// Aim is the point the turret should face, in viewport pixels.
type Aim struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Resize reports the browser canvas size.
type Resize struct {
	W int `json:"w"`
	H int `json:"h"`
}

// Encode wraps payload in an envelope of type t. A nil payload sends no "p".
func Encode(t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, errors.New("encode: empty envelope type")
	}
	e := Envelope{T: t}
	if payload != nil {
		pb, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", t, err)
		}
		e.P = pb
	}
	return json.Marshal(e)
}

// DecodeEnvelope parses the outer message.
func DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, errors.New("decode: empty message")
	}
	var e Envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	return e, nil
}

// DecodePayload parses the envelope payload as T.
func DecodePayload[T any](env Envelope) (T, error) {
	var out T
	if len(env.P) == 0 {
		return out, fmt.Errorf("empty payload for type %q", env.T)
	}
	if err := json.Unmarshal(env.P, &out); err != nil {
		return out, fmt.Errorf("decode %s payload: %w", env.T, err)
	}
	return out, nil
}

// CommandFor translates a client message into a session command.
func CommandFor(env Envelope) (server.Command, error) {
	switch env.T {
	case MsgAim:
		a, err := DecodePayload[Aim](env)
		if err != nil {
			return server.Command{}, err
		}
		return server.Command{Type: server.CmdAim, X: a.X, Y: a.Y}, nil
	case MsgFire:
		return server.Command{Type: server.CmdFire}, nil
	case MsgStart:
		return server.Command{Type: server.CmdStart}, nil
	case MsgRestart:
		return server.Command{Type: server.CmdRestart}, nil
	case MsgResize:
		r, err := DecodePayload[Resize](env)
		if err != nil {
			return server.Command{}, err
		}
		return server.Command{Type: server.CmdResize, Width: r.W, Height: r.H}, nil
	default:
		return server.Command{}, fmt.Errorf("%w: %q", ErrUnknownMessage, env.T)
	}
}

// Event is a session notification as the browser sees it.
type Event struct {
	Kind       string `json:"kind"`
	Cue        string `json:"cue,omitempty"`
	From       string `json:"from,omitempty"`
	To         string `json:"to,omitempty"`
	Kills      int    `json:"kills"`
	Points     int    `json:"points"`
	BossHP     int    `json:"bossHp"`
	BossMax    int    `json:"bossMax"`
	TimeLeftMs int64  `json:"timeLeftMs"`
}

// eventFor converts a session event for the wire.
func eventFor(ev server.Event) Event {
	switch ev.Type {
	case server.EventCue:
		return Event{Kind: "cue", Cue: ev.Cue.String()}
	case server.EventPhase:
		return Event{Kind: "phase", From: ev.From.String(), To: ev.To.String()}
	case server.EventScore:
		return Event{Kind: "score", Kills: ev.Kills, Points: ev.Points}
	case server.EventBossHP:
		return Event{Kind: "bossHp", BossHP: ev.BossHP, BossMax: ev.BossMax}
	case server.EventTimeLeft:
		return Event{Kind: "timeLeft", TimeLeftMs: ev.TimeLeft.Milliseconds()}
	case server.EventServerShutdown:
		return Event{Kind: "shutdown"}
	default:
		return Event{Kind: "unknown"}
	}
}

// Snapshot is the browser's view of one frame.
type Snapshot struct {
	Tick        uint64  `json:"tick"`
	Phase       string  `json:"phase"`
	W           int     `json:"w"`
	H           int     `json:"h"`
	ShakeX      float64 `json:"shakeX"`
	ShakeY      float64 `json:"shakeY"`
	Aim         float64 `json:"aim"`
	Ammo        string  `json:"ammo"`
	Buffed      bool    `json:"buffed"`
	BuffLeftMs  int64   `json:"buffLeftMs"`
	Kills       int     `json:"kills"`
	Points      int     `json:"points"`
	Combo       int     `json:"combo"`
	ComboLeftMs int64   `json:"comboLeftMs"`
	ComboSpanMs int64   `json:"comboSpanMs"`
	BossHP      int     `json:"bossHp"`
	BossMaxHP   int     `json:"bossMaxHp"`
	Timed       bool    `json:"timed"`
	TimeLeftMs  int64   `json:"timeLeftMs"`
	Spawned     int     `json:"spawned"`
	Quota       int     `json:"quota"`
	WavePaused  bool    `json:"wavePaused"`

	Enemies     []Enemy      `json:"enemies"`
	Projectiles []Projectile `json:"projectiles"`
	Particles   []Particle   `json:"particles"`
	PowerUps    []PowerUp    `json:"powerUps"`
	Texts       []Text       `json:"texts"`
	Stars       []Star       `json:"stars"`
}

type Enemy struct {
	Kind  string  `json:"kind"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	R     float64 `json:"r"`
	Rot   float64 `json:"rot"`
	HP    int     `json:"hp"`
	MaxHP int     `json:"maxHp"`
}

type Projectile struct {
	X     float64      `json:"x"`
	Y     float64      `json:"y"`
	R     float64      `json:"r"`
	Rot   float64      `json:"rot"`
	Ammo  string       `json:"ammo"`
	Trail [][2]float64 `json:"trail"`
}

type Particle struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	R     float64 `json:"r"`
	Life  float64 `json:"life"`
	Color string  `json:"color"`
}

type PowerUp struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	R     float64 `json:"r"`
	Rot   float64 `json:"rot"`
	Pulse float64 `json:"pulse"`
}

type Text struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Text  string  `json:"text"`
	Color string  `json:"color"`
	Life  float64 `json:"life"`
	Scale float64 `json:"scale"`
}

type Star struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Size       float64 `json:"size"`
	Brightness float64 `json:"brightness"`
}

func ms(d time.Duration) int64 {
	return d.Milliseconds()
}

// snapshotFor flattens a game snapshot for the wire.
func snapshotFor(s *game.Snapshot) Snapshot {
	out := Snapshot{
		Tick:        s.Tick,
		Phase:       s.Phase.String(),
		W:           s.Screen.Width,
		H:           s.Screen.Height,
		ShakeX:      s.ShakeX,
		ShakeY:      s.ShakeY,
		Aim:         s.AimAngle,
		Ammo:        s.Ammo.String(),
		Buffed:      s.Buffed,
		BuffLeftMs:  ms(s.BuffLeft),
		Kills:       s.Kills,
		Points:      s.Points,
		Combo:       s.Combo,
		ComboLeftMs: ms(s.ComboLeft),
		ComboSpanMs: ms(s.ComboSpan),
		BossHP:      s.BossHP,
		BossMaxHP:   s.BossMaxHP,
		Timed:       s.Timed,
		TimeLeftMs:  ms(s.TimeLeft),
		Spawned:     s.Spawned,
		Quota:       s.Quota,
		WavePaused:  s.WavePaused,

		Enemies:     make([]Enemy, 0, len(s.Enemies)),
		Projectiles: make([]Projectile, 0, len(s.Projectiles)),
		Particles:   make([]Particle, 0, len(s.Particles)),
		PowerUps:    make([]PowerUp, 0, len(s.PowerUps)),
		Texts:       make([]Text, 0, len(s.Texts)),
		Stars:       make([]Star, 0, len(s.Stars)),
	}
	for i := range s.Enemies {
		e := &s.Enemies[i]
		out.Enemies = append(out.Enemies, Enemy{
			Kind: e.Kind.String(), X: e.X, Y: e.Y, R: e.Radius(), Rot: e.Rotation,
			HP: e.HP, MaxHP: e.MaxHP,
		})
	}
	for i := range s.Projectiles {
		p := &s.Projectiles[i]
		pts := p.Trail.Points()
		trail := make([][2]float64, len(pts))
		for j, pt := range pts {
			trail[j] = [2]float64{pt.X, pt.Y}
		}
		out.Projectiles = append(out.Projectiles, Projectile{
			X: p.X, Y: p.Y, R: p.Radius(), Rot: p.Rotation, Ammo: p.Ammo.String(), Trail: trail,
		})
	}
	for i := range s.Particles {
		p := &s.Particles[i]
		out.Particles = append(out.Particles, Particle{X: p.X, Y: p.Y, R: p.Radius(), Life: p.Life, Color: p.Color})
	}
	for i := range s.PowerUps {
		p := &s.PowerUps[i]
		out.PowerUps = append(out.PowerUps, PowerUp{X: p.X, Y: p.Y, R: p.Radius(), Rot: p.Rotation, Pulse: p.Pulse})
	}
	for _, t := range s.Texts {
		out.Texts = append(out.Texts, Text{X: t.X, Y: t.Y, Text: t.Text, Color: t.Color, Life: t.Life, Scale: t.Scale})
	}
	for _, st := range s.Stars {
		out.Stars = append(out.Stars, Star{X: st.X, Y: st.Y, Size: st.Size, Brightness: st.Brightness})
	}
	return out
}
