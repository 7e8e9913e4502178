// Package input turns a raw terminal byte stream into per-frame key state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report key repeats, so a held arrow key arrives as a burst
// of presses; the hold window bridges the gaps between them.
const keyHoldDuration = 60 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	Left    bool
	Right   bool
	Up      bool
	Space   bool
	Enter   bool
	Restart bool
	Escape  bool
	Fire    int    // space presses seen this frame, one shot each
	Pressed []byte // raw bytes read this frame
}

// Any reports whether anything was typed this frame.
func (in Input) Any() bool {
	return len(in.Pressed) > 0
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit    time.Time
	left    time.Time
	right   time.Time
	up      time.Time
	space   time.Time
	enter   time.Time
	restart time.Time
	escape  time.Time
}

// Stream delivers input bytes via a channel and tracks key state across frames.
type Stream struct {
	ch    chan byte
	state keyState
	now   func() time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

func newStream() *Stream {
	return &Stream{
		ch:  make(chan byte, 128),
		now: time.Now,
	}
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
func ReadInput(s *Stream) Input {
	now := s.now()
	buf := drain(s.ch)

	fire := 0
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
				i += 2
				continue
			case 'C':
				s.state.right = now
				i += 2
				continue
			case 'D':
				s.state.left = now
				i += 2
				continue
			case 'B':
				i += 2
				continue
			}
		}

		if b == ' ' {
			fire++
		}
		applyByteToState(&s.state, b, now)
	}

	return Input{
		Quit:    now.Sub(s.state.quit) < keyHoldDuration,
		Left:    now.Sub(s.state.left) < keyHoldDuration,
		Right:   now.Sub(s.state.right) < keyHoldDuration,
		Up:      now.Sub(s.state.up) < keyHoldDuration,
		Space:   now.Sub(s.state.space) < keyHoldDuration,
		Enter:   now.Sub(s.state.enter) < keyHoldDuration,
		Restart: now.Sub(s.state.restart) < keyHoldDuration,
		Escape:  now.Sub(s.state.escape) < keyHoldDuration,
		Fire:    fire,
		Pressed: buf,
	}
}

// ResetKeyInput forgets held keys, so a key that started the game does not
// also count as gameplay input.
func ResetKeyInput(s *Stream) {
	s.state = keyState{}
}

// drain collects every byte already waiting on ch.
func drain(ch chan byte) []byte {
	var buf []byte
	for {
		select {
		case b, ok := <-ch:
			if !ok {
				return buf
			}
			buf = append(buf, b)
		default:
			return buf
		}
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		state.quit = now
	case 'a', 'A', 'h', 'H':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'k', 'K':
		state.up = now
	case 'r', 'R':
		state.restart = now
	case ' ':
		state.space = now
	case '\n', '\r':
		state.enter = now
	case '\x1b':
		state.escape = now
	}
}
