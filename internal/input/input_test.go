package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func feed(s *Stream, data string) {
	for i := 0; i < len(data); i++ {
		s.ch <- data[i]
	}
}

func TestReadInputParsesKeys(t *testing.T) {
	s := newStream()
	now := time.Unix(100, 0)
	s.now = func() time.Time { return now }

	feed(s, "\x1b[D  r")
	in := ReadInput(s)

	assert.True(t, in.Left)
	assert.False(t, in.Right)
	assert.True(t, in.Space)
	assert.True(t, in.Restart)
	assert.Equal(t, 2, in.Fire)
	assert.True(t, in.Any())
	assert.False(t, in.Escape, "an arrow key is not an escape press")
}

func TestKeysAreHeldBriefly(t *testing.T) {
	s := newStream()
	now := time.Unix(100, 0)
	s.now = func() time.Time { return now }

	feed(s, "d")
	assert.True(t, ReadInput(s).Right)

	now = now.Add(30 * time.Millisecond)
	in := ReadInput(s)
	assert.True(t, in.Right, "still inside the hold window")
	assert.Zero(t, in.Fire)
	assert.False(t, in.Any())

	now = now.Add(time.Second)
	assert.False(t, ReadInput(s).Right)
}

func TestResetKeyInput(t *testing.T) {
	s := newStream()
	now := time.Unix(100, 0)
	s.now = func() time.Time { return now }

	feed(s, " ")
	assert.True(t, ReadInput(s).Space)
	ResetKeyInput(s)
	assert.False(t, ReadInput(s).Space)
}

func TestClosedStreamStillReads(t *testing.T) {
	s := newStream()
	feed(s, "q")
	close(s.ch)

	in := ReadInput(s)
	assert.True(t, in.Quit)
	assert.Equal(t, []byte("q"), in.Pressed)
}
