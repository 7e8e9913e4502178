// Package audio synthesises the game's sound cues on the local speaker.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/nuggethunt/internal/game"
)

const sampleRate = beep.SampleRate(48000)

// Emitter plays cues through a mixer on the default output device.
// Until Init succeeds every Play is a no-op, so a host without a sound
// card still runs the game.
type Emitter struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	voices      map[game.Cue][]Tone
	initialized bool
	log         *log.Logger
}

// Compile-time check that Emitter implements game.AudioCues.
var _ game.AudioCues = (*Emitter)(nil)

// NewEmitter creates an emitter. Call Init before cues become audible.
func NewEmitter(logger *log.Logger) *Emitter {
	if logger == nil {
		logger = log.Default()
	}
	voices := make(map[game.Cue][]Tone)
	for _, cue := range []game.Cue{game.CueShoot, game.CueHit, game.CueBossHit, game.CueLaunch, game.CueWin} {
		voices[cue] = Tones(cue.String())
	}
	return &Emitter{
		mixer:  &beep.Mixer{},
		voices: voices,
		log:    logger,
	}
}

// Init opens the speaker and starts the mixer.
func (e *Emitter) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(e.mixer)
	e.initialized = true
	e.log.Debug("audio initialized", "rate", int(sampleRate))
	return nil
}

// Play implements game.AudioCues. Unknown cues are ignored.
func (e *Emitter) Play(cue game.Cue) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	tones := e.voices[cue]
	if len(tones) == 0 {
		return
	}

	streams := make([]beep.Streamer, len(tones))
	for i, t := range tones {
		streams[i] = NewToneStreamer(t, sampleRate)
	}
	speaker.Lock()
	e.mixer.Add(streams...)
	speaker.Unlock()
}

// Close silences everything still playing.
func (e *Emitter) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	e.initialized = false
}
