package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveTriangle
	WaveSawtooth
	WaveSquare
)

// Ramp is how a value moves from its start to its end over a tone.
type Ramp int

const (
	RampHold Ramp = iota // stays at the start value
	RampLinear
	RampExp // start and end must be positive
)

// Tone is one oscillator voice with a pitch glide and a gain envelope.
type Tone struct {
	Wave     Wave
	FromHz   float64
	ToHz     float64
	Glide    Ramp
	Gain     float64
	GainEnd  float64
	Envelope Ramp
	Delay    time.Duration // silence before the tone starts
	Length   time.Duration
}

// Tones returns the voices that make up a cue.
func Tones(name string) []Tone {
	switch name {
	case "SHOOT":
		return []Tone{{
			Wave: WaveTriangle, FromHz: 600, ToHz: 100, Glide: RampExp,
			Gain: 0.5, GainEnd: 0.01, Envelope: RampExp,
			Length: 150 * time.Millisecond,
		}}
	case "HIT":
		return []Tone{{
			Wave: WaveSawtooth, FromHz: 150, ToHz: 50, Glide: RampLinear,
			Gain: 0.5, GainEnd: 0.01, Envelope: RampExp,
			Length: 100 * time.Millisecond,
		}}
	case "BOSS_HIT":
		return []Tone{{
			Wave: WaveSquare, FromHz: 100, ToHz: 100, Glide: RampHold,
			Gain: 0.8, GainEnd: 0.01, Envelope: RampExp,
			Length: 200 * time.Millisecond,
		}}
	case "LAUNCH":
		return []Tone{{
			Wave: WaveSine, FromHz: 200, ToHz: 400, Glide: RampLinear,
			Gain: 0.1, GainEnd: 0, Envelope: RampLinear,
			Length: 300 * time.Millisecond,
		}}
	case "WIN":
		// Rising major arpeggio, one note every 100ms.
		notes := []float64{440, 554, 659, 880}
		out := make([]Tone, len(notes))
		for i, hz := range notes {
			out[i] = Tone{
				Wave: WaveTriangle, FromHz: hz, ToHz: hz, Glide: RampHold,
				Gain: 0.3, GainEnd: 0.001, Envelope: RampExp,
				Delay:  time.Duration(i) * 100 * time.Millisecond,
				Length: time.Second,
			}
		}
		return out
	}
	return nil
}

// toneStreamer renders a Tone as a finite beep.Streamer.
type toneStreamer struct {
	tone   Tone
	sr     beep.SampleRate
	delay  int
	length int
	pos    int
	phase  float64 // oscillator phase in cycles, [0, 1)
}

// NewToneStreamer returns a streamer that plays t once and then drains.
func NewToneStreamer(t Tone, sr beep.SampleRate) beep.Streamer {
	return &toneStreamer{
		tone:   t,
		sr:     sr,
		delay:  sr.N(t.Delay),
		length: max(sr.N(t.Length), 1),
	}
}

func (s *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	end := s.delay + s.length
	if s.pos >= end {
		return 0, false
	}
	for i := range samples {
		if s.pos >= end {
			return i, true
		}
		v := 0.0
		if s.pos >= s.delay {
			progress := float64(s.pos-s.delay) / float64(s.length)
			hz := ramp(s.tone.Glide, s.tone.FromHz, s.tone.ToHz, progress)
			s.phase += hz / float64(s.sr)
			s.phase -= math.Floor(s.phase)
			v = oscillate(s.tone.Wave, s.phase) * ramp(s.tone.Envelope, s.tone.Gain, s.tone.GainEnd, progress)
		}
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *toneStreamer) Err() error {
	return nil
}

func ramp(r Ramp, from, to, progress float64) float64 {
	switch r {
	case RampLinear:
		return from + (to-from)*progress
	case RampExp:
		return from * math.Pow(to/from, progress)
	default:
		return from
	}
}

// oscillate returns the wave value in [-1, 1] at phase p in [0, 1).
func oscillate(w Wave, p float64) float64 {
	switch w {
	case WaveTriangle:
		return 4*math.Abs(p-0.5) - 1
	case WaveSawtooth:
		return 2*p - 1
	case WaveSquare:
		if p < 0.5 {
			return 1
		}
		return -1
	default:
		return math.Sin(2 * math.Pi * p)
	}
}
