package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// wave returns one sample of the wave at phase in [0, 1).
func wave(w WaveType, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// SweepGenerator glides from one frequency to another over one second,
// then holds the end frequency. Wrap it in beep.Take to bound its length.
type SweepGenerator struct {
	sr        beep.SampleRate
	wave      WaveType
	from, to  float64
	amplitude float64
	phase     float64
	pos       int
}

// NewSweepGenerator creates a sweep generator. Equal from and to give a
// steady tone.
func NewSweepGenerator(sr beep.SampleRate, w WaveType, from, to, amplitude float64) *SweepGenerator {
	return &SweepGenerator{
		sr:        sr,
		wave:      w,
		from:      from,
		to:        to,
		amplitude: amplitude,
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := min(float64(g.pos)/float64(g.sr.N(time.Second)), 1)
		freq := g.from + (g.to-g.from)*t

		sample := g.amplitude * wave(g.wave, g.phase)
		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// NoiseGenerator produces white noise that decays exponentially.
type NoiseGenerator struct {
	sr        beep.SampleRate
	rng       *rand.Rand
	amplitude float64
	pos       int
}

// NewNoiseGenerator creates a noise generator. The seed makes the noise
// repeatable.
func NewNoiseGenerator(sr beep.SampleRate, seed int64, amplitude float64) *NoiseGenerator {
	return &NoiseGenerator{
		sr:        sr,
		rng:       rand.New(rand.NewSource(seed)), //#nosec G404 -- sound synthesis
		amplitude: amplitude,
	}
}

func (g *NoiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 12)
		sample := g.amplitude * envelope * (g.rng.Float64()*2 - 1)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseGenerator) Err() error {
	return nil
}

// ArpeggioGenerator plays a sequence of notes forever, one note per step.
// Each note gets a short decay so steps are audible.
type ArpeggioGenerator struct {
	sr        beep.SampleRate
	notes     []float64
	step      int
	amplitude float64
	phase     float64
	pos       int
}

// NewArpeggioGenerator creates an endless arpeggio over notes.
func NewArpeggioGenerator(sr beep.SampleRate, notes []float64, step time.Duration, amplitude float64) *ArpeggioGenerator {
	return &ArpeggioGenerator{
		sr:        sr,
		notes:     notes,
		step:      max(sr.N(step), 1),
		amplitude: amplitude,
	}
}

// Note returns the index of the note playing at sample pos.
func (g *ArpeggioGenerator) Note(pos int) int {
	if len(g.notes) == 0 {
		return 0
	}
	return (pos / g.step) % len(g.notes)
}

func (g *ArpeggioGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if len(g.notes) == 0 {
		for i := range samples {
			samples[i] = [2]float64{}
		}
		return len(samples), true
	}
	for i := range samples {
		freq := g.notes[g.Note(g.pos)]
		inStep := float64(g.pos%g.step) / float64(g.step)
		envelope := math.Exp(-inStep * 3)

		sample := g.amplitude * envelope * wave(WaveSquare, g.phase)
		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *ArpeggioGenerator) Err() error {
	return nil
}
