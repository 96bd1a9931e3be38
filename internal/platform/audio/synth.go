package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// blipGenerator generates a short harmonic-rich tone for gun fire.
type blipGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newBlipGenerator(sr beep.SampleRate, freq float64) *blipGenerator {
	return &blipGenerator{sr: sr, freq: freq}
}

func (g *blipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus two weaker harmonics for a harsher edge
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// Fast attack envelope to avoid clicks
		envelope := math.Min(float64(g.pos)/float64(g.sr)/0.005, 1.0)
		sample *= envelope * 0.25

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *blipGenerator) Err() error {
	return nil
}

// burstGenerator generates a decaying noise burst with a low rumble, used for
// explosions. decayRate controls how fast it fades; smaller lasts longer.
type burstGenerator struct {
	sr        beep.SampleRate
	decayRate float64
	pos       int
	seed      int64
}

func newBurstGenerator(sr beep.SampleRate, decayRate float64) *burstGenerator {
	return &burstGenerator{
		sr:        sr,
		decayRate: decayRate,
		seed:      time.Now().UnixNano(),
	}
}

func (g *burstGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * g.decayRate)

		// Cheap LCG noise, no allocation per sample
		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := 0.3 * math.Sin(2*math.Pi*70*t)

		sample := envelope * (0.3*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *burstGenerator) Err() error {
	return nil
}

// trackGenerator plays a looping arpeggio melody over a bass drone. Each
// track has its own note sequence and tempo.
type trackGenerator struct {
	sr          beep.SampleRate
	notes       []float64
	beatSamples int
	bassFreq    float64
	pos         int
}

// Note frequencies for the track melodies (A minor-ish).
var trackMelodies = [][]float64{
	{440.00, 523.25, 659.25, 523.25, 440.00, 392.00, 440.00, 329.63}, // Track 1
	{329.63, 392.00, 440.00, 523.25, 440.00, 523.25, 587.33, 523.25}, // Track 2
	{523.25, 440.00, 392.00, 329.63, 293.66, 329.63, 392.00, 440.00}, // Track 3
}

// newTrackGenerator builds the generator for a 1-based track number.
// Returns nil for a track with no melody.
func newTrackGenerator(sr beep.SampleRate, track int) *trackGenerator {
	if track < 1 || track > len(trackMelodies) {
		return nil
	}

	tempo := time.Millisecond * time.Duration(350+50*track)
	return &trackGenerator{
		sr:          sr,
		notes:       trackMelodies[track-1],
		beatSamples: sr.N(tempo),
		bassFreq:    55 * float64(track),
	}
}

func (g *trackGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	loopSamples := g.beatSamples * len(g.notes)
	for i := range samples {
		loopPos := g.pos % loopSamples
		note := g.notes[loopPos/g.beatSamples]
		beatPos := loopPos % g.beatSamples
		t := float64(g.pos) / float64(g.sr)

		// Per-note envelope: pluck attack, gentle release
		env := 1.0
		attack := g.sr.N(time.Millisecond * 10)
		release := g.beatSamples / 4
		if beatPos < attack {
			env = float64(beatPos) / float64(attack)
		} else if beatPos > g.beatSamples-release {
			env = float64(g.beatSamples-beatPos) / float64(release)
		}

		melody := 0.12 * env * math.Sin(2*math.Pi*note*t)
		bass := 0.08 * math.Sin(2*math.Pi*g.bassFreq*t)

		sample := melody + bass
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *trackGenerator) Err() error {
	return nil
}
