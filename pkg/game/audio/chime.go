// Package audio plays the short chimes for item pickups and winning.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	log "github.com/sirupsen/logrus"
)

const (
	sampleRate = beep.SampleRate(44100)

	noteDuration = 120 * time.Millisecond
	noteAttack   = 10 * time.Millisecond
	noteRelease  = 60 * time.Millisecond
)

// Note frequencies in Hz
var (
	pickupNotes = []float64{659.25, 987.77}                 // E5 B5
	winNotes    = []float64{523.25, 659.25, 783.99, 1046.5} // C5 E5 G5 C6
)

// tone is a sine note of fixed length
func tone(freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, fmt.Errorf("tone %v Hz: %w", freq, err)
	}
	return beep.Take(sampleRate.N(d), sine), nil
}

// envelope fades a streamer in and out to avoid clicks
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d time.Duration) *envelope {
	return &envelope{
		streamer: s,
		attack:   sampleRate.N(noteAttack),
		release:  sampleRate.N(noteRelease),
		total:    sampleRate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; remaining < e.release {
			vol = math.Max(0, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// chime plays notes one after another at the given volume (0..1)
func chime(notes []float64, volume float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		note, err := tone(freq, noteDuration)
		if err != nil {
			return nil, err
		}
		parts = append(parts, newEnvelope(note, noteDuration))
	}
	seq := beep.Seq(parts...)
	if volume <= 0 {
		return &effects.Volume{Streamer: seq, Base: 2, Silent: true}, nil
	}
	return &effects.Volume{Streamer: seq, Base: 2, Volume: math.Log2(volume)}, nil
}

// PickupChime returns the streamer for collecting an item
func PickupChime(volume float64) (beep.Streamer, error) {
	return chime(pickupNotes, volume)
}

// WinChime returns the streamer for collecting the last item
func WinChime(volume float64) (beep.Streamer, error) {
	return chime(winNotes, volume)
}

// Player plays chimes through the speaker. The zero value and a nil
// *Player are silent, so callers don't need to check whether sound is on.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a chime player; call Init before anything is heard
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the audio device
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops any sound still playing
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

func (p *Player) play(build func(volume float64) (beep.Streamer, error)) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s, err := build(p.volume)
	if err != nil {
		log.WithError(err).Warn("Cannot build chime")
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Pickup plays the pickup chime
func (p *Player) Pickup() {
	if p == nil {
		return
	}
	p.play(PickupChime)
}

// Win plays the win chime
func (p *Player) Win() {
	if p == nil {
		return
	}
	p.play(WinChime)
}
