// Package audio plays short collision cues through the system speaker.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager mixes collision cues. All Play methods are no-ops until
// Initialize succeeds, so a disabled or missing audio device is harmless.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// PlayBreak is the cue for a bullet breaking an asteroid
func (sm *SoundManager) PlayBreak() {
	sm.play(NewBurst(sampleRate, 220, 110, 150*time.Millisecond))
}

// PlayCrash is the cue for a ship hitting an asteroid
func (sm *SoundManager) PlayCrash() {
	sm.play(NewBurst(sampleRate, 90, 40, 400*time.Millisecond))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Burst is a sine sweep from one frequency to another with a linear fade out
type Burst struct {
	sr       beep.SampleRate
	from, to float64
	pos      int
	samples  int
	phase    float64
}

func NewBurst(sr beep.SampleRate, from, to float64, d time.Duration) *Burst {
	return &Burst{sr: sr, from: from, to: to, samples: sr.N(d)}
}

func (b *Burst) Stream(samples [][2]float64) (n int, ok bool) {
	if b.pos >= b.samples {
		return 0, false
	}
	for i := range samples {
		if b.pos >= b.samples {
			return i, true
		}
		progress := float64(b.pos) / float64(b.samples)
		freq := b.from + (b.to-b.from)*progress
		b.phase += 2 * math.Pi * freq / float64(b.sr)
		v := 0.3 * (1 - progress) * math.Sin(b.phase)
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
	}
	return len(samples), true
}

func (b *Burst) Err() error { return nil }
