// Package audio provides synthesized sound for the arcade: short combat cues
// and looping background tracks, all generated procedurally so the binary
// ships no sample assets.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager manages all game audio. All methods are safe to call before
// Initialize or after a failed Initialize; they become no-ops.
type SoundManager struct {
	mu            sync.Mutex
	mixer         *beep.Mixer
	trackStreamer *beep.Ctrl
	initialized   bool
	muted         bool
}

// NewSoundManager creates a new sound manager.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system. Failure leaves the manager in silent
// mode rather than blocking the game.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and silences the audio system.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if sm.trackStreamer != nil {
		sm.trackStreamer.Paused = true
	}
	sm.mixer.Clear()

	// beep has no speaker.Close; clearing the mixer is the shutdown path
	sm.initialized = false
}

// ToggleMute toggles the mute state, returning true if sound is now on.
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.trackStreamer != nil {
		sm.trackStreamer.Paused = sm.muted
	}
	return !sm.muted
}

// IsMuted returns the current mute state.
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// playable reports whether a cue should reach the mixer.
// Caller must hold mu.
func (sm *SoundManager) playable() bool {
	return sm.initialized && !sm.muted
}

// PlayShot plays the player's gun blip.
func (sm *SoundManager) PlayShot() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.playable() {
		return
	}
	streamer := beep.Take(sampleRate.N(time.Millisecond*80), newBlipGenerator(sampleRate, 880))
	sm.mixer.Add(streamer)
}

// PlayEnemyShot plays a lower-pitched blip for hostile fire.
func (sm *SoundManager) PlayEnemyShot() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.playable() {
		return
	}
	streamer := beep.Take(sampleRate.N(time.Millisecond*100), newBlipGenerator(sampleRate, 330))
	sm.mixer.Add(streamer)
}

// PlayExplosion plays the enemy-down burst.
func (sm *SoundManager) PlayExplosion() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.playable() {
		return
	}
	streamer := beep.Take(sampleRate.N(time.Millisecond*400), newBurstGenerator(sampleRate, 6))
	sm.mixer.Add(streamer)
}

// PlayCrash plays the longer burst for the player going down.
func (sm *SoundManager) PlayCrash() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.playable() {
		return
	}
	streamer := beep.Take(sampleRate.N(time.Millisecond*1200), newBurstGenerator(sampleRate, 2))
	sm.mixer.Add(streamer)
}

// StartTrack switches the looping background music to the given track number
// (1-based). The previous track stops; an unknown number stops music only.
func (sm *SoundManager) StartTrack(track int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if sm.trackStreamer != nil {
		sm.trackStreamer.Paused = true
		sm.trackStreamer = nil
	}

	// The generator streams its melody loop forever; Ctrl provides pause.
	gen := newTrackGenerator(sampleRate, track)
	if gen == nil {
		return
	}

	ctrl := &beep.Ctrl{Streamer: gen, Paused: sm.muted}
	sm.trackStreamer = ctrl
	sm.mixer.Add(ctrl)
}
