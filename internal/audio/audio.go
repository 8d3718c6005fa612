package audio

import (
	"log"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Manager owns the audio device and the floor-impact sound. Playback is
// best effort: a missing device or sound file mutes impacts without
// touching the simulation.
type Manager struct {
	mu     sync.Mutex
	impact rl.Sound
	ready  bool
}

// Init opens the audio device and loads the impact sound.
func Init(impactPath string) *Manager {
	m := &Manager{}

	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		log.Printf("Audio: device unavailable, impacts muted")
		return m
	}

	m.impact = rl.LoadSound(impactPath)
	if m.impact.FrameCount == 0 {
		log.Printf("Audio: could not load %s, impacts muted", impactPath)
		return m
	}

	m.ready = true
	return m
}

// PlayImpact plays the floor thud, scaled by the incoming speed so soft
// landings stay quiet.
func (m *Manager) PlayImpact(speed float32) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.ready {
		return
	}

	volume := speed / 12
	if volume > 1 {
		volume = 1
	}
	if volume < 0.05 {
		return // inaudible micro-bounces
	}
	rl.SetSoundVolume(m.impact, volume)
	rl.PlaySound(m.impact)
}

// Close releases the sound and the device.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ready {
		rl.UnloadSound(m.impact)
		m.ready = false
	}
	if rl.IsAudioDeviceReady() {
		rl.CloseAudioDevice()
	}
}
