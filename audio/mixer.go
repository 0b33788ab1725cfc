package audio

import (
	"log"
	"math"
	"sort"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const (
	sampleRate      = beep.SampleRate(44100)
	speakerBufferMs = 100
	resampleQuality = 4
)

// handle is one active looping playback
type handle struct {
	sample *Sample
	fade   *fader
	vol    *effects.Volume
	gain   float64 // per-handle multiplier, [0,1]
}

// Mixer owns the active loop set and the playback backend. All methods
// are meant to be called from a single goroutine; the speaker lock only
// guards against the audio backend's own streaming goroutine.
type Mixer struct {
	store  *SampleStore
	out    *beep.Mixer
	live   bool
	master float64
	active map[string]*handle
}

// NewMixer creates a mixer over the given store. It produces no sound
// until Start succeeds.
func NewMixer(store *SampleStore) *Mixer {
	return &Mixer{
		store:  store,
		out:    &beep.Mixer{},
		master: 1.0,
		active: make(map[string]*handle),
	}
}

// Start initializes the audio backend. On failure the mixer stays in
// silent mode: every operation keeps tracking state, without sound.
func (m *Mixer) Start() error {
	if err := speaker.Init(sampleRate, sampleRate.N(speakerBufferMs*time.Millisecond)); err != nil {
		return errors.Wrap(ErrNoBackend, err.Error())
	}
	m.live = true
	speaker.Play(m.out)
	return nil
}

// Close stops all playback and releases the backend
func (m *Mixer) Close() {
	if !m.live {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.live = false
}

// Live reports whether the backend produces sound
func (m *Mixer) Live() bool {
	return m.live
}

func (m *Mixer) lock() {
	if m.live {
		speaker.Lock()
	}
}

func (m *Mixer) unlock() {
	if m.live {
		speaker.Unlock()
	}
}

// StartLoop begins looped playback of a loop-pool sample, ramping from
// silence over fadeIn. Starting an already-playing name replaces the
// prior handle, so at most one handle exists per sample name.
func (m *Mixer) StartLoop(name string, fadeIn time.Duration) error {
	sample, ok := m.store.Get(name, PoolLoop)
	if !ok {
		return errors.Wrapf(ErrNotFound, "loop %q", name)
	}

	m.lock()
	if old, exists := m.active[name]; exists {
		old.fade.kill()
	}
	looped := m.rateAdjusted(beep.Loop(-1, sample.Streamer()), sample.Format().SampleRate)
	h := &handle{
		sample: sample,
		fade:   newFader(looped, sampleRate.N(fadeIn)),
		gain:   1.0,
	}
	h.vol = newVolume(h.fade, m.master*h.gain)
	if m.live {
		m.out.Add(h.vol)
	}
	m.unlock()

	m.active[name] = h
	return nil
}

// SetMasterVolume clamps level to [0,1], stores it and reapplies it to
// every active handle. Absolute, not a delta. Safe to call every tick.
func (m *Mixer) SetMasterVolume(level float64) {
	m.master = clamp(level)
	m.lock()
	for _, h := range m.active {
		setVolume(h.vol, m.master*h.gain)
	}
	m.unlock()
}

// MasterVolume returns the current master volume
func (m *Mixer) MasterVolume() float64 {
	return m.master
}

// SetLoopGain sets the per-handle multiplier for one active loop
func (m *Mixer) SetLoopGain(name string, gain float64) error {
	h, ok := m.active[name]
	if !ok {
		return errors.Wrapf(ErrNotFound, "active loop %q", name)
	}
	m.lock()
	h.gain = clamp(gain)
	setVolume(h.vol, m.master*h.gain)
	m.unlock()
	return nil
}

// StopAll fades every active loop to silence over fadeOut (immediately
// if zero) and empties the active set. Faded streamers drain on their
// own and are dropped by the output mixer.
func (m *Mixer) StopAll(fadeOut time.Duration) {
	m.lock()
	n := sampleRate.N(fadeOut)
	for _, h := range m.active {
		if n <= 0 {
			h.fade.kill()
			continue
		}
		h.fade.fadeTo(0, n, true)
	}
	m.unlock()
	m.active = make(map[string]*handle)
}

// PlayOneshot plays an effect or texture sample once at the given
// absolute volume. Unknown names are logged and ignored; one-shots
// never join the active set.
func (m *Mixer) PlayOneshot(name string, volume float64) {
	sample, ok := m.store.Get(name, PoolEffect)
	if !ok {
		sample, ok = m.store.Get(name, PoolTexture)
	}
	if !ok {
		log.Printf("audio: oneshot %q not loaded", name)
		return
	}
	if !m.live {
		return
	}

	s := m.rateAdjusted(sample.Streamer(), sample.Format().SampleRate)
	speaker.Lock()
	m.out.Add(newVolume(s, clamp(volume)))
	speaker.Unlock()
}

// ActiveNames returns a sorted snapshot of the active loop names
func (m *Mixer) ActiveNames() []string {
	names := make([]string, 0, len(m.active))
	for name := range m.active {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// rateAdjusted resamples s to the speaker rate when needed
func (m *Mixer) rateAdjusted(s beep.Streamer, from beep.SampleRate) beep.Streamer {
	if from == sampleRate {
		return s
	}
	return beep.Resample(resampleQuality, from, sampleRate, s)
}

// newVolume wraps s in a log-scaled volume control.
// math.Log2(0) is -Inf, so zero volume switches to Silent instead.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2, Silent: true}
	setVolume(v, vol)
	return v
}

func setVolume(v *effects.Volume, vol float64) {
	if vol <= 0 {
		v.Silent = true
		v.Volume = 0
		return
	}
	v.Silent = false
	v.Volume = math.Log2(vol)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
