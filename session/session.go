package session

import (
	"time"
)

// State is the session's terminal condition
type State int

const (
	StateRunning State = iota
	StateFinished
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateFinished:
		return "finished"
	case StateCancelled:
		return "cancelled"
	}
	return "running"
}

const (
	DefaultTickInterval = 100 * time.Millisecond
	DefaultVolumeStep   = 0.05
)

// VolumeController is the mixer surface the loop adjusts. Volume changes
// are absolute: the loop reads the current level and writes current±step.
type VolumeController interface {
	MasterVolume() float64
	SetMasterVolume(level float64)
}

// TickHandler gets one evaluation per tick (the texture scheduler)
type TickHandler interface {
	Tick(now time.Time)
}

// RenderFunc receives session progress once per tick, after input and
// scheduling. Must not block.
type RenderFunc func(elapsed, remaining time.Duration, volumePercent int)

// Config carries per-session parameters
type Config struct {
	Duration     time.Duration
	TickInterval time.Duration // defaults to DefaultTickInterval
	VolumeStep   float64       // defaults to DefaultVolumeStep
	Tasks        []string      // informational, up to 3
}

// Session runs the cooperative countdown loop. Within one tick: the
// time-up check, then input, then texture scheduling, then rendering,
// so a volume change is visible in the same tick's render.
type Session struct {
	volume   VolumeController
	textures TickHandler
	clock    Clock
	input    InputSource
	render   RenderFunc
	cfg      Config
}

// New creates a session. textures and render may be nil.
func New(volume VolumeController, textures TickHandler, clock Clock, input InputSource, render RenderFunc, cfg Config) *Session {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	if cfg.VolumeStep <= 0 {
		cfg.VolumeStep = DefaultVolumeStep
	}
	if input == nil {
		input = NoInput{}
	}
	return &Session{
		volume:   volume,
		textures: textures,
		clock:    clock,
		input:    input,
		render:   render,
		cfg:      cfg,
	}
}

// Run drives the loop until the duration elapses or a cancellation
// arrives (cancel channel or KeyCancel). Both exits return through the
// same path so the caller's shutdown sequence always runs exactly once.
func (s *Session) Run(cancel <-chan struct{}) (State, time.Duration) {
	start := s.clock.Now()
	for {
		// Cancellation is only honored at the tick boundary
		select {
		case <-cancel:
			return StateCancelled, s.clock.Now().Sub(start)
		default:
		}

		now := s.clock.Now()
		elapsed := now.Sub(start)
		if elapsed >= s.cfg.Duration {
			return StateFinished, elapsed
		}

		switch s.input.Poll() {
		case KeyVolumeUp:
			s.volume.SetMasterVolume(s.volume.MasterVolume() + s.cfg.VolumeStep)
		case KeyVolumeDown:
			s.volume.SetMasterVolume(s.volume.MasterVolume() - s.cfg.VolumeStep)
		case KeyCancel:
			return StateCancelled, elapsed
		}

		if s.textures != nil {
			s.textures.Tick(now)
		}

		if s.render != nil {
			s.render(elapsed, s.cfg.Duration-elapsed, volumePercent(s.volume.MasterVolume()))
		}

		s.clock.Sleep(s.cfg.TickInterval)
	}
}

func volumePercent(level float64) int {
	return int(level*100 + 0.5)
}
