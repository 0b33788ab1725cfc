package session

import (
	"time"
)

const (
	DefaultChimeName   = "gong.mp3"
	DefaultChimeSettle = 4 * time.Second
)

// Player is the mixer surface the shutdown sequence drives
type Player interface {
	StopAll(fadeOut time.Duration)
	PlayOneshot(name string, volume float64)
	MasterVolume() float64
}

// Sequencer runs the fixed post-session sequence: fade the loops out,
// wait the fade window, ring the completion chime, let it finish, then
// report elapsed seconds. Every step is best-effort; the sequence runs
// exactly once per session regardless of how it ended.
type Sequencer struct {
	player Player
	clock  Clock

	FadeOut time.Duration
	Chime   string        // empty disables the chime
	Settle  time.Duration // wait for the chime to ring out
}

// NewSequencer creates a sequencer with the default chime
func NewSequencer(player Player, clock Clock, fadeOut time.Duration) *Sequencer {
	return &Sequencer{
		player:  player,
		clock:   clock,
		FadeOut: fadeOut,
		Chime:   DefaultChimeName,
		Settle:  DefaultChimeSettle,
	}
}

// Run executes the sequence and returns elapsed in seconds for stats
func (q *Sequencer) Run(elapsed time.Duration) float64 {
	q.player.StopAll(q.FadeOut)
	if q.FadeOut > 0 {
		q.clock.Sleep(q.FadeOut)
	}

	if q.Chime != "" {
		q.player.PlayOneshot(q.Chime, q.player.MasterVolume())
		if q.Settle > 0 {
			q.clock.Sleep(q.Settle)
		}
	}

	return elapsed.Seconds()
}
