package session

import (
	"testing"
	"time"
)

// sequencePlayer records the shutdown call order
type sequencePlayer struct {
	calls  []string
	master float64
}

func (p *sequencePlayer) StopAll(fade time.Duration) {
	p.calls = append(p.calls, "stop_all")
}

func (p *sequencePlayer) PlayOneshot(name string, volume float64) {
	p.calls = append(p.calls, "oneshot:"+name)
}

func (p *sequencePlayer) MasterVolume() float64 { return p.master }

func TestSequencerRunsStepsInOrder(t *testing.T) {
	player := &sequencePlayer{master: 0.7}
	clock := NewMockClock(startTime())

	q := NewSequencer(player, clock, 2*time.Second)
	seconds := q.Run(90 * time.Second)

	want := []string{"stop_all", "oneshot:" + DefaultChimeName}
	if len(player.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", player.calls, want)
	}
	for i := range want {
		if player.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, player.calls[i], want[i])
		}
	}

	if seconds != 90 {
		t.Errorf("reported %v seconds, want 90", seconds)
	}

	// Fade window plus chime settle elapsed on the clock
	waited := clock.Now().Sub(startTime())
	if waited != 2*time.Second+DefaultChimeSettle {
		t.Errorf("slept %v, want %v", waited, 2*time.Second+DefaultChimeSettle)
	}
}

func TestSequencerWithoutChime(t *testing.T) {
	player := &sequencePlayer{master: 1}
	clock := NewMockClock(startTime())

	q := NewSequencer(player, clock, time.Second)
	q.Chime = ""
	q.Run(time.Minute)

	if len(player.calls) != 1 || player.calls[0] != "stop_all" {
		t.Errorf("calls = %v, want only stop_all", player.calls)
	}
	if waited := clock.Now().Sub(startTime()); waited != time.Second {
		t.Errorf("slept %v, want just the fade window", waited)
	}
}

func TestSequencerZeroFade(t *testing.T) {
	player := &sequencePlayer{master: 1}
	clock := NewMockClock(startTime())

	q := NewSequencer(player, clock, 0)
	q.Settle = 0
	q.Run(time.Minute)

	if waited := clock.Now().Sub(startTime()); waited != 0 {
		t.Errorf("slept %v with zero fade and settle, want 0", waited)
	}
}
