package audio

import (
	"github.com/gopxl/beep"
)

// fader applies a linear gain ramp to a wrapped streamer and doubles as
// its lifecycle switch: once a fade to silence completes (or kill is
// called) the streamer reports drained, so the output mixer drops it.
// All mutation happens under the speaker lock.
type fader struct {
	s         beep.Streamer
	gain      float64
	target    float64
	step      float64 // per-sample gain delta, always > 0 while ramping
	endAtZero bool
	done      bool
}

// newFader wraps s, ramping from silence over fadeIn samples.
// A zero fadeIn starts at full gain.
func newFader(s beep.Streamer, fadeIn int) *fader {
	f := &fader{s: s, gain: 1, target: 1}
	if fadeIn > 0 {
		f.gain = 0
		f.step = 1 / float64(fadeIn)
	}
	return f
}

// fadeTo retargets the ramp to run over n samples. endAtZero marks the
// streamer drained once it reaches silence.
func (f *fader) fadeTo(target float64, n int, endAtZero bool) {
	f.target = target
	f.endAtZero = endAtZero && target <= 0
	if n <= 0 || f.gain == target {
		f.gain = target
		f.step = 0
		if f.endAtZero {
			f.done = true
		}
		return
	}
	delta := target - f.gain
	if delta < 0 {
		delta = -delta
	}
	f.step = delta / float64(n)
}

// kill drains the streamer immediately
func (f *fader) kill() {
	f.done = true
}

func (f *fader) Stream(samples [][2]float64) (int, bool) {
	if f.done {
		return 0, false
	}
	n, ok := f.s.Stream(samples)
	for i := 0; i < n; i++ {
		if f.step != 0 {
			if f.gain < f.target {
				f.gain += f.step
				if f.gain >= f.target {
					f.gain = f.target
					f.step = 0
				}
			} else {
				f.gain -= f.step
				if f.gain <= f.target {
					f.gain = f.target
					f.step = 0
				}
			}
		}
		if f.gain <= 0 && f.endAtZero {
			// Silence the rest of the chunk and drain on the next call
			for j := i; j < n; j++ {
				samples[j][0] = 0
				samples[j][1] = 0
			}
			f.done = true
			return n, true
		}
		samples[i][0] *= f.gain
		samples[i][1] *= f.gain
	}
	return n, ok
}

func (f *fader) Err() error {
	return f.s.Err()
}
