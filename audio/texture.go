package audio

import (
	"math/rand"
	"strings"
	"time"
)

// TextureMap associates a loop theme with the overlay textures that fit
// it. Read-only.
var TextureMap = map[string][]string{
	"Brown Noise":   {"keyboard.mp3", "page-turn.mp3", "vinyl-crackle.mp3"},
	"City":          {"distant-ambulance-siren.mp3", "distant-train.mp3", "bike-bell.mp3", "door-open-close-with-bell.mp3"},
	"Coffee Shop":   {"espresso-steam.mp3", "pouring-coffee.mp3", "spoon-and-cup.mp3", "cup-and-saucer.mp3", "cash-register.mp3"},
	"Fire":          {"page-turn.mp3", "vinyl-crackle.mp3", "crickets.mp3", "owl.mp3", "winter-wind.mp3"},
	"Flowing Water": {"frog.mp3", "wind-chimes.mp3", "distant-thunder.mp3"},
	"Gentle Rain":   {"distant-thunder.mp3", "winter-wind.mp3", "wind-chimes.mp3"},
	"Lofi":          {"vinyl-crackle.mp3", "keyboard.mp3", "page-turn.mp3", "big-bell.mp3"},
	"Omm":           {"big-bell.mp3", "wind-chimes.mp3"},
	"Rain Sounds":   {"distant-thunder.mp3", "winter-wind.mp3"},
	"Sea Wave":      {"seagull.mp3", "distant-foghorn.mp3", "winter-wind.mp3"},
}

// Texture one-shot volume relative to master
const (
	textureVolumeMin = 0.3
	textureVolumeMax = 0.6
)

// cadence presets, selected before a session starts
var cadenceRanges = map[string][2]time.Duration{
	"low":    {60 * time.Second, 120 * time.Second},
	"medium": {30 * time.Second, 90 * time.Second},
	"high":   {15 * time.Second, 45 * time.Second},
}

// texturePlayer is the mixer surface the scheduler needs
type texturePlayer interface {
	ActiveNames() []string
	MasterVolume() float64
	PlayOneshot(name string, volume float64)
}

// TextureScheduler overlays short texture one-shots on the running loops
// at a randomized cadence. It never fires while no loop is active, and
// redraws its interval after every trigger whether or not a texture was
// found to play.
type TextureScheduler struct {
	player texturePlayer
	rng    *rand.Rand

	minInterval  time.Duration
	maxInterval  time.Duration
	lastTrigger  time.Time
	nextInterval time.Duration
}

// NewTextureScheduler creates a scheduler with the named cadence preset
// (low, medium or high; unknown presets fall back to medium)
func NewTextureScheduler(player texturePlayer, preset string, rng *rand.Rand, now time.Time) *TextureScheduler {
	r, ok := cadenceRanges[strings.ToLower(preset)]
	if !ok {
		r = cadenceRanges["medium"]
	}
	ts := &TextureScheduler{
		player:      player,
		rng:         rng,
		minInterval: r[0],
		maxInterval: r[1],
		lastTrigger: now,
	}
	ts.nextInterval = ts.draw()
	return ts
}

// Tick evaluates the trigger rule once. Called every session tick.
func (ts *TextureScheduler) Tick(now time.Time) {
	if now.Sub(ts.lastTrigger) <= ts.nextInterval {
		return
	}
	ts.trigger()
	ts.lastTrigger = now
	ts.nextInterval = ts.draw()
}

// trigger picks and plays one texture matching the active loops
func (ts *TextureScheduler) trigger() {
	loops := ts.player.ActiveNames()
	if len(loops) == 0 {
		return
	}

	candidates := ts.candidates(loops)
	if len(candidates) == 0 {
		return
	}

	name := candidates[ts.rng.Intn(len(candidates))]
	vol := ts.player.MasterVolume() * (textureVolumeMin + ts.rng.Float64()*(textureVolumeMax-textureVolumeMin))
	ts.player.PlayOneshot(name, vol)
}

// candidates collects every texture whose theme key loosely matches an
// active loop's topic. The match is bidirectional substring containment,
// deliberately tolerant of naming mismatches between loop files and
// theme keys.
func (ts *TextureScheduler) candidates(loops []string) []string {
	var out []string
	for _, loop := range loops {
		topic := ResolveTopic(loop)
		for key, textures := range TextureMap {
			k := strings.ToLower(key)
			if strings.Contains(topic, k) || strings.Contains(k, topic) {
				out = append(out, textures...)
			}
		}
	}
	return out
}

// draw picks the next interval uniformly from the preset range
func (ts *TextureScheduler) draw() time.Duration {
	span := ts.maxInterval - ts.minInterval
	if span <= 0 {
		return ts.minInterval
	}
	return ts.minInterval + time.Duration(ts.rng.Int63n(int64(span)))
}
