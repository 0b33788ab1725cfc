// genassets writes placeholder noise loops into an empty assets
// directory so the player is usable before real recordings are added.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

const genSampleRate = beep.SampleRate(44100)

var (
	dirFlag     = flag.String("dir", "assets", "assets directory to populate")
	secondsFlag = flag.Int("seconds", 5, "length of each generated loop")
)

func main() {
	flag.Parse()

	if err := os.MkdirAll(*dirFlag, 0o755); err != nil {
		log.Fatalf("cannot create %s: %v", *dirFlag, err)
	}
	if !empty(*dirFlag) {
		fmt.Printf("Assets directory %q is not empty. Skipping generation.\n", *dirFlag)
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	files := []struct {
		name string
		gen  beep.Streamer
	}{
		{"brown_noise.wav", &brownNoise{rng: rng}},
		{"rain.wav", &pinkNoise{rng: rng}},
		{"cafe.wav", &whiteNoise{rng: rng}},
	}

	n := genSampleRate.N(time.Duration(*secondsFlag) * time.Second)
	for _, file := range files {
		if err := writeWav(filepath.Join(*dirFlag, file.name), beep.Take(n, file.gen)); err != nil {
			log.Fatalf("generate %s: %v", file.name, err)
		}
		fmt.Printf("Generated %s\n", file.name)
	}
}

func empty(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return true
	}
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), ".") {
			return false
		}
	}
	return true
}

func writeWav(path string, s beep.Streamer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	format := beep.Format{SampleRate: genSampleRate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, s, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// whiteNoise streams uniform noise
type whiteNoise struct {
	rng *rand.Rand
}

func (g *whiteNoise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := g.rng.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (g *whiteNoise) Err() error { return nil }

// brownNoise integrates white noise with a small leak so the walk stays
// bounded
type brownNoise struct {
	rng  *rand.Rand
	last float64
}

func (g *brownNoise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		g.last = (g.last + 0.02*(g.rng.Float64()*2-1)) / 1.02
		v := g.last * 3.5
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (g *brownNoise) Err() error { return nil }

// pinkNoise approximates 1/f noise with Paul Kellet's filter bank
type pinkNoise struct {
	rng                        *rand.Rand
	b0, b1, b2, b3, b4, b5, b6 float64
}

func (g *pinkNoise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		white := g.rng.Float64()*2 - 1
		g.b0 = 0.99886*g.b0 + white*0.0555179
		g.b1 = 0.99332*g.b1 + white*0.0750759
		g.b2 = 0.96900*g.b2 + white*0.1538520
		g.b3 = 0.86650*g.b3 + white*0.3104856
		g.b4 = 0.55000*g.b4 + white*0.5329522
		g.b5 = -0.7616*g.b5 - white*0.0168980
		v := (g.b0 + g.b1 + g.b2 + g.b3 + g.b4 + g.b5 + g.b6 + white*0.5362) * 0.11
		g.b6 = white * 0.115926
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (g *pinkNoise) Err() error { return nil }
