package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/focusnoise/audio"
	"github.com/lixenwraith/focusnoise/config"
)

// newMenuFixture builds a menu over a store with one loop, default
// settings, and scripted input
func newMenuFixture(t *testing.T, input string) *Menu {
	t.Helper()
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "rain.wav"))
	if err != nil {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, beep.Silence(441), format); err != nil {
		t.Fatal(err)
	}
	f.Close()

	store := audio.NewSampleStore()
	store.Load(dir, audio.PoolLoop)

	cfgDir := t.TempDir()
	var out bytes.Buffer
	return NewMenu(strings.NewReader(input), &out, store, config.LoadSettings(cfgDir), config.LoadStats(cfgDir))
}

func TestParseSelection(t *testing.T) {
	names := []string{"cafe.wav", "fire.wav", "rain.wav"}
	tests := []struct {
		input string
		want  []string
	}{
		{"1", []string{"cafe.wav"}},
		{"1,3", []string{"cafe.wav", "rain.wav"}},
		{" 2 , 1 ", []string{"fire.wav", "cafe.wav"}},
		{"1,1,1", []string{"cafe.wav"}},
		{"4", nil},
		{"0", nil},
		{"x,y", nil},
		{"2,junk,3", []string{"fire.wav", "rain.wav"}},
	}
	for _, tt := range tests {
		if got := parseSelection(tt.input, names); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseSelection(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestChooseDurationMustBePositive(t *testing.T) {
	// lines: loop selection, duration, volume, first task
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"1\n-5\n\n\n", 25 * time.Minute},
		{"1\n0\n\n\n", 25 * time.Minute},
		{"1\n40\n\n\n", 40 * time.Minute},
	}
	for _, tt := range tests {
		m := newMenuFixture(t, tt.input)
		choice, ok := m.Choose()
		if !ok {
			t.Fatalf("Choose() with input %q backed out", tt.input)
		}
		if choice.Duration != tt.want {
			t.Errorf("Choose() with input %q gave duration %v, want %v", tt.input, choice.Duration, tt.want)
		}
	}
}

func TestNextFreqCycles(t *testing.T) {
	if nextFreq("low") != "medium" || nextFreq("medium") != "high" || nextFreq("high") != "low" {
		t.Error("weather frequency should cycle low -> medium -> high -> low")
	}
}
