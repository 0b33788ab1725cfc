package audio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// writeTestWav writes a short silent wav file usable as a real sample
func writeTestWav(t *testing.T, path string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	format := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
	n := sampleRate.N(10 * time.Millisecond)
	if err := wav.Encode(f, beep.Silence(n), format); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

// newTestStore builds a store with the given loop and texture names
func newTestStore(t *testing.T, loops, textures []string) *SampleStore {
	t.Helper()
	dir := t.TempDir()
	loopDir := filepath.Join(dir, "loops")
	texDir := filepath.Join(dir, "textures")
	os.MkdirAll(loopDir, 0o755)
	os.MkdirAll(texDir, 0o755)
	for _, name := range loops {
		writeTestWav(t, filepath.Join(loopDir, name))
	}
	for _, name := range textures {
		writeTestWav(t, filepath.Join(texDir, name))
	}
	st := NewSampleStore()
	st.Load(loopDir, PoolLoop)
	st.Load(texDir, PoolTexture)
	return st
}

func TestLoadSkipsCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	writeTestWav(t, filepath.Join(dir, "rain.wav"))
	writeTestWav(t, filepath.Join(dir, "fire.wav"))
	if err := os.WriteFile(filepath.Join(dir, "broken.wav"), []byte("not a wav"), 0o644); err != nil {
		t.Fatal(err)
	}

	st := NewSampleStore()
	loaded := st.Load(dir, PoolLoop)

	if loaded != 2 {
		t.Errorf("expected 2 loaded samples, got %d", loaded)
	}
	if st.Len(PoolLoop) != 2 {
		t.Errorf("expected pool size 2, got %d", st.Len(PoolLoop))
	}
	if _, ok := st.Get("broken.wav", PoolLoop); ok {
		t.Error("corrupt file should not be loaded")
	}
}

func TestLoadIgnoresUnsupportedExtensions(t *testing.T) {
	dir := t.TempDir()
	writeTestWav(t, filepath.Join(dir, "rain.wav"))
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644)

	st := NewSampleStore()
	if loaded := st.Load(dir, PoolLoop); loaded != 1 {
		t.Errorf("expected 1 loaded sample, got %d", loaded)
	}
}

func TestLoadMissingDirectory(t *testing.T) {
	st := NewSampleStore()
	if loaded := st.Load(filepath.Join(t.TempDir(), "nope"), PoolLoop); loaded != 0 {
		t.Errorf("expected 0 from missing dir, got %d", loaded)
	}
	if st.Len(PoolLoop) != 0 {
		t.Errorf("pool should stay empty, got %d", st.Len(PoolLoop))
	}
}

func TestLoadRescanIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeTestWav(t, filepath.Join(dir, "rain.wav"))

	st := NewSampleStore()
	st.Load(dir, PoolLoop)
	st.Load(dir, PoolLoop)

	if st.Len(PoolLoop) != 1 {
		t.Errorf("rescan should overwrite, got pool size %d", st.Len(PoolLoop))
	}
}

func TestPoolsAreIndependent(t *testing.T) {
	st := newTestStore(t, []string{"rain.wav"}, []string{"thunder.wav"})
	if _, ok := st.Get("rain.wav", PoolTexture); ok {
		t.Error("loop should not appear in texture pool")
	}
	if _, ok := st.Get("thunder.wav", PoolTexture); !ok {
		t.Error("texture missing from texture pool")
	}
}

func TestResolveTopic(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"rain_sounds.wav", "rain sounds"},
		{"Coffee-Shop.mp3", "coffee shop"},
		{"lofi.ogg", "lofi"},
		{"brown_noise.wav", "brown noise"},
	}
	for _, tt := range tests {
		if got := ResolveTopic(tt.filename); got != tt.want {
			t.Errorf("ResolveTopic(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestIcon(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"rain_sounds.wav", "🌧️"},
		{"coffee_shop.mp3", "☕"},
		{"sea_wave.ogg", "🌊"},
		{"mystery.wav", defaultIcon},
	}
	for _, tt := range tests {
		if got := Icon(tt.filename); got != tt.want {
			t.Errorf("Icon(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"rain_sounds.wav", "Rain Sounds"},
		{"lofi-beats.mp3", "Lofi Beats"},
		{"étude_ambience.wav", "Étude Ambience"},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.filename); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}
