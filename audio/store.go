package audio

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
	"github.com/pkg/errors"
)

// Sample is a decoded audio buffer. Buffers are read-only after load and
// may be shared by any number of concurrently playing streamers.
type Sample struct {
	Name string
	Pool Pool

	buf *beep.Buffer
}

// Format returns the native format of the decoded buffer
func (s *Sample) Format() beep.Format {
	return s.buf.Format()
}

// Streamer returns a fresh streamer over the whole buffer
func (s *Sample) Streamer() beep.StreamSeeker {
	return s.buf.Streamer(0, s.buf.Len())
}

// SampleStore owns all decoded samples, keyed by filename within a pool
type SampleStore struct {
	pools [poolCount]map[string]*Sample
}

// NewSampleStore creates an empty store
func NewSampleStore() *SampleStore {
	st := &SampleStore{}
	for i := range st.pools {
		st.pools[i] = make(map[string]*Sample)
	}
	return st
}

// Load scans dir non-recursively and decodes every supported audio file
// into the given pool. Individual decode failures are logged and skipped.
// A missing directory leaves the pool untouched. Re-scanning overwrites
// entries for files still present. Returns the number of files loaded.
func (st *SampleStore) Load(dir string, pool Pool) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("audio: cannot read %s directory %s: %v", pool, dir, err)
		}
		return 0
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !supportedExt(entry.Name()) {
			continue
		}
		sample, err := decodeFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			log.Printf("audio: skipping %s: %v", entry.Name(), err)
			continue
		}
		sample.Name = entry.Name()
		sample.Pool = pool
		st.pools[pool][entry.Name()] = sample
		loaded++
	}
	return loaded
}

// Get looks up a sample by filename in one pool
func (st *SampleStore) Get(name string, pool Pool) (*Sample, bool) {
	s, ok := st.pools[pool][name]
	return s, ok
}

// Len returns the number of samples in a pool
func (st *SampleStore) Len(pool Pool) int {
	return len(st.pools[pool])
}

// Names returns the sorted filenames of a pool
func (st *SampleStore) Names(pool Pool) []string {
	names := make([]string, 0, len(st.pools[pool]))
	for name := range st.pools[pool] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// supportedExt reports whether the filename carries an allow-listed
// container extension
func supportedExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".wav", ".mp3", ".ogg":
		return true
	}
	return false
}

// decodeFile decodes one audio file fully into memory
func decodeFile(path string) (*Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "decode")
	}

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	streamer.Close()

	return &Sample{buf: buf}, nil
}
