package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

const dateLayout = "2006-01-02"

// Stats holds lifetime focus statistics
type Stats struct {
	TotalSeconds    float64 `json:"total_seconds"`
	LastSessionDate string  `json:"last_session_date"` // YYYY-MM-DD, empty before the first session
	CurrentStreak   int     `json:"current_streak"`    // consecutive days with a session
}

// rank ladder, ordered by the hour threshold to reach it
var ranks = []struct {
	title string
	hours float64
}{
	{"Noob", 0},
	{"Novice", 1},
	{"Terminal Tourist", 5},
	{"Flow Apprentice", 10},
	{"Deep Work Specialist", 25},
	{"Cyber Monk", 50},
	{"Neural Architect", 75},
	{"Time Lord", 100},
}

// StatsStore persists Stats as JSON
type StatsStore struct {
	Stats
	path string
}

// LoadStats reads stats.json from dir, merging over zero-valued
// defaults. Corrupt files reset to empty stats.
func LoadStats(dir string) *StatsStore {
	st := &StatsStore{path: filepath.Join(dir, "stats.json")}
	data, err := os.ReadFile(st.path)
	if err != nil {
		return st
	}
	if err := json.Unmarshal(data, &st.Stats); err != nil {
		log.Printf("config: corrupt stats file %s: %v, resetting", st.path, err)
		st.Stats = Stats{}
	}
	return st
}

// RecordElapsed adds a finished session's seconds and updates the daily
// streak. Called exactly once at the end of the shutdown sequence.
func (st *StatsStore) RecordElapsed(seconds float64) {
	st.recordAt(seconds, time.Now())
}

func (st *StatsStore) recordAt(seconds float64, now time.Time) {
	if seconds <= 0 {
		return
	}

	today := now.Format(dateLayout)
	if st.LastSessionDate != today {
		last, err := time.Parse(dateLayout, st.LastSessionDate)
		if st.LastSessionDate == "" || err != nil {
			st.CurrentStreak = 1
		} else {
			nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
			days := int(nowDay.Sub(last).Hours() / 24)
			if days == 1 {
				st.CurrentStreak++
			} else if days > 1 {
				st.CurrentStreak = 1
			}
		}
		st.LastSessionDate = today
	}

	st.TotalSeconds += seconds
	st.save()
}

// save writes the stats back, best-effort
func (st *StatsStore) save() {
	data, err := json.MarshalIndent(st.Stats, "", "  ")
	if err != nil {
		return
	}
	if err := os.WriteFile(st.path, data, 0o644); err != nil {
		log.Printf("config: cannot save stats: %v", err)
	}
}

// RankTitle returns the highest rank reached by total focus hours
func (st *StatsStore) RankTitle() string {
	hours := st.TotalSeconds / 3600
	title := ranks[0].title
	for _, r := range ranks {
		if hours >= r.hours {
			title = r.title
		} else {
			break
		}
	}
	return title
}

// Display formats total time, streak and rank for the menu banner
func (st *StatsStore) Display() (total, streak, rank string) {
	sec := int(st.TotalSeconds)
	total = fmt.Sprintf("%dh %dm", sec/3600, sec%3600/60)

	plural := "s"
	if st.CurrentStreak == 1 {
		plural = ""
	}
	streak = fmt.Sprintf("%d Day%s", st.CurrentStreak, plural)

	return total, streak, st.RankTitle()
}
