package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/focusnoise/audio"
	"github.com/lixenwraith/focusnoise/config"
)

const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiDim    = "\x1b[2m"
	ansiCyan   = "\x1b[36m"
	ansiYellow = "\x1b[33m"
	ansiRed    = "\x1b[31m"
)

// Choice is the outcome of the pre-session menu
type Choice struct {
	Loops    []string
	Duration time.Duration
	Volume   float64 // 0.0-1.0
	Tasks    []string
}

// Menu drives the pre-session selection prompts on plain stdin/stdout.
// The tcell screen only takes over once the session starts.
type Menu struct {
	in       *bufio.Scanner
	out      io.Writer
	store    *audio.SampleStore
	settings *config.SettingsStore
	stats    *config.StatsStore
}

// NewMenu creates a menu reading from in and writing to out
func NewMenu(in io.Reader, out io.Writer, store *audio.SampleStore, settings *config.SettingsStore, stats *config.StatsStore) *Menu {
	return &Menu{
		in:       bufio.NewScanner(in),
		out:      out,
		store:    store,
		settings: settings,
		stats:    stats,
	}
}

// Choose runs the selection flow. Returns false when the user backed
// out or input ended.
func (m *Menu) Choose() (*Choice, bool) {
	loops, ok := m.chooseLoops()
	if !ok {
		return nil, false
	}

	choice := &Choice{Loops: loops}
	minutes := m.promptFloat(
		fmt.Sprintf("Session Duration (minutes) [%d]", m.settings.TimerDuration),
		float64(m.settings.TimerDuration))
	if minutes <= 0 {
		fmt.Fprintf(m.out, "%sDuration must be positive, using %d.%s\n", ansiRed, m.settings.TimerDuration, ansiReset)
		minutes = float64(m.settings.TimerDuration)
	}
	choice.Duration = time.Duration(minutes * float64(time.Minute))

	vol := m.promptFloat(
		fmt.Sprintf("Initial Volume (0-100%%) [%d]", m.settings.Volume),
		float64(m.settings.Volume))
	choice.Volume = vol / 100

	fmt.Fprintln(m.out)
	fmt.Fprintf(m.out, "%sOptional: enter up to 3 tasks for this session (Enter to skip)%s\n", ansiDim, ansiReset)
	for i := 0; i < 3; i++ {
		fmt.Fprintf(m.out, "%sTask #%d:%s ", ansiYellow, i+1, ansiReset)
		task, ok := m.readLine()
		if !ok || task == "" {
			break
		}
		choice.Tasks = append(choice.Tasks, task)
	}

	return choice, true
}

func (m *Menu) chooseLoops() ([]string, bool) {
	for {
		m.printBanner()
		names := m.store.Names(audio.PoolLoop)
		if len(names) == 0 {
			fmt.Fprintf(m.out, "%sNo sounds found. Run genassets or add files to the assets directory.%s\n", ansiRed, ansiReset)
			return nil, false
		}

		fmt.Fprintf(m.out, "%sAvailable Sounds%s\n", ansiBold, ansiReset)
		for i, name := range names {
			fmt.Fprintf(m.out, "  %s%2d%s  %s %s\n", ansiDim, i+1, ansiReset, audio.Icon(name), audio.DisplayName(name))
		}
		fmt.Fprintf(m.out, "\n%sS%s - Settings\n\n", ansiYellow, ansiReset)
		fmt.Fprintf(m.out, "%sSelect sound IDs (comma separated) or 'S' for settings:%s ", ansiYellow, ansiReset)

		line, ok := m.readLine()
		if !ok {
			return nil, false
		}
		if strings.EqualFold(line, "s") {
			m.settingsMenu()
			continue
		}
		if line == "" {
			fmt.Fprintf(m.out, "%sNo sounds selected.%s\n", ansiRed, ansiReset)
			continue
		}

		selected := parseSelection(line, names)
		if len(selected) == 0 {
			fmt.Fprintf(m.out, "%sNo valid sounds selected.%s\n", ansiRed, ansiReset)
			return nil, false
		}
		return selected, true
	}
}

func (m *Menu) printBanner() {
	fmt.Fprintf(m.out, "\n%s%sFocus Noise Player%s 🎧\n", ansiBold, ansiCyan, ansiReset)
	total, streak, rank := m.stats.Display()
	fmt.Fprintf(m.out, "%sTotal Focus: %s  |  Streak: %s 🔥  |  Rank: %s%s\n\n", ansiDim, total, streak, rank, ansiReset)
}

func (m *Menu) settingsMenu() {
	for {
		s := &m.settings.Settings
		fmt.Fprintf(m.out, "\n%sSettings%s ⚙️\n", ansiCyan, ansiReset)
		fmt.Fprintf(m.out, "  1. Default Volume    %d%%\n", s.Volume)
		fmt.Fprintf(m.out, "  2. Default Duration  %d min\n", s.TimerDuration)
		fmt.Fprintf(m.out, "  3. Show Timer        %s\n", onOff(s.ShowTimer))
		fmt.Fprintf(m.out, "  4. Completion Gong   %s\n", onOff(s.PlayGong))
		fmt.Fprintf(m.out, "  5. Dynamic Weather   %s\n", onOff(s.DynamicWeather))
		fmt.Fprintf(m.out, "  6. Weather Frequency %s\n", s.WeatherFreq)
		fmt.Fprintf(m.out, "  7. Fade Duration     %.1fs\n", s.FadeDuration)
		fmt.Fprintf(m.out, "%sEnter number to change, or 'b' to go back:%s ", ansiDim, ansiReset)

		choice, ok := m.readLine()
		if !ok || strings.EqualFold(choice, "b") {
			return
		}
		switch choice {
		case "1":
			if v := int(m.promptFloat("Default volume (0-100)", float64(s.Volume))); v >= 0 && v <= 100 {
				s.Volume = v
			}
		case "2":
			if v := int(m.promptFloat("Default duration (min)", float64(s.TimerDuration))); v > 0 {
				s.TimerDuration = v
			}
		case "3":
			s.ShowTimer = !s.ShowTimer
		case "4":
			s.PlayGong = !s.PlayGong
		case "5":
			s.DynamicWeather = !s.DynamicWeather
		case "6":
			s.WeatherFreq = nextFreq(s.WeatherFreq)
		case "7":
			if v := m.promptFloat("Fade duration (seconds)", s.FadeDuration); v >= 0 {
				s.FadeDuration = v
			}
		default:
			continue
		}
		m.settings.Save()
	}
}

// promptFloat asks for a number, returning fallback on empty or bad input
func (m *Menu) promptFloat(label string, fallback float64) float64 {
	fmt.Fprintf(m.out, "%s%s:%s ", ansiYellow, label, ansiReset)
	line, ok := m.readLine()
	if !ok || line == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		fmt.Fprintf(m.out, "%sInvalid number, using %.0f.%s\n", ansiRed, fallback, ansiReset)
		return fallback
	}
	return v
}

func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// parseSelection maps comma-separated 1-based IDs onto names, dropping
// invalid or duplicate entries
func parseSelection(input string, names []string) []string {
	var out []string
	seen := make(map[int]bool)
	for _, field := range strings.Split(input, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || id < 1 || id > len(names) || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, names[id-1])
	}
	return out
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}

func nextFreq(cur string) string {
	switch strings.ToLower(cur) {
	case "low":
		return "medium"
	case "medium":
		return "high"
	default:
		return "low"
	}
}
