package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// LiveView renders the running session: title, progress bar, optional
// countdown, task list and a footer with the playing loops and volume.
type LiveView struct {
	screen    tcell.Screen
	playing   []string // icon + display name per loop
	tasks     []string
	showTimer bool
	duration  time.Duration
}

// NewLiveView creates the session view
func NewLiveView(screen tcell.Screen, playing, tasks []string, showTimer bool, duration time.Duration) *LiveView {
	return &LiveView{
		screen:    screen,
		playing:   playing,
		tasks:     tasks,
		showTimer: showTimer,
		duration:  duration,
	}
}

// Render draws one frame. Matches the session.RenderFunc contract:
// called once per tick, must not block.
func (v *LiveView) Render(elapsed, remaining time.Duration, volumePercent int) {
	v.screen.Clear()
	width, height := v.screen.Size()

	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	dimStyle := tcell.StyleDefault.Dim(true)
	barStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)

	drawCentered(v.screen, width, 1, "Focus Noise Player", titleStyle)
	drawCentered(v.screen, width, 2, "controls: +/- to adjust volume, q to quit", dimStyle)

	// Progress bar
	barY := height / 2
	barWidth := width * 3 / 4
	if barWidth < 10 {
		barWidth = width - 2
	}
	barX := (width - barWidth) / 2
	frac := 0.0
	if v.duration > 0 {
		frac = float64(elapsed) / float64(v.duration)
		if frac > 1 {
			frac = 1
		}
	}
	filled := int(frac * float64(barWidth))
	bar := strings.Repeat("━", filled) + strings.Repeat("─", barWidth-filled)
	drawText(v.screen, barX, barY, bar, barStyle)

	pct := fmt.Sprintf("%3.0f%%", frac*100)
	if v.showTimer {
		pct += "  " + formatClock(remaining) + " remaining"
	}
	drawCentered(v.screen, width, barY+1, pct, tcell.StyleDefault)

	// Tasks
	if len(v.tasks) > 0 {
		taskY := barY + 3
		drawCentered(v.screen, width, taskY, "Current Tasks", tcell.StyleDefault.Foreground(tcell.ColorFuchsia))
		for i, task := range v.tasks {
			drawCentered(v.screen, width, taskY+1+i, fmt.Sprintf("%d. %s", i+1, task), tcell.StyleDefault)
		}
	}

	footer := fmt.Sprintf("Playing: %s | Volume: %d%%", strings.Join(v.playing, " + "), volumePercent)
	drawCentered(v.screen, width, height-2, footer, dimStyle)

	v.screen.Show()
}

// formatClock renders a duration as m:ss or h:mm:ss
func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	sec := int(d.Round(time.Second).Seconds())
	if sec >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", sec/3600, sec%3600/60, sec%60)
	}
	return fmt.Sprintf("%d:%02d", sec/60, sec%60)
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		screen.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
}

func drawCentered(screen tcell.Screen, width, y int, text string, style tcell.Style) {
	x := (width - runewidth.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	drawText(screen, x, y, text, style)
}
