package ui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/focusnoise/session"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{-time.Second, "0:00"},
		{59 * time.Second, "0:59"},
		{25 * time.Minute, "25:00"},
		{61 * time.Minute, "1:01:00"},
	}
	for _, tt := range tests {
		if got := formatClock(tt.d); got != tt.want {
			t.Errorf("formatClock(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want session.Key
	}{
		{tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone), session.KeyVolumeUp},
		{tcell.NewEventKey(tcell.KeyRune, '=', tcell.ModNone), session.KeyVolumeUp},
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), session.KeyVolumeUp},
		{tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone), session.KeyVolumeDown},
		{tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), session.KeyVolumeDown},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), session.KeyCancel},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), session.KeyCancel},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), session.KeyCancel},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), session.KeyNone},
	}
	for _, tt := range tests {
		if got := mapKey(tt.ev); got != tt.want {
			t.Errorf("mapKey(%v/%q) = %v, want %v", tt.ev.Key(), tt.ev.Rune(), got, tt.want)
		}
	}
}

func TestLiveViewRendersOnSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	view := NewLiveView(screen, []string{"🌧️ Rain Sounds"}, []string{"write report"}, true, 25*time.Minute)
	view.Render(5*time.Minute, 20*time.Minute, 80)

	if contents, w, h := screen.GetContents(); len(contents) != w*h {
		t.Errorf("unexpected simulation buffer size %d for %dx%d", len(contents), w, h)
	}
}
