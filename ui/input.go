package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/focusnoise/session"
)

// KeyReader adapts tcell's blocking event stream into the session's
// non-blocking InputSource. A pump goroutine feeds a buffered channel;
// Poll drains one event without waiting.
type KeyReader struct {
	keys chan session.Key
}

// NewKeyReader starts the event pump for screen
func NewKeyReader(screen tcell.Screen) *KeyReader {
	kr := &KeyReader{keys: make(chan session.Key, 16)}
	go kr.pump(screen)
	return kr
}

func (kr *KeyReader) pump(screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			key := mapKey(ev)
			if key == session.KeyNone {
				continue
			}
			select {
			case kr.keys <- key:
			default:
				// Session polls at 10 Hz, dropping excess is fine
			}
		}
	}
}

func mapKey(ev *tcell.EventKey) session.Key {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return session.KeyCancel
	case tcell.KeyRune:
		switch ev.Rune() {
		case '+', '=', 'w':
			return session.KeyVolumeUp
		case '-', 's':
			return session.KeyVolumeDown
		case 'q':
			return session.KeyCancel
		}
	}
	return session.KeyNone
}

// Poll returns one pending key, or KeyNone immediately
func (kr *KeyReader) Poll() session.Key {
	select {
	case key := <-kr.keys:
		return key
	default:
		return session.KeyNone
	}
}
