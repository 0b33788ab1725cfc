package session

// Key is a session control keystroke
type Key int

const (
	KeyNone Key = iota
	KeyVolumeUp
	KeyVolumeDown
	KeyCancel
)

// InputSource yields at most one pending key per call, without blocking
type InputSource interface {
	Poll() Key
}

// NoInput is an InputSource with no keys, for unattended sessions
type NoInput struct{}

func (NoInput) Poll() Key {
	return KeyNone
}
