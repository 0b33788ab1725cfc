package audio

import (
	"errors"
)

// Pool identifies which sample collection a file belongs to
type Pool int

const (
	PoolLoop    Pool = iota // Ambient background loops
	PoolEffect              // One-shot effects (chime etc.)
	PoolTexture             // Randomized overlay textures
	poolCount
)

// String returns the pool name for logging
func (p Pool) String() string {
	switch p {
	case PoolLoop:
		return "loop"
	case PoolEffect:
		return "effect"
	case PoolTexture:
		return "texture"
	}
	return "unknown"
}

// Sentinel errors
var (
	ErrNotFound  = errors.New("sample not found")
	ErrNoBackend = errors.New("audio backend unavailable")
)
