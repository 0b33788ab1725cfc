package config

import (
	"log"
	"os"
	"path/filepath"
)

const appDirName = "focusnoise"

// Dir returns the per-user config directory, creating it if needed.
// Falls back to a temp directory when the user dir is unavailable.
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	dir := filepath.Join(base, appDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("config: cannot create %s: %v, using temp dir", dir, err)
		dir = filepath.Join(os.TempDir(), appDirName)
		os.MkdirAll(dir, 0o755)
	}
	return dir
}
