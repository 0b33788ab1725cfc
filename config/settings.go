package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Settings holds persisted user preferences
type Settings struct {
	Volume         int     `json:"volume"`         // 0-100 percent
	TimerDuration  int     `json:"timer_duration"` // minutes
	ShowTimer      bool    `json:"show_timer"`
	PlayGong       bool    `json:"play_gong"`
	DynamicWeather bool    `json:"dynamic_weather"`
	ThemeColor     string  `json:"theme_color"`
	VolumeStep     int     `json:"volume_step"` // percent per keypress
	AutoStart      bool    `json:"auto_start"`
	WeatherFreq    string  `json:"weather_freq"`  // low, medium, high
	FadeDuration   float64 `json:"fade_duration"` // seconds
	ConfirmExit    bool    `json:"confirm_exit"`
}

// DefaultSettings returns the factory defaults
func DefaultSettings() Settings {
	return Settings{
		Volume:         100,
		TimerDuration:  25,
		ShowTimer:      true,
		PlayGong:       true,
		DynamicWeather: true,
		ThemeColor:     "cyan",
		VolumeStep:     5,
		AutoStart:      false,
		WeatherFreq:    "medium",
		FadeDuration:   2.0,
		ConfirmExit:    false,
	}
}

// Fade returns the fade duration as a time.Duration
func (s Settings) Fade() time.Duration {
	return time.Duration(s.FadeDuration * float64(time.Second))
}

// SettingsStore persists Settings as JSON
type SettingsStore struct {
	Settings
	path string
}

// LoadSettings reads settings.json from dir, merging over the defaults
// so missing keys keep their default values. Unreadable or corrupt
// files fall back to pure defaults.
func LoadSettings(dir string) *SettingsStore {
	st := &SettingsStore{
		Settings: DefaultSettings(),
		path:     filepath.Join(dir, "settings.json"),
	}
	data, err := os.ReadFile(st.path)
	if err != nil {
		return st
	}
	// Decoding over the populated struct leaves absent keys at defaults
	if err := json.Unmarshal(data, &st.Settings); err != nil {
		log.Printf("config: corrupt settings file %s: %v, using defaults", st.path, err)
		st.Settings = DefaultSettings()
	}
	return st
}

// Save writes the settings back. Failures are logged, never fatal.
func (st *SettingsStore) Save() {
	data, err := json.MarshalIndent(st.Settings, "", "  ")
	if err != nil {
		return
	}
	if err := os.WriteFile(st.path, data, 0o644); err != nil {
		log.Printf("config: cannot save settings: %v", err)
	}
}
