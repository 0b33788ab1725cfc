package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/focusnoise/audio"
	"github.com/lixenwraith/focusnoise/config"
	"github.com/lixenwraith/focusnoise/session"
	"github.com/lixenwraith/focusnoise/ui"
)

var assetsFlag = flag.String("assets", "", "assets directory (default: auto-detect)")

func main() {
	flag.Parse()

	cfgDir := config.Dir()
	settings := config.LoadSettings(cfgDir)
	stats := config.LoadStats(cfgDir)

	assets := resolveAssets(*assetsFlag)
	store := audio.NewSampleStore()
	store.Load(assets, audio.PoolLoop)
	store.Load(filepath.Join(assets, "sfx"), audio.PoolEffect)
	store.Load(filepath.Join(assets, "textures"), audio.PoolTexture)

	mixer := audio.NewMixer(store)
	if err := mixer.Start(); err != nil {
		// A focus timer without audio is still useful
		fmt.Fprintf(os.Stderr, "Warning: %v. Continuing without sound.\n", err)
	}
	defer mixer.Close()

	menu := ui.NewMenu(os.Stdin, os.Stdout, store, settings, stats)
	choice, ok := menu.Choose()
	if !ok {
		return
	}

	mixer.SetMasterVolume(choice.Volume)
	fade := settings.Fade()
	for _, name := range choice.Loops {
		if err := mixer.StartLoop(name, fade); err != nil {
			log.Printf("cannot start %s: %v", name, err)
		}
	}

	state, elapsed, err := runLive(mixer, settings, choice)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return
	}

	fmt.Println("Fading out...")
	seq := session.NewSequencer(mixer, session.SystemClock{}, fade)
	if !settings.PlayGong {
		seq.Chime = ""
	}
	seconds := seq.Run(elapsed)
	stats.RecordElapsed(seconds)

	if state == session.StateFinished {
		fmt.Println("Session Complete! 🎉")
	} else {
		fmt.Println("Session Stopped. 👋")
	}
	fmt.Printf("Stats saved: +%dm focus time\n", int(seconds/60))
}

// runLive owns the tcell screen for the duration of the session loop
func runLive(mixer *audio.Mixer, settings *config.SettingsStore, choice *ui.Choice) (session.State, time.Duration, error) {
	screen, err := tcell.NewScreen()
	if err == nil {
		err = screen.Init()
	}
	if err != nil {
		return session.StateCancelled, 0, err
	}
	defer screen.Fini()

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\x1b[31mCRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	var textures session.TickHandler
	if settings.DynamicWeather {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		textures = audio.NewTextureScheduler(mixer, settings.WeatherFreq, rng, time.Now())
	}

	playing := make([]string, 0, len(choice.Loops))
	for _, name := range choice.Loops {
		playing = append(playing, audio.Icon(name)+" "+audio.DisplayName(name))
	}
	view := ui.NewLiveView(screen, playing, choice.Tasks, settings.ShowTimer, choice.Duration)

	cancel := make(chan struct{})
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		close(cancel)
	}()

	sess := session.New(mixer, textures, session.SystemClock{}, ui.NewKeyReader(screen), view.Render, session.Config{
		Duration:   choice.Duration,
		VolumeStep: float64(settings.VolumeStep) / 100,
		Tasks:      choice.Tasks,
	})
	state, elapsed := sess.Run(cancel)
	return state, elapsed, nil
}

// resolveAssets picks the first existing assets directory
func resolveAssets(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	candidates := []string{
		"assets",
		"/usr/share/focusnoise/assets",
		"/usr/local/share/focusnoise/assets",
	}
	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return "assets"
}
