package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/tds/audio"
	"github.com/lixenwraith/tds/core"
	"github.com/lixenwraith/tds/engine"
	"github.com/lixenwraith/tds/logger"
	"github.com/lixenwraith/tds/parameter"
)

var (
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/tds.log")
	levelFlag  = flag.String("level", parameter.DefaultLevelFile, "Level file loaded at start and used by save/load")
	tuningFlag = flag.String("tuning", "", "TOML file overriding the physics tuning")
	seedFlag   = flag.Uint64("seed", 0, "Random seed for throws and blast textures, 0 picks one")
)

func main() {
	// Panic Recovery: restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}
	log := logger.Component("main")

	tuning := parameter.DefaultTuning()
	if *tuningFlag != "" {
		t, err := parameter.LoadTuning(*tuningFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load tuning: %v\n", err)
			os.Exit(1)
		}
		tuning = t
	}

	level, err := loadOrCreateLevel(*levelFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load level: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	core.SetCrashCleanup(screen.Fini)

	sound, closeAudio := setupAudio(log)
	defer closeAudio()

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.WithFields(logrus.Fields{"level": *levelFlag, "seed": seed}).Info("starting")

	g := newGame(screen, engine.NewTimeProvider(), level, &tuning, sound, seed, *levelFlag)
	g.run()
}

// setupAudio starts the sound manager, continuing silently when audio is unavailable
func setupAudio(log *logrus.Entry) (core.SoundPlayer, func()) {
	sm := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sm.Initialize(); err != nil {
		log.WithError(err).Warn("audio unavailable, continuing without sound")
		return core.SilentPlayer{}, func() {}
	}
	return sm, sm.Cleanup
}
