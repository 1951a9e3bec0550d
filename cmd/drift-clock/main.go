package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/drift-clock/audio"
	"github.com/lixenwraith/drift-clock/core"
	"github.com/lixenwraith/drift-clock/engine"
	"github.com/lixenwraith/drift-clock/font"
	"github.com/lixenwraith/drift-clock/motion"
	"github.com/lixenwraith/drift-clock/settings"
	"github.com/lixenwraith/drift-clock/vmath"
)

var (
	configFlag = flag.String("config", "", "Settings file (default: <user config dir>/drift-clock/settings.yaml)")
	seedFlag   = flag.Uint64("seed", 0, "Color RNG seed, 0 derives one from the clock")
	colorFlag  = flag.String("color", "auto", "Color policy: auto (from settings), palette, hue")
	soundFlag  = flag.Bool("sound", false, "Turn on the bounce chime")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/drift-clock.log")
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "drift-clock: stdout is not a terminal")
		return 1
	}

	path := *configFlag
	if path == "" {
		var err error
		if path, err = settings.DefaultPath(); err != nil {
			fmt.Fprintf(os.Stderr, "drift-clock: %v\n", err)
			return 1
		}
	}
	store := settings.NewStore(path)
	cfg, err := store.Load()
	if err != nil {
		log.Printf("settings: %v, using defaults", err)
	}

	if *colorFlag != "auto" {
		if _, ok := motion.PolicyByName(*colorFlag); !ok {
			fmt.Fprintf(os.Stderr, "drift-clock: unknown color policy %q\n", *colorFlag)
			return 2
		}
		cfg.ColorPolicy = *colorFlag
	}
	if *soundFlag {
		cfg.Sound = true
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "drift-clock: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "drift-clock: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer screen.Fini()

	// Restore the terminal before any panic output
	core.SetCrashScreen(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.HideCursor()

	chime := audio.NewChime()
	if err := chime.Initialize(); err != nil {
		// Non-fatal, the clock runs silent
		log.Printf("audio: %v", err)
	}
	defer chime.Close()

	app := engine.NewApp(screen, engine.Options{
		Settings: cfg,
		Store:    store,
		Rand:     vmath.NewFastRand(seed),
		Player:   chime,
	})
	log.Printf("started: settings %s, seed %d", store.Path(), seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fontDir := filepath.Join(store.Dir(), font.DirName)
	if err := app.Run(ctx, fontDir); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("run: %v", err)
		return 1
	}
	log.Printf("exit: %s", app.Stats().Summary())
	return 0
}
