package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"gridsnake/ai"
	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/spectate"
	"gridsnake/store"
	"gridsnake/term"
	"gridsnake/ui"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"
)

func main() {
	if err := config.InitConfig(); err != nil {
		log.Fatalf("config: %v", err)
	}
	settings, err := config.FromEnv()
	if err != nil {
		log.Printf("config: %v", err)
	}

	flag.StringVar(&settings.Frontend, "frontend", settings.Frontend, "window, term or headless")
	flag.Float64Var(&settings.ArenaSize, "size", settings.ArenaSize, "Arena size in pixels")
	flag.IntVar(&settings.Cells, "cells", settings.Cells, "Cells per side")
	flag.IntVar(&settings.MoveDelay, "delay", settings.MoveDelay, "Frames between snake steps (lower = faster)")
	flag.IntVar(&settings.BurstSize, "burst", settings.BurstSize, "Particles per eaten food")
	flag.Uint64Var(&settings.Seed, "seed", settings.Seed, "Random seed, 0 for time based")
	flag.IntVar(&settings.FPS, "fps", settings.FPS, "Display refresh rate")
	flag.StringVar(&settings.Store, "store", settings.Store, "Score store: file, sqlite or memory")
	flag.StringVar(&settings.StorePath, "db", settings.StorePath, "Store location")
	flag.StringVar(&settings.Autopilot, "autopilot", settings.Autopilot, "off, table or dqn")
	flag.StringVar(&settings.ModelPath, "model", settings.ModelPath, "Autopilot model path without extension")
	flag.IntVar(&settings.Train, "train", settings.Train, "Train the autopilot for N headless episodes and exit")
	flag.StringVar(&settings.SpectateAddr, "spectate", settings.SpectateAddr, "Serve a spectator WebSocket on this address")
	flag.StringVar(&settings.LogFile, "log", settings.LogFile, "Write logs to this file")
	flag.Parse()

	if settings.Frontend == "term" && settings.LogFile == "" {
		// the terminal UI owns stderr
		settings.LogFile = filepath.Join("data", "snake.log")
	}
	if settings.LogFile != "" {
		f, err := openLog(settings.LogFile)
		if err != nil {
			log.Fatalf("log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if err := run(settings); err != nil {
		log.Printf("snake: %v", err)
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func openLog(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}

func run(settings config.Settings) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := settings.GameConfig()
	if err != nil {
		return err
	}

	storePath := settings.StorePath
	if settings.Store == "sqlite" && strings.HasSuffix(storePath, ".json") {
		storePath = strings.TrimSuffix(storePath, ".json") + ".db"
	}
	st, err := store.Open(settings.Store, storePath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	if settings.Train > 0 {
		return train(cfg, settings, st)
	}

	session, err := game.NewSession(cfg, game.Options{Store: st})
	if err != nil {
		return err
	}

	var (
		loop    *game.Loop
		runLoop func() error
	)
	switch settings.Frontend {
	case "window":
		history, err := st.Games()
		if err != nil {
			log.Printf("load history: %v", err)
		}
		w := ui.NewWindow(session, history)
		loop = w.Loop()
		runLoop = func() error {
			w.Run(int32(settings.FPS))
			return nil
		}

	case "term":
		screen, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		if err := screen.Init(); err != nil {
			return err
		}
		defer screen.Fini()
		app := term.NewApp(screen, session, settings.FPS)
		loop = app.Loop()
		runLoop = func() error {
			if err := app.Run(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		}

	case "headless":
		queue := game.NewFrameQueue()
		loop = game.NewLoop(session, queue, &game.DisplayList{})
		runLoop = func() error {
			return runHeadless(ctx, loop, queue, settings.FPS)
		}

	default:
		return fmt.Errorf("unknown frontend %q", settings.Frontend)
	}

	if settings.Autopilot != "off" && settings.Autopilot != "" {
		policy, err := ai.NewPolicy(settings.Autopilot, modelFile(settings.ModelPath, settings.Autopilot), rand.New(rand.NewSource(uint64(time.Now().UnixNano()))))
		if err != nil {
			return err
		}
		pilot := ai.NewPilot(policy, false)
		loop.SetSteerer(pilot)
		loop.OnFrame(pilot.Observe)
		log.Printf("autopilot: %s", settings.Autopilot)
	}

	if settings.SpectateAddr != "" {
		hub := spectate.NewHub()
		loop.OnFrame(hub.Observe)
		go func() {
			if err := spectate.Serve(ctx, settings.SpectateAddr, hub); err != nil {
				log.Printf("spectate: %v", err)
			}
		}()
	}

	return runLoop()
}

// runHeadless plays one game at fps without any display and logs the result
func runHeadless(ctx context.Context, loop *game.Loop, queue *game.FrameQueue, fps int) error {
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	loop.Start()
	for queue.Pending() > 0 {
		select {
		case <-ctx.Done():
			loop.Stop()
			return nil
		case <-ticker.C:
			queue.RunPending()
		}
	}

	s := loop.Session()
	log.Printf("headless: game over, score %d, max score %d", s.Score(), s.MaxScore())
	return nil
}

func train(cfg types.Config, settings config.Settings, st store.Store) error {
	kind := settings.Autopilot
	if kind == "off" || kind == "" {
		kind = "table"
	}
	path := modelFile(settings.ModelPath, kind)

	policy, err := ai.NewPolicy(kind, path, rand.New(rand.NewSource(uint64(time.Now().UnixNano()))))
	if err != nil {
		return err
	}

	opts := ai.DefaultTrainOptions()
	opts.Episodes = settings.Train
	opts.ModelPath = path
	opts.Store = st

	start := time.Now()
	summary, err := ai.Train(cfg, policy, opts)
	if err != nil {
		return err
	}

	fmt.Printf("Trained %s for %d episodes in %s\n", kind, summary.GamesPlayed, time.Since(start).Round(time.Second))
	fmt.Printf("Average score: %.2f\n", summary.AverageScore)
	fmt.Printf("Median score: %.1f\n", summary.MedianScore)
	fmt.Printf("Max score: %d\n", summary.MaxScore)
	fmt.Printf("Min score: %d\n", summary.MinScore)
	fmt.Printf("Average game: %s\n", summary.AverageDuration.Round(time.Millisecond))
	return nil
}

// modelFile picks the file extension the policy kind saves with
func modelFile(base, kind string) string {
	if kind == "dqn" {
		return base + ".gob"
	}
	return base + ".json"
}
