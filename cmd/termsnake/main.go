package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/hako/durafmt"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/termsnake/config"
	"github.com/lixenwraith/termsnake/core"
	"github.com/lixenwraith/termsnake/engine"
	"github.com/lixenwraith/termsnake/input"
	"github.com/lixenwraith/termsnake/render"
	"github.com/lixenwraith/termsnake/status"
	"github.com/lixenwraith/termsnake/terminal"
)

var (
	configFlag  = flag.String("config", "", "YAML settings file overlaid on the defaults")
	gridFlag    = flag.Int("grid", 0, "Cells per side of the playing field")
	tickFlag    = flag.Duration("tick", 0, "Frame duration, e.g. 150ms")
	checkerFlag = flag.Bool("checker", false, "Checkerboard field background")
	debugFlag   = flag.Bool("debug", false, "Write logs/termsnake.log")
)

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

// inputBacklog bounds distinct directions queued between ticks
const inputBacklog = 64

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()
	os.Exit(run())
}

// run plays one round and returns the process exit code
func run() int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "termsnake: %v\n", err)
		return 1
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	roundID := uuid.New().String()
	reg := status.NewRegistry()

	session, err := terminal.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "termsnake: %v\n", err)
		return 1
	}
	// Normal exit terminal cleanup
	defer session.Close()

	screen := session.Screen()
	renderer := render.NewGridRenderer(screen, cfg.GridSize,
		render.WithAspectCorrection(cfg.AspectCorrect),
		render.WithCheckerboard(cfg.Checkerboard),
	)
	defer renderer.Close()

	keyboard := input.NewKeyboard(input.DefaultKeyTable(), inputBacklog)
	game := engine.NewGame(
		engine.Config{GridSize: cfg.GridSize, FrameDuration: cfg.Tick},
		renderer,
		keyboard,
		engine.WithStatus(reg),
		engine.WithRoundID(roundID),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	grp, gctx := errgroup.WithContext(ctx)

	// Input pump ends when the screen is finalized
	grp.Go(core.Recovered(func() error {
		return keyboard.Pump(gctx, screen)
	}))

	grp.Go(core.Recovered(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigs)
		select {
		case sig := <-sigs:
			log.Printf("[main] received %v, stopping round %s", sig, roundID)
			cancel()
		case <-gctx.Done():
		}
		return nil
	}))

	var res engine.Result
	grp.Go(core.Recovered(func() error {
		defer cancel()
		defer session.Close()
		defer renderer.Close()

		var err error
		res, err = game.Run(gctx)
		return err
	}))

	err = grp.Wait()

	// Terminal is restored from here on
	for _, kv := range reg.Snapshot() {
		log.Printf("[status] %s = %s", kv.Key, kv.Value)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "termsnake: %v\n", err)
		return 1
	}

	fmt.Println(summary(res))
	return 0
}

// loadConfig reads the settings file and applies explicitly set flags on top
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "grid":
			cfg.GridSize = *gridFlag
		case "tick":
			cfg.Tick = *tickFlag
		case "checker":
			cfg.Checkerboard = *checkerFlag
		case "debug":
			cfg.Debug = *debugFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "[loadConfig] flags")
	}
	return cfg, nil
}

func summary(res engine.Result) string {
	var reason string
	switch res.Outcome {
	case engine.OutcomeWall:
		reason = "Hit the wall"
	case engine.OutcomeSelf:
		reason = "Ran into yourself"
	case engine.OutcomeCancelled:
		reason = "Interrupted"
	case engine.OutcomeError:
		reason = "Aborted"
	default:
		reason = "Quit"
	}

	return fmt.Sprintf("%s. Score %s, length %d, %s ticks in %s.",
		reason,
		humanize.Comma(int64(res.Score)),
		res.Length,
		humanize.Comma(res.Ticks),
		durafmt.Parse(res.Duration.Round(time.Millisecond)).LimitFirstN(2).Format(shortUnits),
	)
}
