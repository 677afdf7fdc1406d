package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/lightcycle/config"
	"github.com/lixenwraith/lightcycle/constants"
	"github.com/lixenwraith/lightcycle/core"
	"github.com/lixenwraith/lightcycle/engine"
	"github.com/lixenwraith/lightcycle/events"
	"github.com/lixenwraith/lightcycle/input"
	"github.com/lixenwraith/lightcycle/render"
)

var (
	configDirFlag = flag.String("config", ".", "Directory containing lightcycle.toml")
	seedFlag      = flag.Uint64("seed", 0, "PRNG seed, 0 uses config or the clock")
	botsFlag      = flag.Int("bots", -1, "Number of bots, negative uses config")
	debugFlag     = flag.Bool("debug", false, "Write logs to logs/lightcycle.log")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configDirFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg)

	logFile, logger := setupLogging(cfg.Log.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.Warn().Str("level", cfg.Log.Level).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	logger = logger.Level(level)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			logger.Error().Interface("panic", r).Msg("crashed")
			fmt.Fprintf(os.Stderr, "\n\x1b[31mLIGHTCYCLE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	err = run(screen, cfg, logger)
	screen.Fini()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lightcycle: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags lets command-line flags override loaded configuration
func applyFlags(cfg *config.Config) {
	if *seedFlag != 0 {
		cfg.Game.Seed = *seedFlag
	}
	if *botsFlag >= 0 {
		cfg.Arena.Bots = *botsFlag
	}
	if *debugFlag {
		cfg.Log.Debug = true
	}
}

// newSimulation builds a simulation from cfg, deriving the seed from the clock when unset
func newSimulation(cfg config.Config, logger zerolog.Logger) (*engine.Simulation, error) {
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return engine.NewSimulation(engine.Config{
		Width:          cfg.Arena.Width,
		Height:         cfg.Arena.Height,
		Bots:           cfg.Arena.Bots,
		MaxTrailLength: cfg.Arena.MaxTrailLength,
		Seed:           seed,
	}, engine.WithLogger(logger))
}

// run owns the frame loop: input, fixed-interval ticks, event drain, render
func run(screen tcell.Screen, cfg config.Config, logger zerolog.Logger) error {
	sim, err := newSimulation(cfg, logger)
	if err != nil {
		return err
	}

	handler := input.NewHandler(sim)
	renderer := render.NewTerminalRenderer(screen)
	clock := engine.NewPausableClock(engine.NewMonotonicTimeProvider())

	// tcell PollEvent blocks, feed the loop through a channel
	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	gameTicker := time.NewTicker(cfg.Game.TickInterval)
	defer gameTicker.Stop()
	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	var hud render.HUD
	var blasts []blastMarker
	messageTicks := 0

	logger.Info().Uint64("seed", sim.Seed()).Msg("game started")

	for {
		select {
		case ev := <-eventChan:
			switch handler.HandleEvent(ev) {
			case input.ActionQuit:
				logger.Info().Uint64("tick", sim.TickCount()).Msg("game quit")
				return nil
			case input.ActionPause:
				logger.Debug().Bool("paused", clock.Toggle()).Msg("pause toggled")
			case input.ActionRestart:
				next, err := newSimulation(cfg, logger)
				if err != nil {
					return err
				}
				sim = next
				handler.SetTarget(sim)
				clock.Resume()
				hud = render.HUD{}
				hud.Paused = clock.IsPaused()
				blasts = nil
				messageTicks = 0
				logger.Info().Uint64("seed", sim.Seed()).Msg("game restarted")
			case input.ActionResize:
				screen.Sync()
			}

		case <-gameTicker.C:
			elapsed := clock.Elapsed()
			if elapsed <= 0 {
				continue
			}
			sim.Tick(elapsed)

			blasts = ageBlasts(blasts)
			for _, ev := range sim.Events().Consume() {
				if ev.Type == events.EventBombExploded {
					blasts = append(blasts, blastMarker{center: ev.Cell, ticks: blastMarkerTicks})
				}
				if msg := eventMessage(ev); msg != "" {
					hud.Message = msg
					messageTicks = constants.StatusMessageTicks
				}
			}
			if messageTicks > 0 {
				messageTicks--
				if messageTicks == 0 {
					hud.Message = ""
				}
			}

		case <-frameTicker.C:
			hud.Paused = clock.IsPaused()
			hud.Blasts = hud.Blasts[:0]
			for _, b := range blasts {
				hud.Blasts = append(hud.Blasts, b.center)
			}
			renderer.RenderFrame(sim, hud)
		}
	}
}

// blastMarkerTicks is how many game ticks an explosion stays drawn
const blastMarkerTicks = 3

type blastMarker struct {
	center core.Cell
	ticks  int
}

// ageBlasts drops markers whose display time has run out
func ageBlasts(blasts []blastMarker) []blastMarker {
	kept := blasts[:0]
	for _, b := range blasts {
		b.ticks--
		if b.ticks > 0 {
			kept = append(kept, b)
		}
	}
	return kept
}

// eventMessage returns the status line text for events worth announcing, empty otherwise
func eventMessage(ev events.GameEvent) string {
	switch p := ev.Payload.(type) {
	case *events.VehicleDestroyedPayload:
		if p.IsPlayer {
			return ""
		}
		return fmt.Sprintf("bot %d destroyed by %s", ev.Vehicle, p.Cause)
	case *events.PowerUpPayload:
		switch ev.Type {
		case events.EventPowerUpCollected:
			if ev.Vehicle == engine.PlayerID {
				return fmt.Sprintf("collected %s", p.PowerUp.Kind)
			}
		case events.EventPowerActivated:
			return fmt.Sprintf("activated %s", p.PowerUp.Kind)
		}
	case *events.EffectExpiredPayload:
		if ev.Vehicle == engine.PlayerID {
			return fmt.Sprintf("%s expired", p.Kind)
		}
	case *events.BombPayload:
		if ev.Type == events.EventBombExploded {
			return fmt.Sprintf("bomb exploded at %s", ev.Cell)
		}
	}
	return ""
}
