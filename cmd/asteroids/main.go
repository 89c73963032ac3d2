package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"asteroids/internal/audio"
	"asteroids/internal/config"
	"asteroids/internal/game"
	"asteroids/internal/loop"
	"asteroids/internal/render"
)

const (
	turnStep   = 0.2  // radians per key press
	thrustStep = 40.0 // units/s per key press
)

var errQuit = errors.New("quit")

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "", "Path to a TOML or YAML config file")
	headless := flag.Bool("headless", false, "Stream msgpack frames to stdout instead of drawing to the terminal")
	ticks := flag.Int("ticks", 320, "Ticks to simulate in headless mode")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := newLogger(cfg.Logging, !*headless)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *headless {
		out := bufio.NewWriter(os.Stdout)
		defer out.Flush()
		return runHeadless(ctx, cfg, log, *ticks, out)
	}
	return runTerminal(ctx, cfg, log)
}

func newWorld(cfg *config.Config, log *zap.Logger, opts ...game.Option) *game.World {
	opts = append([]game.Option{
		game.WithDimensions(cfg.Playfield.Width, cfg.Playfield.Height),
		game.WithBackground(cfg.Playfield.Background),
		game.WithAsteroidCount(cfg.Simulation.Asteroids),
		game.WithBulletLifetime(cfg.Simulation.BulletTTL),
		game.WithLogger(log),
	}, opts...)
	if seed := cfg.Simulation.Seed; seed != 0 {
		opts = append(opts, game.WithRand(rand.New(rand.NewPCG(seed, seed))))
	}
	return game.NewWorld(opts...)
}

// runHeadless simulates a fixed number of ticks as fast as possible and
// writes one msgpack frame per tick to out
func runHeadless(ctx context.Context, cfg *config.Config, log *zap.Logger, ticks int, out io.Writer) error {
	world := newWorld(cfg, log)
	world.AddShip()

	frames := render.NewFrameWriter(out)

	var rec render.Recorder
	var tick uint64
	w, h := world.Dimensions()
	dt := cfg.Simulation.TickDuration().Seconds()

	log.Info("headless run",
		zap.Int("ticks", ticks),
		zap.Int("entities", world.Len()))

	err := loop.RunN(ctx, ticks, dt, func(dt float64) error {
		tick++
		world.Step(dt)
		world.ReapExpired()
		rec.Reset()
		world.Draw(&rec)
		return frames.Write(rec.Frame(tick, w, h))
	})
	if err != nil {
		return err
	}
	log.Info("headless run done", zap.Uint64("ticks", tick), zap.Int("entities", world.Len()))
	return nil
}

func runTerminal(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	sounds := audio.NewSoundManager()
	if cfg.Audio.Enabled {
		if err := sounds.Initialize(); err != nil {
			log.Warn("audio disabled", zap.Error(err))
		}
	}
	defer sounds.Cleanup()

	world := newWorld(cfg, log, game.WithCollisionHandler(func(a, b game.Entity) {
		switch b.(type) {
		case *game.Ship:
			sounds.PlayCrash()
		case *game.Bullet:
			sounds.PlayBreak()
		}
	}))
	ship := world.AddShip()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	w, h := world.Dimensions()
	canvas := render.NewTerminal(screen, w, h)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 100)
	go pumpEvents(ctx, screen, events)

	err = loop.Run(ctx, cfg.Simulation.TickDuration(), func(dt float64) error {
		for drained := false; !drained; {
			select {
			case ev := <-events:
				if err := handleEvent(ev, ship, canvas, screen); err != nil {
					return err
				}
			default:
				drained = true
			}
		}
		world.Step(dt)
		world.ReapExpired()
		world.Draw(canvas)
		screen.Show()
		return nil
	})
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

// pumpEvents forwards screen events to out until the screen is finalized
// or ctx is done
func pumpEvents(ctx context.Context, screen tcell.Screen, out chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func handleEvent(ev tcell.Event, ship *game.Ship, canvas *render.Terminal, screen tcell.Screen) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return errQuit
		case tcell.KeyLeft:
			ship.Rotate(-turnStep)
		case tcell.KeyRight:
			ship.Rotate(turnStep)
		case tcell.KeyUp:
			ship.Thrust(thrustStep)
		case tcell.KeyDown:
			ship.Thrust(-thrustStep)
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				ship.Fire()
			case 'q':
				return errQuit
			}
		}
	case *tcell.EventResize:
		screen.Sync()
		canvas.Resize()
	}
	return nil
}

func newLogger(cfg config.LoggingConfig, ownsTerminal bool) (*zap.Logger, error) {
	// the screen owns stderr while drawing
	if ownsTerminal && cfg.File == "" {
		return zap.NewNop(), nil
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.File != "" {
		zapCfg.OutputPaths = []string{cfg.File}
		zapCfg.ErrorOutputPaths = []string{cfg.File}
	}

	return zapCfg.Build()
}
