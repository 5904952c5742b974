package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Versifine/strafe/internal/config"
	"github.com/Versifine/strafe/internal/debug"
	"github.com/Versifine/strafe/internal/event"
	"github.com/Versifine/strafe/internal/hud"
	"github.com/Versifine/strafe/internal/logger"
	"github.com/Versifine/strafe/internal/sim"
	"github.com/gdamore/tcell/v2"
)

const playerName = "player"

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is main without the exit, so deferred cleanup always happens. It
// returns the process exit code.
func run(args []string) int {
	fs := flag.NewFlagSet("strafe", flag.ContinueOnError)
	configPath := fs.String("config", "configs/strafe.yaml", "path to the YAML config")
	console := fs.Bool("console", false, "drive a player character from the terminal")
	showHUD := fs.Bool("hud", false, "show the speed HUD while the bots run in real time")
	frames := fs.Int("frames", 0, "scripted frames to run (0 uses sim.frames)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		return 1
	}
	if *console && *showHUD {
		slog.Error("Choose one of -console and -hud")
		return 2
	}

	logOut, closeLog, err := logOutput(cfg.Logging.File, *showHUD)
	if err != nil {
		slog.Error("Failed to open log file", "error", err)
		return 1
	}
	defer closeLog()
	logger.Init(logger.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Output:    logOut,
		Precision: cfg.Logging.Precision,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := sim.New(cfg.SimOptions())
	if err != nil {
		slog.Error("Failed to build simulation", "error", err)
		return 1
	}
	s.Bus().Subscribe(event.EventDamage, func(raw any) {
		evt, ok := raw.(event.DamageEvent)
		if ok && evt.NewHP <= 0 {
			slog.Info("target destroyed", "target", evt.Target)
		}
	})

	switch {
	case *console:
		err = runConsole(ctx, s)
	case *showHUD:
		err = runHUD(ctx, s, cfg.HUD)
	default:
		n := cfg.Sim.Frames
		if *frames > 0 {
			n = *frames
		}
		err = runScripted(ctx, s, n)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Run failed", "error", err)
		return 1
	}
	logSummary(s.Summary())
	return 0
}

func logOutput(path string, quiet bool) (io.Writer, func(), error) {
	if path == "" {
		if quiet {
			return io.Discard, func() {}, nil
		}
		return os.Stdout, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}

func runScripted(ctx context.Context, s *sim.Sim, frames int) error {
	if err := s.AddBots(); err != nil {
		return err
	}
	slog.Info("Scripted run started", "bots", s.Config().Bots, "frames", frames)
	return s.Run(ctx, frames)
}

func runConsole(ctx context.Context, s *sim.Sim) error {
	manual := sim.NewManual()
	if err := s.AddCharacter(playerName, manual); err != nil {
		return err
	}
	if err := s.AddBots(); err != nil {
		return err
	}
	return debug.NewConsole(s, manual, playerName).Start(ctx)
}

func runHUD(ctx context.Context, s *sim.Sim, cfg hud.Config) error {
	if s.Config().Bots == 0 {
		if err := s.AddCharacter("bot-0", sim.Script{
			Hopper:  sim.NewHopper(s.Config().Hopper),
			Shooter: sim.NewShooter(s.Config().Shooter),
		}); err != nil {
			return err
		}
	} else if err := s.AddBots(); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if key, ok := ev.(*tcell.EventKey); ok {
				if key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC || key.Rune() == 'q' {
					cancel()
					return
				}
			}
		}
	}()

	rate := s.Config().FrameRate
	view := hud.NewView(screen, cfg, int(rate))
	ticker := time.NewTicker(time.Duration(float64(time.Second) / rate))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			s.Frame(now.Sub(last).Seconds())
			last = now
			st, err := s.State("bot-0")
			if err != nil {
				return err
			}
			view.Draw(hud.Reading{
				Name:       st.Name,
				Speed:      st.Speed,
				Bonus:      st.Momentum.BonusSpeed,
				MaxBonus:   st.MaxBonus,
				Grounded:   st.Grounded,
				WindowOpen: st.WindowOpen,
				Shots:      st.Stats.Shots,
				Hits:       st.Stats.Hits,
			})
		}
	}
}

func logSummary(sum sim.Summary) {
	slog.Info("Run finished",
		"frames", sum.Frames,
		"steps", sum.Steps,
		"dropped_steps", sum.DroppedSteps,
		"sim_time", sum.SimTime,
		"decals", sum.Decals,
	)
	for _, c := range sum.Characters {
		slog.Info("Character",
			"name", c.Name,
			"distance", c.Stats.Distance,
			"max_speed", c.Stats.MaxSpeed,
			"max_bonus", c.Stats.MaxBonus,
			slog.Group("hops",
				"total", c.Stats.Hops,
				"qualified", c.Stats.QualifiedHops,
				"reset", c.Stats.ResetHops,
				"grace_expired", c.Stats.GraceExpiries,
			),
			"landings", c.Stats.Landings,
			"shots", c.Stats.Shots,
			"hits", c.Stats.Hits,
			"respawns", c.Stats.Respawns,
		)
	}
	for _, t := range sum.Targets {
		slog.Info("Target", "name", t.Name, "health", t.Health, "hits", t.Hits)
	}
}
