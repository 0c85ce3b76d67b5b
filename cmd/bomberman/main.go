package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/amalg/bomberman-sim/internal/match"
	"github.com/amalg/bomberman-sim/internal/ui"
)

func main() {
	// A missing .env is fine; flags and the real environment still apply.
	_ = godotenv.Load()

	cmd := &cli.Command{
		Name:  "bomberman",
		Usage: "deterministic Bomberman simulation with AI agents",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "width", Value: 15, Usage: "board width (odd number)", Sources: cli.EnvVars("BOMBERMAN_WIDTH")},
			&cli.IntFlag{Name: "height", Value: 13, Usage: "board height (odd number)", Sources: cli.EnvVars("BOMBERMAN_HEIGHT")},
			&cli.Int64Flag{Name: "seed", Usage: "board and AI seed (0 picks one from the clock)", Sources: cli.EnvVars("BOMBERMAN_SEED")},
			&cli.IntFlag{Name: "agents", Value: 2, Usage: "number of AI players", Sources: cli.EnvVars("BOMBERMAN_AGENTS")},
			&cli.IntFlag{Name: "ticks", Value: 100, Usage: "maximum number of steps", Sources: cli.EnvVars("BOMBERMAN_TICKS")},
			&cli.DurationFlag{Name: "tick", Value: match.DefaultConfig().TickInterval, Usage: "simulated time per step", Sources: cli.EnvVars("BOMBERMAN_TICK")},
			&cli.StringFlag{Name: "log", Usage: "log file path (default: discard logs in play, stderr in sim)", Sources: cli.EnvVars("BOMBERMAN_LOG")},
			&cli.BoolFlag{Name: "verbose", Usage: "log AI decisions at debug level", Sources: cli.EnvVars("BOMBERMAN_VERBOSE")},
		},
		Commands: []*cli.Command{
			{
				Name:  "play",
				Usage: "run a match in the terminal UI",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "humans", Value: 1, Usage: "keyboard-controlled players (0 or 1)", Sources: cli.EnvVars("BOMBERMAN_HUMANS")},
				},
				Action: play,
			},
			{
				Name:  "sim",
				Usage: "run matches headless and print the outcome",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "matches", Value: 1, Usage: "number of matches, seeded seed, seed+1, ...", Sources: cli.EnvVars("BOMBERMAN_MATCHES")},
					&cli.IntFlag{Name: "parallel", Usage: "matches run at once (0 = unlimited)", Sources: cli.EnvVars("BOMBERMAN_PARALLEL")},
					&cli.BoolFlag{Name: "realtime", Usage: "pace steps to the tick interval", Sources: cli.EnvVars("BOMBERMAN_REALTIME")},
					&cli.BoolFlag{Name: "trace", Usage: "print the board after every step (single match only)"},
				},
				Action: simulate,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// matchConfig builds a match configuration from the shared flags.
func matchConfig(cmd *cli.Command) match.Config {
	cfg := match.DefaultConfig()
	cfg.Game.Width = cmd.Int("width")
	cfg.Game.Height = cmd.Int("height")

	// Ensure odd dimensions so every spawn corner lies off the pillar grid
	if cfg.Game.Width%2 == 0 {
		cfg.Game.Width++
	}
	if cfg.Game.Height%2 == 0 {
		cfg.Game.Height++
	}
	if seed := cmd.Int64("seed"); seed != 0 {
		cfg.Game.Seed = seed
	}
	cfg.Agents = cmd.Int("agents")
	cfg.MaxTicks = cmd.Int("ticks")
	cfg.TickInterval = cmd.Duration("tick")
	return cfg
}

// newLogger writes to the --log file when set, otherwise to fallback.
// The returned close func must be called when done.
func newLogger(cmd *cli.Command, fallback io.Writer) (*slog.Logger, func() error, error) {
	level := slog.LevelInfo
	if cmd.Bool("verbose") {
		level = slog.LevelDebug
	}

	w, closeFn := fallback, func() error { return nil }
	if path := cmd.String("log"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, f.Close
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closeFn, nil
}

func play(ctx context.Context, cmd *cli.Command) error {
	// Anything written to stderr would corrupt the TUI.
	logger, closeLog, err := newLogger(cmd, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := matchConfig(cmd)
	cfg.Humans = cmd.Int("humans")
	if cfg.Humans > 1 {
		return fmt.Errorf("at most one keyboard player is supported, got %d", cfg.Humans)
	}
	m, err := match.New(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("starting terminal UI", "match", m.ID.String(), "seed", cfg.Game.Seed)
	p := tea.NewProgram(ui.NewModel(m), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}

	res := m.Result()
	fmt.Printf("seed %d, %d ticks, %s\n", res.Seed, res.Ticks, outcome(res))
	return nil
}

func simulate(ctx context.Context, cmd *cli.Command) error {
	logger, closeLog, err := newLogger(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	base := matchConfig(cmd)
	base.Realtime = cmd.Bool("realtime")

	n := cmd.Int("matches")
	if n < 1 {
		return fmt.Errorf("matches must be at least 1, got %d", n)
	}

	if n == 1 {
		m, err := match.New(base, logger)
		if err != nil {
			return err
		}
		if cmd.Bool("trace") {
			m.OnStep(func(m *match.Match) {
				fmt.Printf("tick %d (%v)\n%s\n\n", m.Ticks(), m.Sim().GameTime(), m.Sim().RenderString())
			})
		}
		res, err := m.Run(ctx)
		if err != nil {
			return err
		}
		printResult(res)
		return nil
	}

	cfgs := make([]match.Config, n)
	for i := range cfgs {
		cfgs[i] = base
		cfgs[i].Game.Seed = base.Game.Seed + int64(i)
	}
	results, err := match.RunBatch(ctx, cfgs, cmd.Int("parallel"), logger)
	if err != nil {
		return err
	}

	wins := make(map[int]int)
	draws, timeouts := 0, 0
	for _, res := range results {
		printResult(res)
		switch {
		case res.WinnerID >= 0:
			wins[res.WinnerID]++
		case res.Draw:
			draws++
		default:
			timeouts++
		}
	}
	fmt.Printf("%d matches: ", n)
	for id := 0; id < base.Agents; id++ {
		fmt.Printf("P%d %d wins, ", id+1, wins[id])
	}
	fmt.Printf("%d draws, %d unfinished\n", draws, timeouts)
	return nil
}

func printResult(res match.Result) {
	fmt.Printf("match %s seed %d: %d ticks (%v), %s\n", res.ID, res.Seed, res.Ticks, res.GameTime, outcome(res))
	fmt.Printf("  bombs %d, crates %d, pickups %d\n", res.Stats.BombsPlaced, res.Stats.CratesDestroyed, res.Stats.PowerupsCollected)
	fmt.Println(res.Final)
	fmt.Println()
}

func outcome(res match.Result) string {
	switch {
	case res.WinnerID >= 0:
		return fmt.Sprintf("P%d wins", res.WinnerID+1)
	case res.Draw:
		return "draw"
	case res.Over:
		return "over"
	default:
		return fmt.Sprintf("%d alive, no winner", res.Alive)
	}
}
