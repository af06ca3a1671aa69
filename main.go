package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/arekfu/quoridor/pkg/engine/logging"
	"github.com/arekfu/quoridor/pkg/engine/terminal"
	"github.com/arekfu/quoridor/pkg/game/ai"
	"github.com/arekfu/quoridor/pkg/game/config"
	"github.com/arekfu/quoridor/pkg/game/devtools"
	"github.com/arekfu/quoridor/pkg/game/gameplay"
	"github.com/arekfu/quoridor/pkg/game/i18n"
	"github.com/arekfu/quoridor/pkg/game/menu"
	"github.com/arekfu/quoridor/pkg/game/renderer"
	ebitenrenderer "github.com/arekfu/quoridor/pkg/game/renderer/ebiten"
	"github.com/arekfu/quoridor/pkg/game/renderer/tui"
	"github.com/arekfu/quoridor/pkg/game/state"
)

// Version of the command
const Version = "1.0.0"

// computerDelay paces computer moves in the interactive renderers
const computerDelay = 300 * time.Millisecond

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: loading .env: %v\n", err)
	}

	cmd := newCommand()
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	d := config.Defaults()
	return &cli.Command{
		Name:    "quoridor",
		Usage:   "race your pawn across the board while walling in the others",
		Version: Version,
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "side", Value: d.Side, Usage: "cells along each side of the board", Sources: cli.EnvVars("QUORIDOR_SIDE")},
			&cli.IntFlag{Name: "seats", Value: d.Seats, Usage: "number of seats, 2 to 4", Sources: cli.EnvVars("QUORIDOR_SEATS")},
			&cli.StringFlag{Name: "computer", Value: "2", Usage: "comma-separated seats played by the computer, \"all\" or \"none\"", Sources: cli.EnvVars("QUORIDOR_COMPUTER")},
			&cli.StringFlag{Name: "eval", Value: d.Eval.String(), Usage: "computer evaluation: enemy or ratio", Sources: cli.EnvVars("QUORIDOR_EVAL")},
			&cli.StringFlag{Name: "tie-break", Value: d.TieBreak.String(), Usage: "enemy choice among equally close seats: first, last or random", Sources: cli.EnvVars("QUORIDOR_TIE_BREAK")},
			&cli.Int64Flag{Name: "seed", Value: d.Seed, Usage: "seed of the computer seats", Sources: cli.EnvVars("QUORIDOR_SEED")},
			&cli.IntFlag{Name: "stock", Value: d.BarrierStock, Usage: "barriers per seat, -1 for unlimited", Sources: cli.EnvVars("QUORIDOR_STOCK")},
			&cli.IntFlag{Name: "radius", Value: d.BarrierRadius, Usage: "computer barrier search radius around pawns, 0 for the whole board, -1 for 2 with more than two seats and the whole board otherwise", Sources: cli.EnvVars("QUORIDOR_RADIUS")},
			&cli.StringFlag{Name: "renderer", Value: d.Renderer, Usage: "tui, ebiten or none", Sources: cli.EnvVars("QUORIDOR_RENDERER")},
			&cli.StringFlag{Name: "lang", Value: d.Language, Usage: "message language", Sources: cli.EnvVars("QUORIDOR_LANG")},
			&cli.BoolFlag{Name: "verify", Usage: "check the board after every move", Sources: cli.EnvVars("QUORIDOR_VERIFY")},
			&cli.IntFlag{Name: "max-turns", Value: d.MaxTurns, Usage: "turn bound of a computer-only game, 0 for none", Sources: cli.EnvVars("QUORIDOR_MAX_TURNS")},
			&cli.StringFlag{Name: "log-level", Value: d.Log.Level, Usage: "log level", Sources: cli.EnvVars("QUORIDOR_LOG_LEVEL")},
			&cli.StringFlag{Name: "log-format", Value: d.Log.Format, Usage: "log format: text or json", Sources: cli.EnvVars("QUORIDOR_LOG_FORMAT")},
			&cli.StringFlag{Name: "log-file", Value: d.Log.File, Usage: "log file, empty for stderr", Sources: cli.EnvVars("QUORIDOR_LOG_FILE")},
		},
		Commands: []*cli.Command{
			{
				Name:  "keys",
				Usage: "list the key bindings",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if err := i18n.Load(cmd.String("lang")); err != nil {
						return err
					}
					style := menu.Plain
					if terminal.IsInteractive() {
						r := tui.New()
						if err := r.Init(); err != nil {
							return err
						}
						renderer.SetRenderer(r)
						style = renderer.StyleText
					}
					menu.WriteBindings(os.Stdout, gotext.Get("TITLE"), style)
					return nil
				},
			},
		},
		Action: run,
	}
}

// optionsFrom reads the game options from the parsed command line
func optionsFrom(cmd *cli.Command) (config.Options, error) {
	o := config.Defaults()
	o.Side = cmd.Int("side")
	o.Seats = cmd.Int("seats")
	o.Seed = cmd.Int64("seed")
	o.BarrierStock = cmd.Int("stock")
	o.BarrierRadius = cmd.Int("radius")
	o.Renderer = cmd.String("renderer")
	o.Language = cmd.String("lang")
	o.Verify = cmd.Bool("verify")
	o.MaxTurns = cmd.Int("max-turns")
	o.Log = logging.Options{
		Level:  cmd.String("log-level"),
		Format: cmd.String("log-format"),
		File:   cmd.String("log-file"),
	}

	var err error
	if o.Computer, err = config.ParseSeatList(cmd.String("computer"), o.Seats); err != nil {
		return o, fmt.Errorf("--computer: %w", err)
	}
	if o.Eval, err = ai.ParseEvalMode(cmd.String("eval")); err != nil {
		return o, fmt.Errorf("--eval: %w", err)
	}
	if o.TieBreak, err = ai.ParseTieBreak(cmd.String("tie-break")); err != nil {
		return o, fmt.Errorf("--tie-break: %w", err)
	}
	return o, o.Validate()
}

func run(ctx context.Context, cmd *cli.Command) error {
	opts, err := optionsFrom(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(opts.Log)
	if err != nil {
		return err
	}
	defer closer.Close()
	entry := log.NewEntry(logger)
	gameplay.SetLogger(entry)

	if err := i18n.Load(opts.Language); err != nil {
		return err
	}

	g, err := gameplay.BuildGame(opts, entry)
	if err != nil {
		return err
	}

	switch opts.Renderer {
	case config.RendererNone:
		return runHeadless(ctx, g, opts)
	case config.RendererEbiten:
		return runEbiten(ctx, g, entry)
	default:
		return runTUI(ctx, g)
	}
}

func runTUI(ctx context.Context, g *state.Game) error {
	if !terminal.IsInteractive() {
		return errors.New("the tui renderer needs an interactive terminal; try --renderer none")
	}
	r := tui.New()
	renderer.SetRenderer(r)
	if err := r.Init(); err != nil {
		return err
	}

	err := gameplay.Run(ctx, g, r, gameplay.Options{ComputerDelay: computerDelay})
	renderer.RenderFrame(g)
	renderer.ShowMessage(gotext.Get("GOODBYE"))
	return err
}

// runEbiten runs the game loop in its own goroutine while ebiten owns the
// main one
func runEbiten(ctx context.Context, g *state.Game, entry *log.Entry) error {
	r := ebitenrenderer.New()
	renderer.SetRenderer(r)
	if err := r.Init(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- gameplay.Run(ctx, g, r, gameplay.Options{ComputerDelay: computerDelay})
		r.Close()
	}()

	runErr := r.Run()
	r.Close()
	cancel()

	if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if runErr != nil {
		entry.WithError(runErr).Error("window loop failed")
	}
	return runErr
}

func runHeadless(ctx context.Context, g *state.Game, opts config.Options) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	err := gameplay.PlayOut(ctx, g, opts.MaxTurns)
	devtools.WriteBoardDump(os.Stdout, g)
	for _, msg := range g.Messages {
		fmt.Println(msg)
	}
	return err
}
