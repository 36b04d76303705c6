package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pkg/errors"

	"escaperoom/pkg/engine/logging"
	"escaperoom/pkg/engine/loop"
	"escaperoom/pkg/game/config"
	"escaperoom/pkg/game/gameplay"
	"escaperoom/pkg/game/i18n"
	"escaperoom/pkg/game/notify"
	ebitenrenderer "escaperoom/pkg/game/renderer/ebiten"
	"escaperoom/pkg/game/renderer/tui"
	"escaperoom/pkg/game/save"
	"escaperoom/pkg/game/setup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "escaperoom:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.RegisterFlags(flag.CommandLine)
	fresh := flag.Bool("fresh", false, "ignore the saved session and start over")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closer, err := logging.New(logging.Options{File: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return err
	}
	defer closer.Close()
	slog.SetDefault(logger)

	if err := i18n.SetLanguage(cfg.Lang); err != nil {
		logger.Warn("language unavailable, using default", "lang", cfg.Lang, "error", err)
	}

	layout, err := setup.Lookup(cfg.Layout)
	if err != nil {
		return err
	}
	layout.TimeLimit = cfg.TimeLimitSeconds()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var slot *save.Slot
	if cfg.SavePath != "" {
		store, err := save.Open(ctx, cfg.SavePath)
		if err != nil {
			return err
		}
		defer store.Close()
		slot = &save.Slot{Store: store, Name: cfg.Slot}
	}

	messages := notify.NewLog()
	opts := gameplay.Options{
		Notifier: notify.Fanout{messages, notify.Slog{Logger: logger}},
		Logger:   logger,
	}
	if slot != nil && cfg.Autosave {
		opts.Saver = slot
	}

	var (
		window *ebitenrenderer.Window
		text   *tui.TUIRenderer
	)
	switch cfg.Renderer {
	case config.RendererWindow:
		window, err = ebitenrenderer.New(ebitenrenderer.Options{Messages: messages, Tick: cfg.Tick, Logger: logger})
		if err != nil {
			return err
		}
		opts.Renderer = window
	default:
		text = tui.New(os.Stdout, messages)
		opts.Renderer = text
	}

	ctrl, err := gameplay.New(layout, opts)
	if err != nil {
		return err
	}
	cmds := &gameplay.Commands{Controller: ctrl, Slot: slot}

	if slot != nil && !*fresh {
		restore(ctrl, slot, logger)
	}

	logger.Info("game ready",
		"layout", cfg.Layout,
		"time_limit", layout.TimeLimit,
		"renderer", cfg.Renderer,
		"save", cfg.SavePath)

	if window != nil {
		window.Attach(cmds)
		return window.Run()
	}
	return runTerminal(ctx, cmds, messages, text, os.Stdin, cfg)
}

// restore loads the autosave slot into ctrl. A missing or unusable save
// leaves the fresh session in place.
func restore(ctrl *gameplay.Controller, slot *save.Slot, logger *slog.Logger) {
	blob, err := slot.Load()
	switch {
	case errors.Is(err, save.ErrNoSave):
		return
	case err != nil:
		logger.Warn("could not read saved session", "slot", slot.Name, "error", err)
		return
	}
	if err := ctrl.Restore(blob); err != nil {
		logger.Warn("ignoring saved session", "slot", slot.Name, "error", err)
	}
}

// runTerminal drives the game from typed lines and a countdown clock. All
// controller calls happen inside the loop handler.
func runTerminal(ctx context.Context, cmds *gameplay.Commands, messages *notify.Log, out *tui.TUIRenderer, in io.Reader, cfg config.Config) error {
	ctrl := cmds.Controller
	events := make(chan loop.Event)
	clock := loop.NewClock(cfg.Tick, events)
	defer clock.Stop()

	go loop.ReadLines(ctx, in, events)

	syncClock := func() {
		if ctrl.Active() {
			clock.Start(ctx)
		} else {
			clock.Stop()
		}
	}

	ctrl.Render()
	syncClock()

	err := loop.Run(ctx, events, func(ev loop.Event) bool {
		switch {
		case ev.Err != nil:
			return false
		case ev.Tick:
			ctrl.Tick()
		default:
			res := cmds.ExecuteLine(ev.Line)
			if res.Quit {
				out.PrintLines(res.Lines)
				return false
			}
			for _, line := range res.Lines {
				messages.Add(line)
			}
			ctrl.Render()
		}
		syncClock()
		return true
	})
	if errors.Is(err, loop.ErrStopped) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
