package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/minaorangina/sibyl/config"
	"github.com/minaorangina/sibyl/deck"
	"github.com/minaorangina/sibyl/engine"
	"github.com/minaorangina/sibyl/game"
	"github.com/minaorangina/sibyl/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var out io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.Level()}))

	session := engine.NewSession(engine.SessionOpts{
		Controller: game.NewController(game.ControllerOpts{Deck: deck.NewWithRNG(cfg.RNG())}),
		Pacing:     cfg.Pacing(),
		Logger:     logger,
	})

	if _, err := tea.NewProgram(tui.NewModel(session), tea.WithAltScreen()).Run(); err != nil {
		logger.Error("terminal client failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
