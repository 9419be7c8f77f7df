package main

import (
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"softypoker/internal/tui"
	"softypoker/internal/util"
	"softypoker/pkg/playable/videopoker"
)

// PlayCmd runs an interactive session
type PlayCmd struct {
	Seed    *int64 `help:"Seed for a reproducible deal order (overrides config)"`
	Player  string `short:"p" help:"Player name (random if empty)"`
	Credits int    `help:"Starting credits (overrides config)"`
	LogFile string `help:"Write logs to this file instead of discarding them"`
}

// Run starts the terminal host
func (p *PlayCmd) Run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("play needs a terminal, try the simulate command instead")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// logs would draw over the table
	logrus.SetOutput(io.Discard)
	if p.LogFile != "" {
		file, err := os.OpenFile(p.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer func() { _ = file.Close() }()

		logrus.SetOutput(file)
	}

	opts := gameOptions(cfg, p.Seed)
	if p.Credits > 0 {
		opts.StartingCredits = p.Credits
	}

	player := p.Player
	if player == "" {
		player = util.RandomName(nil)
	}

	session, err := videopoker.NewSession(logrus.StandardLogger(), opts)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"session": session.ID,
		"player":  player,
	}).Info("starting session")

	model := tui.NewModel(session, logrus.StandardLogger(), tui.Options{
		Player:      player,
		CashOutStep: cfg.CashOutStep(),
		DealDelay:   cfg.DealDelay(),
	})

	return tui.Run(model, tea.WithAltScreen())
}
