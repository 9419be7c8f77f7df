package main

import (
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
	"softypoker/internal/config"
	"softypoker/internal/rng"
	"softypoker/pkg/playable/videopoker"
	"softypoker/pkg/poker"
)

// Version is set by ldflags during build
var Version = "v0.0.0-dev"

// CLI is the softypoker command line
type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Play video poker in the terminal"`
	Simulate SimulateCmd      `cmd:"" help:"Play many sessions headlessly and report the return to player"`
	Paytable PaytableCmd      `cmd:"" help:"Print the paytable for a bet"`
	Config   ConfigCmd        `cmd:"" help:"Print the default configuration as YAML"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("softypoker"),
		kong.Description("Jacks-or-better video poker with a high-low gamble"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": Version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// loadConfig loads the configuration and sets up the logger from it
func loadConfig() (config.Config, error) {
	if err := config.Load(); err != nil {
		return config.Config{}, err
	}

	cfg := config.Instance()
	setupLogger(cfg)
	return cfg, nil
}

func setupLogger(cfg config.Config) {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	logrus.SetOutput(os.Stderr)
}

// gameOptions builds the session options from the configuration
// seed overrides the configured seed when it is set.
func gameOptions(cfg config.Config, seed *int64) videopoker.Options {
	s := cfg.Seed
	if seed != nil {
		s = *seed
	}

	return videopoker.Options{
		StartingCredits: cfg.Game.StartingCredits,
		MaxBet:          cfg.Game.MaxBet,
		Paytable:        poker.Standard(),
		Generator:       rng.New(s),
	}
}
