package config

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"softypoker/internal/util"
)

// Config provides configuration for SoftyPoker
type Config struct {
	loaded bool
	// Seed selects a deterministic generator. 0 uses crypto/rand.
	Seed int64 `yaml:"seed" envconfig:"seed"`
	Log  struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log"`
	Game struct {
		StartingCredits int `yaml:"startingCredits" envconfig:"starting_credits"`
		MaxBet          int `yaml:"maxBet" envconfig:"max_bet"`
	} `yaml:"game"`
	Host struct {
		// CashOutStep is the milliseconds per credit of the cash-out animation
		CashOutStep int `yaml:"cashOutStep" envconfig:"cash_out_step"`
		// DealDelay is the milliseconds before each dealt or replaced card is shown
		DealDelay int `yaml:"dealDelay" envconfig:"deal_delay"`
	} `yaml:"host"`
	Simulate struct {
		Sessions int  `yaml:"sessions" envconfig:"sessions"`
		Rounds   int  `yaml:"rounds" envconfig:"rounds"`
		Workers  int  `yaml:"workers" envconfig:"workers"`
		Gamble   bool `yaml:"gamble" envconfig:"gamble"`
	} `yaml:"simulate"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	cfg := Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Game.StartingCredits = 10
	cfg.Game.MaxBet = 5
	cfg.Host.CashOutStep = 200
	cfg.Host.DealDelay = 500
	cfg.Simulate.Sessions = 1000
	cfg.Simulate.Rounds = 100
	cfg.Simulate.Workers = 4
	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; the defaults and environment are used.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("SOFTY_CONFIG_FILE", "softypoker.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
	}

	if err := envconfig.Process("softy", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// CashOutStep returns the delay between each credit of the cash-out animation
func (c Config) CashOutStep() time.Duration {
	return time.Duration(c.Host.CashOutStep) * time.Millisecond
}

// DealDelay returns the pause between dealt cards in the host
func (c Config) DealDelay() time.Duration {
	return time.Duration(c.Host.DealDelay) * time.Millisecond
}
