package main

import (
	"os"

	"gopkg.in/yaml.v2"
	"softypoker/internal/config"
)

// ConfigCmd prints the default configuration
type ConfigCmd struct{}

// Run encodes the default configuration to stdout
func (c *ConfigCmd) Run() error {
	return yaml.NewEncoder(os.Stdout).Encode(config.DefaultConfig())
}
