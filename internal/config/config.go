// Package config turns the program options into configured components.
package config

import (
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with the level selected by the debug and quiet flags.
// Debug takes precedence over quiet.
func CreateLogger(flags options.Flags) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case flags.Debug:
		cfg.Level = log.DebugLevel
	case flags.Quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// EngineOptions returns the interpreter options for the emulation settings.
// A zero seed leaves the random source time seeded.
func EngineOptions(emu options.Emulation) []chip8.Option {
	var opts []chip8.Option
	if emu.Seed != 0 {
		opts = append(opts, chip8.WithSeed(emu.Seed))
	}
	return opts
}
