package app

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestWindowTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"pong.ch8", "pong.ch8 - retrochip8"},
		{"roms/games/tetris.ch8", "tetris.ch8 - retrochip8"},
		{`C:\roms\maze.c8`, "maze.c8 - retrochip8"},
		{"https://example.com/roms/ibm.ch8", "ibm.ch8 - retrochip8"},
		{"", "retrochip8"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, WindowTitle(tt.input))
		})
	}
}

func TestPrintBanner(t *testing.T) {
	logger := log.NewTestLogger(t)
	PrintBanner(logger, options.Program{}, "1.0.0", "abcdef0123", "2024-01-01")
	PrintBanner(logger, options.Program{Flags: options.Flags{Quiet: true}}, "dev", "", "")
}
