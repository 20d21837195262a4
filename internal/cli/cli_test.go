package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func parseArgs(t *testing.T, args ...string) (options.Program, error) {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = append([]string{"retrochip8"}, args...)
	return ParseFlags()
}

func TestParseFlags_Defaults(t *testing.T) {
	opts, err := parseArgs(t, "pong.ch8")
	assert.NoError(t, err)

	assert.Equal(t, "pong.ch8", opts.Input)
	assert.Equal(t, options.FrontendPixel, opts.Frontend)
	assert.Equal(t, options.DefaultScale, opts.Scale)
	assert.Equal(t, options.DefaultStepsPerFrame, opts.StepsPerFrame)
	assert.Equal(t, options.DefaultFrameRate, opts.FrameRate)
	assert.Equal(t, 0, opts.Frames)
	assert.Equal(t, uint64(0), opts.Seed)
	assert.False(t, opts.Disassemble)
	assert.False(t, opts.Debug)
	assert.False(t, opts.Quiet)
}

func TestParseFlags_Options(t *testing.T) {
	opts, err := parseArgs(t,
		"-f", "HEADLESS", "-scale", "4", "-steps", "20", "-fps", "0",
		"-frames", "120", "-seed", "99", "-screenshot", "out.png", "-q", "-disasm",
		"https://example.com/roms/ibm.ch8")
	assert.NoError(t, err)

	assert.Equal(t, options.FrontendHeadless, opts.Frontend)
	assert.Equal(t, 4, opts.Scale)
	assert.Equal(t, 20, opts.StepsPerFrame)
	assert.Equal(t, 0, opts.FrameRate)
	assert.Equal(t, 120, opts.Frames)
	assert.Equal(t, uint64(99), opts.Seed)
	assert.Equal(t, "out.png", opts.Screenshot)
	assert.True(t, opts.Quiet)
	assert.True(t, opts.Disassemble)
	assert.Equal(t, "https://example.com/roms/ibm.ch8", opts.Input)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		usageError bool
		errContain string
	}{
		{"no rom", nil, true, ""},
		{"unknown flag", []string{"-bogus", "rom.ch8"}, true, "bogus"},
		{"flag after rom", []string{"rom.ch8", "-q"}, true, "found after ROM"},
		{"multiple roms", []string{"a.ch8", "b.ch8"}, false, "only one ROM"},
		{"unknown frontend", []string{"-f", "vga", "rom.ch8"}, false, "unsupported frontend"},
		{"scale too small", []string{"-scale", "0", "rom.ch8"}, false, "scale 0"},
		{"scale too large", []string{"-scale", "65", "rom.ch8"}, false, "scale 65"},
		{"no steps", []string{"-steps", "0", "rom.ch8"}, false, "steps per frame"},
		{"negative fps", []string{"-fps", "-1", "rom.ch8"}, false, "frame rate"},
		{"negative frames", []string{"-frames", "-5", "rom.ch8"}, false, "frame limit"},
		{"screenshot with window", []string{"-screenshot", "a.png", "rom.ch8"}, false, "headless"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArgs(t, tt.args...)
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usageError, errors.As(err, &usageErr))
			if tt.errContain != "" {
				assert.ErrorContains(t, err, tt.errContain)
			}
		})
	}
}
