// Package options contains the program options.
package options

// Frontend names.
const (
	FrontendPixel    = "pixel"
	FrontendSDL      = "sdl"
	FrontendHeadless = "headless"
)

// Frontends lists the supported frontends.
var Frontends = []string{FrontendPixel, FrontendSDL, FrontendHeadless}

// Default option values.
const (
	DefaultScale         = 10
	DefaultStepsPerFrame = 10
	DefaultFrameRate     = 60
	MaxScale             = 64
)

// Parameters contains input and output options.
type Parameters struct {
	Input      string `arg:"positional" usage:"ROM file or http(s) URL"`
	Screenshot string `flag:"screenshot" usage:"PNG file written at the end of a headless run"`
}

// Flags contains behavior options.
type Flags struct {
	Frontend    string `flag:"f" usage:"frontend: pixel, sdl, headless" default:"pixel"`
	Disassemble bool   `flag:"disasm" usage:"print a listing of the ROM instead of running it"`
	Debug       bool   `flag:"debug" usage:"enable debug logging"`
	Quiet       bool   `flag:"q" usage:"quiet mode"`
}

// Emulation contains the pacing and rendering options of the emulation loop.
type Emulation struct {
	Scale         int    `flag:"scale" usage:"pixel scale factor" default:"10"`
	StepsPerFrame int    `flag:"steps" usage:"CPU steps per frame" default:"10"`
	FrameRate     int    `flag:"fps" usage:"frames and timer ticks per second, 0 runs unpaced" default:"60"`
	Frames        int    `flag:"frames" usage:"stop after this many frames, 0 runs until closed"`
	Seed          uint64 `flag:"seed" usage:"random number seed, 0 uses the current time"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	Emulation
}

// NewEmulation returns the emulation options with default values.
func NewEmulation() Emulation {
	return Emulation{
		Scale:         DefaultScale,
		StepsPerFrame: DefaultStepsPerFrame,
		FrameRate:     DefaultFrameRate,
	}
}
