// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses the command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	opts := options.Program{Emulation: options.NewEmulation()}
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	if err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}

	args := flags.Args()
	if len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}
	if err := validateArgs(flags, args); err != nil {
		return opts, err
	}
	opts.Input = args[0]

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage text and the flag defaults.
func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: retrochip8 [options] <ROM file or URL>\n\n")
	e.flags.SetOutput(os.Stdout)
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(flags *flag.FlagSet, args []string) error {
	if len(args) > 1 {
		for _, arg := range args[1:] {
			if strings.HasPrefix(arg, "-") {
				return &UsageError{
					flags: flags,
					msg:   fmt.Sprintf("Potential argument %s found after ROM, please pass the ROM as last argument", arg),
				}
			}
		}
		return fmt.Errorf("only one ROM can be run, got %d", len(args))
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Frontend = strings.ToLower(opts.Frontend)
	if !slices.Contains(options.Frontends, opts.Frontend) {
		return fmt.Errorf("unsupported frontend: %s. Valid options: %s",
			opts.Frontend, strings.Join(options.Frontends, ", "))
	}

	switch {
	case opts.Scale < 1 || opts.Scale > options.MaxScale:
		return fmt.Errorf("scale %d out of range 1-%d", opts.Scale, options.MaxScale)
	case opts.StepsPerFrame < 1:
		return fmt.Errorf("steps per frame must be at least 1, got %d", opts.StepsPerFrame)
	case opts.FrameRate < 0:
		return fmt.Errorf("frame rate can not be negative, got %d", opts.FrameRate)
	case opts.Frames < 0:
		return fmt.Errorf("frame limit can not be negative, got %d", opts.Frames)
	case opts.Screenshot != "" && opts.Frontend != options.FrontendHeadless:
		return fmt.Errorf("screenshot is only supported by the %s frontend", options.FrontendHeadless)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Frontend, "f", options.FrontendPixel, "frontend to use (pixel/sdl/headless)")
	flags.StringVar(&opts.Screenshot, "screenshot", "", "name of a PNG file to write the last frame to, headless frontend only")
	flags.IntVar(&opts.Scale, "scale", opts.Scale, "pixel scale factor of the window and screenshot")
	flags.IntVar(&opts.StepsPerFrame, "steps", opts.StepsPerFrame, "CPU instructions executed per frame")
	flags.IntVar(&opts.FrameRate, "fps", opts.FrameRate, "frames and timer ticks per second, 0 runs as fast as possible")
	flags.IntVar(&opts.Frames, "frames", 0, "stop after the given number of frames, 0 runs until the window is closed")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed of the random number generator, 0 uses the current time")
	flags.BoolVar(&opts.Disassemble, "disasm", false, "print an assembly listing of the ROM to stdout instead of running it")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
