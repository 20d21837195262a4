// Package main implements the main entry point for a CHIP-8 interpreter
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/app"
	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/frontend/headless"
	"github.com/retroenv/retrochip8/internal/frontend/pixel"
	"github.com/retroenv/retrochip8/internal/frontend/sdl"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/pipeline"
	retroapp "github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := retroapp.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Flags)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			app.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Flags)
	app.PrintBanner(logger, opts, version, commit, date)

	if err := run(ctx, logger, opts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Emulation cancelled")
			return
		}
		logger.Error("Emulation failed", log.Err(err))
		os.Exit(1)
	}
}

// run executes the ROM on the selected frontend.
func run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	p := pipeline.New(logger)
	if opts.Disassemble {
		return p.Disassemble(ctx, opts, os.Stdout)
	}

	title := app.WindowTitle(opts.Input)

	switch opts.Frontend {
	case options.FrontendHeadless:
		frontend := headless.New(logger, opts.Screenshot, opts.Scale)
		_, err := p.Execute(ctx, opts, frontend)
		return errors.Join(err, frontend.Close())

	case options.FrontendSDL:
		frontend, err := sdl.New(title, opts.Scale)
		if err != nil {
			return fmt.Errorf("creating sdl frontend: %w", err)
		}
		_, err = p.Execute(ctx, opts, frontend)
		return errors.Join(err, frontend.Close())

	case options.FrontendPixel:
		var err error
		pixel.Main(func() {
			var frontend *pixel.Frontend
			frontend, err = pixel.New(title, opts.Scale)
			if err != nil {
				err = fmt.Errorf("creating pixel frontend: %w", err)
				return
			}
			_, err = p.Execute(ctx, opts, frontend)
			err = errors.Join(err, frontend.Close())
		})
		return err

	default:
		return fmt.Errorf("unsupported frontend '%s'", opts.Frontend)
	}
}
