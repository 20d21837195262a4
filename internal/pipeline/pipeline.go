// Package pipeline orchestrates the emulation workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/emulator"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// Result describes a finished emulation run.
type Result struct {
	Frames  int
	Source  detector.Source
	ROMSize int
}

// Pipeline orchestrates the complete emulation workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new emulation pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(logger),
	}
}

// Execute acquires the ROM named by the program options and runs it on a new
// engine, presenting the frames on the given frontend.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, frontend emulator.Frontend) (Result, error) {
	source := p.detector.Detect(opts.Input)

	rom, err := p.loader.Load(ctx, opts.Input, source)
	if err != nil {
		return Result{Source: source}, fmt.Errorf("loading ROM: %w", err)
	}

	return p.ExecuteWithROM(ctx, rom, opts, frontend, source)
}

// ExecuteWithROM runs an already loaded ROM image.
// This is useful for testing and programmatic usage where the image is already in memory.
func (p *Pipeline) ExecuteWithROM(ctx context.Context, rom []byte, opts options.Program,
	frontend emulator.Frontend, source detector.Source) (Result, error) {

	result := Result{
		Source:  source,
		ROMSize: len(rom),
	}

	p.printInfo(opts, len(rom))

	engine := chip8.New(config.EngineOptions(opts.Emulation)...)
	runner := emulator.New(p.logger, opts.Emulation, engine)

	frames, err := runner.Run(ctx, rom, frontend)
	result.Frames = frames
	if err != nil {
		return result, fmt.Errorf("running ROM: %w", err)
	}

	p.logger.Debug("Emulation finished", log.Int("frames", frames))
	return result, nil
}

// Disassemble acquires the ROM named by the program options and writes an
// assembly listing of it.
func (p *Pipeline) Disassemble(ctx context.Context, opts options.Program, w io.Writer) error {
	source := p.detector.Detect(opts.Input)

	rom, err := p.loader.Load(ctx, opts.Input, source)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	listing := writer.New(w, writer.Options{
		OffsetComments: true,
		HexComments:    true,
	})
	if err := listing.Write(rom); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}
	return nil
}

// printInfo prints information about the ROM being run.
func (p *Pipeline) printInfo(opts options.Program, size int) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Running CHIP-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", size),
		log.String("frontend", opts.Frontend),
	)
}
