// Package emulator drives a CHIP-8 engine frame by frame for a frontend.
package emulator

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/keymap"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Frontend presents the framebuffer and supplies keypad input.
type Frontend interface {
	// Poll returns the key transitions since the last poll and whether the
	// user requested to quit.
	Poll() ([]keymap.KeyEvent, bool)
	// Render presents the framebuffer of the current frame.
	Render(fb *chip8.Framebuffer) error
}

// Runner owns an engine and runs programs on it.
type Runner struct {
	logger *log.Logger
	opts   options.Emulation
	engine *chip8.Engine

	sound bool
}

// New creates a new runner for the given engine.
func New(logger *log.Logger, opts options.Emulation, engine *chip8.Engine) *Runner {
	return &Runner{
		logger: logger,
		opts:   opts,
		engine: engine,
	}
}

// Engine returns the engine that the runner executes programs on.
func (r *Runner) Engine() *chip8.Engine {
	return r.engine
}

// Run loads the program image and executes it until the context is canceled,
// the frontend requests to quit, the frame limit is reached or the engine
// encounters a fatal error. It returns the number of completed frames.
func (r *Runner) Run(ctx context.Context, rom []byte, frontend Frontend) (int, error) {
	r.engine.Reset()
	if err := r.engine.Load(rom); err != nil {
		return 0, fmt.Errorf("loading program: %w", err)
	}
	r.sound = false

	var tick <-chan time.Time
	if r.opts.FrameRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(r.opts.FrameRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	r.logger.Debug("Starting emulation",
		log.Int("steps_per_frame", r.opts.StepsPerFrame),
		log.Int("frame_rate", r.opts.FrameRate),
		log.Int("frame_limit", r.opts.Frames))

	for frame := 0; r.opts.Frames == 0 || frame < r.opts.Frames; frame++ {
		if err := ctx.Err(); err != nil {
			return frame, fmt.Errorf("frame %d: %w", frame, err)
		}

		quit, err := r.runFrame(frontend)
		if err != nil {
			return frame, fmt.Errorf("executing frame %d: %w", frame, err)
		}
		if quit {
			r.logger.Debug("Frontend requested quit", log.Int("frame", frame))
			return frame, nil
		}

		if tick != nil {
			select {
			case <-ctx.Done():
				return frame + 1, fmt.Errorf("frame %d: %w", frame+1, ctx.Err())
			case <-tick:
			}
		}
	}
	return r.opts.Frames, nil
}

// runFrame executes a single frame and returns whether the frontend asked to quit.
func (r *Runner) runFrame(frontend Frontend) (bool, error) {
	events, quit := frontend.Poll()
	if quit {
		return true, nil
	}
	for _, event := range events {
		if err := r.engine.SetKey(event.Key, event.Pressed); err != nil {
			return false, fmt.Errorf("setting key: %w", err)
		}
	}

	for range r.opts.StepsPerFrame {
		if err := r.engine.Step(); err != nil {
			return false, err
		}
	}
	r.engine.TickTimers()
	r.updateSound()

	fb := r.engine.Display()
	if err := frontend.Render(&fb); err != nil {
		return false, fmt.Errorf("rendering: %w", err)
	}
	return false, nil
}

func (r *Runner) updateSound() {
	active := r.engine.SoundActive()
	if active == r.sound {
		return
	}
	r.sound = active
	if active {
		r.logger.Debug("Sound on")
	} else {
		r.logger.Debug("Sound off")
	}
}
