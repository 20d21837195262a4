// Package loader handles ROM image loading operations.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrogolib/log"
)

// DefaultTimeout is the time allowed for downloading a ROM.
const DefaultTimeout = 30 * time.Second

// ErrEmptyImage is returned for ROM images without any content.
var ErrEmptyImage = errors.New("empty ROM image")

// Loader handles loading ROM images from disk or over HTTP.
type Loader struct {
	logger *log.Logger
	client *http.Client
}

// New creates a new ROM loader.
func New(logger *log.Logger) *Loader {
	return &Loader{
		logger: logger,
		client: &http.Client{Timeout: DefaultTimeout},
	}
}

// Load reads the ROM image from the given source and checks that it fits
// into the program area of the machine.
func (l *Loader) Load(ctx context.Context, input string, source detector.Source) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	switch source {
	case detector.URL:
		data, err = l.download(ctx, input)
	case detector.File:
		data, err = os.ReadFile(input)
		if err != nil {
			err = fmt.Errorf("reading file %s: %w", input, err)
		}
	default:
		err = fmt.Errorf("unsupported ROM source '%s'", source)
	}
	if err != nil {
		return nil, err
	}

	if err := validate(data); err != nil {
		return nil, fmt.Errorf("loading %s: %w", input, err)
	}

	l.logger.Debug("Loaded ROM",
		log.String("input", input),
		log.Int("size", len(data)))
	return data, nil
}

func (l *Loader) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("downloading %s: unexpected status %s", url, resp.Status)
	}

	// one byte more than allowed to detect oversized images without
	// reading an unbounded body
	data, err := io.ReadAll(io.LimitReader(resp.Body, chip8.MaxProgramSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return data, nil
}

func validate(data []byte) error {
	switch {
	case len(data) == 0:
		return ErrEmptyImage
	case len(data) > chip8.MaxProgramSize:
		return fmt.Errorf("image size %d exceeds %d bytes: %w", len(data), chip8.MaxProgramSize, chip8.ErrCapacity)
	}
	return nil
}
