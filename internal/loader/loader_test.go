package loader

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestLoadFile(t *testing.T) {
	logger := log.NewTestLogger(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		data     []byte
		wantErr  error
		wantSize int
	}{
		{"small program", []byte{0x00, 0xE0, 0x12, 0x00}, nil, 4},
		{"maximum size", make([]byte, chip8.MaxProgramSize), nil, chip8.MaxProgramSize},
		{"empty image", []byte{}, ErrEmptyImage, 0},
		{"oversized image", make([]byte, chip8.MaxProgramSize+1), chip8.ErrCapacity, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := createTempFile(t, tt.data)
			data, err := New(logger).Load(ctx, path, detector.File)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, data)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, data, tt.wantSize)
			assert.Equal(t, tt.data, data)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	logger := log.NewTestLogger(t)
	_, err := New(logger).Load(context.Background(), "/nonexistent/file.ch8", detector.File)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadURL(t *testing.T) {
	rom := []byte{0x60, 0x05, 0x70, 0x01}

	mux := http.NewServeMux()
	mux.HandleFunc("/rom.ch8", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(rom)
	})
	mux.HandleFunc("/large.ch8", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(make([]byte, chip8.MaxProgramSize*2))
	})
	mux.HandleFunc("/empty.ch8", func(_ http.ResponseWriter, _ *http.Request) {})
	server := httptest.NewServer(mux)
	defer server.Close()

	logger := log.NewTestLogger(t)
	l := New(logger)
	ctx := context.Background()

	t.Run("download", func(t *testing.T) {
		data, err := l.Load(ctx, server.URL+"/rom.ch8", detector.URL)
		assert.NoError(t, err)
		assert.Equal(t, rom, data)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := l.Load(ctx, server.URL+"/missing.ch8", detector.URL)
		assert.ErrorContains(t, err, "unexpected status")
	})

	t.Run("oversized", func(t *testing.T) {
		_, err := l.Load(ctx, server.URL+"/large.ch8", detector.URL)
		assert.True(t, errors.Is(err, chip8.ErrCapacity))
	})

	t.Run("empty", func(t *testing.T) {
		_, err := l.Load(ctx, server.URL+"/empty.ch8", detector.URL)
		assert.True(t, errors.Is(err, ErrEmptyImage))
	})

	t.Run("canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := l.Load(canceled, server.URL+"/rom.ch8", detector.URL)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestLoad_UnsupportedSource(t *testing.T) {
	logger := log.NewTestLogger(t)
	_, err := New(logger).Load(context.Background(), "rom.ch8", detector.Source("ftp"))
	assert.ErrorContains(t, err, "unsupported ROM source")
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "test.ch8")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
