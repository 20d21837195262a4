// Package detector handles ROM source detection.
package detector

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/log"
)

// Source is the kind of location a ROM is read from.
type Source string

// Supported ROM sources.
const (
	File Source = "file"
	URL  Source = "url"
)

func (s Source) String() string {
	return string(s)
}

// extensions that CHIP-8 program images are commonly distributed with.
var extensions = []string{".ch8", ".c8", ".rom"}

// Detector handles ROM source detection from the program input argument.
type Detector struct {
	logger *log.Logger
}

// New creates a new source detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines whether the input is a local file or an http(s) URL.
// It warns if the file name does not carry a typical CHIP-8 extension, as the
// image has no header that could be validated.
func (d *Detector) Detect(input string) Source {
	source, name := detectSource(input)
	d.logger.Debug("Detected ROM source",
		log.Stringer("source", source),
		log.String("input", input))

	ext := strings.ToLower(path.Ext(name))
	if !knownExtension(ext) {
		d.logger.Warn("Input does not have a CHIP-8 file extension",
			log.String("file", name),
			log.String("expected", strings.Join(extensions, ", ")))
	}
	return source
}

// detectSource returns the source type and the file name part of the input.
func detectSource(input string) (Source, string) {
	u, err := url.Parse(input)
	if err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return URL, path.Base(u.Path)
	}
	return File, filepath.Base(input)
}

func knownExtension(ext string) bool {
	for _, known := range extensions {
		if ext == known {
			return true
		}
	}
	return false
}
