// Package app provides the main application helpers for the emulator.
package app

import (
	"path"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// Name of the application.
const Name = "retrochip8"

// PrintBanner prints the application version information.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info(Name, log.String("version", buildinfo.Version(version, commit, date)))
}

// WindowTitle returns the title for frontend windows running the given input.
func WindowTitle(input string) string {
	name := path.Base(strings.ReplaceAll(input, `\`, "/"))
	if name == "." || name == "/" {
		return Name
	}
	return name + " - " + Name
}
