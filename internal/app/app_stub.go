//go:build !ebiten

package app

import (
	"errors"
	"image/color"
	"time"

	"lifeterm/internal/core"
)

// ErrNoWindow is returned by Run in builds without the ebiten tag.
var ErrNoWindow = errors.New("the window renderer requires building with -tags ebiten")

// Options mirrors the GUI build's options so callers compile either way.
type Options struct {
	Interval    time.Duration
	MinInterval time.Duration
	MaxInterval time.Duration
	Iterations  int
	Scale       int
	OnColor     color.Color
	Status      bool
}

// Run reports that the GUI build tag is missing.
func Run(core.Sim, Options) error {
	return ErrNoWindow
}
