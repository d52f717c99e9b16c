//go:build !ebiten

package ui

import (
	"topoviz/internal/core"
	"topoviz/internal/signal"
)

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// DrawUnder is a no-op placeholder.
func (o *Overlay) DrawUnder(any, *core.ScalarGrid) {}

// DrawOver is a no-op placeholder.
func (o *Overlay) DrawOver(any, signal.Control) {}
