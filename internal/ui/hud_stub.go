//go:build !ebiten

package ui

import "topoviz/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.ParameterProvider, string, int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Adjust always reports false in the headless build.
func (h *HUD) Adjust(string, int) bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int) {}
