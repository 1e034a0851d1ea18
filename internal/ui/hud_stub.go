//go:build !ebiten

package ui

import "beach-weather/internal/sims/beach"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(beach.Layout) *HUD { return nil }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, beach.View) {}
