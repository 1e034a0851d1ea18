//go:build !ebiten

package ui

import (
	"beach-weather/internal/core"
	"beach-weather/internal/sims/beach"
)

type telemetryProvider interface {
	Parameters() core.ParameterSnapshot
}

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(telemetryProvider, beach.Layout, float64) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, beach.View) {}
