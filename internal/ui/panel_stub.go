//go:build !ebiten

package ui

// Panel is a no-op placeholder for headless builds.
type Panel struct{}

// NewPanel returns nil in the headless build.
func NewPanel(any, int, int) *Panel { return nil }

// Width is always zero in the headless build.
func (p *Panel) Width() int { return 0 }

// Update is a no-op in the headless build.
func (p *Panel) Update(int) {}

// Draw is a no-op in the headless build.
func (p *Panel) Draw(any, int) {}
