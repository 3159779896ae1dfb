//go:build !ebiten

package ui

import "lifeview/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(*core.Scheduler, string, int, float64) *HUD { return nil }

// Raw returns zero in the headless build.
func (h *HUD) Raw() float64 { return 0 }

// Adjust is a no-op in the headless build.
func (h *HUD) Adjust(float64) {}

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
