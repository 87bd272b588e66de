package tui

import (
	"github.com/charmbracelet/bubbles/progress"
)

// ScrollIndicator renders how far through the dump the pager is scrolled.
type ScrollIndicator struct {
	progress progress.Model
}

// NewScrollIndicator creates a scroll indicator of the given width.
func NewScrollIndicator(width int) ScrollIndicator {
	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	return ScrollIndicator{progress: p}
}

// View renders the indicator for percent (0.0 to 1.0).
func (s ScrollIndicator) View(percent float64) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 1 {
		percent = 1
	}
	return s.progress.ViewAs(percent)
}
