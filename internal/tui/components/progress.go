package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/glint/internal/progression"
)

// Progress renders how far a time-bounded animation has advanced.
type Progress struct {
	bar progress.Model
}

// NewProgress creates a progress component of the given bar width.
func NewProgress(width int) Progress {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	if width > 0 {
		bar.Width = width
	}
	return Progress{bar: bar}
}

// View renders the bar for ratio, clamped to [0, 1].
func (p Progress) View(ratio float64) string {
	if math.IsNaN(ratio) {
		ratio = 0
	}
	ratio = math.Max(0, math.Min(1, ratio))
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%3.0f%%", ratio*100))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", p.bar.ViewAs(ratio))
}

// ProgressOf reports the completion ratio of engines that track one.
func ProgressOf(engine progression.Engine) (float64, bool) {
	p, ok := engine.(progression.Progresser)
	if !ok {
		return 0, false
	}
	return p.Progress(), true
}
