package tui

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// runMsg carries a scheduled callback onto the bubbletea loop.
type runMsg struct {
	fn func()
}

// Bridge forwards scheduler callbacks into a running program so that every
// controller tick executes inside Update. Use it as the post function of
// scheduler.NewPosted and Attach the program before calling Run.
type Bridge struct {
	prog atomic.Pointer[tea.Program]
}

// Attach sets the program that receives posted callbacks.
func (b *Bridge) Attach(p *tea.Program) {
	b.prog.Store(p)
}

// Post sends fn to the attached program. Callbacks posted before Attach are
// dropped; nothing is scheduled before the program starts.
func (b *Bridge) Post(fn func()) {
	if p := b.prog.Load(); p != nil {
		p.Send(runMsg{fn: fn})
	}
}
