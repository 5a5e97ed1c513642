// Package tui renders bridged events live in the terminal. The viewer is a
// structured observer; events arrive through Observe and are pushed into a
// running bubbletea program.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vladamatena/twisted/internal/event"
	"github.com/vladamatena/twisted/internal/format"
)

// Viewer is a live terminal view over the bridge's event stream.
type Viewer struct {
	prog *tea.Program
}

// NewViewer creates the viewer program. Run must be called on the main
// goroutine; Observe may be called from any goroutine once Run has started.
func NewViewer() *Viewer {
	return &Viewer{
		prog: tea.NewProgram(newModel(), tea.WithAltScreen()),
	}
}

// Observe renders the event to one line and hands it to the program.
func (v *Viewer) Observe(e event.Event) error {
	v.prog.Send(eventMsg{line: renderLine(e)})
	return nil
}

// Run blocks until the user quits the viewer.
func (v *Viewer) Run() error {
	_, err := v.prog.Run()
	return err
}

// Quit stops the viewer program.
func (v *Viewer) Quit() {
	v.prog.Quit()
}

func renderLine(e event.Event) string {
	lvl := e.LevelOrDefault()

	var b strings.Builder
	b.WriteString(badge(lvl))

	if sys, ok := e.System(); ok {
		b.WriteString(" ")
		b.WriteString(systemStyle.Render("[" + sys + "]"))
	}

	text := format.Event(e)
	if failure, ok := e.Failure(); ok {
		if text == "" {
			text = failure.Error()
		} else {
			text = fmt.Sprintf("%s: %v", text, failure)
		}
	}
	if text != "" {
		b.WriteString(" ")
		b.WriteString(text)
	}
	return b.String()
}
