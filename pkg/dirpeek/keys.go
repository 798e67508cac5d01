package dirpeek

import (
	"github.com/datatug/dirpeek/pkg/browser"
	"github.com/gdamore/tcell/v2"
)

type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "running"
}

// dispatch applies a key to the model: q quits, j moves down, k moves up.
// Everything else leaves the model untouched.
func dispatch(event *tcell.EventKey, model *browser.Model) State {
	if event.Key() != tcell.KeyRune {
		return Running
	}
	switch event.Rune() {
	case 'q':
		return Terminated
	case 'j':
		model.Advance()
	case 'k':
		model.Retreat()
	}
	return Running
}
