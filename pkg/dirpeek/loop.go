package dirpeek

import (
	"errors"
	"fmt"

	"github.com/datatug/dirpeek/pkg/browser"
	"github.com/datatug/dirpeek/pkg/logging"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// ErrInputClosed is returned when the terminal stops delivering events.
var ErrInputClosed = errors.New("terminal input closed")

// Loop renders the model and blocks for the next terminal event, one event
// at a time, on the calling goroutine.
type Loop struct {
	o      loopOptions
	screen tcell.Screen
	model  *browser.Model
	state  State
}

type loopOptions struct {
	pollEvent func() tcell.Event
	log       logrus.FieldLogger
}

type LoopOption func(o *loopOptions)

// WithEventSource replaces screen.PollEvent as the blocking event source.
func WithEventSource(pollEvent func() tcell.Event) LoopOption {
	return func(o *loopOptions) {
		o.pollEvent = pollEvent
	}
}

func WithLoopLogger(log logrus.FieldLogger) LoopOption {
	return func(o *loopOptions) {
		o.log = log
	}
}

func NewLoop(screen tcell.Screen, model *browser.Model, o ...LoopOption) *Loop {
	l := &Loop{
		screen: screen,
		model:  model,
	}
	for _, option := range o {
		option(&l.o)
	}
	if l.o.pollEvent == nil {
		l.o.pollEvent = screen.PollEvent
	}
	if l.o.log == nil {
		l.o.log = logging.Discard()
	}
	return l
}

func (l *Loop) State() State {
	return l.state
}

// Run draws a frame, waits for an event and handles it until q is pressed.
// Once terminated it returns immediately.
func (l *Loop) Run() error {
	for l.state == Running {
		newFrame(l.model).draw(l.screen)
		if err := l.handle(l.o.pollEvent()); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loop) handle(event tcell.Event) error {
	switch event := event.(type) {
	case nil:
		return ErrInputClosed
	case *tcell.EventError:
		return fmt.Errorf("terminal input failed: %w", event)
	case *tcell.EventResize:
		l.screen.Sync()
	case *tcell.EventKey:
		l.state = dispatch(event, l.model)
		l.o.log.WithFields(logrus.Fields{
			"key":      event.Name(),
			"selected": l.model.Selected(),
			"state":    l.state.String(),
		}).Debug("key handled")
	}
	return nil
}
