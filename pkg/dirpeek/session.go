package dirpeek

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// StartupError reports a failure to take over the terminal.
type StartupError struct {
	Op  string
	Err error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *StartupError) Unwrap() error {
	return e.Err
}

// Session owns the terminal from OpenSession until Close: raw input, the
// alternate screen and mouse capture. Log output is held in memory while
// the session is open and written out on Close.
type Session struct {
	screen tcell.Screen
	log    *logrus.Logger
	logOut io.Writer
	logBuf bytes.Buffer
	closed bool
}

func OpenSession(newScreen func() (tcell.Screen, error), log *logrus.Logger) (*Session, error) {
	screen, err := newScreen()
	if err != nil {
		return nil, &StartupError{Op: "create terminal screen", Err: err}
	}
	if err = screen.Init(); err != nil {
		return nil, &StartupError{Op: "initialize terminal", Err: err}
	}
	screen.EnableMouse()
	screen.HideCursor()

	s := &Session{
		screen: screen,
		log:    log,
		logOut: log.Out,
	}
	log.SetOutput(&s.logBuf)
	return s, nil
}

func (s *Session) Screen() tcell.Screen {
	return s.screen
}

// Close restores the terminal. It is safe to call more than once.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.screen.DisableMouse()
	s.screen.Fini()

	s.log.SetOutput(s.logOut)
	if s.logBuf.Len() > 0 {
		_, _ = s.logOut.Write(s.logBuf.Bytes())
		s.logBuf.Reset()
	}
}
