package dirpeek

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/datatug/dirpeek/pkg/browser"
	"github.com/datatug/dirpeek/pkg/files/osfile"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

// newABSubDir creates a.txt ("hello"), b.txt ("world") and sub/.
func newABSubDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("world"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	return dir
}

func newTestModel(t *testing.T, dir string) *browser.Model {
	t.Helper()
	m, err := browser.New(context.Background(), osfile.NewStore(), dir)
	require.NoError(t, err)
	return m
}

func keyRune(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// scriptedEvents hands out events in order, then nil. onPoll, when set, is
// called before each event is handed out, after the frame has been drawn.
type scriptedEvents struct {
	events []tcell.Event
	polls  int
	onPoll func(poll int)
}

func (s *scriptedEvents) poll() tcell.Event {
	s.polls++
	if s.onPoll != nil {
		s.onPoll(s.polls)
	}
	if len(s.events) == 0 {
		return nil
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev
}

// recordingScreen tracks terminal restoration calls.
type recordingScreen struct {
	tcell.Screen
	width, height int
	initErr       error
	finiCalls     int
	mouseEnabled  bool
	mouseDisabled bool
}

func (s *recordingScreen) Init() error {
	if s.initErr != nil {
		return s.initErr
	}
	if err := s.Screen.Init(); err != nil {
		return err
	}
	s.Screen.(tcell.SimulationScreen).SetSize(s.width, s.height)
	return nil
}

func (s *recordingScreen) EnableMouse(flags ...tcell.MouseFlags) {
	s.mouseEnabled = true
	s.Screen.EnableMouse(flags...)
}

func (s *recordingScreen) DisableMouse() {
	s.mouseDisabled = true
	s.Screen.DisableMouse()
}

func (s *recordingScreen) Fini() {
	s.finiCalls++
	s.Screen.Fini()
}

func newRecordingScreen(width, height int) *recordingScreen {
	return &recordingScreen{
		Screen: tcell.NewSimulationScreen("UTF-8"),
		width:  width,
		height: height,
	}
}
