package browser

import (
	"context"
	"slices"
	"strings"

	"github.com/datatug/dirpeek/pkg/files"
	"github.com/datatug/dirpeek/pkg/logging"
	"github.com/sirupsen/logrus"
)

// Model owns all mutable browser state: the entries listed once at start,
// the selected index and the content shown for it.
type Model struct {
	o options

	store   files.Store
	entries []files.Entry

	selected int
	content  string
	source   Source
	loadErr  *LoadError
}

type options struct {
	log logrus.FieldLogger
}

type Option func(o *options)

func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) {
		o.log = log
	}
}

// New lists dir once and selects the first entry. The first entry's content
// is not loaded until the selection moves; InitialContent is shown instead.
func New(ctx context.Context, store files.Store, dir string, o ...Option) (*Model, error) {
	m := &Model{
		store:   store,
		content: InitialContent,
		source:  SourcePlaceholder,
	}
	for _, option := range o {
		option(&m.o)
	}
	if m.o.log == nil {
		m.o.log = logging.Discard()
	}

	dirEntries, err := store.ReadDir(ctx, dir)
	if err != nil {
		return nil, &ListingError{Dir: dir, Err: err}
	}
	m.entries = make([]files.Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		m.entries = append(m.entries, files.NewEntry(dir, de.Name()))
	}
	slices.SortFunc(m.entries, func(a, b files.Entry) int {
		return strings.Compare(a.FullName(), b.FullName())
	})
	m.o.log.WithFields(logrus.Fields{
		"dir":     dir,
		"entries": len(m.entries),
	}).Debug("directory listed")
	return m, nil
}

func (m *Model) Entries() []files.Entry {
	return m.entries
}

func (m *Model) Len() int {
	return len(m.entries)
}

func (m *Model) Selected() int {
	return m.selected
}

func (m *Model) Content() string {
	return m.content
}

func (m *Model) Source() Source {
	return m.source
}

// LastLoadError is the failure behind ReadFailedContent, nil otherwise.
func (m *Model) LastLoadError() *LoadError {
	return m.loadErr
}

// SelectedEntry returns false when the listing is empty.
func (m *Model) SelectedEntry() (files.Entry, bool) {
	if len(m.entries) == 0 {
		return files.Entry{}, false
	}
	return m.entries[m.selected], true
}

// Advance selects the next entry, wrapping to the first.
func (m *Model) Advance() {
	if len(m.entries) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.entries)
	m.ReloadContent()
}

// Retreat selects the previous entry, wrapping to the last.
func (m *Model) Retreat() {
	if len(m.entries) == 0 {
		return
	}
	if m.selected > 0 {
		m.selected--
	} else {
		m.selected = len(m.entries) - 1
	}
	m.ReloadContent()
}

// ReloadContent loads the text of the selected entry. Read failures of any
// kind collapse to ReadFailedContent.
func (m *Model) ReloadContent() {
	entry, ok := m.SelectedEntry()
	if !ok {
		return
	}
	path := entry.FullName()
	log := m.o.log.WithFields(logrus.Fields{
		"index": m.selected,
		"path":  path,
	})
	m.loadErr = nil

	if info, err := m.store.Stat(path); err != nil || !info.Mode().IsRegular() {
		m.content, m.source = NotAFileContent, SourceNotAFile
		log.Debug("selected item is not a file")
		return
	}

	data, err := m.store.ReadFile(path)
	if err == nil {
		err = validateUTF8(data)
	}
	if err != nil {
		m.loadErr = newLoadError(path, err)
		m.content, m.source = ReadFailedContent, SourceReadFailed
		log.WithError(err).WithField("kind", m.loadErr.Kind.String()).Debug("content load failed")
		return
	}
	m.content, m.source = string(data), SourceFile
	log.WithField("bytes", len(data)).Debug("content loaded")
}
