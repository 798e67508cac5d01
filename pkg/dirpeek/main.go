package dirpeek

import (
	"context"

	"github.com/datatug/dirpeek/pkg/browser"
	"github.com/datatug/dirpeek/pkg/files"
	"github.com/datatug/dirpeek/pkg/files/osfile"
	"github.com/datatug/dirpeek/pkg/logging"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

type options struct {
	dir         string
	store       files.Store
	log         *logrus.Logger
	newScreen   func() (tcell.Screen, error)
	loopOptions []LoopOption
}

type Option func(o *options)

func WithDir(dir string) Option {
	return func(o *options) {
		o.dir = dir
	}
}

func WithStore(store files.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

func WithLogger(log *logrus.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

func WithScreen(newScreen func() (tcell.Screen, error)) Option {
	return func(o *options) {
		o.newScreen = newScreen
	}
}

func WithLoopOptions(loopOptions ...LoopOption) Option {
	return func(o *options) {
		o.loopOptions = append(o.loopOptions, loopOptions...)
	}
}

// Run lists the current directory, takes over the terminal and browses until
// q is pressed. The terminal is restored on every return path, panics
// included.
func Run(ctx context.Context, o ...Option) error {
	opts := options{
		dir:       ".",
		store:     osfile.NewStore(),
		newScreen: tcell.NewScreen,
	}
	for _, option := range o {
		option(&opts)
	}
	if opts.log == nil {
		opts.log = logging.Discard()
	}

	model, err := browser.New(ctx, opts.store, opts.dir, browser.WithLogger(opts.log))
	if err != nil {
		return err
	}

	session, err := OpenSession(opts.newScreen, opts.log)
	if err != nil {
		return err
	}
	defer session.Close()

	loopOptions := append([]LoopOption{WithLoopLogger(opts.log)}, opts.loopOptions...)
	return NewLoop(session.Screen(), model, loopOptions...).Run()
}
