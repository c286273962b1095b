// Package app wires the word domain to its adapters.
// Each query opens its input, scans it exactly once and closes it on every
// exit path; nothing is cached between queries.
package app

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/corey/wordfreq/internal/adapters/ahocorasick"
	fsw "github.com/corey/wordfreq/internal/adapters/fsnotify"
	"github.com/corey/wordfreq/internal/domain/words"
	"github.com/corey/wordfreq/internal/ports"
)

// App runs word queries against files.
type App struct {
	cfg        Config
	newWatcher func() (ports.Watcher, error)
}

// New creates an App. A TopN below 1 falls back to DefaultTopN.
func New(cfg Config) *App {
	if cfg.TopN < 1 {
		cfg.TopN = DefaultTopN
	}
	if cfg.ProgressOut == nil {
		cfg.ProgressOut = os.Stderr
	}
	return &App{
		cfg: cfg,
		newWatcher: func() (ports.Watcher, error) {
			return fsw.NewWatcher()
		},
	}
}

// CommonWords returns the cfg.TopN most frequent words of the file at path,
// with their counts, most frequent first.
func (a *App) CommonWords(path string) ([]words.Entry, error) {
	var table *words.Table
	err := a.withFile(path, func(r io.Reader) error {
		var err error
		table, err = words.Scan(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	return table.Top(a.cfg.TopN), nil
}

// ThreeMostCommonWords returns the three most frequent words of the file at
// path, most frequent first. An input without words yields an empty slice.
func (a *App) ThreeMostCommonWords(path string) ([]string, error) {
	var top []string
	err := a.withFile(path, func(r io.Reader) error {
		var err error
		top, err = words.ThreeMostCommon(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	return top, nil
}

// WordOccurrences counts how often word appears in the file at path,
// ignoring case. The word is validated before the file is touched.
func (a *App) WordOccurrences(word, path string) (int, error) {
	target, err := words.Normalize(word)
	if err != nil {
		return 0, err
	}
	finder := ahocorasick.NewLiteralFinder(target)

	var count int
	err = a.withFile(path, func(r io.Reader) error {
		var err error
		count, err = words.Occurrences(r, target, finder)
		return err
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// withFile opens path, hands it to scan and closes it on every path.
func (a *App) withFile(path string, scan func(r io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", path, words.ErrNotFound)
		}
		return pathError("open", path, err)
	}
	defer f.Close()

	r, done := a.progress(f)
	defer done()

	if err := scan(r); err != nil {
		return pathError("read", path, err)
	}
	return nil
}

// pathError adds op and path to err unless it already names them, as
// *fs.PathError from the os package does.
func pathError(op, path string, err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return err
	}
	return fmt.Errorf("%s %s: %w", op, path, err)
}
