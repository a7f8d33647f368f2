package daemon

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/siteforge/internal/logfields"
)

// RecordWatcher watches the business record file and invokes onChange when it
// is written or replaced. Editors save via rename, so the parent directory is
// watched rather than the file itself.
type RecordWatcher struct {
	path     string
	onChange func(path string)
	watcher  *fsnotify.Watcher
	settle   time.Duration
}

func NewRecordWatcher(path string, onChange func(path string)) (*RecordWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}
	return &RecordWatcher{
		path:     abs,
		onChange: onChange,
		watcher:  w,
		settle:   100 * time.Millisecond,
	}, nil
}

// Run processes filesystem events until ctx is cancelled. Consecutive events
// within the settle window collapse into a single onChange call so a rename
// followed by a write does not trigger two reloads.
func (rw *RecordWatcher) Run(ctx context.Context) {
	defer rw.watcher.Close()

	timer := newStoppedTimer()
	pending := false

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-rw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != rw.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("record file event", logfields.Path(ev.Name), "op", ev.Op.String())
			pending = true
			resetTimer(timer, rw.settle)
		case err, ok := <-rw.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("record watcher error", logfields.Error(err))
		case <-timer.C:
			if pending {
				pending = false
				rw.onChange(rw.path)
			}
		}
	}
}
