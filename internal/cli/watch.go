package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// DefaultSettle is how long a document must stay quiet after a change
// before it is rebuilt; editors often write a file in several steps.
const DefaultSettle = 100 * time.Millisecond

// Watcher rebuilds documents when they change on disk. It watches the
// directories holding the documents so that editors replacing a file by
// rename are still noticed.
type Watcher struct {
	w       *fsnotify.Watcher
	log     logrus.FieldLogger
	files   map[string]bool
	pending map[string]time.Time
	Settle  time.Duration
}

// NewWatcher starts watching paths.
func NewWatcher(log logrus.FieldLogger, paths []string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	fw := &Watcher{
		w:       w,
		log:     log,
		files:   make(map[string]bool, len(paths)),
		pending: make(map[string]time.Time),
		Settle:  DefaultSettle,
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			w.Close()
			return nil, err
		}
		fw.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	return fw, nil
}

// Run calls rebuild with the absolute path of every watched document that
// was written or created, once it has settled. It returns when ctx is done.
func (fw *Watcher) Run(ctx context.Context, rebuild func(path string)) error {
	defer fw.w.Close()

	tick := time.NewTicker(max(fw.Settle/2, time.Millisecond))
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.w.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(ev.Name)
			if err != nil || !fw.files[name] {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				fw.log.WithFields(logrus.Fields{"file": name, "op": ev.Op.String()}).Debug("change")
				fw.pending[name] = time.Now()
			}
		case err, ok := <-fw.w.Errors:
			if !ok {
				return nil
			}
			fw.log.WithError(err).Warn("watch error")
		case now := <-tick.C:
			for name, changed := range fw.pending {
				if now.Sub(changed) >= fw.Settle {
					delete(fw.pending, name)
					rebuild(name)
				}
			}
		}
	}
}
