package vault

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceWindow = 200 * time.Millisecond

// Watcher observes the vault root with fsnotify and signals on Changes when
// Markdown files are created, modified, removed, or renamed. Bursts of
// events are debounced into a single signal.
type Watcher struct {
	// Changes receives one value per debounced burst of file events.
	// Capacity 1: a pending signal absorbs further bursts.
	Changes chan struct{}

	w      *fsnotify.Watcher
	root   string
	logger *slog.Logger
	done   chan struct{}
}

// WatchVault starts watching root and all its subdirectories. Directories
// created at runtime are added to the watch list automatically.
func WatchVault(root string, logger *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := addDirsRecursive(fw, root); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		Changes: make(chan struct{}, 1),
		w:       fw,
		root:    root,
		logger:  logger,
		done:    make(chan struct{}),
	}
	go w.loop()
	logger.Info("watcher: started", slog.String("root", root))
	return w, nil
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() {
	close(w.done)
	_ = w.w.Close()
}

func (w *Watcher) loop() {
	var timer *time.Timer
	var fire <-chan time.Time

	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(debounceWindow)
			fire = timer.C
		} else {
			timer.Reset(debounceWindow)
		}
	}

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			w.logger.Info("watcher: stopped")
			return

		case <-fire:
			select {
			case w.Changes <- struct{}{}:
			default:
			}

		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w.w, ev.Name); addErr != nil {
						w.logger.Warn("watcher: add new dir failed",
							slog.String("path", ev.Name),
							slog.String("error", addErr.Error()))
					}
					schedule()
					continue
				}
			}
			if !strings.HasSuffix(ev.Name, ".md") {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				w.logger.Debug("watcher: change", slog.String("path", ev.Name), slog.String("op", ev.Op.String()))
				schedule()
			}

		case watchErr, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// addDirsRecursive adds root and all non-hidden subdirectories to fw.
func addDirsRecursive(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return fw.Add(p)
	})
}
