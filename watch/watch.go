// Package watch reports on-disk edits to a fixed set of files.
package watch

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// Watcher sends the path of a watched file on Events after it is written,
// created or renamed. Editors often save by replacing the file, so the
// parent directories are watched instead of the files themselves.
//
// A burst of events for one file yields a single event, sent once the file
// has been quiet for the debounce interval and exists on disk.
type Watcher struct {
	watcher *fsnotify.Watcher
	files   map[string]string
	Events  chan string
	Errors  chan error
	fired   chan *pendingEvent
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(paths ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	files := make(map[string]string, len(paths))
	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			_ = w.Close()
			return nil, err
		}
		files[abs] = path
		dirs[filepath.Dir(abs)] = true
	}

	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		files:   files,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		fired:   make(chan *pendingEvent),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	pending := make(map[string]*pendingEvent)
	defer func() {
		for _, p := range pending {
			p.timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, watched := w.files[abs]; !watched {
				continue
			}
			// Restart the quiet period on every step of a save
			if p, ok := pending[abs]; ok && p.timer.Stop() {
				p.timer.Reset(debounce)
				continue
			}
			pending[abs] = w.schedule(abs)
		case p := <-w.fired:
			// A newer timer for the same file replaced this one
			if pending[p.abs] != p {
				continue
			}
			delete(pending, p.abs)
			// A rename without a new file yet; its Create restarts the timer
			if _, err := os.Stat(p.abs); err != nil {
				continue
			}
			w.send(w.files[p.abs])
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

type pendingEvent struct {
	abs   string
	timer *time.Timer
}

func (w *Watcher) schedule(abs string) *pendingEvent {
	p := &pendingEvent{abs: abs}
	p.timer = time.AfterFunc(debounce, func() {
		select {
		case w.fired <- p:
		case <-w.closeCh:
		}
	})
	return p
}

// send drops path when Events is full. A queued event already triggers a
// reload.
func (w *Watcher) send(path string) {
	select {
	case w.Events <- path:
	case <-w.closeCh:
	default:
	}
}
