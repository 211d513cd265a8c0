// Package watch monitors a camera roll with fsnotify and re-runs the
// organize pipeline once new files settle.
package watch

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"camroll/internal/log"
)

// FileArrival represents a file event detected by the watcher.
type FileArrival struct {
	Path      string
	Info      os.FileInfo
	Timestamp time.Time
	Op        fsnotify.Op
}

// Watcher monitors directories for new or rewritten files using fsnotify.
// Arrivals are delivered on a channel; the consumer decides when the batch
// has settled and triggers a run.
type Watcher struct {
	directories []string
	arrivals    chan FileArrival
	stopChan    chan struct{}
	fsWatcher   *fsnotify.Watcher

	mutex   sync.RWMutex
	running bool
}

// New creates a directory watcher.
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		directories: []string{},
		arrivals:    make(chan FileArrival, 16),
		stopChan:    make(chan struct{}),
		fsWatcher:   fsWatcher,
	}, nil
}

// AddDirectory adds a directory to watch.
func (w *Watcher) AddDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("error accessing directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	w.mutex.Lock()
	found := false
	for _, existing := range w.directories {
		if existing == dir {
			found = true
			break
		}
	}
	if !found {
		w.directories = append(w.directories, dir)
	}
	w.mutex.Unlock()

	log.WithField("directory", dir).Info("Watching directory")
	return nil
}

// Arrivals returns the channel that delivers file events.
func (w *Watcher) Arrivals() <-chan FileArrival {
	return w.arrivals
}

// Start begins delivering file arrivals until Stop is called.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.mutex.Unlock()

	go w.loop()

	log.Debug("watcher started")
	return nil
}

// loop owns the arrivals channel: it is closed here, after the last send,
// never from Stop. Closing it from another goroutine could race a send in
// flight between an event arriving and its stat completing.
func (w *Watcher) loop() {
	defer close(w.arrivals)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}

			// The file may already be gone; a camera tether often writes a
			// temp name and renames.
			info, err := os.Stat(event.Name)
			if err != nil {
				if !os.IsNotExist(err) {
					log.WithField("file", event.Name).Errorf("cannot stat arrival: %v", err)
				}
				continue
			}
			if info.IsDir() {
				continue
			}

			arrival := FileArrival{
				Path:      event.Name,
				Info:      info,
				Timestamp: time.Now(),
				Op:        event.Op,
			}

			select {
			case w.arrivals <- arrival:
			default:
				log.WithField("file", event.Name).Warn("event channel full, dropped event")
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Error("fsnotify watcher error: %v", err)

		case <-w.stopChan:
			return
		}
	}
}

// Stop halts the watcher. The event loop closes the arrivals channel on its
// way out, so consumers draining Arrivals see every event delivered before
// the stop.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return
	}

	close(w.stopChan)

	if err := w.fsWatcher.Close(); err != nil {
		log.Error("error closing fsnotify watcher: %v", err)
	}

	w.running = false
}

// IsRunning returns whether the watcher is currently active.
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}

// Directories returns the list of directories being watched.
func (w *Watcher) Directories() []string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	dirs := make([]string, len(w.directories))
	copy(dirs, w.directories)
	return dirs
}
