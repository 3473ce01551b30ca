// Package assets loads shader and texture files for a glkit.Context.
//
// Files are read on background goroutines. Nothing here touches the GL
// driver until Set.Update is called from the goroutine that owns the
// context, typically once per frame.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/glkit"
)

// ErrClosed is returned by Watch after Close.
var ErrClosed = errors.New("assets: loader closed")

// File is a finished read. Name is relative to the loader root.
type File struct {
	Name string
	Data []byte
	Err  error
}

// Loader reads files relative to a root directory.
type Loader struct {
	root source

	mu       sync.Mutex
	finished []File
	pending  int
	closed   bool

	watcher *fsnotify.Watcher
	dirs    map[string]bool
	files   map[string]bool
	done    chan struct{}
	wg      sync.WaitGroup
}

// source is the read side of the loader, replaced in tests.
type source interface {
	ReadFile(name string) ([]byte, error)
	Dir() string
}

type osFS string

func (d osFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(string(d), filepath.FromSlash(name)))
}

func (d osFS) Dir() string { return string(d) }

// NewLoader creates a loader rooted at dir.
func NewLoader(dir string) *Loader {
	return newLoader(osFS(dir))
}

func newLoader(root source) *Loader {
	return &Loader{root: root, done: make(chan struct{})}
}

// Dir returns the root directory.
func (l *Loader) Dir() string { return l.root.Dir() }

// Load starts reading name in the background.
func (l *Loader) Load(name string) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.pending++
	l.wg.Add(1)
	l.mu.Unlock()

	go func() {
		defer l.wg.Done()
		data, err := l.root.ReadFile(name)
		if err != nil {
			err = fmt.Errorf("assets: read %s: %w", name, err)
		}
		l.mu.Lock()
		l.pending--
		l.finished = append(l.finished, File{Name: name, Data: data, Err: err})
		l.mu.Unlock()
	}()
}

// Poll returns the reads that finished since the last call. It never
// blocks.
func (l *Loader) Poll() []File {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.finished
	l.finished = nil
	return out
}

// Pending returns the number of reads still in flight.
func (l *Loader) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending
}

// Wait blocks until every started read has finished. Intended for tests
// and loading screens.
func (l *Loader) Wait() {
	l.wg.Wait()
}

// Watch reloads name whenever it is written on disk. The first call
// starts an fsnotify watcher on the loader root.
func (l *Loader) Watch(name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrClosed
	}
	if l.watcher == nil {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("assets: watch: %w", err)
		}
		l.watcher = w
		l.dirs = make(map[string]bool)
		l.files = make(map[string]bool)
		l.wg.Add(1)
		go l.watch(w)
	}

	path := filepath.Join(l.root.Dir(), filepath.FromSlash(name))
	dir := filepath.Dir(path)
	if !l.dirs[dir] {
		if err := l.watcher.Add(dir); err != nil {
			return fmt.Errorf("assets: watch %s: %w", dir, err)
		}
		l.dirs[dir] = true
	}
	l.files[path] = true
	return nil
}

func (l *Loader) watch(w *fsnotify.Watcher) {
	defer l.wg.Done()
	for {
		select {
		case <-l.done:
			return
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			l.mu.Lock()
			tracked := l.files[filepath.Clean(event.Name)]
			l.mu.Unlock()
			if !tracked {
				continue
			}
			rel, err := filepath.Rel(l.root.Dir(), event.Name)
			if err != nil {
				continue
			}
			glkit.Logger().Debug("assets: file changed", "name", rel)
			l.Load(filepath.ToSlash(rel))
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			glkit.Logger().Warn("assets: watcher error", "err", err)
		}
	}
}

// Close stops the watcher and waits for reads in flight.
func (l *Loader) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	w := l.watcher
	l.mu.Unlock()

	close(l.done)
	var err error
	if w != nil {
		err = w.Close()
	}
	l.wg.Wait()
	return err
}
