package workspace

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// Loader keeps the current Workspace of a file and reloads it on change.
type Loader struct {
	path     string
	mu       sync.RWMutex
	current  *Workspace
	onChange []func(*Workspace)
}

// NewLoader performs the initial load of path.
func NewLoader(path string) (*Loader, error) {
	ws, err := Load(path)
	if err != nil {
		return nil, err
	}

	return &Loader{path: path, current: ws}, nil
}

// Workspace returns the latest successfully loaded workspace.
func (l *Loader) Workspace() *Workspace {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.current
}

// OnChange registers fn, called after every successful reload.
func (l *Loader) OnChange(fn func(*Workspace)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// Reload re-reads the file. On error the current workspace is kept.
func (l *Loader) Reload() (*Workspace, error) {
	ws, err := Load(l.path)
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.current = ws
	callbacks := make([]func(*Workspace), len(l.onChange))
	copy(callbacks, l.onChange)
	l.mu.Unlock()
	for _, fn := range callbacks {
		fn(ws)
	}

	return ws, nil
}

// Watch reloads the workspace whenever its file is written or recreated.
// The parent directory is watched so editors that replace the file by rename
// are seen too. Call stop to end watching.
func (l *Loader) Watch() (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "workspace watcher")
	}
	dir := filepath.Dir(l.path)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, errors.Wrapf(err, "workspace watcher add %s", dir)
	}
	target := filepath.Clean(l.path)

	done := make(chan struct{})
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				if _, err := l.Reload(); err != nil {
					klog.Warningf("workspace reload failed, keeping previous: %v", err)
					continue
				}
				klog.V(1).Infof("workspace %s reloaded", l.path)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				klog.Warningf("workspace watcher: %v", err)
			case <-done:
				return
			}
		}
	}()

	var once sync.Once

	return func() { once.Do(func() { close(done) }) }, nil
}
