package server

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// Watcher reloads store entries when files in the maps directory change.
type Watcher struct {
	store   *Store
	watcher *fsnotify.Watcher
	stopped chan struct{}
}

// Watch starts watching the store directory. Call Close to stop.
func (s *Store) Watch() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(s.dir); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{
		store:   s,
		watcher: fw,
		stopped: make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.stopped)
	log.Printf("Watcher.loop watching %s", w.store.dir)
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warnf("Watcher.loop %v", err)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if !isMapFile(ev.Name) {
		return
	}
	name := mapName(ev.Name)
	switch {
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		log.Infof("Watcher %s gone", name)
		w.store.Remove(name)
	case ev.Has(fsnotify.Create), ev.Has(fsnotify.Write):
		err := w.store.LoadFile(filepath.Clean(ev.Name))
		switch {
		case errors.Is(err, os.ErrNotExist):
			w.store.Remove(name)
		case err != nil:
			log.Warnf("Watcher reload %s: %v", name, err)
		default:
			log.Infof("Watcher reloaded %s", name)
		}
	}
}

// Close stops the watcher and waits for its goroutine to finish.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.stopped
	return err
}
