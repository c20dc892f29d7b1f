package server

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/pointmap/model"
)

var (
	ErrUnknownMap = errors.New("server: unknown map")
	ErrBrokenMap  = errors.New("server: map does not parse")
)

// MapExtensions lists the file extensions picked up from the maps directory.
var MapExtensions = []string{".map", ".txt"}

// Store keeps the text of every map found in a directory. It never hands
// out a shared *model.Map: each call to Map parses a fresh copy.
type Store struct {
	dir    string
	mu     sync.RWMutex
	maps   map[string][]byte
	broken map[string]error
}

func NewStore(dir string) *Store {
	return &Store{
		dir:    dir,
		maps:   make(map[string][]byte),
		broken: make(map[string]error),
	}
}

func (s *Store) Dir() string {
	return s.dir
}

// Load reads every map file in the store directory. Files that do not
// parse are remembered as broken; only directory errors fail the load.
func (s *Store) Load() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("server: reading maps dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !isMapFile(e.Name()) {
			continue
		}
		if err := s.LoadFile(filepath.Join(s.dir, e.Name())); err != nil {
			log.Warnf("Store.Load skipping %s: %v", e.Name(), err)
		}
	}
	log.Infof("Store.Load %d maps from %s", len(s.Names()), s.dir)
	return nil
}

// LoadFile reads one map file and stores it under its base name.
func (s *Store) LoadFile(path string) error {
	text, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return s.Put(mapName(path), text)
}

// Put validates text and stores it under name. A map that fails to parse
// replaces any previous version and is reported as broken until fixed.
func (s *Store) Put(name string, text []byte) error {
	_, err := model.ReadMap(bytes.NewReader(text))
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		delete(s.maps, name)
		s.broken[name] = err
		mapsLoaded.WithLabelValues("broken").Inc()
		return fmt.Errorf("%s: %w: %v", name, ErrBrokenMap, err)
	}
	delete(s.broken, name)
	s.maps[name] = text
	mapsLoaded.WithLabelValues("ok").Inc()
	log.Debugf("Store.Put %s (%d bytes)", name, len(text))
	return nil
}

func (s *Store) Remove(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.maps, name)
	delete(s.broken, name)
}

// Names lists the maps that parse, sorted.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.maps))
	for name := range s.maps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Map parses a fresh copy of the named map.
func (s *Store) Map(name string) (*model.Map, error) {
	s.mu.RLock()
	text, ok := s.maps[name]
	broken := s.broken[name]
	s.mu.RUnlock()
	if broken != nil {
		return nil, fmt.Errorf("%s: %w: %v", name, ErrBrokenMap, broken)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrUnknownMap)
	}
	return model.ReadMap(bytes.NewReader(text))
}

func isMapFile(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range MapExtensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

func mapName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
