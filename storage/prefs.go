package storage

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Prefs is a namespaced key-value preference store backed by one JSON file
// per key. Every operation fails soft: a load fault reads as "no saved
// value" and a save fault is a logged no-op, so callers never see an error
// and the application keeps working in-memory when the disk is unavailable.
type Prefs struct {
	mu  sync.Mutex
	dir string // empty means memory-only (no persistence this session)
}

// OpenPrefs resolves the application data directory and returns a store
// rooted there. If the directory cannot be resolved the store degrades to
// memory-only: loads report no saved state and saves do nothing.
func OpenPrefs() *Prefs {
	dir, err := GetBaseDir()
	if err != nil {
		log.Printf("[Storage] data directory unavailable, running without persistence: %v", err)
		return &Prefs{}
	}
	return &Prefs{dir: dir}
}

// NewPrefs returns a store rooted at an explicit directory. An empty dir
// yields a memory-only store.
func NewPrefs(dir string) *Prefs {
	return &Prefs{dir: dir}
}

// Available reports whether the store has a backing directory.
func (p *Prefs) Available() bool {
	return p.dir != ""
}

// Dir returns the backing directory, or empty for a memory-only store.
func (p *Prefs) Dir() string {
	return p.dir
}

// Path returns the file path backing a key, or empty for a memory-only store.
func (p *Prefs) Path(key string) string {
	if p.dir == "" {
		return ""
	}
	return filepath.Join(p.dir, key+".json")
}

// Load reads the value stored under key into out. It returns false when no
// usable value exists: key never saved, file unreadable, or JSON corrupt.
// The caller is expected to fall back to defaults on false.
func (p *Prefs) Load(key string, out any) bool {
	path := p.Path(key)
	if path == "" {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err := ReadJSON(path, out)
	if err == nil {
		return true
	}
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	log.Printf("[Storage] ignoring unreadable %q preference: %v", key, err)
	return false
}

// Save writes the value under key. Any fault is logged and swallowed; the
// in-memory state the caller holds remains the source of truth.
func (p *Prefs) Save(key string, v any) {
	path := p.Path(key)
	if path == "" {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := AtomicWriteJSON(path, v); err != nil {
		log.Printf("[Storage] failed to save %q preference: %v", key, err)
	}
}

// Delete removes the value stored under key. A missing file is not an error.
func (p *Prefs) Delete(key string) {
	path := p.Path(key)
	if path == "" {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[Storage] failed to delete %q preference: %v", key, err)
	}
}
