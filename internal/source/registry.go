package source

import (
	"fmt"
	"os"
	"sync"

	"fortio.org/safecast"
)

// Registry owns every File a compilation session has loaded and hands
// out stable IDs for them. A Registry is safe for concurrent use, so
// one Registry can be shared by compilations running on several
// goroutines (the qak.Compiler shares one this way; the CLI's batch
// mode gives every file its own Registry).
type Registry struct {
	mu    sync.Mutex
	files []*File
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// AddVirtual registers in-memory source content under a display name
// (typically a file path, but any label works for tests).
func (r *Registry) AddVirtual(name string, data []byte) (*File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, err := safecast.Conv[uint32](len(r.files) + 1)
	if err != nil {
		return nil, fmt.Errorf("registry: too many files registered: %w", err)
	}
	f := newFile(ID(id), name, data)
	r.files = append(r.files, f)
	return f, nil
}

// Load reads a file from disk and registers it.
func (r *Registry) Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("source: reading %s: %w", path, err)
	}
	return r.AddVirtual(path, data)
}

// Get returns the File with the given ID, or nil if none is registered.
func (r *Registry) Get(id ID) *File {
	if id == NoID {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := int(id) - 1
	if idx < 0 || idx >= len(r.files) {
		return nil
	}
	return r.files[idx]
}

// Resolve turns a Span into its owning File, or nil if the span's file
// ID is unknown.
func (r *Registry) Resolve(span Span) *File {
	return r.Get(span.File)
}
