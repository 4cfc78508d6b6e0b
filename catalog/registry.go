package catalog

import (
	"sync"

	"github.com/deferfmt/deferfmt/deferrs"
	"github.com/deferfmt/deferfmt/wire"
)

// StoreOpener resolves a crate name to its Store, lazily, the first time
// that crate is registered or referenced. Implementations decide where (or
// whether) a store's content is persisted; the Registry only calls Open
// once per crate name and caches the result.
type StoreOpener interface {
	Open(crateName string) (*Store, error)
}

// MemoryOpener is the default StoreOpener: every crate gets a fresh,
// empty, in-memory Store. Suitable for tests and for embedded producers
// that never persist a catalog across runs.
type MemoryOpener struct {
	SchemaVersion uint32
}

func (o MemoryOpener) Open(crateName string) (*Store, error) {
	return NewStore(o.SchemaVersion), nil
}

// Registry is the main catalog: it maps crate_name → CrateId and opens the
// per-crate Store lazily (spec.md §3 "The main catalog maps crate_name →
// CrateId and opens the per-crate store lazily").
type Registry struct {
	mu     sync.Mutex
	opener StoreOpener
	byName map[string]wire.CrateID
	stores map[wire.CrateID]*Store
	next   wire.CrateID
}

// NewRegistry creates a registry backed by opener.
func NewRegistry(opener StoreOpener) *Registry {
	return &Registry{
		opener: opener,
		byName: make(map[string]wire.CrateID),
		stores: make(map[wire.CrateID]*Store),
	}
}

// FindOrInsertCrate returns name's CrateID, allocating a new dense id and
// opening its Store on first sight (spec.md §"Design Notes" catalog
// interface: find_or_insert_crate).
func (r *Registry) FindOrInsertCrate(name string) (wire.CrateID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.byName[name]; ok {
		return id, nil
	}

	store, err := r.opener.Open(name)
	if err != nil {
		return 0, err
	}

	id := r.next
	r.next++
	r.byName[name] = id
	r.stores[id] = store

	return id, nil
}

// Store returns the Store for an already-registered crate id.
func (r *Registry) Store(id wire.CrateID) (*Store, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.stores[id]
	return s, ok
}

// CrateID returns the id a crate name was registered under, or
// deferrs.ErrUnknownCrate if the name is not registered. Unlike
// FindOrInsertCrate this never allocates an id.
func (r *Registry) CrateID(name string) (wire.CrateID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byName[name]
	if !ok {
		return 0, deferrs.ErrUnknownCrate
	}

	return id, nil
}
