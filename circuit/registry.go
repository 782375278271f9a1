package circuit

import (
	"sort"
	"sync"

	"github.com/diaglab/gopherdiag/diag"
)

var (
	regMu    sync.RWMutex
	registry = make(map[string]diag.Supplier)
)

// Register makes a diagnosis problem available under the given name,
// typically from an init function. It panics when the name is empty, the
// supplier is nil, or the name is already taken: registrations are wired at
// program start, and a bad one is a programming error.
func Register(name string, s diag.Supplier) {
	regMu.Lock()
	defer regMu.Unlock()
	if name == "" {
		panic("circuit: Register with an empty name")
	}
	if s == nil {
		panic("circuit: Register with a nil supplier")
	}
	if _, dup := registry[name]; dup {
		panic("circuit: Register called twice for " + name)
	}
	registry[name] = s
}

// Lookup returns the supplier registered under name.
func Lookup(name string) (diag.Supplier, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	s, ok := registry[name]
	return s, ok
}

// Names lists the registered problems in sorted order.
func Names() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
