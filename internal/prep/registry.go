package prep

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry   = make(map[string]Transform)
	registryMu sync.RWMutex
)

// Register adds a state's transform to the registry under its state name
// (which doubles as the state's source-folder name). Panics if the state
// is already registered; states register once, from init.
func Register(state string, t Transform) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[state]; exists {
		panic(fmt.Sprintf("state already registered: %s", state))
	}
	if t == nil {
		panic(fmt.Sprintf("nil transform for state: %s", state))
	}
	registry[state] = t
}

// Lookup returns the transform registered for a state.
// Returns false if not found.
func Lookup(state string) (Transform, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	t, ok := registry[state]
	return t, ok
}

// States returns all registered state names, sorted for consistent
// ordering. The corpus build order comes from configuration, not from
// here.
func States() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered states.
func Count() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}

// Clear removes all registered states.
// Primarily useful for testing.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]Transform)
}
