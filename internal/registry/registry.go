// Package registry provides a global registry of seed pattern sources.
// Pattern libraries register themselves in init() functions, allowing the
// platform to discover and open patterns without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

// Source opens a fresh reader over a pattern's contents.
type Source func() (io.ReadCloser, error)

// PatternInfo contains metadata about a registered pattern.
type PatternInfo struct {
	ID    string // file-style identifier, e.g. "glider_106.lif"
	Title string // human-readable name
}

var (
	sources = make(map[string]Source)
	titles  = make(map[string]string)
	mu      sync.RWMutex
)

// Register adds a pattern source to the registry.
// Typically called from an init() function.
// Panics if a pattern with the same ID is already registered.
func Register(id, title string, src Source) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := sources[id]; exists {
		panic(fmt.Sprintf("registry: pattern %q already registered", id))
	}

	sources[id] = src
	if title == "" {
		title = id
	}
	titles[id] = title
}

// List returns information about all registered patterns, sorted by ID.
func List() []PatternInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PatternInfo, 0, len(sources))
	for id := range sources {
		result = append(result, PatternInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Open returns a reader over the pattern registered under id.
// Returns an error if the ID is not registered.
func Open(id string) (io.ReadCloser, error) {
	mu.RLock()
	src, ok := sources[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown pattern %q", id)
	}

	return src()
}

// Title returns the display title of a registered pattern, or id itself.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}

// Exists checks if a pattern with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := sources[id]
	return ok
}
