package schema

import (
	"reflect"
	"sync"
)

// Schemas are derived once per distinct type and reused across all
// registries and mapping calls.
var (
	cacheMu sync.RWMutex
	cache   = make(map[reflect.Type]*Schema)
)

func cached(t reflect.Type) *Schema {
	cacheMu.RLock()
	s, ok := cache[t]
	cacheMu.RUnlock()

	if ok {
		return s
	}

	cacheMu.Lock()
	defer cacheMu.Unlock()

	// Re-check under the write lock; another goroutine may have derived it.
	if s, ok := cache[t]; ok {
		return s
	}

	s = derive(t)
	cache[t] = s

	return s
}
