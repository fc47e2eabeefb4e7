package utils

import (
	"sync"
)

// OrderedRegistry is a thread-safe map that remembers insertion order
type OrderedRegistry[K comparable, V any] struct {
	mu    sync.RWMutex
	keys  []K
	items map[K]V
}

// NewOrderedRegistry creates a new ordered registry
func NewOrderedRegistry[K comparable, V any]() *OrderedRegistry[K, V] {
	return &OrderedRegistry[K, V]{
		items: make(map[K]V),
	}
}

// Update replaces the value under key with fn(current, exists)
func (r *OrderedRegistry[K, V]) Update(key K, fn func(current V, exists bool) V) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.items[key]
	if !exists {
		r.keys = append(r.keys, key)
	}
	r.items[key] = fn(current, exists)
}

// Get retrieves an item from the registry
func (r *OrderedRegistry[K, V]) Get(key K) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, exists := r.items[key]
	return value, exists
}

// Has checks if a key exists in the registry
func (r *OrderedRegistry[K, V]) Has(key K) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[key]
	return exists
}

// Keys returns the keys in insertion order
func (r *OrderedRegistry[K, V]) Keys() []K {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]K, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// ForEach visits entries in insertion order
func (r *OrderedRegistry[K, V]) ForEach(fn func(K, V)) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, key := range r.keys {
		fn(key, r.items[key])
	}
}

// Size returns the number of items in the registry
func (r *OrderedRegistry[K, V]) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.keys)
}
