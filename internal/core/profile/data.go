package profile

import "sync"

// Data is a profile's string-keyed bag of host-owned values. It backs
// arbitrary per-identity state (quest counters, cooldowns, display
// prefs); conditional wrappers keep their activation flags in typed
// State slots instead, so unrelated consumers cannot collide here.
type Data struct {
	mu      sync.RWMutex
	values  map[string]any
	version uint64
}

// NewData creates an empty bag.
func NewData() *Data {
	return &Data{values: make(map[string]any)}
}

// Set stores a value under the key.
func (d *Data) Set(key string, value any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.values[key] = value
	d.version++
}

// Get retrieves a value by key.
func (d *Data) Get(key string) (any, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	v, ok := d.values[key]
	return v, ok
}

// GetString retrieves a string value by key.
func (d *Data) GetString(key string) (string, bool) {
	v, ok := d.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// GetBool retrieves a bool value by key.
func (d *Data) GetBool(key string) (bool, bool) {
	v, ok := d.Get(key)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// GetInt retrieves an int value by key; JSON-decoded numbers arrive as
// float64 and are converted.
func (d *Data) GetInt(key string) (int, bool) {
	v, ok := d.Get(key)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// GetFloat retrieves a float64 value by key.
func (d *Data) GetFloat(key string) (float64, bool) {
	v, ok := d.Get(key)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

// Delete removes a key.
func (d *Data) Delete(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.values[key]; ok {
		delete(d.values, key)
		d.version++
	}
}

// Version returns a counter incremented on every mutation; the manager
// uses it for dirty tracking across saves.
func (d *Data) Version() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.version
}

// Snapshot returns a copy of the bag's contents.
func (d *Data) Snapshot() map[string]any {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make(map[string]any, len(d.values))
	for k, v := range d.values {
		out[k] = v
	}
	return out
}

// Replace swaps the bag's contents, copying the input.
func (d *Data) Replace(values map[string]any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.values = make(map[string]any, len(values))
	for k, v := range values {
		d.values[k] = v
	}
	d.version++
}

// Len returns the number of stored keys.
func (d *Data) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.values)
}
