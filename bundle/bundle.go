// Package bundle provides the key-value container that generated injector
// functions read from.
//
// A Bundle stores values under string keys. Typed accessors never panic:
// primitive getters fall back to a caller-supplied default when the key is
// missing or holds a value of another type, and the remaining getters report
// absence through a second return value or a nil interface.
package bundle

import (
	"maps"
	"slices"
)

// Bundle is an opaque key-value container used to hand data to a component.
// The zero value is not usable; create one with New. A nil *Bundle behaves
// like an empty one for every read.
type Bundle struct {
	values map[string]any
}

// New creates an empty Bundle.
func New() *Bundle {
	return &Bundle{values: make(map[string]any)}
}

func (b *Bundle) put(key string, value any) *Bundle {
	b.values[key] = value
	return b
}

// PutInt stores an int under key.
func (b *Bundle) PutInt(key string, value int) *Bundle { return b.put(key, value) }

// PutInt64 stores an int64 under key.
func (b *Bundle) PutInt64(key string, value int64) *Bundle { return b.put(key, value) }

// PutFloat32 stores a float32 under key.
func (b *Bundle) PutFloat32(key string, value float32) *Bundle { return b.put(key, value) }

// PutFloat64 stores a float64 under key.
func (b *Bundle) PutFloat64(key string, value float64) *Bundle { return b.put(key, value) }

// PutBool stores a bool under key.
func (b *Bundle) PutBool(key string, value bool) *Bundle { return b.put(key, value) }

// PutString stores a string under key.
func (b *Bundle) PutString(key string, value string) *Bundle { return b.put(key, value) }

// PutSerializable stores a Serializable value under key.
func (b *Bundle) PutSerializable(key string, value Serializable) *Bundle { return b.put(key, value) }

// PutParcelable stores a Parcelable value under key.
func (b *Bundle) PutParcelable(key string, value Parcelable) *Bundle { return b.put(key, value) }

func lookup[T any](b *Bundle, key string) (T, bool) {
	var zero T
	if b == nil {
		return zero, false
	}

	v, ok := b.values[key].(T)
	if !ok {
		return zero, false
	}

	return v, true
}

func lookupOr[T any](b *Bundle, key string, def T) T {
	if v, ok := lookup[T](b, key); ok {
		return v
	}

	return def
}

// GetInt returns the int stored under key, or def.
func (b *Bundle) GetInt(key string, def int) int { return lookupOr(b, key, def) }

// GetInt64 returns the int64 stored under key, or def.
func (b *Bundle) GetInt64(key string, def int64) int64 { return lookupOr(b, key, def) }

// GetFloat32 returns the float32 stored under key, or def.
func (b *Bundle) GetFloat32(key string, def float32) float32 { return lookupOr(b, key, def) }

// GetFloat64 returns the float64 stored under key, or def.
func (b *Bundle) GetFloat64(key string, def float64) float64 { return lookupOr(b, key, def) }

// GetBool returns the bool stored under key, or def.
func (b *Bundle) GetBool(key string, def bool) bool { return lookupOr(b, key, def) }

// GetString returns the string stored under key. The second result is false
// when the key is missing or holds something other than a string.
func (b *Bundle) GetString(key string) (string, bool) { return lookup[string](b, key) }

// GetSerializable returns the Serializable stored under key, or nil.
func (b *Bundle) GetSerializable(key string) Serializable {
	v, _ := lookup[Serializable](b, key)
	return v
}

// GetParcelable returns the Parcelable stored under key, or nil.
func (b *Bundle) GetParcelable(key string) Parcelable {
	v, _ := lookup[Parcelable](b, key)
	return v
}

// Has reports whether key is present.
func (b *Bundle) Has(key string) bool {
	if b == nil {
		return false
	}

	_, ok := b.values[key]

	return ok
}

// Remove deletes key from the bundle.
func (b *Bundle) Remove(key string) {
	if b == nil {
		return
	}

	delete(b.values, key)
}

// Len returns the number of stored keys.
func (b *Bundle) Len() int {
	if b == nil {
		return 0
	}

	return len(b.values)
}

// Keys returns the stored keys in sorted order.
func (b *Bundle) Keys() []string {
	if b == nil {
		return nil
	}

	return slices.Sorted(maps.Keys(b.values))
}

// Clone returns a shallow copy of the bundle.
func (b *Bundle) Clone() *Bundle {
	if b == nil {
		return nil
	}

	return &Bundle{values: maps.Clone(b.values)}
}
