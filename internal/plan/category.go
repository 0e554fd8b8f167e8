package plan

import (
	"github.com/zhouyinchun6/bundleWrite-processor/internal/common"
)

// Category is the extraction strategy chosen for a field.
type Category int

const (
	// CategoryUnsupported - no code is generated for the field.
	CategoryUnsupported Category = iota
	// CategoryPrimitive - int, int64, float32, float64 or bool; unconditional
	// assignment with the current value as default.
	CategoryPrimitive
	// CategoryText - string; assigned only when present.
	CategoryText
	// CategorySerializable - implements the Serializable marker; assigned
	// only when present and of the declared type.
	CategorySerializable
	// CategoryParcelable - implements the Parcelable marker; same as
	// CategorySerializable through the parcel accessor.
	CategoryParcelable
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryUnsupported:
		return "unsupported"
	case CategoryPrimitive:
		return "primitive"
	case CategoryText:
		return "text"
	case CategorySerializable:
		return "serializable"
	case CategoryParcelable:
		return "parcelable"
	default:
		return common.UnknownStr
	}
}

// Conditional reports whether the assignment only happens when a value was
// found.
func (c Category) Conditional() bool {
	switch c {
	case CategoryText, CategorySerializable, CategoryParcelable:
		return true
	default:
		return false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
