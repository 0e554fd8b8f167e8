package bundle

// Serializable marks a type whose values may be stored in a Bundle as an
// opaque object. The method carries no behaviour; implementing it is the
// whole contract.
type Serializable interface {
	BundleSerializable()
}

// Parcelable marks a type that takes part in the structured parcel protocol.
// Like Serializable it has no structural requirements beyond the marker
// method.
type Parcelable interface {
	BundleParcelable()
}

// SerializableMarker can be embedded in a struct to make it Serializable.
type SerializableMarker struct{}

// BundleSerializable implements Serializable.
func (SerializableMarker) BundleSerializable() {}

// ParcelableMarker can be embedded in a struct to make it Parcelable.
type ParcelableMarker struct{}

// BundleParcelable implements Parcelable.
func (ParcelableMarker) BundleParcelable() {}
