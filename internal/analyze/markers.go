package analyze

import (
	"go/token"
	"go/types"
)

// RuntimePkgPath is the import path of the container package that generated
// code reads from.
const RuntimePkgPath = "github.com/zhouyinchun6/bundleWrite-processor/bundle"

// Marker interface names and their single methods, as declared in RuntimePkgPath.
const (
	SerializableName   = "Serializable"
	SerializableMethod = "BundleSerializable"
	ParcelableName     = "Parcelable"
	ParcelableMethod   = "BundleParcelable"
)

// Markers holds the two marker capabilities a field type is checked against.
type Markers struct {
	Serializable *types.Interface
	Parcelable   *types.Interface
}

// DefaultMarkers builds the marker interfaces from their method sets alone.
// Both methods are exported, so assignability does not depend on which
// types.Package instance declares them.
func DefaultMarkers() Markers {
	return Markers{
		Serializable: markerInterface(SerializableMethod),
		Parcelable:   markerInterface(ParcelableMethod),
	}
}

// ResolveMarkers looks the marker interfaces up in the runtime package when
// one of pkgs is, or imports, it. It falls back to DefaultMarkers.
func ResolveMarkers(pkgs []Package) Markers {
	markers := DefaultMarkers()

	runtime := findRuntime(pkgs)
	if runtime == nil {
		return markers
	}

	if iface := lookupInterface(runtime, SerializableName); iface != nil {
		markers.Serializable = iface
	}

	if iface := lookupInterface(runtime, ParcelableName); iface != nil {
		markers.Parcelable = iface
	}

	return markers
}

// IsSerializable reports whether t is assignable to the Serializable marker.
func (m Markers) IsSerializable(t types.Type) bool {
	return m.Serializable != nil && types.AssignableTo(t, m.Serializable)
}

// IsParcelable reports whether t is assignable to the Parcelable marker.
func (m Markers) IsParcelable(t types.Type) bool {
	return m.Parcelable != nil && types.AssignableTo(t, m.Parcelable)
}

func markerInterface(method string) *types.Interface {
	sig := types.NewSignatureType(nil, nil, nil, nil, nil, false)
	fn := types.NewFunc(token.NoPos, nil, method, sig)

	iface := types.NewInterfaceType([]*types.Func{fn}, nil)
	iface.Complete()

	return iface
}

func findRuntime(pkgs []Package) *types.Package {
	seen := make(map[*types.Package]bool)

	var walk func(p *types.Package) *types.Package
	walk = func(p *types.Package) *types.Package {
		if p == nil || seen[p] {
			return nil
		}

		seen[p] = true
		if p.Path() == RuntimePkgPath {
			return p
		}

		for _, imp := range p.Imports() {
			if found := walk(imp); found != nil {
				return found
			}
		}

		return nil
	}

	for _, pkg := range pkgs {
		if found := walk(pkg.Types); found != nil {
			return found
		}
	}

	return nil
}

func lookupInterface(pkg *types.Package, name string) *types.Interface {
	obj, ok := pkg.Scope().Lookup(name).(*types.TypeName)
	if !ok {
		return nil
	}

	iface, _ := obj.Type().Underlying().(*types.Interface)

	return iface
}
