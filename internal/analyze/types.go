package analyze

import (
	"go/token"
	"go/types"
	"sort"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "example.com/app/screens"
	Name    string // e.g., "Screen"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Package is a loaded and type-checked Go package.
type Package struct {
	Path  string         // Import path
	Name  string         // Package name
	Dir   string         // Directory holding the package sources
	Types *types.Package // Type information
}

// FieldDescriptor describes one tagged struct field.
//
// The external key is resolved when the descriptor is created and cannot be
// changed afterwards.
type FieldDescriptor struct {
	name string
	key  string
	typ  types.Type
}

// NewFieldDescriptor creates a descriptor for the field name of type typ.
// An empty key falls back to the field name.
func NewFieldDescriptor(name, key string, typ types.Type) FieldDescriptor {
	if key == "" {
		key = name
	}

	return FieldDescriptor{name: name, key: key, typ: typ}
}

// Name returns the Go field identifier.
func (f FieldDescriptor) Name() string { return f.name }

// Key returns the external key name used to look the value up.
func (f FieldDescriptor) Key() string { return f.key }

// Type returns the declared static type of the field.
func (f FieldDescriptor) Type() types.Type { return f.typ }


// Owner is a struct type that declares at least one tagged field.
type Owner struct {
	ID      TypeID
	PkgName string
	Dir     string
	Object  *types.TypeName
	Fields  []FieldDescriptor
}

// Exported reports whether the owning type is exported.
func (o *Owner) Exported() bool {
	if o.Object != nil {
		return o.Object.Exported()
	}

	return token.IsExported(o.ID.Name)
}

// OwnerGroups maps owning types to their tagged fields.
// A value lives for one generation pass only.
type OwnerGroups struct {
	owners map[TypeID]*Owner
}

// NewOwnerGroups creates an empty OwnerGroups.
func NewOwnerGroups() *OwnerGroups {
	return &OwnerGroups{owners: make(map[TypeID]*Owner)}
}

// Append adds field to the owner declared by obj in pkg, creating the owner
// entry on first use.
func (g *OwnerGroups) Append(pkg Package, obj *types.TypeName, field FieldDescriptor) {
	id := TypeID{PkgPath: pkg.Path, Name: obj.Name()}

	owner, ok := g.owners[id]
	if !ok {
		owner = &Owner{
			ID:      id,
			PkgName: pkg.Name,
			Dir:     pkg.Dir,
			Object:  obj,
		}
		g.owners[id] = owner
	}

	owner.Fields = append(owner.Fields, field)
}

// Get returns the owner for id, or nil.
func (g *OwnerGroups) Get(id TypeID) *Owner {
	return g.owners[id]
}

// Len returns the number of owners.
func (g *OwnerGroups) Len() int {
	return len(g.owners)
}

// Owners returns all owners with at least one field, sorted by TypeID.
func (g *OwnerGroups) Owners() []*Owner {
	owners := make([]*Owner, 0, len(g.owners))
	for _, o := range g.owners {
		if len(o.Fields) == 0 {
			continue
		}

		owners = append(owners, o)
	}

	sort.Slice(owners, func(i, j int) bool {
		if owners[i].ID.PkgPath != owners[j].ID.PkgPath {
			return owners[i].ID.PkgPath < owners[j].ID.PkgPath
		}

		return owners[i].ID.Name < owners[j].ID.Name
	})

	return owners
}
