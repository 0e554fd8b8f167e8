package plan

import (
	"go/types"
	"log/slog"
	"sort"
	"strings"

	"github.com/zhouyinchun6/bundleWrite-processor/internal/analyze"
	"github.com/zhouyinchun6/bundleWrite-processor/internal/common"
	"github.com/zhouyinchun6/bundleWrite-processor/internal/diagnostic"
)

// Accessor names on bundle.Bundle.
const (
	AccessorInt          = "GetInt"
	AccessorInt64        = "GetInt64"
	AccessorFloat32      = "GetFloat32"
	AccessorFloat64      = "GetFloat64"
	AccessorBool         = "GetBool"
	AccessorString       = "GetString"
	AccessorSerializable = "GetSerializable"
	AccessorParcelable   = "GetParcelable"
)

// primitiveAccessors maps supported basic kinds to their accessor.
var primitiveAccessors = map[types.BasicKind]string{
	types.Int:     AccessorInt,
	types.Int64:   AccessorInt64,
	types.Float32: AccessorFloat32,
	types.Float64: AccessorFloat64,
	types.Bool:    AccessorBool,
}

// Resolver assigns an extraction strategy to every collected field.
type Resolver struct {
	markers analyze.Markers
	logger  *slog.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(markers analyze.Markers, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}

	return &Resolver{markers: markers, logger: logger}
}

// Resolve classifies the fields of every owner in groups.
// Owners left without any supported field are dropped from the plan.
func (r *Resolver) Resolve(groups *analyze.OwnerGroups) *InjectionPlan {
	p := &InjectionPlan{}

	for _, owner := range groups.Owners() {
		resolved := ResolvedOwner{Owner: owner}

		for _, fd := range owner.Fields {
			rf := r.ResolveField(fd)
			if rf.Category == CategoryUnsupported {
				r.logger.Debug("skipping field with unsupported type",
					"owner", owner.ID, "field", fd.Name(), "type", fd.Type())
				p.Diagnostics.Infof(diagnostic.CodeUnsupportedType, owner.ID.String(), fd.Name(),
					"type %s is not supported; field left unchanged", fd.Type())
				resolved.Skipped = append(resolved.Skipped, fd)

				continue
			}

			resolved.Fields = append(resolved.Fields, rf)
		}

		r.checkDuplicateKeys(owner.ID, resolved.Fields, &p.Diagnostics)

		if common.IsEmpty(resolved.Fields) {
			continue
		}

		p.Owners = append(p.Owners, resolved)
	}

	return p
}

// ResolveField computes the strategy for a single field.
func (r *Resolver) ResolveField(fd analyze.FieldDescriptor) ResolvedField {
	rf := ResolvedField{
		Descriptor: fd,
		Category:   r.Classify(fd.Type()),
	}

	t := types.Unalias(fd.Type())

	switch rf.Category {
	case CategoryPrimitive, CategoryText:
		basic := t.Underlying().(*types.Basic)
		rf.BasicType = basic.Name()
		rf.NeedsConversion = !isBasic(t)

		if rf.Category == CategoryText {
			rf.Accessor = AccessorString
		} else {
			rf.Accessor = primitiveAccessors[basic.Kind()]
		}

	case CategorySerializable:
		rf.Accessor = AccessorSerializable
		rf.Nilable = isNilable(t)

	case CategoryParcelable:
		rf.Accessor = AccessorParcelable
		rf.Nilable = isNilable(t)

	case CategoryUnsupported:
	}

	return rf
}

// Classify returns the category of t. The checks run in a fixed order and
// the first match wins, so a type implementing both markers is Serializable.
func (r *Resolver) Classify(t types.Type) Category {
	if t == nil {
		return CategoryUnsupported
	}

	if basic, ok := types.Unalias(t).Underlying().(*types.Basic); ok {
		if _, ok := primitiveAccessors[basic.Kind()]; ok {
			return CategoryPrimitive
		}

		if basic.Kind() == types.String {
			return CategoryText
		}
	}

	if r.markers.IsSerializable(t) {
		return CategorySerializable
	}

	if r.markers.IsParcelable(t) {
		return CategoryParcelable
	}

	return CategoryUnsupported
}

// checkDuplicateKeys warns when two emitted fields of one owner read the
// same key. Generation still proceeds; both fields are filled from that key.
func (r *Resolver) checkDuplicateKeys(owner analyze.TypeID, fields []ResolvedField, diags *diagnostic.Diagnostics) {
	byKey := make(map[string][]string)
	for _, f := range fields {
		key := f.Descriptor.Key()
		byKey[key] = append(byKey[key], f.Descriptor.Name())
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, key := range keys {
		names := byKey[key]
		if !common.IsMultiple(names) {
			continue
		}

		diags.Warnf(diagnostic.CodeDuplicateKey, owner.String(), names[len(names)-1],
			"key %q is read by fields %s", key, strings.Join(names, ", "))
		r.logger.Warn("duplicate bundle key", "owner", owner, "key", key, "fields", names)
	}
}

func isBasic(t types.Type) bool {
	_, ok := t.(*types.Basic)
	return ok
}

func isNilable(t types.Type) bool {
	switch t.Underlying().(type) {
	case *types.Pointer, *types.Slice, *types.Map, *types.Chan, *types.Signature:
		return true
	default:
		return false
	}
}
