package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouyinchun6/bundleWrite-processor/internal/analyze"
	"github.com/zhouyinchun6/bundleWrite-processor/internal/diagnostic"
)

const kindsSrc = `package screens

type Duration int64

type Payload struct{}

func (Payload) BundleSerializable() {}

type Shape struct{}

func (*Shape) BundleParcelable() {}

type Both struct{}

func (*Both) BundleSerializable() {}
func (*Both) BundleParcelable()   {}

type Tags []string

func (Tags) BundleSerializable() {}

type Mode int

type Label string

type Marked int

func (Marked) BundleSerializable() {}

type Number = int

type Kinds struct {
	I       int
	I64     int64
	F32     float32
	F64     float64
	B       bool
	S       string
	Mode    Mode
	Label   Label
	Wait    Duration
	Alias   Number
	Marked  Marked
	Payload Payload
	PayPtr  *Payload
	Shape   *Shape
	ShapeV  Shape
	Both    *Both
	Tags    Tags
	Small   int8
	U       uint
	List    []string
	Dict    map[string]int
	Ptr     *int
	Any     any
}
`

func TestResolver_Classify(t *testing.T) {
	pkg := checkPackage(t, "example.com/app/screens", kindsSrc)
	r := NewResolver(analyze.DefaultMarkers(), nil)

	tests := []struct {
		field string
		want  Category
	}{
		{"I", CategoryPrimitive},
		{"I64", CategoryPrimitive},
		{"F32", CategoryPrimitive},
		{"F64", CategoryPrimitive},
		{"B", CategoryPrimitive},
		{"S", CategoryText},
		{"Mode", CategoryPrimitive},
		{"Label", CategoryText},
		{"Wait", CategoryPrimitive},
		{"Alias", CategoryPrimitive},
		// primitive is tested before the markers
		{"Marked", CategoryPrimitive},
		{"Payload", CategorySerializable},
		{"PayPtr", CategorySerializable},
		{"Shape", CategoryParcelable},
		// pointer receiver: the value type has no marker method
		{"ShapeV", CategoryUnsupported},
		// serializable is tested before parcelable
		{"Both", CategorySerializable},
		{"Tags", CategorySerializable},
		{"Small", CategoryUnsupported},
		{"U", CategoryUnsupported},
		{"List", CategoryUnsupported},
		{"Dict", CategoryUnsupported},
		{"Ptr", CategoryUnsupported},
		{"Any", CategoryUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			got := r.Classify(fieldType(t, pkg, "Kinds", tt.field))
			assert.Equal(t, tt.want, got, "got %s", got)
		})
	}

	assert.Equal(t, CategoryUnsupported, r.Classify(nil))
}

func TestResolver_ResolveField(t *testing.T) {
	pkg := checkPackage(t, "example.com/app/screens", kindsSrc)
	r := NewResolver(analyze.DefaultMarkers(), nil)

	resolve := func(field string) ResolvedField {
		return r.ResolveField(analyze.NewFieldDescriptor(field, "", fieldType(t, pkg, "Kinds", field)))
	}

	i := resolve("I")
	assert.Equal(t, AccessorInt, i.Accessor)
	assert.Equal(t, "int", i.BasicType)
	assert.False(t, i.NeedsConversion)

	f32 := resolve("F32")
	assert.Equal(t, AccessorFloat32, f32.Accessor)

	b := resolve("B")
	assert.Equal(t, AccessorBool, b.Accessor)

	wait := resolve("Wait")
	assert.Equal(t, AccessorInt64, wait.Accessor)
	assert.Equal(t, "int64", wait.BasicType)
	assert.True(t, wait.NeedsConversion)

	alias := resolve("Alias")
	assert.Equal(t, AccessorInt, alias.Accessor)
	assert.False(t, alias.NeedsConversion)

	label := resolve("Label")
	assert.Equal(t, AccessorString, label.Accessor)
	assert.Equal(t, "string", label.BasicType)
	assert.True(t, label.NeedsConversion)

	payload := resolve("Payload")
	assert.Equal(t, AccessorSerializable, payload.Accessor)
	assert.False(t, payload.Nilable)
	assert.Empty(t, payload.BasicType)

	ptr := resolve("PayPtr")
	assert.True(t, ptr.Nilable)

	tags := resolve("Tags")
	assert.True(t, tags.Nilable)

	shape := resolve("Shape")
	assert.Equal(t, AccessorParcelable, shape.Accessor)
	assert.True(t, shape.Nilable)

	list := resolve("List")
	assert.Equal(t, CategoryUnsupported, list.Category)
	assert.Empty(t, list.Accessor)
}

func TestResolver_Resolve_ScreenScenario(t *testing.T) {
	p := resolveSource(t, `package screens

type Screen struct {
	count int    `+"`bundle:\"\"`"+`
	title string `+"`bundle:\"t\"`"+`
}
`)

	require.Len(t, p.Owners, 1)
	owner := p.Owners[0]
	assert.Equal(t, "example.com/app/screens.Screen", owner.Owner.ID.String())
	require.Len(t, owner.Fields, 2)

	assert.Equal(t, "count", owner.Fields[0].Descriptor.Key())
	assert.Equal(t, CategoryPrimitive, owner.Fields[0].Category)
	assert.Equal(t, "t", owner.Fields[1].Descriptor.Key())
	assert.Equal(t, CategoryText, owner.Fields[1].Category)

	assert.Equal(t, 2, p.FieldCount())
	assert.Zero(t, p.Diagnostics.Len())
}

func TestResolver_Resolve_SkipsUnsupported(t *testing.T) {
	p := resolveSource(t, `package screens

type Mixed struct {
	Items []string `+"`bundle:\"items\"`"+`
	Name  string   `+"`bundle:\"name\"`"+`
}

type OnlyUnsupported struct {
	Items []string `+"`bundle:\"items\"`"+`
	Ch    chan int `+"`bundle:\"ch\"`"+`
}
`)

	// OnlyUnsupported produces no owner at all
	require.Len(t, p.Owners, 1)

	mixed := p.Owners[0]
	assert.Equal(t, "Mixed", mixed.Owner.ID.Name)
	require.Len(t, mixed.Fields, 1)
	assert.Equal(t, "Name", mixed.Fields[0].Descriptor.Name())
	require.Len(t, mixed.Skipped, 1)
	assert.Equal(t, "Items", mixed.Skipped[0].Name())

	// no warnings, only info findings for the report
	assert.Empty(t, p.Diagnostics.Warnings())
	infos := p.Diagnostics.Infos()
	require.Len(t, infos, 3)
	assert.Equal(t, diagnostic.CodeUnsupportedType, infos[0].Code)
	assert.Equal(t, "example.com/app/screens.Mixed", infos[0].Owner)
	assert.Equal(t, "Items", infos[0].Field)
	assert.Equal(t, "example.com/app/screens.OnlyUnsupported", infos[1].Owner)
}

func TestResolver_Resolve_DuplicateKeys(t *testing.T) {
	p := resolveSource(t, `package screens

type Screen struct {
	ID    int64  `+"`bundle:\"id\"`"+`
	Ref   int64  `+"`bundle:\"id\"`"+`
	Name  string `+"`bundle:\"\"`"+`
	Items []int  `+"`bundle:\"Name\"`"+`
}
`)

	require.Len(t, p.Owners, 1)
	assert.Len(t, p.Owners[0].Fields, 3)

	require.Len(t, p.Diagnostics.Warnings(), 1)
	w := p.Diagnostics.Warnings()[0]
	assert.Equal(t, diagnostic.CodeDuplicateKey, w.Code)
	assert.Equal(t, "example.com/app/screens.Screen", w.Owner)
	assert.Equal(t, "Ref", w.Field)
	assert.Contains(t, w.Message, `"id"`)
	assert.False(t, p.Diagnostics.HasErrors())
}

func TestResolver_Resolve_Empty(t *testing.T) {
	p := NewResolver(analyze.DefaultMarkers(), nil).Resolve(analyze.NewOwnerGroups())
	assert.Empty(t, p.Owners)
	assert.Zero(t, p.FieldCount())
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "unsupported", CategoryUnsupported.String())
	assert.Equal(t, "primitive", CategoryPrimitive.String())
	assert.Equal(t, "text", CategoryText.String())
	assert.Equal(t, "serializable", CategorySerializable.String())
	assert.Equal(t, "parcelable", CategoryParcelable.String())
	assert.Equal(t, "unknown", Category(99).String())
}

func TestCategory_Conditional(t *testing.T) {
	assert.False(t, CategoryPrimitive.Conditional())
	assert.True(t, CategoryText.Conditional())
	assert.True(t, CategorySerializable.Conditional())
	assert.True(t, CategoryParcelable.Conditional())
	assert.False(t, CategoryUnsupported.Conditional())
}
