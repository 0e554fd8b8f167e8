package analyze

import (
	"go/types"
	"log/slog"
	"reflect"
	"strings"
)

// DefaultTag is the struct tag key that marks a field for injection.
const DefaultTag = "bundle"

// skipValue opts a field out even though it carries the tag.
const skipValue = "-"

// Collector scans package-level struct types for tagged fields.
type Collector struct {
	tag    string
	filter *Filter
	logger *slog.Logger
}

// CollectorOption configures a Collector.
type CollectorOption func(*Collector)

// WithTag overrides the struct tag key (default "bundle").
func WithTag(tag string) CollectorOption {
	return func(c *Collector) {
		if tag != "" {
			c.tag = tag
		}
	}
}

// WithFilter restricts collection to owners accepted by f.
func WithFilter(f *Filter) CollectorOption {
	return func(c *Collector) {
		c.filter = f
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) CollectorOption {
	return func(c *Collector) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCollector creates a new Collector.
func NewCollector(opts ...CollectorOption) *Collector {
	c := &Collector{
		tag:    DefaultTag,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Collect groups every tagged field found in pkgs by its owning type.
// A field is collected whatever its type; classification happens later.
func (c *Collector) Collect(pkgs []Package) *OwnerGroups {
	groups := NewOwnerGroups()

	for _, pkg := range pkgs {
		c.collectPackage(pkg, groups)
	}

	return groups
}

func (c *Collector) collectPackage(pkg Package, groups *OwnerGroups) {
	if pkg.Types == nil {
		return
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || typeName.IsAlias() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok || named.TypeParams().Len() > 0 {
			continue
		}

		st, ok := named.Underlying().(*types.Struct)
		if !ok {
			continue
		}

		id := TypeID{PkgPath: pkg.Path, Name: name}
		if !c.filter.Allow(id) {
			c.logger.Debug("owner filtered out", "type", id)
			continue
		}

		for i := range st.NumFields() {
			key, ok := c.lookupTag(reflect.StructTag(st.Tag(i)))
			if !ok {
				continue
			}

			field := st.Field(i)
			if field.Name() == "_" {
				c.logger.Debug("skipping blank field", "type", id)
				continue
			}

			groups.Append(pkg, typeName, NewFieldDescriptor(field.Name(), key, field.Type()))
		}
	}
}

// lookupTag returns the key name carried by the tag. The second result is
// false when the field is not tagged or is opted out with "-".
func (c *Collector) lookupTag(tag reflect.StructTag) (string, bool) {
	value, ok := tag.Lookup(c.tag)
	if !ok {
		return "", false
	}

	name, _, _ := strings.Cut(value, ",")
	if name == skipValue {
		return "", false
	}

	return strings.TrimSpace(name), true
}
