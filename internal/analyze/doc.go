// Package analyze loads Go packages and collects bundle-tagged struct fields.
//
// It uses golang.org/x/tools/go/packages with AST and go/types. Every query
// about a field is answered from static type information; nothing here
// inspects runtime values.
//
// Key types:
//   - TypeID: package import path + type name
//   - Package: a loaded, type-checked package and its directory
//   - FieldDescriptor: field name, external key name and static type
//   - OwnerGroups: tagged fields grouped by their owning struct type
//   - Markers: the two marker interfaces used for assignability checks
package analyze
