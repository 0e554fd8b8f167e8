package gen

import (
	"go/types"
	"sort"
	"strconv"

	"github.com/zhouyinchun6/bundleWrite-processor/internal/common"
)

// importSpec represents one import line.
type importSpec struct {
	Alias string
	Path  string
}

// importSet tracks the packages a generated file refers to and hands out
// collision-free qualifiers.
type importSet struct {
	ownerPath string
	byPath    map[string]string // import path -> qualifier
	byName    map[string]string // qualifier -> import path
}

// newImportSet creates an importSet for a file in the package ownerPath.
// Qualifiers never take one of the reserved names.
func newImportSet(ownerPath string, reserved ...string) *importSet {
	s := &importSet{
		ownerPath: ownerPath,
		byPath:    make(map[string]string),
		byName:    make(map[string]string, len(reserved)),
	}

	for _, name := range reserved {
		s.byName[name] = ""
	}

	return s
}

// add registers path and returns the qualifier to use for it. The owner's
// own package needs no qualifier. An empty name defaults to the last path
// element.
func (s *importSet) add(path, name string) string {
	if path == s.ownerPath {
		return ""
	}

	if q, ok := s.byPath[path]; ok {
		return q
	}

	if name == "" {
		name = common.PkgAlias(path)
	}

	q := name
	for i := 2; ; i++ {
		if _, taken := s.byName[q]; !taken {
			break
		}

		q = name + strconv.Itoa(i)
	}

	s.byPath[path] = q
	s.byName[q] = path

	return q
}

// qualifier is a types.Qualifier that records every package it sees.
func (s *importSet) qualifier(pkg *types.Package) string {
	return s.add(pkg.Path(), pkg.Name())
}

// specs returns the imports sorted by path. An alias is only written when
// the qualifier differs from the last path element.
func (s *importSet) specs() []importSpec {
	specs := make([]importSpec, 0, len(s.byPath))
	for path, q := range s.byPath {
		spec := importSpec{Path: path}
		if q != common.PkgAlias(path) {
			spec.Alias = q
		}

		specs = append(specs, spec)
	}

	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Path < specs[j].Path
	})

	return specs
}
