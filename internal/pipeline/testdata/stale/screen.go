// Package stale calls its own injector while the checked-in companion still
// refers to a field that has been removed from Screen.
package stale

import "github.com/zhouyinchun6/bundleWrite-processor/bundle"

type Screen struct {
	Count int `bundle:"count"`
}

func Open(extras *bundle.Bundle) *Screen {
	s := &Screen{}
	InjectScreenBundle(s, extras)

	return s
}
