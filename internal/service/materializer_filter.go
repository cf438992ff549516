package service

import (
	"github.com/bmatcuk/doublestar/v4"
)

type materializeOptions struct {
	include []string
	exclude []string
}

// MaterializeOption tunes a single Materialize call.
type MaterializeOption func(*materializeOptions)

// WithFilter keeps only entries matching at least one include pattern (all
// entries when include is empty) and none of the exclude patterns. Patterns
// use doublestar syntax and are matched against the archive entry path.
func WithFilter(include, exclude []string) MaterializeOption {
	return func(o *materializeOptions) {
		o.include = include
		o.exclude = exclude
	}
}

func (o materializeOptions) match(entryPath string) bool {
	if len(o.include) > 0 && !matchAny(o.include, entryPath) {
		return false
	}
	return !matchAny(o.exclude, entryPath)
}

// matchAny ignores malformed patterns; configuration validation rejects them
// up front.
func matchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
