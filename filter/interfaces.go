package filter

import (
	"github.com/s0up4200/abjc/jellyfin"
)

// Filter decides whether a catalog item is kept
type Filter interface {
	// Match reports whether the item satisfies the filter
	Match(item jellyfin.Item) (bool, error)

	// Expression returns the source expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	Compile(expression string) (Filter, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}
