package chain

// DefaultMaxExpandDepth bounds Expand, whose output grows roughly 2.5x per
// level.
const DefaultMaxExpandDepth = 4

// Options configures an Evaluator.
type Options struct {
	// MaxExpandDepth is the deepest level Expand will materialise.
	MaxExpandDepth int
	// Cache is shared with other evaluators when set. nil means a fresh cache.
	Cache *Cache
}

// DefaultOptions returns standard evaluator options.
func DefaultOptions() *Options {
	return &Options{
		MaxExpandDepth: DefaultMaxExpandDepth,
		Cache:          nil, // nil → NewCache inside New
	}
}
