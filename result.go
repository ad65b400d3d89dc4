package facet

// Result is the product of a render pass.
//
// Fragment is the assembled markup of the whole component tree, root
// body first, subparts in configuration order behind it. Meta is the
// pass accumulator after aggregation; typical callers turn its tags into
// cache invalidation keys and its expiry into a response TTL.
type Result struct {
	Fragment Fragment
	Meta     *CacheMeta
	PassID   string
}
