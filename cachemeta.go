package facet

import (
	"fmt"
	"sort"
	"time"
)

// CacheMeta accumulates the cache metadata of everything a render pass
// touched: the union of catalog tags and the earliest expiry seen.
//
// One accumulator is shared by the whole pass and mutated in place; it is
// never swapped out mid-pass. Callers hand the final value to their HTTP
// cache layer, tags for invalidation and expiry for the TTL bound.
type CacheMeta struct {
	tags   map[string]struct{}
	expire time.Time
}

// NewCacheMeta returns an empty accumulator.
func NewCacheMeta() *CacheMeta {
	return &CacheMeta{tags: make(map[string]struct{})}
}

// AddTags inserts tags into the set. Duplicates collapse; empty strings
// are dropped.
func (m *CacheMeta) AddTags(tags ...string) {
	for _, t := range tags {
		if t == "" {
			continue
		}
		m.tags[t] = struct{}{}
	}
}

// Observe records an expiry candidate, keeping the minimum. Zero times
// are ignored. Timestamps already in the past are kept like any other
// value; deciding what to do with an expired entry is the cache's job,
// not the aggregator's.
func (m *CacheMeta) Observe(t time.Time) {
	if t.IsZero() {
		return
	}
	if m.expire.IsZero() || t.Before(m.expire) {
		m.expire = t
	}
}

// Merge folds other into m: tag union plus expiry minimum.
func (m *CacheMeta) Merge(other *CacheMeta) {
	if other == nil {
		return
	}
	for t := range other.tags {
		m.tags[t] = struct{}{}
	}
	m.Observe(other.expire)
}

// Has reports whether tag is in the set.
func (m *CacheMeta) Has(tag string) bool {
	_, ok := m.tags[tag]
	return ok
}

// Tags returns the accumulated tag set in sorted order.
func (m *CacheMeta) Tags() []string {
	out := make([]string, 0, len(m.tags))
	for t := range m.tags {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Expire returns the earliest expiry seen, and false when no node
// contributed one.
func (m *CacheMeta) Expire() (time.Time, bool) {
	return m.expire, !m.expire.IsZero()
}

// DefaultCatalogDepth guards aggregation against cyclic or degenerate
// trees when no ceiling is configured via WithCatalogDepth.
const DefaultCatalogDepth = 64

// Aggregate folds node and all of its descendants into meta: tags are
// unioned, expiries reduce to the minimum, children are visited in order
// with the same accumulator. The final (tags, expiry) result does not
// depend on sibling order, so callers may aggregate partial trees in any
// sequence and still converge. Recursion is bounded by
// DefaultCatalogDepth; render passes use the engine's ceiling instead.
func Aggregate(node *CatalogNode, meta *CacheMeta) error {
	return aggregateToDepth(node, meta, DefaultCatalogDepth)
}

func aggregateToDepth(node *CatalogNode, meta *CacheMeta, ceiling int) error {
	return aggregate(node, meta, 0, ceiling)
}

func aggregate(node *CatalogNode, meta *CacheMeta, depth, ceiling int) error {
	if node == nil {
		return nil
	}
	if depth > ceiling {
		return fmt.Errorf("%w: catalog node %q nested deeper than %d", ErrDepthExceeded, node.ID, ceiling)
	}
	meta.AddTags(node.Tags...)
	if node.ExpiresAt != nil {
		meta.Observe(*node.ExpiresAt)
	}
	for _, child := range node.Children {
		if err := aggregate(child, meta, depth+1, ceiling); err != nil {
			return err
		}
	}
	return nil
}
