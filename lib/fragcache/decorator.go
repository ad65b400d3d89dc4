package fragcache

import (
	"context"

	"github.com/hkft/facet"
)

// Decorator returns the caching decorator backed by c, conventionally
// registered under the name "cache".
//
// On a hit the stored fragment is served, the stored tags and expiry are
// merged into the pass metadata, and the wrapped subtree is not rendered;
// this is the one sanctioned decorator short-circuit. On a miss the
// subtree renders against a fresh accumulator so exactly its own
// contribution is captured, merged into the pass and stored alongside
// the fragment. A failed store is logged and ignored; the render result
// is not held hostage by the cache.
func Decorator(c *Cache) facet.Decorator {
	return func(next facet.Component) facet.Component {
		return facet.ComponentFunc(func(ctx context.Context, v *facet.View) (facet.Fragment, error) {
			key := Key(v.Family(), v.Params())
			if e, ok := c.Get(key); ok {
				v.Meta().AddTags(e.Tags...)
				v.Meta().Observe(e.Expire)
				return facet.Fragment(e.Fragment), nil
			}

			sub := facet.NewCacheMeta()
			frag, err := next.Render(ctx, v.WithMeta(sub))
			if err != nil {
				return "", err
			}
			v.Meta().Merge(sub)

			entry := &Entry{Fragment: string(frag), Tags: sub.Tags()}
			if exp, ok := sub.Expire(); ok {
				entry.Expire = exp
			}
			if err := c.Set(key, entry); err != nil {
				v.Logger().Warn().Err(err).Str("family", v.Family()).Msg("fragment cache store failed")
			}
			return frag, nil
		})
	}
}
