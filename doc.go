// Package facet assembles nested, cacheable HTML fragments out of small
// components.
//
// facet powers configurable storefront surfaces such as catalog filters:
// which components render, how they nest and which cross-cutting layers
// wrap them is decided by configuration, not code. A render pass returns
// one fragment plus the cache metadata (tags and earliest expiry) of
// everything the pass touched, ready for an HTTP cache layer.
//
// # Core Concepts
//
// Components implement a single method and render only their own body:
//
//	type Component interface {
//	    Render(ctx context.Context, v *View) (Fragment, error)
//	}
//
// Components are registered per family under an implementation name.
// A family is a slash-separated identifier like "catalog/filter"; its
// subparts live one level below it, "catalog/filter/categories". Lookup
// with an empty name resolves through the family's "impl" configuration
// key and falls back to "standard", so deployments swap implementations
// without code changes.
//
// # Configuration
//
// The engine reads a small set of family-scoped keys:
//
//	<family>/impl                  implementation name for lookup
//	<family>/subparts              ordered subcomponent names
//	<family>/decorators/global     site-wide decorator defaults
//	<family>/decorators/excludes   identifiers removed from the chain
//	<family>/decorators/local      decorators appended for this family
//
// Components read their own keys the same way through View.ConfigString
// and friends; the built-in catalog filter uses "startid", "domains" and
// "title". Any key/value store satisfying the two-method Config
// interface works; lib/viperconf adapts a viper instance.
//
// # Decorators
//
// Decorators are functions from Component to Component, applied as an
// ordered fold. The chain for a family is (global minus excludes)
// followed by (local minus excludes); the first name is the innermost
// layer, the last name the outermost. Because decorators wrap the
// subtree node, a caching decorator stores a component's body together
// with everything rendered below it.
//
// # Render Passes
//
// An Engine ties a Registry, a Config and a ContentService together:
//
//	eng := facet.NewEngine(reg, conf, catalog, facet.WithLogger(logger))
//	res, err := eng.Render(ctx, "catalog/filter", map[string]string{"cat": "shoes"})
//
// Each pass is single-threaded with an immutable View; the only writable
// surface is the pass CacheMeta. Catalog data fetched through the view
// is aggregated into that accumulator automatically: tag sets union,
// expiries reduce to the minimum. All failures are typed sentinels
// (ErrComponentNotFound, ErrDecoratorNotFound, ErrContentFetch,
// ErrDepthExceeded) and abort the pass without partial output.
//
// # Design Rationale
//
// The system favors explicitness over magic:
//   - Explicit registration (no init() side effects)
//   - Explicit decorator chains (ordered folds, not inheritance)
//   - Explicit context (an immutable View per pass, no globals)
//   - Explicit failure (typed sentinels, never half a fragment)
package facet
