package facet

import (
	"context"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"
)

// View is the render context handed to every component in a pass.
//
// A view is immutable from the component's perspective: configuration
// and request parameters are read-only, and the only writable surface is
// the CacheMeta accumulator, reached directly through Meta or indirectly
// through anything Catalog fetches. The engine derives one view per
// subtree level; components receive views, they never build them.
type View struct {
	family  string
	depth   int
	params  map[string]string
	conf    Config
	catalog ContentService
	meta    *CacheMeta
	passID  string
	logger  zerolog.Logger
}

// Family returns the component family this view is scoped to.
func (v *View) Family() string {
	return v.family
}

// PassID returns the identifier of the render pass.
func (v *View) PassID() string {
	return v.passID
}

// Param returns the request parameter for key, "" when unset.
func (v *View) Param(key string) string {
	return v.params[key]
}

// Params returns a copy of all request parameters. Callers may keep or
// modify the copy freely; the pass parameters stay fixed.
func (v *View) Params() map[string]string {
	out := make(map[string]string, len(v.params))
	for k, val := range v.params {
		out[k] = val
	}
	return out
}

// ConfigString reads the family-scoped key: for the "catalog/filter"
// family, ConfigString("startid", ...) reads "catalog/filter/startid".
func (v *View) ConfigString(key, def string) string {
	return ConfigString(v.conf, familyKey(v.family, key), def)
}

// ConfigStrings reads a family-scoped string list.
func (v *View) ConfigStrings(key string, def []string) []string {
	return ConfigStrings(v.conf, familyKey(v.family, key), def)
}

// ConfigInt reads a family-scoped integer.
func (v *View) ConfigInt(key string, def int) int {
	return ConfigInt(v.conf, familyKey(v.family, key), def)
}

// ConfigBool reads a family-scoped boolean.
func (v *View) ConfigBool(key string, def bool) bool {
	return ConfigBool(v.conf, familyKey(v.family, key), def)
}

// Catalog returns the content service. Every node fetched through it is
// aggregated into the pass CacheMeta before the component sees it.
func (v *View) Catalog() ContentService {
	return v.catalog
}

// Meta returns the pass accumulator.
func (v *View) Meta() *CacheMeta {
	return v.meta
}

// Logger returns the pass logger.
func (v *View) Logger() *zerolog.Logger {
	return &v.logger
}

// Render materializes a templ component into a Fragment.
func (v *View) Render(ctx context.Context, c templ.Component) (Fragment, error) {
	return RenderTempl(ctx, c)
}

// WithMeta returns a copy of the view whose accumulator, including the
// catalog aggregation, targets m instead. Caching decorators use it to
// capture a subtree's contribution in isolation before merging it into
// the pass. The pass aggregation is retargeted rather than stacked, and
// its depth ceiling carries over.
func (v *View) WithMeta(m *CacheMeta) *View {
	clone := *v
	clone.meta = m
	if a, ok := v.catalog.(aggregatingCatalog); ok {
		a.meta = m
		clone.catalog = a
	} else {
		clone.catalog = aggregatingCatalog{svc: v.catalog, meta: m, maxDepth: DefaultCatalogDepth}
	}
	return &clone
}

// descend returns the child view for a subpart family, one level deeper.
func (v *View) descend(family string) *View {
	clone := *v
	clone.family = family
	clone.depth = v.depth + 1
	return &clone
}
