package facet

import (
	"context"
	"strings"

	"github.com/a-h/templ"
)

// Fragment is an opaque piece of rendered markup.
//
// The engine never inspects fragment contents. It concatenates the
// fragments a component tree produces, in render order, and hands the
// result back to the caller.
type Fragment string

// String returns the fragment contents.
func (f Fragment) String() string {
	return string(f)
}

// Component is the single capability required to take part in a render
// pass.
//
// Implementations render their own body only. Subcomponents are resolved
// from configuration and rendered around the body by the engine, so a
// component never concatenates its children itself.
//
// Render must leave the view alone except through v.Meta(), the
// cache-metadata accumulator shared by the whole pass (fetching through
// v.Catalog() feeds the same accumulator).
//
//	type Banner struct{}
//
//	func (Banner) Render(ctx context.Context, v *facet.View) (facet.Fragment, error) {
//	    return v.Render(ctx, bannerMarkup(v.ConfigString("title", "Sale")))
//	}
type Component interface {
	Render(ctx context.Context, v *View) (Fragment, error)
}

// ComponentFunc adapts a plain function to the Component interface,
// mirroring templ.ComponentFunc.
type ComponentFunc func(ctx context.Context, v *View) (Fragment, error)

// Render calls f.
func (f ComponentFunc) Render(ctx context.Context, v *View) (Fragment, error) {
	return f(ctx, v)
}

// Factory constructs a fresh component instance for a render pass.
//
// Factories must be pure: no I/O and no configuration reads at build
// time. Anything environment-dependent is read from the View during
// Render, which keeps registration free of init-order surprises.
type Factory func() Component

// RenderTempl materializes a templ component into a Fragment.
//
// Components build their markup as templ components and snapshot them
// through this helper (or View.Render, which is the same thing scoped to
// a pass).
func RenderTempl(ctx context.Context, c templ.Component) (Fragment, error) {
	var b strings.Builder
	if err := c.Render(ctx, &b); err != nil {
		return "", err
	}
	return Fragment(b.String()), nil
}
