// Package catalogfilter provides the built-in "catalog/filter" component
// family: a heading, a breadcrumb of the selected category and the
// category tree itself.
//
// The family is wired entirely through configuration. A typical setup
// renders the heading with breadcrumb and categories as subparts:
//
//	catalog/filter/subparts:            [breadcrumb, categories]
//	catalog/filter/categories/startid:  root
//	catalog/filter/categories/domains:  [count]
//
// The selected category arrives as the "cat" request parameter.
package catalogfilter

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/hkft/facet"
)

// Family is the component family this package registers.
const Family = "catalog/filter"

// ParamCategory is the request parameter naming the selected category.
const ParamCategory = "cat"

// Register adds the filter family to reg: the standard root plus the
// breadcrumb and categories subparts.
func Register(reg *facet.Registry) error {
	for _, r := range []struct {
		family  string
		factory facet.Factory
	}{
		{Family, func() facet.Component { return &Filter{} }},
		{facet.SubFamily(Family, "breadcrumb"), func() facet.Component { return &Breadcrumb{} }},
		{facet.SubFamily(Family, "categories"), func() facet.Component { return &Categories{} }},
	} {
		if err := reg.Register(r.family, facet.DefaultImplName, r.factory); err != nil {
			return err
		}
	}
	return nil
}

// Filter renders the filter heading. The subparts configured for the
// family follow the heading in the assembled fragment; the root body
// itself stays deliberately small.
type Filter struct{}

// Render implements facet.Component.
func (*Filter) Render(ctx context.Context, v *facet.View) (facet.Fragment, error) {
	return v.Render(ctx, heading(v.ConfigString("title", "Filter")))
}

func heading(title string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h2 class="facet-heading">%s</h2>`, html.EscapeString(title))
		return err
	})
}
