package catalogfilter

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/hkft/facet"
)

// Breadcrumb renders the path from the catalog root to the selected
// category as an ordered trail. Without a selection it renders nothing,
// keeping the fragment stable for the unfiltered page.
type Breadcrumb struct{}

// Render implements facet.Component.
func (*Breadcrumb) Render(ctx context.Context, v *facet.View) (facet.Fragment, error) {
	selected := v.Param(ParamCategory)
	if selected == "" {
		return "", nil
	}
	path, err := v.Catalog().GetPath(ctx, selected)
	if err != nil {
		return "", err
	}
	return v.Render(ctx, trail(path))
}

func trail(path []*facet.CatalogNode) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<nav class="facet-trail"><ol>`)
		for _, n := range path {
			fmt.Fprintf(&b, `<li><a href="?%s=%s">%s</a></li>`,
				ParamCategory, url.QueryEscape(n.ID), html.EscapeString(n.Name))
		}
		b.WriteString(`</ol></nav>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
