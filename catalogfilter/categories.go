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

// Categories renders the catalog tree as nested lists, starting at the
// family's configured start node and requesting its configured domains.
// The children of the start node form the top level; the selected
// category is marked. Product counts appear when the "count" domain was
// requested.
type Categories struct{}

// Render implements facet.Component.
func (*Categories) Render(ctx context.Context, v *facet.View) (facet.Fragment, error) {
	start := v.ConfigString("startid", "root")
	domains := v.ConfigStrings("domains", nil)
	tree, err := v.Catalog().GetTree(ctx, start, domains)
	if err != nil {
		return "", err
	}
	return v.Render(ctx, list(tree.Children, v.Param(ParamCategory)))
}

func list(nodes []*facet.CatalogNode, selected string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(nodes) == 0 {
			return nil
		}
		var b strings.Builder
		writeList(&b, nodes, selected)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeList(b *strings.Builder, nodes []*facet.CatalogNode, selected string) {
	b.WriteString(`<ul class="facet-cats">`)
	for _, n := range nodes {
		cls := ""
		if n.ID == selected {
			cls = ` class="selected"`
		}
		fmt.Fprintf(b, `<li%s><a href="?%s=%s">%s</a>`,
			cls, ParamCategory, url.QueryEscape(n.ID), html.EscapeString(n.Name))
		if count, ok := n.Attrs["count.products"]; ok {
			fmt.Fprintf(b, `<span class="count">%s</span>`, html.EscapeString(count))
		}
		if len(n.Children) > 0 {
			writeList(b, n.Children, selected)
		}
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul>`)
}
