package facet

import (
	"context"
	"fmt"
	"strings"
)

// treeNode renders a component subtree: the component's own body first,
// then each configured subpart's subtree, in configuration order,
// concatenated. It is itself a Component, so decorator chains wrap whole
// subtrees; a caching layer outside a node stores the node's body plus
// everything below it.
type treeNode struct {
	engine *Engine
	family string
	body   Component
}

func (n treeNode) Render(ctx context.Context, v *View) (Fragment, error) {
	if v.depth > n.engine.maxDepth {
		return "", fmt.Errorf("%w: family %q sits at depth %d, ceiling is %d",
			ErrDepthExceeded, n.family, v.depth, n.engine.maxDepth)
	}

	own, err := n.body.Render(ctx, v)
	if err != nil {
		return "", err
	}

	children, err := n.engine.resolveSubparts(n.family)
	if err != nil {
		return "", err
	}
	if len(children) == 0 {
		return own, nil
	}

	var b strings.Builder
	b.WriteString(string(own))
	for _, child := range children {
		frag, err := child.comp.Render(ctx, v.descend(child.family))
		if err != nil {
			return "", err
		}
		b.WriteString(string(frag))
	}
	return Fragment(b.String()), nil
}
