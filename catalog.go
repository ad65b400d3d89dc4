package facet

import (
	"context"
	"time"
)

// CatalogNode is one node of the content service's category tree.
//
// Children are ordered. Tags name the cache surfaces the node belongs to;
// ExpiresAt, when set, bounds how long anything rendered from the node
// may be served from cache. Attrs carries auxiliary data loaded for the
// requested domains, keyed "<domain>.<field>".
type CatalogNode struct {
	ID        string
	Name      string
	Attrs     map[string]string
	Tags      []string
	ExpiresAt *time.Time
	Children  []*CatalogNode
}

// ContentService fetches catalog structure for components.
//
// Implementations wrap their failures with ErrContentFetch so a pass can
// abort with a typed error. Components never receive a bare
// ContentService: the engine hands them an aggregating view of it, so
// every node fetched during a pass feeds the pass CacheMeta before the
// component sees it.
type ContentService interface {
	// GetTree returns the subtree rooted at rootID. domains opts into
	// auxiliary data (media, counts, pricing); an empty slice loads the
	// base fields only.
	GetTree(ctx context.Context, rootID string, domains []string) (*CatalogNode, error)

	// GetPath returns the nodes from the catalog root down to nodeID,
	// in that order, nodeID included.
	GetPath(ctx context.Context, nodeID string) ([]*CatalogNode, error)
}

// aggregatingCatalog decorates a ContentService so everything fetched
// during a pass lands in the pass accumulator. maxDepth bounds the
// aggregation recursion over fetched subtrees.
type aggregatingCatalog struct {
	svc      ContentService
	meta     *CacheMeta
	maxDepth int
}

func (a aggregatingCatalog) GetTree(ctx context.Context, rootID string, domains []string) (*CatalogNode, error) {
	tree, err := a.svc.GetTree(ctx, rootID, domains)
	if err != nil {
		return nil, err
	}
	if err := aggregateToDepth(tree, a.meta, a.maxDepth); err != nil {
		return nil, err
	}
	return tree, nil
}

// GetPath aggregates the path nodes themselves, not their subtrees; the
// ancestors of a node are part of the render surface, their unrelated
// siblings are not.
func (a aggregatingCatalog) GetPath(ctx context.Context, nodeID string) ([]*CatalogNode, error) {
	path, err := a.svc.GetPath(ctx, nodeID)
	if err != nil {
		return nil, err
	}
	for _, n := range path {
		a.meta.AddTags(n.Tags...)
		if n.ExpiresAt != nil {
			a.meta.Observe(*n.ExpiresAt)
		}
	}
	return path, nil
}
