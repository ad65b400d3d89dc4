// Package catalogfile serves a catalog tree from a YAML file.
//
// It is the file-backed facet.ContentService used by the CLI and by
// fixtures: the whole catalog is parsed once, GetTree and GetPath answer
// from the parsed tree, and unknown IDs fail as content-fetch errors the
// way a remote backend would.
package catalogfile

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hkft/facet"
)

// node is the YAML shape of a catalog node.
type node struct {
	ID        string            `yaml:"id"`
	Name      string            `yaml:"name"`
	Attrs     map[string]string `yaml:"attrs"`
	Tags      []string          `yaml:"tags"`
	ExpiresAt *time.Time        `yaml:"expires_at"`
	Children  []*node           `yaml:"children"`
}

// Service is an in-memory facet.ContentService loaded from YAML.
type Service struct {
	byID  map[string]*facet.CatalogNode
	paths map[string][]*facet.CatalogNode
}

// Load parses the catalog file at path.
func Load(path string) (*Service, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalogfile: %w", err)
	}
	return Parse(raw)
}

// Parse builds a Service from YAML bytes. The document is a single root
// node; every node needs an id, unique within the file.
func Parse(raw []byte) (*Service, error) {
	var root node
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return nil, fmt.Errorf("catalogfile: parse: %w", err)
	}
	if root.ID == "" {
		return nil, fmt.Errorf("catalogfile: root node has no id")
	}
	s := &Service{
		byID:  make(map[string]*facet.CatalogNode),
		paths: make(map[string][]*facet.CatalogNode),
	}
	if err := s.index(&root, nil); err != nil {
		return nil, err
	}
	return s, nil
}

// index converts the YAML node into catalog nodes, recording the
// root-to-node path for GetPath as it descends. Path entries are shallow
// copies without children so path consumers cannot wander back into the
// tree.
func (s *Service) index(n *node, trail []*facet.CatalogNode) error {
	if n.ID == "" {
		return fmt.Errorf("catalogfile: node under %q has no id", trailID(trail))
	}
	if _, dup := s.byID[n.ID]; dup {
		return fmt.Errorf("catalogfile: duplicate node id %q", n.ID)
	}
	cn := &facet.CatalogNode{
		ID:        n.ID,
		Name:      n.Name,
		Attrs:     n.Attrs,
		Tags:      n.Tags,
		ExpiresAt: n.ExpiresAt,
	}
	shallow := *cn
	shallow.Attrs = nil
	trail = append(trail, &shallow)

	s.byID[cn.ID] = cn
	s.paths[cn.ID] = append([]*facet.CatalogNode(nil), trail...)

	for _, child := range n.Children {
		if err := s.index(child, trail); err != nil {
			return err
		}
		cn.Children = append(cn.Children, s.byID[child.ID])
	}
	return nil
}

func trailID(trail []*facet.CatalogNode) string {
	if len(trail) == 0 {
		return "root"
	}
	return trail[len(trail)-1].ID
}

// GetTree implements facet.ContentService. domains opts into attr
// groups: a node attr "count.products" is returned only when "count" is
// requested. No domains means base fields only.
func (s *Service) GetTree(_ context.Context, rootID string, domains []string) (*facet.CatalogNode, error) {
	n, ok := s.byID[rootID]
	if !ok {
		return nil, fmt.Errorf("%w: unknown start node %q", facet.ErrContentFetch, rootID)
	}
	return cloneFiltered(n, domains), nil
}

// GetPath implements facet.ContentService.
func (s *Service) GetPath(_ context.Context, nodeID string) ([]*facet.CatalogNode, error) {
	p, ok := s.paths[nodeID]
	if !ok {
		return nil, fmt.Errorf("%w: unknown node %q", facet.ErrContentFetch, nodeID)
	}
	return p, nil
}

// cloneFiltered copies the subtree with attrs narrowed to the requested
// domains. Callers get their own nodes; the indexed tree stays pristine.
func cloneFiltered(n *facet.CatalogNode, domains []string) *facet.CatalogNode {
	out := &facet.CatalogNode{
		ID:        n.ID,
		Name:      n.Name,
		Tags:      n.Tags,
		ExpiresAt: n.ExpiresAt,
	}
	if len(domains) > 0 && len(n.Attrs) > 0 {
		attrs := make(map[string]string)
		for k, v := range n.Attrs {
			for _, d := range domains {
				if strings.HasPrefix(k, d+".") {
					attrs[k] = v
					break
				}
			}
		}
		if len(attrs) > 0 {
			out.Attrs = attrs
		}
	}
	for _, child := range n.Children {
		out.Children = append(out.Children, cloneFiltered(child, domains))
	}
	return out
}
