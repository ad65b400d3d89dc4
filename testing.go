package facet

import (
	"context"
	"fmt"
)

// Test helpers for exercising components and engines without real
// configuration or content backends. Exported so downstream component
// packages can lean on them in their own tests.

// StaticConfig is a map-backed Config for tests and embedders.
type StaticConfig map[string]any

// Get implements Config.
func (c StaticConfig) Get(key string) (any, bool) {
	v, ok := c[key]
	return v, ok
}

// StaticCatalog is a ContentService answering from fixed data. Unknown
// IDs fail with ErrContentFetch, like a real backend would.
type StaticCatalog struct {
	// Roots maps start-node IDs to the trees GetTree returns.
	Roots map[string]*CatalogNode
	// Paths maps node IDs to the root-to-node slices GetPath returns.
	Paths map[string][]*CatalogNode
}

// GetTree implements ContentService.
func (s *StaticCatalog) GetTree(_ context.Context, rootID string, _ []string) (*CatalogNode, error) {
	if t, ok := s.Roots[rootID]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: unknown start node %q", ErrContentFetch, rootID)
}

// GetPath implements ContentService.
func (s *StaticCatalog) GetPath(_ context.Context, nodeID string) ([]*CatalogNode, error) {
	if p, ok := s.Paths[nodeID]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: unknown node %q", ErrContentFetch, nodeID)
}

// TestHarness bundles a registry, a static config and a static catalog
// into a ready-to-render engine.
//
//	h := facet.NewTestHarness()
//	h.Registry.MustRegister("nav", "standard", facet.StaticComponent("<nav/>"))
//	res, err := h.Render("nav", nil)
type TestHarness struct {
	Registry *Registry
	Config   StaticConfig
	Catalog  *StaticCatalog
	opts     []Option
}

// NewTestHarness returns a harness with an empty registry, config and
// catalog. Engine options (WithMaxDepth, WithLogger) apply to every
// engine the harness builds.
func NewTestHarness(opts ...Option) *TestHarness {
	return &TestHarness{
		Registry: NewRegistry(),
		Config:   StaticConfig{},
		Catalog: &StaticCatalog{
			Roots: make(map[string]*CatalogNode),
			Paths: make(map[string][]*CatalogNode),
		},
		opts: opts,
	}
}

// Engine builds an engine over the harness state.
func (h *TestHarness) Engine() *Engine {
	return NewEngine(h.Registry, h.Config, h.Catalog, h.opts...)
}

// Render runs one pass over the harness state.
func (h *TestHarness) Render(family string, params map[string]string) (*Result, error) {
	return h.Engine().Render(context.Background(), family, params)
}

// StaticComponent returns a factory whose component always renders body.
func StaticComponent(body string) Factory {
	return func() Component {
		return ComponentFunc(func(context.Context, *View) (Fragment, error) {
			return Fragment(body), nil
		})
	}
}
