package facet

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultMaxDepth bounds component-tree recursion when WithMaxDepth is
// not given. Storefront filter trees sit at depth two or three; the
// ceiling exists to turn a self-referential subpart configuration into a
// typed error instead of a blown stack.
const DefaultMaxDepth = 32

// Engine runs render passes over a registry, a configuration store and a
// content service.
//
// An engine is cheap to build and safe to share. Each Render call is an
// isolated single-threaded pass with its own View, pass ID and CacheMeta;
// registry and configuration are read-only while a pass runs.
type Engine struct {
	registry     *Registry
	conf         Config
	content      ContentService
	logger       zerolog.Logger
	maxDepth     int
	catalogDepth int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the pass logger. The default is a no-op logger, so
// embedding the engine in a silent context costs nothing.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithMaxDepth raises or lowers the component-tree recursion ceiling.
// Values below 1 are ignored.
func WithMaxDepth(n int) Option {
	return func(e *Engine) {
		if n >= 1 {
			e.maxDepth = n
		}
	}
}

// WithCatalogDepth raises or lowers the catalog aggregation recursion
// ceiling, DefaultCatalogDepth unless set. Values below 1 are ignored.
func WithCatalogDepth(n int) Option {
	return func(e *Engine) {
		if n >= 1 {
			e.catalogDepth = n
		}
	}
}

// NewEngine wires an engine. conf and content must be non-nil; the
// StaticConfig and StaticCatalog helpers cover lightweight setups.
func NewEngine(reg *Registry, conf Config, content ContentService, opts ...Option) *Engine {
	e := &Engine{
		registry:     reg,
		conf:         conf,
		content:      content,
		logger:       zerolog.Nop(),
		maxDepth:     DefaultMaxDepth,
		catalogDepth: DefaultCatalogDepth,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render runs one pass: the family's configured implementation is looked
// up, wrapped in its decorator chain, assembled with its subparts and
// rendered. The result carries the fragment plus the cache metadata of
// every catalog node the pass touched.
//
// Any failure aborts the pass with a typed error; no partial fragment is
// ever returned alongside one.
func (e *Engine) Render(ctx context.Context, family string, params map[string]string) (*Result, error) {
	passID := uuid.NewString()
	logger := e.logger.With().Str("pass_id", passID).Logger()

	meta := NewCacheMeta()
	view := &View{
		family:  family,
		params:  params,
		conf:    e.conf,
		catalog: aggregatingCatalog{svc: e.content, meta: meta, maxDepth: e.catalogDepth},
		meta:    meta,
		passID:  passID,
		logger:  logger,
	}

	root, err := e.node(family)
	if err != nil {
		logger.Error().Err(err).Str("family", family).Msg("render pass failed")
		return nil, err
	}
	frag, err := root.Render(ctx, view)
	if err != nil {
		logger.Error().Err(err).Str("family", family).Msg("render pass failed")
		return nil, err
	}

	logger.Debug().
		Str("family", family).
		Int("bytes", len(frag)).
		Strs("tags", meta.Tags()).
		Msg("render pass complete")
	return &Result{Fragment: frag, Meta: meta, PassID: passID}, nil
}

// node resolves family's component body, lifts it into a subtree node
// and applies the family's decorator chain.
func (e *Engine) node(family string) (Component, error) {
	body, err := e.registry.Component(family, "", e.conf)
	if err != nil {
		return nil, err
	}
	return e.registry.Wrap(
		treeNode{engine: e, family: family, body: body},
		decoratorConfigFor(e.conf, family),
	)
}
