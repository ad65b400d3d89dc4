package facet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubFamily(t *testing.T) {
	assert.Equal(t, "catalog/filter/categories", SubFamily("catalog/filter", "categories"))
}

func TestSubpartsOrder(t *testing.T) {
	conf := StaticConfig{"shop/subparts": []string{"b", "a", "c"}}
	assert.Equal(t, []string{"b", "a", "c"}, Subparts(conf, "shop"))
	assert.Nil(t, Subparts(conf, "other"))
}

func TestResolveSubpartsPerChildDecoration(t *testing.T) {
	h := NewTestHarness()
	h.Registry.MustRegister("p", "standard", StaticComponent("P:"))
	h.Registry.MustRegister("p/x", "standard", StaticComponent("x"))
	h.Registry.MustRegister("p/y", "standard", StaticComponent("y"))
	h.Registry.MustRegisterDecorator("log", tagDecorator("log"))
	h.Registry.MustRegisterDecorator("cache", tagDecorator("cache"))

	h.Config["p/subparts"] = []string{"x", "y"}
	h.Config["p/x/decorators/global"] = []string{"log"}
	h.Config["p/x/decorators/excludes"] = []string{"log"}
	h.Config["p/x/decorators/local"] = []string{"cache"}
	h.Config["p/y/decorators/global"] = []string{"log"}
	h.Config["p/y/decorators/excludes"] = []string{"log"}

	res, err := h.Render("p", nil)
	require.NoError(t, err)
	// x ends up wrapped only in cache, y in nothing.
	assert.Equal(t, Fragment("P:cache(x)y"), res.Fragment)
}

func TestResolveSubpartsEmptyConfig(t *testing.T) {
	h := NewTestHarness()
	h.Registry.MustRegister("solo", "standard", StaticComponent("alone"))

	res, err := h.Render("solo", nil)
	require.NoError(t, err)
	assert.Equal(t, Fragment("alone"), res.Fragment)
}

func TestResolveSubpartsUnknownChild(t *testing.T) {
	h := NewTestHarness()
	h.Registry.MustRegister("p", "standard", StaticComponent("P"))
	h.Config["p/subparts"] = []string{"ghost"}

	res, err := h.Render("p", nil)
	require.ErrorIs(t, err, ErrComponentNotFound)
	assert.Nil(t, res)
}
