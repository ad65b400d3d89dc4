package facet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegister(t *testing.T) {
	tests := []struct {
		name    string
		family  string
		impl    string
		factory Factory
		wantErr error
	}{
		{"valid", "catalog/filter", "standard", StaticComponent("x"), nil},
		{"empty family", "", "standard", StaticComponent("x"), ErrInvalidRegistration},
		{"empty name", "catalog/filter", "", StaticComponent("x"), ErrInvalidRegistration},
		{"nil factory", "catalog/filter", "standard", nil, ErrInvalidRegistration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			err := reg.Register(tt.family, tt.impl, tt.factory)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRegistryRegisterDuplicate(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("nav", "standard", StaticComponent("a")))

	err := reg.Register("nav", "standard", StaticComponent("b"))
	require.ErrorIs(t, err, ErrAlreadyRegistered)

	// Same family under a different implementation name is fine.
	require.NoError(t, reg.Register("nav", "compact", StaticComponent("c")))
}

func TestRegistryComponentLookup(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister("nav", "standard", StaticComponent("std"))
	reg.MustRegister("nav", "wide", StaticComponent("wide"))

	tests := []struct {
		name    string
		family  string
		lookup  string
		conf    StaticConfig
		want    string
		wantErr error
	}{
		{"explicit name", "nav", "wide", StaticConfig{}, "wide", nil},
		{"empty name falls back to standard", "nav", "", StaticConfig{}, "std", nil},
		{"empty name resolves impl key", "nav", "", StaticConfig{"nav/impl": "wide"}, "wide", nil},
		{"unknown name", "nav", "missing", StaticConfig{}, "", ErrComponentNotFound},
		{"impl key names unknown component", "nav", "", StaticConfig{"nav/impl": "missing"}, "", ErrComponentNotFound},
		{"unknown family", "ghost", "standard", StaticConfig{}, "", ErrComponentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comp, err := reg.Component(tt.family, tt.lookup, tt.conf)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsNotFound(err))
				return
			}
			require.NoError(t, err)
			frag, err := comp.Render(context.Background(), nil)
			require.NoError(t, err)
			assert.Equal(t, Fragment(tt.want), frag)
		})
	}
}

func TestRegistryFactoryBuildsFreshInstances(t *testing.T) {
	built := 0
	reg := NewRegistry()
	reg.MustRegister("nav", "standard", func() Component {
		built++
		return StaticComponent("x")()
	})

	_, err := reg.Component("nav", "standard", StaticConfig{})
	require.NoError(t, err)
	_, err = reg.Component("nav", "standard", StaticConfig{})
	require.NoError(t, err)
	assert.Equal(t, 2, built)
}

func TestRegistryDecorator(t *testing.T) {
	reg := NewRegistry()
	noop := func(next Component) Component { return next }
	require.NoError(t, reg.RegisterDecorator("noop", noop))

	require.ErrorIs(t, reg.RegisterDecorator("noop", noop), ErrAlreadyRegistered)
	require.ErrorIs(t, reg.RegisterDecorator("", noop), ErrInvalidRegistration)
	require.ErrorIs(t, reg.RegisterDecorator("nil", nil), ErrInvalidRegistration)

	_, err := reg.Decorator("missing")
	require.ErrorIs(t, err, ErrDecoratorNotFound)
	assert.True(t, IsNotFound(err))

	d, err := reg.Decorator("noop")
	require.NoError(t, err)
	require.NotNil(t, d)
}

func TestRegistryListings(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister("b", "standard", StaticComponent(""))
	reg.MustRegister("a", "standard", StaticComponent(""))
	reg.MustRegister("a", "alt", StaticComponent(""))
	reg.MustRegisterDecorator("log", func(next Component) Component { return next })

	assert.Equal(t, []string{"a", "b"}, reg.Families())
	assert.Equal(t, []string{"alt", "standard"}, reg.Components("a"))
	assert.Equal(t, []string{"log"}, reg.Decorators())
	assert.Empty(t, reg.Components("missing"))
}
