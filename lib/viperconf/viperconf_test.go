package viperconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `catalog:
  filter:
    title: Filter
    subparts:
      - breadcrumb
      - categories
    categories:
      startid: root
      domains:
        - count
    decorators:
      global:
        - log
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "facet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTranslatesKeys(t *testing.T) {
	store, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	v, ok := store.Get("catalog/filter/title")
	require.True(t, ok)
	assert.Equal(t, "Filter", v)

	v, ok = store.Get("catalog/filter/subparts")
	require.True(t, ok)
	assert.Equal(t, []any{"breadcrumb", "categories"}, v)

	v, ok = store.Get("catalog/filter/decorators/global")
	require.True(t, ok)
	assert.Equal(t, []any{"log"}, v)

	_, ok = store.Get("catalog/filter/nope")
	assert.False(t, ok)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "viperconf")
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("FACET_CATALOG_FILTER_CATEGORIES_STARTID", "shoes")

	store, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	v, ok := store.Get("catalog/filter/categories/startid")
	require.True(t, ok)
	assert.Equal(t, "shoes", v)
}

func TestNewWrapsExistingViper(t *testing.T) {
	v := viper.New()
	v.Set("nav.impl", "wide")

	store := New(v)
	got, ok := store.Get("nav/impl")
	require.True(t, ok)
	assert.Equal(t, "wide", got)
}
