package fragcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyStability(t *testing.T) {
	a := Key("catalog/filter", map[string]string{"cat": "shoes", "page": "2"})
	b := Key("catalog/filter", map[string]string{"page": "2", "cat": "shoes"})

	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestKeyDiscriminates(t *testing.T) {
	base := Key("catalog/filter", map[string]string{"cat": "shoes"})

	assert.NotEqual(t, base, Key("catalog/filter", map[string]string{"cat": "boots"}))
	assert.NotEqual(t, base, Key("catalog/filter", nil))
	assert.NotEqual(t, base, Key("catalog/other", map[string]string{"cat": "shoes"}))
}
