package facet

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogDecorator(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	h := NewTestHarness(WithLogger(logger))
	h.Registry.MustRegister("nav", "standard", StaticComponent("nav"))
	h.Registry.MustRegisterDecorator("log", LogDecorator())
	h.Config["nav/decorators/global"] = []string{"log"}

	res, err := h.Render("nav", nil)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "component rendered")
	assert.Contains(t, out, `"family":"nav"`)
	assert.Contains(t, out, res.PassID)
}
