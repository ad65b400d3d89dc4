package facet

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTempl(t *testing.T) {
	c := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>hello</p>")
		return err
	})

	frag, err := RenderTempl(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, Fragment("<p>hello</p>"), frag)
	assert.Equal(t, "<p>hello</p>", frag.String())
}

func TestRenderTemplError(t *testing.T) {
	c := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return fmt.Errorf("render failed")
	})

	_, err := RenderTempl(context.Background(), c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render failed")
}
