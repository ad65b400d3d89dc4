package facet

import (
	"context"
	"time"
)

// LogDecorator returns the built-in "log" decorator. It emits one event
// per render with the component family, elapsed time, output size and
// outcome, on the view's logger so events inherit the pass ID.
//
// Register it under the name configuration refers to:
//
//	reg.MustRegisterDecorator("log", facet.LogDecorator())
func LogDecorator() Decorator {
	return func(next Component) Component {
		return ComponentFunc(func(ctx context.Context, v *View) (Fragment, error) {
			start := time.Now()
			frag, err := next.Render(ctx, v)
			evt := v.Logger().Debug()
			if err != nil {
				evt = v.Logger().Error().Err(err)
			}
			evt.Str("family", v.Family()).
				Dur("elapsed", time.Since(start)).
				Int("bytes", len(frag)).
				Msg("component rendered")
			return frag, err
		})
	}
}
