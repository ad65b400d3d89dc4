package facet

import "errors"

// Sentinel errors for render-pass failures. Every failure aborts the
// whole pass; the engine never returns a partial fragment.
var (
	ErrComponentNotFound   = errors.New("facet: component not found")
	ErrDecoratorNotFound   = errors.New("facet: decorator not found")
	ErrContentFetch        = errors.New("facet: content fetch failed")
	ErrDepthExceeded       = errors.New("facet: tree depth exceeded")
	ErrAlreadyRegistered   = errors.New("facet: already registered")
	ErrInvalidRegistration = errors.New("facet: invalid registration")
)

// IsNotFound checks if err is a component or decorator lookup failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrComponentNotFound) || errors.Is(err, ErrDecoratorNotFound)
}

// IsContentFetch checks if err originated in the content service.
func IsContentFetch(err error) bool {
	return errors.Is(err, ErrContentFetch)
}

// IsDepthExceeded checks if err is the recursion ceiling failure.
func IsDepthExceeded(err error) bool {
	return errors.Is(err, ErrDepthExceeded)
}
