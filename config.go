package facet

// Config provides read-only configuration for render passes.
//
// Keys are flat strings with "/" separators, scoped by component family:
// "catalog/filter/subparts", "catalog/filter/decorators/global", and so
// on. Get reports whether the key was set at all; defaults live with the
// callers, in the ConfigString/ConfigStrings/ConfigInt/ConfigBool helpers
// and their View counterparts.
//
// A Config must not change during a render pass. lib/viperconf adapts a
// viper instance; StaticConfig in this package is the map-backed version
// for tests and embedders.
type Config interface {
	Get(key string) (any, bool)
}

// Family-scoped key suffixes the engine understands.
const (
	keyImpl     = "impl"
	keySubparts = "subparts"
	keyGlobal   = "decorators/global"
	keyExcludes = "decorators/excludes"
	keyLocal    = "decorators/local"
)

// DefaultImplName is the implementation name a lookup with an empty name
// falls back to when the family's "impl" key is not configured.
const DefaultImplName = "standard"

// familyKey joins a component family and a key suffix.
func familyKey(family, key string) string {
	return family + "/" + key
}
