package facet

import "strconv"

// Typed configuration access. Configuration sources differ in how they
// surface values (YAML lists, env strings, flag slices), so each helper
// accepts the shapes the supported sources produce and falls back to the
// caller's default for anything else.

// ConfigString reads key from c, returning def when the key is unset or
// not a string.
func ConfigString(c Config, key, def string) string {
	raw, ok := c.Get(key)
	if !ok {
		return def
	}
	if s, ok := raw.(string); ok {
		return s
	}
	return def
}

// ConfigStrings reads a string list from c. []string and []any of
// strings round-trip as-is; a bare string becomes a one-element list so
// env overrides can set single-valued keys.
func ConfigStrings(c Config, key string, def []string) []string {
	raw, ok := c.Get(key)
	if !ok {
		return def
	}
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return def
			}
			out = append(out, s)
		}
		return out
	case string:
		if v == "" {
			return def
		}
		return []string{v}
	}
	return def
}

// ConfigInt reads an integer from c, accepting the numeric shapes YAML
// and env sources produce.
func ConfigInt(c Config, key string, def int) int {
	raw, ok := c.Get(key)
	if !ok {
		return def
	}
	switch v := raw.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// ConfigBool reads a boolean from c.
func ConfigBool(c Config, key string, def bool) bool {
	raw, ok := c.Get(key)
	if !ok {
		return def
	}
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
