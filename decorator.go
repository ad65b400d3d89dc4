package facet

// Decorator wraps a component with one layer of behavior: logging,
// caching, instrumentation. Decorators are plain functions over the
// Component interface; the chain is an ordered fold, not a type
// hierarchy.
//
// A decorator's Render must delegate to the wrapped component exactly
// once per call. The one sanctioned exception is a caching decorator
// serving a stored fragment: it merges the stored cache metadata into
// the pass and skips delegation entirely.
type Decorator func(Component) Component

// DecoratorConfig selects the decorators for one component family.
// Global lists the site-wide defaults, Excludes removes identifiers from
// the whole chain, Local appends family-specific ones.
type DecoratorConfig struct {
	Global   []string
	Excludes []string
	Local    []string
}

// decoratorConfigFor reads the three decorator lists for family.
func decoratorConfigFor(conf Config, family string) DecoratorConfig {
	return DecoratorConfig{
		Global:   ConfigStrings(conf, familyKey(family, keyGlobal), nil),
		Excludes: ConfigStrings(conf, familyKey(family, keyExcludes), nil),
		Local:    ConfigStrings(conf, familyKey(family, keyLocal), nil),
	}
}

// Names resolves the final ordered decorator list: globals minus
// excludes, then locals minus excludes. Order is preserved and
// duplicates are kept, so a name configured twice wraps twice. An
// excluded identifier never survives, and excluding a name that was
// never listed is a no-op.
func (c DecoratorConfig) Names() []string {
	excluded := make(map[string]struct{}, len(c.Excludes))
	for _, name := range c.Excludes {
		excluded[name] = struct{}{}
	}
	names := make([]string, 0, len(c.Global)+len(c.Local))
	for _, name := range c.Global {
		if _, skip := excluded[name]; !skip {
			names = append(names, name)
		}
	}
	for _, name := range c.Local {
		if _, skip := excluded[name]; !skip {
			names = append(names, name)
		}
	}
	return names
}

// Wrap applies the decorators selected by cfg to c. The fold runs in
// list order, so the first name becomes the innermost layer and the last
// name ends up outermost. An empty selection returns c untouched.
func (reg *Registry) Wrap(c Component, cfg DecoratorConfig) (Component, error) {
	for _, name := range cfg.Names() {
		d, err := reg.Decorator(name)
		if err != nil {
			return nil, err
		}
		c = d(c)
	}
	return c, nil
}
