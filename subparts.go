package facet

// Subparts returns the configured subcomponent names for family, in
// configuration order. No configuration means no subparts.
func Subparts(conf Config, family string) []string {
	return ConfigStrings(conf, familyKey(family, keySubparts), nil)
}

// SubFamily returns the component family of a parent's subpart: the
// parent family extended with the subpart name. Every subpart family has
// its own impl, subparts and decorator configuration, so nesting is
// uniform all the way down.
func SubFamily(parent, name string) string {
	return parent + "/" + name
}

// childRef pairs a resolved child component with its family.
type childRef struct {
	family string
	comp   Component
}

// resolveSubparts expands family's configured subpart names into fully
// decorated child nodes, in configuration order. A name that resolves to
// no registered component, or a decorator chain naming an unknown
// decorator, fails the whole resolution.
func (e *Engine) resolveSubparts(family string) ([]childRef, error) {
	names := Subparts(e.conf, family)
	if len(names) == 0 {
		return nil, nil
	}
	children := make([]childRef, 0, len(names))
	for _, name := range names {
		sub := SubFamily(family, name)
		comp, err := e.node(sub)
		if err != nil {
			return nil, err
		}
		children = append(children, childRef{family: sub, comp: comp})
	}
	return children, nil
}
