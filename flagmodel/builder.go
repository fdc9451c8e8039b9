package flagmodel

import (
	"github.com/teranos/confgen/errors"
)

// Entry is one raw key/value pair in file order.
type Entry struct {
	Key   string
	Value string
}

// Section is a named group of entries in file order.
type Section struct {
	Name    string
	Entries []Entry
}

// Builder assembles a Model from parsed sections.
type Builder struct {
	Resolver Resolver
}

// NewBuilder returns a Builder reading keys with the given syntax.
func NewBuilder(syntax KeySyntax) *Builder {
	return &Builder{Resolver: Resolver{Syntax: syntax}}
}

// Build resolves every entry, in order, into a Flag. Sections that repeat a
// name are merged into the first one. Any error aborts the whole build.
func (b *Builder) Build(sections []Section) (*Model, error) {
	m := &Model{byName: make(map[string][]Flag)}
	seen := make(map[string]map[string]struct{})

	for _, section := range sections {
		if !IsIdentifier(section.Name) {
			return nil, errors.Newk(errors.ErrInvalidIdentifier, "section %q is not a valid module name", section.Name)
		}
		if !m.HasModule(section.Name) {
			seen[section.Name] = make(map[string]struct{})
			m.modules = append(m.modules, section.Name)
			m.byName[section.Name] = nil
		}
		ids := seen[section.Name]

		for _, entry := range section.Entries {
			key, err := b.Resolver.Resolve(entry.Key)
			if err != nil {
				return nil, errors.Wrapf(err, "module %q", section.Name)
			}
			if _, dup := ids[key.Identifier]; dup {
				return nil, errors.Newk(errors.ErrDuplicateIdentifier,
					"module %q: %q is defined more than once", section.Name, key.Identifier)
			}
			ids[key.Identifier] = struct{}{}

			flag, err := newFlag(section.Name, key, entry.Value)
			if err != nil {
				return nil, errors.Wrapf(err, "module %q", section.Name)
			}
			m.flags = append(m.flags, flag)
			m.byName[section.Name] = append(m.byName[section.Name], flag)
		}
	}

	return m, nil
}

func newFlag(module string, key Key, value string) (Flag, error) {
	t := Resolve(value, key.Hint)
	literal, err := Literal(value, t)
	if err != nil {
		return Flag{}, errors.Wrapf(err, "key %q", key.Identifier)
	}
	return Flag{
		Module:     module,
		Identifier: key.Identifier,
		Literal:    literal,
		Type:       t,
	}, nil
}
