// Package inisource reads INI configuration files into ordered sections.
package inisource

import (
	"os"

	"github.com/go-ini/ini"

	"github.com/teranos/confgen/errors"
	"github.com/teranos/confgen/flagmodel"
)

// loadOptions keep the file close to what was written: quotes stay so that
// a quoted string literal survives, '#' and ';' inside values are data, and
// a key repeated in one section is kept as shadows so it can be reported.
// Only '=' separates key and value, since "std::string name" is a valid key.
// A trailing backslash is data, not a line continuation.
var loadOptions = ini.LoadOptions{
	AllowShadows:            true,
	PreserveSurroundedQuote: true,
	IgnoreInlineComment:     true,
	IgnoreContinuation:      true,
	KeyValueDelimiters:      "=",
}

// Parse reads INI text. name is used in error messages only.
func Parse(name string, data []byte) ([]flagmodel.Section, error) {
	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", name)
	}

	var sections []flagmodel.Section
	for _, s := range f.Sections() {
		if s.Name() == ini.DefaultSection {
			if len(s.Keys()) > 0 {
				return nil, errors.WithHint(
					errors.Newk(errors.ErrMissingSection, "%s: key %q is not inside a section", name, s.Keys()[0].Name()),
					"put root-level options under a [root] section",
				)
			}
			continue
		}

		section := flagmodel.Section{Name: s.Name()}
		for _, key := range s.Keys() {
			if values := key.ValueWithShadows(); len(values) > 1 {
				return nil, errors.Newk(errors.ErrDuplicateIdentifier,
					"%s: module %q: key %q is defined more than once", name, s.Name(), key.Name())
			}
			section.Entries = append(section.Entries, flagmodel.Entry{
				Key:   key.Name(),
				Value: key.Value(),
			})
		}
		sections = append(sections, section)
	}

	return sections, nil
}

// Load reads and parses the INI file at path.
func Load(path string) ([]flagmodel.Section, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return Parse(path, data)
}
