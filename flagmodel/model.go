package flagmodel

// RootModule holds flags that are declared without a module prefix.
const RootModule = "root"

// Flag is one typed configuration entry.
type Flag struct {
	Module     string
	Identifier string
	// Literal is the default value as source text, quoted for strings.
	Literal string
	Type    Type
}

// Name is the option name on the command line: the bare identifier for root
// flags, "module.identifier" otherwise.
func (f Flag) Name() string {
	if f.IsRoot() {
		return f.Identifier
	}
	return f.Path()
}

// Path is "module.identifier" for every flag, root included.
func (f Flag) Path() string {
	return f.Module + "." + f.Identifier
}

// IsRoot reports whether the flag belongs to the root module.
func (f Flag) IsRoot() bool {
	return f.Module == RootModule
}

// Model is the ordered result of building a configuration. It is not
// modified after Build returns.
type Model struct {
	modules []string
	flags   []Flag
	byName  map[string][]Flag
}

// Modules returns module names in the order their sections first appeared.
func (m *Model) Modules() []string {
	return append([]string(nil), m.modules...)
}

// Flags returns every flag in declaration order.
func (m *Model) Flags() []Flag {
	return append([]Flag(nil), m.flags...)
}

// ModuleFlags returns the flags of one module in declaration order.
func (m *Model) ModuleFlags(module string) []Flag {
	return append([]Flag(nil), m.byName[module]...)
}

// HasModule reports whether a section of that name was declared.
func (m *Model) HasModule(module string) bool {
	_, ok := m.byName[module]
	return ok
}

// NonRootModules returns every module except root, in order.
func (m *Model) NonRootModules() []string {
	var out []string
	for _, name := range m.modules {
		if name != RootModule {
			out = append(out, name)
		}
	}
	return out
}
