// Package cpp renders a flag model as C++ sources built on
// boost::program_options: a flat option parser (config.h, config.cpp) and one
// config_t value struct per module (<module>/config.h).
package cpp

import (
	"fmt"
	"strings"

	"github.com/teranos/confgen/errors"
	"github.com/teranos/confgen/flagmodel"
	"github.com/teranos/confgen/gen"
)

// Output file names.
const (
	GlobalSource = "config.cpp"
	GlobalHeader = "config.h"
	ModuleHeader = "config.h"
)

// storeName is the process-wide store used in global-store mode.
const storeName = "FLAG_STORE"

// Options configures the C++ output.
type Options struct {
	gen.Options

	// Namespace wraps all generated code, e.g. "app" or "app::config".
	Namespace string
	// GlobalStore emits an extern FLAG_STORE and zero-argument module
	// constructors instead of passing the store explicitly.
	GlobalStore bool
	// ConfigFile is the file the generated loader reads at runtime.
	ConfigFile string
}

// Generator implements gen.Generator for C++
type Generator struct {
	opts Options
}

// NewGenerator creates a new C++ generator
func NewGenerator(opts Options) *Generator {
	if opts.ConfigFile == "" {
		opts.ConfigFile = "config.ini"
	}
	return &Generator{opts: opts}
}

// Language returns "cpp"
func (g *Generator) Language() string {
	return gen.LangCpp
}

// TypeMapping maps flag types to C++ types
var TypeMapping = map[flagmodel.Type]string{
	flagmodel.TypeBool:   "bool",
	flagmodel.TypeInt32:  "int32_t",
	flagmodel.TypeInt64:  "int64_t",
	flagmodel.TypeUint32: "uint32_t",
	flagmodel.TypeUint64: "uint64_t",
	flagmodel.TypeFloat:  "float",
	flagmodel.TypeDouble: "double",
	flagmodel.TypeString: "std::string",
}

// Check rejects module names and field identifiers the C++ output cannot
// declare.
func (g *Generator) Check(m *flagmodel.Model) error {
	if err := ValidateNamespace(g.opts.Namespace); err != nil {
		return err
	}
	for _, module := range m.NonRootModules() {
		if isReserved(module) || moduleReserved[module] {
			return errors.Newk(errors.ErrInvalidIdentifier,
				"module %q cannot be used as a C++ namespace", module)
		}
		for _, flag := range m.ModuleFlags(module) {
			if isReserved(flag.Identifier) {
				return errors.Newk(errors.ErrInvalidIdentifier,
					"module %q: %q cannot be used as a C++ member name", module, flag.Identifier)
			}
		}
	}
	return nil
}

// Generate renders config.h, config.cpp and one header per non-root module.
func (g *Generator) Generate(m *flagmodel.Model) []gen.Artifact {
	artifacts := []gen.Artifact{
		{Path: GlobalHeader, Content: []byte(g.GenerateHeader())},
		{Path: GlobalSource, Content: []byte(g.GenerateGlobal(m.Flags()))},
	}
	for _, module := range m.NonRootModules() {
		artifacts = append(artifacts, gen.Artifact{
			Path:    module + "/" + ModuleHeader,
			Content: []byte(g.GenerateModule(module, m.ModuleFlags(module))),
		})
	}
	return artifacts
}

// GenerateHeader renders the declarations of the flat option parser.
func (g *Generator) GenerateHeader() string {
	var sb strings.Builder

	sb.WriteString(g.opts.Banner(gen.SlashComment))
	sb.WriteString("#pragma once\n\n")
	sb.WriteString("#include <boost/program_options/options_description.hpp>\n")
	sb.WriteString("#include <boost/program_options/variables_map.hpp>\n\n")
	sb.WriteString("namespace po = boost::program_options;\n\n")
	g.openNamespace(&sb)

	sb.WriteString("// options describes every flag with its default value.\n")
	sb.WriteString("po::options_description options();\n\n")
	if g.opts.GlobalStore {
		sb.WriteString(fmt.Sprintf("extern po::variables_map %s;\n\n", storeName))
		sb.WriteString(fmt.Sprintf("// parse_args fills %s from the command line, then from %s.\n", storeName, g.opts.ConfigFile))
		sb.WriteString("void parse_args(int argc, char** argv);\n")
	} else {
		sb.WriteString(fmt.Sprintf("// parse_args reads the command line, then %s, into one store.\n", g.opts.ConfigFile))
		sb.WriteString("po::variables_map parse_args(int argc, char** argv);\n")
	}

	g.closeNamespace(&sb)
	return sb.String()
}

// GenerateGlobal renders one option declaration per flag, in order, and the
// two-stage loader.
func (g *Generator) GenerateGlobal(flags []flagmodel.Flag) string {
	var sb strings.Builder

	sb.WriteString(g.opts.Banner(gen.SlashComment))
	sb.WriteString(fmt.Sprintf("#include \"%s\"\n\n", GlobalHeader))
	sb.WriteString("#include <cstdint>\n")
	sb.WriteString("#include <string>\n\n")
	sb.WriteString("#include <boost/program_options/parsers.hpp>\n\n")
	g.openNamespace(&sb)

	sb.WriteString("po::options_description options() {\n")
	sb.WriteString("    po::options_description desc(\"Configuration\");\n")
	sb.WriteString("    desc.add_options()\n")
	for _, flag := range flags {
		sb.WriteString(fmt.Sprintf("        (\"%s\", po::value<%s>()->default_value(%s))\n",
			flag.Name(), TypeMapping[flag.Type], literal(flag)))
	}
	sb.WriteString("        ;\n")
	sb.WriteString("    return desc;\n")
	sb.WriteString("}\n\n")

	configFile := flagmodel.QuoteString(g.opts.ConfigFile)
	sb.WriteString("// The command line is stored first. po::store keeps values that are already\n")
	sb.WriteString(fmt.Sprintf("// set, so command-line arguments take precedence over %s.\n", g.opts.ConfigFile))
	if g.opts.GlobalStore {
		sb.WriteString(fmt.Sprintf("po::variables_map %s;\n\n", storeName))
		sb.WriteString("void parse_args(int argc, char** argv) {\n")
		sb.WriteString("    const po::options_description desc = options();\n")
		sb.WriteString(fmt.Sprintf("    po::store(po::parse_command_line(argc, argv, desc), %s);\n", storeName))
		sb.WriteString(fmt.Sprintf("    po::store(po::parse_config_file<char>(%s, desc, true), %s);\n", configFile, storeName))
		sb.WriteString(fmt.Sprintf("    po::notify(%s);\n", storeName))
		sb.WriteString("}\n")
	} else {
		sb.WriteString("po::variables_map parse_args(int argc, char** argv) {\n")
		sb.WriteString("    const po::options_description desc = options();\n")
		sb.WriteString("    po::variables_map store;\n")
		sb.WriteString("    po::store(po::parse_command_line(argc, argv, desc), store);\n")
		sb.WriteString(fmt.Sprintf("    po::store(po::parse_config_file<char>(%s, desc, true), store);\n", configFile))
		sb.WriteString("    po::notify(store);\n")
		sb.WriteString("    return store;\n")
		sb.WriteString("}\n")
	}

	g.closeNamespace(&sb)
	return sb.String()
}

// GenerateModule renders the config_t value struct of one module.
func (g *Generator) GenerateModule(module string, flags []flagmodel.Flag) string {
	var sb strings.Builder

	sb.WriteString(g.opts.Banner(gen.SlashComment))
	sb.WriteString("#pragma once\n\n")
	sb.WriteString("#include <cstdint>\n")
	sb.WriteString("#include <string>\n")
	sb.WriteString("#include <utility>\n\n")
	sb.WriteString("#include <boost/program_options/variables_map.hpp>\n\n")
	sb.WriteString("namespace po = boost::program_options;\n\n")
	g.openNamespace(&sb)
	if g.opts.GlobalStore {
		sb.WriteString(fmt.Sprintf("extern po::variables_map %s;\n\n", storeName))
	}

	sb.WriteString(fmt.Sprintf("namespace %s {\n\n", module))
	sb.WriteString("struct config_t {\n")
	for _, flag := range flags {
		sb.WriteString(fmt.Sprintf("    const %s %s;\n", TypeMapping[flag.Type], flag.Identifier))
	}
	if len(flags) > 0 {
		sb.WriteString("\n")
	}

	g.writeStoreConstructor(&sb, flags)

	// An empty module would get a second zero-argument constructor.
	if len(flags) > 0 {
		sb.WriteString("\n")
		writeFieldConstructor(&sb, flags)
	}

	sb.WriteString("};\n\n")
	sb.WriteString(fmt.Sprintf("}  // namespace %s\n", module))
	g.closeNamespace(&sb)
	return sb.String()
}

func (g *Generator) writeStoreConstructor(sb *strings.Builder, flags []flagmodel.Flag) {
	store := "store"
	switch {
	case g.opts.GlobalStore:
		store = storeName
		sb.WriteString("    config_t()")
	case len(flags) == 0:
		sb.WriteString("    explicit config_t(const po::variables_map& /*store*/)")
	default:
		sb.WriteString("    explicit config_t(const po::variables_map& store)")
	}

	for i, flag := range flags {
		sep := ","
		if i == 0 {
			sep = ":"
		}
		sb.WriteString(fmt.Sprintf("\n        %s %s(%s[\"%s\"].as<%s>())",
			sep, flag.Identifier, store, flag.Path(), TypeMapping[flag.Type]))
	}
	if len(flags) > 0 {
		sb.WriteString("\n    {}\n")
	} else {
		sb.WriteString(" {}\n")
	}
}

func writeFieldConstructor(sb *strings.Builder, flags []flagmodel.Flag) {
	params := make([]string, len(flags))
	for i, flag := range flags {
		params[i] = TypeMapping[flag.Type] + " " + flag.Identifier
	}
	sb.WriteString(fmt.Sprintf("    config_t(%s)", strings.Join(params, ", ")))

	for i, flag := range flags {
		sep := ","
		if i == 0 {
			sep = ":"
		}
		value := flag.Identifier
		if flag.Type == flagmodel.TypeString {
			value = "std::move(" + flag.Identifier + ")"
		}
		sb.WriteString(fmt.Sprintf("\n        %s %s(%s)", sep, flag.Identifier, value))
	}
	sb.WriteString("\n    {}\n")
}

func (g *Generator) openNamespace(sb *strings.Builder) {
	if g.opts.Namespace != "" {
		sb.WriteString(fmt.Sprintf("namespace %s {\n\n", g.opts.Namespace))
	}
}

func (g *Generator) closeNamespace(sb *strings.Builder) {
	if g.opts.Namespace != "" {
		sb.WriteString(fmt.Sprintf("\n}  // namespace %s\n", g.opts.Namespace))
	}
}
