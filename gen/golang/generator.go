// Package golang renders a flag model as Go sources: a root package that
// declares every option on a pflag.FlagSet and loads them into a viper store,
// and one package per module with an immutable Config value.
package golang

import (
	"fmt"
	"go/token"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/teranos/confgen/errors"
	"github.com/teranos/confgen/flagmodel"
	"github.com/teranos/confgen/gen"
	"github.com/teranos/confgen/gen/util"
)

// FileName is the name of every generated Go file.
const FileName = "config.go"

// DefaultPackage is the package name of the root file.
const DefaultPackage = "config"

// Options configures the Go output.
type Options struct {
	gen.Options

	// Package names the root package.
	Package string
}

// Generator implements gen.Generator for Go
type Generator struct {
	opts Options
}

// NewGenerator creates a new Go generator
func NewGenerator(opts Options) *Generator {
	if opts.Package == "" {
		opts.Package = DefaultPackage
	}
	return &Generator{opts: opts}
}

// Language returns "go"
func (g *Generator) Language() string {
	return gen.LangGo
}

// typeInfo describes how one flag type is declared, read and stored.
type typeInfo struct {
	goType string
	// flagFunc is the pflag.FlagSet method declaring the option.
	flagFunc string
	// getter reads the value back from a viper store.
	getter string
}

// TypeMapping maps flag types to their Go representation
var TypeMapping = map[flagmodel.Type]typeInfo{
	flagmodel.TypeBool:   {goType: "bool", flagFunc: "Bool", getter: "GetBool"},
	flagmodel.TypeInt32:  {goType: "int32", flagFunc: "Int32", getter: "GetInt32"},
	flagmodel.TypeInt64:  {goType: "int64", flagFunc: "Int64", getter: "GetInt64"},
	flagmodel.TypeUint32: {goType: "uint32", flagFunc: "Uint32", getter: "GetUint32"},
	flagmodel.TypeUint64: {goType: "uint64", flagFunc: "Uint64", getter: "GetUint64"},
	flagmodel.TypeFloat:  {goType: "float32", flagFunc: "Float32", getter: "GetFloat64"},
	flagmodel.TypeDouble: {goType: "float64", flagFunc: "Float64", getter: "GetFloat64"},
	flagmodel.TypeString: {goType: "string", flagFunc: "String", getter: "GetString"},
}

// ValidatePackage accepts names usable in a package clause.
func ValidatePackage(name string) error {
	if !token.IsIdentifier(name) || name == "_" || name == "main" {
		return errors.Newf("%q is not a valid Go package name", name)
	}
	return nil
}

// Check rejects models whose names cannot be declared in Go, or that collide
// once cased for Go or lowercased by viper.
func (g *Generator) Check(m *flagmodel.Model) error {
	if err := ValidatePackage(g.opts.Package); err != nil {
		return err
	}

	modules := make(map[string]string)
	for _, module := range m.NonRootModules() {
		if err := ValidatePackage(module); err != nil {
			return errors.Mark(errors.Wrapf(err, "module %q", module), errors.ErrInvalidIdentifier)
		}
		lower := strings.ToLower(module)
		if other, ok := modules[lower]; ok {
			return errors.Newk(errors.ErrNameCollision,
				"modules %q and %q differ only in case", other, module)
		}
		modules[lower] = module

		fields := make(map[string]string)
		for _, flag := range m.ModuleFlags(module) {
			name := fieldName(flag.Identifier)
			if other, ok := fields[name]; ok {
				return errors.Newk(errors.ErrNameCollision,
					"module %q: %q and %q are both %s in Go", module, other, flag.Identifier, name)
			}
			fields[name] = flag.Identifier
		}
	}

	keys := make(map[string]string)
	for _, flag := range m.Flags() {
		key := strings.ToLower(flag.Path())
		if other, ok := keys[key]; ok {
			return errors.Newk(errors.ErrNameCollision,
				"%q and %q differ only in case", other, flag.Path())
		}
		keys[key] = flag.Path()
	}
	return nil
}

// Generate renders the root file and one file per non-root module.
func (g *Generator) Generate(m *flagmodel.Model) []gen.Artifact {
	artifacts := []gen.Artifact{
		{Path: FileName, Content: format(FileName, g.GenerateGlobal(m.Flags()))},
	}
	for _, module := range m.NonRootModules() {
		path := module + "/" + FileName
		artifacts = append(artifacts, gen.Artifact{
			Path:    path,
			Content: format(path, g.GenerateModule(module, m.ModuleFlags(module))),
		})
	}
	return artifacts
}

// GenerateGlobal renders the option set and the loader.
func (g *Generator) GenerateGlobal(flags []flagmodel.Flag) string {
	var sb strings.Builder

	sb.WriteString(g.opts.Banner(gen.SlashComment))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("package %s\n\n", g.opts.Package))
	sb.WriteString("import (\n")
	sb.WriteString("\t\"github.com/go-ini/ini\"\n")
	sb.WriteString("\t\"github.com/spf13/pflag\"\n")
	sb.WriteString("\t\"github.com/spf13/viper\"\n")
	sb.WriteString(")\n\n")

	sb.WriteString("// Options declares every option with its default value.\n")
	sb.WriteString("func Options() *pflag.FlagSet {\n")
	sb.WriteString(fmt.Sprintf("\tfs := pflag.NewFlagSet(%q, pflag.ContinueOnError)\n", g.opts.Package))
	for _, flag := range flags {
		sb.WriteString(fmt.Sprintf("\tfs.%s(%q, %s, %q)\n",
			TypeMapping[flag.Type].flagFunc, flag.Name(), literal(flag), flag.Path()))
	}
	sb.WriteString("\treturn fs\n")
	sb.WriteString("}\n\n")

	sb.WriteString("// bindings maps each command-line flag to its store key.\n")
	sb.WriteString("var bindings = []struct{ flag, key string }{\n")
	for _, flag := range flags {
		sb.WriteString(fmt.Sprintf("\t{%q, %q},\n", flag.Name(), flag.Path()))
	}
	sb.WriteString("}\n\n")

	sb.WriteString("// Load parses args, then reads the INI file, into one store. Precedence is\n")
	sb.WriteString("// viper's: a flag set on the command line wins over the file, and the file\n")
	sb.WriteString("// wins over flag defaults.\n")
	sb.WriteString("func Load(args []string, file string) (*viper.Viper, error) {\n")
	sb.WriteString("\tfs := Options()\n")
	sb.WriteString("\tif err := fs.Parse(args); err != nil {\n")
	sb.WriteString("\t\treturn nil, err\n")
	sb.WriteString("\t}\n\n")
	sb.WriteString("\tcfg, err := ini.Load(file)\n")
	sb.WriteString("\tif err != nil {\n")
	sb.WriteString("\t\treturn nil, err\n")
	sb.WriteString("\t}\n")
	sb.WriteString("\tvalues := make(map[string]any)\n")
	sb.WriteString("\tfor _, section := range cfg.Sections() {\n")
	sb.WriteString("\t\tkeys := make(map[string]any)\n")
	sb.WriteString("\t\tfor _, key := range section.Keys() {\n")
	sb.WriteString("\t\t\tkeys[key.Name()] = key.Value()\n")
	sb.WriteString("\t\t}\n")
	sb.WriteString("\t\tif len(keys) > 0 {\n")
	sb.WriteString("\t\t\tvalues[section.Name()] = keys\n")
	sb.WriteString("\t\t}\n")
	sb.WriteString("\t}\n\n")
	sb.WriteString("\tstore := viper.New()\n")
	sb.WriteString("\tif err := store.MergeConfigMap(values); err != nil {\n")
	sb.WriteString("\t\treturn nil, err\n")
	sb.WriteString("\t}\n")
	sb.WriteString("\tfor _, b := range bindings {\n")
	sb.WriteString("\t\tif err := store.BindPFlag(b.key, fs.Lookup(b.flag)); err != nil {\n")
	sb.WriteString("\t\t\treturn nil, err\n")
	sb.WriteString("\t\t}\n")
	sb.WriteString("\t}\n")
	sb.WriteString("\treturn store, nil\n")
	sb.WriteString("}\n")

	return sb.String()
}

// GenerateModule renders the Config value of one module.
func (g *Generator) GenerateModule(module string, flags []flagmodel.Flag) string {
	var sb strings.Builder

	sb.WriteString(g.opts.Banner(gen.SlashComment))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("package %s\n\n", module))
	sb.WriteString("import \"github.com/spf13/viper\"\n\n")

	sb.WriteString(fmt.Sprintf("// Config holds the %s options. It is immutable.\n", module))
	sb.WriteString("type Config struct {\n")
	for _, flag := range flags {
		sb.WriteString(fmt.Sprintf("\t%s %s\n", paramName(flag.Identifier), TypeMapping[flag.Type].goType))
	}
	sb.WriteString("}\n\n")

	sb.WriteString(fmt.Sprintf("// FromStore reads every %s option from a store filled by Load.\n", module))
	sb.WriteString("func FromStore(store *viper.Viper) Config {\n")
	sb.WriteString("\treturn Config{\n")
	for _, flag := range flags {
		sb.WriteString(fmt.Sprintf("\t\t%s: %s,\n", paramName(flag.Identifier), storeRead(flag)))
	}
	sb.WriteString("\t}\n")
	sb.WriteString("}\n\n")

	params := make([]string, len(flags))
	for i, flag := range flags {
		params[i] = paramName(flag.Identifier) + " " + TypeMapping[flag.Type].goType
	}
	sb.WriteString("// New builds a Config from explicit values.\n")
	sb.WriteString(fmt.Sprintf("func New(%s) Config {\n", strings.Join(params, ", ")))
	sb.WriteString("\treturn Config{\n")
	for _, flag := range flags {
		name := paramName(flag.Identifier)
		sb.WriteString(fmt.Sprintf("\t\t%s: %s,\n", name, name))
	}
	sb.WriteString("\t}\n")
	sb.WriteString("}\n")

	for _, flag := range flags {
		info := TypeMapping[flag.Type]
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("// %s returns %s.\n", fieldName(flag.Identifier), flag.Path()))
		sb.WriteString(fmt.Sprintf("func (c Config) %s() %s {\n", fieldName(flag.Identifier), info.goType))
		sb.WriteString(fmt.Sprintf("\treturn c.%s\n", paramName(flag.Identifier)))
		sb.WriteString("}\n")
	}

	return sb.String()
}

// fieldName is the exported getter name of an identifier.
func fieldName(identifier string) string {
	name := util.ToPascalCase(identifier)
	if name == "" || !token.IsIdentifier(name) || !isLetter(name[0]) {
		name = "X" + name
	}
	return name
}

// paramName is the unexported field and parameter name of an identifier.
func paramName(identifier string) string {
	name := util.ToCamelCase(fieldName(identifier))
	if token.IsKeyword(name) {
		name += "_"
	}
	return name
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func storeRead(flag flagmodel.Flag) string {
	read := fmt.Sprintf("store.%s(%q)", TypeMapping[flag.Type].getter, flag.Path())
	if flag.Type == flagmodel.TypeFloat {
		return "float32(" + read + ")"
	}
	return read
}

// literal renders a flag default as a Go expression.
func literal(flag flagmodel.Flag) string {
	if flag.Type == flagmodel.TypeString {
		return fmt.Sprintf("%q", flagmodel.Unquote(flag.Literal))
	}
	return flag.Literal
}

// format runs goimports over generated source. The unformatted text is kept
// if formatting fails so that Generate stays total.
func format(filename, src string) []byte {
	out, err := imports.Process(filename, []byte(src), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return []byte(src)
	}
	return out
}
