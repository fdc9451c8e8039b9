// Package markdown renders a flag model as a reference document listing
// every option, its type and its default.
package markdown

import (
	"fmt"
	"strings"

	"github.com/teranos/confgen/flagmodel"
	"github.com/teranos/confgen/gen"
	"github.com/teranos/confgen/gen/util"
)

// FileName is the generated document.
const FileName = "CONFIG.md"

// Generator implements gen.Generator for markdown
type Generator struct {
	opts gen.Options
}

// NewGenerator creates a new markdown generator
func NewGenerator(opts gen.Options) *Generator {
	return &Generator{opts: opts}
}

// Language returns "markdown"
func (g *Generator) Language() string {
	return gen.LangMarkdown
}

// Check accepts every model.
func (g *Generator) Check(*flagmodel.Model) error {
	return nil
}

// Generate renders a single document.
func (g *Generator) Generate(m *flagmodel.Model) []gen.Artifact {
	return []gen.Artifact{{Path: FileName, Content: []byte(g.GenerateDocument(m))}}
}

// GenerateDocument renders one table per module, in module order.
func (g *Generator) GenerateDocument(m *flagmodel.Model) string {
	var sb strings.Builder

	sb.WriteString(g.opts.Banner(gen.HTMLComment))
	sb.WriteString("\n# Configuration\n")

	for _, module := range m.Modules() {
		flags := m.ModuleFlags(module)

		sb.WriteString(fmt.Sprintf("\n## %s\n\n", module))
		if len(flags) == 0 {
			sb.WriteString("_No options._\n")
			continue
		}

		sb.WriteString("| Option | Type | Default |\n")
		sb.WriteString("|--------|------|---------|\n")
		for _, flag := range flags {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n",
				util.CodeSpan(flag.Name()), util.CodeSpan(flag.Type.String()), util.CodeSpan(flag.Literal)))
		}
	}

	return sb.String()
}
