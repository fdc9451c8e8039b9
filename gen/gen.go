// Package gen defines the contract between the flag model and the per-language
// renderers. Renderers are pure: every failure is reported by Check before
// Generate runs, and Generate is total.
package gen

import (
	"fmt"
	"strings"

	"github.com/teranos/confgen/errors"
	"github.com/teranos/confgen/flagmodel"
)

// Supported target languages.
const (
	LangCpp      = "cpp"
	LangGo       = "go"
	LangMarkdown = "markdown"
)

// AllLanguages lists every target in generation order.
var AllLanguages = []string{LangCpp, LangGo, LangMarkdown}

var languageAliases = map[string]string{
	"cpp":      LangCpp,
	"c++":      LangCpp,
	"go":       LangGo,
	"golang":   LangGo,
	"markdown": LangMarkdown,
	"md":       LangMarkdown,
}

// Artifact is one generated file.
type Artifact struct {
	// Path is slash-separated and relative to the output root.
	Path    string
	Content []byte
}

// Generator renders a model for one target language.
type Generator interface {
	// Language returns the canonical language name.
	Language() string
	// Check rejects models that would render into invalid source.
	Check(m *flagmodel.Model) error
	// Generate renders every artifact. It must not fail for a model Check accepted.
	Generate(m *flagmodel.Model) []Artifact
}

// Options are shared by every generator.
type Options struct {
	// Source is the input file name shown in the banner.
	Source string
	// License lines are emitted as comments above the banner.
	License []string
}

// CommentStyle describes how a target writes a one-line comment.
type CommentStyle struct {
	Prefix string
	Suffix string
}

var (
	SlashComment = CommentStyle{Prefix: "//"}
	HTMLComment  = CommentStyle{Prefix: "<!--", Suffix: "-->"}
)

// Line renders text as a comment.
func (c CommentStyle) Line(text string) string {
	if text == "" {
		return strings.TrimSpace(c.Prefix + " " + c.Suffix)
	}
	if c.Suffix == "" {
		return c.Prefix + " " + text
	}
	return c.Prefix + " " + text + " " + c.Suffix
}

// Banner returns the license block and the generated-code notice, each line
// terminated by a newline. It is deterministic.
func (o Options) Banner(style CommentStyle) string {
	var sb strings.Builder
	if len(o.License) > 0 {
		for _, line := range o.License {
			sb.WriteString(style.Line(strings.TrimRight(line, " \t")))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(style.Line(fmt.Sprintf("Code generated by confgen from %s. DO NOT EDIT.", o.source())))
	sb.WriteString("\n")
	return sb.String()
}

func (o Options) source() string {
	if o.Source == "" {
		return "config.ini"
	}
	return o.Source
}

// Languages normalizes language names and aliases, expanding "all" and
// dropping duplicates. The result keeps the order of first mention.
func Languages(names []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	add := func(lang string) {
		if !seen[lang] {
			seen[lang] = true
			out = append(out, lang)
		}
	}

	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if name == "all" {
			for _, lang := range AllLanguages {
				add(lang)
			}
			continue
		}
		lang, ok := languageAliases[name]
		if !ok {
			return nil, errors.WithHintf(
				errors.Newf("unsupported language: %s", name),
				"supported languages: %s, all", strings.Join(AllLanguages, ", "),
			)
		}
		add(lang)
	}

	if len(out) == 0 {
		return nil, errors.New("no target language selected")
	}
	return out, nil
}
