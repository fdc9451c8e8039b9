// Package pipeline runs generation end to end: it reads the INI input, builds
// the model, renders every target and writes the artifacts all at once. It
// also owns the staleness check, check mode and watch mode.
package pipeline

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/teranos/confgen/errors"
	"github.com/teranos/confgen/flagmodel"
	"github.com/teranos/confgen/gen"
	"github.com/teranos/confgen/gen/cpp"
	"github.com/teranos/confgen/gen/golang"
	"github.com/teranos/confgen/gen/markdown"
	"github.com/teranos/confgen/inisource"
	"github.com/teranos/confgen/settings"
)

// Generators builds one generator per configured language, in order.
func Generators(s *settings.Settings, license []string) ([]gen.Generator, error) {
	langs, err := gen.Languages(s.Languages)
	if err != nil {
		return nil, err
	}

	common := gen.Options{
		Source:  filepath.ToSlash(s.Input),
		License: license,
	}

	generators := make([]gen.Generator, 0, len(langs))
	for _, lang := range langs {
		switch lang {
		case gen.LangCpp:
			generators = append(generators, cpp.NewGenerator(cpp.Options{
				Options:     common,
				Namespace:   s.Cpp.Namespace,
				GlobalStore: s.Cpp.GlobalStore,
				ConfigFile:  s.Cpp.ConfigFile,
			}))
		case gen.LangGo:
			generators = append(generators, golang.NewGenerator(golang.Options{
				Options: common,
				Package: s.Go.Package,
			}))
		case gen.LangMarkdown:
			generators = append(generators, markdown.NewGenerator(common))
		}
	}
	return generators, nil
}

// Render loads the input below root and renders every configured target in
// memory. Nothing is written; any error means no artifact is produced.
func Render(root string, s *settings.Settings) (*flagmodel.Model, []gen.Artifact, error) {
	sections, err := inisource.Load(InputPath(root, s))
	if err != nil {
		return nil, nil, err
	}

	model, err := flagmodel.NewBuilder(s.KeySyntax).Build(sections)
	if err != nil {
		return nil, nil, err
	}

	license, err := LicenseLines(root, s.LicenseHeader)
	if err != nil {
		return nil, nil, err
	}

	generators, err := Generators(s, license)
	if err != nil {
		return nil, nil, err
	}

	for _, g := range generators {
		if err := g.Check(model); err != nil {
			return nil, nil, errors.Wrapf(err, "%s target", g.Language())
		}
	}

	var artifacts []gen.Artifact
	for _, g := range generators {
		artifacts = append(artifacts, g.Generate(model)...)
	}
	return model, artifacts, nil
}

// InputPath resolves the INI file of s against root.
func InputPath(root string, s *settings.Settings) string {
	return resolve(root, s.Input)
}

// LicenseLines reads the license header file, dropping trailing blank lines.
func LicenseLines(root, path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(resolve(root, path))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read license header %s", path)
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

func resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
