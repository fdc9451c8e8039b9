package settings

import (
	"github.com/teranos/confgen/errors"
	"github.com/teranos/confgen/flagmodel"
	"github.com/teranos/confgen/gen"
	"github.com/teranos/confgen/gen/cpp"
	"github.com/teranos/confgen/gen/golang"
	"github.com/teranos/confgen/version"
)

// Validate checks that the settings are usable
func (s *Settings) Validate() error {
	if s.Input == "" {
		return errors.New("input cannot be empty")
	}

	if _, err := gen.Languages(s.Languages); err != nil {
		return errors.Wrap(err, "languages")
	}

	if s.KeySyntax != flagmodel.TypeFirst && s.KeySyntax != flagmodel.TypeLast {
		return errors.Newf("key_syntax %d is not supported", int(s.KeySyntax))
	}

	if err := cpp.ValidateNamespace(s.Cpp.Namespace); err != nil {
		return errors.Wrap(err, "cpp.namespace")
	}
	if s.Cpp.ConfigFile == "" {
		return errors.New("cpp.config_file cannot be empty")
	}

	if err := golang.ValidatePackage(s.Go.Package); err != nil {
		return errors.Wrap(err, "go.package")
	}

	if s.Watch.Debounce < 0 {
		return errors.Newf("watch.debounce must be >= 0, got %s", s.Watch.Debounce.Std())
	}

	if err := version.CheckConstraint(s.Requires); err != nil {
		return errors.Wrap(err, "requires")
	}

	return nil
}

// TargetLanguages returns the normalized language list
func (s *Settings) TargetLanguages() []string {
	langs, err := gen.Languages(s.Languages)
	if err != nil {
		return nil
	}
	return langs
}
