// Package settings holds confgen's own configuration: which input to read,
// which targets to render and how.
package settings

import (
	"time"

	"github.com/teranos/confgen/flagmodel"
)

// Settings represents the generator configuration
type Settings struct {
	// Input is the INI file, relative to the root directory.
	Input         string              `mapstructure:"input" toml:"input" yaml:"input" json:"input"`
	Languages     []string            `mapstructure:"languages" toml:"languages" yaml:"languages" json:"languages"`
	KeySyntax     flagmodel.KeySyntax `mapstructure:"key_syntax" toml:"key_syntax" yaml:"key_syntax" json:"key_syntax"`
	Force         bool                `mapstructure:"force" toml:"force" yaml:"force" json:"force"`
	LicenseHeader string              `mapstructure:"license_header" toml:"license_header" yaml:"license_header" json:"license_header"`
	// Requires is a semver constraint the running confgen must satisfy.
	Requires string        `mapstructure:"requires" toml:"requires" yaml:"requires" json:"requires"`
	Cpp      CppSettings   `mapstructure:"cpp" toml:"cpp" yaml:"cpp" json:"cpp"`
	Go       GoSettings    `mapstructure:"go" toml:"go" yaml:"go" json:"go"`
	Watch    WatchSettings `mapstructure:"watch" toml:"watch" yaml:"watch" json:"watch"`

	// File is the settings file that was read, empty when none exists.
	File string `mapstructure:"-" toml:"-" yaml:"-" json:"-"`
}

// CppSettings configures the C++ target
type CppSettings struct {
	GlobalStore bool   `mapstructure:"global_store" toml:"global_store" yaml:"global_store" json:"global_store"`
	Namespace   string `mapstructure:"namespace" toml:"namespace" yaml:"namespace" json:"namespace"`
	ConfigFile  string `mapstructure:"config_file" toml:"config_file" yaml:"config_file" json:"config_file"`
}

// GoSettings configures the Go target
type GoSettings struct {
	Package string `mapstructure:"package" toml:"package" yaml:"package" json:"package"`
}

// WatchSettings configures watch mode
type WatchSettings struct {
	Debounce Duration `mapstructure:"debounce" toml:"debounce" yaml:"debounce" json:"debounce"`
	// Exec runs after every successful regeneration.
	Exec string `mapstructure:"exec" toml:"exec" yaml:"exec" json:"exec"`
}

// Duration is a time.Duration written as text ("500ms") in every format.
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}
