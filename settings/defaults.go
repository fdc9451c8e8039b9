package settings

import (
	"github.com/spf13/viper"

	"github.com/teranos/confgen/gen"
	"github.com/teranos/confgen/gen/golang"
)

// Default values
const (
	DefaultInput      = "config.ini"
	DefaultKeySyntax  = "type-first"
	DefaultConfigFile = "config.ini"
	DefaultDebounce   = "500ms"
)

// SetDefaults configures default values for all settings. Every key has a
// default so that CONFGEN_* variables are seen by Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input", DefaultInput)
	v.SetDefault("languages", []string{gen.LangCpp})
	v.SetDefault("key_syntax", DefaultKeySyntax)
	v.SetDefault("force", false)
	v.SetDefault("license_header", "")
	v.SetDefault("requires", "")

	v.SetDefault("cpp.global_store", false)
	v.SetDefault("cpp.namespace", "")
	v.SetDefault("cpp.config_file", DefaultConfigFile)

	v.SetDefault("go.package", golang.DefaultPackage)

	v.SetDefault("watch.debounce", DefaultDebounce)
	v.SetDefault("watch.exec", "")
}
