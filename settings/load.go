package settings

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/teranos/confgen/errors"
)

const (
	// FileName is the settings file looked up in the root directory.
	FileName = "confgen.toml"
	// EnvPrefix prefixes environment overrides, e.g. CONFGEN_GO_PACKAGE.
	EnvPrefix = "CONFGEN"
	// DotEnvFile is loaded from the root directory when present.
	DotEnvFile = ".env"
)

// NewViper prepares a viper instance with defaults, the settings file and
// environment overrides. configFile overrides <root>/confgen.toml; a missing
// default file is not an error, a missing explicit one is.
func NewViper(root, configFile string) (*viper.Viper, error) {
	if err := loadDotEnv(root); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	path := configFile
	if path == "" {
		path = filepath.Join(root, FileName)
		if _, err := os.Stat(path); err != nil {
			return v, nil
		}
	}

	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read settings file %s", path)
	}
	return v, nil
}

// Load reads settings for a root directory
func Load(root, configFile string) (*Settings, error) {
	v, err := NewViper(root, configFile)
	if err != nil {
		return nil, err
	}
	return LoadWithViper(v)
}

// LoadFromFile loads settings from a specific file path
func LoadFromFile(path string) (*Settings, error) {
	return Load(filepath.Dir(path), path)
}

// LoadWithViper decodes settings from a prepared viper instance
func LoadWithViper(v *viper.Viper) (*Settings, error) {
	var s Settings
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&s, hook); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal settings")
	}
	s.File = v.ConfigFileUsed()
	return &s, nil
}

// loadDotEnv exports variables from <root>/.env without overriding the
// environment.
func loadDotEnv(root string) error {
	path := filepath.Join(root, DotEnvFile)
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "failed to load %s", path)
	}
	return nil
}
