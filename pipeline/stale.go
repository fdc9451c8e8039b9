package pipeline

import (
	"os"
	"path/filepath"
	"time"

	"github.com/teranos/confgen/errors"
	"github.com/teranos/confgen/gen"
	"github.com/teranos/confgen/settings"
)

// Inputs lists every file generation depends on: the INI input, the settings
// file and the license header, when set.
func Inputs(root string, s *settings.Settings) []string {
	inputs := []string{InputPath(root, s)}
	if s.File != "" {
		inputs = append(inputs, s.File)
	}
	if s.LicenseHeader != "" {
		inputs = append(inputs, resolve(root, s.LicenseHeader))
	}
	return inputs
}

// IsStale reports whether artifacts must be rewritten: one of them is
// missing, or an input was modified after the oldest of them.
func IsStale(root string, s *settings.Settings, artifacts []gen.Artifact) (bool, error) {
	var oldest time.Time
	for _, a := range artifacts {
		info, err := os.Stat(filepath.Join(root, filepath.FromSlash(a.Path)))
		if os.IsNotExist(err) {
			return true, nil
		}
		if err != nil {
			return false, errors.Wrapf(err, "failed to stat %s", a.Path)
		}
		if oldest.IsZero() || info.ModTime().Before(oldest) {
			oldest = info.ModTime()
		}
	}

	for _, input := range Inputs(root, s) {
		info, err := os.Stat(input)
		if err != nil {
			return false, errors.Wrapf(err, "failed to stat %s", input)
		}
		if info.ModTime().After(oldest) {
			return true, nil
		}
	}
	return false, nil
}
