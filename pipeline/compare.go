package pipeline

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/teranos/confgen/errors"
	"github.com/teranos/confgen/gen"
)

// CheckResult holds the result of comparing rendered artifacts with disk
type CheckResult struct {
	UpToDate    bool
	Differences []string // artifacts whose content differs
	Missing     []string // artifacts that do not exist yet
}

// Compare reports which artifacts differ from the files below root.
func Compare(root string, artifacts []gen.Artifact) (*CheckResult, error) {
	result := &CheckResult{}

	for _, a := range artifacts {
		existing, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(a.Path)))
		if os.IsNotExist(err) {
			result.Missing = append(result.Missing, a.Path)
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", a.Path)
		}
		if !bytes.Equal(existing, a.Content) {
			result.Differences = append(result.Differences, a.Path)
		}
	}

	result.UpToDate = len(result.Differences) == 0 && len(result.Missing) == 0
	return result, nil
}
