package pipeline

import (
	"os"
	"path/filepath"

	"github.com/teranos/confgen/errors"
	"github.com/teranos/confgen/gen"
)

// File and directory permissions for generated output
const (
	FilePermissions = 0644
	DirPermissions  = 0755
)

type staged struct {
	tmp string
	dst string
}

// Write stores every artifact below root. Each file is first written in full
// to a temporary file next to its destination; only when all of them are on
// disk are they renamed into place. If staging fails nothing is replaced.
func Write(root string, artifacts []gen.Artifact) error {
	var pending []staged
	discard := func(files []staged) {
		for _, f := range files {
			_ = os.Remove(f.tmp)
		}
	}

	for _, a := range artifacts {
		dst := filepath.Join(root, filepath.FromSlash(a.Path))
		if err := os.MkdirAll(filepath.Dir(dst), DirPermissions); err != nil {
			discard(pending)
			return errors.Wrapf(err, "failed to create directory for %s", a.Path)
		}
		tmp, err := writeTemp(dst, a.Content)
		if err != nil {
			discard(pending)
			return errors.Wrapf(err, "failed to write %s", a.Path)
		}
		pending = append(pending, staged{tmp: tmp, dst: dst})
	}

	for i, f := range pending {
		if err := os.Rename(f.tmp, f.dst); err != nil {
			discard(pending[i:])
			return errors.Wrapf(err, "failed to replace %s", f.dst)
		}
	}
	return nil
}

func writeTemp(dst string, content []byte) (string, error) {
	f, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".tmp-*")
	if err != nil {
		return "", err
	}
	tmp := f.Name()

	if _, err := f.Write(content); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", err
	}
	if err := os.Chmod(tmp, FilePermissions); err != nil {
		os.Remove(tmp)
		return "", err
	}
	return tmp, nil
}
