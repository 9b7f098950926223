// Package fileops holds the filesystem primitives shared by the scaffold
// engine. The write-if-absent policy lives here once; both directory markers
// and artifacts go through WriteFile so the two paths cannot drift.
package fileops

import (
	"io"
	"os"
	"path/filepath"
)

// WriteFile writes data to path under the idempotent write policy: if the
// target already exists and force is false the file is left untouched.
// Missing parent directories are created. Returns whether a write happened.
func WriteFile(path string, data []byte, force bool) (bool, error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		} else if !os.IsNotExist(err) {
			return false, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return false, err
	}
	return true, nil
}

// EnsureDir creates dir and any missing parents. Returns whether the
// directory had to be created; an existing directory is not an error.
func EnsureDir(dir string) (bool, error) {
	if info, err := os.Stat(dir); err == nil {
		if info.IsDir() {
			return false, nil
		}
		return false, &os.PathError{Op: "mkdir", Path: dir, Err: os.ErrExist}
	} else if !os.IsNotExist(err) {
		return false, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, err
	}
	return true, nil
}

// IsDirEmpty reports whether dir has no entries. A missing directory counts
// as empty, since the scaffolder will create it.
func IsDirEmpty(dir string) (bool, error) {
	f, err := os.Open(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}
	defer f.Close()

	_, err = f.Readdirnames(1)
	if err == io.EOF {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}
