// Package testing holds shared helpers for the test suites of this module.
package testing

import (
	"crypto/sha256"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func FileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	sha256 := sha256.New()
	if _, err := io.Copy(sha256, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("sha256:%x", sha256.Sum(nil)), nil
}

// MapDir maps every regular file below dir, keyed by its path relative to
// dir, to its digest. Extracted filesystem trees are nested, so relative
// paths are used rather than base names.
func MapDir(dir string) (map[string]string, error) {
	out := make(map[string]string)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		digest, err := FileDigest(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out[rel] = digest
		return nil
	})
	return out, err
}

func MapsEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok || va != vb {
			return false
		}
	}
	return true
}

// FakeToolDir creates a directory and prepends it to PATH for the duration
// of the test, so that FakeTool scripts shadow the real external tools.
func FakeToolDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return dir
}

// FakeTool writes an executable shell script named name into dir.
func FakeTool(t *testing.T, dir, name, script string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatal(err)
	}
}
