package testing

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMapDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", "b.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := MapDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got["a.txt"] != got[filepath.Join("sub", "b.txt")] {
		t.Errorf("identical file contents should digest equally: %v", got)
	}

	want := map[string]string{
		"a.txt":                        "sha256:2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		filepath.Join("sub", "b.txt"): "sha256:2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
	}
	if !MapsEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if MapsEqual(got, map[string]string{"a.txt": got["a.txt"]}) {
		t.Error("maps of different size should not compare equal")
	}
}
