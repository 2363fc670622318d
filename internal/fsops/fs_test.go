package fsops

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRealFS_Exists(t *testing.T) {
	fs := NewRealFS()
	dir := t.TempDir()

	path := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	exists, err := fs.Exists(path)
	if err != nil || !exists {
		t.Errorf("Exists(%s) = %v, %v; want true", path, exists, err)
	}

	exists, err = fs.Exists(filepath.Join(dir, "missing"))
	if err != nil || exists {
		t.Errorf("Exists(missing) = %v, %v; want false", exists, err)
	}
}

// A dangling symlink still counts as existing: renaming it is valid even
// though its target is gone.
func TestRealFS_ExistsDanglingSymlink(t *testing.T) {
	fs := NewRealFS()
	dir := t.TempDir()

	link := filepath.Join(dir, "dangling")
	if err := os.Symlink(filepath.Join(dir, "gone"), link); err != nil {
		t.Skipf("cannot create symlinks: %v", err)
	}

	exists, err := fs.Exists(link)
	if err != nil || !exists {
		t.Errorf("Exists(dangling symlink) = %v, %v; want true", exists, err)
	}
}

func TestRealFS_Rename(t *testing.T) {
	fs := NewRealFS()
	dir := t.TempDir()

	src := filepath.Join(dir, "old.txt")
	dst := filepath.Join(dir, "new.txt")
	if err := os.WriteFile(src, []byte("content"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := fs.Rename(src, dst); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}

	if _, err := os.Lstat(src); !os.IsNotExist(err) {
		t.Errorf("source still exists after rename")
	}
	data, err := os.ReadFile(dst)
	if err != nil || string(data) != "content" {
		t.Errorf("destination content = %q, %v", data, err)
	}
}

func TestRealFS_MkdirAll(t *testing.T) {
	fs := NewRealFS()
	dir := t.TempDir()

	nested := filepath.Join(dir, "a", "b", "c")
	if err := fs.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	info, err := os.Lstat(nested)
	if err != nil || !info.IsDir() {
		t.Errorf("Lstat(%s) = %v, %v; want directory", nested, info, err)
	}

	// Creating an existing directory is not an error.
	if err := fs.MkdirAll(nested, 0755); err != nil {
		t.Errorf("MkdirAll on existing directory failed: %v", err)
	}
}

func TestRealFS_AtomicWrite(t *testing.T) {
	fs := NewRealFS()
	dir := t.TempDir()

	path := filepath.Join(dir, "nested", "out.json")
	if err := fs.AtomicWrite(path, []byte(`{"ok":true}`), 0644); err != nil {
		t.Fatalf("AtomicWrite failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != `{"ok":true}` {
		t.Errorf("content = %q", data)
	}

	// No temp files may be left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("unexpected leftover files: %v", entries)
	}
}

func TestRealFS_ReadDirSorted(t *testing.T) {
	fs := NewRealFS()
	dir := t.TempDir()

	for _, name := range []string{"c.txt", "a.txt", "b.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	entries, err := fs.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	want := []string{"a.txt", "b.txt", "c.txt"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ReadDir order = %v, want %v", names, want)
		}
	}
}
