package fileutil_test

// Notes:
// - CopyFile: the io.Copy error branch is not tested because triggering a
//   mid-copy read failure is platform-specific.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-lotlist/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestValidateExtension - Extension validation
// ---------------------------------------------------------------------------

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{name: "txt", extension: ".txt"},
		{name: "md", extension: ".md"},
		{name: "empty", extension: "", wantErr: fileutil.ErrExtensionEmpty},
		{name: "missing dot", extension: "txt", wantErr: fileutil.ErrExtensionNoDot},
		{name: "dot only", extension: ".", wantErr: fileutil.ErrExtensionNoDot},
		{name: "forward slash", extension: "./../x", wantErr: fileutil.ErrExtensionPathTraversal},
		{name: "backslash", extension: ".\\x", wantErr: fileutil.ErrExtensionPathTraversal},
		{name: "null byte", extension: ".txt\x00exe", wantErr: fileutil.ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateExtension(tt.extension)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateExtension(%q) unexpected error: %v", tt.extension, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) error = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFileExists / TestDirExists - Existence checks
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !fileutil.FileExists(file) {
		t.Error("FileExists(file) = false, want true")
	}
	if fileutil.FileExists(dir) {
		t.Error("FileExists(dir) = true, want false")
	}
	if fileutil.FileExists(filepath.Join(dir, "missing")) {
		t.Error("FileExists(missing) = true, want false")
	}
}

func TestDirExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !fileutil.DirExists(dir) {
		t.Error("DirExists(dir) = false, want true")
	}
	if fileutil.DirExists(file) {
		t.Error("DirExists(file) = true, want false")
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - Name vs path detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"lotlist", false},
		{"my-config", false},
		{"./lotlist.yaml", true},
		{"/etc/lotlist.yaml", true},
		{`C:\lotlist.yaml`, true},
	}

	for _, tt := range tests {
		if got := fileutil.IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestWriteFile - Writing with parent creation
// ---------------------------------------------------------------------------

func TestWriteFile_CreatesParents(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "deeper", "out.txt")
	if err := fileutil.WriteFile(path, []byte("hello")); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello" {
		t.Errorf("content = %q, want %q", got, "hello")
	}
}

func TestWriteFileIfMissing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "template.txt")

	written, err := fileutil.WriteFileIfMissing(path, []byte("first"))
	if err != nil || !written {
		t.Fatalf("first write: written=%v err=%v", written, err)
	}

	written, err = fileutil.WriteFileIfMissing(path, []byte("second"))
	if err != nil {
		t.Fatalf("second write error: %v", err)
	}
	if written {
		t.Error("second write reported written = true")
	}

	got, _ := os.ReadFile(path)
	if string(got) != "first" {
		t.Errorf("content = %q, want existing content preserved", got)
	}
}

// ---------------------------------------------------------------------------
// TestCopyFile - Photo duplication
// ---------------------------------------------------------------------------

func TestCopyFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "1601.jpg")
	dst := filepath.Join(dir, "out", "Lot_1601.jpg")

	if err := os.WriteFile(src, []byte("image-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := fileutil.CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile() error: %v", err)
	}
	got, _ := os.ReadFile(dst)
	if string(got) != "image-bytes" {
		t.Errorf("copied content = %q", got)
	}

	t.Run("overwrites existing destination", func(t *testing.T) {
		if err := os.WriteFile(src, []byte("new"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := fileutil.CopyFile(src, dst); err != nil {
			t.Fatalf("CopyFile() error: %v", err)
		}
		got, _ := os.ReadFile(dst)
		if string(got) != "new" {
			t.Errorf("copied content = %q, want %q", got, "new")
		}
	})
}

func TestCopyFile_MissingSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	err := fileutil.CopyFile(filepath.Join(dir, "nope.jpg"), filepath.Join(dir, "out.jpg"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}
