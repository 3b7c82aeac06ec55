package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDirIsIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	if err := EnsureDir(dir); err != nil {
		t.Fatalf("First EnsureDir failed: %v", err)
	}
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("Second EnsureDir failed: %v", err)
	}
	if !DirExists(dir) {
		t.Fatalf("Directory was not created: %s", dir)
	}
}

func TestProbeDistinguishesKinds(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "file.txt")
	os.WriteFile(file, []byte("x"), 0644)

	cases := []struct {
		path string
		want PathKind
	}{
		{file, PathFile},
		{tmp, PathDir},
		{filepath.Join(tmp, "missing"), PathMissing},
	}
	for _, tc := range cases {
		kind, err := Probe(tc.path)
		if err != nil {
			t.Fatalf("Probe(%s) returned error: %v", tc.path, err)
		}
		if kind != tc.want {
			t.Errorf("Probe(%s) = %v, want %v", tc.path, kind, tc.want)
		}
	}
}

func TestRemoveFileMissingIsNoop(t *testing.T) {
	if err := RemoveFile(filepath.Join(t.TempDir(), "missing")); err != nil {
		t.Fatalf("RemoveFile on missing path should be a no-op, got: %v", err)
	}
}

func TestRemoveFileRejectsDirectory(t *testing.T) {
	if err := RemoveFile(t.TempDir()); err == nil {
		t.Fatal("RemoveFile on a directory should fail")
	}
}

func TestRemoveDirMissingIsNoop(t *testing.T) {
	if err := RemoveDir(filepath.Join(t.TempDir(), "missing")); err != nil {
		t.Fatalf("RemoveDir on missing path should be a no-op, got: %v", err)
	}
}

func TestRemoveDirRejectsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.txt")
	os.WriteFile(file, []byte("x"), 0644)

	if err := RemoveDir(file); err == nil {
		t.Fatal("RemoveDir on a file should fail")
	}
}

func TestCopyFileIfChangedSkipsIdenticalContent(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src.bin")
	dst := filepath.Join(tmp, "dst.bin")
	os.WriteFile(src, []byte("same content"), 0644)

	if err := CopyFileIfChanged(src, dst); err != nil {
		t.Fatalf("Initial copy failed: %v", err)
	}

	before, err := os.Stat(dst)
	if err != nil {
		t.Fatalf("Destination missing after copy: %v", err)
	}

	if err := CopyFileIfChanged(src, dst); err != nil {
		t.Fatalf("Second copy failed: %v", err)
	}

	after, _ := os.Stat(dst)
	if !after.ModTime().Equal(before.ModTime()) {
		t.Error("Byte-identical destination was rewritten")
	}
}

func TestCopyFileIfChangedOverwritesDifferentContent(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src.bin")
	dst := filepath.Join(tmp, "dst.bin")
	os.WriteFile(src, []byte("new content!"), 0644)
	os.WriteFile(dst, []byte("old content"), 0644)

	if err := CopyFileIfChanged(src, dst); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}

	got, _ := os.ReadFile(dst)
	if string(got) != "new content!" {
		t.Errorf("Destination has wrong content: %s", got)
	}
}

func TestWriteTextIfChangedSkipsIdenticalContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	if err := WriteTextIfChanged(path, "hello"); err != nil {
		t.Fatalf("Initial write failed: %v", err)
	}
	before, _ := os.Stat(path)

	if err := WriteTextIfChanged(path, "hello"); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}
	after, _ := os.Stat(path)

	if !after.ModTime().Equal(before.ModTime()) {
		t.Error("Identical content was rewritten")
	}

	if err := WriteTextIfChanged(path, "changed"); err != nil {
		t.Fatalf("Changed write failed: %v", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "changed" {
		t.Errorf("Content not updated: %s", got)
	}
}
