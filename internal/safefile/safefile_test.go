package safefile

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestOpenLog_Success(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logfile.log")
	if err := os.WriteFile(path, []byte("test content"), 0644); err != nil {
		t.Fatal(err)
	}

	f, info, err := OpenLog(path)
	if err != nil {
		t.Fatalf("OpenLog() error = %v, want nil", err)
	}
	defer f.Close()

	if !info.Mode().IsRegular() {
		t.Error("expected regular file")
	}
	if info.Size() != int64(len("test content")) {
		t.Errorf("info.Size() = %d, want %d", info.Size(), len("test content"))
	}

	buf := make([]byte, 12)
	n, err := f.Read(buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(buf[:n]) != "test content" {
		t.Errorf("Read() = %q, want %q", string(buf[:n]), "test content")
	}
}

func TestOpenLog_FileNotExist(t *testing.T) {
	_, _, err := OpenLog(filepath.Join(t.TempDir(), "missing.log"))
	if err == nil {
		t.Fatal("OpenLog() expected error for nonexistent file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("OpenLog() error = %v, want os.ErrNotExist", err)
	}
}

func TestOpenLog_RejectsDirectory(t *testing.T) {
	dir := t.TempDir()

	_, _, err := OpenLog(dir)
	if !errors.Is(err, ErrNotRegularFile) {
		t.Errorf("OpenLog() error = %v, want ErrNotRegularFile", err)
	}
}

func TestOpenLog_FollowsSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink test requires Unix")
	}

	dir := t.TempDir()
	target := filepath.Join(dir, "target.log")
	link := filepath.Join(dir, "link.log")

	if err := os.WriteFile(target, []byte("linked"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}

	f, _, err := OpenLog(link)
	if err != nil {
		t.Fatalf("OpenLog() error = %v, want nil", err)
	}
	f.Close()
}

func TestOpenLog_RejectsSymlinkToDirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink test requires Unix")
	}

	dir := t.TempDir()
	link := filepath.Join(t.TempDir(), "link.log")
	if err := os.Symlink(dir, link); err != nil {
		t.Fatal(err)
	}

	_, _, err := OpenLog(link)
	if !errors.Is(err, ErrNotRegularFile) {
		t.Errorf("OpenLog() error = %v, want ErrNotRegularFile", err)
	}
}
