package ffi

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLibraryPathExplicitWins(t *testing.T) {
	t.Setenv(LibraryPathEnv, "/from/env.dll")
	if got := libraryPath("C:/explicit/blur_lib.dll"); got != "C:/explicit/blur_lib.dll" {
		t.Errorf("libraryPath() = %q, want explicit path", got)
	}
}

func TestLibraryPathEnv(t *testing.T) {
	t.Setenv(LibraryPathEnv, "/from/env.dll")
	if got := libraryPath(""); got != "/from/env.dll" {
		t.Errorf("libraryPath() = %q, want env path", got)
	}
}

func TestLibraryPathSearch(t *testing.T) {
	t.Setenv(LibraryPathEnv, "")
	dir := t.TempDir()
	chdir(t, dir)

	if got := libraryPath(""); got != LibraryName {
		t.Errorf("libraryPath() = %q, want bare name when nothing exists", got)
	}

	if err := os.MkdirAll("build", 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("build", LibraryName), nil, 0644); err != nil {
		t.Fatal(err)
	}
	want, _ := filepath.Abs(filepath.Join("build", LibraryName))
	if got := libraryPath(""); got != want {
		t.Errorf("libraryPath() = %q, want %q", got, want)
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
