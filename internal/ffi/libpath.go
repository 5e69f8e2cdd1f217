package ffi

import (
	"os"
	"path/filepath"
)

// LibraryName is the file name of the native library.
const LibraryName = "blur_lib.dll"

// LibraryPathEnv overrides library discovery when set.
const LibraryPathEnv = "WINBLUR_LIB_PATH"

// libraryPath resolves where to load blur_lib from. An explicit path wins,
// then the environment, then well-known locations. If nothing exists on
// disk the bare name is returned and the system loader gets to search.
func libraryPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if path := os.Getenv(LibraryPathEnv); path != "" {
		return path
	}

	var searchPaths []string
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		searchPaths = append(searchPaths,
			filepath.Join(execDir, LibraryName),
			filepath.Join(execDir, "lib", LibraryName),
		)
	}
	searchPaths = append(searchPaths,
		LibraryName,
		filepath.Join("build", LibraryName),
		filepath.Join("blur_lib", "build", "Release", LibraryName),
	)

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			if abs, err := filepath.Abs(path); err == nil {
				return abs
			}
			return path
		}
	}
	return LibraryName
}
