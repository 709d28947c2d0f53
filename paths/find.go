// Package paths locates WAD data files on the local machine.
//
// Archives are looked for in the current directory, next to the binary, in
// a datafiles/ subdirectory of either, and in $DOOMWADDIR, in that order.
package paths

import (
	"io"
	"os"
	"path/filepath"

	"github.com/golang/glog"
)

func possiblePaths(fileName string) []string {
	dirs := []string{
		".",
		"datafiles",
		filepath.Dir(os.Args[0]),
		filepath.Join(filepath.Dir(os.Args[0]), "datafiles"),
	}
	if wadDir := os.Getenv("DOOMWADDIR"); wadDir != "" {
		dirs = append(dirs, wadDir)
	}
	paths := make([]string, 0, len(dirs))
	for _, d := range dirs {
		paths = append(paths, filepath.Join(d, fileName))
	}
	return paths
}

// Find locates the passed data file shortname and returns a path it can be
// opened at, or an empty string when no candidate location has it.
//
// For example, for "doom1.wad" it may return "datafiles/doom1.wad".
func Find(fileName string) string {
	for _, path := range possiblePaths(fileName) {
		if f, err := os.Open(path); err == nil {
			f.Close()
			glog.V(1).Infof("paths.Find(%q)=%s", fileName, path)
			return path
		}
	}
	return ""
}

// Open locates the passed file in the same locations Find would look, and
// opens it.
func Open(fileName string) (interface {
	io.ReadCloser
	io.Seeker
}, error) {
	if path := Find(fileName); path != "" {
		return os.Open(path)
	}
	// Fall through for the caller's error message to name the file.
	return os.Open(fileName)
}

// NoFindOpen opens the passed path without any location search.
func NoFindOpen(path string) (interface {
	io.ReadCloser
	io.Seeker
}, error) {
	return os.Open(path)
}
