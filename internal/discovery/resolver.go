package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// SrcDirName is the directory convention that marks a project's package tree.
const SrcDirName = "src"

// ErrNoSrcDir is returned when no src directory exists in any ancestor of
// the starting path. This is fatal to a run: there is nothing to test.
var ErrNoSrcDir = errors.New("no src directory found in any parent directory")

// Resolution describes a resolved package root and how to import it.
type Resolution struct {
	ProjectRoot string // Directory containing src; the interpreter's search path
	SrcDir      string // The src directory itself
	RootDir     string // Resolved package root directory
	RootName    string // Dotted module name, e.g. "config"
	RootImport  string // Slash-joined import path relative to src
}

// Resolve walks up from startDir until it finds a directory containing a
// src subdirectory, then selects the package root inside it: the directory
// of the first Go source file below src in lexicographic path order, or
// src itself when no source exists yet.
func Resolve(startDir string) (*Resolution, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		srcDir := filepath.Join(dir, SrcDirName)
		if info, err := os.Stat(srcDir); err == nil && info.IsDir() {
			return resolveWithin(dir, srcDir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return nil, ErrNoSrcDir
		}
		dir = parent
	}
}

func resolveWithin(projectRoot, srcDir string) (*Resolution, error) {
	rootDir, err := firstSourceDir(srcDir)
	if err != nil {
		return nil, err
	}

	res := &Resolution{
		ProjectRoot: projectRoot,
		SrcDir:      srcDir,
		RootDir:     rootDir,
	}
	if rootDir != srcDir {
		rel, err := filepath.Rel(srcDir, rootDir)
		if err != nil {
			return nil, fmt.Errorf("resolve package root: %w", err)
		}
		res.RootImport = filepath.ToSlash(rel)
		res.RootName = DottedName(res.RootImport)
	}
	return res, nil
}

// firstSourceDir returns the directory of the first Go source file below
// srcDir in lexicographic path order, or srcDir itself when none exists.
// WalkDir visits entries in lexical order, which gives the ordering for free.
func firstSourceDir(srcDir string) (string, error) {
	var found string
	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != srcDir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if isGoSource(d.Name()) {
			found = filepath.Dir(path)
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("scan %s: %w", srcDir, err)
	}
	if found == "" {
		return srcDir, nil
	}
	return found, nil
}

// DottedName converts a slash-joined import path to the dotted display
// name used in reports, e.g. "config/templates" -> "config.templates".
func DottedName(importPath string) string {
	return strings.ReplaceAll(importPath, "/", ".")
}

func isGoSource(name string) bool {
	return strings.HasSuffix(name, ".go") && !strings.HasSuffix(name, "_test.go")
}
