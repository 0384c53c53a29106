package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dtp/internal/domain"
)

// Scanner enumerates importable modules under a package root
type Scanner struct {
	skipDirs map[string]bool
}

// NewScanner creates a new Scanner with the given directories to skip
func NewScanner(skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap}
}

// Scan recursively enumerates every module beneath rootDir, including the
// root itself. A module is a directory containing at least one non-test Go
// source file; directories without sources are skipped silently. Import
// paths and names are computed relative to srcDir.
func (s *Scanner) Scan(rootDir, srcDir string) ([]domain.Module, error) {
	rootDir = filepath.Clean(rootDir)
	info, err := os.Stat(rootDir)
	if err != nil {
		return nil, fmt.Errorf("package root does not exist: %s", rootDir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("package root is not a directory: %s", rootDir)
	}

	var modules []domain.Module

	err = filepath.WalkDir(rootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}

		name := d.Name()
		if path != rootDir {
			// Skip hidden directories (starting with .)
			if strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if s.skipDirs[name] {
				return filepath.SkipDir
			}
		}

		files, err := sourceFiles(path)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			// Namespace-only directory: excluded from execution, not an error
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil || strings.HasPrefix(rel, "..") {
			return fmt.Errorf("module %s is outside the src tree", path)
		}
		importPath := filepath.ToSlash(rel)

		modules = append(modules, domain.Module{
			Name:       DottedName(importPath),
			ImportPath: importPath,
			Dir:        path,
			Files:      files,
		})
		return nil
	})

	return modules, err
}

func sourceFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if isGoSource(entry.Name()) {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}
