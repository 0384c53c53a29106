package discovery

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func makeTree(t *testing.T, root string, dirs []string, files map[string]string) {
	t.Helper()
	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			t.Fatalf("failed to create dir %s: %v", dir, err)
		}
	}
	for path, content := range files {
		full := filepath.Join(root, path)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}
}

func TestResolve(t *testing.T) {
	t.Run("selects first package in lexicographic order", func(t *testing.T) {
		tmpDir, _ := os.MkdirTemp("", "dtp-resolve-*")
		defer os.RemoveAll(tmpDir)
		makeTree(t, tmpDir, nil, map[string]string{
			"src/config/add.go": "package config\n",
			"src/rhiza/add.go":  "package rhiza\n",
		})

		res, err := Resolve(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.RootDir != filepath.Join(tmpDir, "src", "config") {
			t.Errorf("unexpected root dir: %s", res.RootDir)
		}
		if res.RootName != "config" {
			t.Errorf("unexpected root name: %s", res.RootName)
		}
		if res.RootImport != "config" {
			t.Errorf("unexpected import path: %s", res.RootImport)
		}
		if res.ProjectRoot != tmpDir {
			t.Errorf("unexpected project root: %s", res.ProjectRoot)
		}
	})

	t.Run("walks up to find src in an ancestor", func(t *testing.T) {
		tmpDir, _ := os.MkdirTemp("", "dtp-resolve-*")
		defer os.RemoveAll(tmpDir)
		makeTree(t, tmpDir, []string{"tests/nested"}, map[string]string{
			"src/pkg/pkg.go": "package pkg\n",
		})

		res, err := Resolve(filepath.Join(tmpDir, "tests", "nested"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ProjectRoot != tmpDir {
			t.Errorf("expected project root %s, got %s", tmpDir, res.ProjectRoot)
		}
	})

	t.Run("nested package root", func(t *testing.T) {
		tmpDir, _ := os.MkdirTemp("", "dtp-resolve-*")
		defer os.RemoveAll(tmpDir)
		makeTree(t, tmpDir, []string{"src/a"}, map[string]string{
			"src/a/b/x.go": "package b\n",
		})

		res, err := Resolve(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.RootName != "a.b" {
			t.Errorf("unexpected root name: %s", res.RootName)
		}
		if res.RootImport != "a/b" {
			t.Errorf("unexpected import path: %s", res.RootImport)
		}
	})

	t.Run("empty src falls back to src itself", func(t *testing.T) {
		tmpDir, _ := os.MkdirTemp("", "dtp-resolve-*")
		defer os.RemoveAll(tmpDir)
		makeTree(t, tmpDir, []string{"src/empty"}, nil)

		res, err := Resolve(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.RootDir != filepath.Join(tmpDir, "src") {
			t.Errorf("unexpected root dir: %s", res.RootDir)
		}
		if res.RootImport != "" || res.RootName != "" {
			t.Errorf("empty src should have no import path, got %q/%q", res.RootImport, res.RootName)
		}
	})

	t.Run("test files do not define a package root", func(t *testing.T) {
		tmpDir, _ := os.MkdirTemp("", "dtp-resolve-*")
		defer os.RemoveAll(tmpDir)
		makeTree(t, tmpDir, nil, map[string]string{
			"src/aaa/only_test.go": "package aaa\n",
			"src/bbb/real.go":      "package bbb\n",
		})

		res, err := Resolve(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.RootName != "bbb" {
			t.Errorf("expected bbb as root, got %s", res.RootName)
		}
	})

	t.Run("no src directory is fatal", func(t *testing.T) {
		tmpDir, _ := os.MkdirTemp("", "dtp-resolve-*")
		defer os.RemoveAll(tmpDir)
		makeTree(t, tmpDir, []string{"lib"}, nil)

		_, err := Resolve(tmpDir)
		if !errors.Is(err, ErrNoSrcDir) {
			t.Errorf("expected ErrNoSrcDir, got %v", err)
		}
	})
}

func TestDottedName(t *testing.T) {
	tests := []struct {
		importPath string
		expected   string
	}{
		{"config", "config"},
		{"config/templates", "config.templates"},
		{"a/b/c", "a.b.c"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := DottedName(tt.importPath); got != tt.expected {
			t.Errorf("DottedName(%q) = %q, expected %q", tt.importPath, got, tt.expected)
		}
	}
}
