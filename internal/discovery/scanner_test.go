package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanner_Scan(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "dtp-scan-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	makeTree(t, tmpDir, []string{"src/config/empty"}, map[string]string{
		"src/config/add.go":                  "package config\n",
		"src/config/templates/tpl.go":        "package templates\n",
		"src/config/templates/tpl_test.go":   "package templates\n",
		"src/config/testdata/fixture.go":     "package fixture\n",
		"src/config/.hidden/hidden.go":       "package hidden\n",
		"src/config/vendor/dep/dep.go":       "package dep\n",
		"src/config/notgo/readme.txt":        "text\n",
	})

	srcDir := filepath.Join(tmpDir, "src")
	rootDir := filepath.Join(srcDir, "config")
	scanner := NewScanner([]string{"vendor", "testdata"})

	t.Run("enumerates modules including the root", func(t *testing.T) {
		modules, err := scanner.Scan(rootDir, srcDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// config and config/templates; hidden, vendor, testdata and
		// source-less directories are excluded
		if len(modules) != 2 {
			t.Fatalf("expected 2 modules, got %d: %+v", len(modules), modules)
		}

		byName := make(map[string]bool)
		for _, m := range modules {
			byName[m.Name] = true
		}
		if !byName["config"] || !byName["config.templates"] {
			t.Errorf("unexpected module set: %v", byName)
		}
	})

	t.Run("excludes test files from module sources", func(t *testing.T) {
		modules, err := scanner.Scan(rootDir, srcDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, m := range modules {
			for _, f := range m.Files {
				if f == "tpl_test.go" {
					t.Error("test files must not be module sources")
				}
			}
		}
	})

	t.Run("returns error for non-existent directory", func(t *testing.T) {
		_, err := scanner.Scan("/non/existent/path", srcDir)
		if err == nil {
			t.Error("expected error for non-existent directory")
		}
	})

	t.Run("returns error for file instead of directory", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, "afile.txt")
		os.WriteFile(testFile, []byte("x"), 0644)
		_, err := scanner.Scan(testFile, srcDir)
		if err == nil {
			t.Error("expected error for file path")
		}
	})

	t.Run("rejects roots outside the src tree", func(t *testing.T) {
		outside := filepath.Join(tmpDir, "outside")
		os.MkdirAll(outside, 0755)
		os.WriteFile(filepath.Join(outside, "x.go"), []byte("package x\n"), 0644)
		_, err := scanner.Scan(outside, srcDir)
		if err == nil {
			t.Error("expected error for root outside src")
		}
	})
}
