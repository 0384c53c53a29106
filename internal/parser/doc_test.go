package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSource(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestDocTexts(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "dtp-parser-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	writeSource(t, tmpDir, "calc.go", `// Package calc provides arithmetic helpers.
//
//	>>> calc.Add(2, 3)
//	5
package calc

// Add returns the sum of a and b.
func Add(a, b int) int {
	return a + b
}

// MaxInputs is the supported operand count.
const MaxInputs = 2
`)
	writeSource(t, tmpDir, "calc_test.go", `package calc

// TestDoc should never be picked up.
import "testing"

func TestAdd(t *testing.T) {}
`)

	docs, err := DocTexts(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(docs) != 3 {
		t.Fatalf("expected 3 doc texts, got %d: %+v", len(docs), docs)
	}

	// Positional order within the file
	if !strings.Contains(docs[0].Text, "Package calc") {
		t.Errorf("first doc should be the package comment, got %q", docs[0].Text)
	}
	if !strings.Contains(docs[1].Text, "Add returns") {
		t.Errorf("second doc should be the Add comment, got %q", docs[1].Text)
	}
	if !strings.Contains(docs[2].Text, "MaxInputs") {
		t.Errorf("third doc should be the const comment, got %q", docs[2].Text)
	}

	for _, d := range docs {
		if strings.Contains(d.Text, "never be picked up") {
			t.Error("doc texts must not include _test.go files")
		}
		if d.Line == 0 || d.File == "" {
			t.Errorf("doc text missing position: %+v", d)
		}
	}

	// Embedded example survives comment-marker stripping
	blocks := ExtractBlocks(docs[0])
	if len(blocks) != 1 || blocks[0].Want != "5" {
		t.Errorf("expected one embedded example with want 5, got %+v", blocks)
	}
}

func TestDocTexts_ParseError(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "dtp-parser-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	writeSource(t, tmpDir, "broken.go", "package broken\n\nfunc {\n")

	if _, err := DocTexts(tmpDir); err == nil {
		t.Error("expected error for unparseable source")
	}
}
