package parser

import (
	"fmt"
	"go/ast"
	goparser "go/parser"
	"go/token"
	"io/fs"
	"sort"
	"strings"
)

// DocText is one piece of documentation text extracted from a module:
// the package comment or the doc comment of a top-level declaration.
type DocText struct {
	File string // File the comment came from
	Line int    // Line the comment starts on
	Text string // Comment text with markers stripped
}

// DocTexts parses every non-test Go source file in dir and returns the
// documentation text of the package and all top-level declarations,
// ordered by file and position.
func DocTexts(dir string) ([]DocText, error) {
	fset := token.NewFileSet()
	pkgs, err := goparser.ParseDir(fset, dir, func(fi fs.FileInfo) bool {
		return !strings.HasSuffix(fi.Name(), "_test.go")
	}, goparser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", dir, err)
	}

	var docs []DocText
	add := func(group *ast.CommentGroup) {
		if group == nil {
			return
		}
		pos := fset.Position(group.Pos())
		docs = append(docs, DocText{
			File: pos.Filename,
			Line: pos.Line,
			Text: group.Text(),
		})
	}

	for _, pkg := range pkgs {
		for _, file := range pkg.Files {
			add(file.Doc)
			for _, decl := range file.Decls {
				switch d := decl.(type) {
				case *ast.FuncDecl:
					add(d.Doc)
				case *ast.GenDecl:
					add(d.Doc)
					for _, spec := range d.Specs {
						switch s := spec.(type) {
						case *ast.TypeSpec:
							add(s.Doc)
						case *ast.ValueSpec:
							add(s.Doc)
						}
					}
				}
			}
		}
	}

	sort.Slice(docs, func(i, j int) bool {
		if docs[i].File != docs[j].File {
			return docs[i].File < docs[j].File
		}
		return docs[i].Line < docs[j].Line
	})
	return docs, nil
}
