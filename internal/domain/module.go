package domain

// Module represents a discovered module: a directory of Go source files
// reachable from a package root.
type Module struct {
	Name       string   // Dotted display name relative to src, e.g. "config.templates"
	ImportPath string   // Slash-joined import path handed to the interpreter, e.g. "config/templates"
	Dir        string   // Absolute directory containing the module's sources
	Files      []string // Non-test Go source files in the directory
}

// ExampleBlock represents an interactive example embedded in documentation
// text: one or more source lines and the expected textual output.
type ExampleBlock struct {
	Source []string // Interpreter input lines, prompts stripped
	Want   string   // Expected output, empty if the example expects none
	File   string   // File the documentation text came from
	Line   int      // Line of the first prompt within that file
}
