package execution

import (
	"bytes"
	"fmt"
	goparser "go/parser"
	"reflect"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"dtp/internal/domain"
	"dtp/internal/parser"
)

// Loader creates isolated interpreter sessions for modules of one project.
// The project root acts as the interpreter's search path (packages resolve
// under <root>/src), so no process-wide state is ever mutated: every
// session owns its own resolver.
type Loader struct {
	projectRoot string
}

// NewLoader creates a Loader resolving imports against projectRoot
func NewLoader(projectRoot string) *Loader {
	return &Loader{projectRoot: projectRoot}
}

// Unit wraps a discovered module as a Loadable
func (l *Loader) Unit(module domain.Module) *Unit {
	return &Unit{module: module, loader: l}
}

// Session creates a fresh evaluation session with nothing but the
// standard library loaded. Used for README runs, where examples import
// what they need themselves.
func (l *Loader) Session() (*Session, error) {
	return newSession(l.projectRoot, "")
}

// Unit is a Loadable backed by the embedded interpreter
type Unit struct {
	module domain.Module
	loader *Loader
}

// Name returns the module's dotted display name
func (u *Unit) Name() string {
	return u.module.Name
}

// DocTexts extracts the module's documentation text
func (u *Unit) DocTexts() ([]parser.DocText, error) {
	return parser.DocTexts(u.module.Dir)
}

// NewSession creates a fresh evaluation namespace with the module
// imported. An import failure here is the per-module load failure the
// harness records as a warning.
func (u *Unit) NewSession() (*Session, error) {
	return newSession(u.loader.projectRoot, u.module.ImportPath)
}

// Session is one isolated evaluation namespace. All example blocks of a
// module run in the same session, sequentially.
type Session struct {
	interp *interp.Interpreter
	out    *bytes.Buffer
}

func newSession(projectRoot, importPath string) (*Session, error) {
	out := &bytes.Buffer{}
	i := interp.New(interp.Options{
		GoPath: projectRoot,
		Stdout: out,
		Stderr: out,
	})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("load stdlib symbols: %w", err)
	}

	s := &Session{interp: i, out: out}
	if importPath != "" {
		if _, err := s.eval(fmt.Sprintf("import %q", importPath)); err != nil {
			return nil, fmt.Errorf("import %s: %w", importPath, err)
		}
		out.Reset()
	}
	return s, nil
}

// Run evaluates one example block's source and returns the actual output:
// everything the block wrote to stdout/stderr, plus the rendered value of
// a bare expression that printed nothing (interactive echo semantics).
func (s *Session) Run(source []string) (string, error) {
	s.out.Reset()
	src := strings.Join(source, "\n")

	v, err := s.eval(src)
	got := s.out.String()
	if err != nil {
		return got, err
	}

	if got == "" && v.IsValid() && isExpression(src) {
		got = fmt.Sprintf("%v\n", v)
	}
	return got, nil
}

// eval wraps interpreter evaluation, converting panics into errors so a
// misbehaving example fails its module instead of aborting the run.
func (s *Session) eval(src string) (v reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("interpreter panic: %v", r)
		}
	}()
	return s.interp.Eval(src)
}

// isExpression reports whether the whole snippet parses as a single Go
// expression; only those echo their value.
func isExpression(src string) bool {
	_, err := goparser.ParseExpr(src)
	return err == nil
}
