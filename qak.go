// Package qak is the embedding API for the Qak compiler front end: it
// turns one UTF-8 source buffer into a token vector and an abstract
// syntax tree, or a list of diagnostics with precise source locations.
//
// A Compiler is a factory for Modules; every Module owns its own
// Source, token vector, AST arenas, and diagnostic sink, so closing
// the Compiler never invalidates a Module already obtained from it.
package qak

import (
	"errors"
	"io"

	"qak/internal/ast"
	"qak/internal/diag"
	"qak/internal/diagfmt"
	"qak/internal/driver"
	"qak/internal/source"
	"qak/internal/token"
)

var errCompilerClosed = errors.New("qak: compiler is closed")

// Options configures a Compiler.
type Options struct {
	// MaxDiagnostics caps how many diagnostics each Module retains.
	// 0 keeps the sink's built-in default.
	MaxDiagnostics int
}

// Compiler compiles Qak source files into Modules. It is safe for
// concurrent use: each CompileFile/CompileSource call builds a fully
// independent compilation unit, and the shared file registry is
// internally locked.
type Compiler struct {
	opts   Options
	reg    *source.Registry
	closed bool
}

// NewCompiler returns a Compiler with default options.
func NewCompiler() *Compiler {
	return NewCompilerWith(Options{})
}

// NewCompilerWith returns a Compiler using opts.
func NewCompilerWith(opts Options) *Compiler {
	return &Compiler{opts: opts, reg: source.NewRegistry()}
}

// Close releases the Compiler. Modules previously returned by it stay
// fully usable: nothing a Module reaches is owned by the Compiler.
func (c *Compiler) Close() {
	c.closed = true
	c.reg = nil
}

// Module is one compiled unit: the source record, the token vector,
// the diagnostic list, and (when parsing succeeded) the AST root with
// its arenas.
type Module struct {
	file    *source.File
	bag     *diag.Bag
	tokens  []token.Token
	builder *ast.Builder
	root    *ast.Module
}

// CompileFile reads path from disk and compiles it. I/O failures are
// returned as an error; lexical and syntax problems are not errors at
// this boundary; they land in the Module's diagnostic list.
func (c *Compiler) CompileFile(path string) (*Module, error) {
	if c.closed {
		return nil, errCompilerClosed
	}
	res, err := driver.CompileFile(c.reg, path, driver.Options{MaxDiagnostics: c.opts.MaxDiagnostics})
	if err != nil {
		return nil, err
	}
	return moduleFromResult(res), nil
}

// CompileSource compiles in-memory source bytes under a display name.
func (c *Compiler) CompileSource(fileName string, data []byte) (*Module, error) {
	if c.closed {
		return nil, errCompilerClosed
	}
	res, err := driver.CompileSource(c.reg, fileName, data, driver.Options{MaxDiagnostics: c.opts.MaxDiagnostics})
	if err != nil {
		return nil, err
	}
	return moduleFromResult(res), nil
}

func moduleFromResult(res *driver.Result) *Module {
	return &Module{file: res.File, bag: res.Bag, tokens: res.Tokens, builder: res.Builder, root: res.Module}
}

// Source returns the module's source record.
func (m *Module) Source() *source.File { return m.file }

// Errors returns every retained diagnostic, in detection order.
func (m *Module) Errors() []diag.Diagnostic { return m.bag.Items() }

// ErrorCount returns how many diagnostics were retained.
func (m *Module) ErrorCount() int { return m.bag.Len() }

// Error returns the i-th diagnostic; it panics when i is out of range,
// like any slice index.
func (m *Module) Error(i int) diag.Diagnostic { return m.bag.Items()[i] }

// Tokens returns the full token vector, including the trailing EOF
// sentinel.
func (m *Module) Tokens() []token.Token { return m.tokens }

// TokenCount returns the number of tokens produced.
func (m *Module) TokenCount() int { return len(m.tokens) }

// Token returns the i-th token.
func (m *Module) Token(i int) token.Token { return m.tokens[i] }

// AST returns the parsed module root, or nil when any diagnostic was
// reported.
func (m *Module) AST() *ast.Module { return m.root }

// Builder returns the arenas the AST's nodes live in, or nil when
// parsing failed. Node ids in the AST index into these.
func (m *Module) Builder() *ast.Builder { return m.builder }

// Close releases the Module. All of the module's state is reclaimed
// together; no individual node is ever freed in isolation. Close is
// idempotent, and exists mostly so callers arriving from the C-style
// handle API have something to pair with module creation.
func (m *Module) Close() {
	m.root = nil
	m.builder = nil
	m.tokens = nil
	m.file = nil
	m.bag = nil
}

// PrintTokens writes a one-line-per-token dump to w.
func (m *Module) PrintTokens(w io.Writer) error {
	return diagfmt.FormatTokensPretty(w, m.file, m.tokens)
}

// PrintErrors writes every diagnostic in caret format to w, without
// color.
func (m *Module) PrintErrors(w io.Writer) {
	diagfmt.Pretty(w, m.bag, m.file, diagfmt.PrettyOpts{})
}

// PrintAST writes the indented AST dump to w.
func (m *Module) PrintAST(w io.Writer) error {
	return diagfmt.FormatASTPretty(w, m.root, m.builder, m.file)
}
