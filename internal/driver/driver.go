// Package driver wires the front-end phases together: load a source
// file, tokenize it, and parse it into an AST, with every phase
// reporting into one shared diagnostic bag. Both the qak embedding
// facade and the qakc CLI sit on top of it.
package driver

import (
	"qak/internal/ast"
	"qak/internal/diag"
	"qak/internal/lexer"
	"qak/internal/parser"
	"qak/internal/source"
	"qak/internal/token"
)

// Options configures one compilation.
type Options struct {
	// MaxDiagnostics caps the diagnostic bag; 0 keeps its default.
	MaxDiagnostics int
}

// Result is everything one compilation unit produced. Module and
// Builder are nil whenever any diagnostic was reported; File, Tokens
// and Bag are always populated.
type Result struct {
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
	Module  *ast.Module
	Builder *ast.Builder
}

func newBag(opts Options) *diag.Bag {
	if opts.MaxDiagnostics > 0 {
		return diag.NewBagWithCap(opts.MaxDiagnostics)
	}
	return diag.NewBag()
}

// CompileSource runs the full pipeline over in-memory source bytes
// registered under a display name.
func CompileSource(reg *source.Registry, name string, data []byte, opts Options) (*Result, error) {
	file, err := reg.AddVirtual(name, data)
	if err != nil {
		return nil, err
	}
	return compile(file, opts), nil
}

// CompileFile runs the full pipeline over a file read from disk. I/O
// failures come back as an error; everything the tokenizer or parser
// objects to lands in the Result's Bag instead.
func CompileFile(reg *source.Registry, path string, opts Options) (*Result, error) {
	file, err := reg.Load(path)
	if err != nil {
		return nil, err
	}
	return compile(file, opts), nil
}

// TokenizeFile runs only the tokenizer, for the CLI's tokenize
// subcommand. The Result's Module and Builder are always nil.
func TokenizeFile(reg *source.Registry, path string, opts Options) (*Result, error) {
	file, err := reg.Load(path)
	if err != nil {
		return nil, err
	}
	bag := newBag(opts)
	toks := lexer.Tokenize(file, diag.BagReporter{Bag: bag})
	return &Result{File: file, Tokens: toks, Bag: bag}, nil
}

func compile(file *source.File, opts Options) *Result {
	bag := newBag(opts)
	toks := lexer.Tokenize(file, diag.BagReporter{Bag: bag})
	mod, builder := parser.ParseTokens(file, toks, bag)
	return &Result{File: file, Tokens: toks, Bag: bag, Module: mod, Builder: builder}
}
