package astfactory

import (
	"strings"

	"github.com/orizon-lang/astkit/internal/ast"
	"github.com/orizon-lang/astkit/internal/token"
)

// CompilationUnitOptions lists the contents of a source file.
type CompilationUnitOptions struct {
	ScriptTag    string
	Directives   []ast.Directive
	Declarations []ast.CompilationUnitMember
}

// CompilationUnit creates a file root bracketed by end-of-file sentinels.
func CompilationUnit(opts CompilationUnitOptions) *ast.CompilationUnit {
	var script *ast.ScriptTag
	if opts.ScriptTag != "" {
		script = ScriptTag(opts.ScriptTag)
	}
	return ast.NewCompilationUnit(tok(token.EOF), script, List(opts.Directives...), List(opts.Declarations...),
		tok(token.EOF))
}

// ScriptTag creates the "#!" line of a script.
func ScriptTag(text string) *ast.ScriptTag {
	return ast.NewScriptTag(token.FromTypeAndText(token.ScriptTag, text))
}

// LibraryDirective creates "library a.b;" from a dotted name.
func LibraryDirective(libraryName string) *ast.LibraryDirective {
	return LibraryDirectiveOf(LibraryIdentifier(strings.Split(libraryName, ".")...))
}

// LibraryDirectiveOf creates "library name;" from an identifier node.
func LibraryDirectiveOf(libraryName *ast.LibraryIdentifier) *ast.LibraryDirective {
	return ast.NewLibraryDirective(nil, kw(token.KwLibrary), libraryName, tok(token.Semicolon))
}

// ImportOptions describes an import directive. A deferred import should
// carry a prefix.
type ImportOptions struct {
	Metadata []*ast.Annotation
	URI      string
	Deferred bool
	Prefix   string
}

// ImportDirective creates "import 'uri' deferred as p show a hide b;".
func ImportDirective(opts ImportOptions, combinators ...ast.Combinator) *ast.ImportDirective {
	return ast.NewImportDirective(List(opts.Metadata...), kw(token.KwImport), String(opts.URI),
		optKeywordIf(opts.Deferred, token.KwDeferred), optKeywordIf(opts.Prefix != "", token.KwAs),
		optIdentifier(opts.Prefix), List(combinators...), tok(token.Semicolon))
}

// ExportDirective creates "export 'uri' show a;".
func ExportDirective(uri string, combinators ...ast.Combinator) *ast.ExportDirective {
	return ast.NewExportDirective(nil, kw(token.KwExport), String(uri), List(combinators...), tok(token.Semicolon))
}

// PartDirective creates "part 'uri';".
func PartDirective(uri string) *ast.PartDirective {
	return ast.NewPartDirective(nil, kw(token.KwPart), String(uri), tok(token.Semicolon))
}

// PartOfDirective creates "part of a.b;".
func PartOfDirective(libraryName *ast.LibraryIdentifier) *ast.PartOfDirective {
	return ast.NewPartOfDirective(nil, kw(token.KwPart), token.FromText("of"), libraryName, tok(token.Semicolon))
}

// ShowCombinator creates "show a, b".
func ShowCombinator(names ...string) *ast.ShowCombinator {
	return ast.NewShowCombinator(token.FromText("show"), identifiers(names))
}

// ShowCombinatorOf creates "show a, b" from identifier nodes.
func ShowCombinatorOf(identifiers ...*ast.SimpleIdentifier) *ast.ShowCombinator {
	return ast.NewShowCombinator(token.FromText("show"), List(identifiers...))
}

// HideCombinator creates "hide a, b".
func HideCombinator(names ...string) *ast.HideCombinator {
	return ast.NewHideCombinator(token.FromText("hide"), identifiers(names))
}

// HideCombinatorOf creates "hide a, b" from identifier nodes.
func HideCombinatorOf(identifiers ...*ast.SimpleIdentifier) *ast.HideCombinator {
	return ast.NewHideCombinator(token.FromText("hide"), List(identifiers...))
}
