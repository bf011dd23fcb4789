package ast

import "github.com/orizon-lang/astkit/internal/token"

// CompilationUnit is the root of a source file. StartToken and EndOfFile are
// the sentinel tokens that bracket the file; they are used as begin and end
// tokens only when the unit is empty.
type CompilationUnit struct {
	baseNode
	StartToken   *token.Token
	ScriptTag    *ScriptTag
	Directives   *NodeList[Directive]
	Declarations *NodeList[CompilationUnitMember]
	EndOfFile    *token.Token
}

func NewCompilationUnit(startToken *token.Token, scriptTag *ScriptTag, directives []Directive,
	declarations []CompilationUnitMember, endOfFile *token.Token) *CompilationUnit {
	n := &CompilationUnit{StartToken: startToken, EndOfFile: endOfFile}
	n.ScriptTag = becomeParentOf(n, scriptTag)
	n.Directives = newNodeListOf(n, directives)
	n.Declarations = newNodeListOf(n, declarations)
	return n
}

func (n *CompilationUnit) BeginToken() *token.Token {
	if t := beginOf(n); t != nil {
		return t
	}
	return n.StartToken
}

func (n *CompilationUnit) EndToken() *token.Token {
	if t := endOf(n); t != nil {
		return t
	}
	return n.EndOfFile
}

func (n *CompilationUnit) ChildEntities() []interface{} {
	return entities(n.ScriptTag, n.Directives, n.Declarations)
}
func (n *CompilationUnit) Accept(visitor Visitor) interface{} { return visitor.VisitCompilationUnit(n) }

// ScriptTag is the "#!" line at the top of a script.
type ScriptTag struct {
	baseNode
	Tag *token.Token
}

func NewScriptTag(tag *token.Token) *ScriptTag {
	return &ScriptTag{Tag: tag}
}

func (n *ScriptTag) BeginToken() *token.Token           { return n.Tag }
func (n *ScriptTag) EndToken() *token.Token             { return n.Tag }
func (n *ScriptTag) ChildEntities() []interface{}       { return entities(n.Tag) }
func (n *ScriptTag) Accept(visitor Visitor) interface{} { return visitor.VisitScriptTag(n) }

// LibraryDirective is "library a.b;".
type LibraryDirective struct {
	baseNode
	Metadata       *NodeList[*Annotation]
	LibraryKeyword *token.Token
	Name           *LibraryIdentifier
	Semicolon      *token.Token
}

func NewLibraryDirective(metadata []*Annotation, libraryKeyword *token.Token, name *LibraryIdentifier,
	semicolon *token.Token) *LibraryDirective {
	n := &LibraryDirective{LibraryKeyword: libraryKeyword, Semicolon: semicolon}
	n.Metadata = newNodeListOf(n, metadata)
	n.Name = becomeParentOf(n, name)
	return n
}

func (n *LibraryDirective) BeginToken() *token.Token { return beginOf(n) }
func (n *LibraryDirective) EndToken() *token.Token   { return n.Semicolon }
func (n *LibraryDirective) ChildEntities() []interface{} {
	return entities(n.Metadata, n.LibraryKeyword, n.Name, n.Semicolon)
}
func (n *LibraryDirective) Accept(visitor Visitor) interface{} {
	return visitor.VisitLibraryDirective(n)
}
func (n *LibraryDirective) directiveNode() {}

// ImportDirective is "import 'uri' deferred as p show a hide b;".
// DeferredKeyword requires a prefix; AsKeyword is present iff Prefix is.
type ImportDirective struct {
	baseNode
	Metadata        *NodeList[*Annotation]
	Keyword         *token.Token
	URI             StringLiteral
	DeferredKeyword *token.Token
	AsKeyword       *token.Token
	Prefix          *SimpleIdentifier
	Combinators     *NodeList[Combinator]
	Semicolon       *token.Token
}

func NewImportDirective(metadata []*Annotation, keyword *token.Token, uri StringLiteral, deferredKeyword,
	asKeyword *token.Token, prefix *SimpleIdentifier, combinators []Combinator, semicolon *token.Token) *ImportDirective {
	n := &ImportDirective{Keyword: keyword, DeferredKeyword: deferredKeyword, AsKeyword: asKeyword, Semicolon: semicolon}
	n.Metadata = newNodeListOf(n, metadata)
	n.URI = becomeParentOf(n, uri)
	n.Prefix = becomeParentOf(n, prefix)
	n.Combinators = newNodeListOf(n, combinators)
	return n
}

func (n *ImportDirective) BeginToken() *token.Token { return beginOf(n) }
func (n *ImportDirective) EndToken() *token.Token   { return n.Semicolon }
func (n *ImportDirective) ChildEntities() []interface{} {
	return entities(n.Metadata, n.Keyword, n.URI, n.DeferredKeyword, n.AsKeyword, n.Prefix, n.Combinators, n.Semicolon)
}
func (n *ImportDirective) Accept(visitor Visitor) interface{} { return visitor.VisitImportDirective(n) }
func (n *ImportDirective) directiveNode()                     {}

// IsDeferred reports whether the import is deferred.
func (n *ImportDirective) IsDeferred() bool { return n.DeferredKeyword != nil }

// ExportDirective is "export 'uri' show a;".
type ExportDirective struct {
	baseNode
	Metadata    *NodeList[*Annotation]
	Keyword     *token.Token
	URI         StringLiteral
	Combinators *NodeList[Combinator]
	Semicolon   *token.Token
}

func NewExportDirective(metadata []*Annotation, keyword *token.Token, uri StringLiteral, combinators []Combinator,
	semicolon *token.Token) *ExportDirective {
	n := &ExportDirective{Keyword: keyword, Semicolon: semicolon}
	n.Metadata = newNodeListOf(n, metadata)
	n.URI = becomeParentOf(n, uri)
	n.Combinators = newNodeListOf(n, combinators)
	return n
}

func (n *ExportDirective) BeginToken() *token.Token { return beginOf(n) }
func (n *ExportDirective) EndToken() *token.Token   { return n.Semicolon }
func (n *ExportDirective) ChildEntities() []interface{} {
	return entities(n.Metadata, n.Keyword, n.URI, n.Combinators, n.Semicolon)
}
func (n *ExportDirective) Accept(visitor Visitor) interface{} { return visitor.VisitExportDirective(n) }
func (n *ExportDirective) directiveNode()                     {}

// PartDirective is "part 'uri';".
type PartDirective struct {
	baseNode
	Metadata    *NodeList[*Annotation]
	PartKeyword *token.Token
	URI         StringLiteral
	Semicolon   *token.Token
}

func NewPartDirective(metadata []*Annotation, partKeyword *token.Token, uri StringLiteral, semicolon *token.Token) *PartDirective {
	n := &PartDirective{PartKeyword: partKeyword, Semicolon: semicolon}
	n.Metadata = newNodeListOf(n, metadata)
	n.URI = becomeParentOf(n, uri)
	return n
}

func (n *PartDirective) BeginToken() *token.Token { return beginOf(n) }
func (n *PartDirective) EndToken() *token.Token   { return n.Semicolon }
func (n *PartDirective) ChildEntities() []interface{} {
	return entities(n.Metadata, n.PartKeyword, n.URI, n.Semicolon)
}
func (n *PartDirective) Accept(visitor Visitor) interface{} { return visitor.VisitPartDirective(n) }
func (n *PartDirective) directiveNode()                     {}

// PartOfDirective is "part of a.b;".
type PartOfDirective struct {
	baseNode
	Metadata    *NodeList[*Annotation]
	PartKeyword *token.Token
	OfKeyword   *token.Token
	LibraryName *LibraryIdentifier
	Semicolon   *token.Token
}

func NewPartOfDirective(metadata []*Annotation, partKeyword, ofKeyword *token.Token, libraryName *LibraryIdentifier,
	semicolon *token.Token) *PartOfDirective {
	n := &PartOfDirective{PartKeyword: partKeyword, OfKeyword: ofKeyword, Semicolon: semicolon}
	n.Metadata = newNodeListOf(n, metadata)
	n.LibraryName = becomeParentOf(n, libraryName)
	return n
}

func (n *PartOfDirective) BeginToken() *token.Token { return beginOf(n) }
func (n *PartOfDirective) EndToken() *token.Token   { return n.Semicolon }
func (n *PartOfDirective) ChildEntities() []interface{} {
	return entities(n.Metadata, n.PartKeyword, n.OfKeyword, n.LibraryName, n.Semicolon)
}
func (n *PartOfDirective) Accept(visitor Visitor) interface{} { return visitor.VisitPartOfDirective(n) }
func (n *PartOfDirective) directiveNode()                     {}

// ShowCombinator is "show a, b".
type ShowCombinator struct {
	baseNode
	Keyword    *token.Token
	ShownNames *NodeList[*SimpleIdentifier]
}

func NewShowCombinator(keyword *token.Token, shownNames []*SimpleIdentifier) *ShowCombinator {
	n := &ShowCombinator{Keyword: keyword}
	n.ShownNames = newNodeListOf(n, shownNames)
	return n
}

func (n *ShowCombinator) BeginToken() *token.Token           { return n.Keyword }
func (n *ShowCombinator) EndToken() *token.Token             { return endOf(n) }
func (n *ShowCombinator) ChildEntities() []interface{}       { return entities(n.Keyword, n.ShownNames) }
func (n *ShowCombinator) Accept(visitor Visitor) interface{} { return visitor.VisitShowCombinator(n) }
func (n *ShowCombinator) combinatorNode()                    {}

// HideCombinator is "hide a, b".
type HideCombinator struct {
	baseNode
	Keyword     *token.Token
	HiddenNames *NodeList[*SimpleIdentifier]
}

func NewHideCombinator(keyword *token.Token, hiddenNames []*SimpleIdentifier) *HideCombinator {
	n := &HideCombinator{Keyword: keyword}
	n.HiddenNames = newNodeListOf(n, hiddenNames)
	return n
}

func (n *HideCombinator) BeginToken() *token.Token           { return n.Keyword }
func (n *HideCombinator) EndToken() *token.Token             { return endOf(n) }
func (n *HideCombinator) ChildEntities() []interface{}       { return entities(n.Keyword, n.HiddenNames) }
func (n *HideCombinator) Accept(visitor Visitor) interface{} { return visitor.VisitHideCombinator(n) }
func (n *HideCombinator) combinatorNode()                    {}
