package ast

import "github.com/orizon-lang/astkit/internal/token"

// AssertStatement is "assert (condition);".
type AssertStatement struct {
	baseNode
	Keyword          *token.Token
	LeftParenthesis  *token.Token
	Condition        Expression
	RightParenthesis *token.Token
	Semicolon        *token.Token
}

func NewAssertStatement(keyword, leftParenthesis *token.Token, condition Expression,
	rightParenthesis, semicolon *token.Token) *AssertStatement {
	n := &AssertStatement{Keyword: keyword, LeftParenthesis: leftParenthesis,
		RightParenthesis: rightParenthesis, Semicolon: semicolon}
	n.Condition = becomeParentOf(n, condition)
	return n
}

func (n *AssertStatement) BeginToken() *token.Token { return n.Keyword }
func (n *AssertStatement) EndToken() *token.Token   { return n.Semicolon }
func (n *AssertStatement) ChildEntities() []interface{} {
	return entities(n.Keyword, n.LeftParenthesis, n.Condition, n.RightParenthesis, n.Semicolon)
}
func (n *AssertStatement) Accept(visitor Visitor) interface{} { return visitor.VisitAssertStatement(n) }
func (n *AssertStatement) statementNode()                     {}

// Block is "{ statements }".
type Block struct {
	baseNode
	LeftBracket  *token.Token
	Statements   *NodeList[Statement]
	RightBracket *token.Token
}

func NewBlock(leftBracket *token.Token, statements []Statement, rightBracket *token.Token) *Block {
	n := &Block{LeftBracket: leftBracket, RightBracket: rightBracket}
	n.Statements = newNodeListOf(n, statements)
	return n
}

func (n *Block) BeginToken() *token.Token { return n.LeftBracket }
func (n *Block) EndToken() *token.Token   { return n.RightBracket }
func (n *Block) ChildEntities() []interface{} {
	return entities(n.LeftBracket, n.Statements, n.RightBracket)
}
func (n *Block) Accept(visitor Visitor) interface{} { return visitor.VisitBlock(n) }
func (n *Block) statementNode()                     {}

// BreakStatement is "break label;". Label may be nil.
type BreakStatement struct {
	baseNode
	Keyword   *token.Token
	Label     *SimpleIdentifier
	Semicolon *token.Token
}

func NewBreakStatement(keyword *token.Token, label *SimpleIdentifier, semicolon *token.Token) *BreakStatement {
	n := &BreakStatement{Keyword: keyword, Semicolon: semicolon}
	n.Label = becomeParentOf(n, label)
	return n
}

func (n *BreakStatement) BeginToken() *token.Token { return n.Keyword }
func (n *BreakStatement) EndToken() *token.Token   { return n.Semicolon }
func (n *BreakStatement) ChildEntities() []interface{} {
	return entities(n.Keyword, n.Label, n.Semicolon)
}
func (n *BreakStatement) Accept(visitor Visitor) interface{} { return visitor.VisitBreakStatement(n) }
func (n *BreakStatement) statementNode()                     {}

// ContinueStatement is "continue label;". Label may be nil.
type ContinueStatement struct {
	baseNode
	Keyword   *token.Token
	Label     *SimpleIdentifier
	Semicolon *token.Token
}

func NewContinueStatement(keyword *token.Token, label *SimpleIdentifier, semicolon *token.Token) *ContinueStatement {
	n := &ContinueStatement{Keyword: keyword, Semicolon: semicolon}
	n.Label = becomeParentOf(n, label)
	return n
}

func (n *ContinueStatement) BeginToken() *token.Token { return n.Keyword }
func (n *ContinueStatement) EndToken() *token.Token   { return n.Semicolon }
func (n *ContinueStatement) ChildEntities() []interface{} {
	return entities(n.Keyword, n.Label, n.Semicolon)
}
func (n *ContinueStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitContinueStatement(n)
}
func (n *ContinueStatement) statementNode() {}

// DoStatement is "do body while (condition);".
type DoStatement struct {
	baseNode
	DoKeyword        *token.Token
	Body             Statement
	WhileKeyword     *token.Token
	LeftParenthesis  *token.Token
	Condition        Expression
	RightParenthesis *token.Token
	Semicolon        *token.Token
}

func NewDoStatement(doKeyword *token.Token, body Statement, whileKeyword, leftParenthesis *token.Token,
	condition Expression, rightParenthesis, semicolon *token.Token) *DoStatement {
	n := &DoStatement{DoKeyword: doKeyword, WhileKeyword: whileKeyword, LeftParenthesis: leftParenthesis,
		RightParenthesis: rightParenthesis, Semicolon: semicolon}
	n.Body = becomeParentOf(n, body)
	n.Condition = becomeParentOf(n, condition)
	return n
}

func (n *DoStatement) BeginToken() *token.Token { return n.DoKeyword }
func (n *DoStatement) EndToken() *token.Token   { return n.Semicolon }
func (n *DoStatement) ChildEntities() []interface{} {
	return entities(n.DoKeyword, n.Body, n.WhileKeyword, n.LeftParenthesis, n.Condition,
		n.RightParenthesis, n.Semicolon)
}
func (n *DoStatement) Accept(visitor Visitor) interface{} { return visitor.VisitDoStatement(n) }
func (n *DoStatement) statementNode()                     {}

// EmptyStatement is a lone ";".
type EmptyStatement struct {
	baseNode
	Semicolon *token.Token
}

func NewEmptyStatement(semicolon *token.Token) *EmptyStatement {
	return &EmptyStatement{Semicolon: semicolon}
}

func (n *EmptyStatement) BeginToken() *token.Token           { return n.Semicolon }
func (n *EmptyStatement) EndToken() *token.Token             { return n.Semicolon }
func (n *EmptyStatement) ChildEntities() []interface{}       { return entities(n.Semicolon) }
func (n *EmptyStatement) Accept(visitor Visitor) interface{} { return visitor.VisitEmptyStatement(n) }
func (n *EmptyStatement) statementNode()                     {}

// ExpressionStatement is "expression;".
type ExpressionStatement struct {
	baseNode
	Expression Expression
	Semicolon  *token.Token
}

func NewExpressionStatement(expression Expression, semicolon *token.Token) *ExpressionStatement {
	n := &ExpressionStatement{Semicolon: semicolon}
	n.Expression = becomeParentOf(n, expression)
	return n
}

func (n *ExpressionStatement) BeginToken() *token.Token { return beginOf(n) }
func (n *ExpressionStatement) EndToken() *token.Token   { return endOf(n) }
func (n *ExpressionStatement) ChildEntities() []interface{} {
	return entities(n.Expression, n.Semicolon)
}
func (n *ExpressionStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitExpressionStatement(n)
}
func (n *ExpressionStatement) statementNode() {}

// ForEachStatement is "await for (variable in iterable) body". The loop
// variable is either a DeclaredIdentifier or a bare SimpleIdentifier; exactly
// one of LoopVariable and Identifier is set.
type ForEachStatement struct {
	baseNode
	AwaitKeyword     *token.Token
	ForKeyword       *token.Token
	LeftParenthesis  *token.Token
	LoopVariable     *DeclaredIdentifier
	Identifier       *SimpleIdentifier
	InKeyword        *token.Token
	Iterable         Expression
	RightParenthesis *token.Token
	Body             Statement
}

func NewForEachStatement(awaitKeyword, forKeyword, leftParenthesis *token.Token, loopVariable *DeclaredIdentifier,
	inKeyword *token.Token, iterable Expression, rightParenthesis *token.Token, body Statement) *ForEachStatement {
	n := &ForEachStatement{AwaitKeyword: awaitKeyword, ForKeyword: forKeyword, LeftParenthesis: leftParenthesis,
		InKeyword: inKeyword, RightParenthesis: rightParenthesis}
	n.LoopVariable = becomeParentOf(n, loopVariable)
	n.Iterable = becomeParentOf(n, iterable)
	n.Body = becomeParentOf(n, body)
	return n
}

func NewForEachStatementWithIdentifier(awaitKeyword, forKeyword, leftParenthesis *token.Token, identifier *SimpleIdentifier,
	inKeyword *token.Token, iterable Expression, rightParenthesis *token.Token, body Statement) *ForEachStatement {
	n := &ForEachStatement{AwaitKeyword: awaitKeyword, ForKeyword: forKeyword, LeftParenthesis: leftParenthesis,
		InKeyword: inKeyword, RightParenthesis: rightParenthesis}
	n.Identifier = becomeParentOf(n, identifier)
	n.Iterable = becomeParentOf(n, iterable)
	n.Body = becomeParentOf(n, body)
	return n
}

func (n *ForEachStatement) BeginToken() *token.Token { return beginOf(n) }
func (n *ForEachStatement) EndToken() *token.Token   { return endOf(n) }
func (n *ForEachStatement) ChildEntities() []interface{} {
	return entities(n.AwaitKeyword, n.ForKeyword, n.LeftParenthesis, n.LoopVariable, n.Identifier,
		n.InKeyword, n.Iterable, n.RightParenthesis, n.Body)
}
func (n *ForEachStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitForEachStatement(n)
}
func (n *ForEachStatement) statementNode() {}

// ForStatement is "for (init; condition; updaters) body". The initializer is
// either a variable list or an expression; both may be nil.
type ForStatement struct {
	baseNode
	ForKeyword       *token.Token
	LeftParenthesis  *token.Token
	Variables        *VariableDeclarationList
	Initialization   Expression
	LeftSeparator    *token.Token
	Condition        Expression
	RightSeparator   *token.Token
	Updaters         *NodeList[Expression]
	RightParenthesis *token.Token
	Body             Statement
}

func NewForStatement(forKeyword, leftParenthesis *token.Token, variables *VariableDeclarationList,
	initialization Expression, leftSeparator *token.Token, condition Expression, rightSeparator *token.Token,
	updaters []Expression, rightParenthesis *token.Token, body Statement) *ForStatement {
	n := &ForStatement{ForKeyword: forKeyword, LeftParenthesis: leftParenthesis, LeftSeparator: leftSeparator,
		RightSeparator: rightSeparator, RightParenthesis: rightParenthesis}
	n.Variables = becomeParentOf(n, variables)
	n.Initialization = becomeParentOf(n, initialization)
	n.Condition = becomeParentOf(n, condition)
	n.Updaters = newNodeListOf(n, updaters)
	n.Body = becomeParentOf(n, body)
	return n
}

func (n *ForStatement) BeginToken() *token.Token { return n.ForKeyword }
func (n *ForStatement) EndToken() *token.Token   { return endOf(n) }
func (n *ForStatement) ChildEntities() []interface{} {
	return entities(n.ForKeyword, n.LeftParenthesis, n.Variables, n.Initialization, n.LeftSeparator,
		n.Condition, n.RightSeparator, n.Updaters, n.RightParenthesis, n.Body)
}
func (n *ForStatement) Accept(visitor Visitor) interface{} { return visitor.VisitForStatement(n) }
func (n *ForStatement) statementNode()                     {}

// FunctionDeclarationStatement wraps a local function declaration.
type FunctionDeclarationStatement struct {
	baseNode
	FunctionDeclaration *FunctionDeclaration
}

func NewFunctionDeclarationStatement(functionDeclaration *FunctionDeclaration) *FunctionDeclarationStatement {
	n := &FunctionDeclarationStatement{}
	n.FunctionDeclaration = becomeParentOf(n, functionDeclaration)
	return n
}

func (n *FunctionDeclarationStatement) BeginToken() *token.Token { return beginOf(n) }
func (n *FunctionDeclarationStatement) EndToken() *token.Token   { return endOf(n) }
func (n *FunctionDeclarationStatement) ChildEntities() []interface{} {
	return entities(n.FunctionDeclaration)
}
func (n *FunctionDeclarationStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitFunctionDeclarationStatement(n)
}
func (n *FunctionDeclarationStatement) statementNode() {}

// IfStatement is "if (condition) then else otherwise". ElseKeyword is present
// iff ElseStatement is.
type IfStatement struct {
	baseNode
	IfKeyword        *token.Token
	LeftParenthesis  *token.Token
	Condition        Expression
	RightParenthesis *token.Token
	ThenStatement    Statement
	ElseKeyword      *token.Token
	ElseStatement    Statement
}

func NewIfStatement(ifKeyword, leftParenthesis *token.Token, condition Expression, rightParenthesis *token.Token,
	thenStatement Statement, elseKeyword *token.Token, elseStatement Statement) *IfStatement {
	n := &IfStatement{IfKeyword: ifKeyword, LeftParenthesis: leftParenthesis, RightParenthesis: rightParenthesis,
		ElseKeyword: elseKeyword}
	n.Condition = becomeParentOf(n, condition)
	n.ThenStatement = becomeParentOf(n, thenStatement)
	n.ElseStatement = becomeParentOf(n, elseStatement)
	return n
}

func (n *IfStatement) BeginToken() *token.Token { return n.IfKeyword }
func (n *IfStatement) EndToken() *token.Token   { return endOf(n) }
func (n *IfStatement) ChildEntities() []interface{} {
	return entities(n.IfKeyword, n.LeftParenthesis, n.Condition, n.RightParenthesis, n.ThenStatement,
		n.ElseKeyword, n.ElseStatement)
}
func (n *IfStatement) Accept(visitor Visitor) interface{} { return visitor.VisitIfStatement(n) }
func (n *IfStatement) statementNode()                     {}

// Label is "name:".
type Label struct {
	baseNode
	Label *SimpleIdentifier
	Colon *token.Token
}

func NewLabel(label *SimpleIdentifier, colon *token.Token) *Label {
	n := &Label{Colon: colon}
	n.Label = becomeParentOf(n, label)
	return n
}

func (n *Label) BeginToken() *token.Token           { return beginOf(n) }
func (n *Label) EndToken() *token.Token             { return n.Colon }
func (n *Label) ChildEntities() []interface{}       { return entities(n.Label, n.Colon) }
func (n *Label) Accept(visitor Visitor) interface{} { return visitor.VisitLabel(n) }

// LabeledStatement is "a: b: statement".
type LabeledStatement struct {
	baseNode
	Labels    *NodeList[*Label]
	Statement Statement
}

func NewLabeledStatement(labels []*Label, statement Statement) *LabeledStatement {
	n := &LabeledStatement{}
	n.Labels = newNodeListOf(n, labels)
	n.Statement = becomeParentOf(n, statement)
	return n
}

func (n *LabeledStatement) BeginToken() *token.Token { return beginOf(n) }
func (n *LabeledStatement) EndToken() *token.Token   { return endOf(n) }
func (n *LabeledStatement) ChildEntities() []interface{} {
	return entities(n.Labels, n.Statement)
}
func (n *LabeledStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitLabeledStatement(n)
}
func (n *LabeledStatement) statementNode() {}

// ReturnStatement is "return expression;". Expression may be nil.
type ReturnStatement struct {
	baseNode
	Keyword    *token.Token
	Expression Expression
	Semicolon  *token.Token
}

func NewReturnStatement(keyword *token.Token, expression Expression, semicolon *token.Token) *ReturnStatement {
	n := &ReturnStatement{Keyword: keyword, Semicolon: semicolon}
	n.Expression = becomeParentOf(n, expression)
	return n
}

func (n *ReturnStatement) BeginToken() *token.Token { return n.Keyword }
func (n *ReturnStatement) EndToken() *token.Token   { return n.Semicolon }
func (n *ReturnStatement) ChildEntities() []interface{} {
	return entities(n.Keyword, n.Expression, n.Semicolon)
}
func (n *ReturnStatement) Accept(visitor Visitor) interface{} { return visitor.VisitReturnStatement(n) }
func (n *ReturnStatement) statementNode()                     {}

// SwitchStatement is "switch (expression) { members }".
type SwitchStatement struct {
	baseNode
	Keyword          *token.Token
	LeftParenthesis  *token.Token
	Expression       Expression
	RightParenthesis *token.Token
	LeftBracket      *token.Token
	Members          *NodeList[SwitchMember]
	RightBracket     *token.Token
}

func NewSwitchStatement(keyword, leftParenthesis *token.Token, expression Expression, rightParenthesis,
	leftBracket *token.Token, members []SwitchMember, rightBracket *token.Token) *SwitchStatement {
	n := &SwitchStatement{Keyword: keyword, LeftParenthesis: leftParenthesis, RightParenthesis: rightParenthesis,
		LeftBracket: leftBracket, RightBracket: rightBracket}
	n.Expression = becomeParentOf(n, expression)
	n.Members = newNodeListOf(n, members)
	return n
}

func (n *SwitchStatement) BeginToken() *token.Token { return n.Keyword }
func (n *SwitchStatement) EndToken() *token.Token   { return n.RightBracket }
func (n *SwitchStatement) ChildEntities() []interface{} {
	return entities(n.Keyword, n.LeftParenthesis, n.Expression, n.RightParenthesis, n.LeftBracket,
		n.Members, n.RightBracket)
}
func (n *SwitchStatement) Accept(visitor Visitor) interface{} { return visitor.VisitSwitchStatement(n) }
func (n *SwitchStatement) statementNode()                     {}

// SwitchCase is "labels case expression: statements".
type SwitchCase struct {
	baseNode
	Labels     *NodeList[*Label]
	Keyword    *token.Token
	Expression Expression
	Colon      *token.Token
	Statements *NodeList[Statement]
}

func NewSwitchCase(labels []*Label, keyword *token.Token, expression Expression, colon *token.Token,
	statements []Statement) *SwitchCase {
	n := &SwitchCase{Keyword: keyword, Colon: colon}
	n.Labels = newNodeListOf(n, labels)
	n.Expression = becomeParentOf(n, expression)
	n.Statements = newNodeListOf(n, statements)
	return n
}

func (n *SwitchCase) BeginToken() *token.Token { return beginOf(n) }
func (n *SwitchCase) EndToken() *token.Token   { return endOf(n) }
func (n *SwitchCase) ChildEntities() []interface{} {
	return entities(n.Labels, n.Keyword, n.Expression, n.Colon, n.Statements)
}
func (n *SwitchCase) Accept(visitor Visitor) interface{} { return visitor.VisitSwitchCase(n) }
func (n *SwitchCase) switchMemberNode()                  {}

// SwitchDefault is "labels default: statements".
type SwitchDefault struct {
	baseNode
	Labels     *NodeList[*Label]
	Keyword    *token.Token
	Colon      *token.Token
	Statements *NodeList[Statement]
}

func NewSwitchDefault(labels []*Label, keyword, colon *token.Token, statements []Statement) *SwitchDefault {
	n := &SwitchDefault{Keyword: keyword, Colon: colon}
	n.Labels = newNodeListOf(n, labels)
	n.Statements = newNodeListOf(n, statements)
	return n
}

func (n *SwitchDefault) BeginToken() *token.Token { return beginOf(n) }
func (n *SwitchDefault) EndToken() *token.Token   { return endOf(n) }
func (n *SwitchDefault) ChildEntities() []interface{} {
	return entities(n.Labels, n.Keyword, n.Colon, n.Statements)
}
func (n *SwitchDefault) Accept(visitor Visitor) interface{} { return visitor.VisitSwitchDefault(n) }
func (n *SwitchDefault) switchMemberNode()                  {}

// TryStatement is "try body catches finally finallyBlock". FinallyKeyword is
// present iff FinallyBlock is.
type TryStatement struct {
	baseNode
	TryKeyword     *token.Token
	Body           *Block
	CatchClauses   *NodeList[*CatchClause]
	FinallyKeyword *token.Token
	FinallyBlock   *Block
}

func NewTryStatement(tryKeyword *token.Token, body *Block, catchClauses []*CatchClause,
	finallyKeyword *token.Token, finallyBlock *Block) *TryStatement {
	n := &TryStatement{TryKeyword: tryKeyword, FinallyKeyword: finallyKeyword}
	n.Body = becomeParentOf(n, body)
	n.CatchClauses = newNodeListOf(n, catchClauses)
	n.FinallyBlock = becomeParentOf(n, finallyBlock)
	return n
}

func (n *TryStatement) BeginToken() *token.Token { return n.TryKeyword }
func (n *TryStatement) EndToken() *token.Token   { return endOf(n) }
func (n *TryStatement) ChildEntities() []interface{} {
	return entities(n.TryKeyword, n.Body, n.CatchClauses, n.FinallyKeyword, n.FinallyBlock)
}
func (n *TryStatement) Accept(visitor Visitor) interface{} { return visitor.VisitTryStatement(n) }
func (n *TryStatement) statementNode()                     {}

// CatchClause is "on Type catch (e, s) body". OnKeyword is present iff
// ExceptionType is; CatchKeyword and the parentheses are present iff
// ExceptionParameter is; Comma is present iff StackTraceParameter is.
type CatchClause struct {
	baseNode
	OnKeyword           *token.Token
	ExceptionType       *TypeName
	CatchKeyword        *token.Token
	LeftParenthesis     *token.Token
	ExceptionParameter  *SimpleIdentifier
	Comma               *token.Token
	StackTraceParameter *SimpleIdentifier
	RightParenthesis    *token.Token
	Body                *Block
}

func NewCatchClause(onKeyword *token.Token, exceptionType *TypeName, catchKeyword, leftParenthesis *token.Token,
	exceptionParameter *SimpleIdentifier, comma *token.Token, stackTraceParameter *SimpleIdentifier,
	rightParenthesis *token.Token, body *Block) *CatchClause {
	n := &CatchClause{OnKeyword: onKeyword, CatchKeyword: catchKeyword, LeftParenthesis: leftParenthesis,
		Comma: comma, RightParenthesis: rightParenthesis}
	n.ExceptionType = becomeParentOf(n, exceptionType)
	n.ExceptionParameter = becomeParentOf(n, exceptionParameter)
	n.StackTraceParameter = becomeParentOf(n, stackTraceParameter)
	n.Body = becomeParentOf(n, body)
	return n
}

func (n *CatchClause) BeginToken() *token.Token { return beginOf(n) }
func (n *CatchClause) EndToken() *token.Token   { return endOf(n) }
func (n *CatchClause) ChildEntities() []interface{} {
	return entities(n.OnKeyword, n.ExceptionType, n.CatchKeyword, n.LeftParenthesis, n.ExceptionParameter,
		n.Comma, n.StackTraceParameter, n.RightParenthesis, n.Body)
}
func (n *CatchClause) Accept(visitor Visitor) interface{} { return visitor.VisitCatchClause(n) }

// VariableDeclarationStatement is "var a = 1, b;".
type VariableDeclarationStatement struct {
	baseNode
	VariableList *VariableDeclarationList
	Semicolon    *token.Token
}

func NewVariableDeclarationStatement(variableList *VariableDeclarationList, semicolon *token.Token) *VariableDeclarationStatement {
	n := &VariableDeclarationStatement{Semicolon: semicolon}
	n.VariableList = becomeParentOf(n, variableList)
	return n
}

func (n *VariableDeclarationStatement) BeginToken() *token.Token { return beginOf(n) }
func (n *VariableDeclarationStatement) EndToken() *token.Token   { return n.Semicolon }
func (n *VariableDeclarationStatement) ChildEntities() []interface{} {
	return entities(n.VariableList, n.Semicolon)
}
func (n *VariableDeclarationStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitVariableDeclarationStatement(n)
}
func (n *VariableDeclarationStatement) statementNode() {}

// WhileStatement is "while (condition) body".
type WhileStatement struct {
	baseNode
	Keyword          *token.Token
	LeftParenthesis  *token.Token
	Condition        Expression
	RightParenthesis *token.Token
	Body             Statement
}

func NewWhileStatement(keyword, leftParenthesis *token.Token, condition Expression, rightParenthesis *token.Token,
	body Statement) *WhileStatement {
	n := &WhileStatement{Keyword: keyword, LeftParenthesis: leftParenthesis, RightParenthesis: rightParenthesis}
	n.Condition = becomeParentOf(n, condition)
	n.Body = becomeParentOf(n, body)
	return n
}

func (n *WhileStatement) BeginToken() *token.Token { return n.Keyword }
func (n *WhileStatement) EndToken() *token.Token   { return endOf(n) }
func (n *WhileStatement) ChildEntities() []interface{} {
	return entities(n.Keyword, n.LeftParenthesis, n.Condition, n.RightParenthesis, n.Body)
}
func (n *WhileStatement) Accept(visitor Visitor) interface{} { return visitor.VisitWhileStatement(n) }
func (n *WhileStatement) statementNode()                     {}

// YieldStatement is "yield expression;" or "yield* expression;".
type YieldStatement struct {
	baseNode
	YieldKeyword *token.Token
	Star         *token.Token
	Expression   Expression
	Semicolon    *token.Token
}

func NewYieldStatement(yieldKeyword, star *token.Token, expression Expression, semicolon *token.Token) *YieldStatement {
	n := &YieldStatement{YieldKeyword: yieldKeyword, Star: star, Semicolon: semicolon}
	n.Expression = becomeParentOf(n, expression)
	return n
}

func (n *YieldStatement) BeginToken() *token.Token { return n.YieldKeyword }
func (n *YieldStatement) EndToken() *token.Token   { return n.Semicolon }
func (n *YieldStatement) ChildEntities() []interface{} {
	return entities(n.YieldKeyword, n.Star, n.Expression, n.Semicolon)
}
func (n *YieldStatement) Accept(visitor Visitor) interface{} { return visitor.VisitYieldStatement(n) }
func (n *YieldStatement) statementNode()                     {}

// IsEach reports whether the statement is a "yield*".
func (n *YieldStatement) IsEach() bool { return n.Star != nil }

// ===== Function bodies =====

// BlockFunctionBody is "async* { ... }" and friends. Keyword is the "async" or
// "sync" modifier and Star the generator marker; both may be nil.
type BlockFunctionBody struct {
	baseNode
	Keyword *token.Token
	Star    *token.Token
	Block   *Block
}

func NewBlockFunctionBody(keyword, star *token.Token, block *Block) *BlockFunctionBody {
	n := &BlockFunctionBody{Keyword: keyword, Star: star}
	n.Block = becomeParentOf(n, block)
	return n
}

func (n *BlockFunctionBody) BeginToken() *token.Token { return beginOf(n) }
func (n *BlockFunctionBody) EndToken() *token.Token   { return endOf(n) }
func (n *BlockFunctionBody) ChildEntities() []interface{} {
	return entities(n.Keyword, n.Star, n.Block)
}
func (n *BlockFunctionBody) Accept(visitor Visitor) interface{} {
	return visitor.VisitBlockFunctionBody(n)
}
func (n *BlockFunctionBody) functionBodyNode() {}

// IsAsync reports whether the body is marked async.
func (n *BlockFunctionBody) IsAsync() bool { return modifierIs(n.Keyword, "async") }

// IsGenerator reports whether the body is a generator.
func (n *BlockFunctionBody) IsGenerator() bool { return n.Star != nil }

// ExpressionFunctionBody is "async => expression;". The semicolon is nil when
// the body belongs to a function expression used as a value.
type ExpressionFunctionBody struct {
	baseNode
	Keyword            *token.Token
	FunctionDefinition *token.Token
	Expression         Expression
	Semicolon          *token.Token
}

func NewExpressionFunctionBody(keyword, functionDefinition *token.Token, expression Expression, semicolon *token.Token) *ExpressionFunctionBody {
	n := &ExpressionFunctionBody{Keyword: keyword, FunctionDefinition: functionDefinition, Semicolon: semicolon}
	n.Expression = becomeParentOf(n, expression)
	return n
}

func (n *ExpressionFunctionBody) BeginToken() *token.Token { return beginOf(n) }
func (n *ExpressionFunctionBody) EndToken() *token.Token   { return endOf(n) }
func (n *ExpressionFunctionBody) ChildEntities() []interface{} {
	return entities(n.Keyword, n.FunctionDefinition, n.Expression, n.Semicolon)
}
func (n *ExpressionFunctionBody) Accept(visitor Visitor) interface{} {
	return visitor.VisitExpressionFunctionBody(n)
}
func (n *ExpressionFunctionBody) functionBodyNode() {}

// IsAsync reports whether the body is marked async.
func (n *ExpressionFunctionBody) IsAsync() bool { return modifierIs(n.Keyword, "async") }

// EmptyFunctionBody is the ";" of an abstract or external member.
type EmptyFunctionBody struct {
	baseNode
	Semicolon *token.Token
}

func NewEmptyFunctionBody(semicolon *token.Token) *EmptyFunctionBody {
	return &EmptyFunctionBody{Semicolon: semicolon}
}

func (n *EmptyFunctionBody) BeginToken() *token.Token     { return n.Semicolon }
func (n *EmptyFunctionBody) EndToken() *token.Token       { return n.Semicolon }
func (n *EmptyFunctionBody) ChildEntities() []interface{} { return entities(n.Semicolon) }
func (n *EmptyFunctionBody) Accept(visitor Visitor) interface{} {
	return visitor.VisitEmptyFunctionBody(n)
}
func (n *EmptyFunctionBody) functionBodyNode() {}

// NativeFunctionBody is "native 'name';".
type NativeFunctionBody struct {
	baseNode
	NativeToken   *token.Token
	StringLiteral *SimpleStringLiteral
	Semicolon     *token.Token
}

func NewNativeFunctionBody(nativeToken *token.Token, stringLiteral *SimpleStringLiteral, semicolon *token.Token) *NativeFunctionBody {
	n := &NativeFunctionBody{NativeToken: nativeToken, Semicolon: semicolon}
	n.StringLiteral = becomeParentOf(n, stringLiteral)
	return n
}

func (n *NativeFunctionBody) BeginToken() *token.Token { return n.NativeToken }
func (n *NativeFunctionBody) EndToken() *token.Token   { return n.Semicolon }
func (n *NativeFunctionBody) ChildEntities() []interface{} {
	return entities(n.NativeToken, n.StringLiteral, n.Semicolon)
}
func (n *NativeFunctionBody) Accept(visitor Visitor) interface{} {
	return visitor.VisitNativeFunctionBody(n)
}
func (n *NativeFunctionBody) functionBodyNode() {}

func modifierIs(t *token.Token, lexeme string) bool {
	return t != nil && t.Lexeme() == lexeme
}
