package astfactory

import (
	"github.com/orizon-lang/astkit/internal/ast"
	"github.com/orizon-lang/astkit/internal/token"
)

// AssertStatement creates "assert(condition);".
func AssertStatement(condition ast.Expression) *ast.AssertStatement {
	return ast.NewAssertStatement(kw(token.KwAssert), tok(token.OpenParen), condition, tok(token.CloseParen),
		tok(token.Semicolon))
}

// Block creates "{ statements }".
func Block(statements ...ast.Statement) *ast.Block {
	return ast.NewBlock(tok(token.OpenCurlyBracket), List(statements...), tok(token.CloseCurlyBracket))
}

// BreakStatement creates "break;" or, with a label, "break label;".
func BreakStatement(label string) *ast.BreakStatement {
	return ast.NewBreakStatement(kw(token.KwBreak), optIdentifier(label), tok(token.Semicolon))
}

// ContinueStatement creates "continue;" or "continue label;".
func ContinueStatement(label string) *ast.ContinueStatement {
	return ast.NewContinueStatement(kw(token.KwContinue), optIdentifier(label), tok(token.Semicolon))
}

// DoStatement creates "do body while (condition);".
func DoStatement(body ast.Statement, condition ast.Expression) *ast.DoStatement {
	return ast.NewDoStatement(kw(token.KwDo), body, kw(token.KwWhile), tok(token.OpenParen), condition,
		tok(token.CloseParen), tok(token.Semicolon))
}

// EmptyStatement creates ";".
func EmptyStatement() *ast.EmptyStatement {
	return ast.NewEmptyStatement(tok(token.Semicolon))
}

// ExpressionStatement creates "expression;".
func ExpressionStatement(expression ast.Expression) *ast.ExpressionStatement {
	return ast.NewExpressionStatement(expression, tok(token.Semicolon))
}

// ForEachStatement creates "for (var x in iterable) body".
func ForEachStatement(loopVariable *ast.DeclaredIdentifier, iterable ast.Expression, body ast.Statement) *ast.ForEachStatement {
	return ast.NewForEachStatement(nil, kw(token.KwFor), tok(token.OpenParen), loopVariable, kw(token.KwIn), iterable,
		tok(token.CloseParen), body)
}

// ForEachStatementWithIdentifier creates "for (x in iterable) body" over an
// existing variable.
func ForEachStatementWithIdentifier(identifier *ast.SimpleIdentifier, iterable ast.Expression, body ast.Statement) *ast.ForEachStatement {
	return ast.NewForEachStatementWithIdentifier(nil, kw(token.KwFor), tok(token.OpenParen), identifier, kw(token.KwIn),
		iterable, tok(token.CloseParen), body)
}

// AwaitForEachStatement creates "await for (var x in stream) body".
func AwaitForEachStatement(loopVariable *ast.DeclaredIdentifier, iterable ast.Expression, body ast.Statement) *ast.ForEachStatement {
	return ast.NewForEachStatement(contextual("await"), kw(token.KwFor), tok(token.OpenParen), loopVariable,
		kw(token.KwIn), iterable, tok(token.CloseParen), body)
}

// AwaitForEachStatementWithIdentifier creates "await for (x in stream) body".
func AwaitForEachStatementWithIdentifier(identifier *ast.SimpleIdentifier, iterable ast.Expression, body ast.Statement) *ast.ForEachStatement {
	return ast.NewForEachStatementWithIdentifier(contextual("await"), kw(token.KwFor), tok(token.OpenParen), identifier,
		kw(token.KwIn), iterable, tok(token.CloseParen), body)
}

// ForStatement creates "for (initialization; condition; updaters) body".
// Any of the three header parts may be nil or empty.
func ForStatement(initialization, condition ast.Expression, updaters []ast.Expression, body ast.Statement) *ast.ForStatement {
	return ast.NewForStatement(kw(token.KwFor), tok(token.OpenParen), nil, initialization, tok(token.Semicolon),
		condition, tok(token.Semicolon), List(updaters...), tok(token.CloseParen), body)
}

// ForStatementWithVariables creates "for (var i = 0; condition; updaters) body".
func ForStatementWithVariables(variables *ast.VariableDeclarationList, condition ast.Expression,
	updaters []ast.Expression, body ast.Statement) *ast.ForStatement {
	return ast.NewForStatement(kw(token.KwFor), tok(token.OpenParen), variables, nil, tok(token.Semicolon),
		condition, tok(token.Semicolon), List(updaters...), tok(token.CloseParen), body)
}

// FunctionDeclarationStatement wraps a local function declaration.
func FunctionDeclarationStatement(returnType *ast.TypeName, property token.Keyword, name string,
	function *ast.FunctionExpression) *ast.FunctionDeclarationStatement {
	return ast.NewFunctionDeclarationStatement(FunctionDeclaration(returnType, property, name, function))
}

// IfStatement creates "if (condition) then" with an optional else branch.
func IfStatement(condition ast.Expression, thenStatement, elseStatement ast.Statement) *ast.IfStatement {
	return ast.NewIfStatement(kw(token.KwIf), tok(token.OpenParen), condition, tok(token.CloseParen), thenStatement,
		optKeywordIf(!ast.IsNil(elseStatement), token.KwElse), elseStatement)
}

// LabeledStatement creates "a: b: statement".
func LabeledStatement(labels []*ast.Label, statement ast.Statement) *ast.LabeledStatement {
	return ast.NewLabeledStatement(List(labels...), statement)
}

// ReturnStatement creates "return expression;"; a nil expression yields
// "return;".
func ReturnStatement(expression ast.Expression) *ast.ReturnStatement {
	return ast.NewReturnStatement(kw(token.KwReturn), expression, tok(token.Semicolon))
}

// SwitchStatement creates "switch (expression) { members }".
func SwitchStatement(expression ast.Expression, members ...ast.SwitchMember) *ast.SwitchStatement {
	return ast.NewSwitchStatement(kw(token.KwSwitch), tok(token.OpenParen), expression, tok(token.CloseParen),
		tok(token.OpenCurlyBracket), List(members...), tok(token.CloseCurlyBracket))
}

// SwitchCase creates "case expression: statements".
func SwitchCase(expression ast.Expression, statements ...ast.Statement) *ast.SwitchCase {
	return SwitchCaseWithLabels(nil, expression, statements...)
}

// SwitchCaseWithLabels creates "l: case expression: statements".
func SwitchCaseWithLabels(labels []*ast.Label, expression ast.Expression, statements ...ast.Statement) *ast.SwitchCase {
	return ast.NewSwitchCase(List(labels...), kw(token.KwCase), expression, tok(token.Colon), List(statements...))
}

// SwitchDefault creates "default: statements".
func SwitchDefault(statements ...ast.Statement) *ast.SwitchDefault {
	return SwitchDefaultWithLabels(nil, statements...)
}

// SwitchDefaultWithLabels creates "l: default: statements".
func SwitchDefaultWithLabels(labels []*ast.Label, statements ...ast.Statement) *ast.SwitchDefault {
	return ast.NewSwitchDefault(List(labels...), kw(token.KwDefault), tok(token.Colon), List(statements...))
}

// TryOptions holds the optional finally block of a try statement.
type TryOptions struct {
	Finally *ast.Block
}

// TryStatement creates "try body catchClauses finally block".
func TryStatement(body *ast.Block, opts TryOptions, catchClauses ...*ast.CatchClause) *ast.TryStatement {
	return ast.NewTryStatement(kw(token.KwTry), body, List(catchClauses...),
		optKeywordIf(opts.Finally != nil, token.KwFinally), opts.Finally)
}

// CatchClauseOptions selects which parts of "on Type catch (e, s)" are
// present. StackTraceParameter is only used together with
// ExceptionParameter.
type CatchClauseOptions struct {
	ExceptionType       *ast.TypeName
	ExceptionParameter  string
	StackTraceParameter string
}

// CatchClause creates "on Type catch (e, s) { statements }".
func CatchClause(opts CatchClauseOptions, statements ...ast.Statement) *ast.CatchClause {
	hasException := opts.ExceptionParameter != ""
	hasStackTrace := hasException && opts.StackTraceParameter != ""

	var stackTrace *ast.SimpleIdentifier
	if hasStackTrace {
		stackTrace = Identifier(opts.StackTraceParameter)
	}

	return ast.NewCatchClause(
		optContextual(opts.ExceptionType != nil, "on"),
		opts.ExceptionType,
		optKeywordIf(hasException, token.KwCatch),
		optTok(hasException, token.OpenParen),
		optIdentifier(opts.ExceptionParameter),
		optTok(hasStackTrace, token.Comma),
		stackTrace,
		optTok(hasException, token.CloseParen),
		Block(statements...))
}

// VariableDeclarationStatement creates "var a = 1, b;".
func VariableDeclarationStatement(keyword token.Keyword, typ *ast.TypeName,
	variables ...*ast.VariableDeclaration) *ast.VariableDeclarationStatement {
	return ast.NewVariableDeclarationStatement(VariableDeclarationList(keyword, typ, variables...), tok(token.Semicolon))
}

// WhileStatement creates "while (condition) body".
func WhileStatement(condition ast.Expression, body ast.Statement) *ast.WhileStatement {
	return ast.NewWhileStatement(kw(token.KwWhile), tok(token.OpenParen), condition, tok(token.CloseParen), body)
}

// YieldStatement creates "yield expression;".
func YieldStatement(expression ast.Expression) *ast.YieldStatement {
	return ast.NewYieldStatement(contextual("yield"), nil, expression, tok(token.Semicolon))
}

// YieldEachStatement creates "yield* expression;".
func YieldEachStatement(expression ast.Expression) *ast.YieldStatement {
	return ast.NewYieldStatement(contextual("yield"), tok(token.Star), expression, tok(token.Semicolon))
}

// ===== Function bodies =====

// BlockFunctionBody creates a plain "{ statements }" body.
func BlockFunctionBody(statements ...ast.Statement) *ast.BlockFunctionBody {
	return ast.NewBlockFunctionBody(nil, nil, Block(statements...))
}

// BlockFunctionBodyFromBlock wraps an existing block as a function body.
func BlockFunctionBodyFromBlock(block *ast.Block) *ast.BlockFunctionBody {
	return ast.NewBlockFunctionBody(nil, nil, block)
}

// AsyncBlockFunctionBody creates "async { statements }".
func AsyncBlockFunctionBody(statements ...ast.Statement) *ast.BlockFunctionBody {
	return ast.NewBlockFunctionBody(contextual("async"), nil, Block(statements...))
}

// AsyncGeneratorBlockFunctionBody creates "async* { statements }".
func AsyncGeneratorBlockFunctionBody(statements ...ast.Statement) *ast.BlockFunctionBody {
	return ast.NewBlockFunctionBody(contextual("async"), tok(token.Star), Block(statements...))
}

// SyncBlockFunctionBody creates "sync { statements }".
func SyncBlockFunctionBody(statements ...ast.Statement) *ast.BlockFunctionBody {
	return ast.NewBlockFunctionBody(contextual("sync"), nil, Block(statements...))
}

// SyncGeneratorBlockFunctionBody creates "sync* { statements }".
func SyncGeneratorBlockFunctionBody(statements ...ast.Statement) *ast.BlockFunctionBody {
	return ast.NewBlockFunctionBody(contextual("sync"), tok(token.Star), Block(statements...))
}

// ExpressionFunctionBody creates "=> expression;".
func ExpressionFunctionBody(expression ast.Expression) *ast.ExpressionFunctionBody {
	return ast.NewExpressionFunctionBody(nil, tok(token.Function), expression, tok(token.Semicolon))
}

// AsyncExpressionFunctionBody creates "async => expression;".
func AsyncExpressionFunctionBody(expression ast.Expression) *ast.ExpressionFunctionBody {
	return ast.NewExpressionFunctionBody(contextual("async"), tok(token.Function), expression, tok(token.Semicolon))
}

// EmptyFunctionBody creates the ";" body of an abstract or external member.
func EmptyFunctionBody() *ast.EmptyFunctionBody {
	return ast.NewEmptyFunctionBody(tok(token.Semicolon))
}

// NativeFunctionBody creates "native 'name';".
func NativeFunctionBody(nativeMethodName string) *ast.NativeFunctionBody {
	return ast.NewNativeFunctionBody(token.FromText("native"), String(nativeMethodName), tok(token.Semicolon))
}
