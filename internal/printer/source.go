package printer

import (
	"strings"

	"github.com/orizon-lang/astkit/internal/ast"
	"github.com/orizon-lang/astkit/internal/token"
)

// sourceWriter is the ToSource visitor. Fixed text is written through the
// node's own tokens whenever they are present so their offsets get
// recorded; the fallback spelling is used only for incomplete trees.
type sourceWriter struct {
	buffer  strings.Builder
	offsets map[*token.Token]int
}

var _ ast.Visitor = (*sourceWriter)(nil)

func newSourceWriter() *sourceWriter {
	return &sourceWriter{offsets: make(map[*token.Token]int)}
}

func (w *sourceWriter) text(s string) {
	w.buffer.WriteString(s)
}

// token writes t, or fallback when t is nil.
func (w *sourceWriter) token(t *token.Token, fallback string) {
	if t == nil {
		w.buffer.WriteString(fallback)
		return
	}
	w.offsets[t] = w.buffer.Len()
	w.buffer.WriteString(t.Lexeme())
}

// mark records t at the current offset without writing it.
func (w *sourceWriter) mark(t *token.Token) {
	if t != nil {
		w.offsets[t] = w.buffer.Len()
	}
}

func (w *sourceWriter) tokenWithSuffix(t *token.Token, suffix string) {
	if t != nil {
		w.token(t, "")
		w.text(suffix)
	}
}

func (w *sourceWriter) node(n ast.Node) {
	if !ast.IsNil(n) {
		n.Accept(w)
	}
}

func (w *sourceWriter) nodeWithPrefix(prefix string, n ast.Node) {
	if !ast.IsNil(n) {
		w.text(prefix)
		n.Accept(w)
	}
}

func (w *sourceWriter) nodeWithSuffix(n ast.Node, suffix string) {
	if !ast.IsNil(n) {
		n.Accept(w)
		w.text(suffix)
	}
}

// functionBody writes prefix before every body except the bare ";".
func (w *sourceWriter) functionBody(prefix string, body ast.FunctionBody) {
	if ast.IsNil(body) {
		return
	}
	if _, empty := body.(*ast.EmptyFunctionBody); !empty {
		w.text(prefix)
	}
	body.Accept(w)
}

func writeList[T ast.Node](w *sourceWriter, list *ast.NodeList[T], separator string) {
	if list == nil {
		return
	}
	for i, n := range list.All() {
		if i > 0 {
			w.text(separator)
		}
		w.node(n)
	}
}

func writeListWithPrefix[T ast.Node](w *sourceWriter, prefix string, list *ast.NodeList[T], separator string) {
	if list == nil || list.IsEmpty() {
		return
	}
	w.text(prefix)
	writeList(w, list, separator)
}

func writeListWithSuffix[T ast.Node](w *sourceWriter, list *ast.NodeList[T], separator, suffix string) {
	if list == nil || list.IsEmpty() {
		return
	}
	writeList(w, list, separator)
	w.text(suffix)
}

// ===== Identifiers and literals =====

func (w *sourceWriter) VisitSimpleIdentifier(n *ast.SimpleIdentifier) interface{} {
	w.token(n.Token, "")
	return nil
}

func (w *sourceWriter) VisitPrefixedIdentifier(n *ast.PrefixedIdentifier) interface{} {
	w.node(n.Prefix)
	w.token(n.Period, ".")
	w.node(n.Identifier)
	return nil
}

func (w *sourceWriter) VisitLibraryIdentifier(n *ast.LibraryIdentifier) interface{} {
	writeList(w, n.Components, ".")
	return nil
}

func (w *sourceWriter) VisitIntegerLiteral(n *ast.IntegerLiteral) interface{} {
	w.token(n.Literal, "")
	return nil
}

func (w *sourceWriter) VisitDoubleLiteral(n *ast.DoubleLiteral) interface{} {
	w.token(n.Literal, "")
	return nil
}

func (w *sourceWriter) VisitBooleanLiteral(n *ast.BooleanLiteral) interface{} {
	w.token(n.Literal, "")
	return nil
}

func (w *sourceWriter) VisitNullLiteral(n *ast.NullLiteral) interface{} {
	w.token(n.Literal, "null")
	return nil
}

func (w *sourceWriter) VisitSimpleStringLiteral(n *ast.SimpleStringLiteral) interface{} {
	w.token(n.Literal, "")
	return nil
}

func (w *sourceWriter) VisitAdjacentStrings(n *ast.AdjacentStrings) interface{} {
	writeList(w, n.Strings, " ")
	return nil
}

func (w *sourceWriter) VisitStringInterpolation(n *ast.StringInterpolation) interface{} {
	writeList(w, n.Elements, "")
	return nil
}

func (w *sourceWriter) VisitInterpolationExpression(n *ast.InterpolationExpression) interface{} {
	if n.RightBracket != nil {
		w.token(n.LeftBracket, "${")
		w.node(n.Expression)
		w.token(n.RightBracket, "}")
		return nil
	}
	w.token(n.LeftBracket, "$")
	w.node(n.Expression)
	return nil
}

func (w *sourceWriter) VisitInterpolationString(n *ast.InterpolationString) interface{} {
	w.token(n.Contents, "")
	return nil
}

func (w *sourceWriter) VisitSymbolLiteral(n *ast.SymbolLiteral) interface{} {
	w.token(n.Poundsign, "#")
	for i, c := range n.Components {
		if i > 0 {
			w.text(".")
		}
		w.token(c, "")
	}
	return nil
}

func (w *sourceWriter) VisitListLiteral(n *ast.ListLiteral) interface{} {
	w.tokenWithSuffix(n.ConstKeyword, " ")
	w.nodeWithSuffix(n.TypeArguments, " ")
	w.token(n.LeftBracket, "[")
	writeList(w, n.Elements, ", ")
	w.token(n.RightBracket, "]")
	return nil
}

func (w *sourceWriter) VisitMapLiteral(n *ast.MapLiteral) interface{} {
	w.tokenWithSuffix(n.ConstKeyword, " ")
	w.nodeWithSuffix(n.TypeArguments, " ")
	w.token(n.LeftBracket, "{")
	writeList(w, n.Entries, ", ")
	w.token(n.RightBracket, "}")
	return nil
}

func (w *sourceWriter) VisitMapLiteralEntry(n *ast.MapLiteralEntry) interface{} {
	w.node(n.Key)
	w.text(" ")
	w.token(n.Separator, ":")
	w.text(" ")
	w.node(n.Value)
	return nil
}

// ===== Expressions =====

func (w *sourceWriter) VisitArgumentList(n *ast.ArgumentList) interface{} {
	w.token(n.LeftParenthesis, "(")
	writeList(w, n.Arguments, ", ")
	w.token(n.RightParenthesis, ")")
	return nil
}

func (w *sourceWriter) VisitAsExpression(n *ast.AsExpression) interface{} {
	w.node(n.Expression)
	w.text(" ")
	w.token(n.AsOperator, "as")
	w.text(" ")
	w.node(n.Type)
	return nil
}

func (w *sourceWriter) VisitAssignmentExpression(n *ast.AssignmentExpression) interface{} {
	w.node(n.LeftHandSide)
	w.text(" ")
	w.token(n.Operator, "=")
	w.text(" ")
	w.node(n.RightHandSide)
	return nil
}

func (w *sourceWriter) VisitAwaitExpression(n *ast.AwaitExpression) interface{} {
	w.token(n.AwaitKeyword, "await")
	w.text(" ")
	w.node(n.Expression)
	return nil
}

func (w *sourceWriter) VisitBinaryExpression(n *ast.BinaryExpression) interface{} {
	w.node(n.LeftOperand)
	w.text(" ")
	w.token(n.Operator, "")
	w.text(" ")
	w.node(n.RightOperand)
	return nil
}

func (w *sourceWriter) VisitCascadeExpression(n *ast.CascadeExpression) interface{} {
	w.node(n.Target)
	writeList(w, n.CascadeSections, "")
	return nil
}

func (w *sourceWriter) VisitConditionalExpression(n *ast.ConditionalExpression) interface{} {
	w.node(n.Condition)
	w.text(" ")
	w.token(n.Question, "?")
	w.text(" ")
	w.node(n.ThenExpression)
	w.text(" ")
	w.token(n.Colon, ":")
	w.text(" ")
	w.node(n.ElseExpression)
	return nil
}

func (w *sourceWriter) VisitFunctionExpression(n *ast.FunctionExpression) interface{} {
	w.node(n.Parameters)
	w.text(" ")
	w.node(n.Body)
	return nil
}

func (w *sourceWriter) VisitFunctionExpressionInvocation(n *ast.FunctionExpressionInvocation) interface{} {
	w.node(n.Function)
	w.node(n.ArgumentList)
	return nil
}

func (w *sourceWriter) VisitIndexExpression(n *ast.IndexExpression) interface{} {
	if n.IsCascaded() {
		w.token(n.Period, "..")
	} else {
		w.node(n.Target)
	}
	w.token(n.LeftBracket, "[")
	w.node(n.Index)
	w.token(n.RightBracket, "]")
	return nil
}

func (w *sourceWriter) VisitInstanceCreationExpression(n *ast.InstanceCreationExpression) interface{} {
	w.tokenWithSuffix(n.Keyword, " ")
	w.node(n.ConstructorName)
	w.node(n.ArgumentList)
	return nil
}

func (w *sourceWriter) VisitIsExpression(n *ast.IsExpression) interface{} {
	w.node(n.Expression)
	w.text(" ")
	w.token(n.IsOperator, "is")
	if n.NotOperator != nil {
		w.token(n.NotOperator, "!")
	}
	w.text(" ")
	w.node(n.Type)
	return nil
}

func (w *sourceWriter) VisitMethodInvocation(n *ast.MethodInvocation) interface{} {
	if n.IsCascaded() {
		w.token(n.Period, "..")
	} else if !ast.IsNil(n.Target) {
		w.node(n.Target)
		w.token(n.Period, ".")
	}
	w.node(n.MethodName)
	w.node(n.ArgumentList)
	return nil
}

func (w *sourceWriter) VisitNamedExpression(n *ast.NamedExpression) interface{} {
	w.node(n.Name)
	w.nodeWithPrefix(" ", n.Expression)
	return nil
}

func (w *sourceWriter) VisitParenthesizedExpression(n *ast.ParenthesizedExpression) interface{} {
	w.token(n.LeftParenthesis, "(")
	w.node(n.Expression)
	w.token(n.RightParenthesis, ")")
	return nil
}

func (w *sourceWriter) VisitPostfixExpression(n *ast.PostfixExpression) interface{} {
	w.node(n.Operand)
	w.token(n.Operator, "")
	return nil
}

func (w *sourceWriter) VisitPrefixExpression(n *ast.PrefixExpression) interface{} {
	w.token(n.Operator, "")
	w.node(n.Operand)
	return nil
}

func (w *sourceWriter) VisitPropertyAccess(n *ast.PropertyAccess) interface{} {
	if n.IsCascaded() {
		w.token(n.Operator, "..")
	} else {
		w.node(n.Target)
		w.token(n.Operator, ".")
	}
	w.node(n.PropertyName)
	return nil
}

func (w *sourceWriter) VisitRethrowExpression(n *ast.RethrowExpression) interface{} {
	w.token(n.Keyword, "rethrow")
	return nil
}

func (w *sourceWriter) VisitSuperExpression(n *ast.SuperExpression) interface{} {
	w.token(n.Keyword, "super")
	return nil
}

func (w *sourceWriter) VisitThisExpression(n *ast.ThisExpression) interface{} {
	w.token(n.Keyword, "this")
	return nil
}

func (w *sourceWriter) VisitThrowExpression(n *ast.ThrowExpression) interface{} {
	w.token(n.Keyword, "throw")
	w.text(" ")
	w.node(n.Expression)
	return nil
}

// ===== Statements =====

func (w *sourceWriter) VisitAssertStatement(n *ast.AssertStatement) interface{} {
	w.token(n.Keyword, "assert")
	w.text(" ")
	w.token(n.LeftParenthesis, "(")
	w.node(n.Condition)
	w.token(n.RightParenthesis, ")")
	w.token(n.Semicolon, ";")
	return nil
}

func (w *sourceWriter) VisitBlock(n *ast.Block) interface{} {
	w.token(n.LeftBracket, "{")
	writeList(w, n.Statements, " ")
	w.token(n.RightBracket, "}")
	return nil
}

func (w *sourceWriter) VisitBreakStatement(n *ast.BreakStatement) interface{} {
	w.token(n.Keyword, "break")
	w.nodeWithPrefix(" ", n.Label)
	w.token(n.Semicolon, ";")
	return nil
}

func (w *sourceWriter) VisitContinueStatement(n *ast.ContinueStatement) interface{} {
	w.token(n.Keyword, "continue")
	w.nodeWithPrefix(" ", n.Label)
	w.token(n.Semicolon, ";")
	return nil
}

func (w *sourceWriter) VisitDoStatement(n *ast.DoStatement) interface{} {
	w.token(n.DoKeyword, "do")
	w.text(" ")
	w.node(n.Body)
	w.text(" ")
	w.token(n.WhileKeyword, "while")
	w.text(" ")
	w.token(n.LeftParenthesis, "(")
	w.node(n.Condition)
	w.token(n.RightParenthesis, ")")
	w.token(n.Semicolon, ";")
	return nil
}

func (w *sourceWriter) VisitEmptyStatement(n *ast.EmptyStatement) interface{} {
	w.token(n.Semicolon, ";")
	return nil
}

func (w *sourceWriter) VisitExpressionStatement(n *ast.ExpressionStatement) interface{} {
	w.node(n.Expression)
	w.token(n.Semicolon, ";")
	return nil
}

func (w *sourceWriter) VisitForEachStatement(n *ast.ForEachStatement) interface{} {
	w.tokenWithSuffix(n.AwaitKeyword, " ")
	w.token(n.ForKeyword, "for")
	w.text(" ")
	w.token(n.LeftParenthesis, "(")
	if n.LoopVariable == nil {
		w.node(n.Identifier)
	} else {
		w.node(n.LoopVariable)
	}
	w.text(" ")
	w.token(n.InKeyword, "in")
	w.text(" ")
	w.node(n.Iterable)
	w.token(n.RightParenthesis, ")")
	w.text(" ")
	w.node(n.Body)
	return nil
}

func (w *sourceWriter) VisitForStatement(n *ast.ForStatement) interface{} {
	w.token(n.ForKeyword, "for")
	w.text(" ")
	w.token(n.LeftParenthesis, "(")
	if !ast.IsNil(n.Initialization) {
		w.node(n.Initialization)
	} else {
		w.node(n.Variables)
	}
	w.token(n.LeftSeparator, ";")
	w.nodeWithPrefix(" ", n.Condition)
	w.token(n.RightSeparator, ";")
	writeListWithPrefix(w, " ", n.Updaters, ", ")
	w.token(n.RightParenthesis, ")")
	w.text(" ")
	w.node(n.Body)
	return nil
}

func (w *sourceWriter) VisitFunctionDeclarationStatement(n *ast.FunctionDeclarationStatement) interface{} {
	w.node(n.FunctionDeclaration)
	return nil
}

func (w *sourceWriter) VisitIfStatement(n *ast.IfStatement) interface{} {
	w.token(n.IfKeyword, "if")
	w.text(" ")
	w.token(n.LeftParenthesis, "(")
	w.node(n.Condition)
	w.token(n.RightParenthesis, ")")
	w.text(" ")
	w.node(n.ThenStatement)
	if !ast.IsNil(n.ElseStatement) {
		w.text(" ")
		w.token(n.ElseKeyword, "else")
		w.text(" ")
		w.node(n.ElseStatement)
	}
	return nil
}

func (w *sourceWriter) VisitLabel(n *ast.Label) interface{} {
	w.node(n.Label)
	w.token(n.Colon, ":")
	return nil
}

func (w *sourceWriter) VisitLabeledStatement(n *ast.LabeledStatement) interface{} {
	writeListWithSuffix(w, n.Labels, " ", " ")
	w.node(n.Statement)
	return nil
}

func (w *sourceWriter) VisitReturnStatement(n *ast.ReturnStatement) interface{} {
	w.token(n.Keyword, "return")
	w.nodeWithPrefix(" ", n.Expression)
	w.token(n.Semicolon, ";")
	return nil
}

func (w *sourceWriter) VisitSwitchStatement(n *ast.SwitchStatement) interface{} {
	w.token(n.Keyword, "switch")
	w.text(" ")
	w.token(n.LeftParenthesis, "(")
	w.node(n.Expression)
	w.token(n.RightParenthesis, ")")
	w.text(" ")
	w.token(n.LeftBracket, "{")
	writeList(w, n.Members, " ")
	w.token(n.RightBracket, "}")
	return nil
}

func (w *sourceWriter) VisitSwitchCase(n *ast.SwitchCase) interface{} {
	writeListWithSuffix(w, n.Labels, " ", " ")
	w.token(n.Keyword, "case")
	w.text(" ")
	w.node(n.Expression)
	w.token(n.Colon, ":")
	w.text(" ")
	writeList(w, n.Statements, " ")
	return nil
}

func (w *sourceWriter) VisitSwitchDefault(n *ast.SwitchDefault) interface{} {
	writeListWithSuffix(w, n.Labels, " ", " ")
	w.token(n.Keyword, "default")
	w.token(n.Colon, ":")
	w.text(" ")
	writeList(w, n.Statements, " ")
	return nil
}

func (w *sourceWriter) VisitTryStatement(n *ast.TryStatement) interface{} {
	w.token(n.TryKeyword, "try")
	w.text(" ")
	w.node(n.Body)
	writeListWithPrefix(w, " ", n.CatchClauses, " ")
	if n.FinallyBlock != nil {
		w.text(" ")
		w.token(n.FinallyKeyword, "finally")
		w.text(" ")
		w.node(n.FinallyBlock)
	}
	return nil
}

func (w *sourceWriter) VisitCatchClause(n *ast.CatchClause) interface{} {
	if n.ExceptionType != nil {
		w.token(n.OnKeyword, "on")
		w.text(" ")
		w.node(n.ExceptionType)
	}
	if n.CatchKeyword != nil {
		if n.ExceptionType != nil {
			w.text(" ")
		}
		w.token(n.CatchKeyword, "catch")
		w.text(" ")
		w.token(n.LeftParenthesis, "(")
		w.node(n.ExceptionParameter)
		if n.StackTraceParameter != nil {
			w.token(n.Comma, ",")
			w.text(" ")
			w.node(n.StackTraceParameter)
		}
		w.token(n.RightParenthesis, ")")
	}
	w.text(" ")
	w.node(n.Body)
	return nil
}

func (w *sourceWriter) VisitVariableDeclarationStatement(n *ast.VariableDeclarationStatement) interface{} {
	w.node(n.VariableList)
	w.token(n.Semicolon, ";")
	return nil
}

func (w *sourceWriter) VisitWhileStatement(n *ast.WhileStatement) interface{} {
	w.token(n.Keyword, "while")
	w.text(" ")
	w.token(n.LeftParenthesis, "(")
	w.node(n.Condition)
	w.token(n.RightParenthesis, ")")
	w.text(" ")
	w.node(n.Body)
	return nil
}

func (w *sourceWriter) VisitYieldStatement(n *ast.YieldStatement) interface{} {
	w.token(n.YieldKeyword, "yield")
	if n.Star != nil {
		w.token(n.Star, "*")
	}
	w.text(" ")
	w.node(n.Expression)
	w.token(n.Semicolon, ";")
	return nil
}

// ===== Function bodies =====

func (w *sourceWriter) VisitBlockFunctionBody(n *ast.BlockFunctionBody) interface{} {
	if n.Keyword != nil {
		w.token(n.Keyword, "")
		if n.Star != nil {
			w.token(n.Star, "*")
		}
		w.text(" ")
	}
	w.node(n.Block)
	return nil
}

func (w *sourceWriter) VisitExpressionFunctionBody(n *ast.ExpressionFunctionBody) interface{} {
	w.tokenWithSuffix(n.Keyword, " ")
	w.token(n.FunctionDefinition, "=>")
	w.text(" ")
	w.node(n.Expression)
	if n.Semicolon != nil {
		w.token(n.Semicolon, ";")
	}
	return nil
}

func (w *sourceWriter) VisitEmptyFunctionBody(n *ast.EmptyFunctionBody) interface{} {
	w.token(n.Semicolon, ";")
	return nil
}

func (w *sourceWriter) VisitNativeFunctionBody(n *ast.NativeFunctionBody) interface{} {
	w.token(n.NativeToken, "native")
	w.text(" ")
	w.node(n.StringLiteral)
	w.token(n.Semicolon, ";")
	return nil
}

// ===== Declarations =====

func (w *sourceWriter) VisitAnnotation(n *ast.Annotation) interface{} {
	w.token(n.AtSign, "@")
	w.node(n.Name)
	if n.ConstructorName != nil {
		w.token(n.Period, ".")
		w.node(n.ConstructorName)
	}
	w.node(n.Arguments)
	return nil
}

func (w *sourceWriter) VisitClassDeclaration(n *ast.ClassDeclaration) interface{} {
	writeListWithSuffix(w, n.Metadata, " ", " ")
	w.tokenWithSuffix(n.AbstractKeyword, " ")
	w.token(n.ClassKeyword, "class")
	w.text(" ")
	w.node(n.Name)
	w.node(n.TypeParameters)
	w.nodeWithPrefix(" ", n.ExtendsClause)
	w.nodeWithPrefix(" ", n.WithClause)
	w.nodeWithPrefix(" ", n.ImplementsClause)
	w.nodeWithPrefix(" ", n.NativeClause)
	w.text(" ")
	w.token(n.LeftBracket, "{")
	writeList(w, n.Members, " ")
	w.token(n.RightBracket, "}")
	return nil
}

func (w *sourceWriter) VisitClassTypeAlias(n *ast.ClassTypeAlias) interface{} {
	writeListWithSuffix(w, n.Metadata, " ", " ")
	w.tokenWithSuffix(n.AbstractKeyword, " ")
	w.token(n.Keyword, "class")
	w.text(" ")
	w.node(n.Name)
	w.node(n.TypeParameters)
	w.text(" ")
	w.token(n.Equals, "=")
	w.text(" ")
	w.node(n.SuperclassType)
	w.nodeWithPrefix(" ", n.WithClause)
	w.nodeWithPrefix(" ", n.ImplementsClause)
	w.token(n.Semicolon, ";")
	return nil
}

func (w *sourceWriter) VisitExtendsClause(n *ast.ExtendsClause) interface{} {
	w.token(n.Keyword, "extends")
	w.text(" ")
	w.node(n.Superclass)
	return nil
}

func (w *sourceWriter) VisitWithClause(n *ast.WithClause) interface{} {
	w.token(n.WithKeyword, "with")
	w.text(" ")
	writeList(w, n.MixinTypes, ", ")
	return nil
}

func (w *sourceWriter) VisitImplementsClause(n *ast.ImplementsClause) interface{} {
	w.token(n.Keyword, "implements")
	w.text(" ")
	writeList(w, n.Interfaces, ", ")
	return nil
}

func (w *sourceWriter) VisitNativeClause(n *ast.NativeClause) interface{} {
	w.token(n.Keyword, "native")
	w.text(" ")
	w.node(n.Name)
	return nil
}

func (w *sourceWriter) VisitConstructorDeclaration(n *ast.ConstructorDeclaration) interface{} {
	writeListWithSuffix(w, n.Metadata, " ", " ")
	w.tokenWithSuffix(n.ExternalKeyword, " ")
	w.tokenWithSuffix(n.ConstKeyword, " ")
	w.tokenWithSuffix(n.FactoryKeyword, " ")
	w.node(n.ReturnType)
	if n.Name != nil {
		w.token(n.Period, ".")
		w.node(n.Name)
	}
	w.node(n.Parameters)
	if n.Initializers != nil && !n.Initializers.IsEmpty() {
		w.text(" ")
		w.token(n.Separator, ":")
		w.text(" ")
		writeList(w, n.Initializers, ", ")
	}
	if n.RedirectedConstructor != nil {
		w.text(" ")
		w.token(n.Separator, "=")
		w.text(" ")
		w.node(n.RedirectedConstructor)
	}
	w.functionBody(" ", n.Body)
	return nil
}

func (w *sourceWriter) VisitConstructorFieldInitializer(n *ast.ConstructorFieldInitializer) interface{} {
	if n.ThisKeyword != nil {
		w.token(n.ThisKeyword, "this")
		w.token(n.Period, ".")
	}
	w.node(n.FieldName)
	w.text(" ")
	w.token(n.Equals, "=")
	w.text(" ")
	w.node(n.Expression)
	return nil
}

func (w *sourceWriter) VisitConstructorName(n *ast.ConstructorName) interface{} {
	w.node(n.Type)
	if n.Name != nil {
		w.token(n.Period, ".")
		w.node(n.Name)
	}
	return nil
}

func (w *sourceWriter) VisitRedirectingConstructorInvocation(n *ast.RedirectingConstructorInvocation) interface{} {
	w.token(n.ThisKeyword, "this")
	if n.ConstructorName != nil {
		w.token(n.Period, ".")
		w.node(n.ConstructorName)
	}
	w.node(n.ArgumentList)
	return nil
}

func (w *sourceWriter) VisitSuperConstructorInvocation(n *ast.SuperConstructorInvocation) interface{} {
	w.token(n.SuperKeyword, "super")
	if n.ConstructorName != nil {
		w.token(n.Period, ".")
		w.node(n.ConstructorName)
	}
	w.node(n.ArgumentList)
	return nil
}

func (w *sourceWriter) VisitEnumDeclaration(n *ast.EnumDeclaration) interface{} {
	writeListWithSuffix(w, n.Metadata, " ", " ")
	w.token(n.EnumKeyword, "enum")
	w.text(" ")
	w.node(n.Name)
	w.text(" ")
	w.token(n.LeftBracket, "{")
	writeList(w, n.Constants, ", ")
	w.token(n.RightBracket, "}")
	return nil
}

func (w *sourceWriter) VisitEnumConstantDeclaration(n *ast.EnumConstantDeclaration) interface{} {
	writeListWithSuffix(w, n.Metadata, " ", " ")
	w.node(n.Name)
	return nil
}

func (w *sourceWriter) VisitFieldDeclaration(n *ast.FieldDeclaration) interface{} {
	writeListWithSuffix(w, n.Metadata, " ", " ")
	w.tokenWithSuffix(n.StaticKeyword, " ")
	w.node(n.Fields)
	w.token(n.Semicolon, ";")
	return nil
}

func (w *sourceWriter) VisitFunctionDeclaration(n *ast.FunctionDeclaration) interface{} {
	writeListWithSuffix(w, n.Metadata, " ", " ")
	w.tokenWithSuffix(n.ExternalKeyword, " ")
	w.nodeWithSuffix(n.ReturnType, " ")
	w.tokenWithSuffix(n.PropertyKeyword, " ")
	w.node(n.Name)
	w.node(n.FunctionExpression)
	return nil
}

func (w *sourceWriter) VisitFunctionTypeAlias(n *ast.FunctionTypeAlias) interface{} {
	writeListWithSuffix(w, n.Metadata, " ", " ")
	w.token(n.Keyword, "typedef")
	w.text(" ")
	w.nodeWithSuffix(n.ReturnType, " ")
	w.node(n.Name)
	w.node(n.TypeParameters)
	w.node(n.Parameters)
	w.token(n.Semicolon, ";")
	return nil
}

func (w *sourceWriter) VisitMethodDeclaration(n *ast.MethodDeclaration) interface{} {
	writeListWithSuffix(w, n.Metadata, " ", " ")
	w.tokenWithSuffix(n.ExternalKeyword, " ")
	w.tokenWithSuffix(n.ModifierKeyword, " ")
	w.nodeWithSuffix(n.ReturnType, " ")
	w.tokenWithSuffix(n.PropertyKeyword, " ")
	w.tokenWithSuffix(n.OperatorKeyword, " ")
	w.node(n.Name)
	if !n.IsGetter() {
		w.node(n.Parameters)
	}
	w.functionBody(" ", n.Body)
	return nil
}

func (w *sourceWriter) VisitTopLevelVariableDeclaration(n *ast.TopLevelVariableDeclaration) interface{} {
	writeListWithSuffix(w, n.Metadata, " ", " ")
	w.node(n.VariableList)
	w.token(n.Semicolon, ";")
	return nil
}

func (w *sourceWriter) VisitVariableDeclaration(n *ast.VariableDeclaration) interface{} {
	writeListWithSuffix(w, n.Metadata, " ", " ")
	w.node(n.Name)
	if !ast.IsNil(n.Initializer) {
		w.text(" ")
		w.token(n.Equals, "=")
		w.text(" ")
		w.node(n.Initializer)
	}
	return nil
}

func (w *sourceWriter) VisitVariableDeclarationList(n *ast.VariableDeclarationList) interface{} {
	writeListWithSuffix(w, n.Metadata, " ", " ")
	w.tokenWithSuffix(n.Keyword, " ")
	w.nodeWithSuffix(n.Type, " ")
	writeList(w, n.Variables, ", ")
	return nil
}

func (w *sourceWriter) VisitDeclaredIdentifier(n *ast.DeclaredIdentifier) interface{} {
	writeListWithSuffix(w, n.Metadata, " ", " ")
	w.tokenWithSuffix(n.Keyword, " ")
	w.nodeWithSuffix(n.Type, " ")
	w.node(n.Identifier)
	return nil
}

// ===== Types =====

func (w *sourceWriter) VisitTypeName(n *ast.TypeName) interface{} {
	w.node(n.Name)
	w.node(n.TypeArguments)
	return nil
}

func (w *sourceWriter) VisitTypeArgumentList(n *ast.TypeArgumentList) interface{} {
	w.token(n.LeftBracket, "<")
	writeList(w, n.Arguments, ", ")
	w.token(n.RightBracket, ">")
	return nil
}

func (w *sourceWriter) VisitTypeParameter(n *ast.TypeParameter) interface{} {
	writeListWithSuffix(w, n.Metadata, " ", " ")
	w.node(n.Name)
	if n.Bound != nil {
		w.text(" ")
		w.token(n.ExtendsKeyword, "extends")
		w.text(" ")
		w.node(n.Bound)
	}
	return nil
}

func (w *sourceWriter) VisitTypeParameterList(n *ast.TypeParameterList) interface{} {
	w.token(n.LeftBracket, "<")
	writeList(w, n.TypeParameters, ", ")
	w.token(n.RightBracket, ">")
	return nil
}

// ===== Parameters =====

// VisitFormalParameterList opens the optional group before the first
// parameter that is not required.
func (w *sourceWriter) VisitFormalParameterList(n *ast.FormalParameterList) interface{} {
	w.token(n.LeftParenthesis, "(")
	groupEnd := ""
	if n.Parameters != nil {
		for i, p := range n.Parameters.All() {
			if i > 0 {
				w.text(", ")
			}
			if groupEnd == "" && p.Kind() != ast.ParameterRequired {
				if p.Kind() == ast.ParameterNamed {
					w.token(n.LeftDelimiter, "{")
					groupEnd = "}"
				} else {
					w.token(n.LeftDelimiter, "[")
					groupEnd = "]"
				}
			}
			w.node(p)
		}
	}
	if groupEnd != "" {
		w.token(n.RightDelimiter, groupEnd)
	}
	w.token(n.RightParenthesis, ")")
	return nil
}

func (w *sourceWriter) VisitSimpleFormalParameter(n *ast.SimpleFormalParameter) interface{} {
	writeListWithSuffix(w, n.Metadata, " ", " ")
	w.tokenWithSuffix(n.Keyword, " ")
	w.nodeWithSuffix(n.Type, " ")
	w.node(n.Identifier)
	return nil
}

func (w *sourceWriter) VisitFieldFormalParameter(n *ast.FieldFormalParameter) interface{} {
	writeListWithSuffix(w, n.Metadata, " ", " ")
	w.tokenWithSuffix(n.Keyword, " ")
	w.nodeWithSuffix(n.Type, " ")
	w.token(n.ThisKeyword, "this")
	w.token(n.Period, ".")
	w.node(n.Identifier)
	w.node(n.Parameters)
	return nil
}

func (w *sourceWriter) VisitFunctionTypedFormalParameter(n *ast.FunctionTypedFormalParameter) interface{} {
	writeListWithSuffix(w, n.Metadata, " ", " ")
	w.nodeWithSuffix(n.ReturnType, " ")
	w.node(n.Identifier)
	w.node(n.Parameters)
	return nil
}

func (w *sourceWriter) VisitDefaultFormalParameter(n *ast.DefaultFormalParameter) interface{} {
	w.node(n.Parameter)
	if n.Separator != nil {
		w.text(" ")
		w.token(n.Separator, "")
		w.nodeWithPrefix(" ", n.DefaultValue)
	}
	return nil
}

// ===== Compilation units =====

func (w *sourceWriter) VisitCompilationUnit(n *ast.CompilationUnit) interface{} {
	w.mark(n.StartToken)
	w.node(n.ScriptTag)
	prefix := ""
	if n.ScriptTag != nil {
		prefix = " "
	}
	writeListWithPrefix(w, prefix, n.Directives, " ")
	if n.ScriptTag == nil && (n.Directives == nil || n.Directives.IsEmpty()) {
		prefix = ""
	} else {
		prefix = " "
	}
	writeListWithPrefix(w, prefix, n.Declarations, " ")
	w.mark(n.EndOfFile)
	return nil
}

func (w *sourceWriter) VisitScriptTag(n *ast.ScriptTag) interface{} {
	w.token(n.Tag, "")
	return nil
}

func (w *sourceWriter) VisitLibraryDirective(n *ast.LibraryDirective) interface{} {
	writeListWithSuffix(w, n.Metadata, " ", " ")
	w.token(n.LibraryKeyword, "library")
	w.text(" ")
	w.node(n.Name)
	w.token(n.Semicolon, ";")
	return nil
}

func (w *sourceWriter) VisitImportDirective(n *ast.ImportDirective) interface{} {
	writeListWithSuffix(w, n.Metadata, " ", " ")
	w.token(n.Keyword, "import")
	w.text(" ")
	w.node(n.URI)
	if n.DeferredKeyword != nil {
		w.text(" ")
		w.token(n.DeferredKeyword, "deferred")
	}
	if n.Prefix != nil {
		w.text(" ")
		w.token(n.AsKeyword, "as")
		w.text(" ")
		w.node(n.Prefix)
	}
	writeListWithPrefix(w, " ", n.Combinators, " ")
	w.token(n.Semicolon, ";")
	return nil
}

func (w *sourceWriter) VisitExportDirective(n *ast.ExportDirective) interface{} {
	writeListWithSuffix(w, n.Metadata, " ", " ")
	w.token(n.Keyword, "export")
	w.text(" ")
	w.node(n.URI)
	writeListWithPrefix(w, " ", n.Combinators, " ")
	w.token(n.Semicolon, ";")
	return nil
}

func (w *sourceWriter) VisitPartDirective(n *ast.PartDirective) interface{} {
	writeListWithSuffix(w, n.Metadata, " ", " ")
	w.token(n.PartKeyword, "part")
	w.text(" ")
	w.node(n.URI)
	w.token(n.Semicolon, ";")
	return nil
}

func (w *sourceWriter) VisitPartOfDirective(n *ast.PartOfDirective) interface{} {
	writeListWithSuffix(w, n.Metadata, " ", " ")
	w.token(n.PartKeyword, "part")
	w.text(" ")
	w.token(n.OfKeyword, "of")
	w.text(" ")
	w.node(n.LibraryName)
	w.token(n.Semicolon, ";")
	return nil
}

func (w *sourceWriter) VisitShowCombinator(n *ast.ShowCombinator) interface{} {
	w.token(n.Keyword, "show")
	w.text(" ")
	writeList(w, n.ShownNames, ", ")
	return nil
}

func (w *sourceWriter) VisitHideCombinator(n *ast.HideCombinator) interface{} {
	w.token(n.Keyword, "hide")
	w.text(" ")
	writeList(w, n.HiddenNames, ", ")
	return nil
}
