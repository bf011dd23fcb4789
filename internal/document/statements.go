package document

import (
	"gopkg.in/yaml.v3"

	"github.com/orizon-lang/astkit/internal/ast"
	af "github.com/orizon-lang/astkit/internal/astfactory"
	"github.com/orizon-lang/astkit/internal/token"
)

var variableKeywords = []token.Keyword{token.KwVar, token.KwFinal, token.KwConst}

// stmts decodes a list of statements; an absent list is empty.
func (d *decoder) stmts(n *yaml.Node, what string) ([]ast.Statement, error) {
	items, err := sequence(n, what)
	if err != nil {
		return nil, err
	}
	out := make([]ast.Statement, 0, len(items))
	for _, item := range items {
		s, err := d.stmt(item)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (d *decoder) block(n *yaml.Node, what string) (*ast.Block, error) {
	statements, err := d.stmts(n, what)
	if err != nil {
		return nil, err
	}
	return af.Block(statements...), nil
}

func (d *decoder) stmt(n *yaml.Node) (ast.Statement, error) {
	key, v, err := form(n, "statement")
	if err != nil {
		return nil, err
	}
	switch key {
	case "block":
		return d.block(v, "block")
	case "expr":
		e, err := d.expr(v)
		if err != nil {
			return nil, err
		}
		return af.ExpressionStatement(e), nil
	case "return":
		if isNull(v) {
			return af.ReturnStatement(nil), nil
		}
		e, err := d.expr(v)
		if err != nil {
			return nil, err
		}
		return af.ReturnStatement(e), nil
	case "if":
		return d.ifStatement(v)
	case "while":
		return d.whileStatement(v)
	case "do":
		return d.doStatement(v)
	case "for":
		return d.forStatement(v)
	case "for-in":
		return d.forIn(v)
	case "var":
		keyword, typ, vars, err := d.variables(v, "var")
		if err != nil {
			return nil, err
		}
		return af.VariableDeclarationStatement(keyword, typ, vars...), nil
	case "break", "continue":
		label := ""
		if !isNull(v) {
			if label, err = str(v, "label"); err != nil {
				return nil, err
			}
		}
		if key == "break" {
			return af.BreakStatement(label), nil
		}
		return af.ContinueStatement(label), nil
	case "try":
		return d.tryStatement(v)
	case "yield", "yield-each":
		e, err := d.expr(v)
		if err != nil {
			return nil, err
		}
		if key == "yield" {
			return af.YieldStatement(e), nil
		}
		return af.YieldEachStatement(e), nil
	case "assert":
		e, err := d.expr(v)
		if err != nil {
			return nil, err
		}
		return af.AssertStatement(e), nil
	case "empty":
		return af.EmptyStatement(), nil
	case "switch":
		return d.switchStatement(v)
	case "labeled":
		return d.labeled(v)
	case "function":
		fn, err := d.functionDeclaration(v)
		if err != nil {
			return nil, err
		}
		return ast.NewFunctionDeclarationStatement(fn), nil
	}
	return nil, fail(n, "unknown statement %q", key)
}

// nested decodes a statement held under key.
func (d *decoder) nested(f *fields, key, what string) (ast.Statement, error) {
	n, err := f.require(key, what)
	if err != nil {
		return nil, err
	}
	return d.stmt(n)
}

func (d *decoder) condition(f *fields, what string) (ast.Expression, error) {
	n, err := f.require("cond", what)
	if err != nil {
		return nil, err
	}
	return d.expr(n)
}

func (d *decoder) ifStatement(v *yaml.Node) (ast.Statement, error) {
	f, err := mapping(v, "if")
	if err != nil {
		return nil, err
	}
	cond, err := d.condition(f, "if")
	if err != nil {
		return nil, err
	}
	then, err := d.nested(f, "then", "if")
	if err != nil {
		return nil, err
	}
	var otherwise ast.Statement
	if n := f.get("else"); !isNull(n) {
		if otherwise, err = d.stmt(n); err != nil {
			return nil, err
		}
	}
	return af.IfStatement(cond, then, otherwise), f.done("if")
}

func (d *decoder) whileStatement(v *yaml.Node) (ast.Statement, error) {
	f, err := mapping(v, "while")
	if err != nil {
		return nil, err
	}
	cond, err := d.condition(f, "while")
	if err != nil {
		return nil, err
	}
	body, err := d.nested(f, "body", "while")
	if err != nil {
		return nil, err
	}
	return af.WhileStatement(cond, body), f.done("while")
}

func (d *decoder) doStatement(v *yaml.Node) (ast.Statement, error) {
	f, err := mapping(v, "do")
	if err != nil {
		return nil, err
	}
	body, err := d.nested(f, "body", "do")
	if err != nil {
		return nil, err
	}
	cond, err := d.condition(f, "do")
	if err != nil {
		return nil, err
	}
	return af.DoStatement(body, cond), f.done("do")
}

// forStatement decodes {init | var, cond, update, body}.
func (d *decoder) forStatement(v *yaml.Node) (ast.Statement, error) {
	f, err := mapping(v, "for")
	if err != nil {
		return nil, err
	}
	var cond ast.Expression
	if n := f.get("cond"); !isNull(n) {
		if cond, err = d.expr(n); err != nil {
			return nil, err
		}
	}
	updaters, err := d.exprs(f.get("update"), "update")
	if err != nil {
		return nil, err
	}
	body, err := d.nested(f, "body", "for")
	if err != nil {
		return nil, err
	}

	initNode, varNode := f.get("init"), f.get("var")
	switch {
	case !isNull(initNode) && !isNull(varNode):
		return nil, fail(f.node, "for takes either init or var, not both")
	case !isNull(varNode):
		keyword, typ, vars, err := d.variables(varNode, "var")
		if err != nil {
			return nil, err
		}
		list := af.VariableDeclarationList(keyword, typ, vars...)
		return af.ForStatementWithVariables(list, cond, updaters, body), f.done("for")
	}
	var init ast.Expression
	if !isNull(initNode) {
		if init, err = d.expr(initNode); err != nil {
			return nil, err
		}
	}
	return af.ForStatement(init, cond, updaters, body), f.done("for")
}

// forIn decodes {var, keyword, type, in, body, await}. Without keyword or
// type the loop variable is a plain identifier.
func (d *decoder) forIn(v *yaml.Node) (ast.Statement, error) {
	f, err := mapping(v, "for-in")
	if err != nil {
		return nil, err
	}
	nameNode, err := f.require("var", "for-in")
	if err != nil {
		return nil, err
	}
	name, err := str(nameNode, "loop variable")
	if err != nil {
		return nil, err
	}
	keyword, err := f.keyword("keyword", variableKeywords...)
	if err != nil {
		return nil, err
	}
	typ, err := d.typeName(f.get("type"))
	if err != nil {
		return nil, err
	}
	inNode, err := f.require("in", "for-in")
	if err != nil {
		return nil, err
	}
	iterable, err := d.expr(inNode)
	if err != nil {
		return nil, err
	}
	body, err := d.nested(f, "body", "for-in")
	if err != nil {
		return nil, err
	}
	isAwait, err := f.flag("await")
	if err != nil {
		return nil, err
	}

	if keyword == token.NoKeyword && typ == nil {
		if isAwait {
			return af.AwaitForEachStatementWithIdentifier(af.Identifier(name), iterable, body), f.done("for-in")
		}
		return af.ForEachStatementWithIdentifier(af.Identifier(name), iterable, body), f.done("for-in")
	}
	loopVariable := af.DeclaredIdentifier(keyword, typ, name)
	if isAwait {
		return af.AwaitForEachStatement(loopVariable, iterable, body), f.done("for-in")
	}
	return af.ForEachStatement(loopVariable, iterable, body), f.done("for-in")
}

// variables decodes {keyword, type, names, vars}. names lists bare
// variables; vars lists names or {name, init} pairs.
func (d *decoder) variables(v *yaml.Node, what string) (token.Keyword, *ast.TypeName, []*ast.VariableDeclaration, error) {
	f, err := mapping(v, what)
	if err != nil {
		return token.NoKeyword, nil, nil, err
	}
	keyword, err := f.keyword("keyword", variableKeywords...)
	if err != nil {
		return token.NoKeyword, nil, nil, err
	}
	typ, err := d.typeName(f.get("type"))
	if err != nil {
		return token.NoKeyword, nil, nil, err
	}
	if keyword == token.NoKeyword && typ == nil {
		return token.NoKeyword, nil, nil, fail(f.node, "%s needs a keyword or a type", what)
	}

	names, err := strs(f.get("names"), "names")
	if err != nil {
		return token.NoKeyword, nil, nil, err
	}
	vars := make([]*ast.VariableDeclaration, 0, len(names))
	for _, name := range names {
		vars = append(vars, af.VariableDeclaration(name, nil))
	}
	items, err := sequence(f.get("vars"), "vars")
	if err != nil {
		return token.NoKeyword, nil, nil, err
	}
	for _, item := range items {
		vd, err := d.variable(item)
		if err != nil {
			return token.NoKeyword, nil, nil, err
		}
		vars = append(vars, vd)
	}
	if len(vars) == 0 {
		return token.NoKeyword, nil, nil, fail(f.node, "%s declares no variables", what)
	}
	return keyword, typ, vars, f.done(what)
}

func (d *decoder) variable(n *yaml.Node) (*ast.VariableDeclaration, error) {
	if r := resolve(n); r != nil && r.Kind == yaml.ScalarNode {
		name, err := str(r, "variable name")
		if err != nil {
			return nil, err
		}
		return af.VariableDeclaration(name, nil), nil
	}
	f, err := mapping(n, "variable")
	if err != nil {
		return nil, err
	}
	nameNode, err := f.require("name", "variable")
	if err != nil {
		return nil, err
	}
	name, err := str(nameNode, "variable name")
	if err != nil {
		return nil, err
	}
	var init ast.Expression
	if initNode := f.get("init"); initNode != nil {
		if init, err = d.expr(initNode); err != nil {
			return nil, err
		}
	}
	return af.VariableDeclaration(name, init), f.done("variable")
}

// tryStatement decodes {body, catch, finally}. Each catch clause is
// {on, var, stack, body}.
func (d *decoder) tryStatement(v *yaml.Node) (ast.Statement, error) {
	f, err := mapping(v, "try")
	if err != nil {
		return nil, err
	}
	body, err := d.block(f.get("body"), "try body")
	if err != nil {
		return nil, err
	}
	items, err := sequence(f.get("catch"), "catch")
	if err != nil {
		return nil, err
	}
	clauses := make([]*ast.CatchClause, 0, len(items))
	for _, item := range items {
		c, err := d.catchClause(item)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, c)
	}
	var opts af.TryOptions
	if n := f.get("finally"); n != nil {
		if opts.Finally, err = d.block(n, "finally"); err != nil {
			return nil, err
		}
	}
	if len(clauses) == 0 && opts.Finally == nil {
		return nil, fail(f.node, "try needs a catch clause or a finally block")
	}
	return af.TryStatement(body, opts, clauses...), f.done("try")
}

func (d *decoder) catchClause(n *yaml.Node) (*ast.CatchClause, error) {
	f, err := mapping(n, "catch clause")
	if err != nil {
		return nil, err
	}
	var opts af.CatchClauseOptions
	if opts.ExceptionType, err = d.typeName(f.get("on")); err != nil {
		return nil, err
	}
	if opts.ExceptionParameter, err = f.optString("var", "exception parameter"); err != nil {
		return nil, err
	}
	if opts.StackTraceParameter, err = f.optString("stack", "stack trace parameter"); err != nil {
		return nil, err
	}
	if opts.ExceptionType == nil && opts.ExceptionParameter == "" {
		return nil, fail(f.node, "catch clause needs on or var")
	}
	if opts.StackTraceParameter != "" && opts.ExceptionParameter == "" {
		return nil, fail(f.node, "catch clause has stack without var")
	}
	statements, err := d.stmts(f.get("body"), "catch body")
	if err != nil {
		return nil, err
	}
	return af.CatchClause(opts, statements...), f.done("catch clause")
}

// switchStatement decodes {expr, cases, default}. Each case is
// {case, body, labels}.
func (d *decoder) switchStatement(v *yaml.Node) (ast.Statement, error) {
	f, err := mapping(v, "switch")
	if err != nil {
		return nil, err
	}
	exprNode, err := f.require("expr", "switch")
	if err != nil {
		return nil, err
	}
	e, err := d.expr(exprNode)
	if err != nil {
		return nil, err
	}
	items, err := sequence(f.get("cases"), "cases")
	if err != nil {
		return nil, err
	}
	members := make([]ast.SwitchMember, 0, len(items)+1)
	for _, item := range items {
		c, err := d.switchCase(item)
		if err != nil {
			return nil, err
		}
		members = append(members, c)
	}
	if n := f.get("default"); n != nil {
		statements, err := d.stmts(n, "default")
		if err != nil {
			return nil, err
		}
		members = append(members, af.SwitchDefault(statements...))
	}
	return af.SwitchStatement(e, members...), f.done("switch")
}

func (d *decoder) switchCase(n *yaml.Node) (*ast.SwitchCase, error) {
	f, err := mapping(n, "case")
	if err != nil {
		return nil, err
	}
	caseNode, err := f.require("case", "case")
	if err != nil {
		return nil, err
	}
	e, err := d.expr(caseNode)
	if err != nil {
		return nil, err
	}
	statements, err := d.stmts(f.get("body"), "case body")
	if err != nil {
		return nil, err
	}
	labels, err := d.labels(f.get("labels"))
	if err != nil {
		return nil, err
	}
	return af.SwitchCaseWithLabels(labels, e, statements...), f.done("case")
}

func (d *decoder) labels(n *yaml.Node) ([]*ast.Label, error) {
	names, err := strs(n, "labels")
	if err != nil {
		return nil, err
	}
	labels := make([]*ast.Label, 0, len(names))
	for _, name := range names {
		labels = append(labels, af.Label(name))
	}
	return labels, nil
}

func (d *decoder) labeled(v *yaml.Node) (ast.Statement, error) {
	f, err := mapping(v, "labeled")
	if err != nil {
		return nil, err
	}
	labels, err := d.labels(f.get("labels"))
	if err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, fail(f.node, "labeled statement needs labels")
	}
	s, err := d.nested(f, "stmt", "labeled")
	if err != nil {
		return nil, err
	}
	return af.LabeledStatement(labels, s), f.done("labeled")
}

// body decodes a function body. A list is a block body. A mapping holds an
// optional modifier (async, async*, sync*) and one of arrow, native, empty,
// block, or a single statement that becomes the only statement of a block.
func (d *decoder) body(n *yaml.Node) (ast.FunctionBody, error) {
	n = resolve(n)
	if isNull(n) {
		return nil, nil
	}
	if n.Kind == yaml.SequenceNode {
		statements, err := d.stmts(n, "body")
		if err != nil {
			return nil, err
		}
		return af.BlockFunctionBody(statements...), nil
	}

	f, err := mapping(n, "body")
	if err != nil {
		return nil, err
	}
	modifier := ""
	if m := f.get("modifier"); !isNull(m) {
		if modifier, err = str(m, "modifier"); err != nil {
			return nil, err
		}
		switch modifier {
		case "async", "async*", "sync*":
		default:
			return nil, fail(m, "modifier must be async, async* or sync*, got %q", modifier)
		}
	}

	var rest []*yaml.Node
	for _, key := range f.keys {
		if key.Value != "modifier" {
			rest = append(rest, key)
		}
	}
	if len(rest) != 1 {
		return nil, fail(f.node, "body must have exactly one form besides modifier, found %d", len(rest))
	}
	key, value := rest[0].Value, f.get(rest[0].Value)

	switch key {
	case "arrow":
		e, err := d.expr(value)
		if err != nil {
			return nil, err
		}
		switch modifier {
		case "":
			return af.ExpressionFunctionBody(e), nil
		case "async":
			return af.AsyncExpressionFunctionBody(e), nil
		}
		return nil, fail(rest[0], "arrow bodies cannot be generators")
	case "native", "empty":
		if modifier != "" {
			return nil, fail(rest[0], "%s bodies take no modifier", key)
		}
		if key == "empty" {
			return af.EmptyFunctionBody(), nil
		}
		name, err := str(value, "native name")
		if err != nil {
			return nil, err
		}
		return af.NativeFunctionBody(name), nil
	}

	var statements []ast.Statement
	if key == "block" {
		statements, err = d.stmts(value, "block")
	} else {
		var s ast.Statement
		s, err = d.stmt(&yaml.Node{Kind: yaml.MappingNode, Line: rest[0].Line, Column: rest[0].Column,
			Content: []*yaml.Node{rest[0], value}})
		statements = []ast.Statement{s}
	}
	if err != nil {
		return nil, err
	}
	switch modifier {
	case "async":
		return af.AsyncBlockFunctionBody(statements...), nil
	case "async*":
		return af.AsyncGeneratorBlockFunctionBody(statements...), nil
	case "sync*":
		return af.SyncGeneratorBlockFunctionBody(statements...), nil
	}
	return af.BlockFunctionBody(statements...), nil
}

// functionExpression decodes the params and body keys of f.
func (d *decoder) functionExpression(f *fields) (*ast.FunctionExpression, error) {
	params, err := d.parameters(f.get("params"))
	if err != nil {
		return nil, err
	}
	body, err := d.body(f.get("body"))
	if err != nil {
		return nil, err
	}
	return af.FunctionExpression(params, body), nil
}
