package document

import (
	"errors"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/orizon-lang/astkit/internal/ast"
	af "github.com/orizon-lang/astkit/internal/astfactory"
	"github.com/orizon-lang/astkit/internal/token"
)

var (
	binaryOperators = operatorSet(token.EqEq, token.BangEq, token.Lt, token.LtEq, token.Gt, token.GtEq,
		token.LtLt, token.GtGt, token.Plus, token.Minus, token.Star, token.Slash, token.TildeSlash, token.Percent,
		token.Ampersand, token.AmpersandAmpersand, token.Bar, token.BarBar, token.Caret, token.QuestionQuestion)
	prefixOperators  = operatorSet(token.Minus, token.Bang, token.Tilde, token.PlusPlus, token.MinusMinus)
	postfixOperators = operatorSet(token.PlusPlus, token.MinusMinus)
)

func operatorSet(types ...token.Type) map[token.Type]bool {
	set := make(map[token.Type]bool, len(types))
	for _, t := range types {
		set[t] = true
	}
	return set
}

func operator(n *yaml.Node, what string, allowed func(token.Type) bool) (token.Type, error) {
	s, err := str(n, what)
	if err != nil {
		return token.EOF, err
	}
	t, ok := token.TypeByLexeme(s)
	if !ok || !allowed(t) {
		return token.EOF, fail(n, "%q is not a %s", s, what)
	}
	return t, nil
}

// expr decodes an expression. Scalars map to literals by their YAML type;
// plain strings are identifiers.
func (d *decoder) expr(n *yaml.Node) (ast.Expression, error) {
	n = resolve(n)
	if n == nil {
		return nil, fail(nil, "missing expression")
	}
	switch n.Kind {
	case yaml.ScalarNode:
		return scalarExpr(n)
	case yaml.SequenceNode:
		return nil, fail(n, "expression must be a scalar or a mapping; use {list: [...]} for lists")
	}

	key, v, err := form(n, "expression")
	if err != nil {
		return nil, err
	}
	switch key {
	case "id":
		name, err := str(v, "id")
		if err != nil {
			return nil, err
		}
		return af.Identifier(name), nil
	case "str":
		return d.stringLiteral(v)
	case "symbol":
		parts, err := dotted(v, "symbol")
		if err != nil {
			return nil, err
		}
		return af.SymbolLiteral(parts...), nil
	case "binary":
		return d.binary(v)
	case "prefix", "postfix":
		return d.unary(key, v)
	case "assign":
		return d.assign(v)
	case "call":
		return d.call(v)
	case "invoke":
		return d.invoke(v)
	case "prop":
		return d.prop(v)
	case "index":
		return d.index(v)
	case "new":
		return d.instanceCreation(v)
	case "list":
		return d.list(v)
	case "map":
		return d.mapLiteral(v)
	case "cond":
		return d.conditional(v)
	case "paren":
		e, err := d.expr(v)
		if err != nil {
			return nil, err
		}
		return af.ParenthesizedExpression(e), nil
	case "await":
		e, err := d.expr(v)
		if err != nil {
			return nil, err
		}
		return af.AwaitExpression(e), nil
	case "throw":
		e, err := d.expr(v)
		if err != nil {
			return nil, err
		}
		return af.ThrowExpression(e), nil
	case "this":
		return af.ThisExpression(), nil
	case "super":
		return af.SuperExpression(), nil
	case "rethrow":
		return af.RethrowExpression(), nil
	case "is", "as":
		return d.typeTest(key, v)
	case "named":
		return d.named(v)
	case "cascade":
		return d.cascade(v)
	case "fn":
		return d.function(v)
	}
	return nil, fail(n, "unknown expression %q", key)
}

func scalarExpr(n *yaml.Node) (ast.Expression, error) {
	switch n.ShortTag() {
	case "!!int":
		var v int64
		if err := n.Decode(&v); err != nil {
			return nil, fail(n, "integer %s does not fit in 64 bits", n.Value)
		}
		return af.Integer(v), nil
	case "!!float":
		var v float64
		if err := n.Decode(&v); err != nil {
			return nil, fail(n, "malformed number %s", n.Value)
		}
		return af.Double(v), nil
	case "!!bool":
		var v bool
		if err := n.Decode(&v); err != nil {
			return nil, fail(n, "malformed boolean %s", n.Value)
		}
		return af.Boolean(v), nil
	case "!!null":
		return af.Null(), nil
	case "!!str":
		name, err := str(n, "identifier")
		if err != nil {
			return nil, err
		}
		return af.Identifier(name), nil
	}
	return nil, fail(n, "unsupported scalar %s", n.ShortTag())
}

// exprs decodes a list of expressions; an absent list is empty.
func (d *decoder) exprs(n *yaml.Node, what string) ([]ast.Expression, error) {
	items, err := sequence(n, what)
	if err != nil {
		return nil, err
	}
	out := make([]ast.Expression, 0, len(items))
	for _, item := range items {
		e, err := d.expr(item)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// stringLiteral decodes {str: text}; a list of texts gives adjacent strings.
func (d *decoder) stringLiteral(v *yaml.Node) (ast.Expression, error) {
	v = resolve(v)
	if v != nil && v.Kind == yaml.SequenceNode {
		parts := make([]ast.StringLiteral, 0, len(v.Content))
		for _, item := range v.Content {
			item = resolve(item)
			if item.Kind != yaml.ScalarNode {
				return nil, fail(item, "adjacent strings must be scalars")
			}
			parts = append(parts, af.String(item.Value))
		}
		if len(parts) < 2 {
			return nil, fail(v, "adjacent strings need at least two parts")
		}
		return af.AdjacentStrings(parts...), nil
	}
	if v == nil || v.Kind != yaml.ScalarNode {
		return nil, fail(v, "str must be a scalar")
	}
	return af.String(v.Value), nil
}

func (d *decoder) binary(v *yaml.Node) (ast.Expression, error) {
	f, err := mapping(v, "binary")
	if err != nil {
		return nil, err
	}
	opNode, err := f.require("op", "binary")
	if err != nil {
		return nil, err
	}
	op, err := operator(opNode, "binary operator", func(t token.Type) bool { return binaryOperators[t] })
	if err != nil {
		return nil, err
	}
	left, right, err := d.pair(f, "binary", "left", "right")
	if err != nil {
		return nil, err
	}
	return af.BinaryExpression(left, op, right), f.done("binary")
}

// pair decodes two required expression keys of f.
func (d *decoder) pair(f *fields, what, first, second string) (ast.Expression, ast.Expression, error) {
	a, err := f.require(first, what)
	if err != nil {
		return nil, nil, err
	}
	b, err := f.require(second, what)
	if err != nil {
		return nil, nil, err
	}
	x, err := d.expr(a)
	if err != nil {
		return nil, nil, err
	}
	y, err := d.expr(b)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

func (d *decoder) unary(kind string, v *yaml.Node) (ast.Expression, error) {
	f, err := mapping(v, kind)
	if err != nil {
		return nil, err
	}
	opNode, err := f.require("op", kind)
	if err != nil {
		return nil, err
	}
	operandNode, err := f.require("operand", kind)
	if err != nil {
		return nil, err
	}
	operand, err := d.expr(operandNode)
	if err != nil {
		return nil, err
	}
	if kind == "prefix" {
		op, err := operator(opNode, "prefix operator", func(t token.Type) bool { return prefixOperators[t] })
		if err != nil {
			return nil, err
		}
		return af.PrefixExpression(op, operand), f.done(kind)
	}
	op, err := operator(opNode, "postfix operator", func(t token.Type) bool { return postfixOperators[t] })
	if err != nil {
		return nil, err
	}
	return af.PostfixExpression(operand, op), f.done(kind)
}

func (d *decoder) assign(v *yaml.Node) (ast.Expression, error) {
	f, err := mapping(v, "assign")
	if err != nil {
		return nil, err
	}
	op := token.Eq
	if opNode := f.get("op"); !isNull(opNode) {
		if op, err = operator(opNode, "assignment operator", token.Type.IsAssignmentOperator); err != nil {
			return nil, err
		}
	}
	target, value, err := d.pair(f, "assign", "target", "value")
	if err != nil {
		return nil, err
	}
	return af.AssignmentExpression(target, op, value), f.done("assign")
}

// optTarget decodes the optional receiver of a call or property access.
func (d *decoder) optTarget(f *fields) (ast.Expression, error) {
	n := f.get("target")
	if isNull(n) {
		return nil, nil
	}
	return d.expr(n)
}

func (d *decoder) call(v *yaml.Node) (ast.Expression, error) {
	f, err := mapping(v, "call")
	if err != nil {
		return nil, err
	}
	target, err := d.optTarget(f)
	if err != nil {
		return nil, err
	}
	nameNode, err := f.require("name", "call")
	if err != nil {
		return nil, err
	}
	name, err := str(nameNode, "call name")
	if err != nil {
		return nil, err
	}
	args, err := d.exprs(f.get("args"), "args")
	if err != nil {
		return nil, err
	}
	return af.MethodInvocation(target, name, args...), f.done("call")
}

func (d *decoder) invoke(v *yaml.Node) (ast.Expression, error) {
	f, err := mapping(v, "invoke")
	if err != nil {
		return nil, err
	}
	fnNode, err := f.require("fn", "invoke")
	if err != nil {
		return nil, err
	}
	fn, err := d.expr(fnNode)
	if err != nil {
		return nil, err
	}
	args, err := d.exprs(f.get("args"), "args")
	if err != nil {
		return nil, err
	}
	return af.FunctionExpressionInvocation(fn, args...), f.done("invoke")
}

func (d *decoder) prop(v *yaml.Node) (ast.Expression, error) {
	f, err := mapping(v, "prop")
	if err != nil {
		return nil, err
	}
	targetNode, err := f.require("target", "prop")
	if err != nil {
		return nil, err
	}
	target, err := d.expr(targetNode)
	if err != nil {
		return nil, err
	}
	nameNode, err := f.require("name", "prop")
	if err != nil {
		return nil, err
	}
	name, err := str(nameNode, "property name")
	if err != nil {
		return nil, err
	}
	return af.PropertyAccess(target, name), f.done("prop")
}

func (d *decoder) index(v *yaml.Node) (ast.Expression, error) {
	f, err := mapping(v, "index")
	if err != nil {
		return nil, err
	}
	target, index, err := d.pair(f, "index", "target", "index")
	if err != nil {
		return nil, err
	}
	return af.IndexExpression(target, index), f.done("index")
}

func (d *decoder) instanceCreation(v *yaml.Node) (ast.Expression, error) {
	f, err := mapping(v, "new")
	if err != nil {
		return nil, err
	}
	keyword, err := f.keyword("keyword", token.KwNew, token.KwConst)
	if err != nil {
		return nil, err
	}
	if keyword == token.NoKeyword {
		keyword = token.KwNew
	}
	typeNode, err := f.require("type", "new")
	if err != nil {
		return nil, err
	}
	typ, err := d.typeName(typeNode)
	if err != nil {
		return nil, err
	}
	name, err := f.optString("name", "constructor name")
	if err != nil {
		return nil, err
	}
	args, err := d.exprs(f.get("args"), "args")
	if err != nil {
		return nil, err
	}
	opts := af.InstanceCreationOptions{Keyword: keyword, Type: typ, Name: name}
	return af.InstanceCreationExpression(opts, args...), f.done("new")
}

// list decodes either [elements] or {const, type, elements}.
func (d *decoder) list(v *yaml.Node) (ast.Expression, error) {
	if r := resolve(v); r == nil || r.Kind != yaml.MappingNode {
		elements, err := d.exprs(v, "list")
		if err != nil {
			return nil, err
		}
		return af.ListLiteral(af.ListLiteralOptions{}, elements...), nil
	}

	f, err := mapping(v, "list")
	if err != nil {
		return nil, err
	}
	var opts af.ListLiteralOptions
	if opts.Const, err = f.flag("const"); err != nil {
		return nil, err
	}
	if typeNode := f.get("type"); !isNull(typeNode) {
		typ, err := d.typeName(typeNode)
		if err != nil {
			return nil, err
		}
		opts.TypeArguments = af.TypeArgumentList(typ)
	}
	elements, err := d.exprs(f.get("elements"), "elements")
	if err != nil {
		return nil, err
	}
	return af.ListLiteral(opts, elements...), f.done("list")
}

// mapLiteral decodes a mapping of string keys to value expressions.
func (d *decoder) mapLiteral(v *yaml.Node) (ast.Expression, error) {
	if isNull(v) {
		return af.MapLiteral(af.MapLiteralOptions{}), nil
	}
	f, err := mapping(v, "map")
	if err != nil {
		return nil, err
	}
	entries := make([]*ast.MapLiteralEntry, 0, len(f.keys))
	for _, key := range f.keys {
		value, err := d.expr(f.get(key.Value))
		if err != nil {
			return nil, err
		}
		entries = append(entries, af.MapLiteralEntry(key.Value, value))
	}
	return af.MapLiteral(af.MapLiteralOptions{}, entries...), nil
}

func (d *decoder) conditional(v *yaml.Node) (ast.Expression, error) {
	f, err := mapping(v, "cond")
	if err != nil {
		return nil, err
	}
	cond, then, err := d.pair(f, "cond", "if", "then")
	if err != nil {
		return nil, err
	}
	elseNode, err := f.require("else", "cond")
	if err != nil {
		return nil, err
	}
	otherwise, err := d.expr(elseNode)
	if err != nil {
		return nil, err
	}
	return af.ConditionalExpression(cond, then, otherwise), f.done("cond")
}

func (d *decoder) typeTest(kind string, v *yaml.Node) (ast.Expression, error) {
	f, err := mapping(v, kind)
	if err != nil {
		return nil, err
	}
	exprNode, err := f.require("expr", kind)
	if err != nil {
		return nil, err
	}
	e, err := d.expr(exprNode)
	if err != nil {
		return nil, err
	}
	typeNode, err := f.require("type", kind)
	if err != nil {
		return nil, err
	}
	typ, err := d.typeName(typeNode)
	if err != nil {
		return nil, err
	}
	if kind == "as" {
		return af.AsExpression(e, typ), f.done(kind)
	}
	negated, err := f.flag("not")
	if err != nil {
		return nil, err
	}
	return af.IsExpression(e, negated, typ), f.done(kind)
}

func (d *decoder) named(v *yaml.Node) (ast.Expression, error) {
	f, err := mapping(v, "named")
	if err != nil {
		return nil, err
	}
	nameNode, err := f.require("name", "named")
	if err != nil {
		return nil, err
	}
	name, err := str(nameNode, "argument name")
	if err != nil {
		return nil, err
	}
	valueNode, err := f.require("value", "named")
	if err != nil {
		return nil, err
	}
	value, err := d.expr(valueNode)
	if err != nil {
		return nil, err
	}
	return af.NamedExpression(name, value), f.done("named")
}

// cascade decodes {target, sections}; each section is {call}, {prop} or
// {index} without a target.
func (d *decoder) cascade(v *yaml.Node) (ast.Expression, error) {
	f, err := mapping(v, "cascade")
	if err != nil {
		return nil, err
	}
	targetNode, err := f.require("target", "cascade")
	if err != nil {
		return nil, err
	}
	target, err := d.expr(targetNode)
	if err != nil {
		return nil, err
	}
	items, err := sequence(f.get("sections"), "sections")
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fail(f.node, "cascade needs at least one section")
	}
	sections := make([]ast.Expression, 0, len(items))
	for _, item := range items {
		s, err := d.cascadeSection(item)
		if err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return af.CascadeExpression(target, sections...), f.done("cascade")
}

func (d *decoder) cascadeSection(n *yaml.Node) (ast.Expression, error) {
	key, v, err := form(n, "cascade section")
	if err != nil {
		return nil, err
	}
	switch key {
	case "call":
		f, err := mapping(v, "call")
		if err != nil {
			return nil, err
		}
		nameNode, err := f.require("name", "call")
		if err != nil {
			return nil, err
		}
		name, err := str(nameNode, "call name")
		if err != nil {
			return nil, err
		}
		args, err := d.exprs(f.get("args"), "args")
		if err != nil {
			return nil, err
		}
		return af.CascadedMethodInvocation(name, args...), f.done("call")
	case "prop":
		name, err := str(v, "property name")
		if err != nil {
			return nil, err
		}
		return af.CascadedPropertyAccess(name), nil
	case "index":
		index, err := d.expr(v)
		if err != nil {
			return nil, err
		}
		return af.CascadedIndexExpression(index), nil
	}
	return nil, fail(n, "unknown cascade section %q", key)
}

// function decodes an anonymous function {params, body}.
func (d *decoder) function(v *yaml.Node) (ast.Expression, error) {
	f, err := mapping(v, "fn")
	if err != nil {
		return nil, err
	}
	fn, err := d.functionExpression(f)
	if err != nil {
		return nil, err
	}
	return fn, f.done("fn")
}

// typeName decodes "int", "p.Type", "Map<String, List<int>>" or
// {name, args}. A null node is no type.
func (d *decoder) typeName(n *yaml.Node) (*ast.TypeName, error) {
	n = resolve(n)
	if isNull(n) {
		return nil, nil
	}
	if n.Kind == yaml.ScalarNode {
		t, rest, err := parseType(n.Value)
		if err == nil && strings.TrimSpace(rest) != "" {
			err = errors.New("unexpected " + strings.TrimSpace(rest))
		}
		if err != nil {
			return nil, fail(n, "malformed type %q: %v", n.Value, err)
		}
		return t, nil
	}

	f, err := mapping(n, "type")
	if err != nil {
		return nil, err
	}
	nameNode, err := f.require("name", "type")
	if err != nil {
		return nil, err
	}
	name, err := str(nameNode, "type name")
	if err != nil {
		return nil, err
	}
	items, err := sequence(f.get("args"), "type arguments")
	if err != nil {
		return nil, err
	}
	args := make([]*ast.TypeName, 0, len(items))
	for _, item := range items {
		arg, err := d.typeName(item)
		if err != nil {
			return nil, err
		}
		if arg == nil {
			return nil, fail(item, "type argument must not be null")
		}
		args = append(args, arg)
	}
	return typeFromName(name, args), f.done("type")
}

// parseType reads one type from the front of s and returns the remainder.
func parseType(s string) (*ast.TypeName, string, error) {
	end := strings.IndexAny(s, "<>,")
	if end < 0 {
		end = len(s)
	}
	name := strings.TrimSpace(s[:end])
	if name == "" || strings.ContainsAny(name, " \t") {
		return nil, "", errors.New("expected a type name")
	}

	rest := strings.TrimLeft(s[end:], " ")
	var args []*ast.TypeName
	if strings.HasPrefix(rest, "<") {
		rest = rest[1:]
		for {
			arg, r, err := parseType(rest)
			if err != nil {
				return nil, "", err
			}
			args = append(args, arg)
			r = strings.TrimLeft(r, " ")
			if strings.HasPrefix(r, ",") {
				rest = r[1:]
				continue
			}
			if strings.HasPrefix(r, ">") {
				rest = r[1:]
				break
			}
			return nil, "", errors.New("unterminated type arguments")
		}
	}
	return typeFromName(name, args), rest, nil
}

func typeFromName(name string, args []*ast.TypeName) *ast.TypeName {
	if prefix, id, ok := strings.Cut(name, "."); ok {
		return af.TypeNameOf(af.PrefixedIdentifierFromStrings(prefix, id), args...)
	}
	return af.TypeName(name, args...)
}
