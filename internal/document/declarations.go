package document

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/orizon-lang/astkit/internal/ast"
	af "github.com/orizon-lang/astkit/internal/astfactory"
	"github.com/orizon-lang/astkit/internal/token"
)

// unit decodes {script, directives, declarations}.
func (d *decoder) unit(n *yaml.Node) (*ast.CompilationUnit, error) {
	var opts af.CompilationUnitOptions
	if isNull(n) {
		return af.CompilationUnit(opts), nil
	}
	f, err := mapping(n, "unit")
	if err != nil {
		return nil, err
	}
	if opts.ScriptTag, err = f.optString("script", "script"); err != nil {
		return nil, err
	}
	if opts.ScriptTag != "" && !strings.HasPrefix(opts.ScriptTag, "#!") {
		return nil, fail(f.get("script"), "script must start with #!")
	}

	items, err := sequence(f.get("directives"), "directives")
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		dir, err := d.directive(item)
		if err != nil {
			return nil, err
		}
		opts.Directives = append(opts.Directives, dir)
	}

	items, err = sequence(f.get("declarations"), "declarations")
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		decl, err := d.declaration(item)
		if err != nil {
			return nil, err
		}
		opts.Declarations = append(opts.Declarations, decl)
	}
	return af.CompilationUnit(opts), f.done("unit")
}

// ===== Directives =====

func (d *decoder) directive(n *yaml.Node) (ast.Directive, error) {
	key, v, err := form(n, "directive")
	if err != nil {
		return nil, err
	}
	switch key {
	case "library":
		name, err := d.libraryName(v, "library")
		if err != nil {
			return nil, err
		}
		return af.LibraryDirectiveOf(name), nil
	case "import":
		return d.importDirective(v)
	case "export":
		return d.exportDirective(v)
	case "part":
		uri, err := d.uri(v, "part")
		if err != nil {
			return nil, err
		}
		return af.PartDirective(uri), nil
	case "part-of":
		name, err := d.libraryName(v, "part-of")
		if err != nil {
			return nil, err
		}
		return af.PartOfDirective(name), nil
	}
	return nil, fail(n, "unknown directive %q", key)
}

// libraryName accepts "a.b", [a, b] or {name: ...}.
func (d *decoder) libraryName(v *yaml.Node, what string) (*ast.LibraryIdentifier, error) {
	if r := resolve(v); r != nil && r.Kind == yaml.MappingNode {
		f, err := mapping(r, what)
		if err != nil {
			return nil, err
		}
		nameNode, err := f.require("name", what)
		if err != nil {
			return nil, err
		}
		name, err := d.libraryName(nameNode, what)
		if err != nil {
			return nil, err
		}
		return name, f.done(what)
	}
	parts, err := dotted(v, "library name")
	if err != nil {
		return nil, err
	}
	return af.LibraryIdentifier(parts...), nil
}

// uri accepts a bare string or {uri: ...}.
func (d *decoder) uri(v *yaml.Node, what string) (string, error) {
	if r := resolve(v); r != nil && r.Kind == yaml.MappingNode {
		f, err := mapping(r, what)
		if err != nil {
			return "", err
		}
		n, err := f.require("uri", what)
		if err != nil {
			return "", err
		}
		uri, err := str(n, "uri")
		if err != nil {
			return "", err
		}
		return uri, f.done(what)
	}
	return str(v, "uri")
}

// combinators decodes the show and hide keys of f in that order.
func (d *decoder) combinators(f *fields) ([]ast.Combinator, error) {
	var out []ast.Combinator
	show, err := strs(f.get("show"), "show")
	if err != nil {
		return nil, err
	}
	if len(show) > 0 {
		out = append(out, af.ShowCombinator(show...))
	}
	hide, err := strs(f.get("hide"), "hide")
	if err != nil {
		return nil, err
	}
	if len(hide) > 0 {
		out = append(out, af.HideCombinator(hide...))
	}
	return out, nil
}

func (d *decoder) importDirective(v *yaml.Node) (ast.Directive, error) {
	f, err := mapping(v, "import")
	if err != nil {
		return nil, err
	}
	var opts af.ImportOptions
	uriNode, err := f.require("uri", "import")
	if err != nil {
		return nil, err
	}
	if opts.URI, err = str(uriNode, "uri"); err != nil {
		return nil, err
	}
	if opts.Prefix, err = f.optString("prefix", "prefix"); err != nil {
		return nil, err
	}
	if opts.Deferred, err = f.flag("deferred"); err != nil {
		return nil, err
	}
	if opts.Deferred && opts.Prefix == "" {
		return nil, fail(f.node, "deferred import needs a prefix")
	}
	if opts.Metadata, err = d.metadata(f); err != nil {
		return nil, err
	}
	combinators, err := d.combinators(f)
	if err != nil {
		return nil, err
	}
	return af.ImportDirective(opts, combinators...), f.done("import")
}

func (d *decoder) exportDirective(v *yaml.Node) (ast.Directive, error) {
	f, err := mapping(v, "export")
	if err != nil {
		return nil, err
	}
	uriNode, err := f.require("uri", "export")
	if err != nil {
		return nil, err
	}
	uri, err := str(uriNode, "uri")
	if err != nil {
		return nil, err
	}
	combinators, err := d.combinators(f)
	if err != nil {
		return nil, err
	}
	return af.ExportDirective(uri, combinators...), f.done("export")
}

// metadata decodes the metadata key of f: a list of annotation names, each
// "name" or "Name.constructor", or {name, ctor, args} for annotations with
// arguments.
func (d *decoder) metadata(f *fields) ([]*ast.Annotation, error) {
	items, err := sequence(f.get("metadata"), "metadata")
	if err != nil {
		return nil, err
	}
	out := make([]*ast.Annotation, 0, len(items))
	for _, item := range items {
		a, err := d.annotation(item)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (d *decoder) annotation(n *yaml.Node) (*ast.Annotation, error) {
	if r := resolve(n); r != nil && r.Kind == yaml.ScalarNode {
		name, err := str(r, "annotation")
		if err != nil {
			return nil, err
		}
		return af.Annotation(identifierOf(name)), nil
	}
	f, err := mapping(n, "annotation")
	if err != nil {
		return nil, err
	}
	nameNode, err := f.require("name", "annotation")
	if err != nil {
		return nil, err
	}
	name, err := str(nameNode, "annotation name")
	if err != nil {
		return nil, err
	}
	ctor, err := f.optString("ctor", "annotation constructor")
	if err != nil {
		return nil, err
	}
	args, err := d.exprs(f.get("args"), "args")
	if err != nil {
		return nil, err
	}
	return af.ConstructorAnnotation(identifierOf(name), ctor, af.ArgumentList(args...)), f.done("annotation")
}

// identifierOf turns "a" into a simple identifier and "p.a" into a prefixed
// one.
func identifierOf(name string) ast.Identifier {
	if prefix, id, ok := strings.Cut(name, "."); ok {
		return af.PrefixedIdentifierFromStrings(prefix, id)
	}
	return af.Identifier(name)
}

// ===== Declarations =====

func (d *decoder) declaration(n *yaml.Node) (ast.CompilationUnitMember, error) {
	key, v, err := form(n, "declaration")
	if err != nil {
		return nil, err
	}
	switch key {
	case "class":
		return d.class(v)
	case "alias":
		return d.classAlias(v)
	case "enum":
		return d.enum(v)
	case "function":
		return d.functionDeclaration(v)
	case "typedef":
		return d.typedef(v)
	case "var":
		keyword, typ, vars, err := d.variables(v, "var")
		if err != nil {
			return nil, err
		}
		return af.TopLevelVariableDeclaration(keyword, typ, vars...), nil
	}
	return nil, fail(n, "unknown declaration %q", key)
}

// typeList decodes a type or a list of types.
func (d *decoder) typeList(n *yaml.Node, what string) ([]*ast.TypeName, error) {
	n = resolve(n)
	if isNull(n) {
		return nil, nil
	}
	items := []*yaml.Node{n}
	if n.Kind == yaml.SequenceNode {
		items = n.Content
	}
	out := make([]*ast.TypeName, 0, len(items))
	for _, item := range items {
		t, err := d.typeName(item)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, fail(item, "%s must not contain null", what)
		}
		out = append(out, t)
	}
	return out, nil
}

// typeParameters decodes a list of "T" or {name, bound}.
func (d *decoder) typeParameters(n *yaml.Node) (*ast.TypeParameterList, error) {
	items, err := sequence(n, "type-params")
	if err != nil || len(items) == 0 {
		return nil, err
	}
	params := make([]*ast.TypeParameter, 0, len(items))
	for _, item := range items {
		if r := resolve(item); r.Kind == yaml.ScalarNode {
			name, err := str(r, "type parameter")
			if err != nil {
				return nil, err
			}
			params = append(params, af.TypeParameter(name, nil))
			continue
		}
		f, err := mapping(item, "type parameter")
		if err != nil {
			return nil, err
		}
		nameNode, err := f.require("name", "type parameter")
		if err != nil {
			return nil, err
		}
		name, err := str(nameNode, "type parameter")
		if err != nil {
			return nil, err
		}
		bound, err := d.typeName(f.get("bound"))
		if err != nil {
			return nil, err
		}
		if err := f.done("type parameter"); err != nil {
			return nil, err
		}
		params = append(params, af.TypeParameter(name, bound))
	}
	return af.TypeParameterListOf(params...), nil
}

// classClauses decodes the with and implements keys shared by classes and
// class aliases.
func (d *decoder) classClauses(f *fields) (*ast.WithClause, *ast.ImplementsClause, error) {
	var with *ast.WithClause
	var implements *ast.ImplementsClause
	mixins, err := d.typeList(f.get("with"), "with")
	if err != nil {
		return nil, nil, err
	}
	if len(mixins) > 0 {
		with = af.WithClause(mixins...)
	}
	interfaces, err := d.typeList(f.get("implements"), "implements")
	if err != nil {
		return nil, nil, err
	}
	if len(interfaces) > 0 {
		implements = af.ImplementsClause(interfaces...)
	}
	return with, implements, nil
}

// name reads the required name key of f.
func name(f *fields, what string) (string, error) {
	n, err := f.require("name", what)
	if err != nil {
		return "", err
	}
	return str(n, what+" name")
}

func (d *decoder) class(v *yaml.Node) (ast.CompilationUnitMember, error) {
	f, err := mapping(v, "class")
	if err != nil {
		return nil, err
	}
	var opts af.ClassOptions
	if opts.Name, err = name(f, "class"); err != nil {
		return nil, err
	}
	if opts.Abstract, err = f.flag("abstract"); err != nil {
		return nil, err
	}
	if opts.Metadata, err = d.metadata(f); err != nil {
		return nil, err
	}
	if opts.TypeParameters, err = d.typeParameters(f.get("type-params")); err != nil {
		return nil, err
	}
	superclass, err := d.typeName(f.get("extends"))
	if err != nil {
		return nil, err
	}
	if superclass != nil {
		opts.Extends = af.ExtendsClause(superclass)
	}
	if opts.With, opts.Implements, err = d.classClauses(f); err != nil {
		return nil, err
	}
	if opts.With != nil && opts.Extends == nil {
		return nil, fail(f.node, "class %s has with but no extends", opts.Name)
	}
	native, err := f.optString("native", "native")
	if err != nil {
		return nil, err
	}
	if native != "" {
		opts.Native = af.NativeClause(native)
	}

	items, err := sequence(f.get("members"), "members")
	if err != nil {
		return nil, err
	}
	members := make([]ast.ClassMember, 0, len(items))
	for _, item := range items {
		m, err := d.member(item, opts.Name)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return af.ClassDeclaration(opts, members...), f.done("class")
}

func (d *decoder) classAlias(v *yaml.Node) (ast.CompilationUnitMember, error) {
	f, err := mapping(v, "alias")
	if err != nil {
		return nil, err
	}
	aliasName, err := name(f, "alias")
	if err != nil {
		return nil, err
	}
	abstract, err := f.flag("abstract")
	if err != nil {
		return nil, err
	}
	typeParams, err := d.typeParameters(f.get("type-params"))
	if err != nil {
		return nil, err
	}
	superNode, err := f.require("superclass", "alias")
	if err != nil {
		return nil, err
	}
	superclass, err := d.typeName(superNode)
	if err != nil {
		return nil, err
	}
	with, implements, err := d.classClauses(f)
	if err != nil {
		return nil, err
	}
	if with == nil {
		return nil, fail(f.node, "alias %s needs with", aliasName)
	}
	return af.ClassTypeAlias(aliasName, typeParams, abstract, superclass, with, implements), f.done("alias")
}

func (d *decoder) enum(v *yaml.Node) (ast.CompilationUnitMember, error) {
	f, err := mapping(v, "enum")
	if err != nil {
		return nil, err
	}
	enumName, err := name(f, "enum")
	if err != nil {
		return nil, err
	}
	values, err := strs(f.get("values"), "values")
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fail(f.node, "enum %s has no values", enumName)
	}
	return af.EnumDeclarationFromStrings(enumName, values...), f.done("enum")
}

// functionDeclaration decodes {name, returns, property, params, body}.
func (d *decoder) functionDeclaration(v *yaml.Node) (*ast.FunctionDeclaration, error) {
	f, err := mapping(v, "function")
	if err != nil {
		return nil, err
	}
	fnName, err := name(f, "function")
	if err != nil {
		return nil, err
	}
	returns, err := d.typeName(f.get("returns"))
	if err != nil {
		return nil, err
	}
	property, err := f.keyword("property", token.KwGet, token.KwSet)
	if err != nil {
		return nil, err
	}
	fn, err := d.functionExpression(f)
	if err != nil {
		return nil, err
	}
	return af.FunctionDeclaration(returns, property, fnName, fn), f.done("function")
}

func (d *decoder) typedef(v *yaml.Node) (ast.CompilationUnitMember, error) {
	f, err := mapping(v, "typedef")
	if err != nil {
		return nil, err
	}
	aliasName, err := name(f, "typedef")
	if err != nil {
		return nil, err
	}
	returns, err := d.typeName(f.get("returns"))
	if err != nil {
		return nil, err
	}
	typeParams, err := d.typeParameters(f.get("type-params"))
	if err != nil {
		return nil, err
	}
	params, err := d.parameters(f.get("params"))
	if err != nil {
		return nil, err
	}
	return af.FunctionTypeAlias(returns, aliasName, typeParams, params), f.done("typedef")
}

// ===== Class members =====

func (d *decoder) member(n *yaml.Node, className string) (ast.ClassMember, error) {
	key, v, err := form(n, "member")
	if err != nil {
		return nil, err
	}
	switch key {
	case "field":
		return d.field(v)
	case "method":
		return d.method(v)
	case "constructor":
		return d.constructor(v, className)
	}
	return nil, fail(n, "unknown member %q", key)
}

func (d *decoder) field(v *yaml.Node) (ast.ClassMember, error) {
	f, err := mapping(v, "field")
	if err != nil {
		return nil, err
	}
	static, err := f.flag("static")
	if err != nil {
		return nil, err
	}
	// The remaining keys describe the variables; re-read them without static.
	rest := &yaml.Node{Kind: yaml.MappingNode, Line: f.node.Line, Column: f.node.Column}
	for i := 0; i+1 < len(f.node.Content); i += 2 {
		if f.node.Content[i].Value != "static" {
			rest.Content = append(rest.Content, f.node.Content[i], f.node.Content[i+1])
		}
	}
	keyword, typ, vars, err := d.variables(rest, "field")
	if err != nil {
		return nil, err
	}
	return af.FieldDeclaration(static, keyword, typ, vars...), nil
}

// method decodes {name, returns, modifier, property, operator, external,
// params, body, metadata}. Without a body the method is abstract-style
// "name();".
func (d *decoder) method(v *yaml.Node) (ast.ClassMember, error) {
	f, err := mapping(v, "method")
	if err != nil {
		return nil, err
	}
	var opts af.MethodOptions
	if opts.Name, err = name(f, "method"); err != nil {
		return nil, err
	}
	if opts.ReturnType, err = d.typeName(f.get("returns")); err != nil {
		return nil, err
	}
	if opts.Modifier, err = f.keyword("modifier", token.KwStatic, token.KwAbstract); err != nil {
		return nil, err
	}
	if opts.Property, err = f.keyword("property", token.KwGet, token.KwSet); err != nil {
		return nil, err
	}
	if opts.Operator, err = f.flag("operator"); err != nil {
		return nil, err
	}
	if opts.External, err = f.flag("external"); err != nil {
		return nil, err
	}
	if opts.Metadata, err = d.metadata(f); err != nil {
		return nil, err
	}
	if paramsNode := f.get("params"); paramsNode != nil {
		if opts.Property == token.KwGet {
			return nil, fail(paramsNode, "getter %s takes no parameters", opts.Name)
		}
		if opts.Parameters, err = d.parameters(paramsNode); err != nil {
			return nil, err
		}
	}
	if opts.Body, err = d.body(f.get("body")); err != nil {
		return nil, err
	}
	return af.MethodDeclaration(opts), f.done("method")
}

// constructor decodes {name, const, factory, external, params,
// initializers, redirect, body, metadata}.
func (d *decoder) constructor(v *yaml.Node, className string) (ast.ClassMember, error) {
	f, err := mapping(v, "constructor")
	if err != nil {
		return nil, err
	}
	opts := af.ConstructorOptions{ReturnType: af.Identifier(className)}
	if opts.Name, err = f.optString("name", "constructor name"); err != nil {
		return nil, err
	}
	if opts.Const, err = f.flag("const"); err != nil {
		return nil, err
	}
	if opts.Factory, err = f.flag("factory"); err != nil {
		return nil, err
	}
	if opts.External, err = f.flag("external"); err != nil {
		return nil, err
	}
	if opts.Metadata, err = d.metadata(f); err != nil {
		return nil, err
	}
	if opts.Parameters, err = d.parameters(f.get("params")); err != nil {
		return nil, err
	}

	items, err := sequence(f.get("initializers"), "initializers")
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		init, err := d.initializer(item)
		if err != nil {
			return nil, err
		}
		opts.Initializers = append(opts.Initializers, init)
	}

	if n := f.get("redirect"); !isNull(n) {
		if len(opts.Initializers) > 0 {
			return nil, fail(n, "constructor cannot both redirect and initialize")
		}
		rf, err := mapping(n, "redirect")
		if err != nil {
			return nil, err
		}
		typeNode, err := rf.require("type", "redirect")
		if err != nil {
			return nil, err
		}
		typ, err := d.typeName(typeNode)
		if err != nil {
			return nil, err
		}
		ctor, err := rf.optString("name", "constructor name")
		if err != nil {
			return nil, err
		}
		if err := rf.done("redirect"); err != nil {
			return nil, err
		}
		opts.RedirectedConstructor = af.ConstructorName(typ, ctor)
	}
	if opts.Body, err = d.body(f.get("body")); err != nil {
		return nil, err
	}
	return af.ConstructorDeclaration(opts), f.done("constructor")
}

// initializer decodes {field: {name, value, this}}, {super: {name, args}}
// or {this: {name, args}}.
func (d *decoder) initializer(n *yaml.Node) (ast.ConstructorInitializer, error) {
	key, v, err := form(n, "initializer")
	if err != nil {
		return nil, err
	}
	f, err := mapping(v, key)
	if err != nil {
		return nil, err
	}
	switch key {
	case "field":
		fieldName, err := name(f, "field")
		if err != nil {
			return nil, err
		}
		valueNode, err := f.require("value", "field")
		if err != nil {
			return nil, err
		}
		value, err := d.expr(valueNode)
		if err != nil {
			return nil, err
		}
		this, err := f.flag("this")
		if err != nil {
			return nil, err
		}
		return af.ConstructorFieldInitializer(this, fieldName, value), f.done("field")
	case "super", "this":
		ctor, err := f.optString("name", "constructor name")
		if err != nil {
			return nil, err
		}
		args, err := d.exprs(f.get("args"), "args")
		if err != nil {
			return nil, err
		}
		if key == "super" {
			return af.SuperConstructorInvocation(ctor, args...), f.done(key)
		}
		return af.RedirectingConstructorInvocation(ctor, args...), f.done(key)
	}
	return nil, fail(n, "unknown initializer %q", key)
}

// ===== Parameters =====

// parameters decodes a parameter list. Optional parameters must come last
// and must all be positional or all be named.
func (d *decoder) parameters(n *yaml.Node) (*ast.FormalParameterList, error) {
	params, err := d.parameterSlice(n)
	if err != nil {
		return nil, err
	}
	return af.FormalParameterList(params...), nil
}

func (d *decoder) parameterSlice(n *yaml.Node) ([]ast.FormalParameter, error) {
	items, err := sequence(n, "params")
	if err != nil {
		return nil, err
	}
	params := make([]ast.FormalParameter, 0, len(items))
	optional := ast.ParameterRequired
	for _, item := range items {
		p, err := d.parameter(item)
		if err != nil {
			return nil, err
		}
		kind := p.Kind()
		switch {
		case optional == ast.ParameterRequired:
			optional = kind
		case kind == ast.ParameterRequired:
			return nil, fail(item, "required parameter after optional ones")
		case kind != optional:
			return nil, fail(item, "cannot mix positional and named parameters")
		}
		params = append(params, p)
	}
	return params, nil
}

// parameter decodes "name" or {name, type, keyword, this, params, kind,
// default}. With params the parameter is function-typed and type is its
// return type.
func (d *decoder) parameter(n *yaml.Node) (ast.FormalParameter, error) {
	if r := resolve(n); r != nil && r.Kind == yaml.ScalarNode {
		paramName, err := str(r, "parameter")
		if err != nil {
			return nil, err
		}
		return af.SimpleFormalParameter(token.NoKeyword, nil, paramName), nil
	}
	f, err := mapping(n, "parameter")
	if err != nil {
		return nil, err
	}
	paramName, err := name(f, "parameter")
	if err != nil {
		return nil, err
	}
	typ, err := d.typeName(f.get("type"))
	if err != nil {
		return nil, err
	}
	keyword, err := f.keyword("keyword", variableKeywords...)
	if err != nil {
		return nil, err
	}
	this, err := f.flag("this")
	if err != nil {
		return nil, err
	}

	var normal ast.NormalFormalParameter
	paramsNode := f.get("params")
	switch {
	case this:
		var nested *ast.FormalParameterList
		if paramsNode != nil {
			if nested, err = d.parameters(paramsNode); err != nil {
				return nil, err
			}
		}
		normal = af.FieldFormalParameter(keyword, typ, paramName, nested)
	case paramsNode != nil:
		if keyword != token.NoKeyword {
			return nil, fail(f.node, "function-typed parameter %s takes no keyword", paramName)
		}
		nested, err := d.parameterSlice(paramsNode)
		if err != nil {
			return nil, err
		}
		normal = af.FunctionTypedFormalParameter(typ, paramName, nested...)
	default:
		normal = af.SimpleFormalParameter(keyword, typ, paramName)
	}

	kind, err := f.optString("kind", "kind")
	if err != nil {
		return nil, err
	}
	var defaultValue ast.Expression
	if dv := f.get("default"); dv != nil {
		if defaultValue, err = d.expr(dv); err != nil {
			return nil, err
		}
	}
	if err := f.done("parameter"); err != nil {
		return nil, err
	}
	switch kind {
	case "", "required":
		if defaultValue != nil {
			return nil, fail(f.node, "required parameter %s cannot have a default", paramName)
		}
		return normal, nil
	case "positional":
		return af.PositionalFormalParameter(normal, defaultValue), nil
	case "named":
		return af.NamedFormalParameter(normal, defaultValue), nil
	}
	return nil, fail(f.node, "kind must be required, positional or named, got %q", kind)
}
