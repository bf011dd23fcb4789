package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orizon-lang/astkit/internal/ast"
	asterrors "github.com/orizon-lang/astkit/internal/errors"
	"github.com/orizon-lang/astkit/internal/printer"
)

const pointDocument = `
unit:
  script: "#!/usr/bin/env dart"
  directives:
    - library: {name: [app, main]}
    - import: {uri: "dart:async", prefix: async, show: [Future]}
  declarations:
    - class:
        name: Point
        extends: Object
        members:
          - field: {keyword: final, type: int, names: [x, y]}
          - method:
              name: norm
              returns: int
              body: {return: {binary: {op: "+", left: {id: x}, right: {id: y}}}}
    - function:
        name: main
        returns: void
        body:
          block:
            - expr: {call: {name: print, args: [{str: hi}]}}
`

func TestDecodeClassDocument(t *testing.T) {
	unit, err := DecodeBytes([]byte(pointDocument))
	require.NoError(t, err)

	assert.Equal(t, "#!/usr/bin/env dart\n"+
		"library app.main;\n"+
		"import 'dart:async' as async show Future;\n"+
		"class Point extends Object {final int x, y; int norm() {return x + y;}}\n"+
		"void main() {print('hi');}\n", printer.FormatFile(unit))

	class, ok := unit.Declarations.At(0).(*ast.ClassDeclaration)
	require.True(t, ok)
	assert.Same(t, unit, class.Parent())
	assert.NotNil(t, class.Method("norm"))
	assert.NotNil(t, class.Field("y"))
}

func decodeSource(t *testing.T, doc string) string {
	t.Helper()
	unit, err := DecodeBytes([]byte(doc))
	require.NoError(t, err)
	return printer.ToSource(unit)
}

func TestDecodeStatements(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"if else", `{if: {cond: {binary: {op: "<", left: a, right: 1}}, then: {return: 1}, else: {return: null}}}`,
			"if (a < 1) return 1; else return;"},
		{"while", `{while: {cond: true, body: {break: null}}}`, "while (true) break;"},
		{"for in", `{for-in: {var: x, keyword: final, in: xs, body: {block: []}}}`, "for (final x in xs) {}"},
		{"await for", `{for-in: {var: x, keyword: var, in: xs, await: true, body: {empty: null}}}`,
			"await for (var x in xs) ;"},
		{"var", `{var: {type: int, vars: [{name: a, init: 1}, b]}}`, "int a = 1, b;"},
		{"try", `{try: {body: [], catch: [{on: E, var: e, stack: s, body: []}], finally: []}}`,
			"try {} on E catch (e, s) {} finally {}"},
		{"switch", `{switch: {expr: x, cases: [{case: 1, body: [{break: null}]}], default: [{return: null}]}}`,
			"switch (x) {case 1: break; default: return;}"},
		{"assign", `{expr: {assign: {op: "+=", target: a, value: 2}}}`, "a += 2;"},
		{"cascade", `{expr: {cascade: {target: a, sections: [{call: {name: f}}, {prop: b}]}}}`,
			"a..f()..b;"},
		{"new", `{expr: {new: {keyword: const, type: "Map<String, int>", args: []}}}`,
			"const Map<String, int>();"},
		{"yield each", `{yield-each: xs}`, "yield* xs;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := "unit: {declarations: [{function: {name: f, body: {block: [" + tt.body + "]}}}]}"
			assert.Equal(t, "f() {"+tt.want+"}", decodeSource(t, doc))
		})
	}
}

func TestDecodeScalars(t *testing.T) {
	src := decodeSource(t, `
unit:
  declarations:
    - var: {keyword: var, vars: [{name: a, init: 1}, {name: b, init: 2.5}, {name: c, init: true}, {name: d, init: null}, {name: e, init: x}]}
`)
	assert.Equal(t, "var a = 1, b = 2.5, c = true, d = null, e = x;", src)
}

func TestDecodeFunctionBodies(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`{arrow: 1}`, "f() => 1;"},
		{`{modifier: async, arrow: {await: x}}`, "f() async => await x;"},
		{`{modifier: "async*", block: [{yield: 1}]}`, "f() async* {yield 1;}"},
		{`{modifier: "sync*", yield-each: xs}`, "f() sync* {yield* xs;}"},
		{`{native: "fn"}`, "f() native 'fn';"},
		{`[]`, "f() {}"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			doc := "unit: {declarations: [{function: {name: f, body: " + tt.body + "}}]}"
			assert.Equal(t, tt.want, decodeSource(t, doc))
		})
	}
}

func TestDecodeParameters(t *testing.T) {
	src := decodeSource(t, `
unit:
  declarations:
    - function:
        name: f
        params:
          - a
          - {name: b, type: int}
          - {name: c, kind: named, default: 1}
          - {name: d, kind: named, default: null}
          - {name: e, kind: named}
        body: []
`)
	assert.Equal(t, "f(a, int b, {c : 1, d : null, e}) {}", src)

	src = decodeSource(t, `
unit:
  declarations:
    - typedef:
        name: Handler
        returns: void
        params: [{name: cb, type: int, params: [x]}, {name: y, kind: positional}]
`)
	assert.Equal(t, "typedef void Handler(int cb(x), [y]);", src)
}

func TestDecodeConstructors(t *testing.T) {
	src := decodeSource(t, `
unit:
  declarations:
    - class:
        name: A
        extends: B
        members:
          - constructor:
              params: [{name: x, this: true}]
              initializers:
                - super: {name: named, args: [1]}
          - constructor:
              name: other
              factory: true
              redirect: {type: C}
`)
	assert.Equal(t, "class A extends B {A(this.x) : super.named(1); factory A.other() = C;}", src)
}

func TestDecodeDirectives(t *testing.T) {
	src := decodeSource(t, `
unit:
  directives:
    - library: app.util
    - import: {uri: "dart:math", prefix: m, deferred: true, show: [max, min]}
    - export: {uri: "src/a.dart", hide: B}
    - part: src/b.dart
`)
	assert.Equal(t, "library app.util; import 'dart:math' deferred as m show max, min; "+
		"export 'src/a.dart' hide B; part 'src/b.dart';", src)

	assert.Equal(t, "part of app.util;", decodeSource(t, "unit: {directives: [{part-of: app.util}]}"))
}

func TestDecodeEnumAndAlias(t *testing.T) {
	src := decodeSource(t, `
unit:
  declarations:
    - enum: {name: Color, values: [red, green]}
    - alias: {name: M, superclass: S, with: [T]}
`)
	assert.Equal(t, "enum Color {red, green} class M = S with T;", src)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		line   int
		column int
	}{
		{"unknown key", "unit:\n  declarations: []\n  bogus: 1\n", 3, 3},
		{"unknown statement", "unit:\n  declarations:\n    - function:\n        name: f\n        body: {block: [{loop: 1}]}\n", 5, 24},
		{"required after optional", "unit:\n  declarations:\n    - function:\n        name: f\n        params: [{name: a, kind: named}, b]\n", 5, 42},
		{"bad operator", "unit:\n  declarations:\n    - var: {keyword: var, vars: [{name: a, init: {binary: {op: \"=>\", left: 1, right: 2}}}]}\n", 3, 0},
		{"bad keyword", "unit:\n  declarations:\n    - var: {keyword: static, names: [a]}\n", 3, 22},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBytes([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, asterrors.ErrInvalidDocument))

			var se *asterrors.StandardError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.line, se.Context["line"])
			if tt.column > 0 {
				assert.Equal(t, tt.column, se.Context["column"])
			}
		})
	}
}

func TestDecodeRejectsMissingUnit(t *testing.T) {
	_, err := DecodeBytes([]byte("declarations: []\n"))
	assert.ErrorIs(t, err, asterrors.ErrInvalidDocument)

	_, err = DecodeBytes(nil)
	assert.ErrorIs(t, err, asterrors.ErrInvalidDocument)

	_, err = DecodeBytes([]byte("- a\n"))
	assert.ErrorIs(t, err, asterrors.ErrInvalidDocument)
}

func TestDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "point.yaml")
	require.NoError(t, os.WriteFile(path, []byte(pointDocument), 0o644))

	unit, err := DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, unit.Declarations.Len())

	_, err = DecodeFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
