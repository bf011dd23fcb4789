// Package document decodes YAML tree documents into syntax trees. Every node
// is built through the astfactory constructors, so a decoded document has
// exactly the shape the same factory calls would give in Go code.
//
// A document has a single top-level key, unit, holding a compilation unit:
//
//	unit:
//	  script: "#!/usr/bin/env dart"
//	  directives:
//	    - import: {uri: "dart:math", prefix: m, show: [max]}
//	  declarations:
//	    - function: {name: main, returns: void, body: {block: []}}
//
// Malformed documents fail with an error matching errors.ErrInvalidDocument
// that carries the line and column of the offending YAML node.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/orizon-lang/astkit/internal/ast"
	asterrors "github.com/orizon-lang/astkit/internal/errors"
	"github.com/orizon-lang/astkit/internal/token"
)

// Decode reads one YAML document from r and builds its compilation unit.
func Decode(r io.Reader) (*ast.CompilationUnit, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, asterrors.InvalidDocument(0, 0, "empty document")
		}
		return nil, asterrors.InvalidDocument(0, 0, "%v", err)
	}

	root := resolve(&doc)
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = resolve(root.Content[0])
	}
	f, err := mapping(root, "document")
	if err != nil {
		return nil, err
	}
	unitNode, err := f.require("unit", "document")
	if err != nil {
		return nil, err
	}
	if err := f.done("document"); err != nil {
		return nil, err
	}

	d := &decoder{}
	return d.unit(unitNode)
}

// DecodeBytes decodes a document held in memory.
func DecodeBytes(data []byte) (*ast.CompilationUnit, error) {
	return Decode(bytes.NewReader(data))
}

// DecodeFile decodes the document stored at path.
func DecodeFile(path string) (*ast.CompilationUnit, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer file.Close()

	unit, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return unit, nil
}

// decoder turns YAML nodes into tree nodes. It keeps no state between
// documents.
type decoder struct{}

func fail(n *yaml.Node, format string, args ...interface{}) error {
	line, column := 0, 0
	if n != nil {
		line, column = n.Line, n.Column
	}
	return asterrors.InvalidDocument(line, column, format, args...)
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	n = resolve(n)
	return n == nil || n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}

// fields is a YAML mapping whose keys are consumed one by one; done reports
// the keys nobody asked for.
type fields struct {
	node   *yaml.Node
	keys   []*yaml.Node
	values map[string]*yaml.Node
	used   map[string]bool
}

func mapping(n *yaml.Node, what string) (*fields, error) {
	n = resolve(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil, fail(n, "%s must be a mapping", what)
	}
	f := &fields{
		node:   n,
		values: make(map[string]*yaml.Node, len(n.Content)/2),
		used:   make(map[string]bool, len(n.Content)/2),
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		if key.Kind != yaml.ScalarNode {
			return nil, fail(key, "%s keys must be scalars", what)
		}
		if _, dup := f.values[key.Value]; dup {
			return nil, fail(key, "duplicate %s key %q", what, key.Value)
		}
		f.keys = append(f.keys, key)
		f.values[key.Value] = n.Content[i+1]
	}
	return f, nil
}

// get returns the value under key, or nil when the key is absent.
func (f *fields) get(key string) *yaml.Node {
	f.used[key] = true
	return f.values[key]
}

func (f *fields) require(key, what string) (*yaml.Node, error) {
	v := f.get(key)
	if v == nil {
		return nil, fail(f.node, "%s is missing %q", what, key)
	}
	return v, nil
}

func (f *fields) done(what string) error {
	for _, key := range f.keys {
		if !f.used[key.Value] {
			return fail(key, "unknown %s key %q", what, key.Value)
		}
	}
	return nil
}

// form splits a single-key mapping such as {return: x} into its key and
// value.
func form(n *yaml.Node, what string) (string, *yaml.Node, error) {
	f, err := mapping(n, what)
	if err != nil {
		return "", nil, err
	}
	if len(f.keys) != 1 {
		return "", nil, fail(f.node, "%s must have exactly one key, found %d", what, len(f.keys))
	}
	return f.keys[0].Value, f.values[f.keys[0].Value], nil
}

func str(n *yaml.Node, what string) (string, error) {
	n = resolve(n)
	if n == nil || n.Kind != yaml.ScalarNode || isNull(n) {
		return "", fail(n, "%s must be a string", what)
	}
	if strings.TrimSpace(n.Value) == "" {
		return "", fail(n, "%s must not be empty", what)
	}
	return n.Value, nil
}

// optString returns the string under key, or "" when it is absent or null.
func (f *fields) optString(key, what string) (string, error) {
	v := f.get(key)
	if isNull(v) {
		return "", nil
	}
	return str(v, what)
}

// flag returns the boolean under key, or false when it is absent.
func (f *fields) flag(key string) (bool, error) {
	v := resolve(f.get(key))
	if isNull(v) {
		return false, nil
	}
	var b bool
	if v.Kind != yaml.ScalarNode || v.ShortTag() != "!!bool" || v.Decode(&b) != nil {
		return false, fail(v, "%q must be true or false", key)
	}
	return b, nil
}

// strs accepts a single string or a sequence of strings.
func strs(n *yaml.Node, what string) ([]string, error) {
	n = resolve(n)
	if isNull(n) {
		return nil, nil
	}
	if n.Kind == yaml.ScalarNode {
		s, err := str(n, what)
		if err != nil {
			return nil, err
		}
		return []string{s}, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, fail(n, "%s must be a string or a list of strings", what)
	}
	out := make([]string, 0, len(n.Content))
	for _, item := range n.Content {
		s, err := str(item, what)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// dotted accepts "a.b.c" or [a, b, c].
func dotted(n *yaml.Node, what string) ([]string, error) {
	n = resolve(n)
	if n != nil && n.Kind == yaml.ScalarNode && !isNull(n) {
		parts := strings.Split(n.Value, ".")
		for _, p := range parts {
			if strings.TrimSpace(p) == "" {
				return nil, fail(n, "malformed %s %q", what, n.Value)
			}
		}
		return parts, nil
	}
	parts, err := strs(n, what)
	if err == nil && len(parts) == 0 {
		err = fail(n, "%s must not be empty", what)
	}
	return parts, err
}

// sequence returns the items of a list, or nil for an absent or null value.
func sequence(n *yaml.Node, what string) ([]*yaml.Node, error) {
	n = resolve(n)
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, fail(n, "%s must be a list", what)
	}
	return n.Content, nil
}

// keyword reads a keyword spelling under key and checks it against allowed.
// An absent key gives token.NoKeyword.
func (f *fields) keyword(key string, allowed ...token.Keyword) (token.Keyword, error) {
	v := f.get(key)
	if isNull(v) {
		return token.NoKeyword, nil
	}
	s, err := str(v, key)
	if err != nil {
		return token.NoKeyword, err
	}
	k, ok := token.LookupKeyword(s)
	if ok {
		for _, a := range allowed {
			if k == a {
				return k, nil
			}
		}
	}
	spellings := make([]string, len(allowed))
	for i, a := range allowed {
		spellings[i] = a.Lexeme()
	}
	return token.NoKeyword, fail(v, "%s must be one of %s, got %q", key, strings.Join(spellings, ", "), s)
}
