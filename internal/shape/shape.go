// Package shape checks a tree against the node shapes available in a given
// language version. The factory always builds the newest shapes; Check
// reports the nodes a consumer pinned to an older version could not accept.
package shape

import (
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"

	"github.com/orizon-lang/astkit/internal/ast"
	asterrors "github.com/orizon-lang/astkit/internal/errors"
)

// Feature names a node shape that did not exist in every language version.
type Feature string

const (
	AsyncBody      Feature = "async-body"
	AsyncGenerator Feature = "async-generator"
	SyncGenerator  Feature = "sync-generator"
	Await          Feature = "await-expression"
	AwaitFor       Feature = "await-for"
	Yield          Feature = "yield-statement"
	Enum           Feature = "enum-declaration"
	DeferredImport Feature = "deferred-import"
	WithClause     Feature = "with-clause"
	Cascade        Feature = "cascade"
	SymbolLiteral  Feature = "symbol-literal"
	Rethrow        Feature = "rethrow"
	MixinAlias     Feature = "mixin-class-alias"
)

// introduced maps each feature to the first version that accepts it.
// Shapes present since the first stable release map to 1.0.0.
var introduced = map[Feature]string{
	AsyncBody:      "1.9.0",
	AsyncGenerator: "1.9.0",
	SyncGenerator:  "1.9.0",
	Await:          "1.9.0",
	AwaitFor:       "1.9.0",
	Yield:          "1.9.0",
	Enum:           "1.8.0",
	DeferredImport: "1.6.0",
	WithClause:     "1.0.0",
	Cascade:        "1.0.0",
	SymbolLiteral:  "1.0.0",
	Rethrow:        "1.0.0",
	MixinAlias:     "1.0.0",
}

// Features returns every known feature ordered by introduction, then name.
func Features() []Feature {
	out := make([]Feature, 0, len(introduced))
	for f := range introduced {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		vi, vj := out[i].Introduced(), out[j].Introduced()
		if !vi.Equal(vj) {
			return vi.LessThan(vj)
		}
		return out[i] < out[j]
	})
	return out
}

// Introduced returns the first version that accepts f, or nil for an unknown
// feature.
func (f Feature) Introduced() *semver.Version {
	v, ok := introduced[f]
	if !ok {
		return nil
	}
	return semver.MustParse(v)
}

// Supported reports whether version accepts f.
func Supported(f Feature, version string) (bool, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false, fmt.Errorf("invalid language version %q: %w", version, err)
	}
	c, err := constraintFor(f)
	if err != nil {
		return false, err
	}
	return c.Check(v), nil
}

// constraintFor accepts the introducing version, its prereleases and
// everything after. The "-0" suffix keeps prerelease targets such as
// 2.0.0-dev.1 in range.
func constraintFor(f Feature) (*semver.Constraints, error) {
	v, ok := introduced[f]
	if !ok {
		return nil, fmt.Errorf("unknown feature %q", f)
	}
	return semver.NewConstraint(">= " + v + "-0")
}

// Violation is one node whose shape the target version does not accept.
type Violation struct {
	Feature  Feature
	Node     ast.Node
	Requires *semver.Version
}

// Err returns the violation as an error matching errors.ErrUnsupportedShape.
func (v Violation) Err(version string) error {
	return asterrors.UnsupportedShape(string(v.Feature), version, v.Requires.String())
}

// Detect returns the features node itself uses, without looking at its
// children.
func Detect(node ast.Node) []Feature {
	switch n := node.(type) {
	case *ast.BlockFunctionBody:
		switch {
		case n.IsAsync() && n.IsGenerator():
			return []Feature{AsyncGenerator}
		case n.IsAsync():
			return []Feature{AsyncBody}
		case n.IsGenerator():
			return []Feature{SyncGenerator}
		}
	case *ast.ExpressionFunctionBody:
		if n.IsAsync() {
			return []Feature{AsyncBody}
		}
	case *ast.AwaitExpression:
		return []Feature{Await}
	case *ast.ForEachStatement:
		if n.AwaitKeyword != nil {
			return []Feature{AwaitFor}
		}
	case *ast.YieldStatement:
		return []Feature{Yield}
	case *ast.EnumDeclaration:
		return []Feature{Enum}
	case *ast.ImportDirective:
		if n.IsDeferred() {
			return []Feature{DeferredImport}
		}
	case *ast.WithClause:
		return []Feature{WithClause}
	case *ast.CascadeExpression:
		return []Feature{Cascade}
	case *ast.SymbolLiteral:
		return []Feature{SymbolLiteral}
	case *ast.RethrowExpression:
		return []Feature{Rethrow}
	case *ast.ClassTypeAlias:
		return []Feature{MixinAlias}
	}
	return nil
}

// Check walks root in source order and returns every node the given
// language version cannot accept. The error is non-nil only for a malformed
// version.
func Check(root ast.Node, version string) ([]Violation, error) {
	target, err := semver.NewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("invalid language version %q: %w", version, err)
	}

	constraints := make(map[Feature]*semver.Constraints, len(introduced))
	for f := range introduced {
		c, err := constraintFor(f)
		if err != nil {
			return nil, err
		}
		constraints[f] = c
	}

	var violations []Violation
	ast.Inspect(root, func(n ast.Node) bool {
		for _, f := range Detect(n) {
			if !constraints[f].Check(target) {
				violations = append(violations, Violation{Feature: f, Node: n, Requires: f.Introduced()})
			}
		}
		return true
	})
	return violations, nil
}

// MinimumVersion returns the lowest version that accepts every node under
// root.
func MinimumVersion(root ast.Node) *semver.Version {
	minimum := semver.MustParse("1.0.0")
	ast.Inspect(root, func(n ast.Node) bool {
		for _, f := range Detect(n) {
			if v := f.Introduced(); v.GreaterThan(minimum) {
				minimum = v
			}
		}
		return true
	})
	return minimum
}
