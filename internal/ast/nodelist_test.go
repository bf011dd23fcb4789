package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	asterrors "github.com/orizon-lang/astkit/internal/errors"
)

func names(l *NodeList[*SimpleIdentifier]) []string {
	var out []string
	for _, n := range l.All() {
		out = append(out, n.Name())
	}
	return out
}

func TestNodeListInsertSetsOwner(t *testing.T) {
	owner := block()
	list := NewNodeList[*SimpleIdentifier](owner)

	require.NoError(t, list.Add(ident("a")))
	require.NoError(t, list.Add(ident("c")))
	require.NoError(t, list.Insert(1, ident("b")))

	assert.Equal(t, []string{"a", "b", "c"}, names(list))
	for _, n := range list.All() {
		assert.Same(t, owner, n.Parent())
	}
	assert.Same(t, owner, list.Owner())
}

func TestNodeListBounds(t *testing.T) {
	list := NewNodeList[*SimpleIdentifier](block())
	require.NoError(t, list.AddAll([]*SimpleIdentifier{ident("a"), ident("b")}))

	tests := []struct {
		name string
		op   func() error
	}{
		{"get negative", func() error { _, err := list.Get(-1); return err }},
		{"get at len", func() error { _, err := list.Get(2); return err }},
		{"set at len", func() error { _, err := list.Set(2, ident("x")); return err }},
		{"remove at len", func() error { _, err := list.RemoveAt(2); return err }},
		{"insert past len", func() error { return list.Insert(3, ident("x")) }},
		{"insert negative", func() error { return list.Insert(-1, ident("x")) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.op(), asterrors.ErrIndexOutOfBounds)
			assert.Equal(t, 2, list.Len())
		})
	}

	assert.Panics(t, func() { list.At(5) })
}

func TestNodeListInsertAtLenAppends(t *testing.T) {
	list := NewNodeList[*SimpleIdentifier](block())
	require.NoError(t, list.Insert(0, ident("a")))
	require.NoError(t, list.Insert(1, ident("b")))

	assert.Equal(t, []string{"a", "b"}, names(list))
}

func TestNodeListSetReturnsPreviousAndDetachesIt(t *testing.T) {
	owner := block()
	list := NewNodeList[*SimpleIdentifier](owner)
	first := ident("a")
	require.NoError(t, list.Add(first))

	old, err := list.Set(0, ident("z"))
	require.NoError(t, err)
	assert.Same(t, first, old)
	assert.Nil(t, first.Parent())
	assert.Equal(t, []string{"z"}, names(list))
}

func TestNodeListRemoveAt(t *testing.T) {
	list := NewNodeList[*SimpleIdentifier](block())
	require.NoError(t, list.AddAll([]*SimpleIdentifier{ident("a"), ident("b"), ident("c")}))

	removed, err := list.RemoveAt(1)
	require.NoError(t, err)
	assert.Equal(t, "b", removed.Name())
	assert.Nil(t, removed.Parent())
	assert.Equal(t, []string{"a", "c"}, names(list))
}

func TestNodeListRejectsForeignNodes(t *testing.T) {
	taken := ident("a")
	exprStmt(taken)

	list := NewNodeList[*SimpleIdentifier](block())
	assert.ErrorIs(t, list.Add(taken), asterrors.ErrNodeAlreadyAttached)
	assert.True(t, list.IsEmpty())

	require.Error(t, list.Add(nil))
}

func TestNodeListAddAllEmpty(t *testing.T) {
	list := NewNodeList[*SimpleIdentifier](block())
	require.NoError(t, list.AddAll(nil))
	require.NoError(t, list.AddAll([]*SimpleIdentifier{}))
	assert.Equal(t, 0, list.Len())
	assert.Nil(t, list.BeginToken())
	assert.Nil(t, list.EndToken())
}

func TestNodeListTokensFollowElements(t *testing.T) {
	list := NewNodeList[*SimpleIdentifier](block())
	require.NoError(t, list.AddAll([]*SimpleIdentifier{ident("a"), ident("b")}))

	assert.Equal(t, "a", list.BeginToken().Lexeme())
	assert.Equal(t, "b", list.EndToken().Lexeme())
}

func TestNodeListSliceIsACopy(t *testing.T) {
	list := NewNodeList[*SimpleIdentifier](block())
	require.NoError(t, list.Add(ident("a")))

	s := list.Slice()
	s[0] = ident("b")
	assert.Equal(t, []string{"a"}, names(list))
	assert.Equal(t, 0, list.IndexOf(list.At(0)))
	assert.Equal(t, -1, list.IndexOf(s[0]))
}

func TestCreateNodeListMatchesNew(t *testing.T) {
	owner := block()
	created := CreateNodeList[Statement](owner)
	fresh := NewNodeList[Statement](owner)

	assert.Equal(t, 0, created.Len())
	assert.Equal(t, fresh.Len(), created.Len())
	assert.True(t, created.IsEmpty())
	assert.Same(t, fresh.Owner(), created.Owner())
	assert.Nil(t, created.BeginToken())
	assert.Nil(t, created.EndToken())

	require.NoError(t, created.Add(exprStmt(ident("a"))))
	assert.Same(t, owner, created.Owner())
	assert.Equal(t, 1, created.Len())
}

func TestNodeListIndexOf(t *testing.T) {
	a, b, c := ident("a"), ident("b"), ident("c")
	list := NewNodeList[*SimpleIdentifier](block())
	require.NoError(t, list.AddAll([]*SimpleIdentifier{a, b, c}))

	tests := []struct {
		name string
		node Node
		want int
	}{
		{"first", a, 0},
		{"middle", b, 1},
		{"last", c, 2},
		{"same text other node", ident("a"), -1},
		{"nil", nil, -1},
		{"typed nil", (*SimpleIdentifier)(nil), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, list.IndexOf(tt.node))
		})
	}
}

func TestNodeListOfInterfaceElements(t *testing.T) {
	owner := block()
	list := newNodeListOf[Statement](owner, []Statement{exprStmt(ident("a")), nil, (*ExpressionStatement)(nil)})

	require.Equal(t, 1, list.Len())
	assert.Same(t, owner, list.At(0).Parent())
	assert.Equal(t, 0, list.IndexOf(list.At(0)))
	assert.Error(t, list.Add(nil))
	assert.Error(t, list.Add((*ExpressionStatement)(nil)))
}

func TestLibraryIdentifierComponents(t *testing.T) {
	lib := NewLibraryIdentifier([]*SimpleIdentifier{ident("app"), ident("main")})

	assert.Equal(t, "app.main", lib.Name())
	for _, c := range lib.Components.All() {
		assert.Same(t, lib, c.Parent())
	}
	assert.Equal(t, []Node{lib.Components.At(0), lib.Components.At(1)}, Children(lib))
}
