package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.id
	}
	return out
}

func TestNode_AddAndRemoveChildKeepOrder(t *testing.T) {
	parent := NewNode("p")
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	parent.AddChild(a, b, c)
	require.Equal(t, []string{"a", "b", "c"}, ids(parent.Children()))

	require.True(t, parent.RemoveChild(a))
	assert.Equal(t, []string{"b", "c"}, ids(parent.Children()))
	assert.Nil(t, a.Parent())

	require.False(t, parent.RemoveChild(a))
}

func TestNode_InsertChild(t *testing.T) {
	type tc struct {
		index int
		want  []string
	}

	tests := map[string]tc{
		"front":          {index: 0, want: []string{"x", "a", "b"}},
		"middle":         {index: 1, want: []string{"a", "x", "b"}},
		"end":            {index: 2, want: []string{"a", "b", "x"}},
		"past end clamps": {index: 9, want: []string{"a", "b", "x"}},
		"negative clamps": {index: -1, want: []string{"x", "a", "b"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := NewNode("p", Children(NewNode("a"), NewNode("b")))
			parent.InsertChild(tt.index, NewNode("x"))
			assert.Equal(t, tt.want, ids(parent.Children()))
		})
	}
}

func TestNode_AddChildReparents(t *testing.T) {
	first := NewNode("first")
	second := NewNode("second")
	child := NewNode("child")

	first.AddChild(child)
	second.AddChild(child)

	assert.Empty(t, first.Children())
	assert.Equal(t, second, child.Parent())
}

func TestNode_Walk(t *testing.T) {
	root := NewNode("r", Children(
		NewNode("a", Children(NewNode("a1"), NewNode("a2"))),
		NewNode("b"),
	))

	var visited []string
	root.Walk(func(n *Node) bool {
		visited = append(visited, n.id)
		return n.id != "a2"
	})
	assert.Equal(t, []string{"r", "a", "a1", "a2"}, visited)
}

func TestNode_FocusableFlags(t *testing.T) {
	type tc struct {
		opts []NodeOption
		want bool
	}

	tests := map[string]tc{
		"plain":              {want: false},
		"focusable":          {opts: []NodeOption{Focusable()}, want: true},
		"focusable disabled": {opts: []NodeOption{Focusable(), Disabled()}, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewNode("n", tt.opts...).IsFocusable())
		})
	}
}

func TestNode_HiddenInTree(t *testing.T) {
	leaf := NewNode("leaf")
	mid := NewNode("mid", Children(leaf))
	NewNode("top", Children(mid))

	assert.False(t, leaf.IsHiddenInTree())
	mid.hidden = true
	assert.True(t, leaf.IsHiddenInTree())
	assert.False(t, leaf.IsHidden())
}

func TestNode_Label(t *testing.T) {
	n := NewNode("save", Label("Save"))
	assert.Equal(t, "Save", n.Label())
	assert.Equal(t, "save", n.ElementID())
	n.SetLabel("Saved")
	assert.Equal(t, "Saved", n.Label())
	assert.Equal(t, "x", NewNode("x").Label())
}
