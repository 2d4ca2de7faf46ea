package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendChild(t *testing.T) {
	parent := NewNativeNode("parent")
	a := parent.AppendChild(NewNativeNode("a"))
	b := parent.AppendChild(NewNativeNode("b"))

	assert.Equal(t, NodeList{a, b}, parent.ChildNodes)
	assert.Equal(t, a, parent.FirstChild)
	assert.Equal(t, b, parent.LastChild)
	assert.Equal(t, b, a.NextSibling)
	assert.Equal(t, a, b.PreviousSibling)
	assert.Equal(t, parent, a.ParentNode)
	assert.True(t, parent.HasChildNodes())
}

func TestInsertBefore(t *testing.T) {
	parent := NewNativeNode("parent")
	b := parent.AppendChild(NewNativeNode("b"))
	a := parent.InsertBefore(NewNativeNode("a"), b)

	assert.Equal(t, NodeList{a, b}, parent.ChildNodes)
	assert.Equal(t, a, parent.FirstChild)
	assert.Equal(t, b, a.NextSibling)
	assert.Equal(t, a, b.PreviousSibling)

	// an unknown reference node falls back to append
	c := parent.InsertBefore(NewNativeNode("c"), NewNativeNode("stranger"))
	assert.Equal(t, NodeList{a, b, c}, parent.ChildNodes)
	assert.Equal(t, c, parent.LastChild)
}

func TestRemoveChild(t *testing.T) {
	parent := NewNativeNode("parent")
	a := parent.AppendChild(NewNativeNode("a"))
	b := parent.AppendChild(NewNativeNode("b"))
	c := parent.AppendChild(NewNativeNode("c"))

	removed := parent.RemoveChild(b)
	require.Equal(t, b, removed)
	assert.Equal(t, NodeList{a, c}, parent.ChildNodes)
	assert.Equal(t, c, a.NextSibling)
	assert.Equal(t, a, c.PreviousSibling)
	assert.Nil(t, b.ParentNode)

	parent.RemoveChild(a)
	parent.RemoveChild(c)
	assert.Nil(t, parent.FirstChild)
	assert.Nil(t, parent.LastChild)
	assert.False(t, parent.HasChildNodes())

	assert.Nil(t, parent.RemoveChild(b), "removing a non-child is a no-op")
}

func TestRoot(t *testing.T) {
	nodes := sampleTree()
	assert.Equal(t, nodes["a"], nodes["d"].Root())
	assert.Equal(t, nodes["a"], nodes["a"].Root())
}

func TestComposedDefaultsToShadow(t *testing.T) {
	nodes := sampleTree()
	assert.Equal(t, nodes["b"], nodes["d"].ComposedParentNode())
	assert.Nil(t, nodes["a"].ComposedParentNode())
	assert.Equal(t, nodes["b"].ChildNodes, nodes["b"].ComposedChildNodes())
}

func TestComposeEmptyHidesChildren(t *testing.T) {
	nodes := sampleTree()
	nodes["b"].Compose()
	assert.Empty(t, nodes["b"].ComposedChildNodes())

	w := mustWalker(t, nodes["a"], ComposedDescendantsRootFirst, FilterAll)
	assert.Equal(t, []string{"a", "b", "c"}, collect(w))
}

func TestString(t *testing.T) {
	parent := NewNativeNode("view")
	parent.AppendChild(NewNativeNode("text")).AppendChild(NewTextNode("hi"))
	parent.AppendChild(NewComment("aside"))

	want := "<view>\n" +
		"| <text>\n" +
		"|   \"hi\"\n" +
		"| <!-- aside -->"
	assert.Equal(t, want, parent.String())
}
