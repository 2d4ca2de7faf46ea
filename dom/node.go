package dom

import "strings"

type NodeType uint16

const (
	NativeNode NodeType = iota + 1
	ComponentNode
	VirtualNode
	ShadowRootNode
	TextNode
	CommentNode
	FragmentNode
)

// Node is a single node in a component tree. Every node takes part in two
// relations at once: the shadow tree (ParentNode/ChildNodes, the nesting the
// author declared) and the composed tree (ComposedParentNode/
// ComposedChildNodes, the effective rendered nesting after slot
// distribution). The two relations are defined over the same nodes but need
// not agree on structure or order.
type Node struct {
	NodeType                                                        NodeType
	NodeName                                                        string
	ParentNode, FirstChild, LastChild, PreviousSibling, NextSibling *Node
	ChildNodes                                                      NodeList

	// AssignedSlot is the slot this node was distributed into, if any.
	AssignedSlot *Node

	// composed overrides recorded by Compose; composedSet distinguishes an
	// empty override from no override at all
	composedParent   *Node
	composedChildren NodeList
	composedSet      bool

	// Node types
	*Element
	*Text
	*Comment
	*ShadowRoot
}

// Element carries the element-only state shared by native nodes, components,
// virtual nodes and shadow roots.
type Element struct {
	TagName string
	ID      string
	Class   string

	// Slot names the slot this node asks to be distributed into.
	Slot string

	// SlotName is the name a slot node accepts; Assigned holds the light
	// children distributed into it.
	SlotName string
	Assigned NodeList

	// Is names the behavior definition of a component; Shadow is its
	// attached shadow root.
	Is     string
	Shadow *Node
}

type Text struct {
	Data   string
	Length int
}

type Comment struct {
	Data string
}

func NewNativeNode(name string) *Node {
	return &Node{
		NodeType: NativeNode,
		NodeName: name,
		Element:  &Element{TagName: name},
	}
}

func NewComponent(name, is string) *Node {
	return &Node{
		NodeType: ComponentNode,
		NodeName: name,
		Element:  &Element{TagName: name, Is: is},
	}
}

func NewVirtualNode(name string) *Node {
	return &Node{
		NodeType: VirtualNode,
		NodeName: name,
		Element:  &Element{},
	}
}

// NewSlot returns a slot node accepting light children that ask for the
// given name. The default slot has the empty name.
func NewSlot(name string) *Node {
	return &Node{
		NodeType: VirtualNode,
		NodeName: "slot",
		Element:  &Element{SlotName: name},
	}
}

func NewTextNode(text string) *Node {
	return &Node{
		NodeType: TextNode,
		NodeName: "#text",
		Text: &Text{
			Data:   text,
			Length: len(text),
		},
	}
}

func NewComment(data string) *Node {
	return &Node{
		NodeType: CommentNode,
		NodeName: "#comment",
		Comment:  &Comment{Data: data},
	}
}

func NewFragment() *Node {
	return &Node{
		NodeType: FragmentNode,
		NodeName: "#fragment",
	}
}

// IsElement reports whether the node can carry children. Shadow roots count:
// they hold a shadow tree of their own.
func (n *Node) IsElement() bool {
	switch n.NodeType {
	case NativeNode, ComponentNode, VirtualNode, ShadowRootNode:
		return true
	}
	return false
}

func (n *Node) IsTextNode() bool {
	return n.NodeType == TextNode
}

// IsSlot reports whether the node is a distribution target.
func (n *Node) IsSlot() bool {
	return n.NodeType == VirtualNode && n.NodeName == "slot"
}

// IsShadowHost reports whether the node is a component with a shadow root
// attached.
func (n *Node) IsShadowHost() bool {
	return n.NodeType == ComponentNode && n.Element.Shadow != nil
}

func (n *Node) HasChildNodes() bool {
	return len(n.ChildNodes) > 0
}

func (n *Node) AppendChild(on *Node) *Node {
	if n.LastChild != nil {
		on.PreviousSibling = n.LastChild
		n.LastChild.NextSibling = on
	} else {
		n.FirstChild = on
	}
	on.ParentNode = n
	n.LastChild = on
	n.ChildNodes = append(n.ChildNodes, on)
	return on
}

func (n *Node) InsertBefore(on, child *Node) *Node {
	i := n.ChildNodes.Contains(child)
	if i == -1 {
		return n.AppendChild(on)
	}
	n.ChildNodes.WedgeIn(i, on)
	on.ParentNode = n
	on.NextSibling = child
	on.PreviousSibling = child.PreviousSibling
	if child.PreviousSibling != nil {
		child.PreviousSibling.NextSibling = on
	} else {
		n.FirstChild = on
	}
	child.PreviousSibling = on
	return on
}

func (n *Node) RemoveChild(child *Node) *Node {
	node := n.ChildNodes.Remove(n.ChildNodes.Contains(child))
	if node == nil {
		return nil
	}
	if node.PreviousSibling != nil {
		node.PreviousSibling.NextSibling = node.NextSibling
	} else {
		n.FirstChild = node.NextSibling
	}
	if node.NextSibling != nil {
		node.NextSibling.PreviousSibling = node.PreviousSibling
	} else {
		n.LastChild = node.PreviousSibling
	}
	node.ParentNode = nil
	node.PreviousSibling = nil
	node.NextSibling = nil
	return node
}

// Root follows shadow parents up to the top of the shadow tree.
func (n *Node) Root() *Node {
	var prev *Node
	for i := n; i != nil; i = i.ParentNode {
		prev = i
	}
	return prev
}

// ComposedParentNode returns the node's parent in the composed tree. A
// shadow root composes under its host; a distributed node composes under its
// slot; an undistributed light child of a shadow host composes nowhere.
func (n *Node) ComposedParentNode() *Node {
	if n.composedParent != nil {
		return n.composedParent
	}
	if n.NodeType == ShadowRootNode {
		return n.ShadowRoot.Host
	}
	if n.AssignedSlot != nil {
		return n.AssignedSlot
	}
	p := n.ParentNode
	if p != nil && p.IsShadowHost() {
		return nil
	}
	return p
}

// ComposedChildNodes returns the node's children in the composed tree. A
// shadow host composes its shadow root in place of its light children; a
// slot composes the nodes distributed into it.
func (n *Node) ComposedChildNodes() NodeList {
	if n.composedSet {
		return n.composedChildren
	}
	if n.IsShadowHost() {
		return NodeList{n.Element.Shadow}
	}
	if n.IsSlot() {
		return n.Element.Assigned
	}
	return n.ChildNodes
}

// Compose overrides the node's composed children, detaching them from
// whatever the shadow structure would derive. Slot distribution produces the
// composed relation for the common case; Compose is the escape hatch for
// building one directly.
func (n *Node) Compose(children ...*Node) {
	n.composedChildren = NodeList(children)
	n.composedSet = true
	for _, child := range children {
		child.composedParent = n
	}
}

func serializeNodeType(node *Node) string {
	switch node.NodeType {
	case TextNode:
		return "\"" + node.Text.Data + "\""
	case CommentNode:
		return "<!-- " + node.Comment.Data + " -->"
	case ShadowRootNode:
		return "#shadow-root"
	case FragmentNode:
		return "#fragment"
	default:
		return "<" + node.NodeName + ">"
	}
}

func (node *Node) serialize(ident int) string {
	ser := serializeNodeType(node) + "\n"
	if ident > 0 {
		spaces := "| "
		for i := 1; i < ident; i++ {
			spaces += "  "
		}
		ser = spaces + ser
	}
	for _, child := range node.ChildNodes {
		ser += child.serialize(ident + 1)
	}
	return ser
}

func (node *Node) String() string {
	return strings.TrimRight(node.serialize(0), "\n")
}
