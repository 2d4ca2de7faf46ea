package dom

// NodeFilter decides whether a visited node is emitted by a walk. It never
// affects which nodes are descended into, only which are reported.
type NodeFilter func(n *Node) bool

// FilterElement matches element nodes, shadow roots included. It is the
// default filter of a TreeWalker.
func FilterElement(n *Node) bool {
	return n.IsElement()
}

func FilterTextNode(n *Node) bool {
	return n.IsTextNode()
}

func FilterAll(n *Node) bool {
	return true
}

// FilterType matches nodes whose subtype tag is one of the given tags.
func FilterType(types ...NodeType) NodeFilter {
	return func(n *Node) bool {
		for _, t := range types {
			if n.NodeType == t {
				return true
			}
		}
		return false
	}
}
