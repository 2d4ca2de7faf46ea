package dom

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type ShadowRootMode string

const (
	Open   ShadowRootMode = "open"
	Closed ShadowRootMode = "closed"
)

type ShadowRoot struct {
	Mode ShadowRootMode
	Host *Node
}

// AttachShadow creates a shadow root on a component and returns it. The
// shadow root heads a shadow tree of its own: it has no shadow parent, and
// its composed parent is the host.
func (n *Node) AttachShadow(mode ShadowRootMode) (*Node, error) {
	if n.NodeType != ComponentNode {
		return nil, errors.Errorf("cannot attach a shadow root to node %q of type %d", n.NodeName, n.NodeType)
	}
	if n.Element.Shadow != nil {
		return nil, errors.Errorf("node %q already has a shadow root", n.NodeName)
	}
	root := &Node{
		NodeType:   ShadowRootNode,
		NodeName:   "#shadow-root",
		Element:    &Element{},
		ShadowRoot: &ShadowRoot{Mode: mode, Host: n},
	}
	n.Element.Shadow = root
	return root, nil
}

// DistributeSlots assigns the host's light children to the slots declared in
// its shadow tree, by slot name, recording the composed relation on both
// sides. Slots are collected in shadow-tree order; the first slot of a name
// wins. A light child with no matching slot ends up with no composed parent.
// Nested hosts distribute their own light trees.
func (host *Node) DistributeSlots() error {
	if !host.IsShadowHost() {
		return errors.Errorf("node %q of type %d is not a shadow host", host.NodeName, host.NodeType)
	}

	walker, err := NewTreeWalker(host.Element.Shadow, ShadowDescendantsRootFirst, FilterType(VirtualNode))
	if err != nil {
		return err
	}
	slots := map[string]*Node{}
	for slot := range walker.Nodes() {
		if !slot.IsSlot() {
			continue
		}
		slot.Element.Assigned = nil
		name := slot.Element.SlotName
		if _, ok := slots[name]; ok {
			logrus.WithField("slot", name).Debug("duplicate slot name, keeping the first")
			continue
		}
		slots[name] = slot
	}

	for _, child := range host.ChildNodes {
		var name string
		if child.Element != nil {
			name = child.Element.Slot
		}
		slot, ok := slots[name]
		if !ok {
			child.AssignedSlot = nil
			logrus.WithFields(logrus.Fields{
				"host": host.NodeName,
				"node": child.NodeName,
				"slot": name,
			}).Debug("no slot for node, left undistributed")
			continue
		}
		child.AssignedSlot = slot
		slot.Element.Assigned = append(slot.Element.Assigned, child)
		logrus.WithFields(logrus.Fields{
			"host": host.NodeName,
			"node": child.NodeName,
			"slot": name,
		}).Debug("node distributed")
	}
	return nil
}
