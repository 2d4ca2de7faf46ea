package main

import (
	"comptree/dom"

	"github.com/sirupsen/logrus"
)

func main() {
	page := dom.NewComponent("page", "pages/index")
	root, err := page.AttachShadow(dom.Open)
	if err != nil {
		logrus.Fatal(err)
	}
	wrapper := root.AppendChild(dom.NewNativeNode("view"))
	wrapper.AppendChild(dom.NewSlot(""))

	page.AppendChild(dom.NewNativeNode("text")).AppendChild(dom.NewTextNode("hello"))
	if err := page.DistributeSlots(); err != nil {
		logrus.Fatal(err)
	}

	walker, err := dom.NewTreeWalker(page, dom.ComposedDescendantsRootFirst, dom.FilterAll)
	if err != nil {
		logrus.Fatal(err)
	}
	walker.ForEach(func(n *dom.Node) bool {
		logrus.WithField("type", n.NodeType).Info(n.NodeName)
		return true
	})
}
