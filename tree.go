// seehuhn.de/go/xmptags - human-readable XMP tag dictionaries in Go
// Copyright (C) 2024  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package xmptags

import (
	"strings"

	"github.com/pkg/errors"

	"seehuhn.de/go/xmptags/dom"
)

// node is the parser-independent intermediate form of one XML element.
// Child and attribute insertion order is preserved, so that "the last
// occurrence wins" is well-defined when distinct qualified names map to
// the same local name.
type node struct {
	attr      map[string]string
	attrOrder []string
	value     nodeValue
}

// nodeValue is the content of a node: textValue for text-only
// elements, childMap otherwise.  An empty element has an empty
// childMap.
type nodeValue interface {
	isNodeValue()
}

// textValue is the collapsed form of an element with exactly one text
// child.  Whitespace is preserved verbatim.
type textValue string

// childMap holds the element children, keyed by qualified name.
type childMap struct {
	slots map[string]slot
	order []string // qualified names, first-occurrence document order
}

func (textValue) isNodeValue() {}
func (childMap) isNodeValue()  {}

// slot distinguishes a single child from repeated children of the same
// name.
type slot interface {
	isSlot()
}

func (*node) isSlot() {}

// nodeSeq holds repeated children of one name, in document order.
type nodeSeq []*node

func (nodeSeq) isSlot() {}

// lastNode reduces a slot to its final node.
func lastNode(s slot) *node {
	switch s := s.(type) {
	case *node:
		return s
	case nodeSeq:
		if len(s) == 0 {
			return nil
		}
		return s[len(s)-1]
	}
	return nil
}

// errNoRDF is reported for documents without an rdf:RDF element.
var errNoRDF = errors.New("no rdf:RDF element found")

// toTree locates the rdf:RDF root, optionally wrapped in x:xmpmeta,
// and converts it into the intermediate tree.
func toTree(doc *dom.Document) (*node, error) {
	root := doc.Root
	if root == nil {
		return nil, errNoRDF
	}
	if root.Name != elemRDF {
		var rdf *dom.Node
		for _, c := range root.Elements() {
			if c.Name == elemRDF {
				rdf = c
				break
			}
		}
		if rdf == nil {
			return nil, errNoRDF
		}
		root = rdf
	}
	return buildNode(root), nil
}

// buildNode converts one DOM element, applying the collapsing rules:
// an element with exactly text content becomes a string value, an
// element without children an empty mapping, and repeated child names
// a sequence.
func buildNode(el *dom.Node) *node {
	n := &node{attr: make(map[string]string)}
	for _, a := range el.Attr {
		if _, ok := n.attr[a.Name]; !ok {
			n.attrOrder = append(n.attrOrder, a.Name)
		}
		n.attr[a.Name] = a.Value
	}

	elements := el.Elements()
	if len(elements) == 0 {
		if text := el.TextContent(); text != "" {
			n.value = textValue(text)
		} else {
			n.value = childMap{slots: make(map[string]slot)}
		}
		return n
	}

	children := childMap{slots: make(map[string]slot)}
	for _, c := range elements {
		child := buildNode(c)
		switch prev := children.slots[c.Name].(type) {
		case nil:
			children.slots[c.Name] = child
			children.order = append(children.order, c.Name)
		case *node:
			children.slots[c.Name] = nodeSeq{prev, child}
		case nodeSeq:
			children.slots[c.Name] = append(prev, child)
		}
	}
	n.value = children
	return n
}

// children returns the node's child map, or false for text values.
func (n *node) children() (childMap, bool) {
	m, ok := n.value.(childMap)
	return m, ok
}

// text returns the node's textual value.  Elements with child elements
// have no textual value.
func (n *node) text() string {
	if t, ok := n.value.(textValue); ok {
		return string(t)
	}
	return ""
}

// isEmpty reports whether the node has no children and at most
// whitespace text.  Trimming is used only for this test; text values
// are otherwise preserved verbatim.
func (n *node) isEmpty() bool {
	switch v := n.value.(type) {
	case textValue:
		return strings.TrimSpace(string(v)) == ""
	case childMap:
		return len(v.slots) == 0
	}
	return true
}

// isResource reports whether the node carries rdf:parseType="Resource".
func (n *node) isResource() bool {
	return n.attr[attrParseType] == "Resource"
}

// child returns the slot for one qualified child name.
func (n *node) child(qname string) (slot, bool) {
	m, ok := n.children()
	if !ok {
		return nil, false
	}
	s, ok := m.slots[qname]
	return s, ok
}
