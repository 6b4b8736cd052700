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

// Package dom provides a minimal XML document model for XMP data.
//
// XMP uses namespace prefixes as part of the property naming scheme, so
// unlike encoding/xml this package keeps element and attribute names in
// their prefixed form ("rdf:Description", "xml:lang").  Namespace URIs
// are only used internally, to recover the prefix chosen by the
// document.
package dom

import "strings"

// Document is the result of parsing one XML document.
type Document struct {
	Root *Node
}

// Node is a single element or text node.
//
// For elements, Name holds the prefixed qualified name and Children the
// child nodes in document order.  For text nodes, Name is empty and
// Text holds the character data verbatim.
type Node struct {
	Name     string
	Attr     []Attr
	Children []*Node
	Text     string
}

// Attr is one attribute of an element, with the name in prefixed form.
type Attr struct {
	Name  string
	Value string
}

// IsText reports whether the node is a text node.
func (n *Node) IsText() bool {
	return n.Name == ""
}

// LocalName returns the part of the node name after the first colon.
func (n *Node) LocalName() string {
	name := n.Name
	if i := strings.IndexByte(name, ':'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// Attribute returns the value of the named attribute.
func (n *Node) Attribute(name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Elements returns the element children of the node, in document order.
func (n *Node) Elements() []*Node {
	var res []*Node
	for _, c := range n.Children {
		if !c.IsText() {
			res = append(res, c)
		}
	}
	return res
}

// TextContent returns the concatenated text children of the node.
func (n *Node) TextContent() string {
	var sb strings.Builder
	for _, c := range n.Children {
		if c.IsText() {
			sb.WriteString(c.Text)
		}
	}
	return sb.String()
}
