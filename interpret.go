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
	"github.com/pkg/errors"
)

// interpretTree merges the contents of every rdf:Description under the
// rdf:RDF root into a single tag map.  Multiple rdf:Description
// siblings are equivalent to one; on duplicate names the last
// occurrence wins.
func interpretTree(root *node) map[string]Tag {
	tags := make(map[string]Tag)
	m, ok := root.children()
	if !ok {
		return tags
	}
	for _, qname := range m.order {
		if qname != elemDescription {
			continue
		}
		for _, d := range allNodes(m.slots[qname]) {
			interpretDescription(d, tags)
		}
	}
	return tags
}

// interpretDescription adds the properties of one rdf:Description to
// tags.  Attributes of the description are simple properties in
// attribute shorthand (ISO 16684-1:2011, appendix C.2.5); element
// children are classified by the rules in classify.
func interpretDescription(d *node, tags map[string]Tag) {
	for _, qname := range d.attrOrder {
		if isSyntacticAttr(qname) {
			continue
		}
		tags[getLocalName(qname)] = scalarTag(qname, d.attr[qname], nil)
	}
	m, ok := d.children()
	if !ok {
		return
	}
	for _, qname := range m.order {
		tag, err := interpretChild(qname, m.slots[qname])
		if err != nil {
			continue
		}
		tags[getLocalName(qname)] = tag
	}
}

// interpretChild classifies one property element.  If the same name
// appeared more than once, only the last occurrence is interpreted.
// A failure caused by a degenerate tree skips the offending property;
// siblings continue.
func interpretChild(qname string, s slot) (tag Tag, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("cannot interpret %s: %v", qname, r)
		}
	}()
	tag, _ = classify(qname, lastNode(s))
	return tag, nil
}

// allNodes expands a slot into the nodes it holds, in document order.
func allNodes(s slot) []*node {
	switch s := s.(type) {
	case *node:
		return []*node{s}
	case nodeSeq:
		return s
	}
	return nil
}

// classify interprets one property element, trying the XMP shorthand
// forms in priority order.  The returned rule number tells array
// interpretation whether the element was a structure.
//
// The forms correspond to the property element taxonomy of ISO
// 16684-1:2011 appendix C.2: parseTypeResourcePropertyElt (with and
// without an rdf:value qualifier form), resourcePropertyElt holding a
// nested rdf:Description, emptyPropertyElt in attribute shorthand,
// the three containers, and literalPropertyElt.
func classify(qname string, n *node) (Tag, int) {
	// empty rdf:parseType="Resource" element
	if n.isResource() && n.isEmpty() {
		return Tag{Value: Text(""), Attributes: map[string]string{}}, 2
	}

	// simple value with qualifiers, compact form
	if n.isResource() {
		if s, ok := n.child(elemValue); ok {
			return qualifiedValue(qname, n, n, s), 3
		}
	}

	// nested rdf:Description: qualified simple value or structure
	if s, ok := n.child(elemDescription); ok {
		inner := lastNode(s)
		if vs, ok := inner.child(elemValue); ok {
			return qualifiedValue(qname, n, inner, vs), 3
		}
		return structTag(qname, n, inner), 4
	}

	// structure, compact form
	if n.isResource() {
		return structTag(qname, n, n), 4
	}

	// structure in attribute shorthand
	if m, ok := n.children(); ok && len(m.slots) == 0 {
		_, hasLang := n.attr[attrXMLLang]
		_, hasURI := n.attr[attrResource]
		if !hasLang && !hasURI {
			return compactStruct(qname, n), 5
		}
	}

	// the three array containers are treated alike
	for _, container := range []string{elemBag, elemSeq, elemAlt} {
		if s, ok := n.child(container); ok {
			return arrayTag(qname, n, lastNode(s)), 6
		}
	}

	// simple value
	return simpleValue(qname, n), 7
}

// scalarTag builds a Tag for a simple string value.
func scalarTag(qname, value string, attrs map[string]string) Tag {
	if attrs == nil {
		attrs = make(map[string]string)
	}
	return Tag{
		Value:       Text(value),
		Attributes:  attrs,
		Description: describeScalar(qname, value),
	}
}

// qualifiedValue interprets a property whose value is wrapped together
// with qualifiers: the value is carried by an rdf:value child of desc,
// and the remaining children and attributes are qualifiers.  For the
// rdf:parseType="Resource" form, desc is the property element itself.
func qualifiedValue(qname string, outer, desc *node, vs slot) Tag {
	v := lastNode(vs)
	value, ok := v.attr[attrResource]
	if !ok {
		value = v.text()
	}

	attrs := make(map[string]string)
	collectAttrs(attrs, outer)
	if desc != outer {
		collectAttrs(attrs, desc)
	}
	if m, ok := desc.children(); ok {
		for _, cq := range m.order {
			if cq == elemValue {
				continue
			}
			attrs[getLocalName(cq)] = lastNode(m.slots[cq]).text()
		}
	}
	return scalarTag(qname, value, attrs)
}

// structTag interprets a structure property.  desc holds the fields:
// either a nested rdf:Description, or the property element itself for
// rdf:parseType="Resource".  Attributes of a nested rdf:Description
// are fields in attribute shorthand, not qualifiers.
func structTag(qname string, outer, desc *node) Tag {
	st := make(Struct)
	if desc != outer {
		for _, aq := range desc.attrOrder {
			if isSyntacticAttr(aq) {
				continue
			}
			st[getLocalName(aq)] = scalarTag(aq, desc.attr[aq], nil)
		}
	}
	if m, ok := desc.children(); ok {
		for _, cq := range m.order {
			tag, err := interpretChild(cq, m.slots[cq])
			if err != nil {
				continue
			}
			st[getLocalName(cq)] = tag
		}
	}

	attrs := make(map[string]string)
	collectAttrs(attrs, outer)
	return Tag{
		Value:       st,
		Attributes:  attrs,
		Description: describeStruct(qname, st),
	}
}

// compactStruct interprets a structure given entirely in attribute
// shorthand: every non-syntactic attribute is a field.
func compactStruct(qname string, n *node) Tag {
	st := make(Struct)
	for _, aq := range n.attrOrder {
		if isSyntacticAttr(aq) {
			continue
		}
		st[getLocalName(aq)] = scalarTag(aq, n.attr[aq], nil)
	}
	return Tag{
		Value:       st,
		Attributes:  make(map[string]string),
		Description: describeStruct(qname, st),
	}
}

// arrayTag interprets an rdf:Bag, rdf:Seq or rdf:Alt container.
func arrayTag(qname string, outer, container *node) Tag {
	items := Array{}
	if s, ok := container.child(elemLi); ok {
		for _, li := range allNodes(s) {
			items = append(items, classifyItem(li))
		}
	}

	attrs := make(map[string]string)
	collectAttrs(attrs, outer)
	return Tag{
		Value:       items,
		Attributes:  attrs,
		Description: describeArray(qname, items),
	}
}

// classifyItem interprets one rdf:li array item.  Structure items are
// unwrapped: the array holds the bare field map instead of a Tag.
func classifyItem(li *node) Item {
	tag, rule := classify(elemLi, li)
	if rule == 4 {
		if st, ok := tag.Value.(Struct); ok {
			return st
		}
	}
	return tag
}

// simpleValue interprets a plain property element: a URI resource, or
// the text content.
func simpleValue(qname string, n *node) Tag {
	value, ok := n.attr[attrResource]
	if !ok {
		value = n.text()
	}
	attrs := make(map[string]string)
	collectAttrs(attrs, n)
	return scalarTag(qname, value, attrs)
}

// collectAttrs copies the non-syntactic attributes of n into dst,
// keyed by local name, with xml:lang renamed to "lang".
func collectAttrs(dst map[string]string, n *node) {
	for _, qname := range n.attrOrder {
		if isSyntacticAttr(qname) {
			continue
		}
		dst[attrLocalName(qname)] = n.attr[qname]
	}
}
