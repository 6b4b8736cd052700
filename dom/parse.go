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

package dom

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// xmlNamespace is the namespace which encoding/xml substitutes for the
// predeclared "xml" prefix.
const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

// Parse converts the XML document in src into a Document.
//
// Processing instructions, comments and directives are skipped.  An XML
// declaration naming an encoding other than UTF-8 is ignored, since the
// input string has already been decoded.  Namespace prefixes without a
// declaration are kept as-is.
func Parse(src string) (*Document, error) {
	dec := xml.NewDecoder(strings.NewReader(src))
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	// encoding/xml resolves prefixes to namespace URIs.  XMP property
	// names are prefix-based, so we keep a reverse map from URI back to
	// the prefix declared in the document.
	prefixes := map[string]string{
		xmlNamespace: "xml",
	}

	var root *Node
	var stack []*Node
	for {
		t, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "malformed XML")
		}

		switch t := t.(type) {
		case xml.StartElement:
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" {
					prefixes[a.Value] = a.Name.Local
				} else if a.Name.Space == "" && a.Name.Local == "xmlns" {
					prefixes[a.Value] = ""
				}
			}
			n := &Node{Name: qualify(prefixes, t.Name)}
			for _, a := range t.Attr {
				n.Attr = append(n.Attr, Attr{
					Name:  qualifyAttr(prefixes, a.Name),
					Value: a.Value,
				})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("multiple root elements")
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			parent := stack[len(stack)-1]
			if k := len(parent.Children); k > 0 && parent.Children[k-1].IsText() {
				parent.Children[k-1].Text += string(t)
			} else {
				parent.Children = append(parent.Children, &Node{Text: string(t)})
			}
		}
	}
	if root == nil {
		return nil, errors.New("no XML content")
	}
	return &Document{Root: root}, nil
}

func qualify(prefixes map[string]string, name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	prefix, ok := prefixes[name.Space]
	if !ok {
		// An undeclared prefix is passed through by encoding/xml in
		// place of the namespace URI.
		prefix = name.Space
	}
	if prefix == "" {
		return name.Local
	}
	return prefix + ":" + name.Local
}

func qualifyAttr(prefixes map[string]string, name xml.Name) string {
	if name.Space == "xmlns" {
		return "xmlns:" + name.Local
	}
	if name.Space == "" && name.Local == "xmlns" {
		return "xmlns"
	}
	return qualify(prefixes, name)
}
