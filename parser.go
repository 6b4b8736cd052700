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
	"regexp"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"seehuhn.de/go/xmptags/dom"
)

// Parser converts one XML document into a document model.  A Parser
// can be set per [Reader], or process-wide through [DefaultParser].
type Parser interface {
	Parse(src string) (*dom.Document, error)
}

// DefaultParser is the parser used when a Reader does not carry its
// own.  It can be swapped, but swaps are not interlocked against
// concurrent reads; callers must serialize them.
var DefaultParser Parser = StdParser{}

// StdParser parses XMP documents using encoding/xml.
type StdParser struct{}

// Parse implements the [Parser] interface.
func (StdParser) Parse(src string) (*dom.Document, error) {
	return dom.Parse(src)
}

// parseDocument runs the parser on one document and normalizes all
// failure modes — a returned error, a panic, or a browser-style
// parsererror element in the result — into a single not-ok outcome.
//
// If the failure looks like an unbound namespace prefix, the missing
// declarations are inserted and the parse is retried, once.
func parseDocument(p Parser, src string) (*dom.Document, error) {
	doc, err := safeParse(p, src)
	if err == nil {
		return doc, nil
	}
	if needsNamespaceRepair(err) {
		if fixed, changed := repairNamespaces(src); changed {
			if doc, err2 := safeParse(p, fixed); err2 == nil {
				return doc, nil
			}
		}
	}
	return nil, err
}

func safeParse(p Parser, src string) (doc *dom.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("XML parser panic: %v", r)
		}
	}()
	doc, err = p.Parse(src)
	if err != nil {
		return nil, err
	}
	if doc == nil || doc.Root == nil {
		return nil, errors.New("XML parser returned no document")
	}
	if n := findParserError(doc.Root); n != nil {
		return nil, errors.Errorf("XML parse error: %s", strings.TrimSpace(n.TextContent()))
	}
	return doc, nil
}

// findParserError looks for the parsererror element which DOM parsers
// in the browser tradition report parse failures with.
func findParserError(n *dom.Node) *dom.Node {
	if n.LocalName() == "parsererror" {
		return n
	}
	for _, c := range n.Elements() {
		if e := findParserError(c); e != nil {
			return e
		}
	}
	return nil
}

var unboundPrefix = regexp.MustCompile(`(?i)(unbound|undefined|undeclared|not defined|not declared).*(prefix|namespace)|namespace prefix`)

func needsNamespaceRepair(err error) bool {
	return err != nil && unboundPrefix.MatchString(err.Error())
}

var prefixUse = regexp.MustCompile(`[<\s]([A-Za-z_][A-Za-z0-9_.-]*):[A-Za-z_]`)

// repairNamespaces inserts declarations for every prefix used in src
// which has no xmlns declaration in src yet, into the opening tag of
// the root element.  Well-known prefixes get
// their standard namespace URI, others a synthesized one.
func repairNamespaces(src string) (string, bool) {
	seen := make(map[string]bool)
	for _, m := range prefixUse.FindAllStringSubmatch(src, -1) {
		prefix := m[1]
		if prefix == "xml" || prefix == "xmlns" {
			continue
		}
		if strings.Contains(src, "xmlns:"+prefix+"=") {
			continue
		}
		seen[prefix] = true
	}
	if len(seen) == 0 {
		return src, false
	}
	prefixes := make([]string, 0, len(seen))
	for prefix := range seen {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)

	var decls strings.Builder
	for _, prefix := range prefixes {
		uri, ok := defaultNamespace[prefix]
		if !ok {
			uri = "http://ns." + prefix + ".invalid/"
		}
		decls.WriteString(` xmlns:` + prefix + `="` + uri + `"`)
	}

	m := rootTag.FindStringSubmatchIndex(src)
	if m == nil {
		return src, false
	}
	insert := m[3] // end of the root element name
	return src[:insert] + decls.String() + src[insert:], true
}

// rootTag matches the name of the first element start tag, skipping
// processing instructions, comments and doctype declarations.
var rootTag = regexp.MustCompile(`<([A-Za-z_][^\s/>]*)`)
