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
	"strings"
)

// getLocalName strips the namespace prefix from a qualified name.
//
// The Windows rating written by Microsoft tooling appears under varying
// prefixes (MicrosoftPhoto, MicrosoftPhoto_1_, ...); all of these are
// mapped to the single name "RatingPercent".
func getLocalName(qname string) string {
	if microsoftRating.MatchString(qname) {
		return "RatingPercent"
	}
	if i := strings.IndexByte(qname, ':'); i >= 0 {
		return qname[i+1:]
	}
	return qname
}

var microsoftRating = regexp.MustCompile(`(?i)^microsoftphoto(_\d+_)?:rating$`)

// isSyntacticAttr reports whether an attribute belongs to the RDF/XML
// syntax rather than to the metadata.  Such attributes never appear in
// a Tag's attribute map.
func isSyntacticAttr(qname string) bool {
	return qname == "xmlns" ||
		strings.HasPrefix(qname, "xmlns:") ||
		qname == attrParseType ||
		qname == attrResource
}

// attrLocalName maps an attribute name to the key used in a Tag's
// attribute map.  xml:lang becomes "lang"; all other attributes only
// drop their prefix.
func attrLocalName(qname string) string {
	if qname == attrXMLLang {
		return "lang"
	}
	return getLocalName(qname)
}

// Qualified names of the RDF/XML syntax elements.  XMP identifies
// properties by prefix, and the rdf prefix is universal in practice, so
// these are matched literally.
const (
	elemRDF         = "rdf:RDF"
	elemDescription = "rdf:Description"
	elemBag         = "rdf:Bag"
	elemSeq         = "rdf:Seq"
	elemAlt         = "rdf:Alt"
	elemLi          = "rdf:li"
	elemValue       = "rdf:value"

	attrParseType = "rdf:parseType"
	attrResource  = "rdf:resource"
	attrXMLLang   = "xml:lang"
)

// defaultNamespace maps well-known prefixes to their namespace URIs.
// The table is used to synthesize declarations when repairing documents
// which use a prefix without declaring it.
var defaultNamespace = map[string]string{
	"rdf":          "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
	"x":            "adobe:ns:meta/",
	"xml":          "http://www.w3.org/XML/1998/namespace",
	"xmp":          "http://ns.adobe.com/xap/1.0/",
	"xmpMM":        "http://ns.adobe.com/xap/1.0/mm/",
	"xmpRights":    "http://ns.adobe.com/xap/1.0/rights/",
	"xmpidq":       "http://ns.adobe.com/xmp/Identifier/qual/1.0/",
	"stRef":        "http://ns.adobe.com/xap/1.0/sType/ResourceRef#",
	"dc":           "http://purl.org/dc/elements/1.1/",
	"tiff":         "http://ns.adobe.com/tiff/1.0/",
	"exif":         "http://ns.adobe.com/exif/1.0/",
	"aux":          "http://ns.adobe.com/exif/1.0/aux/",
	"photoshop":    "http://ns.adobe.com/photoshop/1.0/",
	"crs":          "http://ns.adobe.com/camera-raw-settings/1.0/",
	"Iptc4xmpCore": "http://iptc.org/std/Iptc4xmpCore/1.0/xmlns/",
}
