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
	"testing"

	"github.com/google/go-cmp/cmp"
)

const (
	head = `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns:xmp="http://ns.adobe.com/xap/1.0/" xmlns:tiff="http://ns.adobe.com/tiff/1.0/">` + "\n"
	foot = "\n</rdf:RDF>"
)

type interpretTestCase struct {
	desc string
	in   string
	out  map[string]Tag
}

// noAttrs is the attribute map of an unqualified tag.
var noAttrs = map[string]string{}

func simple(value string) Tag {
	return Tag{Value: Text(value), Attributes: noAttrs, Description: value}
}

// interpretTestCases covers the XMP shorthand forms.  The input is
// wrapped in an rdf:RDF element declaring the rdf, xmp and tiff
// prefixes.
var interpretTestCases = []interpretTestCase{
	{
		desc: "attribute shorthand on the description",
		in:   `<rdf:Description xmp:Foo="4711"/>`,
		out: map[string]Tag{
			"Foo": simple("4711"),
		},
	},
	{
		desc: "simple text property",
		in:   `<rdf:Description><xmp:Foo>bar</xmp:Foo></rdf:Description>`,
		out: map[string]Tag{
			"Foo": simple("bar"),
		},
	},
	{
		desc: "text with CDATA",
		in:   `<rdf:Description><xmp:Foo><![CDATA[</xmp:Foo>]]></xmp:Foo></rdf:Description>`,
		out: map[string]Tag{
			"Foo": simple("</xmp:Foo>"),
		},
	},
	{
		desc: "whitespace is preserved",
		in:   `<rdf:Description><xmp:Foo> padded </xmp:Foo></rdf:Description>`,
		out: map[string]Tag{
			"Foo": simple(" padded "),
		},
	},
	{
		desc: "URI resource",
		in:   `<rdf:Description><xmp:Foo rdf:resource="http://example.com/"/></rdf:Description>`,
		out: map[string]Tag{
			"Foo": simple("http://example.com/"),
		},
	},
	{
		desc: "language qualifier on a simple value",
		in:   `<rdf:Description><xmp:Foo xml:lang="de">hallo</xmp:Foo></rdf:Description>`,
		out: map[string]Tag{
			"Foo": {
				Value:       Text("hallo"),
				Attributes:  map[string]string{"lang": "de"},
				Description: "hallo",
			},
		},
	},
	{
		desc: "rdf:about becomes a tag",
		in:   `<rdf:Description rdf:about="urn:item:1"><xmp:Foo>1</xmp:Foo></rdf:Description>`,
		out: map[string]Tag{
			"about": simple("urn:item:1"),
			"Foo":   simple("1"),
		},
	},
	{
		desc: "structure in attribute shorthand",
		in:   `<rdf:Description><xmp:S xmp:A="47" xmp:B="11"/></rdf:Description>`,
		out: map[string]Tag{
			"S": {
				Value: Struct{
					"A": simple("47"),
					"B": simple("11"),
				},
				Attributes:  noAttrs,
				Description: "A: 47; B: 11",
			},
		},
	},
	{
		desc: "empty parseType resource",
		in:   `<rdf:Description><xmp:Foo rdf:parseType="Resource"/></rdf:Description>`,
		out: map[string]Tag{
			"Foo": {Value: Text(""), Attributes: noAttrs, Description: ""},
		},
	},
	{
		desc: "qualified value, parseType form",
		in: `<rdf:Description><xmp:Foo rdf:parseType="Resource">
				<rdf:value>V</rdf:value>
				<xmp:Q>W</xmp:Q>
			</xmp:Foo></rdf:Description>`,
		out: map[string]Tag{
			"Foo": {
				Value:       Text("V"),
				Attributes:  map[string]string{"Q": "W"},
				Description: "V",
			},
		},
	},
	{
		desc: "qualified value, nested description form",
		in: `<rdf:Description><xmp:Foo>
				<rdf:Description xmp:Q="x">
					<rdf:value rdf:resource="http://example.com/"/>
				</rdf:Description>
			</xmp:Foo></rdf:Description>`,
		out: map[string]Tag{
			"Foo": {
				Value:       Text("http://example.com/"),
				Attributes:  map[string]string{"Q": "x"},
				Description: "http://example.com/",
			},
		},
	},
	{
		desc: "structure, parseType form",
		in: `<rdf:Description><xmp:S rdf:parseType="Resource">
				<xmp:A>1</xmp:A>
				<xmp:B>2</xmp:B>
			</xmp:S></rdf:Description>`,
		out: map[string]Tag{
			"S": {
				Value: Struct{
					"A": simple("1"),
					"B": simple("2"),
				},
				Attributes:  noAttrs,
				Description: "A: 1; B: 2",
			},
		},
	},
	{
		desc: "structure, nested description with attribute fields",
		in: `<rdf:Description><xmp:S>
				<rdf:Description xmp:C="3">
					<xmp:A>1</xmp:A>
				</rdf:Description>
			</xmp:S></rdf:Description>`,
		out: map[string]Tag{
			"S": {
				Value: Struct{
					"A": simple("1"),
					"C": simple("3"),
				},
				Attributes:  noAttrs,
				Description: "A: 1; C: 3",
			},
		},
	},
	{
		desc: "unordered array with language qualifiers",
		in: `<rdf:Description><xmp:Arr xml:lang="en"><rdf:Bag>
				<rdf:li>47</rdf:li>
				<rdf:li xml:lang="sv">11</rdf:li>
			</rdf:Bag></xmp:Arr></rdf:Description>`,
		out: map[string]Tag{
			"Arr": {
				Value: Array{
					simple("47"),
					Tag{
						Value:       Text("11"),
						Attributes:  map[string]string{"lang": "sv"},
						Description: "11",
					},
				},
				Attributes:  map[string]string{"lang": "en"},
				Description: "47, 11",
			},
		},
	},
	{
		desc: "ordered array",
		in: `<rdf:Description><xmp:Arr><rdf:Seq>
				<rdf:li>4</rdf:li>
				<rdf:li>5</rdf:li>
			</rdf:Seq></xmp:Arr></rdf:Description>`,
		out: map[string]Tag{
			"Arr": {
				Value:       Array{simple("4"), simple("5")},
				Attributes:  noAttrs,
				Description: "4, 5",
			},
		},
	},
	{
		desc: "alternative array",
		in: `<rdf:Description><xmp:Arr><rdf:Alt>
				<rdf:li xml:lang="x-default">one</rdf:li>
			</rdf:Alt></xmp:Arr></rdf:Description>`,
		out: map[string]Tag{
			"Arr": {
				Value: Array{
					Tag{
						Value:       Text("one"),
						Attributes:  map[string]string{"lang": "x-default"},
						Description: "one",
					},
				},
				Attributes:  noAttrs,
				Description: "one",
			},
		},
	},
	{
		desc: "empty array",
		in:   `<rdf:Description><xmp:Arr><rdf:Bag/></xmp:Arr></rdf:Description>`,
		out: map[string]Tag{
			"Arr": {
				Value:       Array{},
				Attributes:  noAttrs,
				Description: "",
			},
		},
	},
	{
		desc: "structure items appear unwrapped in arrays",
		in: `<rdf:Description><xmp:Arr><rdf:Seq>
				<rdf:li rdf:parseType="Resource">
					<xmp:A>1</xmp:A>
				</rdf:li>
			</rdf:Seq></xmp:Arr></rdf:Description>`,
		out: map[string]Tag{
			"Arr": {
				Value: Array{
					Struct{"A": simple("1")},
				},
				Attributes:  noAttrs,
				Description: "A: 1",
			},
		},
	},
	{
		desc: "orientation is translated",
		in:   `<rdf:Description><tiff:Orientation>3</tiff:Orientation></rdf:Description>`,
		out: map[string]Tag{
			"Orientation": {
				Value:       Text("3"),
				Attributes:  noAttrs,
				Description: "Rotate 180",
			},
		},
	},
	{
		desc: "unknown orientation passes through",
		in:   `<rdf:Description><tiff:Orientation>9</tiff:Orientation></rdf:Description>`,
		out: map[string]Tag{
			"Orientation": simple("9"),
		},
	},
	{
		desc: "creator contact info",
		in: `<rdf:Description><Iptc4xmpCore:CreatorContactInfo
				Iptc4xmpCore:CiAdrCity="Paris"
				Iptc4xmpCore:CiAdrCtry="France"
				Iptc4xmpCore:CiAdrExtadr="1 Rue X"
				Iptc4xmpCore:CiAdrPcode="75000"
				Iptc4xmpCore:CiAdrRegion="IdF"
				Iptc4xmpCore:CiEmailWork="e@example.com"
				Iptc4xmpCore:CiTelWork="+33 1 23"
				Iptc4xmpCore:CiUrlWork="example.com"/></rdf:Description>`,
		out: map[string]Tag{
			"CreatorContactInfo": {
				Value: Struct{
					"CiAdrCity":   simple("Paris"),
					"CiAdrCtry":   simple("France"),
					"CiAdrExtadr": simple("1 Rue X"),
					"CiAdrPcode":  simple("75000"),
					"CiAdrRegion": simple("IdF"),
					"CiEmailWork": simple("e@example.com"),
					"CiTelWork":   simple("+33 1 23"),
					"CiUrlWork":   simple("example.com"),
				},
				Attributes: noAttrs,
				Description: "CreatorCity: Paris; CreatorCountry: France; " +
					"CreatorAddress: 1 Rue X; CreatorPostalCode: 75000; " +
					"CreatorRegion: IdF; CreatorWorkEmail: e@example.com; " +
					"CreatorWorkPhone: +33 1 23; CreatorWorkUrl: example.com",
			},
		},
	},
	{
		desc: "MicrosoftPhoto rating, last occurrence wins",
		in: `<rdf:Description>
				<MicrosoftPhoto:Rating>40</MicrosoftPhoto:Rating>
				<MicroSoftPhoto_1_:Rating>50</MicroSoftPhoto_1_:Rating>
			</rdf:Description>`,
		out: map[string]Tag{
			"RatingPercent": simple("50"),
		},
	},
	{
		desc: "duplicate names, last occurrence wins",
		in: `<rdf:Description>
				<xmp:Foo>1</xmp:Foo>
				<xmp:Foo>2</xmp:Foo>
			</rdf:Description>`,
		out: map[string]Tag{
			"Foo": simple("2"),
		},
	},
	{
		desc: "multiple descriptions merge",
		in: `<rdf:Description><xmp:A>1</xmp:A></rdf:Description>
			<rdf:Description><xmp:B>2</xmp:B></rdf:Description>`,
		out: map[string]Tag{
			"A": simple("1"),
			"B": simple("2"),
		},
	},
	{
		desc: "empty element without attributes",
		in:   `<rdf:Description><xmp:S/></rdf:Description>`,
		out: map[string]Tag{
			"S": {
				Value:       Struct{},
				Attributes:  noAttrs,
				Description: "",
			},
		},
	},
	{
		desc: "components configuration uses the array translator",
		in: `<rdf:Description><exif:ComponentsConfiguration><rdf:Seq>
				<rdf:li>1</rdf:li>
				<rdf:li>2</rdf:li>
				<rdf:li>3</rdf:li>
				<rdf:li>0</rdf:li>
			</rdf:Seq></exif:ComponentsConfiguration></rdf:Description>`,
		out: map[string]Tag{
			"ComponentsConfiguration": {
				Value: Array{
					simple("1"), simple("2"), simple("3"), simple("0"),
				},
				Attributes:  noAttrs,
				Description: "Y, Cb, Cr, -",
			},
		},
	},
}

func TestInterpret(t *testing.T) {
	for _, tc := range interpretTestCases {
		t.Run(tc.desc, func(t *testing.T) {
			res := Read(head + tc.in + foot)
			if d := cmp.Diff(tc.out, res.Tags); d != "" {
				t.Errorf("unexpected tags (-want +got):\n%s", d)
			}
		})
	}
}
