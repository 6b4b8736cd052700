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

func TestAssemble(t *testing.T) {
	buf := []byte("..aaa.bb.c.")
	chunks := []Chunk{
		{DataOffset: 2, Length: 3},
		{DataOffset: 6, Length: 2},
		{DataOffset: 9, Length: 1},
	}
	want := []string{"aaa", "bbc"}
	if d := cmp.Diff(want, assemble(buf, chunks)); d != "" {
		t.Errorf("unexpected documents (-want +got):\n%s", d)
	}

	if got := assemble(buf, nil); got != nil {
		t.Errorf("unexpected documents: %v", got)
	}
}

func TestAssembleClamped(t *testing.T) {
	buf := []byte("abc")
	chunks := []Chunk{{DataOffset: 1, Length: 100}}
	want := []string{"bc"}
	if d := cmp.Diff(want, assemble(buf, chunks)); d != "" {
		t.Errorf("unexpected documents (-want +got):\n%s", d)
	}
}

func TestAssembleSplitUTF8(t *testing.T) {
	// a multi-byte sequence spanning an extended chunk boundary must
	// survive reassembly
	payload := []byte("xmpéxmp")
	buf := append([]byte("head"), payload...)
	chunks := []Chunk{
		{DataOffset: 0, Length: 4},
		{DataOffset: 4, Length: 4}, // ends inside the é sequence
		{DataOffset: 8, Length: 4},
	}
	docs := assemble(buf, chunks)
	if len(docs) != 2 || docs[1] != "xmpéxmp" {
		t.Errorf("unexpected documents: %q", docs)
	}
}

func TestDecodeUTF8(t *testing.T) {
	if got := decodeUTF8([]byte("h\xffi")); got != "h�i" {
		t.Errorf("unexpected result: %q", got)
	}
	if got := decodeUTF8([]byte("plain")); got != "plain" {
		t.Errorf("unexpected result: %q", got)
	}
}

func TestTrimPacket(t *testing.T) {
	type testCase struct {
		desc string
		in   string
		out  string
	}
	cases := []testCase{
		{
			desc: "full envelope",
			in:   "\xff\xe1junk<?xpacket begin=\"\" id=\"i\"?><x/><?xpacket end=\"w\"?>padding",
			out:  `<?xpacket begin="" id="i"?><x/><?xpacket end="w"?>`,
		},
		{
			desc: "no envelope",
			in:   `<x/>`,
			out:  `<x/>`,
		},
		{
			desc: "header only",
			in:   `junk<?xpacket begin=""?><x/>`,
			out:  `<?xpacket begin=""?><x/>`,
		},
		{
			desc: "first trailer wins",
			in:   `<?xpacket begin=""?><x/><?xpacket end="w"?><?xpacket end="r"?>`,
			out:  `<?xpacket begin=""?><x/><?xpacket end="w"?>`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			if got := trimPacket(tc.in); got != tc.out {
				t.Errorf("unexpected result: %q", got)
			}
		})
	}
}
