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

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Chunk locates one XMP payload inside a larger buffer, typically an
// image file segment located by a container reader.
type Chunk struct {
	DataOffset int
	Length     int
}

// assemble converts the chunks into up to two XML documents: the
// standard XMP (the first chunk alone) and the extended XMP (the
// remaining chunks, byte-concatenated in the given order).
//
// Extended XMP splits a single document across segments, so the chunk
// bytes are joined before decoding; a multi-byte UTF-8 sequence may
// span a chunk boundary.
func assemble(buf []byte, chunks []Chunk) []string {
	if len(chunks) == 0 {
		return nil
	}
	docs := []string{decodeUTF8(slice(buf, chunks[0]))}
	if len(chunks) > 1 {
		var ext []byte
		for _, c := range chunks[1:] {
			ext = append(ext, slice(buf, c)...)
		}
		docs = append(docs, decodeUTF8(ext))
	}
	return docs
}

// slice extracts the chunk bytes, clamped to the buffer bounds.
func slice(buf []byte, c Chunk) []byte {
	start := c.DataOffset
	if start < 0 {
		start = 0
	}
	if start > len(buf) {
		start = len(buf)
	}
	end := start + c.Length
	if c.Length < 0 || end > len(buf) {
		end = len(buf)
	}
	return buf[start:end]
}

// decodeUTF8 interprets b as UTF-8.  Invalid byte sequences become
// replacement characters instead of aborting the parse.
func decodeUTF8(b []byte) string {
	s, _, err := transform.Bytes(unicode.UTF8.NewDecoder(), b)
	if err != nil {
		return string(b)
	}
	return string(s)
}

// trimPacket removes content before the xpacket header and after the
// xpacket trailer.  This strips both the XMP packet wrapper and any
// framing bytes from the enclosing image segment, such as the JPEG
// APP1 namespace marker preceding the packet.
func trimPacket(s string) string {
	if i := strings.Index(s, "<?xpacket begin"); i >= 0 {
		s = s[i:]
	}
	if m := packetEnd.FindStringIndex(s); m != nil {
		s = s[:m[1]]
	}
	return s
}

var packetEnd = regexp.MustCompile(`<\?xpacket end="[^"]*"\?>`)
