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
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Reader reads XMP metadata into tag dictionaries.  The zero value is
// ready to use and employs [DefaultParser].
//
// A Reader holds no state across calls; it is safe to use from
// independent goroutines.
type Reader struct {
	// Parser, if non-nil, overrides DefaultParser for this reader.
	Parser Parser

	// Warn, if non-nil, receives diagnostics for conditions which do
	// not abort reading, such as a missing parser or a chunk which
	// cannot be parsed.
	Warn func(error)
}

// ErrNoParser is reported through the Warn sink when no XML parser is
// available.
var ErrNoParser = errors.New("no XML parser available")

// Read reads the XMP document in src and returns the tag dictionary.
// Read never fails: a document which cannot be parsed yields an empty
// dictionary.
func Read(src string) TagMap {
	return (&Reader{}).Read(src)
}

// ReadChunks reads the XMP chunks located in buf.  The first chunk is
// the standard XMP document; any further chunks together form the
// extended XMP document and are concatenated in the given order.
func ReadChunks(buf []byte, chunks []Chunk) TagMap {
	return (&Reader{}).ReadChunks(buf, chunks)
}

// ReadReader reads a single XMP document from r.  Only reading from r
// can fail; the XMP data itself is processed as in [Read].
func ReadReader(r io.Reader) (TagMap, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return TagMap{}, err
	}
	return Read(decodeUTF8(b)), nil
}

// Read reads the XMP document in src.
func (r *Reader) Read(src string) TagMap {
	return r.read([]string{src})
}

// ReadChunks reads the XMP chunks located in buf.
func (r *Reader) ReadChunks(buf []byte, chunks []Chunk) TagMap {
	docs := assemble(buf, chunks)
	if len(docs) == 0 {
		return TagMap{Tags: make(map[string]Tag)}
	}
	return r.read(docs)
}

func (r *Reader) read(docs []string) TagMap {
	p := r.Parser
	if p == nil {
		p = DefaultParser
	}
	if p == nil {
		r.warn(ErrNoParser)
		return TagMap{Tags: make(map[string]Tag)}
	}

	res := TagMap{Tags: make(map[string]Tag)}
	parsed := 0
	for _, doc := range docs {
		tags, err := readDocument(p, doc)
		if err != nil {
			r.warn(err)
			continue
		}
		parsed++
		res.Raw += doc
		for name, tag := range tags {
			res.Tags[name] = tag
		}
	}

	// Some writers split one document across the standard and extended
	// chunks.  If no chunk parses on its own, retry with all chunks
	// joined into a single document.
	if parsed == 0 && len(docs) > 1 {
		combined := strings.Join(docs, "")
		tags, err := readDocument(p, combined)
		if err != nil {
			r.warn(err)
			return res
		}
		res.Raw = combined
		res.Tags = tags
	}
	return res
}

func readDocument(p Parser, src string) (map[string]Tag, error) {
	doc, err := parseDocument(p, trimPacket(src))
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse XMP")
	}
	tree, err := toTree(doc)
	if err != nil {
		return nil, err
	}
	return interpretTree(tree), nil
}

func (r *Reader) warn(err error) {
	if r.Warn != nil {
		r.Warn(err)
	}
}
