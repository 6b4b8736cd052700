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

// Package xmptags reads Extensible Metadata Platform (XMP) data into
// human-readable tag dictionaries.
//
// XMP is RDF/XML and admits several equivalent syntactic forms for the
// same metadata: attribute shorthand, structure elements,
// rdf:parseType="Resource" compaction, nested rdf:Description elements
// with qualifiers, the three array containers, URI resources and
// language alternatives (ISO 16684-1:2011, appendix C).  This package
// unifies all of these into a single value model: each property
// becomes a [Tag] with a [Value], a qualifier attribute map, and a
// display string.
//
// # Reading
//
// Use [Read] for XMP given as a string, for example the content of a
// TIFF ApplicationNotes tag, and [ReadChunks] for XMP embedded in an
// image file, where a container reader has located the payload
// segments.  A second and further [Chunk] carry extended XMP, the
// convention for splitting one XMP tree across multiple JPEG segments;
// the chunks are reassembled before parsing.
//
// Reading never fails.  Malformed documents yield an empty dictionary,
// a missing namespace declaration is repaired, and an interpretation
// problem in one property leaves its siblings intact.  Diagnostics are
// available through the [Reader.Warn] sink.
//
// # Parsers
//
// XML parsing is pluggable: any implementation of [Parser] can be set
// on a [Reader] or installed process-wide in [DefaultParser].  The
// default, [StdParser], uses the parser from
// [seehuhn.de/go/xmptags/dom].
package xmptags
