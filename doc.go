// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package cheapskate implements a block-level Markdown parser in the
// style of CommonMark's container-based algorithm: a per-line pass
// walks the stack of open containers, closes the ones a line no longer
// continues, opens whatever new containers the remainder of the line
// starts, and finally appends a leaf. Once every line has been
// consumed, the resulting container tree is flattened into a sequence
// of [Block] values suitable for rendering.
//
// The package deliberately does not implement the full CommonMark
// inline grammar or HTML-entity table; see the html subpackage for a
// renderer and SPEC_FULL.md for the documented scope.
package cheapskate

import (
	"io"
	"os"
)

// Options controls [Parse]'s behavior.
type Options struct {
	// Debug, if true, makes Parse print the raw container tree to
	// DebugWriter (or os.Stderr if nil) instead of producing Blocks.
	Debug bool

	// AllowRawHTML controls whether the html subpackage's renderer
	// passes HTMLBlock content through verbatim (true) or escapes it
	// into visible text (false). Parse itself always retains raw HTML
	// blocks in the tree; this flag and Sanitize are read by the
	// renderer, not by Parse.
	AllowRawHTML bool

	// Sanitize requests that the html subpackage strip raw HTML blocks
	// entirely rather than escaping or passing them through; it takes
	// precedence over AllowRawHTML.
	Sanitize bool

	// PreserveHardBreaks makes the html subpackage render a hard line
	// break (trailing double space before a newline) as <br> instead
	// of collapsing it to a single space.
	PreserveHardBreaks bool

	// DebugWriter receives the Debug tree dump. Defaults to os.Stderr.
	DebugWriter io.Writer
}

// Parse parses text as a sequence of block-level elements, returning
// the resulting Blocks and the table of link reference definitions
// collected along the way.
//
// Parse is infallible: malformed input degrades to plain paragraphs
// rather than producing an error, matching the scanning functions it's
// built from.
func Parse(opts Options, text string) (Blocks, ReferenceMap) {
	b := newBuilder()
	for _, ln := range splitLines(text) {
		b.processLine(ln)
	}
	doc, refmap := b.finish()

	if opts.Debug {
		w := opts.DebugWriter
		if w == nil {
			w = os.Stderr
		}
		dumpContainer(w, doc, 0)
		return nil, refmap
	}

	return processElements(refmap, doc.children), refmap
}
