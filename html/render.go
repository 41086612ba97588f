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

// Package html renders a cheapskate.Blocks document as HTML.
package html

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html/atom"

	"github.com/bgamari/cheapskate"
)

// Renderer converts a parsed document into HTML, honoring the Options
// it was parsed with.
type Renderer struct {
	// Options controls raw-HTML handling (AllowRawHTML, Sanitize) and
	// hard-break rendering (PreserveHardBreaks); see cheapskate.Options.
	Options cheapskate.Options
}

// Render writes blocks to w as HTML, returning the first write error
// encountered, if any.
func Render(w io.Writer, blocks cheapskate.Blocks) error {
	return (&Renderer{}).Render(w, blocks)
}

// Render writes blocks to w as HTML using r's options.
func (r *Renderer) Render(w io.Writer, blocks cheapskate.Blocks) error {
	var buf []byte
	buf = r.AppendBlocks(buf, blocks)
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("render markdown to html: %w", err)
	}
	return nil
}

// AppendBlocks appends the rendered HTML of blocks to dst and returns
// the resulting slice.
func (r *Renderer) AppendBlocks(dst []byte, blocks cheapskate.Blocks) []byte {
	for i, b := range blocks {
		if i > 0 {
			dst = append(dst, '\n')
		}
		dst = r.appendBlock(dst, b, false)
	}
	return dst
}

func (r *Renderer) appendBlock(dst []byte, block cheapskate.Block, tight bool) []byte {
	switch b := block.(type) {
	case *cheapskate.Para:
		if tight {
			return r.appendInlines(dst, b.Inlines)
		}
		dst = openTag(dst, atom.P)
		dst = r.appendInlines(dst, b.Inlines)
		dst = closeTag(dst, atom.P)

	case *cheapskate.Header:
		tag := headerTag(b.Level)
		dst = openTag(dst, tag)
		dst = r.appendInlines(dst, b.Inlines)
		dst = closeTag(dst, tag)

	case *cheapskate.HRule:
		dst = append(dst, "<hr>"...)

	case *cheapskate.CodeBlock:
		dst = append(dst, "<pre><code"...)
		if b.Attr.HasLang {
			dst = append(dst, ` class="language-`...)
			dst = appendEscaped(dst, b.Attr.Lang)
			dst = append(dst, '"')
		}
		dst = append(dst, '>')
		dst = appendEscaped(dst, b.Text)
		if len(b.Text) > 0 {
			dst = append(dst, '\n')
		}
		dst = append(dst, "</code></pre>"...)

	case *cheapskate.Blockquote:
		dst = openTag(dst, atom.Blockquote)
		dst = append(dst, '\n')
		dst = r.AppendBlocks(dst, b.Blocks)
		dst = append(dst, '\n')
		dst = closeTag(dst, atom.Blockquote)

	case *cheapskate.List:
		tagName := atom.Ul
		if b.ListType.Numbered {
			tagName = atom.Ol
			dst = openTagAttr(dst, tagName)
			if b.ListType.Start != 1 {
				dst = append(dst, ` start="`...)
				dst = strconv.AppendInt(dst, int64(b.ListType.Start), 10)
				dst = append(dst, '"')
			}
			dst = append(dst, '>')
		} else {
			dst = openTag(dst, tagName)
		}
		dst = append(dst, '\n')
		for _, item := range b.Items {
			dst = openTag(dst, atom.Li)
			dst = r.appendItemBlocks(dst, item, b.Tight)
			dst = closeTag(dst, atom.Li)
			dst = append(dst, '\n')
		}
		dst = closeTag(dst, tagName)

	case *cheapskate.HTMLBlock:
		switch {
		case r.Options.Sanitize:
			// Dropped entirely rather than escaped into visible text.
		case r.Options.AllowRawHTML:
			dst = append(dst, b.Text...)
		default:
			dst = appendEscaped(dst, b.Text)
		}
	}
	return dst
}

// appendItemBlocks renders a single list item's block sequence. In a
// tight list, each paragraph directly inside the item is unwrapped to
// its inlines.
func (r *Renderer) appendItemBlocks(dst []byte, blocks cheapskate.Blocks, tight bool) []byte {
	for i, b := range blocks {
		if i > 0 {
			dst = append(dst, '\n')
		}
		dst = r.appendBlock(dst, b, tight)
	}
	return dst
}

func headerTag(level int) atom.Atom {
	switch level {
	case 1:
		return atom.H1
	case 2:
		return atom.H2
	case 3:
		return atom.H3
	case 4:
		return atom.H4
	case 5:
		return atom.H5
	default:
		return atom.H6
	}
}

func openTagAttr(dst []byte, name atom.Atom) []byte {
	dst = append(dst, '<')
	dst = append(dst, name.String()...)
	return dst
}

func openTag(dst []byte, name atom.Atom) []byte {
	dst = openTagAttr(dst, name)
	return append(dst, '>')
}

func closeTag(dst []byte, name atom.Atom) []byte {
	dst = append(dst, "</"...)
	dst = append(dst, name.String()...)
	return append(dst, '>')
}
