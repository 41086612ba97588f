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

package html

import (
	"go4.org/bytereplacer"

	"github.com/bgamari/cheapskate"
)

// htmlEscaper replaces the five characters significant to an HTML
// parser. It escapes the same characters as the internal/normhtml test
// helper, except that it writes "&#39;" for an apostrophe where
// normhtml writes "&apos;".
var htmlEscaper = bytereplacer.New(
	"&", "&amp;",
	`'`, "&#39;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

// uriEscaper replaces characters that would break out of an href/src
// attribute without fully percent-encoding the URI, matching a
// renderer's minimal obligation for link destinations.
var uriEscaper = bytereplacer.New(
	"&", "&amp;",
	`"`, "%22",
	" ", "%20",
)

func appendEscaped(dst []byte, s string) []byte {
	return append(dst, htmlEscaper.Replace([]byte(s))...)
}

func appendEscapedURI(dst []byte, s string) []byte {
	return append(dst, uriEscaper.Replace([]byte(s))...)
}

func (r *Renderer) appendInlines(dst []byte, inlines cheapskate.Inlines) []byte {
	for _, inl := range inlines {
		dst = r.appendInline(dst, inl)
	}
	return dst
}

func (r *Renderer) appendInline(dst []byte, inl cheapskate.Inline) []byte {
	switch inl.Kind {
	case cheapskate.TextInline:
		dst = appendEscaped(dst, inl.Text)
	case cheapskate.CodeSpanInline:
		dst = append(dst, "<code>"...)
		dst = appendEscaped(dst, inl.Text)
		dst = append(dst, "</code>"...)
	case cheapskate.EmphasisInline:
		dst = append(dst, "<em>"...)
		dst = r.appendInlines(dst, inl.Children)
		dst = append(dst, "</em>"...)
	case cheapskate.StrongInline:
		dst = append(dst, "<strong>"...)
		dst = r.appendInlines(dst, inl.Children)
		dst = append(dst, "</strong>"...)
	case cheapskate.LinkInline:
		dst = append(dst, `<a href="`...)
		dst = appendEscapedURI(dst, inl.Dest)
		dst = append(dst, '"')
		if inl.Title != "" {
			dst = append(dst, ` title="`...)
			dst = appendEscaped(dst, inl.Title)
			dst = append(dst, '"')
		}
		dst = append(dst, '>')
		dst = r.appendInlines(dst, inl.Children)
		dst = append(dst, "</a>"...)
	case cheapskate.AutolinkInline:
		dst = append(dst, `<a href="`...)
		dst = appendEscapedURI(dst, inl.Dest)
		dst = append(dst, `">`...)
		dst = appendEscaped(dst, inl.Text)
		dst = append(dst, "</a>"...)
	case cheapskate.SoftBreakInline:
		dst = append(dst, '\n')
	case cheapskate.HardBreakInline:
		if r.Options.PreserveHardBreaks {
			dst = append(dst, "<br>\n"...)
		} else {
			dst = append(dst, ' ')
		}
	}
	return dst
}
