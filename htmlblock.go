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

package cheapskate

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// htmlBlockTags is the fixed allow-list of block-level tag names whose
// presence at the start of a line opens a raw HTML block. Matched via
// golang.org/x/net/html/atom the way the teacher's internal/normhtml
// classifies block-level tags.
var htmlBlockTags = map[atom.Atom]struct{}{
	atom.Article:    {},
	atom.Header:     {},
	atom.Aside:      {},
	atom.Hgroup:     {},
	atom.Blockquote: {},
	atom.Hr:         {},
	atom.Body:       {},
	atom.Li:         {},
	atom.Br:         {},
	atom.Map:        {},
	atom.Button:     {},
	atom.Object:     {},
	atom.Canvas:     {},
	atom.Ol:         {},
	atom.Caption:    {},
	atom.Output:     {},
	atom.Col:        {},
	atom.P:          {},
	atom.Colgroup:   {},
	atom.Pre:        {},
	atom.Dd:         {},
	atom.Progress:   {},
	atom.Div:        {},
	atom.Section:    {},
	atom.Dl:         {},
	atom.Table:      {},
	atom.Dt:         {},
	atom.Tbody:      {},
	atom.Embed:      {},
	atom.Textarea:   {},
	atom.Fieldset:   {},
	atom.Tfoot:      {},
	atom.Figcaption: {},
	atom.Th:         {},
	atom.Figure:     {},
	atom.Thead:      {},
	atom.Footer:     {},
	atom.Tr:         {},
	atom.Form:       {},
	atom.Ul:         {},
	atom.H1:         {},
	atom.H2:         {},
	atom.H3:         {},
	atom.H4:         {},
	atom.H5:         {},
	atom.H6:         {},
	atom.Video:      {},
}

// parseHTMLBlockStart reports whether s opens a raw HTML block: either
// a recognised tag (open or close) whose name is in htmlBlockTags, or
// the literal "<!--" or "-->".
func parseHTMLBlockStart(s string) bool {
	if strings.HasPrefix(s, "<!--") || strings.HasPrefix(s, "-->") {
		return true
	}
	if len(s) < 2 || s[0] != '<' {
		return false
	}
	rest := s[1:]
	rest = strings.TrimPrefix(rest, "/")
	end := 0
	for end < len(rest) && isTagNameByte(rest[end]) {
		end++
	}
	if end == 0 {
		return false
	}
	name := rest[:end]
	if end < len(rest) {
		c := rest[end]
		if c != ' ' && c != '\t' && c != '>' && c != '/' {
			return false
		}
	}
	_, ok := htmlBlockTags[atom.Lookup([]byte(strings.ToLower(name)))]
	return ok
}

func isTagNameByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-'
}
