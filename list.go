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

import "strings"

// Delim is the character that follows a numbered list marker's digits.
type Delim byte

const (
	PeriodFollowing Delim = '.'
	ParenFollowing  Delim = ')'
)

// ListType identifies the two kinds of list: bulleted and numbered.
// Two list items belong to the same list if and only if their ListTypes
// match by constructor and discriminating field: the same bullet
// character, or the same delimiter (start numbers may differ).
type ListType struct {
	Numbered bool

	// Bullet is the bullet character ('+', '*', or '-') when !Numbered.
	Bullet byte

	// Delim is the character following the digits when Numbered.
	Delim Delim
	// Start is the numbered list's starting value when Numbered.
	Start int
}

// SameList reports whether a and b belong to the same list: same
// constructor (bullet vs. numbered) and same discriminating field
// (bullet character, or delimiter for numbered markers).
func (a ListType) SameList(b ListType) bool {
	if a.Numbered != b.Numbered {
		return false
	}
	if a.Numbered {
		return a.Delim == b.Delim
	}
	return a.Bullet == b.Bullet
}

// listMarker is the result of parseListMarker.
type listMarker struct {
	listType     ListType
	markerColumn int // 1-based column of the marker, relative to s
	markerWidth  int // width in columns of the marker itself (digits+delim, or 1 for bullets)
	padding      int // spaces after marker (subject to clamping) + markerWidth
	consume      int // actual bytes of s to advance past on the opening line
}

// parseListMarker attempts to parse s (already positioned at the
// candidate marker's column, with curCol its 1-based column) as a list
// marker. A bullet is one of '+', '*', '-' unless that character would
// instead form a thematic break. A numbered marker is 1+ digits followed
// by '.' or ')'.
func parseListMarker(s string, curCol int) (m listMarker, ok bool) {
	if s == "" {
		return listMarker{}, false
	}
	var width int
	switch c := s[0]; {
	case c == '+' || c == '*' || c == '-':
		if scanHRuleLine(s) {
			return listMarker{}, false
		}
		m.listType = ListType{Bullet: c}
		width = 1
	case c >= '0' && c <= '9':
		n := 0
		for n < len(s) && s[n] >= '0' && s[n] <= '9' && n < 9 {
			n++
		}
		if n == 0 || n >= len(s) || (s[n] != '.' && s[n] != ')') {
			return listMarker{}, false
		}
		start := 0
		for _, d := range s[:n] {
			start = start*10 + int(d-'0')
		}
		m.listType = ListType{Numbered: true, Delim: Delim(s[n]), Start: start}
		width = n + 1
	default:
		return listMarker{}, false
	}

	after := s[width:]
	rawSpacesAfter := 0
	for rawSpacesAfter < len(after) && after[rawSpacesAfter] == ' ' {
		rawSpacesAfter++
	}
	spacesAfter := rawSpacesAfter
	consumeSpaces := rawSpacesAfter
	switch {
	case scanBlankLine(after):
		spacesAfter = 1
		consumeSpaces = 0
	case rawSpacesAfter >= 4:
		spacesAfter = 1
		consumeSpaces = 1
	}

	m.markerColumn = curCol
	m.markerWidth = width
	m.padding = width + spacesAfter
	m.consume = width + consumeSpaces
	return m, true
}

// trimIndent removes leading spaces and tabs, used by scanners that
// receive a line with leading indentation the caller has already
// accounted for in a column number.
func trimIndent(s string) string {
	return strings.TrimLeft(s, " \t")
}
