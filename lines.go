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

// tabStopSize is the column width a [tab] advances to.
//
// [tab]: https://spec.commonmark.org/0.30/#tabs
const tabStopSize = 4

// line is a single line of input text together with its 1-based
// position in the original document.
type line struct {
	number int
	text   string
}

// splitLines expands tabs to the next multiple of tabStopSize columns
// and splits text into numbered lines. A missing trailing newline is
// tolerated; "\r\n" and lone "\r" are both treated as line terminators.
func splitLines(text string) []line {
	text = expandTabs(text)
	var lines []line
	n := 1
	for len(text) > 0 {
		i := strings.IndexAny(text, "\r\n")
		if i < 0 {
			lines = append(lines, line{number: n, text: text})
			break
		}
		lines = append(lines, line{number: n, text: text[:i]})
		if text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n' {
			i++
		}
		text = text[i+1:]
		n++
	}
	return lines
}

// expandTabs replaces each tab character with enough spaces to reach
// the next tabStopSize-column stop, measured from the beginning of its
// line. NUL bytes are replaced with the Unicode replacement character,
// matching the tolerance the teacher's Parse gives malformed input.
func expandTabs(text string) string {
	if strings.IndexByte(text, 0) >= 0 {
		text = strings.ReplaceAll(text, "\x00", "�")
	}
	if strings.IndexByte(text, '\t') < 0 {
		return text
	}
	var sb strings.Builder
	sb.Grow(len(text))
	col := 0
	for i := 0; i < len(text); i++ {
		switch c := text[i]; c {
		case '\t':
			spaces := tabStopSize - col%tabStopSize
			for j := 0; j < spaces; j++ {
				sb.WriteByte(' ')
			}
			col += spaces
		case '\n', '\r':
			sb.WriteByte(c)
			col = 0
		default:
			sb.WriteByte(c)
			col++
		}
	}
	return sb.String()
}
