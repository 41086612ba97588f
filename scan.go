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

// codeBlockIndentLimit is the column width of indentation
// required to start or continue an indented code block.
const codeBlockIndentLimit = 4

// scanNonindentSpace consumes 0-3 leading spaces.
// It never consumes a fourth, leaving indentation checks to callers.
func scanNonindentSpace(s string) (rest string, consumed int) {
	for consumed < 3 && consumed < len(s) && s[consumed] == ' ' {
		consumed++
	}
	return s[consumed:], consumed
}

// scanIndentSpace requires exactly 4 leading spaces.
func scanIndentSpace(s string) (rest string, ok bool) {
	if len(s) < codeBlockIndentLimit {
		return s, false
	}
	for i := 0; i < codeBlockIndentLimit; i++ {
		if s[i] != ' ' {
			return s, false
		}
	}
	return s[codeBlockIndentLimit:], true
}

// scanBlankLine reports whether s consists solely of spaces (and/or tabs,
// though by the time scanners see a line, tabs have already been expanded).
func scanBlankLine(s string) bool {
	return strings.TrimLeft(s, " \t") == ""
}

// scanBlockquoteStart matches ">" optionally followed by one space.
func scanBlockquoteStart(s string) (rest string, ok bool) {
	if len(s) == 0 || s[0] != '>' {
		return s, false
	}
	s = s[1:]
	if len(s) > 0 && s[0] == ' ' {
		s = s[1:]
	}
	return s, true
}

// scanSpacesToColumn consumes spaces from s, which starts at column curCol,
// until the column reaches target (or s runs out of leading spaces).
func scanSpacesToColumn(s string, curCol, target int) (rest string, consumed int) {
	for curCol+consumed < target && consumed < len(s) && s[consumed] == ' ' {
		consumed++
	}
	return s[consumed:], consumed
}

// atxHeading describes the result of parseATXHeaderStart.
type atxHeading struct {
	level int // 1-6
	text  string
}

// parseATXHeaderStart attempts to parse s (already stripped of leading
// nonindent space) as an ATX heading opener: 1-6 '#' characters followed
// by a space or end of line. It returns the heading level and trimmed
// text, or ok=false if s does not start an ATX heading.
func parseATXHeaderStart(s string) (h atxHeading, ok bool) {
	level := 0
	for level < len(s) && s[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return atxHeading{}, false
	}
	rest := s[level:]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return atxHeading{}, false
	}
	text := strings.TrimLeft(rest, " \t")
	text = trimATXClosingSequence(text)
	return atxHeading{level: level, text: text}, true
}

// trimATXClosingSequence strips a trailing run of '#' characters (and the
// whitespace that separates it from the content) from an ATX heading's
// text, unless that run is preceded by an escaped '\#'.
func trimATXClosingSequence(text string) string {
	trimmed := strings.TrimRight(text, " \t")
	hashes := trimmed
	n := 0
	for n < len(hashes) && hashes[len(hashes)-1-n] == '#' {
		n++
	}
	if n == 0 || n == len(trimmed) {
		if n == len(trimmed) && n > 0 {
			return ""
		}
		return trimmed
	}
	before := trimmed[:len(trimmed)-n]
	if !strings.HasSuffix(before, " ") && !strings.HasSuffix(before, "\t") {
		// The hashes aren't separated from the content by whitespace,
		// so they're part of the content (e.g. "### foo#" -> "foo#").
		return trimmed
	}
	if isEndEscaped(before) {
		return trimmed
	}
	return strings.TrimRight(before, " \t")
}

// isEndEscaped reports whether s ends in an odd number of backslashes.
func isEndEscaped(s string) bool {
	n := 0
	for n < len(s) && s[len(s)-1-n] == '\\' {
		n++
	}
	return n%2 == 1
}

// parseSetextHeaderLine matches a setext underline: a run of only '='
// (level 1) or only '-' (level 2), optionally followed by trailing spaces
// to the end of line.
func parseSetextHeaderLine(s string) (level int, ok bool) {
	trimmed := strings.TrimRight(s, " \t")
	if trimmed == "" {
		return 0, false
	}
	switch trimmed[0] {
	case '=':
		level = 1
	case '-':
		level = 2
	default:
		return 0, false
	}
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] != trimmed[0] {
			return 0, false
		}
	}
	return level, true
}

// scanHRuleLine matches a thematic break: 3 or more of the same
// character among '*', '_', '-', interleaved with optional spaces and
// nothing else on the line.
func scanHRuleLine(s string) bool {
	n := 0
	var want byte
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '-', '_', '*':
			if n == 0 {
				want = c
			} else if c != want {
				return false
			}
			n++
		case ' ', '\t':
			// ignore
		default:
			return false
		}
	}
	return n >= 3
}

// codeFence describes the result of parseCodeFence.
type codeFence struct {
	fence string // the exact run of backticks or tildes
	info  string // the trimmed info string
}

// parseCodeFence attempts to parse s as a fenced code block opener:
// 3 or more of '`' or '~', followed by an optional info string.
// Backtick fences may not have backticks in their info string.
func parseCodeFence(s string) (cf codeFence, ok bool) {
	if len(s) == 0 || (s[0] != '`' && s[0] != '~') {
		return codeFence{}, false
	}
	ch := s[0]
	n := 0
	for n < len(s) && s[n] == ch {
		n++
	}
	if n < 3 {
		return codeFence{}, false
	}
	info := strings.TrimSpace(s[n:])
	if ch == '`' && strings.ContainsRune(info, '`') {
		return codeFence{}, false
	}
	return codeFence{fence: s[:n], info: info}, true
}

// scanReference reports whether s begins with what looks like a link
// label: "[" ... "]" (not empty, no unescaped "]" inside) followed by ":".
func scanReference(s string) bool {
	if len(s) == 0 || s[0] != '[' {
		return false
	}
	i := 1
	for i < len(s) {
		switch s[i] {
		case '\\':
			i += 2
			continue
		case ']':
			rest := s[i+1:]
			return i > 1 && strings.HasPrefix(rest, ":")
		}
		i++
	}
	return false
}
