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

	"golang.org/x/text/cases"
)

// LinkDefinition is the destination and optional title of a parsed
// [link reference definition].
//
// [link reference definition]: https://spec.commonmark.org/0.30/#link-reference-definition
type LinkDefinition struct {
	Destination  string
	Title        string
	TitlePresent bool
}

// ReferenceMap maps normalized link labels to their definitions.
// Unlike the teacher's ReferenceMap.Extract, which keeps the first
// definition of a duplicate label, the builder here inserts
// unconditionally, so the last definition in document order wins —
// see the resolved Open Question in SPEC_FULL.md.
type ReferenceMap map[string]LinkDefinition

var labelCaser = cases.Fold()

// normalizeLabel case-folds s and collapses runs of whitespace to a
// single space, trimming the ends, so that labels differing only in
// case or whitespace resolve to the same reference.
func normalizeLabel(s string) string {
	fields := strings.Fields(s)
	return labelCaser.String(strings.Join(fields, " "))
}

// parseReferenceContainer attempts to parse a closed Reference
// container's buffered lines as a link reference definition. It
// returns ok=false if the text does not form a well-formed definition,
// in which case the container's content is dropped silently.
func parseReferenceContainer(c *Container) (def LinkDefinition, label string, ok bool) {
	var sb strings.Builder
	for i, el := range c.children {
		if el.isContainer() {
			return LinkDefinition{}, "", false
		}
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(el.leaf.text)
	}
	text := strings.TrimLeft(sb.String(), " \t\n")

	rawLabel, rest, ok := scanLinkLabel(text)
	if !ok || strings.TrimSpace(rawLabel) == "" {
		return LinkDefinition{}, "", false
	}
	rest = strings.TrimLeft(rest, " \t\n")
	if !strings.HasPrefix(rest, ":") {
		return LinkDefinition{}, "", false
	}
	rest = strings.TrimLeft(rest[1:], " \t\n")

	dest, rest, ok := scanLinkDestination(rest)
	if !ok {
		return LinkDefinition{}, "", false
	}

	trimmedRest := strings.TrimLeft(rest, " \t\n")
	title, titleRest, hasTitle := scanLinkTitle(trimmedRest)
	if hasTitle && strings.TrimRight(titleRest, " \t\n") == "" {
		rest = titleRest
	} else {
		hasTitle = false
	}
	if strings.TrimRight(rest, " \t\n") != "" {
		return LinkDefinition{}, "", false
	}

	return LinkDefinition{
		Destination:  dest,
		Title:        title,
		TitlePresent: hasTitle,
	}, normalizeLabel(rawLabel), true
}

// scanLinkLabel parses a "[...]" label from the start of s, honoring
// backslash escapes, and returns its inner text and the remainder.
func scanLinkLabel(s string) (label, rest string, ok bool) {
	if len(s) == 0 || s[0] != '[' {
		return "", s, false
	}
	i := 1
	for i < len(s) {
		switch s[i] {
		case '\\':
			i += 2
			continue
		case ']':
			return s[1:i], s[i+1:], true
		}
		i++
	}
	return "", s, false
}

// scanLinkDestination parses either a "<...>" bracketed destination or
// a run of non-whitespace characters with balanced parens.
func scanLinkDestination(s string) (dest, rest string, ok bool) {
	if len(s) == 0 {
		return "", s, false
	}
	if s[0] == '<' {
		i := 1
		for i < len(s) {
			switch s[i] {
			case '\\':
				i += 2
				continue
			case '>':
				return s[1:i], s[i+1:], true
			case '\n':
				return "", s, false
			}
			i++
		}
		return "", s, false
	}
	i := 0
	depth := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s):
			i += 2
			continue
		case c == '(':
			depth++
		case c == ')':
			if depth == 0 {
				return s[:i], s[i:], i > 0
			}
			depth--
		case c == ' ' || c == '\t' || c == '\n':
			return s[:i], s[i:], i > 0
		}
		i++
	}
	return s[:i], s[i:], i > 0
}

// scanLinkTitle parses a quoted title: "...", '...', or (...).
func scanLinkTitle(s string) (title, rest string, ok bool) {
	if len(s) == 0 {
		return "", s, false
	}
	open := s[0]
	var close byte
	switch open {
	case '"':
		close = '"'
	case '\'':
		close = '\''
	case '(':
		close = ')'
	default:
		return "", s, false
	}
	i := 1
	for i < len(s) {
		switch s[i] {
		case '\\':
			i += 2
			continue
		case close:
			return s[1:i], s[i+1:], true
		}
		i++
	}
	return "", s, false
}
