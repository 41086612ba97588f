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

// InlineKind tags the variants of [Inline].
type InlineKind int

const (
	TextInline InlineKind = iota
	CodeSpanInline
	EmphasisInline
	StrongInline
	LinkInline
	AutolinkInline
	SoftBreakInline
	HardBreakInline
)

// Inline is an inline-level content node, produced by [ParseInlines]
// from the text the block parser collected into a paragraph or
// heading. This is a trimmed but functional implementation grounded in
// the teacher's inlines.go, covering the subset of CommonMark inline
// syntax needed to exercise the block parser end to end: text runs,
// backslash escapes, code spans, emphasis/strong emphasis, autolinks,
// inline and reference-style links, and hard/soft line breaks.
type Inline struct {
	Kind     InlineKind
	Text     string  // TextInline, CodeSpanInline, AutolinkInline
	Children Inlines // EmphasisInline, StrongInline, LinkInline
	Dest     string  // LinkInline, AutolinkInline
	Title    string  // LinkInline
}

// Inlines is an ordered sequence of [Inline] nodes.
type Inlines []Inline

// ParseInlines parses text (already assembled by the block-to-tree
// transformer from one or more TextLine leaves) into inline content,
// resolving reference-style links against refmap.
func ParseInlines(refmap ReferenceMap, text string) Inlines {
	p := &inlineParser{refmap: refmap}
	return p.parseUntil(text, "")
}

type inlineParser struct {
	refmap ReferenceMap
}

// parseUntil parses s as a run of inlines. stopChars, if non-empty, is
// a set of bytes that (unescaped) end the run without being consumed;
// the caller checks for the actual delimiter afterward.
func (p *inlineParser) parseUntil(s string, stopChars string) Inlines {
	var out Inlines
	var textRun strings.Builder
	flush := func() {
		if textRun.Len() > 0 {
			out = append(out, Inline{Kind: TextInline, Text: textRun.String()})
			textRun.Reset()
		}
	}

	i := 0
	for i < len(s) {
		c := s[i]
		if stopChars != "" && strings.IndexByte(stopChars, c) >= 0 {
			break
		}
		switch {
		case c == '\\' && i+1 < len(s) && isASCIIPunct(s[i+1]):
			textRun.WriteByte(s[i+1])
			i += 2

		case c == '\\' && i+1 == len(s):
			textRun.WriteByte('\\')
			i++

		case c == '\n':
			flush()
			hard := strings.HasSuffix(textRunTrailer(out), "  ")
			if hard {
				// The trailing spaces mark the break; they are not text.
				last := &out[len(out)-1]
				last.Text = strings.TrimRight(last.Text, " ")
				if last.Text == "" {
					out = out[:len(out)-1]
				}
				out = append(out, Inline{Kind: HardBreakInline})
			} else {
				out = append(out, Inline{Kind: SoftBreakInline})
			}
			i++

		case c == '`':
			if span, rest, ok := scanCodeSpan(s[i:]); ok {
				flush()
				out = append(out, Inline{Kind: CodeSpanInline, Text: span})
				i = len(s) - len(rest)
			} else {
				textRun.WriteByte(c)
				i++
			}

		case c == '<':
			if dest, rest, ok := scanAutolink(s[i:]); ok {
				flush()
				out = append(out, Inline{Kind: AutolinkInline, Text: dest, Dest: autolinkDest(dest)})
				i = len(s) - len(rest)
			} else {
				textRun.WriteByte(c)
				i++
			}

		case c == '*' || c == '_':
			if inline, n, ok := p.scanEmphasis(s[i:], c); ok {
				flush()
				out = append(out, inline)
				i += n
			} else {
				textRun.WriteByte(c)
				i++
			}

		case c == '[':
			if inline, n, ok := p.scanLink(s[i:]); ok {
				flush()
				out = append(out, inline)
				i += n
			} else {
				textRun.WriteByte(c)
				i++
			}

		default:
			textRun.WriteByte(c)
			i++
		}
	}
	flush()
	return out
}

func textRunTrailer(out Inlines) string {
	if len(out) == 0 {
		return ""
	}
	last := out[len(out)-1]
	if last.Kind != TextInline {
		return ""
	}
	return last.Text
}

func isASCIIPunct(c byte) bool {
	switch {
	case c >= '!' && c <= '/':
		return true
	case c >= ':' && c <= '@':
		return true
	case c >= '[' && c <= '`':
		return true
	case c >= '{' && c <= '~':
		return true
	}
	return false
}

// scanCodeSpan parses a backtick code span starting at s[0] == '`'.
func scanCodeSpan(s string) (content, rest string, ok bool) {
	n := 0
	for n < len(s) && s[n] == '`' {
		n++
	}
	opener := s[:n]
	idx := strings.Index(s[n:], opener)
	for idx >= 0 {
		start := n + idx
		end := start + len(opener)
		if end >= len(s) || s[end] != '`' {
			content = s[n:start]
			content = strings.TrimSpace(strings.ReplaceAll(content, "\n", " "))
			return content, s[end:], true
		}
		next := strings.Index(s[end:], opener)
		if next < 0 {
			break
		}
		idx = end - n + next
	}
	return "", s, false
}

// scanAutolink parses "<scheme:...>" or "<user@host>" absolute links.
func scanAutolink(s string) (dest, rest string, ok bool) {
	if len(s) == 0 || s[0] != '<' {
		return "", s, false
	}
	end := strings.IndexByte(s[1:], '>')
	if end < 0 {
		return "", s, false
	}
	inner := s[1 : 1+end]
	if inner == "" || strings.ContainsAny(inner, " \t\n<") {
		return "", s, false
	}
	if strings.Contains(inner, "@") && !strings.Contains(inner, "://") {
		return inner, s[2+end:], true
	}
	if i := strings.IndexByte(inner, ':'); i > 0 {
		return inner, s[2+end:], true
	}
	return "", s, false
}

func autolinkDest(inner string) string {
	if strings.Contains(inner, "@") && !strings.Contains(inner, ":") {
		return "mailto:" + inner
	}
	return inner
}

// scanEmphasis parses a run of '*'/'_' delimiters and, if a matching
// close is found later in s, everything between as emphasis or strong
// emphasis (two delimiters deep). It is a simplified left-to-right
// matcher, not CommonMark's full delimiter-stack algorithm.
func (p *inlineParser) scanEmphasis(s string, delim byte) (inline Inline, n int, ok bool) {
	run := 0
	for run < len(s) && s[run] == delim {
		run++
	}
	if run == 0 {
		return Inline{}, 0, false
	}
	marker := s[:run]
	if run >= 2 {
		if body, closeLen, found := findClosingRun(s[2:], s[:2]); found {
			children := p.parseUntil(body, "")
			return Inline{Kind: StrongInline, Children: children}, 2 + len(body) + closeLen, true
		}
	}
	if body, closeLen, found := findClosingRun(s[1:], marker[:1]); found {
		children := p.parseUntil(body, "")
		return Inline{Kind: EmphasisInline, Children: children}, 1 + len(body) + closeLen, true
	}
	return Inline{}, 0, false
}

// findClosingRun finds the first occurrence of closer in s that is not
// immediately preceded by whitespace (a crude left-flanking check),
// returning the text before it.
func findClosingRun(s, closer string) (body string, closeLen int, ok bool) {
	idx := 0
	for {
		rel := strings.Index(s[idx:], closer)
		if rel < 0 {
			return "", 0, false
		}
		pos := idx + rel
		if pos > 0 && s[pos-1] != ' ' && s[pos-1] != '\t' {
			return s[:pos], len(closer), true
		}
		idx = pos + 1
	}
}

// scanLink parses "[text](dest "title")" or "[text][label]" or the
// shortcut reference form "[label]", resolving the latter two forms
// against the parser's reference map.
func (p *inlineParser) scanLink(s string) (inline Inline, n int, ok bool) {
	text, rest, ok := scanLinkLabel(s)
	if !ok {
		return Inline{}, 0, false
	}
	consumed := len(s) - len(rest)

	if strings.HasPrefix(rest, "(") {
		if dest, title, hasTitle, closeRest, ok := scanInlineLinkTail(rest); ok {
			children := p.parseUntil(text, "")
			inl := Inline{Kind: LinkInline, Children: children, Dest: dest}
			if hasTitle {
				inl.Title = title
			}
			return inl, consumed + (len(rest) - len(closeRest)), true
		}
	}

	label := text
	if strings.HasPrefix(rest, "[") {
		if inner, r2, ok := scanLinkLabel(rest); ok {
			if strings.TrimSpace(inner) != "" {
				label = inner
			}
			rest = r2
			consumed = len(s) - len(rest)
		}
	}
	if def, ok := p.refmap[normalizeLabel(label)]; ok {
		children := p.parseUntil(text, "")
		inl := Inline{Kind: LinkInline, Children: children, Dest: def.Destination}
		if def.TitlePresent {
			inl.Title = def.Title
		}
		return inl, consumed, true
	}
	return Inline{}, 0, false
}

func scanInlineLinkTail(s string) (dest, title string, hasTitle bool, rest string, ok bool) {
	if len(s) == 0 || s[0] != '(' {
		return "", "", false, s, false
	}
	body := strings.TrimLeft(s[1:], " \t\n")
	dest, body, ok = scanLinkDestination(body)
	if !ok && !strings.HasPrefix(body, ")") {
		return "", "", false, s, false
	}
	trimmed := strings.TrimLeft(body, " \t\n")
	if t, r, tok := scanLinkTitle(trimmed); tok {
		title = t
		hasTitle = true
		body = strings.TrimLeft(r, " \t\n")
	}
	if !strings.HasPrefix(body, ")") {
		return "", "", false, s, false
	}
	return dest, title, hasTitle, body[1:], true
}
