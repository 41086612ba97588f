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

// Package format serializes a cheapskate.Blocks document back to
// Markdown text, supporting the block parser's idempotent-paragraph-
// grouping property: formatting a parsed document and reparsing it
// yields structurally equal Blocks, for input free of reference
// definitions and trailing paragraph whitespace.
//
// Format writes inline links without their titles and writes text
// without backslash escapes, so a document with link titles or with
// escaped punctuation can reparse to different Blocks.
package format

import (
	"strconv"
	"strings"

	"github.com/bgamari/cheapskate"
)

// Format renders blocks back to Markdown source text.
func Format(blocks cheapskate.Blocks) string {
	var sb strings.Builder
	appendBlocks(&sb, blocks, "")
	return sb.String()
}

func appendBlocks(sb *strings.Builder, blocks cheapskate.Blocks, prefix string) {
	for i, b := range blocks {
		if i > 0 {
			sb.WriteString(prefix)
			sb.WriteByte('\n')
		}
		appendBlock(sb, b, prefix)
	}
}

func appendBlock(sb *strings.Builder, block cheapskate.Block, prefix string) {
	switch b := block.(type) {
	case *cheapskate.Para:
		writePrefixedLine(sb, prefix, appendInlines(b.Inlines))

	case *cheapskate.Header:
		writePrefixedLine(sb, prefix, strings.Repeat("#", b.Level)+" "+appendInlines(b.Inlines))

	case *cheapskate.HRule:
		writePrefixedLine(sb, prefix, "---")

	case *cheapskate.CodeBlock:
		fence := "```"
		open := fence
		if b.Attr.HasLang {
			open += b.Attr.Lang
		}
		writePrefixedLine(sb, prefix, open)
		for _, line := range strings.Split(b.Text, "\n") {
			writePrefixedLine(sb, prefix, line)
		}
		writePrefixedLine(sb, prefix, fence)

	case *cheapskate.HTMLBlock:
		for _, line := range strings.Split(b.Text, "\n") {
			writePrefixedLine(sb, prefix, line)
		}

	case *cheapskate.Blockquote:
		appendBlocks(sb, b.Blocks, prefix+"> ")

	case *cheapskate.List:
		appendList(sb, b, prefix)
	}
}

func appendList(sb *strings.Builder, list *cheapskate.List, prefix string) {
	start := list.ListType.Start
	if start == 0 {
		start = 1
	}
	for i, item := range list.Items {
		marker := listMarker(list.ListType, start+i)
		itemPrefix := prefix + strings.Repeat(" ", len(marker)+1)
		sb.WriteString(prefix)
		sb.WriteString(marker)
		sb.WriteByte(' ')
		appendItemBlocks(sb, item, itemPrefix, !list.Tight)
		if i < len(list.Items)-1 && !list.Tight {
			sb.WriteString(prefix)
			sb.WriteByte('\n')
		}
	}
}

// appendItemBlocks writes a list item's own blocks starting immediately
// after its marker (no leading prefix on the first line), with
// subsequent lines indented to itemPrefix.
func appendItemBlocks(sb *strings.Builder, blocks cheapskate.Blocks, itemPrefix string, loose bool) {
	for i, b := range blocks {
		if i == 0 {
			appendBlockNoPrefix(sb, b, itemPrefix)
		} else {
			if loose {
				sb.WriteString(itemPrefix)
				sb.WriteByte('\n')
			}
			appendBlock(sb, b, itemPrefix)
		}
	}
}

// appendBlockNoPrefix writes block's first line without itemPrefix
// (the marker already occupies that column) and every following line
// with itemPrefix, matching a renderer positioned right after a list
// marker.
func appendBlockNoPrefix(sb *strings.Builder, block cheapskate.Block, itemPrefix string) {
	var tmp strings.Builder
	appendBlock(&tmp, block, itemPrefix)
	text := tmp.String()
	if strings.HasPrefix(text, itemPrefix) {
		text = text[len(itemPrefix):]
	}
	sb.WriteString(text)
}

func writePrefixedLine(sb *strings.Builder, prefix, line string) {
	sb.WriteString(prefix)
	sb.WriteString(line)
	sb.WriteByte('\n')
}

func listMarker(lt cheapskate.ListType, n int) string {
	if lt.Numbered {
		return strconv.Itoa(n) + string(lt.Delim)
	}
	return string(lt.Bullet)
}

func appendInlines(inlines cheapskate.Inlines) string {
	var sb strings.Builder
	for _, inl := range inlines {
		appendInline(&sb, inl)
	}
	return sb.String()
}

func appendInline(sb *strings.Builder, inl cheapskate.Inline) {
	switch inl.Kind {
	case cheapskate.TextInline:
		sb.WriteString(inl.Text)
	case cheapskate.CodeSpanInline:
		sb.WriteByte('`')
		sb.WriteString(inl.Text)
		sb.WriteByte('`')
	case cheapskate.EmphasisInline:
		sb.WriteByte('*')
		sb.WriteString(appendInlines(inl.Children))
		sb.WriteByte('*')
	case cheapskate.StrongInline:
		sb.WriteString("**")
		sb.WriteString(appendInlines(inl.Children))
		sb.WriteString("**")
	case cheapskate.LinkInline:
		sb.WriteByte('[')
		sb.WriteString(appendInlines(inl.Children))
		sb.WriteString("](")
		sb.WriteString(inl.Dest)
		sb.WriteString(")")
	case cheapskate.AutolinkInline:
		sb.WriteByte('<')
		sb.WriteString(inl.Text)
		sb.WriteByte('>')
	case cheapskate.SoftBreakInline:
		sb.WriteByte('\n')
	case cheapskate.HardBreakInline:
		sb.WriteString("  \n")
	}
}
