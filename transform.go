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

// processElements walks a container's children in order, turning the
// container tree into the final block list: grouping paragraphs, merging
// lists, deciding tight vs. loose, and extracting code/HTML text.
func processElements(refmap ReferenceMap, elements []Element) Blocks {
	var out Blocks
	i := 0
	for i < len(elements) {
		el := elements[i]
		if !el.isContainer() {
			switch el.leaf.kind {
			case BlankLineLeaf:
				i++
				continue
			case TextLineLeaf:
				j := i
				var lines []string
				for j < len(elements) && !elements[j].isContainer() && elements[j].leaf.kind == TextLineLeaf {
					lines = append(lines, strings.TrimLeft(elements[j].leaf.text, " \t"))
					j++
				}
				text := strings.TrimRight(strings.Join(lines, "\n"), " \t\n")
				out = append(out, &Para{Inlines: ParseInlines(refmap, text)})
				i = j
				continue
			case ATXHeaderLeaf, SetextHeaderLeaf:
				out = append(out, &Header{Level: el.leaf.level, Inlines: ParseInlines(refmap, el.leaf.text)})
				i++
				continue
			case RuleLeaf:
				out = append(out, &HRule{})
				i++
				continue
			}
		}

		c := el.container
		switch c.kind {
		case documentKind:
			panic("processElements: unexpected Document child")

		case BlockQuoteKind:
			out = append(out, &Blockquote{Blocks: processElements(refmap, c.children)})
			i++

		case ListItemKind:
			items, consumed := collectList(refmap, elements[i:])
			lt := c.listType
			tight := true
			itemBlocks := make([]Blocks, 0, len(items))
			for _, it := range items {
				if it.hadBlank {
					tight = false
				}
				itemBlocks = append(itemBlocks, it.blocks)
			}
			out = append(out, &List{Tight: tight, ListType: lt, Items: itemBlocks})
			i += consumed

		case FencedCodeKind:
			out = append(out, &CodeBlock{Attr: codeAttrFromInfo(c.info), Text: joinTextLines(c.children)})
			i++

		case IndentedCodeKind:
			j := i
			var lines []string
			for j < len(elements) {
				e := elements[j]
				if e.isContainer() && e.container.kind == IndentedCodeKind {
					lines = append(lines, joinTextLinesSlice(e.container.children)...)
					j++
					continue
				}
				if !e.isContainer() && e.leaf.kind == BlankLineLeaf {
					t := e.leaf.text
					if len(t) > 0 {
						t = t[1:]
					}
					lines = append(lines, t)
					j++
					continue
				}
				break
			}
			for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
				lines = lines[:len(lines)-1]
			}
			out = append(out, &CodeBlock{Attr: CodeAttr{}, Text: strings.Join(lines, "\n")})
			i = j

		case RawHTMLBlockKind:
			out = append(out, &HTMLBlock{Text: joinTextLines(c.children)})
			i++

		case ReferenceKind:
			i++

		default:
			i++
		}
	}
	return out
}

type listItemResult struct {
	blocks   Blocks
	hadBlank bool
}

// collectList greedily gathers a run of sibling ListItem containers of
// the same list type, plus any BlankLine leaves immediately followed by
// another matching ListItem.
func collectList(refmap ReferenceMap, elements []Element) (items []listItemResult, consumed int) {
	first := elements[0].container
	lt := first.listType
	i := 0
	for i < len(elements) {
		el := elements[i]
		if el.isContainer() && el.container.kind == ListItemKind && el.container.listType.SameList(lt) {
			items = append(items, listItemResult{
				blocks:   processElements(refmap, el.container.children),
				hadBlank: containerHasBlankChild(el.container),
			})
			i++
			continue
		}
		if !el.isContainer() && el.leaf.kind == BlankLineLeaf &&
			i+1 < len(elements) && elements[i+1].isContainer() &&
			elements[i+1].container.kind == ListItemKind &&
			elements[i+1].container.listType.SameList(lt) {
			if len(items) > 0 {
				items[len(items)-1].hadBlank = true
			}
			i++
			continue
		}
		break
	}
	return items, i
}

func containerHasBlankChild(c *Container) bool {
	for _, el := range c.children {
		if !el.isContainer() && el.leaf.kind == BlankLineLeaf {
			return true
		}
	}
	return false
}

func joinTextLines(elements []Element) string {
	return strings.Join(joinTextLinesSlice(elements), "\n")
}

func joinTextLinesSlice(elements []Element) []string {
	lines := make([]string, 0, len(elements))
	for _, el := range elements {
		if !el.isContainer() {
			lines = append(lines, el.leaf.text)
		}
	}
	return lines
}

func codeAttrFromInfo(info string) CodeAttr {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return CodeAttr{}
	}
	return CodeAttr{Lang: fields[0], HasLang: true}
}
