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

// tryNewContainers, given whether the current top container's last
// child is a text line, the column the line has been consumed to so
// far, and the unconsumed remainder, greedily recognises new regular
// containers (block quotes, list items), optionally one verbatim
// container opener, and finally a leaf.
func tryNewContainers(lastLineIsText bool, curCol int, remainder string) (newContainers []*Container, leaf Leaf) {
	col := curCol
	rem := remainder

	// Step 1: zero or more regular containers.
	for {
		stripped, nsp := scanNonindentSpace(rem)
		col2 := col + nsp

		if after, ok := scanBlockquoteStart(stripped); ok {
			newContainers = append(newContainers, &Container{kind: BlockQuoteKind})
			col = col2 + (len(stripped) - len(after))
			rem = after
			continue
		}
		if m, ok := parseListMarker(stripped, col2); ok {
			newContainers = append(newContainers, &Container{
				kind:         ListItemKind,
				markerColumn: m.markerColumn,
				padding:      m.padding,
				listType:     m.listType,
			})
			col = col2 + m.consume
			rem = stripped[m.consume:]
			continue
		}
		break
	}

	// Step 2: at most one verbatim container opener. Fence, HTML block,
	// and reference openers each tolerate only 0-3 leading spaces; 4 or
	// more makes the line indented code instead.
	nonindent, nsp := scanNonindentSpace(rem)
	verbatim := false
	if cf, ok := parseCodeFence(nonindent); ok {
		newContainers = append(newContainers, &Container{
			kind:        FencedCodeKind,
			startColumn: col + nsp,
			fence:       cf.fence,
			info:        cf.info,
		})
		rem = ""
		verbatim = true
	} else if !lastLineIsText {
		switch {
		case !scanBlankLine(rem):
			if r, ok := scanIndentSpace(rem); ok {
				newContainers = append(newContainers, &Container{kind: IndentedCodeKind})
				rem = r
				verbatim = true
			} else if parseHTMLBlockStart(nonindent) {
				newContainers = append(newContainers, &Container{kind: RawHTMLBlockKind})
				rem = nonindent
				verbatim = true
			} else if scanReference(nonindent) {
				newContainers = append(newContainers, &Container{kind: ReferenceKind})
				rem = nonindent
				verbatim = true
			}
		}
	}

	if verbatim {
		if scanBlankLine(rem) {
			return newContainers, Leaf{kind: BlankLineLeaf, text: rem}
		}
		return newContainers, Leaf{kind: TextLineLeaf, text: rem}
	}

	// Step 3: recognise a leaf.
	if h, ok := parseATXHeaderStart(nonindent); ok {
		return newContainers, Leaf{kind: ATXHeaderLeaf, level: h.level, text: h.text}
	}
	if lastLineIsText {
		if level, ok := parseSetextHeaderLine(nonindent); ok {
			return newContainers, Leaf{kind: SetextHeaderLeaf, level: level}
		}
	}
	if scanHRuleLine(nonindent) {
		return newContainers, Leaf{kind: RuleLeaf}
	}
	if scanBlankLine(rem) {
		return newContainers, Leaf{kind: BlankLineLeaf, text: rem}
	}
	return newContainers, Leaf{kind: TextLineLeaf, text: rem}
}
