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

// builder maintains the open container stack and reference map while
// the document is processed line by line.
type builder struct {
	stack  *containerStack
	refmap ReferenceMap
}

func newBuilder() *builder {
	return &builder{
		stack:  newContainerStack(),
		refmap: make(ReferenceMap),
	}
}

// processLine is the per-line step of the container tree builder.
func (b *builder) processLine(ln line) {
	remainder, numUnmatched := continueLine(b.stack, ln.text)

	top := b.stack.top()
	topKind := top.kind

	if (topKind == RawHTMLBlockKind || topKind == IndentedCodeKind) && numUnmatched == 0 {
		b.addLeaf(ln.number, Leaf{kind: TextLineLeaf, text: remainder})
		return
	}
	if topKind == FencedCodeKind {
		if fenceCloses(top, remainder) {
			b.closeContainer()
		} else {
			b.addLeaf(ln.number, Leaf{kind: TextLineLeaf, text: remainder})
		}
		return
	}

	lastLineIsText := numUnmatched == 0 && topLastChildIsTextLine(top)
	curCol := len(ln.text) - len(remainder) + 1
	newContainers, leaf := tryNewContainers(lastLineIsText, curCol, remainder)

	switch {
	case len(newContainers) == 0 && leaf.kind == TextLineLeaf:
		if topLastChildIsTextLine(top) && topKind != IndentedCodeKind {
			// Lazy continuation: extend the paragraph without closing
			// the containers that failed to continue.
			b.stack.addLeaf(ln.number, leaf)
		} else {
			b.closeUnmatched(numUnmatched)
			b.addLeaf(ln.number, leaf)
		}

	case len(newContainers) == 0 && leaf.kind == SetextHeaderLeaf && numUnmatched == 0:
		b.promoteToSetext(ln.number, leaf.level)

	default:
		b.closeUnmatched(numUnmatched)
		for _, c := range newContainers {
			b.stack.push(c)
		}
		if leaf.kind == BlankLineLeaf && len(newContainers) > 0 &&
			newContainers[len(newContainers)-1].kind == FencedCodeKind {
			// Drop the spurious blank line right at fence opening.
			return
		}
		b.addLeaf(ln.number, leaf)
	}
}

// finish closes every remaining open container, bottoming out at the
// document, which is never attached to anything, and returns it
// alongside the accumulated reference map.
func (b *builder) finish() (*Container, ReferenceMap) {
	for len(b.stack.frames) > 0 {
		b.closeContainer()
	}
	return b.stack.doc, b.refmap
}

// topLastChildIsTextLine reports whether c's last child is a TextLine.
func topLastChildIsTextLine(c *Container) bool {
	return c.lastChildIsTextLine()
}

// fenceCloses reports whether remainder closes top's fenced code block:
// a prefix match against the exact opening fence characters, resolved
// toward simplicity over strictness (a longer closing fence than the
// opener still closes it).
func fenceCloses(top *Container, remainder string) bool {
	return strings.HasPrefix(trimIndent(remainder), top.fence)
}

// addLeaf appends leaf to the current top, applying the blank-line-in-
// list-item special rule: a second consecutive blank line inside a list
// item closes the item and re-delivers the blank to the new top.
func (b *builder) addLeaf(lineNumber int, leaf Leaf) {
	top := b.stack.top()
	if top.kind == ListItemKind && leaf.kind == BlankLineLeaf {
		if last, ok := top.lastChild(); ok && !last.isContainer() && last.leaf.kind == BlankLineLeaf {
			b.closeContainer()
			b.addLeaf(lineNumber, leaf)
			return
		}
	}
	b.stack.addLeaf(lineNumber, leaf)
}

// closeUnmatched closes the n deepest open containers.
func (b *builder) closeUnmatched(n int) {
	for i := 0; i < n; i++ {
		b.closeContainer()
	}
}

// promoteToSetext replaces the top's last child, which must be a
// TextLine, with a SetextHeader carrying that line's text.
func (b *builder) promoteToSetext(lineNumber int, level int) {
	top := b.stack.top()
	last, ok := top.lastChild()
	if !ok || last.isContainer() || last.leaf.kind != TextLineLeaf {
		panic("promoteToSetext: top's last child is not a text line")
	}
	b.stack.replaceLast(leafElement(lineNumber, Leaf{
		kind:  SetextHeaderLeaf,
		level: level,
		text:  last.leaf.text,
	}))
}

// closeContainer pops the top container and attaches it to its new
// parent, applying the Reference and ListItem special cases.
func (b *builder) closeContainer() {
	c := b.stack.closeTop()
	if c == nil {
		return
	}
	switch c.kind {
	case ReferenceKind:
		if def, label, ok := parseReferenceContainer(c); ok {
			b.refmap[label] = def
		}
		// Discard the container either way; it never appears in Blocks.

	case ListItemKind:
		if last, ok := c.lastChild(); ok && !last.isContainer() && last.leaf.kind == BlankLineLeaf {
			c.children = c.children[:len(c.children)-1]
			b.stack.attach(c)
			children := b.stack.parentChildren()
			*children = append(*children, last)
			return
		}
		b.stack.attach(c)

	default:
		b.stack.attach(c)
	}
}
