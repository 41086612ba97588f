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

// Block is a single element of a parsed document's output tree.
// The concrete types are *Para, *Header, *Blockquote, *List,
// *CodeBlock, *HTMLBlock, and *HRule; there is no other implementor.
type Block interface {
	isBlock()
}

// Blocks is an ordered sequence of [Block]s.
type Blocks []Block

// Para is a paragraph of inline content.
type Para struct {
	Inlines Inlines
}

func (*Para) isBlock() {}

// Header is an ATX or setext heading.
type Header struct {
	Level   int
	Inlines Inlines
}

func (*Header) isBlock() {}

// Blockquote holds the blocks nested inside a block quote.
type Blockquote struct {
	Blocks Blocks
}

func (*Blockquote) isBlock() {}

// List is a run of list items merged by the same-list rule.
// Items[i] is the i'th item's own block sequence.
type List struct {
	Tight    bool
	ListType ListType
	Items    []Blocks
}

func (*List) isBlock() {}

// CodeAttr carries the language attribute of a fenced code block, taken
// from the first whitespace-delimited word of its info string.
type CodeAttr struct {
	Lang    string
	HasLang bool
}

// CodeBlock is a fenced or indented code block.
type CodeBlock struct {
	Attr CodeAttr
	Text string
}

func (*CodeBlock) isBlock() {}

// HTMLBlock is a raw HTML block, passed through verbatim.
type HTMLBlock struct {
	Text string
}

func (*HTMLBlock) isBlock() {}

// HRule is a thematic break.
type HRule struct{}

func (*HRule) isBlock() {}
