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
	"fmt"
	"io"
	"strings"
)

// dumpContainer writes a human-readable indented tree of c and its
// descendants to w, for Options.Debug. The format is not stable and
// exists only to inspect the container builder's output by hand.
func dumpContainer(w io.Writer, c *Container, depth int) {
	indent := strings.Repeat("  ", depth)
	switch c.kind {
	case FencedCodeKind:
		fmt.Fprintf(w, "%s%s fence=%q info=%q\n", indent, c.kind, c.fence, c.info)
	case ListItemKind:
		fmt.Fprintf(w, "%s%s marker=%d padding=%d type=%+v\n", indent, c.kind, c.markerColumn, c.padding, c.listType)
	default:
		fmt.Fprintf(w, "%s%s\n", indent, c.kind)
	}
	for _, el := range c.children {
		dumpElement(w, el, depth+1)
	}
}

func dumpElement(w io.Writer, el Element, depth int) {
	if el.isContainer() {
		dumpContainer(w, el.container, depth)
		return
	}
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s:%d %q\n", indent, leafKindName(el.leaf.kind), el.line, el.leaf.text)
}

func leafKindName(k LeafKind) string {
	switch k {
	case TextLineLeaf:
		return "TextLine"
	case BlankLineLeaf:
		return "BlankLine"
	case ATXHeaderLeaf:
		return "ATXHeader"
	case SetextHeaderLeaf:
		return "SetextHeader"
	case RuleLeaf:
		return "Rule"
	default:
		return "Leaf(?)"
	}
}
