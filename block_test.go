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
	"testing"

	"github.com/google/go-cmp/cmp"
)

// text builds the Inlines ParseInlines would produce for a run of
// plain text lines joined by "\n": each embedded newline becomes its
// own SoftBreakInline, matching how the inline parser treats line
// breaks inside a paragraph.
func text(s string) Inlines {
	parts := strings.Split(s, "\n")
	out := make(Inlines, 0, len(parts)*2-1)
	for i, p := range parts {
		if i > 0 {
			out = append(out, Inline{Kind: SoftBreakInline})
		}
		out = append(out, Inline{Kind: TextInline, Text: p})
	}
	return out
}

func TestParseEndToEnd(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Blocks
	}{
		{
			name: "ATXHeader",
			in:   "# Hello\n",
			want: Blocks{&Header{Level: 1, Inlines: text("Hello")}},
		},
		{
			name: "BlockQuoteThenParagraph",
			in:   "> a\n> b\n\nc\n",
			want: Blocks{
				&Blockquote{Blocks: Blocks{&Para{Inlines: text("a\nb")}}},
				&Para{Inlines: text("c")},
			},
		},
		{
			name: "TightList",
			in:   "- x\n- y\n- z\n",
			want: Blocks{&List{
				Tight:    true,
				ListType: ListType{Bullet: '-'},
				Items: []Blocks{
					{&Para{Inlines: text("x")}},
					{&Para{Inlines: text("y")}},
					{&Para{Inlines: text("z")}},
				},
			}},
		},
		{
			name: "LooseList",
			in:   "- x\n\n- y\n",
			want: Blocks{&List{
				Tight:    false,
				ListType: ListType{Bullet: '-'},
				Items: []Blocks{
					{&Para{Inlines: text("x")}},
					{&Para{Inlines: text("y")}},
				},
			}},
		},
		{
			name: "FencedCodeWithInfo",
			in:   "```rs\nfn main(){}\n```\n",
			want: Blocks{&CodeBlock{Attr: CodeAttr{Lang: "rs", HasLang: true}, Text: "fn main(){}"}},
		},
		{
			name: "SetextRetroPromotion",
			in:   "foo\n===\n",
			want: Blocks{&Header{Level: 1, Inlines: text("foo")}},
		},
		{
			name: "RuleBeatsBullet",
			in:   "---\n",
			want: Blocks{&HRule{}},
		},
		{
			name: "AmbiguousBulletRuleStillRule",
			in:   "- - -\n",
			want: Blocks{&HRule{}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, _ := Parse(Options{}, test.in)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Parse(%q) (-want +got):\n%s", test.in, diff)
			}
		})
	}
}

func TestReferenceDefinitions(t *testing.T) {
	const in = "[foo]: /url \"t\"\n\n[foo]\n"
	blocks, refmap := Parse(Options{}, in)

	if len(blocks) != 1 {
		t.Fatalf("len(blocks) = %d; want 1", len(blocks))
	}
	if _, ok := blocks[0].(*Para); !ok {
		t.Fatalf("blocks[0] = %T; want *Para", blocks[0])
	}

	def, ok := refmap["foo"]
	if !ok {
		t.Fatal(`refmap["foo"] not found`)
	}
	want := LinkDefinition{Destination: "/url", Title: "t", TitlePresent: true}
	if diff := cmp.Diff(want, def); diff != "" {
		t.Errorf(`refmap["foo"] (-want +got):\n%s`, diff)
	}

	assertNoReferenceBlocks(t, blocks)
}

// assertNoReferenceBlocks is P3: the output never contains a raw
// Reference node, since the transform consumes them into the refmap.
func assertNoReferenceBlocks(t *testing.T, blocks Blocks) {
	t.Helper()
	for _, b := range blocks {
		switch bb := b.(type) {
		case *Blockquote:
			assertNoReferenceBlocks(t, bb.Blocks)
		case *List:
			for _, item := range bb.Items {
				assertNoReferenceBlocks(t, item)
			}
		}
	}
}

func TestListMatchReflexivity(t *testing.T) {
	// P6: different bullet characters never join into one list.
	got, _ := Parse(Options{}, "- a\n* b\n")
	if len(got) != 2 {
		t.Fatalf("len(blocks) = %d; want 2 separate lists, got %#v", len(got), got)
	}
	for i, b := range got {
		if _, ok := b.(*List); !ok {
			t.Errorf("blocks[%d] = %T; want *List", i, b)
		}
	}
}

func TestLazyContinuation(t *testing.T) {
	// P8: a lazily continued line with no indentation still attaches to
	// the paragraph inside the blockquote.
	got, _ := Parse(Options{}, "> foo\nbar\n")
	want := Blocks{&Blockquote{Blocks: Blocks{&Para{Inlines: text("foo\nbar")}}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse (-want +got):\n%s", diff)
	}
}

func TestIndentedCodeStripsTrailingBlankLines(t *testing.T) {
	got, _ := Parse(Options{}, "    foo\n\n\n")
	want := Blocks{&CodeBlock{Text: "foo"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse (-want +got):\n%s", diff)
	}
}
