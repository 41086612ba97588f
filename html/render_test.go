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

package html

import (
	"bytes"
	"testing"

	"github.com/bgamari/cheapskate"
	"github.com/bgamari/cheapskate/internal/normhtml"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "Header",
			in:   "# Hello\n",
			want: "<h1>Hello</h1>",
		},
		{
			name: "Paragraph",
			in:   "hello *world*\n",
			want: "<p>hello <em>world</em></p>",
		},
		{
			name: "TightList",
			in:   "- a\n- b\n",
			want: "<ul><li>a</li><li>b</li></ul>",
		},
		{
			name: "LooseList",
			in:   "- a\n\n- b\n",
			want: "<ul><li><p>a</p></li><li><p>b</p></li></ul>",
		},
		{
			name: "FencedCode",
			in:   "```go\nx := 1\n```\n",
			want: `<pre><code class="language-go">x := 1
</code></pre>`,
		},
		{
			name: "Blockquote",
			in:   "> hi\n",
			want: "<blockquote><p>hi</p></blockquote>",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			blocks, _ := cheapskate.Parse(cheapskate.Options{}, test.in)
			var buf bytes.Buffer
			if err := Render(&buf, blocks); err != nil {
				t.Fatal(err)
			}
			got := normhtml.NormalizeHTML(buf.Bytes())
			want := normhtml.NormalizeHTML([]byte(test.want))
			if !bytes.Equal(got, want) {
				t.Errorf("Render(%q) = %q; want %q", test.in, got, want)
			}
		})
	}
}

func TestRenderRawHTMLBlock(t *testing.T) {
	const in = "<div>hi</div>\n"
	blocks, _ := cheapskate.Parse(cheapskate.Options{}, in)

	tests := []struct {
		name string
		opts cheapskate.Options
		want string
	}{
		{name: "EscapedByDefault", opts: cheapskate.Options{}, want: "&lt;div&gt;hi&lt;/div&gt;"},
		{name: "AllowRawHTML", opts: cheapskate.Options{AllowRawHTML: true}, want: "<div>hi</div>"},
		{name: "SanitizeWinsOverAllowRawHTML", opts: cheapskate.Options{AllowRawHTML: true, Sanitize: true}, want: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := &Renderer{Options: test.opts}
			var buf bytes.Buffer
			if err := r.Render(&buf, blocks); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != test.want {
				t.Errorf("Render(%q) = %q; want %q", in, got, test.want)
			}
		})
	}
}

func TestRenderHardBreak(t *testing.T) {
	const in = "foo  \nbar\n"
	blocks, _ := cheapskate.Parse(cheapskate.Options{}, in)

	tests := []struct {
		name string
		opts cheapskate.Options
		want string
	}{
		{name: "CollapsedByDefault", opts: cheapskate.Options{}, want: "<p>foo bar</p>"},
		{name: "PreserveHardBreaks", opts: cheapskate.Options{PreserveHardBreaks: true}, want: "<p>foo<br>bar</p>"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := &Renderer{Options: test.opts}
			var buf bytes.Buffer
			if err := r.Render(&buf, blocks); err != nil {
				t.Fatal(err)
			}
			got := normhtml.NormalizeHTML(buf.Bytes())
			want := normhtml.NormalizeHTML([]byte(test.want))
			if !bytes.Equal(got, want) {
				t.Errorf("Render(%q) = %q; want %q", in, got, want)
			}
		})
	}
}
