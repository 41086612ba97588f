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

package format

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bgamari/cheapskate"
)

// TestRoundTrip is cheapskate's P4: formatting parsed Blocks back to
// Markdown and reparsing yields structurally equal Blocks, for input
// free of reference definitions and trailing paragraph whitespace.
func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"# Hello\n",
		"a paragraph\nof two lines\n",
		"- x\n- y\n- z\n",
		"> quoted\n",
		"```go\nfmt.Println(1)\n```\n",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			blocks, _ := cheapskate.Parse(cheapskate.Options{}, in)
			out := Format(blocks)
			reparsed, _ := cheapskate.Parse(cheapskate.Options{}, out)
			if diff := cmp.Diff(blocks, reparsed); diff != "" {
				t.Errorf("Format(%q) = %q; reparse differs (-want +got):\n%s", in, out, diff)
			}
		})
	}
}
