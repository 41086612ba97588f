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

// continueLine walks the open container stack outermost-to-innermost,
// applying each container's continuation rule to text. It returns the
// unconsumed remainder and the number of deepest containers that failed
// to match; those containers must be closed unless the line turns out
// to be a lazy paragraph continuation.
func continueLine(stack *containerStack, text string) (remainder string, numUnmatched int) {
	remainder = text
	total := len(stack.frames)
	for i, c := range stack.frames {
		curCol := len(text) - len(remainder) + 1
		switch c.kind {
		case BlockQuoteKind:
			r, _ := scanNonindentSpace(remainder)
			r2, ok := scanBlockquoteStart(r)
			if !ok {
				return remainder, total - i
			}
			remainder = r2

		case IndentedCodeKind:
			if scanBlankLine(remainder) {
				continue
			}
			r, ok := scanIndentSpace(remainder)
			if !ok {
				return remainder, total - i
			}
			remainder = r

		case FencedCodeKind:
			r, _ := scanSpacesToColumn(remainder, curCol, c.startColumn)
			remainder = r

		case RawHTMLBlockKind:
			if scanBlankLine(remainder) {
				return remainder, total - i
			}

		case ListItemKind:
			if scanBlankLine(remainder) {
				continue
			}
			r, consumed := scanSpacesToColumn(remainder, curCol, c.markerColumn+1)
			if curCol+consumed < c.markerColumn+1 {
				return remainder, total - i
			}
			col2 := curCol + consumed
			r2, _ := scanSpacesToColumn(r, col2, col2+c.padding-1)
			remainder = r2

		case ReferenceKind:
			if scanBlankLine(remainder) || scanReference(remainder) {
				return remainder, total - i
			}
		}
	}
	return remainder, 0
}
