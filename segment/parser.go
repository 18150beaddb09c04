// Copyright 2026 The Traverse Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package segment

import "strings"

// ParsePattern lexes a raw pattern string into the ordered list of raw
// segment texts between '/' separators. Braces are left exactly as
// written — doubled escapes "{{"/"}}" included — so that a genuine
// parameter delimiter can later be told apart from an escaped literal
// brace; Compile does that disambiguation and the un-escaping.
//
// Depth tracking exists to find segment boundaries correctly: a '/' is
// only a separator at depth 0, and to reject an unmatched brace at
// registration time rather than produce a garbled segment. Per the
// grammar, a parameter segment is always the entire segment (braces
// never nest inside one), so depth only ever toggles 0 <-> 1; escaping
// is only meaningful outside any parameter, at depth 0.
//
// This keeps the split cheap and leaves all segment-shape
// classification to a second pass over each piece.
func ParsePattern(pattern string) ([]string, error) {
	var segments []string
	var buf strings.Builder
	depth := 0

	flush := func() {
		if buf.Len() > 0 {
			segments = append(segments, buf.String())
			buf.Reset()
		}
	}

	runes := []rune(pattern)
	n := len(runes)
	for i := 0; i < n; i++ {
		r := runes[i]
		switch r {
		case '/':
			if depth == 0 {
				flush()
				continue
			}
			buf.WriteRune(r)
		case '{':
			if depth == 0 && i+1 < n && runes[i+1] == '{' {
				buf.WriteString("{{")
				i++
				continue
			}
			if depth > 0 {
				return nil, newSyntaxError(pattern, "unmatched '{'", ErrUnmatchedBrace)
			}
			depth++
			buf.WriteRune(r)
		case '}':
			if depth == 0 {
				if i+1 < n && runes[i+1] == '}' {
					buf.WriteString("}}")
					i++
					continue
				}
				return nil, newSyntaxError(pattern, "unmatched '}'", ErrUnmatchedBrace)
			}
			depth--
			buf.WriteRune(r)
		default:
			buf.WriteRune(r)
		}
	}
	if depth != 0 {
		return nil, newSyntaxError(pattern, "unmatched '{'", ErrUnmatchedBrace)
	}
	flush()

	return segments, nil
}
