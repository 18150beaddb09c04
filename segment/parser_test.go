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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePatternBasic(t *testing.T) {
	segs, err := ParsePattern("/products/{category:alpha}/{id:int}")
	require.NoError(t, err)
	assert.Equal(t, []string{"products", "{category:alpha}", "{id:int}"}, segs)
}

func TestParsePatternDropsEmptySegments(t *testing.T) {
	segs, err := ParsePattern("/a//b///c/")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, segs)
}

func TestParsePatternLeadingSlashOptional(t *testing.T) {
	segs, err := ParsePattern("a/b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, segs)
}

func TestParsePatternRegexArgsNotSplit(t *testing.T) {
	segs, err := ParsePattern("/search/{id:regex(^[0-9]+$)}")
	require.NoError(t, err)
	assert.Equal(t, []string{"search", "{id:regex(^[0-9]+$)}"}, segs)
}

func TestParsePatternDoubledBraceEscape(t *testing.T) {
	segs, err := ParsePattern("/docs/{{literal}}")
	require.NoError(t, err)
	assert.Equal(t, []string{"docs", "{{literal}}"}, segs)
}

func TestParsePatternUnmatchedBraceErrors(t *testing.T) {
	_, err := ParsePattern("/a/{unterminated")
	require.Error(t, err)

	_, err = ParsePattern("/a/unopened}")
	require.Error(t, err)
}

func TestParsePatternWildcard(t *testing.T) {
	segs, err := ParsePattern("/static/*")
	require.NoError(t, err)
	assert.Equal(t, []string{"static", "*"}, segs)
}

func TestParsePatternCatchAll(t *testing.T) {
	segs, err := ParsePattern("/files/{**path}")
	require.NoError(t, err)
	assert.Equal(t, []string{"files", "{**path}"}, segs)
}
