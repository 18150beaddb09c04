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

package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleKinds(t *testing.T) {
	for _, name := range []string{"int", "long", "bool", "datetime", "decimal", "double", "float", "guid", "alpha", "required"} {
		c, err := Parse(name)
		require.NoError(t, err, name)
		assert.NotEqual(t, Unknown, c.Kind(), name)
	}
}

func TestParseUnknownConstraintIsAcceptedNotError(t *testing.T) {
	c, err := Parse("frobnicate")
	require.NoError(t, err)
	assert.Equal(t, Unknown, c.Kind())
	assert.False(t, c.Evaluate("anything"))
}

func TestParseRegexCapturesEntireParenSpan(t *testing.T) {
	c, err := Parse("regex(^(a|b),c$)")
	require.NoError(t, err)
	assert.Equal(t, Regex, c.Kind())
	assert.True(t, c.Evaluate("a,c"))
	assert.False(t, c.Evaluate("z,c"))
}

func TestParseMalformedRegexNeverMatches(t *testing.T) {
	c, err := Parse("regex([unterminated)")
	require.NoError(t, err, "malformed regex is not a registration error")
	assert.False(t, c.Evaluate("anything"))
}

func TestParseArgCountErrors(t *testing.T) {
	_, err := Parse("range(1)")
	assert.Error(t, err)

	_, err = Parse("min()")
	assert.Error(t, err)

	_, err = Parse("int(5)")
	assert.Error(t, err)
}

func TestEvaluateIntLong(t *testing.T) {
	c, _ := Parse("int")
	assert.True(t, c.Evaluate("42"))
	assert.True(t, c.Evaluate("-7"))
	assert.False(t, c.Evaluate("4.2"))
	assert.False(t, c.Evaluate("abc"))

	c, _ = Parse("long")
	assert.True(t, c.Evaluate("9000000000"))
	assert.False(t, c.Evaluate("4.2"))
	assert.False(t, c.Evaluate("abc"))
}

func TestEvaluateBool(t *testing.T) {
	c, _ := Parse("bool")
	assert.True(t, c.Evaluate("true"))
	assert.True(t, c.Evaluate("FALSE"))
	assert.False(t, c.Evaluate("1"))
}

func TestEvaluateGUID(t *testing.T) {
	c, _ := Parse("guid")
	assert.True(t, c.Evaluate("550e8400-e29b-41d4-a716-446655440000"))
	assert.False(t, c.Evaluate("550e8400e29b41d4a716446655440000"))
	assert.False(t, c.Evaluate("not-a-guid"))
}

func TestEvaluateLength(t *testing.T) {
	c, err := Parse("minlength(3)")
	require.NoError(t, err)
	assert.True(t, c.Evaluate("abc"))
	assert.False(t, c.Evaluate("ab"))

	c, err = Parse("maxlength(3)")
	require.NoError(t, err)
	assert.True(t, c.Evaluate("abc"))
	assert.False(t, c.Evaluate("abcd"))

	c, err = Parse("length(2,4)")
	require.NoError(t, err)
	assert.True(t, c.Evaluate("abc"))
	assert.False(t, c.Evaluate("a"))
	assert.False(t, c.Evaluate("abcde"))

	c, err = Parse("length(3)")
	require.NoError(t, err)
	assert.True(t, c.Evaluate("abc"))
	assert.False(t, c.Evaluate("abcd"))
}

func TestEvaluateNumericBounds(t *testing.T) {
	c, err := Parse("min(1)")
	require.NoError(t, err)
	assert.True(t, c.Evaluate("1"))
	assert.False(t, c.Evaluate("0"))

	c, err = Parse("max(10)")
	require.NoError(t, err)
	assert.True(t, c.Evaluate("10"))
	assert.False(t, c.Evaluate("11"))

	c, err = Parse("range(0,100)")
	require.NoError(t, err)
	assert.True(t, c.Evaluate("0"))
	assert.True(t, c.Evaluate("100"))
	assert.False(t, c.Evaluate("101"))
	assert.False(t, c.Evaluate("-1"))
	assert.False(t, c.Evaluate("abc"))
}

func TestEvaluateAlpha(t *testing.T) {
	c, _ := Parse("alpha")
	assert.True(t, c.Evaluate("electronics"))
	assert.False(t, c.Evaluate("electronics1"))
	assert.False(t, c.Evaluate(""))
}

func TestEvaluateRequired(t *testing.T) {
	c, _ := Parse("required")
	assert.True(t, c.Evaluate("x"))
	assert.False(t, c.Evaluate(""))
}

func TestEvaluateDateTime(t *testing.T) {
	c, _ := Parse("datetime")
	assert.True(t, c.Evaluate("2024-01-02T15:04:05Z"))
	assert.False(t, c.Evaluate("not-a-date"))
}

func TestTypePriority(t *testing.T) {
	assert.Equal(t, 1, TypePriority(Int))
	assert.Equal(t, 2, TypePriority(GUID))
	assert.Equal(t, 3, TypePriority(Long))
	assert.Equal(t, 10, TypePriority(Alpha))
}

func TestParseCachedMemoizesAndIsIdempotent(t *testing.T) {
	c1, err := ParseCached("range(5,9)")
	require.NoError(t, err)
	c2, err := ParseCached("range(5,9)")
	require.NoError(t, err)
	assert.Equal(t, c1, c2)
}
