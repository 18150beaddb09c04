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

package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traverse-dev/router/segment"
)

func compile(t *testing.T, pattern string) []segment.Segment {
	t.Helper()
	raw, err := segment.ParsePattern(pattern)
	require.NoError(t, err)
	segs, err := segment.Compile(pattern, raw)
	require.NoError(t, err)
	return segs
}

func split(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	parts := strings.Split(path, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, strings.ToLower(p))
		}
	}
	return out
}

func TestMatchScenario1IntConstraint(t *testing.T) {
	tr := New()
	tr.Insert(compile(t, "/test/{arg1:int}"), Terminal{Handler: "H1", RouteID: "r1"})

	res := tr.Match(split("/test/4"))
	require.True(t, res.IsMatch)
	assert.Equal(t, "H1", res.Route.Handler)
	assert.Equal(t, "4", res.Params["arg1"])
}

func TestMatchScenario2IntConstraintRejects(t *testing.T) {
	tr := New()
	tr.Insert(compile(t, "/test/{arg1:int}"), Terminal{Handler: "H1", RouteID: "r1"})

	res := tr.Match(split("/test/abc"))
	assert.False(t, res.IsMatch)
}

func TestMatchScenario3StaticDynamicDiscrimination(t *testing.T) {
	tr := New()
	tr.Insert(compile(t, "/products/{category:alpha}"), Terminal{Handler: "H2", RouteID: "r2"})
	tr.Insert(compile(t, "/products/{category:alpha}/{id:int}"), Terminal{Handler: "H3", RouteID: "r3"})

	res := tr.Match(split("/products/electronics/123"))
	require.True(t, res.IsMatch)
	assert.Equal(t, "H3", res.Route.Handler)
	assert.Equal(t, "electronics", res.Params["category"])
	assert.Equal(t, "123", res.Params["id"])
}

func TestMatchScenario4GUID(t *testing.T) {
	tr := New()
	tr.Insert(compile(t, "/users/{userId:guid}"), Terminal{Handler: "H4", RouteID: "r4"})

	res := tr.Match(split("/users/550e8400-e29b-41d4-a716-446655440000"))
	require.True(t, res.IsMatch)
	assert.Equal(t, "H4", res.Route.Handler)
}

func TestMatchScenario5StaticBeatsWildcard(t *testing.T) {
	tr := New()
	tr.Insert(compile(t, "/docs/special"), Terminal{Handler: "H5", RouteID: "r5"})
	tr.Insert(compile(t, "/docs/*"), Terminal{Handler: "H6", RouteID: "r6"})

	res := tr.Match(split("/docs/special"))
	require.True(t, res.IsMatch)
	assert.Equal(t, "H5", res.Route.Handler)
}

func TestMatchScenario5bWildcardCapture(t *testing.T) {
	tr := New()
	tr.Insert(compile(t, "/docs/special"), Terminal{Handler: "H5", RouteID: "r5"})
	tr.Insert(compile(t, "/docs/*"), Terminal{Handler: "H6", RouteID: "r6"})

	res := tr.Match(split("/docs/other/nested"))
	require.True(t, res.IsMatch)
	assert.Equal(t, "H6", res.Route.Handler)
	assert.Equal(t, "/other/nested/", res.Params["wildcard"])
}

func TestMatchScenario6PriorityBreaksTies(t *testing.T) {
	tr := New()
	tr.Insert(compile(t, "/data/{id:int}"), Terminal{Handler: "HA", RouteID: "ra", Priority: 0})
	tr.Insert(compile(t, "/data/{id:int}"), Terminal{Handler: "HB", RouteID: "rb", Priority: 10})
	tr.Insert(compile(t, "/data/{id:int}"), Terminal{Handler: "HC", RouteID: "rc", Priority: 5})

	res := tr.Match(split("/data/123"))
	require.True(t, res.IsMatch)
	assert.Equal(t, "HB", res.Route.Handler)
}

func TestMatchScenario7MinConstraintRejects(t *testing.T) {
	tr := New()
	tr.Insert(compile(t, "/search/{query}/{page:int:min(1)}"), Terminal{Handler: "H7", RouteID: "r7"})

	res := tr.Match(split("/search/phones/0"))
	assert.False(t, res.IsMatch)
}

func TestMatchDefaultPropagation(t *testing.T) {
	tr := New()
	tr.Insert(compile(t, "/blog/{year:int}/{month=1:int}"), Terminal{Handler: "H", RouteID: "r1"})

	res := tr.Match(split("/blog/2024"))
	require.True(t, res.IsMatch)
	assert.Equal(t, "2024", res.Params["year"])
	assert.Equal(t, "1", res.Params["month"])
}

func TestMatchDefaultNotAppliedWhenSupplied(t *testing.T) {
	tr := New()
	tr.Insert(compile(t, "/blog/{year:int}/{month=1:int}"), Terminal{Handler: "H", RouteID: "r1"})

	res := tr.Match(split("/blog/2024/6"))
	require.True(t, res.IsMatch)
	assert.Equal(t, "6", res.Params["month"])
}

func TestMatchLastWriterWinsAtEqualPriority(t *testing.T) {
	tr := New()
	tr.Insert(compile(t, "/data/{id:int}"), Terminal{Handler: "first", RouteID: "r1", Priority: 5})
	tr.Insert(compile(t, "/data/{id:int}"), Terminal{Handler: "second", RouteID: "r2", Priority: 5})

	res := tr.Match(split("/data/7"))
	require.True(t, res.IsMatch)
	assert.Equal(t, "second", res.Route.Handler)
}

func TestMatchCatchAllConsumesRemainder(t *testing.T) {
	tr := New()
	tr.Insert(compile(t, "/files/{**path}"), Terminal{Handler: "FILES", RouteID: "r1"})

	res := tr.Match(split("/files/a/b/c.txt"))
	require.True(t, res.IsMatch)
	assert.Equal(t, "a/b/c.txt", res.Params["path"])
}

func TestMatchNoRouteIsCleanMiss(t *testing.T) {
	tr := New()
	tr.Insert(compile(t, "/a/b"), Terminal{Handler: "H", RouteID: "r1"})

	res := tr.Match(split("/x/y"))
	assert.False(t, res.IsMatch)
	assert.Nil(t, res.Route)
}

func TestMatchBestPartialTracksRoutableNodeOnMissedPath(t *testing.T) {
	tr := New()
	tr.Insert(compile(t, "/a/b"), Terminal{Handler: "AB", RouteID: "r1"})

	res := tr.Match(split("/a/b/c"))
	assert.False(t, res.IsMatch)
	require.NotNil(t, res.BestPartial)
	assert.Equal(t, "AB", res.BestPartial.Handler)
}

func TestMatchBloomFastPathAgreesWithFullWalk(t *testing.T) {
	tr := New()
	tr.EnableBloomFilter(16, 3)
	tr.Insert(compile(t, "/health"), Terminal{Handler: "HEALTH", RouteID: "r1"})
	tr.Insert(compile(t, "/users/{id:int}"), Terminal{Handler: "USER", RouteID: "r2"})

	res := tr.Match(split("/health"))
	require.True(t, res.IsMatch)
	assert.Equal(t, "HEALTH", res.Route.Handler)

	res = tr.Match(split("/users/42"))
	require.True(t, res.IsMatch)
	assert.Equal(t, "USER", res.Route.Handler)
	assert.Equal(t, "42", res.Params["id"])

	res = tr.Match(split("/nope"))
	assert.False(t, res.IsMatch)
}

func TestMatchDynamicTieBreakPrefersIntOverUnconstrained(t *testing.T) {
	tr := New()
	tr.Insert(compile(t, "/x/{name}"), Terminal{Handler: "ANY", RouteID: "r1"})
	tr.Insert(compile(t, "/x/{id:int}"), Terminal{Handler: "INT", RouteID: "r2"})

	res := tr.Match(split("/x/42"))
	require.True(t, res.IsMatch)
	assert.Equal(t, "INT", res.Route.Handler)

	res2 := tr.Match(split("/x/abc"))
	require.True(t, res2.IsMatch)
	assert.Equal(t, "ANY", res2.Route.Handler)
}
