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

import "sync"

// globalCache memoizes Parse results by their textual specifier. It is
// shared across every Router instance in the process: Parse is a pure
// function of its input string, so sharing the cache introduces no
// cross-instance coupling while letting two unrelated routers that
// happen to use "int" or "range(0,100)" reuse the same compiled
// Constraint. Entries are only ever added, never removed.
var globalCache sync.Map // string -> Constraint

// ParseCached parses spec through the shared cache, compiling it at
// most once per distinct specifier regardless of how many routes or
// routers reference it. Concurrent first-parses of the same key are
// idempotent: the loser of the race discards its own parse and reuses
// the winner's, per spec's "idempotent under concurrent insert" rule.
func ParseCached(spec string) (Constraint, error) {
	if v, ok := globalCache.Load(spec); ok {
		return v.(Constraint), nil
	}

	c, err := Parse(spec)
	if err != nil {
		return Constraint{}, err
	}

	actual, _ := globalCache.LoadOrStore(spec, c)
	return actual.(Constraint), nil
}
