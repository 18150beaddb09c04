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

import "github.com/traverse-dev/router/constraint"

// MatchResult reports the outcome of matching one request path.
type MatchResult struct {
	IsMatch bool
	Route   *Terminal
	Params  map[string]string

	// BestPartial is the highest-priority routable node's terminal seen
	// during the search (the first one seen among equal priorities), for
	// diagnostic fallback UX only — never a real match.
	BestPartial *Terminal
}

// bestPartial tracks the running best_partial across the whole
// recursive search, threaded by pointer rather than return value so
// every visited node (including ones on abandoned branches) can update
// it.
type bestPartial struct {
	term *Terminal
}

func (b *bestPartial) consider(term *Terminal) {
	if term == nil {
		return
	}
	if b.term == nil || term.Priority > b.term.Priority {
		b.term = term
	}
}

// Match walks the tree over request (already split, lower-cased, with
// empty segments removed by the caller) using depth-first search with
// backtracking, returning the best reachable handler.
func (t *Tree) Match(request []string) MatchResult {
	params := make(map[string]string)
	best := &bestPartial{}

	if term, ok := t.staticFast(request); ok {
		best.consider(term)
		return MatchResult{IsMatch: true, Route: term, Params: params, BestPartial: best.term}
	}

	term, exact := matchNode(t.root, request, 0, params, best)
	if !exact {
		term = nil
	}

	return MatchResult{
		IsMatch:     exact,
		Route:       term,
		Params:      params,
		BestPartial: best.term,
	}
}

func matchNode(n *Node, request []string, i int, params map[string]string, best *bestPartial) (*Terminal, bool) {
	var addedDefaults []string
	if n.terminal != nil {
		if n.terminal.Defaults != nil {
			addedDefaults = applyDefaults(params, n.terminal.Defaults)
		}
		best.consider(n.terminal)
	}

	if i == len(request) {
		if n.terminal != nil {
			return n.terminal, true
		}
		undoDefaults(params, addedDefaults)
		return nil, false
	}

	seg := request[i]

	// a. Static: exact literal match.
	if n.static != nil {
		if child, ok := n.static[seg]; ok {
			if term, exact := matchNode(child, request, i+1, params, best); exact {
				return term, true
			}
		}
	}

	// b. Dynamic: try each candidate in tie-break order, backtracking
	// on constraint failure or downstream miss.
	for _, c := range n.dynamicOrder {
		if !evaluateAll(c.constraints, seg) {
			continue
		}

		prevVal, existed := params[c.name]
		params[c.name] = seg

		term, exact := matchNode(c.child, request, i+1, params, best)
		if exact {
			return term, true
		}

		if existed {
			params[c.name] = prevVal
		} else {
			delete(params, c.name)
		}
	}

	// c. CatchAll: consumes every remaining segment at once.
	if n.catchAll != nil && n.catchAll.terminal != nil {
		remainder := catchAllRemainder(request, i)
		if evaluateAll(n.catchAllConstr, remainder) {
			params[n.catchAllName] = remainder
			best.consider(n.catchAll.terminal)
			return n.catchAll.terminal, true
		}
	}

	// d. Wildcard: unconditional fallback, captures everything left.
	if n.wildcard != nil && n.wildcard.terminal != nil {
		params["wildcard"] = wildcardCapture(request, i)
		best.consider(n.wildcard.terminal)
		return n.wildcard.terminal, true
	}

	undoDefaults(params, addedDefaults)
	return nil, false
}

func evaluateAll(cs []constraint.Constraint, candidate string) bool {
	for _, c := range cs {
		if !c.Evaluate(candidate) {
			return false
		}
	}
	return true
}

func applyDefaults(params map[string]string, defaults map[string]string) []string {
	var added []string
	for k, v := range defaults {
		if _, exists := params[k]; !exists {
			params[k] = v
			added = append(added, k)
		}
	}
	return added
}

func undoDefaults(params map[string]string, added []string) {
	for _, k := range added {
		delete(params, k)
	}
}
