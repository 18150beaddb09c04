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

// Package tree implements the radix-style routing tree: insertion of
// compiled route segments (including the truncations generated for
// optional/default tails), and depth-first matching with backtracking,
// default-value propagation, and best-partial tracking.
package tree

import (
	"math"
	"sort"

	"github.com/traverse-dev/router/constraint"
)

// Terminal is the weak reference a routable node carries back to its
// owning Route: identity, handler, and priority only. The tree never
// holds a Route value itself — ownership stays with the registry.
type Terminal struct {
	Handler  any
	Priority int
	RouteID  string

	// Defaults holds the default values contributed by the segments
	// dropped past this truncation's depth, keyed by lower-cased
	// parameter name.
	Defaults map[string]string
}

// candidate is one sibling in a Dynamic bucket: a
// parameter name plus the specific constraint set that must pass
// before its child node is entered.
type candidate struct {
	name            string
	constraints     []constraint.Constraint
	constraintSpecs []string
	typePriority    int
	priority        int // best route priority seen through this candidate, for tie-break
	seq             uint64
	child           *Node
}

func sameConstraintSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func typePriorityOf(cs []constraint.Constraint) int {
	if len(cs) == 0 {
		return math.MaxInt
	}
	best := math.MaxInt
	for _, c := range cs {
		if p := constraint.TypePriority(c.Kind()); p < best {
			best = p
		}
	}
	return best
}

// Node is one point in the routing tree.
type Node struct {
	static map[string]*Node

	dynamicGroups map[string][]*candidate // by param name, for insert-time dedup
	dynamicOrder  []*candidate             // flattened, globally tie-break sorted

	wildcard *Node

	catchAll       *Node
	catchAllName   string
	catchAllConstr []constraint.Constraint
	catchAllSpecs  []string

	terminal *Terminal

	nextSeq uint64
}

func newNode() *Node {
	return &Node{}
}

// sortDynamicOrder re-sorts the flattened candidate list per the tie-break
// rule: lower type priority first, then higher route priority, then
// insertion order.
func (n *Node) sortDynamicOrder() {
	sort.SliceStable(n.dynamicOrder, func(i, j int) bool {
		a, b := n.dynamicOrder[i], n.dynamicOrder[j]
		if a.typePriority != b.typePriority {
			return a.typePriority < b.typePriority
		}
		if a.priority != b.priority {
			return a.priority > b.priority
		}
		return a.seq < b.seq
	})
}

// findOrCreateDynamic returns the child node for a Dynamic segment with
// the given name and constraint set, creating a new candidate if no
// existing one shares the identical constraint set. routePriority
// updates the candidate's tie-break priority whenever it's higher than
// what's been seen through this candidate so far.
func (n *Node) findOrCreateDynamic(name string, cs []constraint.Constraint, specs []string, routePriority int) *Node {
	if n.dynamicGroups == nil {
		n.dynamicGroups = make(map[string][]*candidate)
	}

	for _, c := range n.dynamicGroups[name] {
		if sameConstraintSet(c.constraintSpecs, specs) {
			if routePriority > c.priority {
				c.priority = routePriority
				n.sortDynamicOrder()
			}
			return c.child
		}
	}

	n.nextSeq++
	c := &candidate{
		name:            name,
		constraints:     cs,
		constraintSpecs: specs,
		typePriority:    typePriorityOf(cs),
		priority:        routePriority,
		seq:             n.nextSeq,
		child:           newNode(),
	}
	n.dynamicGroups[name] = append(n.dynamicGroups[name], c)
	n.dynamicOrder = append(n.dynamicOrder, c)
	n.sortDynamicOrder()

	return c.child
}

// findOrCreateCatchAll returns the single catch-all child, creating it
// on first use. Only one catch-all child exists per parent: the segment
// package rejects a route with more than one terminal segment, and a
// later route's catch-all under the same parent reuses this child
// together with the name and constraints recorded by the first one.
func (n *Node) findOrCreateCatchAll(name string, cs []constraint.Constraint, specs []string) *Node {
	if n.catchAll == nil {
		n.catchAll = newNode()
		n.catchAllName = name
		n.catchAllConstr = cs
		n.catchAllSpecs = specs
	}
	return n.catchAll
}

func (n *Node) findOrCreateWildcard() *Node {
	if n.wildcard == nil {
		n.wildcard = newNode()
	}
	return n.wildcard
}

func (n *Node) findOrCreateStatic(literal string) *Node {
	if n.static == nil {
		n.static = make(map[string]*Node)
	}
	child, ok := n.static[literal]
	if !ok {
		child = newNode()
		n.static[literal] = child
	}
	return child
}

// setTerminal attaches or replaces this node's terminal per the
// last-writer-wins-at-equal-priority rule: a strictly lower priority
// than the existing terminal is ignored, anything else replaces it.
func (n *Node) setTerminal(term *Terminal) {
	if n.terminal == nil || term.Priority >= n.terminal.Priority {
		n.terminal = term
	}
}
