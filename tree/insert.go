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
	"github.com/traverse-dev/router/segment"
)

// Tree is a radix-style routing tree rooted at a sentinel node.
type Tree struct {
	root  *Node
	bloom *bloomFilter // nil unless WithBloomFilter enabled higher up
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{root: newNode()}
}

// EnableBloomFilter attaches a bloom filter over fully static
// truncation paths, sized for an expected route count.
func (t *Tree) EnableBloomFilter(expectedRoutes int, numHashFuncs int) {
	size := uint64(expectedRoutes * 10) //nolint:gosec
	t.bloom = newBloomFilter(size, numHashFuncs)
}

// Insert adds one route's compiled segments to the tree. It generates
// every valid truncation (the full route, plus a prefix for each
// trailing run of optional-or-defaulted segments), and inserts each as
// its own terminal path. term carries the route's identity, handler,
// and priority; Insert stamps a fresh Defaults map onto each
// truncation's own copy, populated from the segments that truncation
// drops.
func (t *Tree) Insert(segs []segment.Segment, term Terminal) {
	for _, length := range truncationLengths(segs) {
		t.insertTruncation(segs, length, term)
	}
}

// truncationLengths returns every valid truncation length for segs, in
// descending order starting with the full length. A length i < len(segs)
// is valid only when every segment at index >= i is Optional or
// HasDefault.
func truncationLengths(segs []segment.Segment) []int {
	n := len(segs)
	lengths := []int{n}

	for i := n - 1; i >= 0; i-- {
		if !segs[i].Optional && !segs[i].HasDefault {
			break
		}
		lengths = append(lengths, i)
	}

	return lengths
}

func (t *Tree) insertTruncation(segs []segment.Segment, length int, base Terminal) {
	cur := t.root

	for i := 0; i < length; i++ {
		s := segs[i]
		switch s.Kind {
		case segment.Static:
			cur = cur.findOrCreateStatic(s.Literal)
		case segment.Dynamic:
			cur = cur.findOrCreateDynamic(s.Name, s.Constraints, s.ConstraintSpecs, base.Priority)
		case segment.CatchAll:
			cur = cur.findOrCreateCatchAll(s.Name, s.Constraints, s.ConstraintSpecs)
		case segment.Wildcard:
			cur = cur.findOrCreateWildcard()
		}
	}

	term := base
	term.Defaults = defaultsFrom(segs, length)
	cur.setTerminal(&term)

	if t.bloom != nil && length == len(segs) && isFullyStatic(segs) {
		t.bloom.add(literalsOf(segs))
	}
}

// literalsOf returns the ordered static literals of a fully static
// truncation, suitable as a bloom filter key.
func literalsOf(segs []segment.Segment) []string {
	literals := make([]string, len(segs))
	for i, s := range segs {
		literals[i] = s.Literal
	}
	return literals
}

// defaultsFrom collects the default values contributed by every
// dropped segment past index length that declares one.
func defaultsFrom(segs []segment.Segment, length int) map[string]string {
	var defaults map[string]string
	for i := length; i < len(segs); i++ {
		s := segs[i]
		if s.HasDefault {
			if defaults == nil {
				defaults = make(map[string]string)
			}
			defaults[s.Name] = s.Default
		}
	}
	return defaults
}

func isFullyStatic(segs []segment.Segment) bool {
	for _, s := range segs {
		if s.Kind != segment.Static {
			return false
		}
	}
	return true
}
