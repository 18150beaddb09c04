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

import "hash/fnv"

// bloomFilter is a probabilistic negative-lookup filter over the fully
// static route truncations the tree holds, keyed directly on a
// truncation's ordered literal segments rather than a pre-joined path
// string — callers pass the same []string a static descent already
// walks, so there's no separate "build a cache key" step at either
// add or test time.
//
// Bit positions come from Kirsch-Mitzenmacher double hashing: two
// independent FNV passes over the literals (the 1a variant and the
// plain variant) are combined as h1 + i*h2 for i in
// [0, numHashFuncs), rather than XORing one hash against a handful of
// small consecutive seeds. Two hashes built from different avalanche
// mixes give positions that stay well distributed even when
// numHashFuncs grows past a handful, which a single-hash XOR-seed
// scheme starts to correlate.
type bloomFilter struct {
	bits         []uint64
	size         uint64
	numHashFuncs int
}

func newBloomFilter(size uint64, numHashFuncs int) *bloomFilter {
	if size < 100 {
		size = 100
	}
	if numHashFuncs < 1 {
		numHashFuncs = 1
	}
	return &bloomFilter{
		bits:         make([]uint64, (size+63)/64),
		size:         size,
		numHashFuncs: numHashFuncs,
	}
}

// literalHashes folds a truncation's literals into two independent base
// hashes. Each literal is written with a trailing separator so
// []string{"a", "bc"} and []string{"ab", "c"} never collide on the
// concatenation alone.
func literalHashes(literals []string) (h1, h2 uint64) {
	a := fnv.New64a()
	b := fnv.New64()
	for _, lit := range literals {
		a.Write([]byte(lit))
		a.Write([]byte{'/'})
		b.Write([]byte(lit))
		b.Write([]byte{'/'})
	}
	return a.Sum64(), b.Sum64()
}

func (bf *bloomFilter) positions(literals []string) []uint64 {
	h1, h2 := literalHashes(literals)
	pos := make([]uint64, bf.numHashFuncs)
	for i := range pos {
		pos[i] = (h1 + uint64(i)*h2) % bf.size
	}
	return pos
}

// add records literals as a member.
func (bf *bloomFilter) add(literals []string) {
	for _, pos := range bf.positions(literals) {
		bf.bits[pos/64] |= 1 << (pos % 64)
	}
}

// test reports whether literals might be a fully static truncation the
// tree has seen. false is a definite negative; true means "walk the
// real static children to be sure".
func (bf *bloomFilter) test(literals []string) bool {
	for _, pos := range bf.positions(literals) {
		if bf.bits[pos/64]&(1<<(pos%64)) == 0 {
			return false
		}
	}
	return true
}

// staticFast attempts a direct descent through only static children,
// gated by the bloom filter's negative lookup. A request the filter
// reports absent cannot be a fully static route (add is only ever
// called with a fully static truncation's own literals), so there is no
// point walking children at all. A positive test still requires the
// real walk, since the filter can false-positive.
//
// A hit here is always safe to return immediately: static branches take
// priority over dynamic, wildcard, and catch-all at every level (spec
// §4.5), so a fully static route terminating exactly at this path can
// never be shadowed by a less specific match.
func (t *Tree) staticFast(request []string) (*Terminal, bool) {
	if t.bloom == nil {
		return nil, false
	}
	if !t.bloom.test(request) {
		return nil, false
	}

	n := t.root
	for _, seg := range request {
		if n.static == nil {
			return nil, false
		}
		child, ok := n.static[seg]
		if !ok {
			return nil, false
		}
		n = child
	}

	if n.terminal == nil {
		return nil, false
	}
	return n.terminal, true
}
