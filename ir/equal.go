// Copyright 2025 The IRPass Authors
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

package ir

import (
	"github.com/mitchellh/hashstructure/v2"
)

// Equal reports whether two nodes are structurally equal: same kind, same
// ordered field/position labels, and recursively equal children. Sequence
// and tuple equality is order-sensitive; mapping equality is key-set
// sensitive (insertion order does not matter for equality, only for
// traversal).
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	// Fast path: a structural hash mismatch proves inequality without
	// walking the tree. A match still falls through to the full
	// comparison below since hashstructure, like any fingerprint, can
	// collide.
	ha, errA := fingerprint(a)
	hb, errB := fingerprint(b)
	if errA == nil && errB == nil && ha != hb {
		return false
	}

	if eq, ok := a.(Equaler); ok {
		return eq.EqualNode(b)
	}

	if a.Kind() != b.Kind() {
		return false
	}

	ca, cb := a.Children(), b.Children()
	if len(ca) != len(cb) {
		return false
	}

	if a.Kind() == KindMapping {
		return equalByKeySet(ca, cb)
	}

	for i := range ca {
		if ca[i].Name != cb[i].Name {
			return false
		}
		if !Equal(ca[i].Node, cb[i].Node) {
			return false
		}
	}
	return true
}

func equalByKeySet(ca, cb []Child) bool {
	lookup := make(map[string]Node, len(cb))
	for _, c := range cb {
		lookup[c.Name] = c.Node
	}
	for _, c := range ca {
		other, ok := lookup[c.Name]
		if !ok || !Equal(c.Node, other) {
			return false
		}
	}
	return true
}

// fingerprint computes a structural hash of a node's kind and the
// fingerprints of its children, ignoring traversal order for mappings so
// the fast path never produces a false mismatch against the slower,
// authoritative comparison above.
func fingerprint(n Node) (uint64, error) {
	if n == nil {
		return 0, nil
	}
	type shape struct {
		Kind     Kind
		Children map[string]uint64
	}
	s := shape{Kind: n.Kind(), Children: map[string]uint64{}}
	for _, c := range n.Children() {
		h, err := fingerprint(c.Node)
		if err != nil {
			return 0, err
		}
		s.Children[c.Name] = h
	}
	if a, ok := n.(Atomic); ok {
		return hashstructure.Hash(struct {
			Kind  Kind
			Value any
		}{a.Kind(), a.Value}, hashstructure.FormatV2, nil)
	}
	return hashstructure.Hash(s, hashstructure.FormatV2, nil)
}
