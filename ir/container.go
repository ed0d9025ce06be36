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
	"fmt"
	"strconv"

	"github.com/irpass-dev/irpass/ir/errs"
)

// Sequence is the built-in ordered-list container. Traversal visits its
// elements by position; WithChildren preserves arity unless the new
// children slice has a different length, which is legal for a Sequence
// (unlike a Tuple, whose arity is fixed).
type Sequence struct {
	Elems []Node
}

var _ Node = Sequence{}

func NewSequence(elems ...Node) Sequence { return Sequence{Elems: elems} }

func (s Sequence) Kind() Kind         { return KindList }
func (s Sequence) KindChain() []Kind  { return []Kind{KindList} }

func (s Sequence) Children() []Child {
	out := make([]Child, len(s.Elems))
	for i, e := range s.Elems {
		out[i] = Child{Name: strconv.Itoa(i), Node: e}
	}
	return out
}

func (s Sequence) WithChildren(children []Child) (Node, error) {
	elems := make([]Node, len(children))
	for i, c := range children {
		elems[i] = c.Node
	}
	return Sequence{Elems: elems}, nil
}

// Tuple is the built-in fixed-arity container. Rebuilding a Tuple with a
// children slice of different length is a schema violation: tuples do not
// grow or shrink across a rewrite.
type Tuple struct {
	Elems []Node
}

var _ Node = Tuple{}

func NewTuple(elems ...Node) Tuple { return Tuple{Elems: elems} }

func (t Tuple) Kind() Kind        { return KindTuple }
func (t Tuple) KindChain() []Kind { return []Kind{KindTuple} }

func (t Tuple) Children() []Child {
	out := make([]Child, len(t.Elems))
	for i, e := range t.Elems {
		out[i] = Child{Name: strconv.Itoa(i), Node: e}
	}
	return out
}

func (t Tuple) WithChildren(children []Child) (Node, error) {
	if len(children) != len(t.Elems) {
		return nil, errs.ErrSchemaViolation.New(fmt.Sprintf(
			"tuple has fixed arity %d, got %d children", len(t.Elems), len(children)))
	}
	elems := make([]Node, len(children))
	for i, c := range children {
		elems[i] = c.Node
	}
	return Tuple{Elems: elems}, nil
}

// Mapping is the built-in string-keyed container. Children are visited in
// insertion order (Open Question (i) in DESIGN.md), which Mapping
// preserves explicitly via the Order slice rather than relying on Go map
// iteration order.
type Mapping struct {
	Order  []string
	Values map[string]Node
}

var _ Node = Mapping{}

func NewMapping() Mapping {
	return Mapping{Values: map[string]Node{}}
}

// Set appends key (or updates it in place, preserving its original
// position) and returns the receiver for chaining.
func (m Mapping) Set(key string, value Node) Mapping {
	if _, ok := m.Values[key]; !ok {
		m.Order = append(m.Order, key)
	}
	m.Values[key] = value
	return m
}

func (m Mapping) Kind() Kind        { return KindMapping }
func (m Mapping) KindChain() []Kind { return []Kind{KindMapping} }

func (m Mapping) Children() []Child {
	out := make([]Child, len(m.Order))
	for i, k := range m.Order {
		out[i] = Child{Name: k, Node: m.Values[k]}
	}
	return out
}

func (m Mapping) WithChildren(children []Child) (Node, error) {
	nm := NewMapping()
	for _, c := range children {
		nm = nm.Set(c.Name, c.Node)
	}
	return nm, nil
}

// Atomic wraps an opaque leaf value (bool, string, or a numeric type).
// Atomics have no children; rewriting one means replacing it wholesale,
// never rebuilding it from parts.
type Atomic struct {
	Value any
}

var _ Node = Atomic{}

func NewAtomic(value any) Atomic { return Atomic{Value: value} }

func (a Atomic) Kind() Kind {
	switch a.Value.(type) {
	case bool:
		return KindBool
	case string:
		return KindString
	case float32, float64:
		return KindFloat
	default:
		return KindInt
	}
}

func (a Atomic) KindChain() []Kind { return []Kind{a.Kind()} }

func (a Atomic) Children() []Child { return nil }

func (a Atomic) WithChildren(children []Child) (Node, error) {
	if len(children) != 0 {
		return nil, errs.ErrSchemaViolation.New("atomic nodes accept no children")
	}
	return a, nil
}

func (a Atomic) EqualNode(other Node) bool {
	o, ok := other.(Atomic)
	if !ok {
		return false
	}
	return a.Value == o.Value
}
