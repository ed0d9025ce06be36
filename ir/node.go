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

// Package ir defines the structural data model the rest of the framework
// traverses: the Node interface, its kind-chain dispatch key, and the
// built-in container kinds (mapping, sequence, tuple, atomic) that stand
// in for user record kinds wherever a model embeds raw data.
package ir

// Kind is a node's dispatch tag. User record kinds use their declared
// type name; containers and atomics use the synthetic kinds below.
type Kind string

const (
	KindMapping Kind = "dict"
	KindList    Kind = "list"
	KindTuple   Kind = "tuple"
	KindInt     Kind = "int"
	KindFloat   Kind = "float"
	KindString  Kind = "str"
	KindBool    Kind = "bool"
)

// Child pairs a structural position (a field name for a record, or a
// stringified index for a container) with the Node that occupies it.
type Child struct {
	Name string
	Node Node
}

// Node is any value the framework manipulates: a user record, a built-in
// container, or an atomic leaf. Implementations must be read-only from the
// traversal's perspective; WithChildren always returns a fresh Node.
type Node interface {
	// Kind returns the node's own, most-specific kind tag.
	Kind() Kind

	// KindChain returns the node's kind followed by its ancestor kinds,
	// most-specific first, ending at a universal root. Dispatch scans
	// this slice in order and stops at the first registered handler.
	KindChain() []Kind

	// Children returns this node's structural positions in declaration
	// (record), insertion (mapping), or index (sequence/tuple) order.
	// Atomic nodes return nil.
	Children() []Child

	// WithChildren rebuilds a Node of the same kind from replacement
	// children supplied in the same order Children returned them. It
	// must not mutate the receiver. Passing a children slice of the
	// wrong length, or (for a record) the wrong field names, is a
	// schema violation (see ErrSchemaViolation in package errs).
	WithChildren(children []Child) (Node, error)
}

// Equaler lets a Node override the default deep structural-equality
// algorithm in package ir (see Equal). Most record kinds never need this;
// it exists for atomics and containers with value semantics that differ
// from a field-by-field walk (e.g. two Atomic wrappers with the same Go
// value but different static types).
type Equaler interface {
	EqualNode(other Node) bool
}
