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

package record

import (
	"fmt"

	"github.com/irpass-dev/irpass/ir"
	"github.com/irpass-dev/irpass/ir/errs"
)

// Base is the embeddable value a concrete record type carries to get
// Kind, KindChain, and Children for free. A record type still writes its
// own WithChildren, the same way the teacher's nodeA/nodeB/nodeC test
// fixtures each provide a one-line WithChildren over a shared testNode
// (sql/transform/node_test.go) — Go has no way to return the outer
// concrete type from an embedded method.
type Base struct {
	schema *Schema
	values []ir.Node
}

// NewBase builds a Base from a schema and field values given in the
// schema's declared field order. It panics if the value count does not
// match the schema — this is a programmer error (wiring up a record
// constructor), not a runtime schema violation, which is reserved for
// WithChildren rebuilding an existing node with the wrong shape.
func NewBase(schema *Schema, values ...ir.Node) Base {
	if len(values) != schema.FieldCount() {
		panic(fmt.Sprintf("record: %s expects %d fields, got %d",
			schema.Kind(), schema.FieldCount(), len(values)))
	}
	return Base{schema: schema, values: values}
}

func (b Base) Kind() ir.Kind        { return b.schema.Kind() }
func (b Base) KindChain() []ir.Kind { return b.schema.KindChain() }

func (b Base) Children() []ir.Child {
	out := make([]ir.Child, len(b.values))
	for i, f := range b.schema.Fields() {
		out[i] = ir.Child{Name: f, Node: b.values[i]}
	}
	return out
}

// Field returns the current value of the named field, or nil if the
// schema declares no such field.
func (b Base) Field(name string) ir.Node {
	for i, f := range b.schema.Fields() {
		if f == name {
			return b.values[i]
		}
	}
	return nil
}

// Rebuild validates a replacement children slice against the schema and
// returns a new Base with those values. Concrete record types call this
// from their own WithChildren and wrap the result back in their own type.
func (b Base) Rebuild(children []ir.Child) (Base, error) {
	fields := b.schema.Fields()
	if len(children) != len(fields) {
		return Base{}, errs.ErrSchemaViolation.New(fmt.Sprintf(
			"%s expects %d fields, got %d", b.schema.Kind(), len(fields), len(children)))
	}
	values := make([]ir.Node, len(children))
	for i, c := range children {
		if c.Name != fields[i] {
			return Base{}, errs.ErrSchemaViolation.New(fmt.Sprintf(
				"%s field %d: expected %q, got %q", b.schema.Kind(), i, fields[i], c.Name))
		}
		values[i] = c.Node
	}
	return Base{schema: b.schema, values: values}, nil
}
