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

// Package record gives IR authors a way to declare a record kind's name,
// ancestor chain, and ordered field list once, at package-init time,
// rather than discovering them by reflection on every dispatch (design
// note §9(ii)). A Schema is the one-time declaration; Base is the
// embeddable value record kinds carry to satisfy ir.Node cheaply.
package record

import "github.com/irpass-dev/irpass/ir"

// Schema is an immutable description of a record kind, built once via
// Define and shared by every instance of that kind.
type Schema struct {
	kind      ir.Kind
	ancestors []ir.Kind
	fields    []string
}

// Define registers a record schema: its own kind name, its ancestor kinds
// (most-specific first, excluding the kind itself), and its field names
// in declaration order. Call this once per record kind, typically from a
// package-level var initializer, and share the resulting *Schema across
// every value of that kind.
func Define(kind ir.Kind, ancestors []ir.Kind, fields ...string) *Schema {
	return &Schema{kind: kind, ancestors: ancestors, fields: fields}
}

func (s *Schema) Kind() ir.Kind { return s.kind }

func (s *Schema) KindChain() []ir.Kind {
	chain := make([]ir.Kind, 0, len(s.ancestors)+1)
	chain = append(chain, s.kind)
	chain = append(chain, s.ancestors...)
	return chain
}

func (s *Schema) Fields() []string { return s.fields }

func (s *Schema) FieldCount() int { return len(s.fields) }
