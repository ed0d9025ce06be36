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

package rule

import "github.com/spf13/cast"

// Operands carries a conversion rule's already-reduced child results,
// indexed by field name for records and by stringified position for
// containers (spec §4.2). Values are arbitrary — a conversion rule may
// reduce a child to a number, a string, or any foreign type, not just an
// ir.Node — so Operands additionally exposes cast-based coercions for the
// common case of a rule that wants a concrete Go type back out.
type Operands struct {
	order  []string
	values map[string]any
}

// NewOperands builds an Operands value from field/position names and
// their already-converted results, in the same order Children returned
// them.
func NewOperands(names []string, values []any) Operands {
	m := make(map[string]any, len(names))
	for i, n := range names {
		m[n] = values[i]
	}
	return Operands{order: names, values: m}
}

// Get returns the raw converted value at field/position name.
func (o Operands) Get(name string) any { return o.values[name] }

// At returns the raw converted value at position i, for container
// operands where fields are named "0", "1", ....
func (o Operands) At(i int) any {
	if i < 0 || i >= len(o.order) {
		return nil
	}
	return o.values[o.order[i]]
}

// Len reports how many operands were produced.
func (o Operands) Len() int { return len(o.order) }

// Names returns the field/position names in traversal order.
func (o Operands) Names() []string { return o.order }

// Int coerces the named operand to an int, per spf13/cast's permissive
// numeric/string conversion rules.
func (o Operands) Int(name string) (int, error) { return cast.ToIntE(o.values[name]) }

// Float64 coerces the named operand to a float64.
func (o Operands) Float64(name string) (float64, error) { return cast.ToFloat64E(o.values[name]) }

// Str coerces the named operand to a string.
func (o Operands) Str(name string) (string, error) { return cast.ToStringE(o.values[name]) }

// Bool coerces the named operand to a bool.
func (o Operands) Bool(name string) (bool, error) { return cast.ToBoolE(o.values[name]) }
