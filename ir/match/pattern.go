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

// Package match implements structural pattern matching and substitution
// over ir.Node trees (spec §4.6). It is grounded on
// original_source/src/oqd_compiler_infrastructure/match.py's
// _MatchPattern/_MatchSubstitute, reimplemented as a typed structural
// builder rather than a parser over Python source text (design note
// §9(v)): Union[A, B](x=..., y=Sub(...)) becomes
// match.Union(KindA, KindB).With("x", match.Any()).With("y",
// match.Sub(...)).
package match

import "github.com/irpass-dev/irpass/ir"

type fieldKind int

const (
	fieldWildcard fieldKind = iota // "...": present, unconstrained, unbound
	fieldBind                     // bind the raw child node to a variable name
	fieldSub                      // recurse with a nested Pattern
)

// FieldPattern constrains one named or positional field of a Pattern.
type FieldPattern struct {
	kind   fieldKind
	bindAs string
	nested *Pattern
}

// Any matches a field's presence without binding or recursing into it —
// the ast.Constant(value=Ellipsis) ("...") case in match.py.
func Any() FieldPattern { return FieldPattern{kind: fieldWildcard} }

// BindField binds the field's raw child node to name — the bare
// ast.Name keyword-value case in match.py.
func BindField(name string) FieldPattern { return FieldPattern{kind: fieldBind, bindAs: name} }

// Sub matches a field against a nested Pattern, merging its bound
// variables into the outer match — the ast.Call keyword-value case.
func Sub(p *Pattern) FieldPattern { return FieldPattern{kind: fieldSub, nested: p} }

// Pattern matches any node whose kind chain intersects Kinds (the
// Union[...] set, or a single kind), optionally binds the whole matched
// node to a variable (the positional-argument case in match.py), and
// constrains a subset of named fields.
type Pattern struct {
	kinds      map[ir.Kind]bool
	bindWhole  string
	fields     map[string]FieldPattern
	fieldOrder []string
}

// K matches any node whose kind chain contains any of kinds.
func K(kinds ...ir.Kind) *Pattern {
	set := make(map[ir.Kind]bool, len(kinds))
	for _, k := range kinds {
		set[k] = true
	}
	return &Pattern{kinds: set, fields: map[string]FieldPattern{}}
}

// Kind is K with a single kind, for readability at call sites matching
// exactly one kind.
func Kind(k ir.Kind) *Pattern { return K(k) }

// Union is an alias for K, naming the Union[A, B, ...] case explicitly.
func Union(kinds ...ir.Kind) *Pattern { return K(kinds...) }

// Bind records that a whole matched node should be bound to name —
// pattern.args containing a single ast.Name in match.py's generic_map.
func (p *Pattern) Bind(name string) *Pattern {
	p.bindWhole = name
	return p
}

// With constrains field (a record field name or a container's
// stringified index) to fp, and returns the receiver for chaining.
func (p *Pattern) With(field string, fp FieldPattern) *Pattern {
	if _, exists := p.fields[field]; !exists {
		p.fieldOrder = append(p.fieldOrder, field)
	}
	p.fields[field] = fp
	return p
}

func childNode(n ir.Node, name string) (ir.Node, bool) {
	for _, c := range n.Children() {
		if c.Name == name {
			return c.Node, true
		}
	}
	return nil, false
}

func chainIntersects(chain []ir.Kind, kinds map[ir.Kind]bool) bool {
	for _, k := range chain {
		if kinds[k] {
			return true
		}
	}
	return false
}
