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

// Package rule defines the three rule flavors (spec §4.2) and their
// shared machinery: kind-chain dispatch tables built once at construction
// time (design note §9(ii), rather than per-call reflection over method
// names), analysis requirements, and post-run invalidation.
//
// Dispatch mirrors tests/examples/dispatch_example.py's MRO fallback: a
// Square with no registered handler of its own falls back to whatever
// its ancestor Rectangle registered, because Lookup scans the node's
// whole KindChain, not just its own Kind.
package rule

import (
	"github.com/irpass-dev/irpass/ir"
	"github.com/irpass-dev/irpass/ir/walkorder"
)

// Rule is the behavior common to RewriteRule, ConversionRule, and
// AnalysisRule: a rule may declare analysis prerequisites that must be
// satisfied before it runs, and may declare which analyses its own run
// invalidates (spec §4.5's "after_call hook").
type Rule interface {
	Requirements() []Requirement
	Invalidates() []string
}

// Requirement names one analysis prerequisite: Name is the analysis's own
// kind name (matching the AnalysisRule.Kind() it will produce), Factory
// builds a fresh instance of that analysis rule, and Order is the walker
// order it runs under (defaulting to Post via the Require helper below).
type Requirement struct {
	Name    string
	Factory func() AnalysisRule
	Order   walkorder.Order
}

// Require declares a Post-ordered analysis requirement, the common case.
func Require(name string, factory func() AnalysisRule) Requirement {
	return Requirement{Name: name, Factory: factory, Order: walkorder.Post}
}

// RequireOrdered declares an analysis requirement under an explicit
// walker order.
func RequireOrdered(name string, factory func() AnalysisRule, order walkorder.Order) Requirement {
	return Requirement{Name: name, Factory: factory, Order: order}
}

// Dispatch is a kind-chain-keyed handler table shared by all three rule
// bases. It is built once, at rule-construction time, via On/Generic; the
// traversal hot path only ever calls Lookup.
type Dispatch[F any] struct {
	handlers map[ir.Kind]F
	generic  F
	hasGen   bool
}

// NewDispatch returns an empty dispatch table.
func NewDispatch[F any]() *Dispatch[F] {
	return &Dispatch[F]{handlers: map[ir.Kind]F{}}
}

// On registers fn for kind, overwriting any previous registration.
func (d *Dispatch[F]) On(kind ir.Kind, fn F) *Dispatch[F] {
	d.handlers[kind] = fn
	return d
}

// Generic registers the fallback used when no kind in a chain matches.
func (d *Dispatch[F]) Generic(fn F) *Dispatch[F] {
	d.generic = fn
	d.hasGen = true
	return d
}

// Lookup scans chain most-specific first and returns the first registered
// handler found, falling back to the generic handler, and reporting false
// if neither exists.
func (d *Dispatch[F]) Lookup(chain []ir.Kind) (F, bool) {
	for _, k := range chain {
		if fn, ok := d.handlers[k]; ok {
			return fn, true
		}
	}
	if d.hasGen {
		return d.generic, true
	}
	var zero F
	return zero, false
}

// requirementsInvalidates is embedded by every rule base so concrete rule
// types get Requirements/Invalidates/WithRequirements/WithInvalidates for
// free, the same way sql/transform's testNode gives nodeA/nodeB/nodeC
// most of sql.Node for free.
type requirementsInvalidates struct {
	requirements []Requirement
	invalidates  []string
}

func (r *requirementsInvalidates) Requirements() []Requirement { return r.requirements }

func (r *requirementsInvalidates) WithRequirements(reqs ...Requirement) {
	r.requirements = reqs
}

func (r *requirementsInvalidates) Invalidates() []string { return r.invalidates }

func (r *requirementsInvalidates) WithInvalidates(names ...string) {
	r.invalidates = names
}
