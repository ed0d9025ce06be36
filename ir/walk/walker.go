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

// Package walk implements the four traversal orders (spec §4.3) as a
// single Walker type, parameterized by which of the three rule flavors
// it wraps. A Walker is a leaf passcore.Pass; the combinators in package
// pass compose Walkers (and each other) into larger passes.
//
// The rebuild-on-change pattern below is the same one sql/transform's
// testNode/nodeA/nodeB/nodeC fixtures exercise: a node's Children() are
// visited, and WithChildren is only called — producing a new Node — when
// at least one child actually changed, mirroring transform.Node's
// same-tree identity discipline without needing a boolean flag threaded
// through every return (Go's multi-value returns make the "did this
// change" signal implicit in pointer/value comparison instead).
package walk

import (
	"fmt"
	"reflect"

	"github.com/irpass-dev/irpass/ir"
	"github.com/irpass-dev/irpass/ir/errs"
	"github.com/irpass-dev/irpass/ir/passcore"
	"github.com/irpass-dev/irpass/ir/rule"
	"github.com/irpass-dev/irpass/ir/walkorder"
)

// Walker drives one Rule over a tree in one traversal order.
type Walker struct {
	order   walkorder.Order
	reverse bool
	r       rule.Rule
	label   string
}

// Pre returns a Walker that visits each node before recursing into its
// (possibly already-rewritten) children.
func Pre(r rule.Rule, reverse ...bool) *Walker { return newWalker(walkorder.Pre, r, reverse) }

// Post returns a Walker that recurses into children first and visits
// the rebuilt node afterward.
func Post(r rule.Rule, reverse ...bool) *Walker { return newWalker(walkorder.Post, r, reverse) }

// Level returns a Walker that visits the tree breadth-first, the root's
// own level first.
func Level(r rule.Rule, reverse ...bool) *Walker { return newWalker(walkorder.Level, r, reverse) }

// In returns a Walker that recurses into the first ceil(n/2) children,
// visits the (partially rebuilt) node, then recurses into the rest
// (Open Question decision 2 in DESIGN.md).
func In(r rule.Rule, reverse ...bool) *Walker { return newWalker(walkorder.In, r, reverse) }

func newWalker(order walkorder.Order, r rule.Rule, reverse []bool) *Walker {
	rev := len(reverse) > 0 && reverse[0]
	return &Walker{order: order, reverse: rev, r: r, label: fmt.Sprintf("%T/%s", r, order)}
}

var _ passcore.Pass = (*Walker)(nil)

func (w *Walker) Label() string { return w.label }

func (w *Walker) Children() []passcore.Pass { return nil }

func (w *Walker) SetVerbose(state bool, cascade bool, exclude ...string) {
	// A leaf Walker has no sub-passes to cascade into and stores no
	// verbose state; Invoke does no tracing of its own. Tracing happens
	// in pass.Run, driven by Context.Verbose.
}

// Clone returns a new *Walker sharing this one's order, reverse flag,
// and underlying Rule. Sharing the Rule is safe: per design note
// §9(iii) a rule flavor's only mutable-looking state (an AnalysisRule's
// Accumulator) is created fresh by Invoke on every call, never stored on
// the Rule itself.
func (w *Walker) Clone() passcore.Pass {
	return &Walker{order: w.order, reverse: w.reverse, r: w.r, label: w.label}
}

// Invoke satisfies the wrapped rule's Requirements (if any), runs the
// traversal, records this run in ctx.Cache when the underlying rule is
// itself an AnalysisRule (spec §8 scenario 3: a bare analysis walk still
// leaves a result behind for later Requirement consumers or direct cache
// reads), and finally invalidates every analysis name the rule lists in
// Invalidates().
func (w *Walker) Invoke(ctx *passcore.Context, n ir.Node) (any, error) {
	if ctx == nil {
		ctx = passcore.NewContext()
	}
	if err := w.satisfyRequirements(ctx, n); err != nil {
		return nil, err
	}

	var result any
	var err error

	switch rr := w.r.(type) {
	case rule.RewriteRule:
		result, err = w.walkRewrite(rr, n)
	case rule.ConversionRule:
		result, err = w.walkConvert(rr, n)
	case rule.AnalysisRule:
		acc := rule.NewAccumulator()
		err = w.walkAnalyze(rr, acc, n)
		if err == nil {
			ctx.Cache.Record(rr.Kind(), acc.Snapshot())
			result = n
		}
	default:
		return nil, errs.ErrUnsupportedPattern.New(fmt.Sprintf("rule type %T is not a RewriteRule, ConversionRule, or AnalysisRule", w.r))
	}
	if err != nil {
		return nil, err
	}

	for _, name := range w.r.Invalidates() {
		ctx.Cache.Invalidate(name)
	}
	return result, nil
}

// satisfyRequirements runs one sub-walker per declared Requirement over
// the same root node n this Walker itself is about to visit, sharing
// ctx's cache (design note §9(iv): cache identity is structural, via
// ctx, not a mutable setter). Spec §4.5 requires every invocation of the
// owning rule to re-satisfy its requirements — including every
// FixedPoint iteration — even when a valid entry from a prior run is
// still sitting in the cache, so this does not short-circuit on
// ctx.Cache.Valid; the sub-walker's own Invoke always records a fresh
// entry into ctx.Cache under the built analysis rule's Kind(),
// invalidating the stale one (spec §8 scenario 4). Requirement.Name is
// not consulted here.
func (w *Walker) satisfyRequirements(ctx *passcore.Context, n ir.Node) error {
	for _, req := range w.r.Requirements() {
		sub := newWalker(req.Order, req.Factory(), nil)
		if _, err := sub.Invoke(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

func changed(orig []ir.Child, next []ir.Child) bool {
	if len(orig) != len(next) {
		return true
	}
	for i := range orig {
		a, b := orig[i].Node, next[i].Node
		if eq, ok := a.(ir.Equaler); ok {
			if eq.EqualNode(b) {
				continue
			}
			return true
		}
		// Record values embed slices and cannot be compared with !=
		// (doing so panics at run time); treat them as changed.
		ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
		if ta != tb || (ta != nil && !ta.Comparable()) || a != b {
			return true
		}
	}
	return false
}

func rebuildIfChanged(n ir.Node, orig []ir.Child, next []ir.Child) (ir.Node, error) {
	if !changed(orig, next) {
		return n, nil
	}
	return n.WithChildren(next)
}
