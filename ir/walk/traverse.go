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

package walk

import (
	"github.com/irpass-dev/irpass/ir"
	"github.com/irpass-dev/irpass/ir/rule"
	"github.com/irpass-dev/irpass/ir/walkorder"
)

// orderedIndices returns 0..n-1, or that range reversed when reverse is
// set — the mechanism every traversal order uses to decide which child
// gets recursed into first without disturbing the positional order
// WithChildren expects its argument back in.
func orderedIndices(n int, reverse bool) []int {
	idxs := make([]int, n)
	for i := range idxs {
		idxs[i] = i
	}
	if reverse {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			idxs[i], idxs[j] = idxs[j], idxs[i]
		}
	}
	return idxs
}

func depth(n ir.Node) int {
	children := n.Children()
	if len(children) == 0 {
		return 0
	}
	max := 0
	for _, c := range children {
		if d := depth(c.Node); d > max {
			max = d
		}
	}
	return max + 1
}

// walkRewrite dispatches to the traversal-order-specific rewrite
// strategy.
func (w *Walker) walkRewrite(rr rule.RewriteRule, n ir.Node) (ir.Node, error) {
	switch w.order {
	case walkorder.Pre:
		return w.rewritePre(rr, n)
	case walkorder.Post:
		return w.rewritePost(rr, n)
	case walkorder.Level:
		return w.rewriteLevel(rr, n)
	case walkorder.In:
		return w.rewriteIn(rr, n)
	default:
		return w.rewritePre(rr, n)
	}
}

func (w *Walker) rewritePre(rr rule.RewriteRule, n ir.Node) (ir.Node, error) {
	visited, err := rr.Rewrite(n)
	if err != nil {
		return nil, err
	}
	children := visited.Children()
	next := make([]ir.Child, len(children))
	copy(next, children)
	for _, i := range orderedIndices(len(children), w.reverse) {
		c := children[i]
		newNode, err := w.rewritePre(rr, c.Node)
		if err != nil {
			return nil, err
		}
		next[i] = ir.Child{Name: c.Name, Node: newNode}
	}
	return rebuildIfChanged(visited, children, next)
}

func (w *Walker) rewritePost(rr rule.RewriteRule, n ir.Node) (ir.Node, error) {
	children := n.Children()
	next := make([]ir.Child, len(children))
	copy(next, children)
	for _, i := range orderedIndices(len(children), w.reverse) {
		c := children[i]
		newNode, err := w.rewritePost(rr, c.Node)
		if err != nil {
			return nil, err
		}
		next[i] = ir.Child{Name: c.Name, Node: newNode}
	}
	rebuilt, err := rebuildIfChanged(n, children, next)
	if err != nil {
		return nil, err
	}
	return rr.Rewrite(rebuilt)
}

func (w *Walker) rewriteLevel(rr rule.RewriteRule, root ir.Node) (ir.Node, error) {
	cur := root
	maxDepth := depth(root)
	for d := 0; d <= maxDepth; d++ {
		next, err := w.rewriteAtDepth(rr, cur, 0, d)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

func (w *Walker) rewriteAtDepth(rr rule.RewriteRule, n ir.Node, cur, target int) (ir.Node, error) {
	if cur == target {
		return rr.Rewrite(n)
	}
	children := n.Children()
	next := make([]ir.Child, len(children))
	copy(next, children)
	for _, i := range orderedIndices(len(children), w.reverse) {
		c := children[i]
		nn, err := w.rewriteAtDepth(rr, c.Node, cur+1, target)
		if err != nil {
			return nil, err
		}
		next[i] = ir.Child{Name: c.Name, Node: nn}
	}
	return rebuildIfChanged(n, children, next)
}

// rewriteIn recurses into the first ceil(n/2) children (in traversal
// order, which reverse may flip), rebuilds and visits the node, then
// recurses into the remaining children of the *visited* node's own
// Children() (Open Question decision 2 in DESIGN.md: for odd arity,
// the extra child goes before the parent, matching
// original_source/tests/test_walk.py's TestInWalk.test_in_nested_list,
// which visits ['d', 'e', 'f'] as d, e, the parent, f).
func (w *Walker) rewriteIn(rr rule.RewriteRule, n ir.Node) (ir.Node, error) {
	children := n.Children()
	if len(children) == 0 {
		return rr.Rewrite(n)
	}

	order := orderedIndices(len(children), w.reverse)
	half := (len(children) + 1) / 2
	first, rest := order[:half], order[half:]

	partial := make([]ir.Child, len(children))
	copy(partial, children)
	for _, i := range first {
		nn, err := w.rewriteIn(rr, children[i].Node)
		if err != nil {
			return nil, err
		}
		partial[i] = ir.Child{Name: children[i].Name, Node: nn}
	}

	rebuilt, err := rebuildIfChanged(n, children, partial)
	if err != nil {
		return nil, err
	}
	visited, err := rr.Rewrite(rebuilt)
	if err != nil {
		return nil, err
	}

	visitedChildren := visited.Children()
	final := make([]ir.Child, len(visitedChildren))
	copy(final, visitedChildren)
	for _, i := range rest {
		if i >= len(visitedChildren) {
			continue
		}
		c := visitedChildren[i]
		nn, err := w.rewriteIn(rr, c.Node)
		if err != nil {
			return nil, err
		}
		final[i] = ir.Child{Name: c.Name, Node: nn}
	}
	return rebuildIfChanged(visited, visitedChildren, final)
}

// walkConvert always folds bottom-up: a ConversionFunc receives the
// already-converted Operands of every child, so there is no well-formed
// Pre/Level/In variant — whichever order the Walker was built with, a
// conversion always needs every child's result before it can run. The
// configured order is not consulted; only the reverse flag controls which
// child is *evaluated* first, which matters when a ConversionFunc has
// observable side effects.
func (w *Walker) walkConvert(rr rule.ConversionRule, n ir.Node) (any, error) {
	children := n.Children()
	values := make([]any, len(children))
	names := make([]string, len(children))
	for i, c := range children {
		names[i] = c.Name
	}
	for _, i := range orderedIndices(len(children), w.reverse) {
		v, err := w.walkConvert(rr, children[i].Node)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return rr.Convert(n, rule.NewOperands(names, values))
}

// walkAnalyze supports all four orders, since Analyze only observes a
// node and never needs a child's result to run.
func (w *Walker) walkAnalyze(rr rule.AnalysisRule, acc *rule.Accumulator, n ir.Node) error {
	switch w.order {
	case walkorder.Pre:
		return w.analyzePre(rr, acc, n)
	case walkorder.Post:
		return w.analyzePost(rr, acc, n)
	case walkorder.Level:
		return w.analyzeLevel(rr, acc, n)
	case walkorder.In:
		return w.analyzeIn(rr, acc, n)
	default:
		return w.analyzePre(rr, acc, n)
	}
}

func (w *Walker) analyzePre(rr rule.AnalysisRule, acc *rule.Accumulator, n ir.Node) error {
	if err := rr.Analyze(acc, n); err != nil {
		return err
	}
	children := n.Children()
	for _, i := range orderedIndices(len(children), w.reverse) {
		if err := w.analyzePre(rr, acc, children[i].Node); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) analyzePost(rr rule.AnalysisRule, acc *rule.Accumulator, n ir.Node) error {
	children := n.Children()
	for _, i := range orderedIndices(len(children), w.reverse) {
		if err := w.analyzePost(rr, acc, children[i].Node); err != nil {
			return err
		}
	}
	return rr.Analyze(acc, n)
}

func (w *Walker) analyzeLevel(rr rule.AnalysisRule, acc *rule.Accumulator, root ir.Node) error {
	queue := []ir.Node{root}
	for len(queue) > 0 {
		var nextQueue []ir.Node
		for _, n := range queue {
			if err := rr.Analyze(acc, n); err != nil {
				return err
			}
			children := n.Children()
			for _, i := range orderedIndices(len(children), w.reverse) {
				nextQueue = append(nextQueue, children[i].Node)
			}
		}
		queue = nextQueue
	}
	return nil
}

// analyzeIn recurses into the first ceil(n/2) children before visiting
// the parent, matching rewriteIn's odd-arity convention (see its doc
// comment).
func (w *Walker) analyzeIn(rr rule.AnalysisRule, acc *rule.Accumulator, n ir.Node) error {
	children := n.Children()
	if len(children) == 0 {
		return rr.Analyze(acc, n)
	}
	order := orderedIndices(len(children), w.reverse)
	half := (len(children) + 1) / 2
	first, rest := order[:half], order[half:]

	for _, i := range first {
		if err := w.analyzeIn(rr, acc, children[i].Node); err != nil {
			return err
		}
	}
	if err := rr.Analyze(acc, n); err != nil {
		return err
	}
	for _, i := range rest {
		if err := w.analyzeIn(rr, acc, children[i].Node); err != nil {
			return err
		}
	}
	return nil
}
