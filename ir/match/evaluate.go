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

package match

import (
	"fmt"

	"github.com/irpass-dev/irpass/ir"
	"github.com/irpass-dev/irpass/ir/errs"
)

// MatchResult is the outcome of Evaluate: whether p matched, and the
// variables it bound (via Bind/BindField/Sub) along the way.
type MatchResult struct {
	State     bool
	Variables map[string]ir.Node
}

// Evaluate checks whether n matches p, binding variables from Bind,
// BindField, and nested Sub patterns as it goes. A failed nested Sub
// match short-circuits the whole result to State: false, mirroring
// MatchResult.add's state = self.state and other.state.
func Evaluate(p *Pattern, n ir.Node) MatchResult {
	if !chainIntersects(n.KindChain(), p.kinds) {
		return MatchResult{State: false}
	}

	vars := map[string]ir.Node{}
	if p.bindWhole != "" {
		vars[p.bindWhole] = n
	}

	for _, field := range p.fieldOrder {
		fp := p.fields[field]
		switch fp.kind {
		case fieldWildcard:
			continue
		case fieldBind:
			child, ok := childNode(n, field)
			if !ok {
				return MatchResult{State: false}
			}
			vars[fp.bindAs] = child
		case fieldSub:
			child, ok := childNode(n, field)
			if !ok {
				return MatchResult{State: false}
			}
			sub := Evaluate(fp.nested, child)
			if !sub.State {
				return MatchResult{State: false}
			}
			for k, v := range sub.Variables {
				vars[k] = v
			}
		}
	}
	return MatchResult{State: true, Variables: vars}
}

// Substitute rebuilds n according to p, replacing each Bind/BindField/Sub
// position with the corresponding entry of substitutions (already
// transformed values, keyed by the same variable names Evaluate bound).
// It returns errs.ErrNoMatch only when the kind chain of n (or of a
// nested Sub position) does not intersect the pattern's kinds; other
// mismatches, such as a bound field n lacks, are not detected, so callers
// are expected to have already confirmed a match via Evaluate.
func Substitute(p *Pattern, n ir.Node, substitutions map[string]ir.Node) (ir.Node, error) {
	if !chainIntersects(n.KindChain(), p.kinds) {
		return nil, errs.ErrNoMatch.New()
	}

	if p.bindWhole != "" {
		v, ok := substitutions[p.bindWhole]
		if !ok {
			return nil, errs.ErrUnsupportedPattern.New(fmt.Sprintf("no substitution bound for %q", p.bindWhole))
		}
		return v, nil
	}

	children := n.Children()
	next := make([]ir.Child, len(children))
	copy(next, children)
	for i, c := range children {
		fp, ok := p.fields[c.Name]
		if !ok {
			continue
		}
		switch fp.kind {
		case fieldWildcard:
			continue
		case fieldBind:
			v, ok := substitutions[fp.bindAs]
			if !ok {
				return nil, errs.ErrUnsupportedPattern.New(fmt.Sprintf("no substitution bound for %q", fp.bindAs))
			}
			next[i] = ir.Child{Name: c.Name, Node: v}
		case fieldSub:
			newChild, err := Substitute(fp.nested, c.Node, substitutions)
			if err != nil {
				return nil, err
			}
			next[i] = ir.Child{Name: c.Name, Node: newChild}
		}
	}
	return n.WithChildren(next)
}
