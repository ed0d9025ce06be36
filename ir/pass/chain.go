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

package pass

import (
	"fmt"

	"github.com/irpass-dev/irpass/ir"
	"github.com/irpass-dev/irpass/ir/errs"
	"github.com/irpass-dev/irpass/ir/passcore"
)

// chainPass applies its wrapped passes in sequence, feeding each one's
// output into the next (rewriter.py's Chain.map).
type chainPass struct {
	passes []passcore.Pass
}

// Chain returns a Pass that runs passes in order, threading the tree
// through each in turn.
func Chain(passes ...passcore.Pass) passcore.Pass {
	return &chainPass{passes: passes}
}

func (c *chainPass) Label() string { return "Chain" }

func (c *chainPass) Children() []passcore.Pass { return c.passes }

func (c *chainPass) SetVerbose(state bool, cascade bool, exclude ...string) {
	if !cascade {
		return
	}
	for _, p := range c.passes {
		if !excluded(p.Label(), exclude) {
			p.SetVerbose(state, cascade, exclude...)
		}
	}
}

func (c *chainPass) Clone() passcore.Pass {
	cloned := make([]passcore.Pass, len(c.passes))
	for i, p := range c.passes {
		cloned[i] = p.Clone()
	}
	return &chainPass{passes: cloned}
}

// Invoke requires every wrapped pass except the last to produce an
// ir.Node (a RewriteRule or AnalysisRule walker, which returns the tree
// unchanged, or a combinator over one): a ConversionRule walker that
// folds the tree into a non-Node value has no well-defined "next pass's
// input", so such an output anywhere but last is a composition error,
// surfaced as ErrUnsupportedPattern rather than silently discarding the
// rest of the chain.
func (c *chainPass) Invoke(ctx *passcore.Context, n ir.Node) (any, error) {
	cur := n
	var last any = n
	for i, p := range c.passes {
		out, err := p.Invoke(ctx, cur)
		if err != nil {
			return nil, err
		}
		last = out
		if i < len(c.passes)-1 {
			next, ok := out.(ir.Node)
			if !ok {
				return nil, errs.ErrUnsupportedPattern.New(fmt.Sprintf(
					"Chain pass %d (%s) did not produce an ir.Node but is not last in the chain", i, p.Label()))
			}
			cur = next
		}
	}
	return last, nil
}

func excluded(label string, exclude []string) bool {
	for _, e := range exclude {
		if e == label {
			return true
		}
	}
	return false
}
