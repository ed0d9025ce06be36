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
	"github.com/irpass-dev/irpass/ir"
	"github.com/irpass-dev/irpass/ir/passcore"
)

const defaultMaxIter = 1000

// fixedPointPass re-runs its wrapped pass until the tree stops changing
// (ir.Equal reports no structural difference) or MaxIter is reached
// (rewriter.py's FixedPoint.map).
type fixedPointPass struct {
	base    passcore.Pass
	reuse   bool
	maxIter int
	copies  []passcore.Pass
}

// FixedPoint returns a Pass that re-applies p until it converges or
// maxIter iterations have run. When reuse is false (the default every
// iteration gets its own passcore.Pass.Clone() of p, so Children()
// exposes one entry per iteration actually run; when reuse is true the
// same p instance is reused every iteration and Children() always
// reports exactly [p].
func FixedPoint(p passcore.Pass, maxIter int, reuse bool) passcore.Pass {
	if maxIter <= 0 {
		maxIter = defaultMaxIter
	}
	return &fixedPointPass{base: p, maxIter: maxIter, reuse: reuse}
}

func (f *fixedPointPass) Label() string { return "FixedPoint" }

func (f *fixedPointPass) Children() []passcore.Pass {
	if f.reuse {
		return []passcore.Pass{f.base}
	}
	return f.copies
}

func (f *fixedPointPass) SetVerbose(state bool, cascade bool, exclude ...string) {
	if cascade && !excluded(f.base.Label(), exclude) {
		f.base.SetVerbose(state, cascade, exclude...)
	}
}

func (f *fixedPointPass) Clone() passcore.Pass {
	return &fixedPointPass{base: f.base.Clone(), maxIter: f.maxIter, reuse: f.reuse}
}

func (f *fixedPointPass) nextRule() passcore.Pass {
	if f.reuse {
		return f.base
	}
	c := f.base.Clone()
	f.copies = append(f.copies, c)
	return c
}

func (f *fixedPointPass) Invoke(ctx *passcore.Context, n ir.Node) (any, error) {
	cur := n
	for i := 0; i < f.maxIter; i++ {
		r := f.nextRule()
		out, err := r.Invoke(ctx, cur)
		if err != nil {
			return nil, err
		}
		next, ok := out.(ir.Node)
		if !ok {
			// A ConversionRule/AnalysisRule walker never changes the
			// tree across iterations by construction, so the first
			// iteration is already the fixed point.
			return out, nil
		}
		if ir.Equal(cur, next) {
			return cur, nil
		}
		cur = next
	}
	return cur, nil
}
