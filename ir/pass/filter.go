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

// Predicate decides whether Filter should run its wrapped pass at all.
type Predicate func(ir.Node) bool

// filterPass runs its wrapped pass only when predicate(n) holds,
// otherwise returning n unchanged (rewriter.py's Filter.filter).
type filterPass struct {
	predicate Predicate
	base      passcore.Pass
	reuse     bool
	copies    []passcore.Pass
}

// Filter returns a Pass that runs p over n only when predicate(n) is
// true, passing n through unchanged otherwise. reuse has the same
// meaning as FixedPoint's: when false, every run gets its own clone of p
// recorded in Children().
func Filter(predicate Predicate, p passcore.Pass, reuse bool) passcore.Pass {
	return &filterPass{predicate: predicate, base: p, reuse: reuse}
}

func (f *filterPass) Label() string { return "Filter" }

func (f *filterPass) Children() []passcore.Pass {
	if f.reuse {
		return []passcore.Pass{f.base}
	}
	return f.copies
}

func (f *filterPass) SetVerbose(state bool, cascade bool, exclude ...string) {
	if cascade && !excluded(f.base.Label(), exclude) {
		f.base.SetVerbose(state, cascade, exclude...)
	}
}

func (f *filterPass) Clone() passcore.Pass {
	return &filterPass{predicate: f.predicate, base: f.base.Clone(), reuse: f.reuse}
}

func (f *filterPass) Invoke(ctx *passcore.Context, n ir.Node) (any, error) {
	if !f.predicate(n) {
		return n, nil
	}
	r := f.base
	if !f.reuse {
		r = f.base.Clone()
		f.copies = append(f.copies, r)
	}
	return r.Invoke(ctx, n)
}
