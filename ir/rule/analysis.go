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

import "github.com/irpass-dev/irpass/ir"

// Accumulator is the per-invocation scratch space an AnalysisRule writes
// facts into while the walker visits each node. It is created fresh by
// the walker for every Invoke call rather than held as rule-instance
// state (design note §9(iii)): a fresh Accumulator per run is what makes
// re-running the same *rule value across FixedPoint iterations safe
// without cloning the rule itself.
type Accumulator struct {
	data map[string]any
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{data: map[string]any{}}
}

// Set records or overwrites a fact.
func (a *Accumulator) Set(key string, value any) { a.data[key] = value }

// Get returns a previously recorded fact and whether it was present.
func (a *Accumulator) Get(key string) (any, bool) {
	v, ok := a.data[key]
	return v, ok
}

// Incr adds delta to the int stored at key (treating an absent key as
// zero), the common case of CountTerms-style tallying rules (spec §8).
func (a *Accumulator) Incr(key string, delta int) {
	cur, _ := a.data[key].(int)
	a.data[key] = cur + delta
}

// Snapshot returns a defensive copy of the accumulated facts, suitable
// for handing to analysiscache.Cache.Record.
func (a *Accumulator) Snapshot() map[string]any {
	out := make(map[string]any, len(a.data))
	for k, v := range a.data {
		out[k] = v
	}
	return out
}

// AnalysisFunc observes one node, recording whatever facts it finds into
// acc. Unlike RewriteFunc/ConversionFunc it returns no value — an
// analysis never changes the tree, it only accumulates.
type AnalysisFunc func(acc *Accumulator, n ir.Node) error

// AnalysisRule walks a tree read-only, accumulating facts under a fixed
// Kind() name that other rules reference via Requirement and that the
// analysiscache.Cache indexes results by.
type AnalysisRule interface {
	Rule
	Kind() string
	Analyze(acc *Accumulator, n ir.Node) error
}

// AnalysisBase is the embeddable dispatch table backing a concrete
// AnalysisRule. Go has no equivalent of reflecting the class name as the
// analysis's cache key, so the name is supplied explicitly at
// construction instead.
type AnalysisBase struct {
	requirementsInvalidates
	name     string
	dispatch *Dispatch[AnalysisFunc]
}

// NewAnalysisBase returns an empty, ready-to-register AnalysisBase whose
// Kind() is name.
func NewAnalysisBase(name string) AnalysisBase {
	return AnalysisBase{name: name, dispatch: NewDispatch[AnalysisFunc]()}
}

// Kind returns the name this analysis's results are recorded and looked
// up under.
func (b *AnalysisBase) Kind() string { return b.name }

// On registers fn as the handler for kind.
func (b *AnalysisBase) On(kind ir.Kind, fn AnalysisFunc) { b.dispatch.On(kind, fn) }

// Generic registers the fallback handler used when no kind in the node's
// chain has a registered handler.
func (b *AnalysisBase) Generic(fn AnalysisFunc) { b.dispatch.Generic(fn) }

// Analyze dispatches on n's kind chain. A node kind with neither a
// specific nor a generic handler is simply skipped — most analyses only
// care about a handful of kinds and are silent on the rest.
func (b *AnalysisBase) Analyze(acc *Accumulator, n ir.Node) error {
	fn, ok := b.dispatch.Lookup(n.KindChain())
	if !ok {
		return nil
	}
	return fn(acc, n)
}

var _ AnalysisRule = (*AnalysisBase)(nil)
