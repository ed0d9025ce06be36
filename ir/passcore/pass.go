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

// Package passcore declares the Pass interface that every walker and
// combinator in this module implements, plus the Context a single
// pass.Run invocation threads through the whole tree.
//
// Context replaces the Python implementation's mutable
// analysis_cache-setter propagation (design note §9(iv)): rather than
// assigning a cache onto each rule/pass and relying on that assignment
// having already cascaded to every child, every Invoke call receives the
// Context explicitly, so cache-pointer identity is structural rather
// than order-of-assignment dependent.
package passcore

import (
	"github.com/irpass-dev/irpass/ir"
	"github.com/irpass-dev/irpass/ir/analysiscache"
)

// Context carries the state shared by every Pass participating in one
// pass.Run call: the analysis cache results are recorded into and looked
// up from, and whether verbose diagnostic tracing is enabled.
type Context struct {
	Cache   *analysiscache.Cache
	Verbose bool
}

// NewContext returns a Context with a fresh cache.
func NewContext() *Context {
	return &Context{Cache: analysiscache.New()}
}

// WithCache returns a Context sharing the given cache, the mechanism a
// Requirement's sub-walker uses to read and record into the same cache
// as its parent walker (spec §4.5).
func WithCache(cache *analysiscache.Cache, verbose bool) *Context {
	return &Context{Cache: cache, Verbose: verbose}
}

// Pass is anything pass.Run can drive: a single Walker wrapping one
// Rule, or a combinator (Chain, FixedPoint, Filter, Match) composed from
// other Passes.
type Pass interface {
	// Invoke runs this pass once over n using ctx's shared cache, and
	// returns the resulting value: another ir.Node for a RewriteRule
	// walker or a combinator over one, the folded foreign value for a
	// ConversionRule walker, or n itself, unchanged, for a bare
	// AnalysisRule walker (an analysis never replaces the tree).
	Invoke(ctx *Context, n ir.Node) (any, error)

	// Children lists the sub-passes this pass is built from, for
	// diagnostics and for SetVerbose cascading (spec §6's verbose
	// cascade). A leaf Walker returns nil.
	Children() []Pass

	// SetVerbose forwards a verbose state through the pass tree: when
	// cascade is true the call is passed on to the wrapped pass(es),
	// except those whose label appears in exclude. No pass in this module
	// stores the state, so it does not change what is traced; tracing is
	// turned on through Context.Verbose, which pass.Run reads.
	SetVerbose(state bool, cascade bool, exclude ...string)

	// Clone returns a Pass that behaves identically to this one but can
	// be safely re-invoked independently — the mechanism FixedPoint uses
	// to keep one Walker per iteration in its Children() list without
	// needing the underlying Rule to support cloning itself (the
	// accumulator/requirement state that would need cloning already lives
	// per-invocation, not on the Rule — design note §9(iii)).
	Clone() Pass

	// Label names this pass for diagnostics (a rule's type name, or a
	// combinator's own description).
	Label() string
}
