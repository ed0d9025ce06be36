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

// RewriteFunc handles one node kind for a RewriteRule. Returning nil, nil
// tells the walker to keep the node unchanged (the Go equivalent of the
// Python handler returning None).
type RewriteFunc func(ir.Node) (ir.Node, error)

// RewriteRule replaces nodes one at a time; the walker is responsible for
// recursing into children and rebuilding the parent from the (possibly
// replaced) results.
type RewriteRule interface {
	Rule
	Rewrite(ir.Node) (ir.Node, error)
}

// RewriteBase is the embeddable dispatch table backing a concrete
// RewriteRule. Embed it, call On/Generic from the constructor to
// register per-kind handlers, and the embedding type satisfies
// RewriteRule without writing a Rewrite method of its own.
type RewriteBase struct {
	requirementsInvalidates
	dispatch *Dispatch[RewriteFunc]
}

// NewRewriteBase returns an empty, ready-to-register RewriteBase.
func NewRewriteBase() RewriteBase {
	return RewriteBase{dispatch: NewDispatch[RewriteFunc]()}
}

// On registers fn as the handler for kind.
func (b *RewriteBase) On(kind ir.Kind, fn RewriteFunc) { b.dispatch.On(kind, fn) }

// Generic registers the fallback handler used when no kind in the node's
// chain has a registered handler.
func (b *RewriteBase) Generic(fn RewriteFunc) { b.dispatch.Generic(fn) }

// Rewrite dispatches on n's kind chain. Absent any matching handler and
// no generic fallback, it returns n unchanged (spec §7, item 4: this is
// not an error).
func (b *RewriteBase) Rewrite(n ir.Node) (ir.Node, error) {
	fn, ok := b.dispatch.Lookup(n.KindChain())
	if !ok {
		return n, nil
	}
	out, err := fn(n)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return n, nil
	}
	return out, nil
}

var _ RewriteRule = (*RewriteBase)(nil)
