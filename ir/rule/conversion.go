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

import (
	"github.com/irpass-dev/irpass/ir"
)

// ConversionFunc reduces a node to some foreign value given its already-
// reduced children (spec §4.2's "bottom-up fold"). The result need not be
// an ir.Node at all — a ConversionRule that evaluates an expression tree
// to a number returns plain floats all the way up.
type ConversionFunc func(ir.Node, Operands) (any, error)

// ConversionRule folds a tree bottom-up into a single foreign value,
// unlike RewriteRule which produces another tree of the same shape.
type ConversionRule interface {
	Rule
	Convert(ir.Node, Operands) (any, error)
}

// ConversionBase is the embeddable dispatch table backing a concrete
// ConversionRule, structured exactly like RewriteBase.
type ConversionBase struct {
	requirementsInvalidates
	dispatch *Dispatch[ConversionFunc]
}

// NewConversionBase returns an empty, ready-to-register ConversionBase.
func NewConversionBase() ConversionBase {
	return ConversionBase{dispatch: NewDispatch[ConversionFunc]()}
}

// On registers fn as the handler for kind.
func (b *ConversionBase) On(kind ir.Kind, fn ConversionFunc) { b.dispatch.On(kind, fn) }

// Generic registers the fallback handler used when no kind in the node's
// chain has a registered handler.
func (b *ConversionBase) Generic(fn ConversionFunc) { b.dispatch.Generic(fn) }

// Convert dispatches on n's kind chain. A node with no matching handler
// and no generic fallback is passed through unchanged (spec §7, item 4:
// this is not an error) — the common case being a conversion rule that
// only cares about a handful of record kinds and lets containers or
// atomics it never registered a handler for flow through as an operand
// untouched.
func (b *ConversionBase) Convert(n ir.Node, ops Operands) (any, error) {
	fn, ok := b.dispatch.Lookup(n.KindChain())
	if !ok {
		return n, nil
	}
	return fn(n, ops)
}

var _ ConversionRule = (*ConversionBase)(nil)
