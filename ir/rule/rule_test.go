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

package rule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irpass-dev/irpass/ir"
	"github.com/irpass-dev/irpass/ir/rule"
)

const (
	kindShape     ir.Kind = "Shape"
	kindRectangle ir.Kind = "Rectangle"
	kindSquare    ir.Kind = "Square"
)

// squareChain mimics tests/examples/dispatch_example.py: Square has no
// handler of its own, so dispatch must fall back to whatever Rectangle
// registered.
var squareChain = []ir.Kind{kindSquare, kindRectangle, kindShape}

func TestDispatchFallsBackThroughKindChain(t *testing.T) {
	require := require.New(t)

	d := rule.NewDispatch[string]()
	d.On(kindRectangle, "handled-as-rectangle")

	fn, ok := d.Lookup(squareChain)
	require.True(ok)
	require.Equal("handled-as-rectangle", fn)
}

func TestDispatchPrefersMostSpecificHandler(t *testing.T) {
	require := require.New(t)

	d := rule.NewDispatch[string]()
	d.On(kindRectangle, "rectangle-handler")
	d.On(kindSquare, "square-handler")

	fn, ok := d.Lookup(squareChain)
	require.True(ok)
	require.Equal("square-handler", fn)
}

func TestDispatchFallsBackToGeneric(t *testing.T) {
	require := require.New(t)

	d := rule.NewDispatch[string]()
	d.Generic("generic-handler")

	fn, ok := d.Lookup(squareChain)
	require.True(ok)
	require.Equal("generic-handler", fn)
}

func TestDispatchNoHandlerReportsFalse(t *testing.T) {
	require := require.New(t)

	d := rule.NewDispatch[string]()
	_, ok := d.Lookup(squareChain)
	require.False(ok)
}

func TestRewriteBaseUnhandledKindReturnsNodeUnchanged(t *testing.T) {
	require := require.New(t)

	rw := rule.NewRewriteBase()
	n := ir.NewAtomic(5)
	out, err := rw.Rewrite(n)
	require.NoError(err)
	require.Equal(n, out)
}

func TestRewriteBaseHandlerReturningNilKeepsNode(t *testing.T) {
	require := require.New(t)

	rw := rule.NewRewriteBase()
	rw.On(ir.KindInt, func(n ir.Node) (ir.Node, error) { return nil, nil })
	n := ir.NewAtomic(5)
	out, err := rw.Rewrite(n)
	require.NoError(err)
	require.Equal(n, out)
}

func TestRewriteBaseHandlerReplacesNode(t *testing.T) {
	require := require.New(t)

	rw := rule.NewRewriteBase()
	rw.On(ir.KindInt, func(n ir.Node) (ir.Node, error) { return ir.NewAtomic(99), nil })
	out, err := rw.Rewrite(ir.NewAtomic(5))
	require.NoError(err)
	require.Equal(ir.NewAtomic(99), out)
}

func TestConversionBaseUnhandledKindReturnsNodeUnchanged(t *testing.T) {
	require := require.New(t)

	cv := rule.NewConversionBase()
	n := ir.NewAtomic(5)
	out, err := cv.Convert(n, rule.NewOperands(nil, nil))
	require.NoError(err)
	require.Equal(n, out)
}

func TestAnalysisBaseUnhandledKindIsNotAnError(t *testing.T) {
	require := require.New(t)

	an := rule.NewAnalysisBase("Noop")
	acc := rule.NewAccumulator()
	require.NoError(an.Analyze(acc, ir.NewAtomic(5)))
	require.Empty(acc.Snapshot())
}

func TestAccumulatorIncrAndSnapshot(t *testing.T) {
	require := require.New(t)

	acc := rule.NewAccumulator()
	acc.Incr("count", 1)
	acc.Incr("count", 2)
	acc.Set("label", "x")

	snap := acc.Snapshot()
	require.Equal(3, snap["count"])
	require.Equal("x", snap["label"])

	// Snapshot is a defensive copy: mutating it must not affect the
	// accumulator's own state.
	snap["count"] = 999
	v, _ := acc.Get("count")
	require.Equal(3, v)
}

func TestOperandsAccessorsAndCoercion(t *testing.T) {
	require := require.New(t)

	ops := rule.NewOperands([]string{"left", "right"}, []any{"3", 4})
	require.Equal(2, ops.Len())
	require.Equal([]string{"left", "right"}, ops.Names())

	left, err := ops.Int("left")
	require.NoError(err)
	require.Equal(3, left)

	require.Equal(4, ops.At(1))
	require.Nil(ops.At(5))
	require.Nil(ops.At(-1))
}

func TestRequirementsAndInvalidatesRoundTrip(t *testing.T) {
	require := require.New(t)

	rw := rule.NewRewriteBase()
	require.Empty(rw.Requirements())
	require.Empty(rw.Invalidates())

	factory := func() rule.AnalysisRule {
		a := rule.NewAnalysisBase("CountTerms")
		return &a
	}
	rw.WithRequirements(rule.Require("CountTerms", factory))
	rw.WithInvalidates("CountTerms")

	reqs := rw.Requirements()
	require.Len(reqs, 1)
	require.Equal("CountTerms", reqs[0].Name)
	require.Equal("CountTerms", reqs[0].Factory().Kind())
	require.Equal([]string{"CountTerms"}, rw.Invalidates())
}
