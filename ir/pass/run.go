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

// Package pass is the entry point (Run) and the four pass combinators
// (Chain, FixedPoint, Filter, Match) composing ir/walk Walkers and each
// other into larger passes, all built on the shared passcore.Pass
// interface so a combinator never needs to know whether the passes it
// wraps are leaf Walkers or combinators themselves.
//
// Grounded on original_source/src/oqd_compiler_infrastructure/rewriter.py
// (Chain, FixedPoint, Filter) and match.py (Match), with the opentracing
// and prometheus instrumentation ir/metrics/ir/diag add at this layer
// rather than inside ir/walk, since Run is the one place every pass
// invocation — leaf or combinator — necessarily passes through.
package pass

import (
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"github.com/irpass-dev/irpass/ir"
	"github.com/irpass-dev/irpass/ir/diag"
	"github.com/irpass-dev/irpass/ir/metrics"
	"github.com/irpass-dev/irpass/ir/passcore"
)

// Run drives p over n once, creating a fresh Context (and so a fresh
// analysis cache) if ctx is nil. It is the one external entry point the
// combinators and diagnostics in this package assume every invocation
// passes through.
func Run(p passcore.Pass, n ir.Node, ctx ...*passcore.Context) (any, error) {
	var c *passcore.Context
	if len(ctx) > 0 && ctx[0] != nil {
		c = ctx[0]
	} else {
		c = passcore.NewContext()
	}

	span := opentracing.StartSpan("pass.Run")
	span.SetTag("pass.label", p.Label())
	defer span.Finish()

	metrics.PassInvocations.WithLabelValues(p.Label()).Inc()
	diag.Trace(c.Verbose, p.Label(), "running", n)

	out, err := p.Invoke(c, n)
	if err != nil {
		span.SetTag("error", true)
		diag.Trace(c.Verbose, p.Label(), "failed", n)
		return nil, errors.Wrapf(err, "pass %s", p.Label())
	}
	diag.Trace(c.Verbose, p.Label(), "completed", n)
	return out, nil
}
