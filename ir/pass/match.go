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
	"github.com/irpass-dev/irpass/ir/match"
	"github.com/irpass-dev/irpass/ir/passcore"
)

// matchPass matches a node against a structural Pattern, runs its
// wrapped pass over each bound variable, and substitutes the results
// back in (match.py's Match.match). A node that doesn't match p passes
// through unchanged.
type matchPass struct {
	pattern *match.Pattern
	base    passcore.Pass
	reuse   bool
	copies  []passcore.Pass
}

// Match returns a Pass that, for nodes matching pattern, runs p over
// every bound variable and substitutes the (possibly transformed)
// results back into the matched structure.
func Match(pattern *match.Pattern, p passcore.Pass, reuse bool) passcore.Pass {
	return &matchPass{pattern: pattern, base: p, reuse: reuse}
}

func (m *matchPass) Label() string { return "Match" }

func (m *matchPass) Children() []passcore.Pass {
	if m.reuse {
		return []passcore.Pass{m.base}
	}
	return m.copies
}

func (m *matchPass) SetVerbose(state bool, cascade bool, exclude ...string) {
	if cascade && !excluded(m.base.Label(), exclude) {
		m.base.SetVerbose(state, cascade, exclude...)
	}
}

func (m *matchPass) Clone() passcore.Pass {
	return &matchPass{pattern: m.pattern, base: m.base.Clone(), reuse: m.reuse}
}

func (m *matchPass) Invoke(ctx *passcore.Context, n ir.Node) (any, error) {
	result := match.Evaluate(m.pattern, n)
	if !result.State {
		return n, nil
	}

	subs := make(map[string]ir.Node, len(result.Variables))
	for name, v := range result.Variables {
		r := m.base
		if !m.reuse {
			r = m.base.Clone()
			m.copies = append(m.copies, r)
		}
		out, err := r.Invoke(ctx, v)
		if err != nil {
			return nil, err
		}
		transformed, ok := out.(ir.Node)
		if !ok {
			transformed = v
		}
		subs[name] = transformed
	}

	return match.Substitute(m.pattern, n, subs)
}
