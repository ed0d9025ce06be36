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

// Package diag is the verbose-tracing half of the framework's
// diagnostics (spec §6's "verbose" setting). It wraps a *logrus.Entry
// the same shape auth/audit.go wraps one — a handful of contextual
// fields attached once, reused across log lines — rather than building a
// bespoke tracing type.
package diag

import (
	"github.com/sirupsen/logrus"

	"github.com/irpass-dev/irpass/ir"
)

var log = logrus.WithField("component", "irpass")

// Trace emits one structured log line for a pass transitioning through
// phase ("running", "completed", "failed"), when enabled is true. Kept
// as a free function, not a method on Context, so ir/pass's Run can call
// it without ir/diag depending on passcore (which would cycle back
// through ir/walk's own dependency on passcore).
func Trace(enabled bool, label, phase string, n ir.Node) {
	if !enabled {
		return
	}
	entry := log.WithFields(logrus.Fields{
		"pass":  label,
		"phase": phase,
	})
	if n != nil {
		entry = entry.WithField("kind", n.Kind())
	}
	entry.Debug("pass " + phase)
}

// Cascade reports, given a pass's own desired verbose state and the
// labels of its children, which children should inherit that state
// (spec's cascade/exclude semantics, grounded on
// original_source/tests/test_verbose.py): every child not named in
// exclude.
func Cascade(childLabels []string, exclude []string) []string {
	if len(exclude) == 0 {
		return childLabels
	}
	skip := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		skip[e] = true
	}
	out := make([]string, 0, len(childLabels))
	for _, l := range childLabels {
		if !skip[l] {
			out = append(out, l)
		}
	}
	return out
}
