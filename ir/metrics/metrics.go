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

// Package metrics exposes the framework's Prometheus counters (spec
// §4.7): how often each labeled pass ran, and how often the analysis
// cache was mutated. Registered against the default registry, the same
// way the teacher's (indirect) client_golang dependency is normally
// wired by an embedding service's own /metrics handler.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PassInvocations counts pass.Run invocations, labeled by the
	// invoked pass's Label().
	PassInvocations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "irpass",
		Name:      "pass_invocations_total",
		Help:      "Total number of times a pass was invoked via pass.Run.",
	}, []string{"pass"})

	// CacheMutations counts analysis cache mutations, labeled by the
	// analysis name and the operation: "append" once per appended entry
	// (Record appends too), "invalidate" once per entry marked stale.
	CacheMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "irpass",
		Name:      "cache_mutations_total",
		Help:      "Total number of analysis cache record/invalidate operations.",
	}, []string{"analysis", "op"})
)
