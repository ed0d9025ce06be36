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

// Package analysiscache holds the named, invalidatable store of analysis
// results a composed pass tree shares (spec §4.5). It is grounded on
// original_source/src/oqd_compiler_infrastructure/analysis.py's
// AnalysisCache/AnalysisResult, with history kept exactly the way that
// module keeps it: append-only, with invalidate marking prior valid
// entries of the same name stale rather than removing them.
package analysiscache

import (
	"sync"

	"github.com/google/uuid"

	"github.com/irpass-dev/irpass/ir/metrics"
)

// Result is one historical analysis outcome. Name identifies which
// analysis rule produced it (by convention, the rule's own kind name);
// Valid is false once a newer result of the same Name has been recorded;
// Data is the rule's accumulated facts; ID disambiguates entries whose
// Data happens to compare equal.
type Result struct {
	ID    string
	Name  string
	Valid bool
	Data  map[string]any
}

// Cache is an ordered, append-only log of Results, safe to share across
// goroutines at an embedding application's boundary even though a single
// pass.Run invocation only ever touches it from one goroutine (spec §5).
type Cache struct {
	mu      sync.Mutex
	history []Result
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{}
}

// Index returns every entry (valid or stale) recorded under name, oldest
// first.
func (c *Cache) Index(name string) []Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []Result
	for _, r := range c.history {
		if r.Name == name {
			out = append(out, r)
		}
	}
	return out
}

// Valid returns the single currently-valid entry for name, if any.
func (c *Cache) Valid(name string) (Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := len(c.history) - 1; i >= 0; i-- {
		if c.history[i].Name == name && c.history[i].Valid {
			return c.history[i], true
		}
	}
	return Result{}, false
}

// Append records a new entry as-is, without touching prior history. Most
// callers want Record, which also invalidates superseded entries.
func (c *Cache) Append(r Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = append(c.history, r)
	metrics.CacheMutations.WithLabelValues(r.Name, "append").Inc()
}

// Invalidate marks every currently-valid entry named name as stale.
// Already-stale entries are untouched.
func (c *Cache) Invalidate(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.history {
		if c.history[i].Name == name && c.history[i].Valid {
			c.history[i].Valid = false
			metrics.CacheMutations.WithLabelValues(name, "invalidate").Inc()
		}
	}
}

// Record invalidates any existing valid entry named name and appends a
// fresh valid entry carrying data. This is what a Walker calls whenever
// it finishes running an AnalysisRule, whether that run was the
// top-level pass or the automatic satisfaction of a Requirement (spec
// §4.5, scenario 4 in spec §8: the first run's entry goes stale the
// moment a second run of the same analysis completes).
func (c *Cache) Record(name string, data map[string]any) Result {
	c.Invalidate(name)
	r := Result{ID: uuid.NewString(), Name: name, Valid: true, Data: data}
	c.Append(r)
	return r
}

// History returns every entry ever recorded, oldest first. Intended for
// tests and diagnostics; callers must not mutate the returned slice.
func (c *Cache) History() []Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Result, len(c.history))
	copy(out, c.history)
	return out
}
