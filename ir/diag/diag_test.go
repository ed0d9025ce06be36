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

package diag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irpass-dev/irpass/ir"
	"github.com/irpass-dev/irpass/ir/diag"
)

func TestCascadeExcludesNamedLabels(t *testing.T) {
	require := require.New(t)

	out := diag.Cascade([]string{"Chain", "FixedPoint", "Filter"}, []string{"FixedPoint"})
	require.Equal([]string{"Chain", "Filter"}, out)
}

func TestCascadeWithNoExclusionsReturnsAllLabels(t *testing.T) {
	require := require.New(t)

	out := diag.Cascade([]string{"Chain", "Filter"}, nil)
	require.Equal([]string{"Chain", "Filter"}, out)
}

func TestTraceIsANoOpWhenDisabled(t *testing.T) {
	require := require.New(t)

	// Trace must not panic, even on a nil node, when tracing is off.
	require.NotPanics(func() {
		diag.Trace(false, "Walker", "running", nil)
	})
}

func TestTraceDoesNotPanicWhenEnabled(t *testing.T) {
	require := require.New(t)

	require.NotPanics(func() {
		diag.Trace(true, "Walker", "running", ir.NewAtomic(1))
		diag.Trace(true, "Walker", "completed", nil)
	})
}
