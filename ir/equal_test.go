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

package ir_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irpass-dev/irpass/ir"
)

func TestEqualNil(t *testing.T) {
	require := require.New(t)

	require.True(ir.Equal(nil, nil))
	require.False(ir.Equal(nil, ir.NewAtomic(1)))
	require.False(ir.Equal(ir.NewAtomic(1), nil))
}

func TestEqualAtomics(t *testing.T) {
	require := require.New(t)

	require.True(ir.Equal(ir.NewAtomic(1), ir.NewAtomic(1)))
	require.False(ir.Equal(ir.NewAtomic(1), ir.NewAtomic(2)))
}

func TestEqualSequenceIsOrderSensitive(t *testing.T) {
	require := require.New(t)

	a := ir.NewSequence(ir.NewAtomic(1), ir.NewAtomic(2))
	b := ir.NewSequence(ir.NewAtomic(2), ir.NewAtomic(1))
	require.False(ir.Equal(a, b))
	require.True(ir.Equal(a, ir.NewSequence(ir.NewAtomic(1), ir.NewAtomic(2))))
}

func TestEqualTupleIsOrderSensitive(t *testing.T) {
	require := require.New(t)

	a := ir.NewTuple(ir.NewAtomic(1), ir.NewAtomic(2))
	b := ir.NewTuple(ir.NewAtomic(2), ir.NewAtomic(1))
	require.False(ir.Equal(a, b))
}

func TestEqualSequenceVsTupleDifferByKind(t *testing.T) {
	require := require.New(t)

	seq := ir.NewSequence(ir.NewAtomic(1))
	tup := ir.NewTuple(ir.NewAtomic(1))
	require.False(ir.Equal(seq, tup))
}

func TestEqualMappingIsKeySetSensitiveNotOrderSensitive(t *testing.T) {
	require := require.New(t)

	a := ir.NewMapping().Set("x", ir.NewAtomic(1)).Set("y", ir.NewAtomic(2))
	b := ir.NewMapping().Set("y", ir.NewAtomic(2)).Set("x", ir.NewAtomic(1))
	require.True(ir.Equal(a, b))

	c := ir.NewMapping().Set("x", ir.NewAtomic(1))
	require.False(ir.Equal(a, c))

	d := ir.NewMapping().Set("x", ir.NewAtomic(1)).Set("z", ir.NewAtomic(2))
	require.False(ir.Equal(a, d))
}

func TestEqualDeepNesting(t *testing.T) {
	require := require.New(t)

	a := ir.NewSequence(ir.NewTuple(ir.NewAtomic(1), ir.NewAtomic("x")), ir.NewAtomic(true))
	b := ir.NewSequence(ir.NewTuple(ir.NewAtomic(1), ir.NewAtomic("x")), ir.NewAtomic(true))
	c := ir.NewSequence(ir.NewTuple(ir.NewAtomic(1), ir.NewAtomic("y")), ir.NewAtomic(true))

	require.True(ir.Equal(a, b))
	require.False(ir.Equal(a, c))
}
