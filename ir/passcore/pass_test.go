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

package passcore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irpass-dev/irpass/ir/analysiscache"
	"github.com/irpass-dev/irpass/ir/passcore"
)

func TestNewContextStartsWithFreshEmptyCache(t *testing.T) {
	require := require.New(t)

	ctx := passcore.NewContext()
	require.NotNil(ctx.Cache)
	require.Empty(ctx.Cache.History())
	require.False(ctx.Verbose)
}

func TestWithCacheSharesGivenCacheInstance(t *testing.T) {
	require := require.New(t)

	cache := analysiscache.New()
	cache.Record("A", map[string]any{"n": 1})

	ctx := passcore.WithCache(cache, true)
	require.Same(cache, ctx.Cache)
	require.True(ctx.Verbose)
	require.Len(ctx.Cache.History(), 1)
}
