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

package walkorder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irpass-dev/irpass/ir/walkorder"
)

func TestOrderStringNames(t *testing.T) {
	require := require.New(t)

	require.Equal("Pre", walkorder.Pre.String())
	require.Equal("Post", walkorder.Post.String())
	require.Equal("Level", walkorder.Level.String())
	require.Equal("In", walkorder.In.String())
	require.Equal("Order(?)", walkorder.Order(99).String())
}
