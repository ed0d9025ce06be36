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

// Package walkorder names the four traversal orders a Walker can use
// (spec §4.3). It is split out from package walk so that package rule
// can name a default order for an analysis Requirement without importing
// the walker implementation itself.
package walkorder

// Order selects one of the four canonical traversal strategies.
type Order int

const (
	// Pre visits a node before recursing into its children.
	Pre Order = iota
	// Post recurses into children before visiting the node.
	Post
	// Level visits breadth-first: the root, then all depth-1 children,
	// then all depth-2 children, and so on.
	Level
	// In interleaves children with the parent visit: the first half of
	// children are recursed into, then the parent is visited, then the
	// remaining children are recursed into.
	In
)

func (o Order) String() string {
	switch o {
	case Pre:
		return "Pre"
	case Post:
		return "Post"
	case Level:
		return "Level"
	case In:
		return "In"
	default:
		return "Order(?)"
	}
}
