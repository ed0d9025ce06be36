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

package walk_test

// A tiny two-kind arithmetic model (myInt, myAdd), mirroring
// original_source/tests/examples/walk_example.py's Number/BinaryOp pair,
// used by every scenario in this package's test file.

import (
	"github.com/irpass-dev/irpass/ir"
	"github.com/irpass-dev/irpass/ir/record"
)

const (
	kindMyInt    ir.Kind = "MyInt"
	kindMyAdd    ir.Kind = "MyAdd"
	kindMyTriple ir.Kind = "MyTriple"
)

var (
	myIntSchema    = record.Define(kindMyInt, nil, "x")
	myAddSchema    = record.Define(kindMyAdd, nil, "left", "right")
	myTripleSchema = record.Define(kindMyTriple, nil, "a", "b", "c")
)

type myInt struct{ record.Base }

func newMyInt(x int) myInt {
	return myInt{record.NewBase(myIntSchema, ir.NewAtomic(x))}
}

func (n myInt) WithChildren(children []ir.Child) (ir.Node, error) {
	b, err := n.Base.Rebuild(children)
	if err != nil {
		return nil, err
	}
	return myInt{b}, nil
}

func (n myInt) X() int {
	return n.Field("x").(ir.Atomic).Value.(int)
}

type myAdd struct{ record.Base }

func newMyAdd(left, right ir.Node) myAdd {
	return myAdd{record.NewBase(myAddSchema, left, right)}
}

func (n myAdd) WithChildren(children []ir.Child) (ir.Node, error) {
	b, err := n.Base.Rebuild(children)
	if err != nil {
		return nil, err
	}
	return myAdd{b}, nil
}

// myTriple is a fixed three-field record, the analogue of the original
// implementation's odd-arity ["d", "e", "f"] list fixture
// (original_source/tests/test_walk.py's TestInWalk.test_in_nested_list),
// used to pin the In walker's odd-arity convention.
type myTriple struct{ record.Base }

func newMyTriple(a, b, c ir.Node) myTriple {
	return myTriple{record.NewBase(myTripleSchema, a, b, c)}
}

func (n myTriple) WithChildren(children []ir.Child) (ir.Node, error) {
	b, err := n.Base.Rebuild(children)
	if err != nil {
		return nil, err
	}
	return myTriple{b}, nil
}

var (
	_ ir.Node = myInt{}
	_ ir.Node = myAdd{}
	_ ir.Node = myTriple{}
)
