// Copyright 2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hypertuple_test

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buf.build/go/hypertuple"
)

// version has only an equality method, which ignores the label.
type version struct {
	n     int
	label string
}

func (v version) Equal(w version) bool { return v.n == w.n }

// reversed has an ordering method that inverts the natural order.
type reversed int

func (r reversed) Compare(s reversed) int { return int(s) - int(r) }

// handle is equal only to handles with the same target, and has no ordering.
type handle struct{ p *int }

func (h handle) Equal(g handle) bool { return h.p == g.p }

func TestEqual(t *testing.T) {
	t.Parallel()

	x, y := 1, 1
	nan := math.NaN()
	tests := []struct {
		name  string
		a, b  *hypertuple.Tuple
		equal bool
	}{
		{"scalars", hypertuple.New(1, "a", true), hypertuple.New(1, "a", true), true},
		{"string", hypertuple.New(1, "a"), hypertuple.New(1, "b"), false},
		{"nan", hypertuple.New(nan), hypertuple.New(nan), true},
		{"zeros", hypertuple.New(0.0), hypertuple.New(math.Copysign(0, -1)), true},
		{"complex", hypertuple.New(1 + 2i), hypertuple.New(1 + 3i), false},
		{"pointees", hypertuple.New(&x), hypertuple.New(&y), true},
		{"nil-pointer", hypertuple.New((*int)(nil)), hypertuple.New(&x), false},
		{"slices", hypertuple.New([]int{1, 2}), hypertuple.New([]int{1, 2}), true},
		{"slice-len", hypertuple.New([]int{1, 2}), hypertuple.New([]int{1}), false},
		{"maps", hypertuple.New(map[string]int{"a": 1}), hypertuple.New(map[string]int{"a": 1}), true},
		{"map-keys", hypertuple.New(map[string]int{"a": 1}), hypertuple.New(map[string]int{"b": 1}), false},
		{"arrays", hypertuple.New([2]int{1, 2}), hypertuple.New([2]int{1, 3}), false},
		{"structs", hypertuple.New(struct{ A, B int }{1, 2}), hypertuple.New(struct{ A, B int }{1, 2}), true},
		{"method", hypertuple.New(version{1, "a"}), hypertuple.New(version{1, "b"}), true},
		{"interface-types", &hypertuple.New1[any](1).Tuple, &hypertuple.New1[any](int64(1)).Tuple, false},
		{"interface-nil", &hypertuple.New1[any](nil).Tuple, &hypertuple.New1[any](nil).Tuple, true},
		{"nil-func", &hypertuple.New1[func()](nil).Tuple, &hypertuple.New1[func()](nil).Tuple, true},
		{
			"time",
			hypertuple.New(time.Unix(100, 0).UTC()),
			hypertuple.New(time.Unix(100, 0).In(time.FixedZone("X", 3600))),
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.equal, tt.a.Equal(tt.b))
			assert.Equal(t, tt.equal, tt.b.Equal(tt.a))
			assert.True(t, tt.a.Equal(tt.a))
		})
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	x, y := 1, 2
	ids := []uuid.UUID{
		uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		uuid.MustParse("10000000-0000-0000-0000-000000000000"),
	}
	tests := []struct {
		name string
		a, b *hypertuple.Tuple
		want int
	}{
		{"equal", hypertuple.New(1, "a"), hypertuple.New(1, "a"), 0},
		{"first-slot", hypertuple.New(1, "b"), hypertuple.New(2, "a"), -1},
		{"second-slot", hypertuple.New(1, "b"), hypertuple.New(1, "a"), 1},
		{"bools", hypertuple.New(false), hypertuple.New(true), -1},
		{"unsigned", hypertuple.New(uint8(200)), hypertuple.New(uint8(100)), 1},
		{"nan-first", hypertuple.New(math.NaN()), hypertuple.New(math.Inf(-1)), -1},
		{"pointees", hypertuple.New(&y), hypertuple.New(&x), 1},
		{"nil-first", hypertuple.New((*int)(nil)), hypertuple.New(&x), -1},
		{"arrays", hypertuple.New([3]int{1, 2, 3}), hypertuple.New([3]int{1, 3, 0}), -1},
		{"structs", hypertuple.New(struct{ A, B int }{2, 0}), hypertuple.New(struct{ A, B int }{1, 9}), 1},
		{"slice-prefix", hypertuple.New([]int{1, 2}), hypertuple.New([]int{1, 2, 0}), -1},
		{"uuid", hypertuple.New(ids[1]), hypertuple.New(ids[0]), 1},
		{"time", hypertuple.New(time.Unix(1, 0)), hypertuple.New(time.Unix(2, 0)), -1},
		{"method", hypertuple.New(reversed(1)), hypertuple.New(reversed(2)), 1},
		{"interface", &hypertuple.New1[any](2).Tuple, &hypertuple.New1[any](1).Tuple, 1},
		{"interface-types", &hypertuple.New1[any]("a").Tuple, &hypertuple.New1[any](1).Tuple, 1},
		{"interface-nil", &hypertuple.New1[any](nil).Tuple, &hypertuple.New1[any](1).Tuple, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sign(tt.a.Compare(tt.b)))
			assert.Equal(t, -tt.want, sign(tt.b.Compare(tt.a)))
			assert.Equal(t, tt.want == 0, tt.a.Equal(tt.b))
		})
	}
}

func TestCompareOnlyOnMismatch(t *testing.T) {
	t.Parallel()

	// Maps have no ordering, but comparing tuples only orders slots that are
	// not equal.
	a := hypertuple.New(map[string]int{"a": 1}, version{1, "x"}, 1)
	b := hypertuple.New(map[string]int{"a": 1}, version{1, "y"}, 2)
	assert.Equal(t, -1, a.Compare(b))

	c := hypertuple.New(map[string]int{"a": 2}, version{1, "x"}, 1)
	assert.Contains(t,
		panicMessage(t, func() { a.Compare(c) }),
		"hypertuple: values of type map[string]int are not ordered")

	// Without a Compare method, structs are ordered field by field.
	d := hypertuple.New(map[string]int{"a": 1}, version{2, "x"}, 1)
	assert.Equal(t, -1, a.Compare(d))

	f := func() {}
	assert.Contains(t,
		panicMessage(t, func() { hypertuple.New(f).Equal(hypertuple.New(f)) }),
		"hypertuple: values of type func() are not comparable")
}

func TestCompareShapes(t *testing.T) {
	t.Parallel()

	assert.Contains(t,
		panicMessage(t, func() { hypertuple.New(1).Equal(hypertuple.New("a")) }),
		"hypertuple: Equal: mismatched shapes (int) and (string)")
	assert.Contains(t,
		panicMessage(t, func() { hypertuple.New(1).Compare(hypertuple.New(1, 2)) }),
		"hypertuple: Compare: mismatched shapes (int) and (int, int)")
}

func TestCompareLaws(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 4))
	gen := func() *hypertuple.T3[int8, string, bool] {
		return hypertuple.New3(
			int8(rng.IntN(3)),
			string(rune('a'+rng.IntN(3))),
			rng.IntN(2) == 0,
		)
	}

	for range 500 {
		a, b, c := gen(), gen(), gen()

		ab, ba := a.Compare(b), b.Compare(a)
		require.Equal(t, sign(ab), -sign(ba), "antisymmetry: %v %v", a, b)
		require.Equal(t, ab == 0, a.Equal(b), "consistency: %v %v", a, b)

		if ab <= 0 && b.Compare(c) <= 0 {
			require.LessOrEqual(t, a.Compare(c), 0, "transitivity: %v %v %v", a, b, c)
		}

		if *a.E0() < *b.E0() {
			require.Negative(t, ab, "lexicographic: %v %v", a, b)
		}
	}

	// A type with equality but no ordering never compares as equivalent to a
	// value it is not equal to, even when its fields cannot tell them apart.
	one, other := 1, 1
	h := hypertuple.New1(handle{&one})
	assert.True(t, h.Equal(hypertuple.New1(handle{&one})))
	assert.Zero(t, h.Compare(hypertuple.New1(handle{&one})))

	g := hypertuple.New1(handle{&other})
	assert.False(t, h.Equal(g))
	assert.Contains(t,
		panicMessage(t, func() { h.Compare(g) }),
		"hypertuple: values of type hypertuple_test.handle are not ordered")

	type wrapped struct {
		H handle
		N int
	}
	assert.Contains(t,
		panicMessage(t, func() {
			hypertuple.New(wrapped{handle{&one}, 1}).Compare(hypertuple.New(wrapped{handle{&other}, 1}))
		}),
		"hypertuple: values of type hypertuple_test.handle are not ordered")
	assert.Equal(t, -1,
		hypertuple.New(wrapped{handle{&one}, 1}).Compare(hypertuple.New(wrapped{handle{&one}, 2})))
}

// node is a linked list cell; the lists in these tests are cyclic.
type node struct {
	next *node
	val  int
}

func ring(val int) *node {
	n := &node{val: val}
	n.next = n
	return n
}

func TestCompareCycles(t *testing.T) {
	t.Parallel()

	a, b, c := ring(1), ring(1), ring(2)
	assert.True(t, hypertuple.New(a).Equal(hypertuple.New(b)))
	assert.Zero(t, hypertuple.New(a).Compare(hypertuple.New(b)))

	assert.False(t, hypertuple.New(a).Equal(hypertuple.New(c)))
	assert.Equal(t, -1, hypertuple.New(a).Compare(hypertuple.New(c)))
	assert.Equal(t, 1, hypertuple.New(c).Compare(hypertuple.New(a)))

	// Two-cell rings that differ only in their second cell.
	d, e := ring(1), ring(1)
	d.next = &node{next: d, val: 5}
	e.next = &node{next: e, val: 7}
	assert.False(t, hypertuple.New(d).Equal(hypertuple.New(e)))
	assert.Equal(t, -1, hypertuple.New(d).Compare(hypertuple.New(e)))

	loop := []any{nil}
	loop[0] = loop
	assert.True(t, hypertuple.New(loop).Equal(hypertuple.New(loop)))
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
