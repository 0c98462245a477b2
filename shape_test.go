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
	"math/rand/v2"
	"reflect"
	"testing"
	"time"
	"unsafe"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buf.build/go/hypertuple"
)

var scalarTypes = []reflect.Type{
	reflect.TypeFor[bool](),
	reflect.TypeFor[int8](),
	reflect.TypeFor[uint16](),
	reflect.TypeFor[int32](),
	reflect.TypeFor[float32](),
	reflect.TypeFor[int64](),
	reflect.TypeFor[float64](),
	reflect.TypeFor[complex128](),
	reflect.TypeFor[string](),
	reflect.TypeFor[[]byte](),
	reflect.TypeFor[[3]uint16](),
	reflect.TypeFor[any](),
	reflect.TypeFor[*int](),
	reflect.TypeFor[struct{}](),
	reflect.TypeFor[uuid.UUID](),
	reflect.TypeFor[time.Time](),
}

func TestShapeInterned(t *testing.T) {
	t.Parallel()

	a := hypertuple.ShapeOf(reflect.TypeFor[int](), reflect.TypeFor[string]())
	b := hypertuple.ShapeOf(reflect.TypeFor[int](), reflect.TypeFor[string]())
	assert.Same(t, a, b)
	assert.Same(t, a, hypertuple.New(1, "x").Shape())
	assert.Same(t, a, hypertuple.New2(2, "y").Shape())
	assert.Same(t, a, hypertuple.Zero2[int, string]().Shape())

	c := hypertuple.ShapeOf(reflect.TypeFor[string](), reflect.TypeFor[int]())
	assert.NotSame(t, a, c)

	assert.Same(t, hypertuple.ShapeOf(), new(hypertuple.Tuple).Shape())
}

func TestShapeLayout(t *testing.T) {
	t.Parallel()

	s := hypertuple.ShapeOf(
		reflect.TypeFor[uint8](),
		reflect.TypeFor[int64](),
		reflect.TypeFor[uint16](),
		reflect.TypeFor[uint8](),
	)

	type want struct {
		A uint8
		B int64
		C uint16
		D uint8
	}
	var w want
	assert.Equal(t, int(unsafe.Offsetof(w.A)), s.Offset(0))
	assert.Equal(t, int(unsafe.Offsetof(w.B)), s.Offset(1))
	assert.Equal(t, int(unsafe.Offsetof(w.C)), s.Offset(2))
	assert.Equal(t, int(unsafe.Offsetof(w.D)), s.Offset(3))
	assert.Equal(t, int(unsafe.Alignof(w)), s.Align())
	assert.Equal(t, s.Offset(3)+1, s.Size())
	assert.LessOrEqual(t, s.Size(), int(unsafe.Sizeof(w)))
}

func TestShapeProperties(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		types := make([]reflect.Type, rng.IntN(12))
		for i := range types {
			types[i] = scalarTypes[rng.IntN(len(scalarTypes))]
		}

		s := hypertuple.ShapeOf(types...)
		require.Equal(t, len(types), s.Len())
		require.Len(t, s.Types(), len(types))

		align, end := 1, 0
		for k, ty := range types {
			assert.Equal(t, ty, s.Elem(k))
			off := s.Offset(k)
			assert.Zero(t, off%ty.Align(), "slot %d of %v is misaligned", k, s)
			assert.GreaterOrEqual(t, off, end, "slot %d of %v overlaps", k, s)
			assert.Less(t, off-end, ty.Align(), "slot %d of %v has excess padding", k, s)

			end = off + int(ty.Size())
			align = max(align, ty.Align())
		}
		assert.Equal(t, end, s.Size())
		assert.Equal(t, align, s.Align())

		// Constructing a tuple of any shape works.
		tuple := s.Zero()
		for k, v := range tuple.All() {
			assert.True(t, v.IsZero(), "slot %d of %v", k, s)
		}
	}
}

func TestShapeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "()", hypertuple.ShapeOf().String())
	assert.Equal(t, "(int, string, []uint8)", hypertuple.New(1, "a", []byte{}).Shape().String())
	assert.Equal(t, "(interface {})", hypertuple.New(nil).Shape().String())
}

func TestShapeMisuse(t *testing.T) {
	t.Parallel()

	s := hypertuple.ShapeOf(reflect.TypeFor[int](), reflect.TypeFor[string]())

	assert.PanicsWithError(t,
		"hypertuple: slot index 2 out of range for tuple of arity 2",
		func() { s.Elem(2) })
	assert.Panics(t, func() { s.Offset(-1) })
	assert.Panics(t, func() { hypertuple.ShapeOf(nil) })

	assert.PanicsWithError(t,
		"hypertuple: New: got 1 values for (int, string), want 2",
		func() { s.New(1) })
	assert.PanicsWithError(t,
		"hypertuple: Move: got 3 values for (int, string), want 2",
		func() { s.Move(nil, nil, nil) })
	assert.PanicsWithError(t,
		"hypertuple: cannot use string as slot 0 of (int, string)",
		func() { s.New("a", "b") })

	n := 1
	assert.Panics(t, func() { s.Move(n, new(string)) })
	assert.Panics(t, func() { s.Move((*int)(nil), new(string)) })
}

func TestShapeNewNil(t *testing.T) {
	t.Parallel()

	s := hypertuple.ShapeOf(reflect.TypeFor[*int](), reflect.TypeFor[error]())
	tuple := s.New(nil, nil)
	assert.True(t, tuple.Get(0).IsNil())
	assert.True(t, tuple.Get(1).IsNil())
}
