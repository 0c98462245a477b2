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

package hypertuple

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unsafe"

	"buf.build/go/hypertuple/internal/debug"
	"buf.build/go/hypertuple/internal/xsync"
	"buf.build/go/hypertuple/internal/xunsafe"
	"buf.build/go/hypertuple/internal/xunsafe/layout"
)

var (
	shapes      xsync.Map[string, *Shape]
	typedShapes xsync.Map[reflect.Type, *Shape]

	anyType       = reflect.TypeFor[any]()
	destroyerType = reflect.TypeFor[Destroyer]()
)

// Shape is the static part of a tuple: the ordered list of slot types, and
// the layout that packs them into a single buffer.
//
// Shapes are interned, so two shapes with the same slot types are the same
// pointer. The layout is computed once per shape, not per tuple.
type Shape struct {
	types  []reflect.Type
	record layout.Record

	// A struct type with one field per slot, which is what tuple buffers are
	// allocated as. This gives the garbage collector a pointer map for the
	// buffer; its field offsets are checked against record when the shape is
	// built.
	storage reflect.Type

	// Which slots may need a Destroy call. Interface slots are marked and
	// checked dynamically.
	destroy       []bool
	hasDestroyers bool
}

// ShapeOf returns the shape for a tuple with the given slot types.
//
// Panics if any type is nil, or if the slots do not fit in
// [layout.MaxSize] bytes.
func ShapeOf(types ...reflect.Type) *Shape {
	s, _ := shapes.LoadOrStore(xunsafe.TypeKey(types), func() *Shape {
		return newShape(types)
	})
	return s
}

// shapeFor returns the shape whose slot types are the parameters of the
// function type F. This is how the fixed-arity tuples spell a type list.
func shapeFor[F any]() *Shape {
	fn := reflect.TypeFor[F]()
	if s, ok := typedShapes.Load(fn); ok {
		return s
	}

	types := make([]reflect.Type, fn.NumIn())
	for i := range types {
		types[i] = fn.In(i)
	}
	s, _ := typedShapes.LoadOrStore(fn, func() *Shape { return ShapeOf(types...) })
	return s
}

func newShape(types []reflect.Type) *Shape {
	s := &Shape{
		types:   slices.Clone(types),
		destroy: make([]bool, len(types)),
	}

	layouts := make([]layout.Layout, len(types))
	fields := make([]reflect.StructField, len(types))
	for i, t := range types {
		if t == nil {
			panic(fmt.Errorf("hypertuple: slot %d has no type", i))
		}

		layouts[i] = layout.Layout{Size: int(t.Size()), Align: t.Align()}
		fields[i] = reflect.StructField{Name: "F" + strconv.Itoa(i), Type: t}

		s.destroy[i] = t.Kind() == reflect.Interface ||
			reflect.PointerTo(t).Implements(destroyerType)
		s.hasDestroyers = s.hasDestroyers || s.destroy[i]
	}

	record, err := layout.Plan(layouts...)
	if err != nil {
		panic(fmt.Errorf("hypertuple: cannot lay out %v: %w", types, err))
	}
	s.record = record

	s.storage = reflect.StructOf(fields)
	for i := range fields {
		if off := int(s.storage.Field(i).Offset); off != record.Offsets[i] {
			panic(fmt.Errorf("hypertuple: internal error: slot %d of %v planned at %#x, but allocated at %#x",
				i, s, record.Offsets[i], off))
		}
	}

	debug.Log(nil, "shape", "%+v", s)
	return s
}

// Len returns the number of slots in this shape.
func (s *Shape) Len() int {
	return len(s.types)
}

// Elem returns the type of slot k.
//
// Panics if k is out of range.
func (s *Shape) Elem(k int) reflect.Type {
	s.check(k)
	return s.types[k]
}

// Types returns a copy of the slot types, in order.
func (s *Shape) Types() []reflect.Type {
	return slices.Clone(s.types)
}

// Offset returns the byte offset of slot k within a tuple's buffer.
//
// Panics if k is out of range.
func (s *Shape) Offset(k int) int {
	s.check(k)
	return s.record.Offsets[k]
}

// Size returns the number of bytes the slots occupy, up to the end of the
// last slot.
func (s *Shape) Size() int {
	return s.record.Size
}

// Align returns the alignment of a tuple's buffer, which is the largest
// alignment among the slot types.
func (s *Shape) Align() int {
	return s.record.Align
}

// String implements [fmt.Stringer].
func (s *Shape) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, t := range s.types {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.String())
	}
	b.WriteByte(')')
	return b.String()
}

// New constructs a tuple of this shape by copying values into its slots, in
// ascending order.
//
// A nil value produces the zero value of its slot. Panics if the number of
// values does not match the shape, or if a value is not assignable to its
// slot.
func (s *Shape) New(values ...any) *Tuple {
	if len(values) != len(s.types) {
		panic(&errArity{"New", s, len(values)})
	}

	t := new(Tuple)
	t.construct(s, func(k int, slot reflect.Value) {
		if values[k] == nil {
			return
		}
		v := reflect.ValueOf(values[k])
		if !v.Type().AssignableTo(slot.Type()) {
			panic(fmt.Errorf("hypertuple: cannot use %v as slot %d of %v", v.Type(), k, s))
		}
		slot.Set(v)
	})
	return t
}

// Move constructs a tuple of this shape by moving values out of the given
// pointers. Each ptrs[k] must be a non-nil pointer to slot k's type; the
// pointee is reset to its zero value once its value has been moved.
func (s *Shape) Move(ptrs ...any) *Tuple {
	if len(ptrs) != len(s.types) {
		panic(&errArity{"Move", s, len(ptrs)})
	}

	t := new(Tuple)
	t.construct(s, func(k int, slot reflect.Value) {
		p := reflect.ValueOf(ptrs[k])
		if !p.IsValid() || p.Type() != reflect.PointerTo(slot.Type()) || p.IsNil() {
			panic(fmt.Errorf("hypertuple: cannot move %T into slot %d of %v", ptrs[k], k, s))
		}
		slot.Set(p.Elem())
		p.Elem().SetZero()
	})
	return t
}

// Zero constructs a tuple of this shape whose slots hold zero values.
func (s *Shape) Zero() *Tuple {
	t := new(Tuple)
	t.construct(s, nil)
	return t
}

// alloc allocates a new, zeroed buffer for this shape.
func (s *Shape) alloc() *byte {
	p := reflect.New(s.storage).UnsafePointer()
	debug.Assert(uintptr(p)%uintptr(s.record.Align) == 0,
		"buffer for %v at %p is not %d-aligned", s, p, s.record.Align)
	return (*byte)(p)
}

// slot returns a pointer to slot k within data, as a reflect.Value.
func (s *Shape) slot(data *byte, k int) reflect.Value {
	return reflect.NewAt(s.types[k], unsafe.Pointer(xunsafe.ByteAdd[byte](data, s.record.Offsets[k]))).Elem()
}

func (s *Shape) check(k int) {
	if k < 0 || k >= len(s.types) {
		panic(&errIndex{k, len(s.types)})
	}
}
