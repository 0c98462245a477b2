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
	"iter"
	"reflect"
	"runtime"
	"strings"
	"unsafe"

	"buf.build/go/hypertuple/internal/debug"
	"buf.build/go/hypertuple/internal/xunsafe"
)

// Destroyer is implemented by slot types that need to release something when
// the tuple holding them is destroyed.
//
// Destroy is called exactly once per constructed value, either by
// [Tuple.Destroy], by assignment replacing the value, or by the runtime once
// the tuple's buffer becomes unreachable. In the last case it runs on the
// finalizer goroutine.
type Destroyer interface {
	Destroy()
}

// slotState is the lifecycle state of a single slot.
type slotState uint8

const (
	// Not yet constructed, or moved out of.
	slotEmpty slotState = iota
	slotLive
	slotDestroyed
)

func (s slotState) String() string {
	switch s {
	case slotEmpty:
		return "empty"
	case slotLive:
		return "live"
	default:
		return "destroyed"
	}
}

// Tuple is a fixed-arity, heterogeneous product of values, stored in a
// single buffer laid out by its [Shape].
//
// The zero Tuple is the empty tuple. Other tuples are created with [New],
// [Shape.New], [Shape.Move], [Shape.Zero], [Bind], or one of the fixed-arity
// constructors such as [New2]. A Tuple must not be copied after creation;
// use [Tuple.Clone] or [Tuple.Move] instead.
type Tuple struct {
	_ xunsafe.NoCopy
	buffer
}

// buffer is everything a tuple needs to destroy itself. It is kept separate
// from the Tuple so that the finalizer on data can destroy the values without
// keeping the Tuple alive.
type buffer struct {
	shape *Shape
	data  *byte
	state []slotState

	destroyedAt *debug.Value[string]
}

// New constructs a tuple holding copies of the given values.
//
// The slot types are the dynamic types of values; a nil value produces a
// slot of type any.
func New(values ...any) *Tuple {
	types := make([]reflect.Type, len(values))
	for i, v := range values {
		types[i] = reflect.TypeOf(v)
		if types[i] == nil {
			types[i] = anyType
		}
	}
	return ShapeOf(types...).New(values...)
}

// raw returns t. It is promoted to the fixed-arity tuples, which lets
// generic helpers reach the Tuple embedded in them.
func (t *Tuple) raw() *Tuple { return t }

// construct initializes t with a fresh buffer of the given shape and
// constructs each slot in ascending order by calling init on it. A nil init
// leaves every slot zero.
//
// If init panics, the slots constructed so far are destroyed before the panic
// propagates.
func (t *Tuple) construct(s *Shape, init func(k int, slot reflect.Value)) {
	t.alloc(s)

	done := false
	defer func() {
		if !done {
			t.destroy()
		}
	}()

	for k := range s.types {
		if init != nil {
			init(k, s.slot(t.data, k))
		}
		t.state[k] = slotLive
	}
	done = true
	t.seal()
}

// alloc gives t a fresh buffer with every slot empty.
func (t *Tuple) alloc(s *Shape) {
	t.shape = s
	t.data = s.alloc()
	t.state = make([]slotState, len(s.types))
	if debug.Enabled {
		t.destroyedAt = new(debug.Value[string])
	}
}

// seal finishes construction. If any slot may need destroying, t's values are
// destroyed automatically once its buffer becomes unreachable. Pointers to
// slots, such as those returned by [Tuple.Get] or [Nth], keep the buffer
// reachable.
func (t *Tuple) seal() {
	if !t.shape.hasDestroyers || t.shape.storage.Size() == 0 {
		return
	}

	// The finalizer must not refer to the buffer it is attached to.
	b := t.buffer
	b.data = nil
	runtime.SetFinalizer(t.data, func(data *byte) {
		b.data = data
		b.destroy()
	})
}

// Len returns the number of slots in t.
func (t *Tuple) Len() int {
	if t.shape == nil {
		return 0
	}
	return len(t.shape.types)
}

// Shape returns t's shape.
func (t *Tuple) Shape() *Shape {
	if t.shape == nil {
		return ShapeOf()
	}
	return t.shape
}

// Get returns slot k as an addressable [reflect.Value]; setting it mutates t.
//
// Panics if k is out of range, or if slot k does not hold a value.
func (t *Tuple) Get(k int) reflect.Value {
	t.live(k)
	return t.shape.slot(t.data, k)
}

// All iterates over the slots of t in order, as by [Tuple.Get].
func (t *Tuple) All() iter.Seq2[int, reflect.Value] {
	return func(yield func(int, reflect.Value) bool) {
		for k := range t.Len() {
			if !yield(k, t.Get(k)) {
				return
			}
		}
	}
}

// Values returns a copy of each slot's value, boxed in an any.
func (t *Tuple) Values() []any {
	out := make([]any, t.Len())
	for k, v := range t.All() {
		out[k] = v.Interface()
	}
	return out
}

// String implements [fmt.Stringer].
func (t *Tuple) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for k := range t.Len() {
		if k > 0 {
			b.WriteString(", ")
		}
		if t.state[k] != slotLive {
			fmt.Fprintf(&b, "<%v>", t.state[k])
			continue
		}
		fmt.Fprint(&b, t.shape.slot(t.data, k))
	}
	b.WriteByte(')')
	return b.String()
}

// Destroy destroys every slot that holds a value, calling [Destroyer.Destroy]
// where the slot's value implements it.
//
// Destroying a tuple twice is a no-op; using it after destruction panics.
func (t *Tuple) Destroy() {
	if t.shape == nil {
		return
	}
	t.destroy()
	if debug.Enabled {
		*t.destroyedAt.Get() = debug.Site(1)
	}
}

// live returns a pointer to slot k, after checking that it holds a value.
func (t *Tuple) live(k int) unsafe.Pointer {
	if t.shape == nil {
		panic(&errIndex{k, 0})
	}
	t.shape.check(k)
	if t.state[k] != slotLive {
		err := &errDead{k: k, state: t.state[k]}
		if debug.Enabled {
			err.site = *t.destroyedAt.Get()
		}
		panic(err)
	}
	return unsafe.Pointer(xunsafe.ByteAdd[byte](t.data, t.shape.record.Offsets[k]))
}

// at returns a typed pointer to slot k. The caller promises that T is the
// slot's type.
func at[T any](t *Tuple, k int) *T {
	return (*T)(t.live(k))
}

// destroy destroys every live slot of b.
func (b buffer) destroy() {
	if b.shape == nil {
		return
	}

	for k, state := range b.state {
		if state != slotLive {
			if state == slotEmpty {
				b.state[k] = slotDestroyed
			}
			continue
		}

		b.state[k] = slotDestroyed
		slot := b.shape.slot(b.data, k)
		if b.shape.destroy[k] {
			destroyValue(slot)
		}
		slot.SetZero()
	}

	debug.Log(nil, "destroy", "%v", b.dump())
}

// destroyValue calls Destroy on v if it has such a method. v must be
// addressable.
func destroyValue(v reflect.Value) {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return
		}
		if d, ok := v.Interface().(Destroyer); ok {
			d.Destroy()
		}
		return
	}

	if d, ok := v.Addr().Interface().(Destroyer); ok {
		d.Destroy()
	}
}
