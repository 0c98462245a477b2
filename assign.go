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

	"github.com/tiendc/go-deepcopy"

	"buf.build/go/hypertuple/internal/debug"
	"buf.build/go/hypertuple/internal/xsync"
)

// cloners caches, per type, the index of a "Clone() (T, error)" method in
// the method set of *T, or -1.
var cloners xsync.Map[reflect.Type, int]

// Clone returns a new tuple whose slots are copies of t's, with ordinary Go
// assignment semantics: pointers, slices, and maps are shared with t.
//
// Slots of t that were moved out of are empty in the clone as well.
func (t *Tuple) Clone() *Tuple {
	c := new(Tuple)
	t.cloneInto(c)
	return c
}

func (t *Tuple) cloneInto(c *Tuple) {
	if t.shape == nil {
		return
	}
	t.checkUsable("Clone")

	c.alloc(t.shape)
	for k, state := range t.state {
		if state != slotLive {
			continue
		}
		t.shape.slot(c.data, k).Set(t.shape.slot(t.data, k))
		c.state[k] = slotLive
	}
	c.seal()
}

// DeepClone returns a new tuple whose slots are deep copies of t's.
//
// A slot whose type T has a method "Clone() (T, error)" on *T is copied by
// calling it. Other slots are copied with [deepcopy.Copy]. On error, the
// values copied so far are destroyed and t is not modified.
func (t *Tuple) DeepClone() (*Tuple, error) {
	c := new(Tuple)
	if err := t.deepCloneInto(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (t *Tuple) deepCloneInto(c *Tuple) (err error) {
	if t.shape == nil {
		return nil
	}
	t.checkUsable("DeepClone")

	c.alloc(t.shape)
	for k, state := range t.state {
		if state != slotLive {
			continue
		}

		dst, src := t.shape.slot(c.data, k), t.shape.slot(t.data, k)
		if err := deepCopy(dst, src); err != nil {
			c.destroy()
			return fmt.Errorf("hypertuple: copying slot %d of %v: %w", k, t.shape, err)
		}
		c.state[k] = slotLive
	}
	c.seal()
	return nil
}

// Move returns a new tuple that takes ownership of t's values. Afterwards
// every slot of t is empty: it will not be destroyed again, and reading it
// panics.
func (t *Tuple) Move() *Tuple {
	c := new(Tuple)
	t.moveInto(c)
	return c
}

func (t *Tuple) moveInto(c *Tuple) {
	if t.shape == nil {
		return
	}
	t.checkUsable("Move")

	c.alloc(t.shape)
	t.transfer(c)
	c.seal()
}

// Assign replaces t's values with deep copies of src's, as by
// [Tuple.DeepClone].
//
// The copy is made before anything in t is touched, so if it fails t is left
// exactly as it was. Otherwise t's old values are destroyed and the copies
// are moved in. Panics if t and src have different shapes.
func (t *Tuple) Assign(src *Tuple) error {
	if t == src {
		return nil
	}
	t.checkShape("Assign", src)

	temp := new(Tuple)
	if err := src.deepCloneInto(temp); err != nil {
		return err
	}
	t.MoveAssign(temp)
	return nil
}

// MoveAssign destroys t's values and moves src's values into t, leaving src's
// slots empty. Panics if t and src have different shapes.
func (t *Tuple) MoveAssign(src *Tuple) {
	if t == src {
		return
	}
	t.checkShape("MoveAssign", src)
	if t.shape == nil {
		return
	}
	src.checkUsable("MoveAssign")

	// Assignment is the one way to bring a destroyed tuple back to life, so
	// only the live slots are torn down.
	t.destroy()
	src.transfer(t)
}

// transfer moves every live slot of t into the corresponding slot of c, which
// must have the same shape and hold no values.
func (t *Tuple) transfer(c *Tuple) {
	for k, state := range t.state {
		if state != slotLive {
			continue
		}
		src := t.shape.slot(t.data, k)
		t.shape.slot(c.data, k).Set(src)
		src.SetZero()
		t.state[k] = slotEmpty
		c.state[k] = slotLive
	}
	debug.Log(nil, "move", "%v -> %v", t.dump(), c.dump())
}

// checkUsable panics if t has been destroyed.
func (t *Tuple) checkUsable(op string) {
	for k, state := range t.state {
		if state == slotDestroyed {
			err := &errDead{op: op, k: k, state: state}
			if debug.Enabled {
				err.site = *t.destroyedAt.Get()
			}
			panic(err)
		}
	}
}

func (t *Tuple) checkShape(op string, u *Tuple) {
	if t.Shape() != u.Shape() {
		panic(&errShape{op, t.Shape(), u.Shape()})
	}
}

// deepCopy deep-copies src into dst, which must be addressable values of the
// same type.
func deepCopy(dst, src reflect.Value) error {
	ptr := reflect.PointerTo(src.Type())
	idx, _ := cloners.LoadOrStore(src.Type(), func() int {
		m, ok := ptr.MethodByName("Clone")
		if !ok {
			return -1
		}
		f := m.Type // Includes the receiver.
		if f.NumIn() != 1 || f.NumOut() != 2 ||
			f.Out(0) != src.Type() || f.Out(1) != reflect.TypeFor[error]() {
			return -1
		}
		return m.Index
	})

	if idx >= 0 {
		out := src.Addr().Method(idx).Call(nil)
		if err, _ := out[1].Interface().(error); err != nil {
			return err
		}
		dst.Set(out[0])
		return nil
	}

	return deepcopy.Copy(dst.Addr().Interface(), src.Addr().Interface())
}
