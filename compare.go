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
	"cmp"
	"fmt"
	"reflect"
	"unsafe"

	"buf.build/go/hypertuple/internal/xsync"
)

// comparers caches the user-defined comparison methods of each type.
var comparers xsync.Map[reflect.Type, *comparer]

// comparer holds the indices of a type's "Equal(T) bool" and
// "Compare(T) int" methods in the method set of *T, or -1 if absent.
type comparer struct {
	equal, compare int
}

// Equal returns whether every slot of t is equal to the corresponding slot of
// u, stopping at the first mismatch.
//
// Slots are compared as follows:
//   - A type with an "Equal(T) bool" or "Compare(T) int" method uses it.
//   - Scalars compare by value; floats compare as [cmp.Compare] does, so NaN
//     is equal to NaN.
//   - Pointers compare their pointees, so two field views are equal when the
//     fields they point to are.
//   - Interfaces compare dynamic types, then dynamic values.
//   - Arrays, structs, slices, and maps compare element-wise.
//
// Cyclic values are supported: a pair of pointers, maps, or slices reached
// again while it is already being compared counts as equal.
//
// Panics if t and u have different shapes, or if a slot holds a non-nil
// func.
func (t *Tuple) Equal(u *Tuple) bool {
	t.checkShape("Equal", u)
	for k := range t.Len() {
		if !new(walker).equal(t.Get(k), u.Get(k)) {
			return false
		}
	}
	return true
}

// Compare compares t and u lexicographically: the result is that of the
// first pair of slots that are not equal, or 0 if all of them are.
//
// Slot orderings are only computed for slots that are not equal according to
// the rules of [Tuple.Equal], so a slot type that has equality but no
// ordering only panics when two tuples actually differ there. Ordering uses
// "Compare(T) int" methods, [cmp.Compare] for numbers and strings, false
// before true, nil before non-nil, and lexicographic order for arrays,
// structs, and slices. Interfaces holding different types are ordered by type
// name.
//
// Panics if t and u have different shapes, or if a pair of slots is not equal
// but cannot be ordered. This includes types with an "Equal(T) bool" method
// and no "Compare(T) int" method whose fields do not tell the values apart.
func (t *Tuple) Compare(u *Tuple) int {
	t.checkShape("Compare", u)
	for k := range t.Len() {
		if c := new(walker).order(t.Get(k), u.Get(k)); c != 0 {
			return c
		}
	}
	return 0
}

// walker compares two values. It remembers the pairs of pointers, maps, and
// slices it has followed, so that comparing cyclic values terminates.
type walker struct {
	seen   map[visit]struct{}
	cycled bool
}

type visit struct {
	a, b unsafe.Pointer
	ty   reflect.Type
}

// enter records that a and b are being compared, and reports false if they
// already were.
func (w *walker) enter(a, b reflect.Value) bool {
	v := visit{a.UnsafePointer(), b.UnsafePointer(), a.Type()}
	if _, ok := w.seen[v]; ok {
		return false
	}
	if w.seen == nil {
		w.seen = make(map[visit]struct{})
	}
	w.seen[v] = struct{}{}
	return true
}

// order returns 0 if a and b are equal, and their ordering otherwise. It panics
// if a and b are not equal but no ordering tells them apart, so that order
// returns 0 exactly when [walker.equal] reports true.
//
// Pairs that are reached again through a cycle while ordering are tied, so
// that the remaining fields decide.
func (w *walker) order(a, b reflect.Value) int {
	if new(walker).equal(a, b) {
		return 0
	}

	outer := w.cycled
	w.cycled = false
	c := w.compare(a, b)
	cycled := w.cycled
	w.cycled = outer || cycled

	if c != 0 || cycled {
		return c
	}
	panic(errUnordered(a.Type()))
}

func comparerOf(t reflect.Type) *comparer {
	c, ok := comparers.Load(t)
	if ok {
		return c
	}

	c, _ = comparers.LoadOrStore(t, func() *comparer {
		ptr := reflect.PointerTo(t)
		lookup := func(name string, out reflect.Type) int {
			m, ok := ptr.MethodByName(name)
			if !ok {
				return -1
			}
			f := m.Type
			if f.NumIn() != 2 || f.In(1) != t || f.NumOut() != 1 || f.Out(0) != out {
				return -1
			}
			return m.Index
		}

		return &comparer{
			equal:   lookup("Equal", reflect.TypeFor[bool]()),
			compare: lookup("Compare", reflect.TypeFor[int]()),
		}
	})
	return c
}

// method returns a callable method of v's pointer type, or false if v's
// methods are unusable (e.g. v was reached through an unexported field).
func method(v reflect.Value, idx int) (reflect.Value, bool) {
	if idx < 0 || !v.CanInterface() {
		return reflect.Value{}, false
	}
	if !v.CanAddr() {
		p := reflect.New(v.Type())
		p.Elem().Set(v)
		v = p.Elem()
	}
	return v.Addr().Method(idx), true
}

func (w *walker) equal(a, b reflect.Value) bool {
	c := comparerOf(a.Type())
	if m, ok := method(a, c.equal); ok && b.CanInterface() {
		return m.Call([]reflect.Value{b})[0].Bool()
	}
	if m, ok := method(a, c.compare); ok && b.CanInterface() {
		return m.Call([]reflect.Value{b})[0].Int() == 0
	}

	switch a.Kind() {
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() == b.Uint()
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float()) == 0
	case reflect.Complex64, reflect.Complex128:
		x, y := a.Complex(), b.Complex()
		return cmp.Compare(real(x), real(y)) == 0 && cmp.Compare(imag(x), imag(y)) == 0
	case reflect.String:
		return a.String() == b.String()

	case reflect.Pointer:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		if a.Pointer() == b.Pointer() || !w.enter(a, b) {
			return true
		}
		return w.equal(a.Elem(), b.Elem())

	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		a, b = a.Elem(), b.Elem()
		return a.Type() == b.Type() && w.equal(a, b)

	case reflect.Array:
		for i := range a.Len() {
			if !w.equal(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true

	case reflect.Struct:
		for i := range a.NumField() {
			if !w.equal(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true

	case reflect.Slice:
		if a.Len() != b.Len() {
			return false
		}
		if a.Pointer() == b.Pointer() || !w.enter(a, b) {
			return true
		}
		for i := range a.Len() {
			if !w.equal(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true

	case reflect.Map:
		if a.Len() != b.Len() {
			return false
		}
		if a.Pointer() == b.Pointer() || !w.enter(a, b) {
			return true
		}
		iter := a.MapRange()
		for iter.Next() {
			v := b.MapIndex(iter.Key())
			if !v.IsValid() || !w.equal(iter.Value(), v) {
				return false
			}
		}
		return true

	case reflect.Chan, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()

	default:
		if a.Kind() == reflect.Func && a.IsNil() && b.IsNil() {
			return true
		}
		panic(fmt.Errorf("hypertuple: values of type %v are not comparable", a.Type()))
	}
}

func (w *walker) compare(a, b reflect.Value) int {
	c := comparerOf(a.Type())
	if m, ok := method(a, c.compare); ok && b.CanInterface() {
		return int(m.Call([]reflect.Value{b})[0].Int())
	}

	switch a.Kind() {
	case reflect.Bool:
		switch {
		case a.Bool() == b.Bool():
			return 0
		case b.Bool():
			return -1
		default:
			return 1
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.String:
		return cmp.Compare(a.String(), b.String())

	case reflect.Pointer, reflect.Interface:
		switch {
		case a.IsNil() && b.IsNil():
			return 0
		case a.IsNil():
			return -1
		case b.IsNil():
			return 1
		}
		if a.Kind() == reflect.Pointer && !w.enter(a, b) {
			w.cycled = true
			return 0
		}
		a, b = a.Elem(), b.Elem()
		if a.Type() != b.Type() {
			return cmp.Compare(a.Type().String(), b.Type().String())
		}
		return w.order(a, b)

	case reflect.Array:
		for i := range a.Len() {
			if c := w.order(a.Index(i), b.Index(i)); c != 0 {
				return c
			}
		}
		return 0

	case reflect.Struct:
		for i := range a.NumField() {
			if c := w.order(a.Field(i), b.Field(i)); c != 0 {
				return c
			}
		}
		return 0

	case reflect.Slice:
		if !w.enter(a, b) {
			w.cycled = true
			return 0
		}
		for i := range min(a.Len(), b.Len()) {
			if c := w.order(a.Index(i), b.Index(i)); c != 0 {
				return c
			}
		}
		return cmp.Compare(a.Len(), b.Len())

	default:
		panic(errUnordered(a.Type()))
	}
}

func errUnordered(t reflect.Type) error {
	return fmt.Errorf("hypertuple: values of type %v are not ordered", t)
}
