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
	"strings"
	"unsafe"

	"buf.build/go/hypertuple/internal/debug"
	"buf.build/go/hypertuple/internal/xsync"
	"buf.build/go/hypertuple/internal/xunsafe"
)

// MaxFields is the largest number of fields a struct may have and still be
// bound by a [Binder].
//
// Structs above this limit can be split into smaller embedded structs, each
// of which counts as one field, or given a hand-written view with
// [RegisterView].
const MaxFields = 256

var (
	binders xsync.Map[bindKey, any] // *Binder[T]
	views   xsync.Map[reflect.Type, any]
)

type bindKey struct {
	ty   reflect.Type
	opts bindOptions
}

// Field describes one field of a bound struct. It is what schema and
// serialization code pairs with the corresponding slot of a field view.
type Field struct {
	// The position of this field within the view. This differs from the
	// position within the struct when blank or unexported fields are skipped.
	Index int

	// The field's name, taken from the name tag if one was configured.
	Name string
	// The field's name as written in Go.
	GoName string

	// The name of the field's type, as printed by [reflect.Type.String].
	TypeName string
	Type     reflect.Type

	// The byte offset of the field within the struct.
	Offset int
	Tag    reflect.StructTag

	Exported bool
}

// Binder produces field views of values of type T, a struct type.
//
// A field view is a [Tuple] whose slot k has type *F, where F is the type of
// the k-th field of T in declaration order, and points into the bound value:
// writing through the view mutates the struct. Blank fields are skipped.
//
// Binders are obtained with [BinderFor] and are safe for concurrent use.
type Binder[T any] struct {
	fields []Field
	view   *Shape
}

// BinderFor returns the binder for T with the given options. Binders are
// cached, so this is cheap to call repeatedly.
//
// Returns an error wrapping [ErrNotAggregate] if T is not a struct, and one
// wrapping [ErrTooManyFields] if T has more than [MaxFields] fields.
func BinderFor[T any](options ...BindOption) (*Binder[T], error) {
	opts := defaultBindOptions()
	for _, opt := range options {
		opt.apply(&opts)
	}

	key := bindKey{reflect.TypeFor[T](), opts}
	if b, ok := binders.Load(key); ok {
		return b.(*Binder[T]), nil //nolint:errcheck
	}

	b, err := newBinder[T](opts)
	if err != nil {
		return nil, err
	}
	actual, _ := binders.LoadOrStore(key, func() any { return b })
	return actual.(*Binder[T]), nil //nolint:errcheck
}

func newBinder[T any](opts bindOptions) (*Binder[T], error) {
	fields, view, err := planView(reflect.TypeFor[T](), opts)
	if err != nil {
		return nil, err
	}
	return &Binder[T]{fields: fields, view: view}, nil
}

// planView computes the fields of a view of ty and the view's shape.
func planView(ty reflect.Type, opts bindOptions) ([]Field, *Shape, error) {
	if ty.Kind() != reflect.Struct {
		return nil, nil, &errBind{ty: ty, err: ErrNotAggregate}
	}

	var fields []Field
	var types []reflect.Type
	for i := range ty.NumField() {
		sf := ty.Field(i)
		if sf.Name == "_" || (!opts.unexported && !sf.IsExported()) {
			continue
		}

		f := Field{
			Index:    len(fields),
			Name:     sf.Name,
			GoName:   sf.Name,
			TypeName: sf.Type.String(),
			Type:     sf.Type,
			Offset:   int(sf.Offset),
			Tag:      sf.Tag,
			Exported: sf.IsExported(),
		}
		if opts.nameTag != "" {
			name, _, _ := strings.Cut(sf.Tag.Get(opts.nameTag), ",")
			if name != "" && name != "-" {
				f.Name = name
			}
		}

		fields = append(fields, f)
		types = append(types, reflect.PointerTo(sf.Type))
	}

	if len(fields) > opts.maxFields {
		return nil, nil, &errBind{ty: ty, err: ErrTooManyFields, n: len(fields), of: opts.maxFields}
	}

	view := ShapeOf(types...)
	debug.Log(nil, "bind", "%v: %v", ty, fields)
	return fields, view, nil
}

// Len returns the number of fields in a view.
func (b *Binder[T]) Len() int {
	return len(b.fields)
}

// Fields returns a description of each slot of a view, in order. The result
// is a copy; changing it does not affect b.
func (b *Binder[T]) Fields() []Field {
	return slices.Clone(b.fields)
}

// Shape returns the shape of the views this binder produces.
func (b *Binder[T]) Shape() *Shape {
	return b.view
}

// Bind returns the field view of v.
//
// The view borrows v: it must not be used after v is freed, and destroying
// the view does not affect v. Panics if v is nil.
func (b *Binder[T]) Bind(v *T) *Tuple {
	if v == nil {
		panic(fmt.Errorf("hypertuple: cannot bind nil %T", v))
	}

	t := new(Tuple)
	t.alloc(b.view)
	base := unsafe.Pointer(v)
	for k, f := range b.fields {
		*xunsafe.ByteAdd[unsafe.Pointer](t.data, b.view.record.Offsets[k]) = unsafe.Add(base, f.Offset)
		t.state[k] = slotLive
	}
	t.seal()
	return t
}

// BindWith calls f on each field of v in order, and returns a tuple of the
// results. The slot types of the result are the dynamic types of the values f
// returns.
//
// The value passed to f is addressable and settable, including for
// unexported fields.
func (b *Binder[T]) BindWith(v *T, f func(Field, reflect.Value) any) *Tuple {
	if v == nil {
		panic(fmt.Errorf("hypertuple: cannot bind nil %T", v))
	}

	base := unsafe.Pointer(v)
	results := make([]any, len(b.fields))
	for k, field := range b.fields {
		fv := reflect.NewAt(field.Type, unsafe.Add(base, field.Offset)).Elem()
		results[k] = f(field, fv)
	}
	return New(results...)
}

// RegisterView registers a function that produces field views of T, which
// [Bind] uses instead of a [Binder]. This is how types that a binder rejects
// can still be bound.
//
// The generator in internal/tools/fieldgen emits calls to this function.
// Registering a second view for the same type replaces the first.
//
// Only [Bind] consults registered views. [BindWith] needs a [Field] for every
// slot, which a view does not describe, so it always uses the default
// [Binder] and panics for types that only a view can bind.
func RegisterView[T any](view func(*T) *Tuple) {
	views.Store(reflect.TypeFor[T](), view)
}

// Bind returns the field view of v, using the view registered with
// [RegisterView] if there is one, and the default [Binder] otherwise.
//
// Panics if T cannot be bound.
func Bind[T any](v *T) *Tuple {
	if view, ok := views.Load(reflect.TypeFor[T]()); ok {
		return view.(func(*T) *Tuple)(v) //nolint:errcheck
	}
	return mustBinder[T]().Bind(v)
}

// BindWith is like [Binder.BindWith], using the default binder for T. Views
// registered with [RegisterView] are not used.
//
// Panics if T cannot be bound.
func BindWith[T any](v *T, f func(Field, reflect.Value) any) *Tuple {
	return mustBinder[T]().BindWith(v, f)
}

func mustBinder[T any]() *Binder[T] {
	b, err := BinderFor[T]()
	if err != nil {
		panic(err)
	}
	return b
}
