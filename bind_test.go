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
	"fmt"
	"reflect"
	"sync/atomic"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buf.build/go/hypertuple"
	"buf.build/go/hypertuple/internal/examples"
)

type person struct {
	Name string
	Age  int
}

type record struct {
	ID      int64 `json:"id"`
	_       [4]byte
	Label   string `json:"label,omitempty"`
	secret  []byte
	Skipped bool `json:"-"`
	person
}

func TestBindHomer(t *testing.T) {
	t.Parallel()

	homer := person{Name: "Homer", Age: 45}
	view := hypertuple.Bind(&homer)
	require.Equal(t, 2, view.Len())
	assert.Equal(t, "Homer", **hypertuple.Nth[*string](view, 0))
	assert.Equal(t, 45, **hypertuple.Nth[*int](view, 1))

	**hypertuple.Nth[*int](view, 1) = 10
	assert.Equal(t, 10, homer.Age)

	view.Get(0).Elem().SetString("Marge")
	assert.Equal(t, "Marge", homer.Name)

	// The view does not own the fields.
	view.Destroy()
	assert.Equal(t, person{Name: "Marge", Age: 10}, homer)
}

func TestBindFields(t *testing.T) {
	t.Parallel()

	b, err := hypertuple.BinderFor[record]()
	require.NoError(t, err)
	require.Equal(t, 5, b.Len())

	ty := reflect.TypeFor[record]()
	names := []string{"ID", "Label", "secret", "Skipped", "person"}
	for k, f := range b.Fields() {
		sf, ok := ty.FieldByName(names[k])
		require.True(t, ok)

		assert.Equal(t, k, f.Index)
		assert.Equal(t, names[k], f.Name)
		assert.Equal(t, names[k], f.GoName)
		assert.Equal(t, sf.Type, f.Type)
		assert.Equal(t, sf.Type.String(), f.TypeName)
		assert.Equal(t, int(sf.Offset), f.Offset)
		assert.Equal(t, sf.Tag, f.Tag)
		assert.Equal(t, sf.IsExported(), f.Exported)

		assert.Equal(t, reflect.PointerTo(sf.Type), b.Shape().Elem(k))
	}
	assert.Equal(t, "hypertuple_test.person", b.Fields()[4].TypeName)

	r := record{ID: 1, Label: "x", secret: []byte("s"), person: person{"Bart", 10}}
	view := b.Bind(&r)
	assert.Same(t, b.Shape(), view.Shape())
	assert.Equal(t, unsafe.Pointer(&r.secret), view.Get(2).UnsafePointer())
	assert.Equal(t, unsafe.Pointer(&r.person), view.Get(4).UnsafePointer())

	view.Get(2).Elem().SetBytes([]byte("t"))
	assert.Equal(t, []byte("t"), r.secret)
}

func TestBindOptions(t *testing.T) {
	t.Parallel()

	b, err := hypertuple.BinderFor[record](hypertuple.WithNameTag("json"))
	require.NoError(t, err)

	var names []string
	for _, f := range b.Fields() {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"id", "label", "secret", "Skipped", "person"}, names)
	assert.Equal(t, "Label", b.Fields()[1].GoName)

	exported, err := hypertuple.BinderFor[record](hypertuple.WithUnexported(false))
	require.NoError(t, err)
	require.Equal(t, 3, exported.Len())
	assert.Equal(t, "Skipped", exported.Fields()[2].Name)
	assert.Equal(t, 2, exported.Fields()[2].Index)

	// Binders are cached per type and options.
	again, err := hypertuple.BinderFor[record](hypertuple.WithNameTag("json"))
	require.NoError(t, err)
	assert.Same(t, b, again)
	assert.NotSame(t, b, exported)
}

func TestBindErrors(t *testing.T) {
	t.Parallel()

	_, err := hypertuple.BinderFor[int]()
	require.ErrorIs(t, err, hypertuple.ErrNotAggregate)
	assert.EqualError(t, err, "hypertuple: cannot bind int: type is not an aggregate")
	assert.Panics(t, func() { hypertuple.Bind(new(int)) })

	_, err = hypertuple.BinderFor[record](hypertuple.WithMaxFields(3))
	require.ErrorIs(t, err, hypertuple.ErrTooManyFields)
	assert.Contains(t, err.Error(), "too many fields (5 > 3)")
	assert.Contains(t, err.Error(), "split it into smaller embedded structs")
	assert.Contains(t, err.Error(), "RegisterView")

	_, err = hypertuple.BinderFor[record](hypertuple.WithMaxFields(5))
	require.NoError(t, err)

	assert.Panics(t, func() { hypertuple.Bind[person](nil) })
}

func TestBindEmpty(t *testing.T) {
	t.Parallel()

	var empty struct{}
	view := hypertuple.Bind(&empty)
	assert.Zero(t, view.Len())
	assert.Same(t, hypertuple.ShapeOf(), view.Shape())
}

func TestBindEqual(t *testing.T) {
	t.Parallel()

	a := person{"Lisa", 8}
	b := person{"Lisa", 8}
	c := person{"Lisa", 9}

	// Views compare the fields they point to.
	assert.True(t, hypertuple.Bind(&a).Equal(hypertuple.Bind(&b)))
	assert.Equal(t, -1, hypertuple.Bind(&a).Compare(hypertuple.Bind(&c)))
}

func TestBindDestroyer(t *testing.T) {
	t.Parallel()

	var n atomic.Int32
	v := struct {
		R resource
		N int
	}{R: resource{"r", &n}}

	hypertuple.Bind(&v).Destroy()
	assert.Zero(t, n.Load())
}

func TestBindFieldsCopy(t *testing.T) {
	t.Parallel()

	type pair struct{ A, B int }
	b, err := hypertuple.BinderFor[pair]()
	require.NoError(t, err)

	fields := b.Fields()
	fields[1].Offset = 0
	fields[1].Name = "A"

	p := pair{A: 1, B: 2}
	**hypertuple.Nth[*int](b.Bind(&p), 1) = 99
	assert.Equal(t, pair{A: 1, B: 99}, p)
	assert.Equal(t, "B", b.Fields()[1].Name)
	assert.Equal(t, int(unsafe.Offsetof(p.B)), b.Fields()[1].Offset)
}

func TestBindWith(t *testing.T) {
	t.Parallel()

	homer := person{Name: "Homer", Age: 45}
	strs := hypertuple.BindWith(&homer, func(f hypertuple.Field, v reflect.Value) any {
		return fmt.Sprintf("%s=%v", f.Name, v.Interface())
	})
	assert.Equal(t, "(string, string)", strs.Shape().String())
	assert.Equal(t, []any{"Name=Homer", "Age=45"}, strs.Values())

	// The values passed in are settable, even for unexported fields.
	r := record{secret: []byte("a")}
	hypertuple.BindWith(&r, func(f hypertuple.Field, v reflect.Value) any {
		if !f.Exported {
			v.SetZero()
		}
		return nil
	})
	assert.Nil(t, r.secret)
	assert.Equal(t, person{}, r.person)
}

func TestBindRegistered(t *testing.T) {
	t.Parallel()

	homer := examples.Person{Name: "Homer", Age: 45}
	view := hypertuple.Bind(&homer)

	b, err := hypertuple.BinderFor[examples.Person]()
	require.NoError(t, err)
	assert.Same(t, b.Shape(), view.Shape())
	assert.True(t, view.Equal(b.Bind(&homer)))

	**hypertuple.Nth[*int](view, 1) = 10
	assert.Equal(t, 10, homer.Age)
}

type custom struct {
	fields [3]int
}

func TestRegisterView(t *testing.T) {
	t.Parallel()

	hypertuple.RegisterView(func(c *custom) *hypertuple.Tuple {
		return hypertuple.New(&c.fields[0], &c.fields[1], &c.fields[2])
	})

	c := custom{[3]int{1, 2, 3}}
	view := hypertuple.Bind(&c)
	require.Equal(t, 3, view.Len())
	**hypertuple.Nth[*int](view, 2) = 4
	assert.Equal(t, [3]int{1, 2, 4}, c.fields)

	// BindWith does not use the view; it walks the struct's own fields.
	names := hypertuple.BindWith(&c, func(f hypertuple.Field, _ reflect.Value) any {
		return f.Name
	})
	assert.Equal(t, []any{"fields"}, names.Values())
}
