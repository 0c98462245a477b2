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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanViewMaxFields(t *testing.T) {
	t.Parallel()

	wide := func(n int) reflect.Type {
		fields := make([]reflect.StructField, n)
		for i := range fields {
			fields[i] = reflect.StructField{Name: fmt.Sprintf("F%d", i), Type: reflect.TypeFor[int]()}
		}
		return reflect.StructOf(fields)
	}

	fields, view, err := planView(wide(MaxFields), defaultBindOptions())
	require.NoError(t, err)
	assert.Len(t, fields, MaxFields)
	assert.Equal(t, MaxFields, view.Len())

	_, _, err = planView(wide(MaxFields+1), defaultBindOptions())
	require.ErrorIs(t, err, ErrTooManyFields)
	assert.Contains(t, err.Error(), "(257 > 256)")
}

func TestSlotStates(t *testing.T) {
	t.Parallel()

	tuple := New(1, "a")
	assert.Equal(t, []slotState{slotLive, slotLive}, tuple.state)

	moved := tuple.Move()
	assert.Equal(t, []slotState{slotEmpty, slotEmpty}, tuple.state)
	assert.Equal(t, []slotState{slotLive, slotLive}, moved.state)

	tuple.Destroy()
	moved.Destroy()
	assert.Equal(t, []slotState{slotDestroyed, slotDestroyed}, tuple.state)
	assert.Equal(t, []slotState{slotDestroyed, slotDestroyed}, moved.state)

	require.NoError(t, moved.Assign(New(2, "b")))
	assert.Equal(t, []slotState{slotLive, slotLive}, moved.state)
}

func TestShapeStorage(t *testing.T) {
	t.Parallel()

	s := ShapeOf(reflect.TypeFor[byte](), reflect.TypeFor[*int](), reflect.TypeFor[string]())
	require.Equal(t, 3, s.storage.NumField())
	for k := range s.Len() {
		f := s.storage.Field(k)
		assert.Equal(t, s.types[k], f.Type)
		assert.Equal(t, s.record.Offsets[k], int(f.Offset))
	}
	assert.Equal(t, []bool{false, false, false}, s.destroy)
	assert.False(t, s.hasDestroyers)

	s = ShapeOf(reflect.TypeFor[any](), reflect.TypeFor[int]())
	assert.Equal(t, []bool{true, false}, s.destroy)
	assert.True(t, s.hasDestroyers)
}

func TestDebugFormat(t *testing.T) {
	t.Parallel()

	s := ShapeOf(reflect.TypeFor[int32](), reflect.TypeFor[any]())
	assert.Equal(t, "(int32, interface {})", fmt.Sprint(s))
	assert.Equal(t,
		"(int32, interface {}){offsets: [0 8], size: 24, align: 8, destroy: [false true]}",
		fmt.Sprintf("%+v", s))

	tuple := s.Zero()
	assert.Contains(t, fmt.Sprint(tuple.dump()), "state: [live live]}")
	assert.Equal(t, "(0, <nil>)", fmt.Sprint(tuple))

	f := Field{Index: 1, Name: "age", TypeName: "int", Offset: 16}
	assert.Equal(t, "1:age int @0x10", f.String())
}
