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

package xunsafe_test

import (
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"buf.build/go/hypertuple/internal/xunsafe"
)

func TestByteAdd(t *testing.T) {
	t.Parallel()

	s := struct {
		a byte
		b int32
		c uint64
	}{1, 2, 3}

	base := xunsafe.Cast[byte](&s)
	assert.Equal(t, int32(2), *xunsafe.ByteAdd[int32](base, unsafe.Offsetof(s.b)))
	assert.Equal(t, uint64(3), *xunsafe.ByteAdd[uint64](base, unsafe.Offsetof(s.c)))

	*xunsafe.ByteAdd[int32](base, 4) = 42
	assert.Equal(t, int32(42), s.b)
}

func TestAnyData(t *testing.T) {
	t.Parallel()

	i := 0xaaaa
	p := &i
	assert.Equal(t, xunsafe.Cast[byte](p), xunsafe.AnyData(p))
}

func TestTypeKey(t *testing.T) {
	t.Parallel()

	a := []reflect.Type{reflect.TypeFor[int](), reflect.TypeFor[string]()}
	b := []reflect.Type{reflect.TypeFor[int](), reflect.TypeFor[string]()}
	c := []reflect.Type{reflect.TypeFor[string](), reflect.TypeFor[int]()}

	assert.Equal(t, xunsafe.TypeKey(a), xunsafe.TypeKey(b))
	assert.NotEqual(t, xunsafe.TypeKey(a), xunsafe.TypeKey(c))
	assert.NotEqual(t, xunsafe.TypeKey(a), xunsafe.TypeKey(a[:1]))
	assert.Empty(t, xunsafe.TypeKey(nil))

	assert.Equal(t, xunsafe.TypeID(reflect.TypeFor[int]()), xunsafe.TypeID(reflect.TypeOf(0)))
	assert.Zero(t, xunsafe.TypeID(nil))
}
