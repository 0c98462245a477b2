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

package xunsafe

import (
	"reflect"
	"unsafe"
)

// iface is the internal representation an a Go interface value.
type iface struct {
	itab uintptr
	data *byte
}

// AnyData extracts the pointer value from an any.
func AnyData(v any) *byte {
	return Cast[iface](NoEscape(&v)).data
}

// TypeID returns an integer that uniquely identifies t for the lifetime of
// the process.
//
// Type descriptors are never freed, so the address of t's descriptor is
// stable and can be used to build map keys out of several types without
// hashing interface values.
func TypeID(t reflect.Type) uintptr {
	if t == nil {
		return 0
	}
	return uintptr(unsafe.Pointer(AnyData(t)))
}

// TypeKey builds a string key identifying an ordered list of types.
func TypeKey(types []reflect.Type) string {
	ids := make([]uintptr, len(types))
	for i, t := range types {
		ids[i] = TypeID(t)
	}
	if len(ids) == 0 {
		return ""
	}
	return string(unsafe.Slice(Cast[byte](&ids[0]), len(ids)*int(unsafe.Sizeof(ids[0]))))
}
