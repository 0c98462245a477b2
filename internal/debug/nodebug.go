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

//go:build !debug

// Package debug includes debugging helpers.
package debug

import "testing"

// Enabled is true if the library is being built with the debug tag, which
// enables various debugging features.
const Enabled = false

// WithTesting does nothing without the debug tag.
func WithTesting(testing.TB) func() { return func() {} }

// Log does nothing without the debug tag.
func Log([]any, string, string, ...any) {}

// Assert does nothing without the debug tag.
func Assert(bool, string, ...any) {}

// Value is a value of any type that only exists when the debug tag is
// enabled. When disabled, this struct is replaced with an empty struct.
type Value[T any] struct{}

// Get returns a pointer to this value. Panics if not in debug mode.
func (v *Value[T]) Get() *T { panic("hypertuple: debug.Value used without the debug tag") }
