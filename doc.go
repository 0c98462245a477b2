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

// Package hypertuple provides heterogeneous, fixed-arity tuples with a packed
// memory layout, and field views that expose the fields of a struct as such
// a tuple.
//
// A tuple's slots live in a single buffer. Each slot is placed at the
// smallest offset after the previous slot that satisfies its alignment, in
// declaration order, exactly as the Go compiler lays out a struct with the
// same field types. The list of slot types together with
// that layout is a [Shape], which is computed once and shared by every tuple
// with the same slot types.
//
// There are two ways to spell a tuple:
//
//   - [Tuple] is dynamically typed: its shape is chosen at runtime, and slots
//     are accessed by index with [Tuple.Get] or [Nth], which check the index
//     and type.
//   - [T0] through [T12] are statically typed. They wrap a [Tuple], and each
//     slot has an accessor method such as [T2.E1], so an out-of-range index
//     does not compile.
//
// # Lifecycle
//
// Each slot is empty, live, or destroyed. Constructing a tuple makes every
// slot live; [Tuple.Move] and [Tuple.MoveAssign] leave the source's slots
// empty; [Tuple.Destroy] destroys every live slot, calling
// [Destroyer.Destroy] on values that implement it. Tuples with such values
// are also destroyed automatically once neither the tuple nor a pointer to
// one of its slots is reachable. Either way, each value
// is destroyed exactly once, and reading a slot that is not live panics.
//
// # Field Views
//
// [Bind] returns a tuple holding a pointer to each field of a struct, in
// declaration order, so that generic code can walk the fields of any record
// type. [Binder.Fields] describes each slot of the view, for use by schema
// and serialization code. Views can be built by reflection, with a
// [Binder], or generated ahead of time with internal/tools/fieldgen.
package hypertuple
