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

// BindOption is a configuration setting for [BinderFor].
//
// Like the binder it configures, a BindOption is a value: binders built with
// equal options are shared.
type BindOption struct{ apply func(*bindOptions) }

type bindOptions struct {
	nameTag    string
	maxFields  int
	unexported bool
}

func defaultBindOptions() bindOptions {
	return bindOptions{maxFields: MaxFields, unexported: true}
}

// WithNameTag sets a struct tag, such as "json", from which [Field.Name] is
// taken. The part of the tag before the first comma is used; fields without
// the tag, or with an empty name, keep their Go name.
func WithNameTag(tag string) BindOption {
	return BindOption{func(o *bindOptions) { o.nameTag = tag }}
}

// WithMaxFields lowers the number of fields a binder accepts. Values outside
// of [1, MaxFields] are clamped.
func WithMaxFields(n int) BindOption {
	return BindOption{func(o *bindOptions) { o.maxFields = max(1, min(n, MaxFields)) }}
}

// WithUnexported sets whether unexported fields are part of the view. The
// default is true, since a field view exposes the whole record.
func WithUnexported(include bool) BindOption {
	return BindOption{func(o *bindOptions) { o.unexported = include }}
}
