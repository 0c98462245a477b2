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

// Package testdata holds the layout test corpus, a directory of yaml files
// describing field lists and the plan they must produce.
package testdata

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"buf.build/go/hypertuple/internal/debug"
	"buf.build/go/hypertuple/internal/xunsafe/layout"
)

//go:embed layout
var testdata embed.FS

// scalars are the field names that may appear in a test's field list, other
// than an explicit "size/align" pair.
var scalars = map[string]layout.Layout{
	"bool": {Size: 1, Align: 1},
	"u8":   {Size: 1, Align: 1},
	"i8":   {Size: 1, Align: 1},
	"u16":  {Size: 2, Align: 2},
	"i16":  {Size: 2, Align: 2},
	"u32":  {Size: 4, Align: 4},
	"i32":  {Size: 4, Align: 4},
	"f32":  {Size: 4, Align: 4},
	"u64":  {Size: 8, Align: 8},
	"i64":  {Size: 8, Align: 8},
	"f64":  {Size: 8, Align: 8},
	"c128": {Size: 16, Align: 8},
	"unit": {Size: 0, Align: 1},
}

// LayoutCase is a test case from the layout corpus.
type LayoutCase struct {
	Name string `yaml:"-"`

	// Fields is a list of scalar names or "size/align" pairs.
	Fields []string `yaml:"fields"`

	Want struct {
		Offsets []int `yaml:"offsets"`
		Size    int   `yaml:"size"`
		Align   int   `yaml:"align"`
	} `yaml:"want"`

	// If set, planning must fail with an error containing this string.
	Error string `yaml:"error"`

	layouts []layout.Layout
}

// Layouts returns the parsed field list.
func (c *LayoutCase) Layouts() []layout.Layout {
	return c.layouts
}

// RunAll runs every case in the corpus as a parallel subtest.
func RunAll(t *testing.T, f func(*testing.T, *LayoutCase)) {
	t.Helper()

	err := fs.WalkDir(testdata, ".", func(path string, d fs.DirEntry, err error) error {
		require.NoError(t, err, "loading test %q", path)

		if d.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}

		t.Run(strings.TrimPrefix(path, "layout/"), func(t *testing.T) {
			t.Parallel()

			data, err := fs.ReadFile(testdata, path)
			require.NoError(t, err, "loading test %q", path)

			f(t, parseLayoutCase(t, path, data))
		})

		return nil
	})
	require.NoError(t, err)
}

// parseLayoutCase parses a single test case from the given data.
//
// This will call t.FailNow() if parsing fails.
func parseLayoutCase(t testing.TB, path string, file []byte) *LayoutCase {
	t.Helper()

	require.True(t, bytes.HasSuffix(file, []byte("\n")), "missing trailing newline in %q", path)

	test := new(LayoutCase)
	dec := yaml.NewDecoder(bytes.NewReader(file))
	dec.KnownFields(true)
	require.NoError(t, dec.Decode(test), "loading test %q", path)

	test.Name = strings.TrimPrefix(path, "layout/")
	for _, field := range test.Fields {
		l, err := parseField(field)
		require.NoError(t, err, "loading test %q", path)
		test.layouts = append(test.layouts, l)
	}

	debug.Log(nil, "corpus", "%s: %d fields", test.Name, len(test.layouts))
	return test
}

func parseField(field string) (layout.Layout, error) {
	if l, ok := scalars[field]; ok {
		return l, nil
	}

	size, align, ok := strings.Cut(field, "/")
	if !ok {
		return layout.Layout{}, fmt.Errorf("unknown field %q", field)
	}
	s, err := strconv.Atoi(size)
	if err != nil {
		return layout.Layout{}, fmt.Errorf("bad size in %q: %w", field, err)
	}
	a, err := strconv.Atoi(align)
	if err != nil {
		return layout.Layout{}, fmt.Errorf("bad alignment in %q: %w", field, err)
	}
	return layout.Layout{Size: s, Align: a}, nil
}
