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

// Tuplegen generates the fixed-arity tuple types, T0 through Tn.
//
// Go has no variadic generics, so each arity is its own type, with one
// accessor method per slot. It is run with go generate from the package that
// declares the dynamic Tuple; the output file is placed next to $GOFILE.
//
//nolint:errcheck // Internal tool; Panicking on error is fine.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"go.uber.org/zap"
)

var (
	maxArity = flag.Int("n", 12, "the largest arity to generate")
	output   = flag.String("o", "tuples.go", "the output file, relative to $GOFILE")
	verbose  = flag.Bool("v", false, "log what is being generated")
)

// arity holds the pre-rendered pieces of the declarations for one tuple type.
type arity struct {
	N     int
	Slots []slot

	Params string // A0, A1 any
	Args   string // A0, A1
	Values string // a0 A0, a1 A1
	Ptrs   string // p0 *A0, p1 *A1
}

type slot struct {
	K    int
	Type string
}

// Type returns the instantiated name of the tuple type, such as T2[A0, A1].
func (a arity) Type() string {
	if a.N == 0 {
		return "T0"
	}
	return fmt.Sprintf("T%d[%s]", a.N, a.Args)
}

// Generic returns the type parameter list for a function, including brackets.
func (a arity) Generic() string {
	if a.N == 0 {
		return ""
	}
	return "[" + a.Params + "]"
}

// Inst returns the type argument list for a function, including brackets.
func (a arity) Inst() string {
	if a.N == 0 {
		return ""
	}
	return "[" + a.Args + "]"
}

func newArity(n int) arity {
	a := arity{N: n}
	var args, values, ptrs []string
	for k := range n {
		ty := fmt.Sprintf("A%d", k)
		a.Slots = append(a.Slots, slot{k, ty})
		args = append(args, ty)
		values = append(values, fmt.Sprintf("a%d %s", k, ty))
		ptrs = append(ptrs, fmt.Sprintf("p%d *%s", k, ty))
	}
	a.Args = strings.Join(args, ", ")
	a.Params = a.Args + " any"
	a.Values = strings.Join(values, ", ")
	a.Ptrs = strings.Join(ptrs, ", ")
	return a
}

var tmpl = template.Must(template.New("tuples").Parse(`// Copyright 2025 Buf Technologies, Inc.
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

// Code generated by internal/tools/tuplegen. DO NOT EDIT.

package {{.Package}}
{{range .Arities}}{{$t := .Type}}
{{- if eq .N 0}}
// T0 is the empty tuple. Its zero value is ready to use.
type T0 struct{ Tuple }

// New0 constructs a [T0].
func New0() *T0 {
	return zeroAs[T0](shapeFor[func()]())
}
{{- else}}
// T{{.N}} is a tuple with {{.N}} slot{{if ne .N 1}}s{{end}}.
//
// The zero T{{.N}} is not usable; construct one with [New{{.N}}], [Move{{.N}}], or [Zero{{.N}}].
type T{{.N}}{{.Generic}} struct{ Tuple }

// New{{.N}} constructs a [T{{.N}}] holding copies of its arguments.
func New{{.N}}{{.Generic}}({{.Values}}) *{{$t}} {
	t := Zero{{.N}}{{.Inst}}()
{{- range .Slots}}
	*t.E{{.K}}() = a{{.K}}
{{- end}}
	return t
}

// Move{{.N}} constructs a [T{{.N}}] by moving its arguments' pointees into it,
// leaving them zero.
func Move{{.N}}{{.Generic}}({{.Ptrs}}) *{{$t}} {
	t := Zero{{.N}}{{.Inst}}()
{{- range .Slots}}
	*t.E{{.K}}() = take(p{{.K}})
{{- end}}
	return t
}

// Zero{{.N}} constructs a [T{{.N}}] holding zero values.
func Zero{{.N}}{{.Generic}}() *{{$t}} {
	return zeroAs[{{$t}}](shapeFor[func({{.Args}})]())
}
{{range .Slots}}
// E{{.K}} returns a pointer to slot {{.K}}.
func (t *{{$t}}) E{{.K}}() *{{.Type}} { return at[{{.Type}}](&t.Tuple, {{.K}}) }
{{end}}
// Unpack returns copies of t's values.
func (t *{{$t}}) Unpack() {{if eq .N 1}}{{.Args}}{{else}}({{.Args}}){{end}} {
	return {{range $i, $s := .Slots}}{{if $i}}, {{end}}*t.E{{$s.K}}(){{end}}
}
{{- end}}

// Equal is like [Tuple.Equal].
func (t *{{$t}}) Equal(u *{{$t}}) bool { return t.Tuple.Equal(&u.Tuple) }

// Compare is like [Tuple.Compare].
func (t *{{$t}}) Compare(u *{{$t}}) int { return t.Tuple.Compare(&u.Tuple) }

// Clone is like [Tuple.Clone].
func (t *{{$t}}) Clone() *{{$t}} { return cloneAs(t) }

// DeepClone is like [Tuple.DeepClone].
func (t *{{$t}}) DeepClone() (*{{$t}}, error) { return deepCloneAs(t) }

// Move is like [Tuple.Move].
func (t *{{$t}}) Move() *{{$t}} { return moveAs(t) }

// Assign is like [Tuple.Assign].
func (t *{{$t}}) Assign(src *{{$t}}) error { return t.Tuple.Assign(&src.Tuple) }

// MoveAssign is like [Tuple.MoveAssign].
func (t *{{$t}}) MoveAssign(src *{{$t}}) { t.Tuple.MoveAssign(&src.Tuple) }
{{end}}`))

// generate renders the tuple types of arity 0 through n for package pkg.
func generate(pkg string, n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative arity %d", n)
	}

	data := struct {
		Package string
		Arities []arity
	}{Package: pkg}
	for i := range n + 1 {
		data.Arities = append(data.Arities, newArity(i))
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, data); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}

func run(logger *zap.Logger) error {
	pkg := os.Getenv("GOPACKAGE")
	if pkg == "" {
		return fmt.Errorf("tuplegen must be run by go generate")
	}

	src, err := generate(pkg, *maxArity)
	if err != nil {
		return err
	}

	path := filepath.Join(filepath.Dir(os.Getenv("GOFILE")), *output)
	logger.Info("writing tuples",
		zap.String("path", path),
		zap.Int("arity", *maxArity),
		zap.Int("bytes", len(src)),
	)
	return os.WriteFile(path, src, 0o666)
}

func main() {
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	if err := run(logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
