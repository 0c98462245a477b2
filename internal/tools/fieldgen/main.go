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

// Fieldgen generates field views for struct types.
//
// This generator looks for type declarations annotated with a directive of
// the form
//
//	//hypertuple:fields [Method]
//
// and, for each one, emits a method (named Fields unless Method is given)
// that returns a pointer to each field of the struct, in declaration order,
// as a tuple. Structs with up to hypertuple.MaxTypedArity fields get a
// fixed-arity tuple; larger ones get a hypertuple.Tuple. The view is also
// registered with hypertuple.RegisterView, so hypertuple.Bind uses it.
//
// Generated code for foo.go is placed in foo_fields.go.
//
//nolint:errcheck // Internal tool; Panicking on error is fine.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/format"
	"go/types"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"text/template"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"buf.build/go/hypertuple"
)

var (
	directive = regexp.MustCompile(`^//hypertuple:fields(?:\s+(\w+))?\s*$`)

	verbose = flag.Bool("v", false, "log what is being generated")
)

// target is a struct type to generate a view for.
type target struct {
	Name   string
	Method string
	Recv   string
	Fields []string
}

// Typed returns whether this target's view is a fixed-arity tuple.
func (t target) Typed() bool {
	return len(t.Fields) <= hypertuple.MaxTypedArity
}

// Arity is the suffix of the hypertuple constructor to call.
func (t target) Arity() string {
	if !t.Typed() {
		return ""
	}
	return fmt.Sprint(len(t.Fields))
}

// output is everything needed to render one generated file.
type output struct {
	Package string
	Imports []string
	Targets []target

	types []string // Parallel to Targets; the view's slot types.
}

// Result returns the result type of target i's method.
func (o *output) Result(i int) string {
	t := o.Targets[i]
	if !t.Typed() {
		return "*hypertuple.Tuple"
	}
	if len(t.Fields) == 0 {
		return "*hypertuple.T0"
	}
	return fmt.Sprintf("*hypertuple.T%d[%s]", len(t.Fields), o.types[i])
}

// parseDirective returns the method name requested by a directive in doc, if
// there is one.
func parseDirective(doc *ast.CommentGroup) (method string, ok bool) {
	if doc == nil {
		return "", false
	}
	for _, c := range doc.List {
		match := directive.FindStringSubmatch(c.Text)
		if match == nil {
			continue
		}
		if match[1] == "" {
			return "Fields", true
		}
		return match[1], true
	}
	return "", false
}

// collect finds the annotated struct types in file, which belongs to pkg.
func collect(logger *zap.Logger, pkg *types.Package, file *ast.File) (*output, error) {
	out := &output{Package: pkg.Name()}
	imports := make(map[string]bool)
	qualifier := func(p *types.Package) string {
		if p == pkg {
			return ""
		}
		imports[p.Path()] = true
		return p.Name()
	}

	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			method, ok := parseDirective(ts.Doc)
			if !ok && len(gd.Specs) == 1 {
				method, ok = parseDirective(gd.Doc)
			}
			if !ok {
				continue
			}

			obj := pkg.Scope().Lookup(ts.Name.Name)
			if obj == nil {
				return nil, fmt.Errorf("%s: type not found", ts.Name.Name)
			}
			named, ok := obj.Type().(*types.Named)
			if ok && named.TypeParams().Len() > 0 {
				return nil, fmt.Errorf("%s: generic types are not supported", ts.Name.Name)
			}
			st, ok := obj.Type().Underlying().(*types.Struct)
			if !ok {
				return nil, fmt.Errorf("%s: %w", ts.Name.Name, hypertuple.ErrNotAggregate)
			}

			t := target{
				Name:   ts.Name.Name,
				Method: method,
				Recv:   receiver(ts.Name.Name),
			}
			var slots []string
			for i := range st.NumFields() {
				f := st.Field(i)
				if f.Name() == "_" {
					continue
				}
				t.Fields = append(t.Fields, f.Name())
				slots = append(slots, "*"+types.TypeString(f.Type(), qualifier))
			}
			if len(t.Fields) > hypertuple.MaxFields {
				return nil, fmt.Errorf(
					"%s: %w (%d > %d); split it into smaller embedded structs",
					t.Name, hypertuple.ErrTooManyFields, len(t.Fields), hypertuple.MaxFields,
				)
			}

			logger.Debug("found struct",
				zap.String("type", t.Name),
				zap.String("method", t.Method),
				zap.Int("fields", len(t.Fields)),
			)
			out.Targets = append(out.Targets, t)
			out.types = append(out.types, strings.Join(slots, ", "))
		}
	}

	for path := range imports {
		out.Imports = append(out.Imports, path)
	}
	slices.Sort(out.Imports)
	return out, nil
}

// receiver picks a receiver name for a method on the named type.
func receiver(name string) string {
	r := []rune(name)[0]
	if r = unicode.ToLower(r); r == 'h' || !unicode.IsLetter(r) {
		// Avoid shadowing the hypertuple package.
		return "x"
	}
	return string(r)
}

var tmpl = template.Must(template.New("fields").Parse(`// Copyright 2025 Buf Technologies, Inc.
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

// Code generated by internal/tools/fieldgen. DO NOT EDIT.

package {{.Package}}

import (
	"buf.build/go/hypertuple"
{{- range .Imports}}
	{{printf "%q" .}}
{{- end}}
)
{{range $i, $t := .Targets}}
// {{.Method}} returns the field view of {{.Recv}}: a pointer to each of its fields,
// in declaration order.
func ({{.Recv}} *{{.Name}}) {{.Method}}() {{$.Result $i}} {
	return hypertuple.New{{.Arity}}({{range $j, $f := .Fields}}{{if $j}}, {{end}}&{{$t.Recv}}.{{$f}}{{end}})
}
{{end}}
func init() {
{{- range .Targets}}
	hypertuple.RegisterView(func({{.Recv}} *{{.Name}}) *hypertuple.Tuple { return {{if .Typed}}&{{.Recv}}.{{.Method}}().Tuple{{else}}{{.Recv}}.{{.Method}}(){{end}} })
{{- end}}
}
`))

// render renders a generated file. Returns nil if there is nothing to
// generate.
func render(out *output) ([]byte, error) {
	if len(out.Targets) == 0 {
		return nil, nil
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, out); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}

func run(logger *zap.Logger) error {
	path := os.Getenv("GOFILE")
	if path == "" {
		return fmt.Errorf("fieldgen must be run by go generate")
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	pkgs, err := packages.Load(&packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
		Dir:  filepath.Dir(path),
	}, ".")
	if err != nil {
		return err
	}
	if len(pkgs) != 1 {
		return fmt.Errorf("expected one package in %s, got %d", filepath.Dir(path), len(pkgs))
	}
	pkg := pkgs[0]
	for _, err := range pkg.Errors {
		// A stale generated file does not type-check, but the structs it
		// is generated from still do.
		logger.Warn("package has errors", zap.Error(err))
	}

	var file *ast.File
	for _, f := range pkg.Syntax {
		if pkg.Fset.Position(f.Pos()).Filename == path {
			file = f
			break
		}
	}
	if file == nil {
		return fmt.Errorf("%s is not part of package %s", path, pkg.PkgPath)
	}

	out, err := collect(logger, pkg.Types, file)
	if err != nil {
		return err
	}
	src, err := render(out)
	if err != nil || src == nil {
		return err
	}

	outPath := strings.TrimSuffix(path, ".go") + "_fields.go"
	logger.Info("writing field views",
		zap.String("path", outPath),
		zap.Int("types", len(out.Targets)),
	)
	return os.WriteFile(outPath, src, 0o666)
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
