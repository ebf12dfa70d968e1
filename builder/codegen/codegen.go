// Package codegen renders the Go source of icon components and of the
// package index.
package codegen

import (
	"bytes"
	"fmt"
	"strconv"
	"text/template"

	"golang.org/x/tools/imports"
)

// IndexSymbol is the variable declared by the index file. No component may
// share its name.
const IndexSymbol = "Index"

// Reserved are the names a component file already binds: its imports and
// the component's parameters. Module identifiers must not reuse them.
var Reserved = []string{"context", "io", "lucide", "ctx", "w"}

// Header marks every generated file.
const Header = "// Code generated by lucide-gen. DO NOT EDIT."

// Icon is the data spliced into the component template. Snake names the
// module in the index and Const the unexported markup constant.
type Icon struct {
	Name   string
	Pascal string
	Snake  string
	Const  string
	Markup string
}

// Package describes the generated package.
type Package struct {
	Name    string
	Runtime string
}

var funcs = template.FuncMap{
	"quote": strconv.Quote,
}

var componentTmpl = template.Must(template.New("component").Funcs(funcs).Parse(
	Header + `

package {{ .Package.Name }}

import (
	"context"
	"io"

	lucide "{{ .Package.Runtime }}"
)

// {{ .Icon.Pascal }} renders the {{ .Icon.Name }} icon with the attributes provided in ctx.
func {{ .Icon.Pascal }}(ctx context.Context, w io.Writer) error {
	return lucide.Render(ctx, w, {{ .Icon.Const }})
}

const {{ .Icon.Const }} = {{ quote .Icon.Markup }}
`))

var indexTmpl = template.Must(template.New("index").Funcs(funcs).Parse(
	Header + `

package {{ .Package.Name }}

import lucide "{{ .Package.Runtime }}"

// ` + IndexSymbol + ` lists every icon in this package by name.
var ` + IndexSymbol + ` = lucide.Index{
{{- range .Icons }}
	{Name: {{ quote .Name }}, Module: {{ quote .Snake }}, Component: {{ .Pascal }}},
{{- end }}
}
`))

// Generator renders and formats generated files for one package.
type Generator struct {
	Package Package
}

// Component returns the formatted source of icon's component file.
func (g *Generator) Component(filename string, icon Icon) ([]byte, error) {
	return g.execute(componentTmpl, filename, struct {
		Package Package
		Icon    Icon
	}{g.Package, icon})
}

// Index returns the formatted source of the index file. icons must already
// be sorted by name.
func (g *Generator) Index(filename string, icons []Icon) ([]byte, error) {
	return g.execute(indexTmpl, filename, struct {
		Package Package
		Icons   []Icon
	}{g.Package, icons})
}

func (g *Generator) execute(tmpl *template.Template, filename string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	formatted, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return buf.Bytes(), &FormatError{Filename: filename, Err: err}
	}
	return formatted, nil
}

// FormatError is returned when generated code does not parse. The
// unformatted source is returned alongside it.
type FormatError struct {
	Filename string
	Err      error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("formatting generated code for %s: %v", e.Filename, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
