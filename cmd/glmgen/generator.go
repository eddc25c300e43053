// Copyright 2025 go-glmath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// opKind selects the shape of a generated method: which vector family it is
// declared on and which it returns.
type opKind int

const (
	// kindForward: radian vector in, plain vector out, scalar form is a
	// method on Radians[T].
	kindForward opKind = iota
	// kindInverse: plain vector in, radian vector out, scalar form is a
	// package function returning Radians[T].
	kindInverse
	// kindInverseBinary: like kindInverse but with a second vector operand.
	kindInverseBinary
	// kindHyperbolic: plain vector in, plain vector out.
	kindHyperbolic
)

// op is one scalar operation broadcast over the vector types.
type op struct {
	name string // lower-case scalar operation name, e.g. "sin"
	kind opKind
	doc  string // completes "<Name> returns <doc>." in the method comment
}

// The operation table. Table order is emission order.
var ops = []op{
	{"sin", kindForward, "the componentwise sine of v, consuming the angles"},
	{"cos", kindForward, "the componentwise cosine of v, consuming the angles"},
	{"tan", kindForward, "the componentwise tangent of v, consuming the angles"},
	{"asin", kindInverse, "the componentwise arcsine of v as a radian vector"},
	{"acos", kindInverse, "the componentwise arccosine of v as a radian vector"},
	{"atan", kindInverse, "the componentwise arctangent of v as a radian vector"},
	{"atan2", kindInverseBinary, "the componentwise quadrant-correct arctangent of v/x as a radian vector"},
	{"sinh", kindHyperbolic, "the componentwise hyperbolic sine of v"},
	{"cosh", kindHyperbolic, "the componentwise hyperbolic cosine of v"},
	{"tanh", kindHyperbolic, "the componentwise hyperbolic tangent of v"},
}

// arities are the supported vector sizes, smallest first.
var arities = []int{2, 3, 4}

var titler = cases.Title(language.English)

// Generator emits the vector method file for one package.
type Generator struct {
	OutputPath string
	Package    string
}

// Run generates the method set and writes it to OutputPath.
func (g *Generator) Run() error {
	src, err := g.Generate()
	if err != nil {
		return err
	}
	if err := os.WriteFile(g.OutputPath, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", g.OutputPath, err)
	}
	return nil
}

// Generate renders the full file and formats it.
func (g *Generator) Generate() ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by glmgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n", g.Package)

	for _, o := range ops {
		for _, n := range arities {
			emitMethod(&buf, o, n)
		}
	}

	formatted, err := imports.Process(g.OutputPath, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return formatted, nil
}

// emitMethod writes one vector method for operation o at arity n.
func emitMethod(buf *bytes.Buffer, o op, n int) {
	name := titler.String(o.name)

	var recv, params, result, body string
	switch o.kind {
	case kindForward:
		recv = fmt.Sprintf("RVec%d[T]", n)
		result = fmt.Sprintf("Vec%d[T]", n)
		body = fmt.Sprintf("return Vec%d[T](map%d([%d]Radians[T](v), Radians[T].%s))", n, n, n, name)
	case kindInverse:
		recv = fmt.Sprintf("Vec%d[T]", n)
		result = fmt.Sprintf("RVec%d[T]", n)
		body = fmt.Sprintf("return RVec%d[T](map%d([%d]T(v), %s[T]))", n, n, n, name)
	case kindInverseBinary:
		recv = fmt.Sprintf("Vec%d[T]", n)
		params = fmt.Sprintf("x Vec%d[T]", n)
		result = fmt.Sprintf("RVec%d[T]", n)
		elems := make([]string, n)
		for i := 0; i < n; i++ {
			elems[i] = fmt.Sprintf("%s(v[%d], x[%d])", name, i, i)
		}
		body = fmt.Sprintf("return RVec%d[T]{%s}", n, strings.Join(elems, ", "))
	case kindHyperbolic:
		recv = fmt.Sprintf("Vec%d[T]", n)
		result = fmt.Sprintf("Vec%d[T]", n)
		body = fmt.Sprintf("return Vec%d[T](map%d([%d]T(v), %s[T]))", n, n, n, name)
	}

	fmt.Fprintf(buf, "\n// %s returns %s.\n", name, o.doc)
	fmt.Fprintf(buf, "func (v %s) %s(%s) %s {\n\t%s\n}\n", recv, name, params, result, body)
}
