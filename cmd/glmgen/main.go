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

// Command glmgen generates the componentwise vector method set of the glm
// package: one method per operation and arity, each delegating to the
// scalar capability through the per-arity broadcast mappers.
//
// Usage:
//
//	glmgen -output vec_trig.go
//
// Or via go:generate from the glm package directory:
//
//	//go:generate go run ../cmd/glmgen -output vec_trig.go
//
// The generator walks a fixed operation table (forward trigonometric,
// inverse trigonometric, hyperbolic) and emits a method for every arity in
// {2, 3, 4}, so the broadcast surface never drifts out of step between
// operations.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputFile = flag.String("output", "vec_trig.go", "Output file path")
	packageOut = flag.String("pkg", "glm", "Package name for the generated file")
)

func main() {
	flag.Parse()

	gen := &Generator{
		OutputPath: *outputFile,
		Package:    *packageOut,
	}

	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %s\n", *outputFile)
}
