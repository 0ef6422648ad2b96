// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build ignore

// gen_inverse writes inverse_table.go.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strconv"
)

const size = 1024

func main() {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by gen_inverse.go; DO NOT EDIT.\n\n")
	buf.WriteString("package fixed\n\nimport \"math\"\n\n")
	buf.WriteString("// inverseTable[i] is 1/i in FDot16 for an FDot6 i, that is (1 << 22) / i.\n")
	buf.WriteString("// Entry 0 is the saturated \"infinite\" value.\n")
	buf.WriteString("var inverseTable = [InverseTableSize]FDot16{\n")
	for i := 0; i < size; i++ {
		if i%8 == 0 {
			buf.WriteString("\t")
		}
		v := "math.MaxInt32"
		if i > 0 {
			v = strconv.Itoa((1 << 22) / i)
		}
		buf.WriteString(v)
		if i%8 == 7 || i == size-1 {
			buf.WriteString(",\n")
		} else {
			buf.WriteString(", ")
		}
	}
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile("inverse_table.go", src, 0o644); err != nil {
		log.Fatal(fmt.Errorf("write table: %w", err))
	}
}
