// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command jsonfmt reformats JSON documents.
package main

import (
	"fmt"
	"os"

	"github.com/go-json-experiment/jsontree/internal/jsonfmt"
)

func main() {
	cmd := jsonfmt.NewCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "jsonfmt: %v\n", err)
		os.Exit(1)
	}
}
