// planfile.go - HCL plan files
//
// (c) 2024 Sudhi Herle <sw-at-herle.net>
//
// Copyright 2024- Sudhi Herle <sw-at-herle-dot-net>
// License: BSD-2-Clause
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

// Package planfile reads weighted task lists from HCL files:
//
//	task "search" {
//	  weight = 3
//	}
//	task "index" {
//	  weight = 1
//	}
package planfile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Task is one named, weighted task.
type Task struct {
	Name   string `hcl:"name,label"`
	Weight int    `hcl:"weight"`
}

type file struct {
	Tasks []Task `hcl:"task,block"`
}

// Load parses the plan file at path.
func Load(path string) ([]Task, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("planfile: parse %s: %w", path, diags)
	}
	return decode(f, path)
}

// Parse parses src; filename is only used in diagnostics.
func Parse(src []byte, filename string) ([]Task, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("planfile: parse %s: %w", filename, diags)
	}
	return decode(f, filename)
}

func decode(f *hcl.File, filename string) ([]Task, error) {
	var pf file
	if diags := gohcl.DecodeBody(f.Body, nil, &pf); diags.HasErrors() {
		return nil, fmt.Errorf("planfile: decode %s: %w", filename, diags)
	}

	seen := make(map[string]bool, len(pf.Tasks))
	for _, t := range pf.Tasks {
		if seen[t.Name] {
			return nil, fmt.Errorf("planfile: %s: duplicate task %q", filename, t.Name)
		}
		seen[t.Name] = true
	}
	return pf.Tasks, nil
}
