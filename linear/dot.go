// SPDX-License-Identifier: MIT
// Package: factorgraph/linear
//
// dot.go - Graphviz DOT export of a factor graph.

package linear

import (
	"fmt"
	"io"
)

// DOTOptions tunes WriteDOT output.
type DOTOptions struct {
	// Name is the graph identifier; empty means "G".
	Name string
	// BinaryEdges draws binary factors as plain variable–variable edges
	// instead of factor nodes, which keeps grid MRFs readable.
	BinaryEdges bool
}

// DefaultDOTOptions returns Name="G", BinaryEdges=false.
func DefaultDOTOptions() DOTOptions {
	return DOTOptions{Name: "G"}
}

// WriteDOT renders the factor graph as an undirected Graphviz graph:
// variables are circles named by their key string, factors are small filled
// boxes "f<i>" linked to each variable they touch.
// Node and edge order follow Keys() and factor insertion order.
func (g *GaussianFactorGraph) WriteDOT(w io.Writer, opts DOTOptions) error {
	name := opts.Name
	if name == "" {
		name = "G"
	}
	ew := &errWriter{w: w}

	ew.printf("graph %s {\n", name)
	ew.printf("  node [shape=circle];\n")
	for _, k := range g.Keys() {
		ew.printf("  %q;\n", k.String())
	}
	for i, f := range g.factors {
		if opts.BinaryEdges && len(f.keys) == 2 {
			ew.printf("  %q -- %q;\n", f.keys[0].String(), f.keys[1].String())
			continue
		}
		ew.printf("  f%d [shape=box, style=filled, fillcolor=black, width=0.15, height=0.15, label=\"\"];\n", i)
		for _, k := range f.keys {
			ew.printf("  f%d -- %q;\n", i, k.String())
		}
	}
	ew.printf("}\n")

	if ew.err != nil {
		return fmt.Errorf("GaussianFactorGraph.WriteDOT: %w", ew.err)
	}
	return nil
}

// errWriter remembers the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
