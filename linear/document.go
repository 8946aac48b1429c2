// SPDX-License-Identifier: MIT
// Package: factorgraph/linear
//
// document.go - JSON and YAML graph documents.

package linear

import (
	"encoding/json"
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/factorgraph/noise"
	"github.com/katalvlaran/factorgraph/symbol"
)

// Document is a plain, serialisable snapshot of a GaussianFactorGraph.
type Document struct {
	Factors []FactorDocument `json:"factors" yaml:"factors"`
}

// FactorDocument mirrors one JacobianFactor.
//   - Keys use the symbol string form ("a1").
//   - A holds one row-major block per key: A[term][row][col].
//   - Sigmas are the noise-model standard deviations.
type FactorDocument struct {
	Keys   []string      `json:"keys" yaml:"keys"`
	A      [][][]float64 `json:"a" yaml:"a"`
	B      []float64     `json:"b" yaml:"b"`
	Sigmas []float64     `json:"sigmas" yaml:"sigmas"`
}

// Document snapshots the graph.
func (g *GaussianFactorGraph) Document() Document {
	doc := Document{Factors: make([]FactorDocument, 0, len(g.factors))}
	for _, f := range g.factors {
		fd := FactorDocument{
			Keys:   make([]string, len(f.keys)),
			A:      make([][][]float64, len(f.blocks)),
			B:      cloneVec(f.b),
			Sigmas: f.model.Sigmas(),
		}
		for i, k := range f.keys {
			fd.Keys[i] = k.String()
			r, _ := f.blocks[i].Dims()
			rows := make([][]float64, r)
			for ri := 0; ri < r; ri++ {
				rows[ri] = cloneVec(f.blocks[i].RawRowView(ri))
			}
			fd.A[i] = rows
		}
		doc.Factors = append(doc.Factors, fd)
	}
	return doc
}

// FromDocument rebuilds a graph, validating every factor as the
// constructors do.
func FromDocument(doc Document) (*GaussianFactorGraph, error) {
	g := NewGaussianFactorGraph()
	for fi, fd := range doc.Factors {
		if len(fd.A) != len(fd.Keys) {
			return nil, fmt.Errorf("FromDocument(factor %d): %d keys, %d blocks: %w",
				fi, len(fd.Keys), len(fd.A), ErrDimensionMismatch)
		}
		model, err := noise.FromSigmas(fd.Sigmas)
		if err != nil {
			return nil, fmt.Errorf("FromDocument(factor %d): %w", fi, err)
		}
		terms := make([]Term, len(fd.Keys))
		for i, ks := range fd.Keys {
			k, err := symbol.Parse(ks)
			if err != nil {
				return nil, fmt.Errorf("FromDocument(factor %d): %w", fi, err)
			}
			A, err := denseFromRows(fd.A[i])
			if err != nil {
				return nil, fmt.Errorf("FromDocument(factor %d, %s): %w", fi, ks, err)
			}
			terms[i] = Term{Key: k, A: A}
		}
		f, err := NewJacobianFactor(terms, fd.B, model)
		if err != nil {
			return nil, fmt.Errorf("FromDocument(factor %d): %w", fi, err)
		}
		g.factors = append(g.factors, f)
	}
	return g, nil
}

// WriteJSON encodes the graph document as indented JSON.
func (g *GaussianFactorGraph) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(g.Document())
}

// WriteYAML encodes the graph document as YAML.
func (g *GaussianFactorGraph) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(g.Document()); err != nil {
		return err
	}
	return enc.Close()
}

// ReadJSON decodes a graph written by WriteJSON.
func ReadJSON(r io.Reader) (*GaussianFactorGraph, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("ReadJSON: %w", err)
	}
	return FromDocument(doc)
}

// ReadYAML decodes a graph written by WriteYAML.
func ReadYAML(r io.Reader) (*GaussianFactorGraph, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("ReadYAML: %w", err)
	}
	return FromDocument(doc)
}

// denseFromRows builds a dense matrix from rectangular row slices.
func denseFromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrDimensionMismatch
	}
	c := len(rows[0])
	data := make([]float64, 0, len(rows)*c)
	for _, row := range rows {
		if len(row) != c {
			return nil, ErrDimensionMismatch
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), c, data), nil
}
