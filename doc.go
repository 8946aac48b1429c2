// Package factorgraph builds linear Gaussian factor graphs, with a grid
// denoising Markov random field as the worked example.
//
// 🚀 What is factorgraph?
//
//	A small numeric toolkit on top of gonum that brings together:
//		• Keys: (character, index) symbols packed into one uint64
//		• Noise models: isotropic and diagonal Gaussian, with whitening
//		• Linear containers: VectorValues, JacobianFactor, GaussianFactorGraph
//		• Exports: whitened Jacobian (A, b), Graphviz DOT, JSON and YAML
//		• Builders: VectorValues from a map, M×N denoising MRFs
//
// Under the hood, everything is organized under four subpackages:
//
//	symbol/ - Key packing, parsing and ordering
//	noise/  - Gaussian noise models
//	linear/ - VectorValues, JacobianFactor, GaussianFactorGraph and exports
//	mrf/    - grid layout, row labels and the denoising MRF builder
//
// Quick ASCII example (2×2 grid, ■ = data factor, ─/│ = smoothness):
//
//	    ■a1───■a2
//	     │     │
//	    ■b1───■b2
//
//	represents 4 data factors and 4 smoothness factors.
//
// The mrfgen command (cmd/mrfgen) generates such graphs from flags or MRF_*
// environment variables and writes them as text, JSON, YAML or DOT.
//
//	go run github.com/katalvlaran/factorgraph/cmd/mrfgen generate -m 3 -n 4 -f dot
package factorgraph
