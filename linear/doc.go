// SPDX-License-Identifier: MIT

// Package linear holds the linear Gaussian factor-graph primitives.
//
// What:
//
//   - VectorValues: ordered Key → vector container (solutions, initial
//     estimates, observations). FromMap builds one from a plain Go map.
//   - JacobianFactor: a linear constraint A_1·x_1 + … + A_k·x_k ≈ b with a
//     Gaussian noise model; error(x) = ½‖W(Σ A_i x_i − b)‖².
//   - GaussianFactorGraph: an insertion-ordered collection of factors with
//     whole-graph error, key listing, and a dense whitened system (A, b) for
//     external least-squares solvers.
//   - Graphviz DOT and JSON/YAML document exports for inspection.
//
// Why:
//
//   - Keep graph construction separate from solving. Builders (see package
//     mrf) emit factors; any solver that accepts a dense or sparse least
//     squares system can consume Jacobian().
//
// Determinism:
//
//   - Factor order is insertion order; Keys() and NaturalOrdering are sorted
//     ascending; FromMap inserts in ascending key order. Output never depends
//     on Go map iteration order.
//
// Ownership:
//
//   - Every accessor returns copies; factors are immutable after
//     construction and a graph only grows.
//
// Errors:
//
//   - ErrDuplicateKey, ErrKeyNotFound (VectorValues).
//   - ErrNoKeys, ErrDuplicateFactorKey, ErrDimensionMismatch, ErrNilModel,
//     ErrNilFactor, ErrNaNInf (factors, graphs, assembly).
//
// Complexity:
//
//   - Insert/At: O(d) copy; Error: O(total factor size);
//     Jacobian: O(rows × cols) for the dense output.
package linear
