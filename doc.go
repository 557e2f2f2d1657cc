// SPDX-License-Identifier: MIT

// Package cofactor is a small dense-matrix toolkit built around cofactor
// expansion: determinants, matrices of cofactors, adjugates and inverses
// computed exactly the way they are taught, plus the arithmetic needed to
// check them.
//
// Layout:
//
//	matrix/             - Dense value type, constructors, arithmetic, determinant family
//	internal/gridfile/  - YAML/TOML grid decoding into *matrix.Dense
//	cmd/matcalc/        - command-line calculator over grid files
//	examples/           - runnable walkthroughs (Leontief model, Cramer's rule)
//
// Quick start:
//
//	A, _ := matrix.New([][]float64{{1, 2}, {3, 4}})
//	det, _ := A.Determinant() // -2
//	inv, _ := A.Inverse()     // [[-2 1] [1.5 -0.5]]
//
// Determinants are expanded along the first row, so the cost grows as n!.
// The package targets small matrices where exact cofactor arithmetic matters
// more than speed.
package cofactor
