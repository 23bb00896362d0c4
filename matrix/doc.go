// Package matrix provides dense, mutable complex-number matrices and the
// linear algebra a quantum-circuit simulator builds on.
//
// The package provides:
//
//   - Dense, a row-major complex128 matrix with bounds-checked access,
//     deep-copy cloning, and builder-style in-place transforms.
//   - Pure kernels (Add, Sub, Mul, Scale, Hadamard, MatVec, Transpose,
//     ConjugateTranspose, Tensor) that allocate fresh results and never
//     mutate their operands.
//   - Gauss–Jordan reduction (RREF), cofactor-expansion determinants and
//     Gauss–Jordan inversion for the small matrices gate algebra produces.
//   - Structural classification: Hermitian, skew-Hermitian, unitary,
//     normal, identity, invertible, and friends.
//
// All user-triggered failures surface as package sentinel errors; match
// them with errors.Is. Validation precedes mutation: no operation leaves a
// matrix partially updated after returning an error.
//
// Matrices are single-owner values. In-place operators replace the backing
// grid wholesale, so concurrent use of one matrix requires external
// synchronization; distinct matrices never share storage.
package matrix
