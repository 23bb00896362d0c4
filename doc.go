// Package covex is the linear-algebra foundation of a quantum-circuit
// simulator: dense, mutable complex-number matrices and the algebra a
// simulator needs on top of them.
//
// Everything is organized under a single subpackage:
//
//	matrix/ — dense complex128 matrices: construction, bounds-checked
//	          access, arithmetic (add/sub/multiply/scale), structural
//	          transforms (transpose, conjugate transpose, Kronecker
//	          product), Gauss–Jordan reduction, cofactor determinants,
//	          inversion, and structural classification (Hermitian,
//	          unitary, normal, ...).
//
// Design principles:
//
//   - Deep-copy semantics everywhere — constructors and accessors never
//     alias another matrix's storage.
//   - Fail-fast validation with package sentinel errors; check them with
//     errors.Is. No panics on user-triggered conditions.
//   - Pure Go — no cgo, no hidden deps beyond test tooling.
//
// Matrices are single-owner values: in-place operators replace a matrix's
// storage wholesale, so concurrent mutation of the same matrix requires
// external synchronization by the caller.
package covex
