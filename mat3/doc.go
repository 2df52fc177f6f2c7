// Package mat3 provides the fixed-size matrix data model shared by every
// trimul kernel: Mat3 (3×3) and Mat2 (2×2) value types over float64.
//
// Design:
//
//   - Mat3 and Mat2 are plain arrays ([3][3]float64, [2][2]float64).
//     Passing them by value hands each kernel a private snapshot, so no
//     algorithm can mutate a caller's input and every multiply returns a
//     freshly built result. There is no mutex and no defensive copy.
//
//   - Raw indexing (m[i][j]) stays available for the arithmetic hot path;
//     the checked accessor At(i, j) exists for dynamically-indexed callers
//     and returns ErrOutOfRange instead of panicking.
//
//   - FromRows is the only dynamic ingestion point. It enforces the 3×3
//     shape (ErrDimension) and the finite-value policy (ErrNaNInf); a
//     statically-typed caller constructing Mat3 literals bypasses both
//     checks by design, since the type already guarantees the shape.
//
// Helpers:
//
//	Zero(), Identity(), Ones() — the fixed corpus matrices
//	MaxAbsDiff(a, b)           — entrywise max |a-b|, the harness metric
//	Equal(a, b, eps)           — MaxAbsDiff under a tolerance
//	a.Block11()                — leading 2×2 block (Strassen border split)
//
// All operations are pure and deterministic.
package mat3
