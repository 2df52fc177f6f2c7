// Package trimul is a small, exact kernel library for 3×3 matrix
// multiplication — three algebraically distinct algorithms, per-call
// operation accounting, a cost-model selector, and a reproducible
// verification harness.
//
// 🚀 What is trimul?
//
//	A deterministic, side-effect-free library that brings together:
//		• mat3/     — fixed-size Mat3/Mat2 value types with checked ingestion
//		• multiply/ — Standard (27 mult), Strassen-block (26 mult) and
//		  Laderman (23 mult) kernels behind one Algorithm interface,
//		  plus operation tallies and a weighted-cost selector
//		• verify/   — seeded correctness sweeps against the standard oracle
//		• metrics/  — flat metric records for downstream sinks
//
// ✨ Why choose trimul?
//
//   - Exact bilinear identities — the published Strassen and Laderman
//     formulations are reproduced term for term, not re-derived
//   - Measured, not assumed — operation tallies come from the same formula
//     text that computes the results
//   - Pure Go — no cgo, no hidden deps, no global random state
//   - Reproducible — every randomized sweep is keyed by an explicit seed
//
// Quick taste:
//
//	a := mat3.Identity()
//	b := mat3.Ones()
//	c, tally, _ := multiply.MultiplyWithCount(multiply.Laderman, a, b)
//	fmt.Println(c, tally.Multiplications) // b, 23
//
// See the per-package doc.go files for algorithm outlines and pitfalls,
// and examples/ for runnable walkthroughs.
//
//	go get github.com/katalvlaran/trimul
package trimul
