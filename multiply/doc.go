// Package multiply implements three algebraically distinct algorithms for
// exact 3×3 matrix multiplication, per-call operation accounting, and a
// cost-model-driven algorithm selector.
//
// The key algorithms offered are:
//
//	Standard
//	  Method: direct triple sum, C[i][j] = Σ_k A[i][k]·B[k][j].
//	  Cost:   27 multiplications, 18 additions.
//	  Role:   the reference oracle; cheapest in total operations.
//
//	StrassenBlock
//	  Method: classical 7-product Strassen on the leading 2×2 block,
//	          direct products for the 2×1/1×2/scalar borders.
//	  Cost:   26 multiplications, 32 additions.
//	  Role:   the block-decomposition trade, one multiplication saved
//	          for fourteen extra additions.
//
//	Laderman
//	  Method: the published rank-23 bilinear algorithm (Laderman, 1976):
//	          twelve preprocessing combinations, 23 signed products, nine
//	          aggregations, nine output combinations.
//	  Cost:   23 multiplications, 60 additions.
//	  Role:   the minimum-multiplication operating point; no exact general
//	          3×3 algorithm with fewer than 23 multiplications is known.
//
// # Exactness
//
// Both non-trivial kernels reproduce their published bilinear identities
// term for term. A flipped sign or swapped operand in any of the shared
// sub-products produces plausible-looking but wrong results without any
// runtime error, so the formulations here must not be "simplified" — the
// verify package exists to catch exactly that class of fault.
//
// # Operation accounting
//
// Every kernel is written once against a tiny scalar-operations evaluator.
// The public entry points instantiate it with a pass-through evaluator,
// MultiplyWithCount with a counting one. Tallies are therefore measured
// from the same formula text that computes results and cannot drift from
// the kernels. Binary additions and subtractions each count as one
// addition; unary negation is a sign flip and is not tallied.
//
// # API
//
//	func MultiplyStandard(a, b mat3.Mat3) mat3.Mat3
//	func MultiplyStrassenBlock(a, b mat3.Mat3) mat3.Mat3
//	func MultiplyLaderman(a, b mat3.Mat3) mat3.Mat3
//
//	func MultiplyWithCount(v Variant, a, b mat3.Mat3) (mat3.Mat3, Tally, error)
//	func New(v Variant) (Algorithm, error)
//	func Select(cm CostModel) (Variant, error)
//
// All multiply entry points are total over well-typed input: they never
// fail and never allocate beyond the returned value. Failure is confined
// to the configuration surface (ErrBadCostModel, ErrUnknownVariant).
//
// # Integration
//
//   - Operates on value types from github.com/katalvlaran/trimul/mat3.
//   - Cross-checked by github.com/katalvlaran/trimul/verify.
package multiply
