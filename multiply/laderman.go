package multiply

import "github.com/katalvlaran/trimul/mat3"

// MultiplyLaderman computes C = A·B with Laderman's rank-23 bilinear
// algorithm (Laderman, 1976) — the minimum multiplication count known for
// exact, non-commutative 3×3 multiplication.
//
// Structure:
//  1. Six linear combinations of A's entries (t0..t5) and six of B's
//     entries (u0..u5).
//  2. 23 signed scalar products m0..m22 between (possibly preprocessed)
//     linear combinations of A-terms and B-terms.
//  3. Nine aggregation combinations v0..v8 shared between outputs.
//  4. Nine output combinations, each from 2–4 signed aggregated terms.
//
// The sign conventions are the algorithmic contract. Which preprocessed
// term feeds which product, and which aggregation feeds which output
// entry, must stay exactly as written: turning any addition into a
// subtraction (or vice versa) silently yields wrong results with no
// runtime error. Preserve the unary negations too — they keep each product
// in its published signed form.
//
// Cost: 23 multiplications and 60 additions/subtractions (12 preprocessing
// + 20 inside products + 9 aggregation + 19 output), independent of input.
//
// Numeric contract: equals MultiplyStandard within 1e-9 absolute error on
// unit-scale inputs.
//
// Complexity: Time O(1) (fixed 83 scalar operations), Memory O(1).
func MultiplyLaderman(a, b mat3.Mat3) mat3.Mat3 {
	return ladermanKernel(passthrough{}, a, b)
}

// ladermanKernel is the rank-23 formulation written against a scalar
// evaluator. Entries are named 1-indexed: aij = A[i-1][j-1].
func ladermanKernel[E ops](e E, a, b mat3.Mat3) mat3.Mat3 {
	a11, a12, a13 := a[0][0], a[0][1], a[0][2]
	a21, a22, a23 := a[1][0], a[1][1], a[1][2]
	a31, a32, a33 := a[2][0], a[2][1], a[2][2]

	b11, b12, b13 := b[0][0], b[0][1], b[0][2]
	b21, b22, b23 := b[1][0], b[1][1], b[1][2]
	b31, b32, b33 := b[2][0], b[2][1], b[2][2]

	// Preprocessing: six combinations per operand (12 adds).
	t0 := e.sub(a11, a21)
	t1 := e.add(a22, a23)
	t2 := e.add(a31, a33)
	t3 := e.add(a12, a13)
	t4 := e.sub(a32, t1)
	t5 := e.add(t0, t2)

	u0 := e.sub(b11, b13)
	u1 := e.sub(b22, b32)
	u2 := e.add(b12, u0)
	u3 := e.sub(b23, b33)
	u4 := e.add(b31, u3)
	u5 := e.add(u1, u2)

	// The 23 signed products (23 mults, 20 adds inside the factors).
	m0 := e.mul(-t3, -b32)
	m1 := e.mul(e.sub(e.add(-a21, a22), a32), -u1)
	m2 := e.mul(e.sub(a12, a21), u5)
	m3 := e.mul(-t0, -u0)
	m4 := e.mul(-a23, u3)
	m5 := e.mul(e.add(a33, t4), b32)
	m6 := e.mul(-a33, e.add(e.add(-b13, b32), b33))
	m7 := e.mul(t4, e.add(b23, b32))
	m8 := e.mul(-a32, -b21)
	m9 := e.mul(e.add(a12, a23), -u4)
	m10 := e.mul(-t5, e.sub(b13, b31))
	m11 := e.mul(-a31, b12)
	m12 := e.mul(e.add(e.sub(a13, a23), t5), -b31)
	m13 := e.mul(e.add(-a11, a12), u2)
	m14 := e.mul(-a21, b13)
	m15 := e.mul(e.add(a31, t0), e.sub(b11, b31))
	m16 := e.mul(a32, e.add(b22, b23))
	m17 := e.mul(t3, e.add(-b31, b33))
	m18 := e.mul(-t2, b13)
	m19 := e.mul(-a12, e.sub(e.add(-b21, u4), u5))
	m20 := e.mul(e.add(-a12, a22), b21)
	m21 := e.mul(-t1, -b23)
	m22 := e.mul(a21, e.add(b12, u1))

	// Aggregations shared between output entries (9 adds).
	v0 := e.sub(m4, m14)
	v1 := e.add(m2, m22)
	v2 := e.add(m7, m21)
	v3 := e.sub(m9, v0)
	v4 := e.sub(m10, m18)
	v5 := e.sub(m3, v1)
	v6 := e.sub(m5, v2)
	v7 := e.add(m12, v3)
	v8 := e.add(v4, v7)

	// Output combinations (19 adds).
	return mat3.Mat3{
		{
			e.sub(e.add(m19, v5), v8),
			e.sub(e.sub(m0, m13), v5),
			e.sub(m17, v8),
		},
		{
			e.sub(e.sub(e.add(m19, m20), v1), v3),
			e.sub(e.add(e.add(-m1, m16), m22), v2),
			e.add(m21, v0),
		},
		{
			e.add(e.add(e.add(-m3, m8), m15), v4),
			e.add(e.add(-m11, m16), v6),
			e.sub(e.sub(-m6, m18), v6),
		},
	}
}

// ladermanAlgorithm adapts MultiplyLaderman to the Algorithm interface.
type ladermanAlgorithm struct{}

func (ladermanAlgorithm) Multiply(a, b mat3.Mat3) mat3.Mat3 { return MultiplyLaderman(a, b) }
func (ladermanAlgorithm) Variant() Variant                  { return Laderman }
