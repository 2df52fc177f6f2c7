package multiply

import "github.com/katalvlaran/trimul/mat3"

// MultiplyStrassenBlock computes C = A·B by block decomposition:
//
//	A = [A11 | u]    B = [B11 | x]
//	    [----+--]        [----+--]
//	    [ vᵗ | α]        [ yᵗ | β]
//
// with A11, B11 the leading 2×2 blocks, u, x 2×1 columns, vᵗ, yᵗ 1×2 rows
// and α, β scalar corners. Then:
//
//	C11 = A11·B11 + u·yᵗ   (2×2, Strassen + outer product)
//	C12 = A11·x   + u·β    (2×1)
//	C21 = vᵗ·B11  + α·yᵗ   (1×2)
//	C22 = vᵗ·x    + α·β    (scalar)
//
// A11·B11 uses the classical 7-product Strassen identities — the exact
// canonical m1..m7 and p11/p12/p21/p22 combinations, not merely any
// 7-product scheme. The borders are direct products.
//
// Cost: 26 multiplications (7 Strassen + 19 border) and 32 additions
// (18 Strassen + 5 border dot-products + 9 assembly), independent of input.
//
// Numeric contract: equals MultiplyStandard within 1e-9 absolute error on
// unit-scale inputs; any larger deviation is an implementation fault, not
// a legitimate rounding difference.
//
// Complexity: Time O(1) (fixed 58 scalar operations), Memory O(1).
func MultiplyStrassenBlock(a, b mat3.Mat3) mat3.Mat3 {
	return strassenKernel(passthrough{}, a, b)
}

// strassenKernel is the block decomposition written against a scalar
// evaluator. The m1..m7 products and their combinations follow Strassen's
// published 2×2 identities; do not resequence them.
func strassenKernel[E ops](e E, a, b mat3.Mat3) mat3.Mat3 {
	// Leading 2×2 blocks of A and B.
	a11, a12, a21, a22 := a[0][0], a[0][1], a[1][0], a[1][1]
	b11, b12, b21, b22 := b[0][0], b[0][1], b[1][0], b[1][1]

	// Borders: u, vᵗ, α from A; x, yᵗ, β from B.
	u0, u1 := a[0][2], a[1][2]
	v0, v1 := a[2][0], a[2][1]
	alpha := a[2][2]
	x0, x1 := b[0][2], b[1][2]
	y0, y1 := b[2][0], b[2][1]
	beta := b[2][2]

	// Strassen's 7 products (7 mults, 10 adds).
	m1 := e.mul(e.add(a11, a22), e.add(b11, b22))
	m2 := e.mul(e.add(a21, a22), b11)
	m3 := e.mul(a11, e.sub(b12, b22))
	m4 := e.mul(a22, e.sub(b21, b11))
	m5 := e.mul(e.add(a11, a12), b22)
	m6 := e.mul(e.sub(a21, a11), e.add(b11, b12))
	m7 := e.mul(e.sub(a12, a22), e.add(b21, b22))

	// Canonical combinations P = A11·B11 (8 adds).
	p11 := e.add(e.sub(e.add(m1, m4), m5), m7)
	p12 := e.add(m3, m5)
	p21 := e.add(m2, m4)
	p22 := e.add(e.add(e.sub(m1, m2), m3), m6)

	// Q = u·yᵗ, outer product (4 mults).
	q11 := e.mul(u0, y0)
	q12 := e.mul(u0, y1)
	q21 := e.mul(u1, y0)
	q22 := e.mul(u1, y1)

	// r = A11·x (4 mults, 2 adds).
	r0 := e.add(e.mul(a11, x0), e.mul(a12, x1))
	r1 := e.add(e.mul(a21, x0), e.mul(a22, x1))

	// s = u·β (2 mults).
	s0 := e.mul(u0, beta)
	s1 := e.mul(u1, beta)

	// t = vᵗ·B11 (4 mults, 2 adds).
	t0 := e.add(e.mul(v0, b11), e.mul(v1, b21))
	t1 := e.add(e.mul(v0, b12), e.mul(v1, b22))

	// w = α·yᵗ (2 mults).
	w0 := e.mul(alpha, y0)
	w1 := e.mul(alpha, y1)

	// z = vᵗ·x (2 mults, 1 add); γ = α·β (1 mult).
	z := e.add(e.mul(v0, x0), e.mul(v1, x1))
	gamma := e.mul(alpha, beta)

	// Assemble C11=P+Q, C12=r+s, C21=t+w, C22=z+γ (9 adds).
	return mat3.Mat3{
		{e.add(p11, q11), e.add(p12, q12), e.add(r0, s0)},
		{e.add(p21, q21), e.add(p22, q22), e.add(r1, s1)},
		{e.add(t0, w0), e.add(t1, w1), e.add(z, gamma)},
	}
}

// strassenAlgorithm adapts MultiplyStrassenBlock to the Algorithm interface.
type strassenAlgorithm struct{}

func (strassenAlgorithm) Multiply(a, b mat3.Mat3) mat3.Mat3 { return MultiplyStrassenBlock(a, b) }
func (strassenAlgorithm) Variant() Variant                  { return StrassenBlock }
