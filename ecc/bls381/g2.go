/*
Copyright © 2020 ConsenSys

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package bls381

import (
	"github.com/consensys/zkzg/ecc/bls381/fr"
)

// G2Affine is a point on the twist y² = x³ + 4(1+u) over Fp2, in affine
// coordinates with an explicit flag for the point at infinity. When the
// flag is set the coordinates are ignored.
type G2Affine struct {
	X, Y     E2
	Infinity bool
}

// Set p = a and returns p.
func (p *G2Affine) Set(a *G2Affine) *G2Affine {
	p.X.Set(&a.X)
	p.Y.Set(&a.Y)
	p.Infinity = a.Infinity
	return p
}

// SetInfinity sets p to the group identity and returns p.
func (p *G2Affine) SetInfinity() *G2Affine {
	p.X.SetZero()
	p.Y.SetZero()
	p.Infinity = true
	return p
}

// IsInfinity returns true if p is the group identity.
func (p *G2Affine) IsInfinity() bool {
	return p.Infinity
}

// Equal compares the infinity flags first and the coordinates only when
// both points are finite.
func (p *G2Affine) Equal(a *G2Affine) bool {
	if p.Infinity || a.Infinity {
		return p.Infinity == a.Infinity
	}
	return p.X.Equal(&a.X) && p.Y.Equal(&a.Y)
}

// Neg sets p = -a, flipping the sign of Y and preserving the infinity flag,
// and returns p.
func (p *G2Affine) Neg(a *G2Affine) *G2Affine {
	p.X.Set(&a.X)
	p.Y.Neg(&a.Y)
	p.Infinity = a.Infinity
	return p
}

// IsOnCurve returns true if p satisfies y² = x³ + 4(1+u). The point at
// infinity is on the curve.
func (p *G2Affine) IsOnCurve() bool {
	if p.Infinity {
		return true
	}
	var left, right E2
	left.Square(&p.Y)
	right.Square(&p.X).Mul(&right, &p.X).Add(&right, &bTwistCurveCoeff)
	return left.Equal(&right)
}

// Double sets p = 2·a and returns p.
func (p *G2Affine) Double(a *G2Affine) *G2Affine {
	if a.Infinity {
		return p.SetInfinity()
	}
	if a.Y.IsZero() {
		// 2-torsion point, the tangent is vertical
		return p.SetInfinity()
	}

	// λ = 3x² / 2y
	var xx, num, den, lambda E2
	xx.Square(&a.X)
	num.Double(&xx).Add(&num, &xx)
	den.Double(&a.Y)
	lambda.Inverse(&den).Mul(&lambda, &num)

	// x3 = λ² - 2x
	var x3, y3, t E2
	x3.Square(&lambda)
	t.Double(&a.X)
	x3.Sub(&x3, &t)

	// y3 = λ(x - x3) - y
	y3.Sub(&a.X, &x3).Mul(&y3, &lambda).Sub(&y3, &a.Y)

	p.X.Set(&x3)
	p.Y.Set(&y3)
	p.Infinity = false
	return p
}

// Add sets p = a + b and returns p.
func (p *G2Affine) Add(a, b *G2Affine) *G2Affine {
	if a.Infinity {
		return p.Set(b)
	}
	if b.Infinity {
		return p.Set(a)
	}

	if a.X.Equal(&b.X) {
		var negY E2
		negY.Neg(&b.Y)
		if a.Y.Equal(&negY) {
			// vertical chord
			return p.SetInfinity()
		}
		// same point, the chord degenerates to the tangent
		return p.Double(a)
	}

	// λ = (by - ay) / (bx - ax)
	var num, den, lambda E2
	num.Sub(&b.Y, &a.Y)
	den.Sub(&b.X, &a.X)
	lambda.Inverse(&den).Mul(&lambda, &num)

	// x3 = λ² - ax - bx
	var x3, y3 E2
	x3.Square(&lambda).Sub(&x3, &a.X).Sub(&x3, &b.X)

	// y3 = λ(ax - x3) - ay
	y3.Sub(&a.X, &x3).Mul(&y3, &lambda).Sub(&y3, &a.Y)

	p.X.Set(&x3)
	p.Y.Set(&y3)
	p.Infinity = false
	return p
}

// Sub sets p = a - b and returns p.
func (p *G2Affine) Sub(a, b *G2Affine) *G2Affine {
	var nb G2Affine
	nb.Neg(b)
	return p.Add(a, &nb)
}

// ScalarMultiplication sets p = s·a using a left-to-right double-and-add
// ladder over all 256 bit positions of s, the accumulator starting at
// infinity.
func (p *G2Affine) ScalarMultiplication(a *G2Affine, s *fr.Element) *G2Affine {
	var acc G2Affine
	acc.SetInfinity()
	var base G2Affine
	base.Set(a)
	for i := 8*fr.Bytes - 1; i >= 0; i-- {
		acc.Double(&acc)
		if s.Bit(uint64(i)) == 1 {
			acc.Add(&acc, &base)
		}
	}
	return p.Set(&acc)
}

// String returns "O" for the point at infinity and E'([x, y]) otherwise.
func (p *G2Affine) String() string {
	if p.Infinity {
		return "O"
	}
	return "E'([" + p.X.String() + "," + p.Y.String() + "])"
}
