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
	"math/big"

	"github.com/consensys/zkzg/ecc/bls381/fp"
)

// E2 is a degree two finite field extension of fp.Element, A0 + A1·u with
// u² = -1.
type E2 struct {
	A0, A1 fp.Element
}

// Equal returns true if z equals x.
func (z *E2) Equal(x *E2) bool {
	return z.A0.Equal(&x.A0) && z.A1.Equal(&x.A1)
}

// IsZero returns true if both coefficients are zero.
func (z *E2) IsZero() bool {
	return z.A0.IsZero() && z.A1.IsZero()
}

// String puts E2 in string form.
func (z *E2) String() string {
	return z.A0.String() + "+" + z.A1.String() + "*u"
}

// Set sets z to x and returns z.
func (z *E2) Set(x *E2) *E2 {
	z.A0.Set(&x.A0)
	z.A1.Set(&x.A1)
	return z
}

// SetZero sets z to 0 and returns z.
func (z *E2) SetZero() *E2 {
	z.A0.SetZero()
	z.A1.SetZero()
	return z
}

// SetOne sets z to 1 in Fp², i.e. (1, 0), and returns z.
func (z *E2) SetOne() *E2 {
	z.A0.SetOne()
	z.A1.SetZero()
	return z
}

// SetElement embeds x from the base field, z = (x, 0), and returns z.
func (z *E2) SetElement(x *fp.Element) *E2 {
	z.A0.Set(x)
	z.A1.SetZero()
	return z
}

// SetRandom sets z to a uniformly random element and returns z.
func (z *E2) SetRandom() (*E2, error) {
	if _, err := z.A0.SetRandom(); err != nil {
		return nil, err
	}
	if _, err := z.A1.SetRandom(); err != nil {
		return nil, err
	}
	return z, nil
}

// Add sets z = x + y and returns z.
func (z *E2) Add(x, y *E2) *E2 {
	z.A0.Add(&x.A0, &y.A0)
	z.A1.Add(&x.A1, &y.A1)
	return z
}

// Sub sets z = x - y and returns z.
func (z *E2) Sub(x, y *E2) *E2 {
	z.A0.Sub(&x.A0, &y.A0)
	z.A1.Sub(&x.A1, &y.A1)
	return z
}

// Double sets z = 2·x and returns z.
func (z *E2) Double(x *E2) *E2 {
	z.A0.Double(&x.A0)
	z.A1.Double(&x.A1)
	return z
}

// Neg sets z = -x and returns z.
func (z *E2) Neg(x *E2) *E2 {
	z.A0.Neg(&x.A0)
	z.A1.Neg(&x.A1)
	return z
}

// Conjugate sets z = Conj(x), i.e. (A0, -A1), and returns z. Conjugation is
// an involution and coincides with the p-power Frobenius on Fp².
func (z *E2) Conjugate(x *E2) *E2 {
	z.A0.Set(&x.A0)
	z.A1.Neg(&x.A1)
	return z
}

// Mul sets z = x·y = (ac - bd) + (ad + bc)u and returns z.
func (z *E2) Mul(x, y *E2) *E2 {
	var ac, bd, ad, bc fp.Element
	ac.Mul(&x.A0, &y.A0)
	bd.Mul(&x.A1, &y.A1)
	ad.Mul(&x.A0, &y.A1)
	bc.Mul(&x.A1, &y.A0)
	z.A0.Sub(&ac, &bd)
	z.A1.Add(&ad, &bc)
	return z
}

// Square sets z = x² and returns z.
func (z *E2) Square(x *E2) *E2 {
	return z.Mul(x, x)
}

// MulByElement sets z = x·y where y is in the base field, and returns z.
func (z *E2) MulByElement(x *E2, y *fp.Element) *E2 {
	z.A0.Mul(&x.A0, y)
	z.A1.Mul(&x.A1, y)
	return z
}

// MulByNonResidue sets z = x·ξ where ξ = 1 + u is the sextic non-residue
// defining the Fp⁶ tower, i.e. z = (a - b) + (a + b)u, and returns z.
func (z *E2) MulByNonResidue(x *E2) *E2 {
	var a0, a1 fp.Element
	a0.Sub(&x.A0, &x.A1)
	a1.Add(&x.A0, &x.A1)
	z.A0.Set(&a0)
	z.A1.Set(&a1)
	return z
}

// Inverse sets z = x⁻¹ via the norm, n = a² + b², z = (a·n⁻¹, -b·n⁻¹), and
// returns z. Inverse(0) = 0, inherited from the base field convention.
func (z *E2) Inverse(x *E2) *E2 {
	var n, a2, b2, ninv fp.Element
	a2.Square(&x.A0)
	b2.Square(&x.A1)
	n.Add(&a2, &b2)
	ninv.Inverse(&n)
	z.A0.Mul(&x.A0, &ninv)
	var t fp.Element
	t.Mul(&x.A1, &ninv)
	z.A1.Neg(&t)
	return z
}

// Exp sets z = x^k, scanning k's bits left to right. k is public data (the
// only caller derives Frobenius coefficients at init), so the variable
// length is harmless.
func (z *E2) Exp(x *E2, k *big.Int) *E2 {
	var res E2
	res.SetOne()
	var base E2
	base.Set(x)
	for i := k.BitLen() - 1; i >= 0; i-- {
		res.Square(&res)
		if k.Bit(i) == 1 {
			res.Mul(&res, &base)
		}
	}
	return z.Set(&res)
}
