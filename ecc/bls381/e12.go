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
	"github.com/consensys/zkzg/ecc/bls381/fr"
)

// E12 is a degree two finite field extension of E6, C0 + C1·w with w² = v.
// It hosts GT, the target group of the pairing.
type E12 struct {
	C0, C1 E6
}

// gammaFrob[k] = ξ^(k(p-1)/6) for k = 1..5, the Frobenius scaling constants
// of the w, v, vw, v², v²w basis components. Derived once at init from the
// tower parameter; the e12 tests pin the first against its published value.
var gammaFrob [5]E2

func init() {
	var xi E2
	xi.A0.SetOne()
	xi.A1.SetOne()

	exp := new(big.Int).Sub(fp.Modulus(), big.NewInt(1))
	exp.Div(exp, big.NewInt(6))

	gammaFrob[0].Exp(&xi, exp)
	for k := 1; k < 5; k++ {
		gammaFrob[k].Mul(&gammaFrob[k-1], &gammaFrob[0])
	}
}

// Equal returns true if z equals x.
func (z *E12) Equal(x *E12) bool {
	return z.C0.Equal(&x.C0) && z.C1.Equal(&x.C1)
}

// IsZero returns true if both coefficients are zero.
func (z *E12) IsZero() bool {
	return z.C0.IsZero() && z.C1.IsZero()
}

// IsOne returns true if z is the multiplicative identity.
func (z *E12) IsOne() bool {
	var one E12
	one.SetOne()
	return z.Equal(&one)
}

// String puts E12 in string form.
func (z *E12) String() string {
	return "(" + z.C0.String() + ")+(" + z.C1.String() + ")*w"
}

// Set sets z to x and returns z.
func (z *E12) Set(x *E12) *E12 {
	z.C0.Set(&x.C0)
	z.C1.Set(&x.C1)
	return z
}

// SetZero sets z to 0 and returns z.
func (z *E12) SetZero() *E12 {
	z.C0.SetZero()
	z.C1.SetZero()
	return z
}

// SetOne sets z to 1 and returns z.
func (z *E12) SetOne() *E12 {
	z.C0.SetOne()
	z.C1.SetZero()
	return z
}

// SetE6 embeds x from E6, z = (x, 0), and returns z.
func (z *E12) SetE6(x *E6) *E12 {
	z.C0.Set(x)
	z.C1.SetZero()
	return z
}

// SetRandom sets z to a uniformly random element and returns z.
func (z *E12) SetRandom() (*E12, error) {
	if _, err := z.C0.SetRandom(); err != nil {
		return nil, err
	}
	if _, err := z.C1.SetRandom(); err != nil {
		return nil, err
	}
	return z, nil
}

// Add sets z = x + y and returns z.
func (z *E12) Add(x, y *E12) *E12 {
	z.C0.Add(&x.C0, &y.C0)
	z.C1.Add(&x.C1, &y.C1)
	return z
}

// Sub sets z = x - y and returns z.
func (z *E12) Sub(x, y *E12) *E12 {
	z.C0.Sub(&x.C0, &y.C0)
	z.C1.Sub(&x.C1, &y.C1)
	return z
}

// Neg sets z = -x and returns z.
func (z *E12) Neg(x *E12) *E12 {
	z.C0.Neg(&x.C0)
	z.C1.Neg(&x.C1)
	return z
}

// Conjugate sets z = Conj(x), i.e. (C0, -C1), and returns z. For elements
// of norm one (everything after the easy final exponentiation) conjugation
// is inversion.
func (z *E12) Conjugate(x *E12) *E12 {
	z.C0.Set(&x.C0)
	z.C1.Neg(&x.C1)
	return z
}

// Mul sets z = x·y = (c0d0 + v·c1d1) + (c0d1 + c1d0)w and returns z, where
// the w² = v folding uses the E6 non-residue shift.
func (z *E12) Mul(x, y *E12) *E12 {
	var c0d0, c1d1, c0d1, c1d0, t E6
	c0d0.Mul(&x.C0, &y.C0)
	c1d1.Mul(&x.C1, &y.C1)
	c0d1.Mul(&x.C0, &y.C1)
	c1d0.Mul(&x.C1, &y.C0)

	t.MulByNonResidue(&c1d1)
	z.C0.Add(&c0d0, &t)
	z.C1.Add(&c0d1, &c1d0)
	return z
}

// Square sets z = x² and returns z.
func (z *E12) Square(x *E12) *E12 {
	return z.Mul(x, x)
}

// Inverse sets z = x⁻¹ via the norm trick, n = C0² - v·C1², one E6
// inversion. Inverse(0) = 0.
func (z *E12) Inverse(x *E12) *E12 {
	var n, t E6
	t.Square(&x.C1).MulByNonResidue(&t)
	n.Square(&x.C0).Sub(&n, &t)

	var ninv E6
	ninv.Inverse(&n)

	z.C0.Mul(&x.C0, &ninv)
	t.Mul(&x.C1, &ninv)
	z.C1.Neg(&t)
	return z
}

// Exp sets z = x^k, scanning all 256 bit positions of the scalar from most
// significant to least significant. The iteration count never depends on
// the value of k (see the fp package constant-time notes).
func (z *E12) Exp(x *E12, k *fr.Element) *E12 {
	var res E12
	res.SetOne()
	var base E12
	base.Set(x)
	for i := 8*fr.Bytes - 1; i >= 0; i-- {
		res.Square(&res)
		if k.Bit(uint64(i)) == 1 {
			res.Mul(&res, &base)
		}
	}
	return z.Set(&res)
}

// Frobenius sets z = x^p: conjugate every E2 coefficient and scale the
// w, v, vw, v², v²w components by the gammaFrob constants.
func (z *E12) Frobenius(x *E12) *E12 {
	var t [6]E2
	t[0].Conjugate(&x.C0.B0)
	t[1].Conjugate(&x.C1.B0).Mul(&t[1], &gammaFrob[0])
	t[2].Conjugate(&x.C0.B1).Mul(&t[2], &gammaFrob[1])
	t[3].Conjugate(&x.C1.B1).Mul(&t[3], &gammaFrob[2])
	t[4].Conjugate(&x.C0.B2).Mul(&t[4], &gammaFrob[3])
	t[5].Conjugate(&x.C1.B2).Mul(&t[5], &gammaFrob[4])

	z.C0.B0.Set(&t[0])
	z.C0.B1.Set(&t[2])
	z.C0.B2.Set(&t[4])
	z.C1.B0.Set(&t[1])
	z.C1.B1.Set(&t[3])
	z.C1.B2.Set(&t[5])
	return z
}

// FrobeniusSquare sets z = x^(p²) by iterating Frobenius.
func (z *E12) FrobeniusSquare(x *E12) *E12 {
	z.Frobenius(x)
	return z.Frobenius(z)
}

// FrobeniusCube sets z = x^(p³) by iterating Frobenius.
func (z *E12) FrobeniusCube(x *E12) *E12 {
	z.FrobeniusSquare(x)
	return z.Frobenius(z)
}
