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

// E6 is a degree three finite field extension of E2, B0 + B1·v + B2·v² with
// v³ = ξ = 1 + u.
type E6 struct {
	B0, B1, B2 E2
}

// Equal returns true if z equals x.
func (z *E6) Equal(x *E6) bool {
	return z.B0.Equal(&x.B0) && z.B1.Equal(&x.B1) && z.B2.Equal(&x.B2)
}

// IsZero returns true if all coefficients are zero.
func (z *E6) IsZero() bool {
	return z.B0.IsZero() && z.B1.IsZero() && z.B2.IsZero()
}

// String puts E6 in string form.
func (z *E6) String() string {
	return "(" + z.B0.String() + ")+(" + z.B1.String() + ")*v+(" + z.B2.String() + ")*v**2"
}

// Set sets z to x and returns z.
func (z *E6) Set(x *E6) *E6 {
	z.B0.Set(&x.B0)
	z.B1.Set(&x.B1)
	z.B2.Set(&x.B2)
	return z
}

// SetZero sets z to 0 and returns z.
func (z *E6) SetZero() *E6 {
	z.B0.SetZero()
	z.B1.SetZero()
	z.B2.SetZero()
	return z
}

// SetOne sets z to 1 and returns z.
func (z *E6) SetOne() *E6 {
	z.B0.SetOne()
	z.B1.SetZero()
	z.B2.SetZero()
	return z
}

// SetE2 embeds x from E2, z = (x, 0, 0), and returns z.
func (z *E6) SetE2(x *E2) *E6 {
	z.B0.Set(x)
	z.B1.SetZero()
	z.B2.SetZero()
	return z
}

// SetRandom sets z to a uniformly random element and returns z.
func (z *E6) SetRandom() (*E6, error) {
	if _, err := z.B0.SetRandom(); err != nil {
		return nil, err
	}
	if _, err := z.B1.SetRandom(); err != nil {
		return nil, err
	}
	if _, err := z.B2.SetRandom(); err != nil {
		return nil, err
	}
	return z, nil
}

// Add sets z = x + y and returns z.
func (z *E6) Add(x, y *E6) *E6 {
	z.B0.Add(&x.B0, &y.B0)
	z.B1.Add(&x.B1, &y.B1)
	z.B2.Add(&x.B2, &y.B2)
	return z
}

// Sub sets z = x - y and returns z.
func (z *E6) Sub(x, y *E6) *E6 {
	z.B0.Sub(&x.B0, &y.B0)
	z.B1.Sub(&x.B1, &y.B1)
	z.B2.Sub(&x.B2, &y.B2)
	return z
}

// Double sets z = 2·x and returns z.
func (z *E6) Double(x *E6) *E6 {
	z.B0.Double(&x.B0)
	z.B1.Double(&x.B1)
	z.B2.Double(&x.B2)
	return z
}

// Neg sets z = -x and returns z.
func (z *E6) Neg(x *E6) *E6 {
	z.B0.Neg(&x.B0)
	z.B1.Neg(&x.B1)
	z.B2.Neg(&x.B2)
	return z
}

// Mul sets z = x·y, a degree-2 polynomial product reduced by v³ = ξ:
//
//	z0 = x0y0 + ξ(x1y2 + x2y1)
//	z1 = x0y1 + x1y0 + ξ·x2y2
//	z2 = x0y2 + x1y1 + x2y0
func (z *E6) Mul(x, y *E6) *E6 {
	var x0y0, x0y1, x0y2, x1y0, x1y1, x1y2, x2y0, x2y1, x2y2 E2
	x0y0.Mul(&x.B0, &y.B0)
	x0y1.Mul(&x.B0, &y.B1)
	x0y2.Mul(&x.B0, &y.B2)
	x1y0.Mul(&x.B1, &y.B0)
	x1y1.Mul(&x.B1, &y.B1)
	x1y2.Mul(&x.B1, &y.B2)
	x2y0.Mul(&x.B2, &y.B0)
	x2y1.Mul(&x.B2, &y.B1)
	x2y2.Mul(&x.B2, &y.B2)

	var t, z0, z1, z2 E2
	t.Add(&x1y2, &x2y1)
	t.MulByNonResidue(&t)
	z0.Add(&x0y0, &t)

	t.MulByNonResidue(&x2y2)
	z1.Add(&x0y1, &x1y0).Add(&z1, &t)

	z2.Add(&x0y2, &x1y1).Add(&z2, &x2y0)

	z.B0.Set(&z0)
	z.B1.Set(&z1)
	z.B2.Set(&z2)
	return z
}

// Square sets z = x² and returns z.
func (z *E6) Square(x *E6) *E6 {
	return z.Mul(x, x)
}

// MulByE2 sets z = x·y where y spans E2, scaling each coefficient, and
// returns z.
func (z *E6) MulByE2(x *E6, y *E2) *E6 {
	z.B0.Mul(&x.B0, y)
	z.B1.Mul(&x.B1, y)
	z.B2.Mul(&x.B2, y)
	return z
}

// MulByNonResidue sets z = x·v, the shift (B0, B1, B2) → (ξ·B2, B0, B1),
// and returns z.
func (z *E6) MulByNonResidue(x *E6) *E6 {
	var b0, b1, b2 E2
	b0.MulByNonResidue(&x.B2)
	b1.Set(&x.B0)
	b2.Set(&x.B1)
	z.B0.Set(&b0)
	z.B1.Set(&b1)
	z.B2.Set(&b2)
	return z
}

// Inverse sets z = x⁻¹ using the cubic extension identity (Algorithm 17,
// https://eprint.iacr.org/2010/354.pdf): a single E2 inversion of the
// pseudo-norm d, then three multiplications. Inverse(0) = 0.
func (z *E6) Inverse(x *E6) *E6 {
	var c0, c1, c2, t E2

	// c0 = B0² - ξ·B1·B2
	t.Mul(&x.B1, &x.B2).MulByNonResidue(&t)
	c0.Square(&x.B0).Sub(&c0, &t)

	// c1 = ξ·B2² - B0·B1
	t.Square(&x.B2).MulByNonResidue(&t)
	c1.Mul(&x.B0, &x.B1)
	c1.Sub(&t, &c1)

	// c2 = B1² - B0·B2
	t.Mul(&x.B0, &x.B2)
	c2.Square(&x.B1).Sub(&c2, &t)

	// d = B0·c0 + ξ·(B2·c1 + B1·c2)
	var d E2
	d.Mul(&x.B2, &c1)
	t.Mul(&x.B1, &c2)
	d.Add(&d, &t).MulByNonResidue(&d)
	t.Mul(&x.B0, &c0)
	d.Add(&d, &t)

	var dinv E2
	dinv.Inverse(&d)

	z.B0.Mul(&c0, &dinv)
	z.B1.Mul(&c1, &dinv)
	z.B2.Mul(&c2, &dinv)
	return z
}
