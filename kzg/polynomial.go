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

package kzg

import (
	"io"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/consensys/zkzg/curve"
)

// Polynomial holds coefficients in descending degree order: index 0 is the
// leading coefficient, the last entry is the constant term.
type Polynomial []curve.Scalar

// NewPolynomial lifts unsigned integer coefficients into the scalar field of
// cv, keeping the descending order.
func NewPolynomial[T constraints.Unsigned](cv curve.Curve, coeffs []T) Polynomial {
	p := make(Polynomial, len(coeffs))
	for i, c := range coeffs {
		p[i] = cv.ScalarFromUint64(uint64(c))
	}
	return p
}

// RandomPolynomial samples n coefficients from random. The result blinds
// commitments, so callers must hand in a cryptographic source.
func RandomPolynomial(cv curve.Curve, n int, random io.Reader) (Polynomial, error) {
	p := make(Polynomial, n)
	for i := range p {
		s, err := cv.RandomScalar(random)
		if err != nil {
			return nil, errors.Wrap(err, "kzg: sampling polynomial coefficient")
		}
		p[i] = s
	}
	return p, nil
}

// Vanishing builds the monic polynomial whose roots are exactly the given
// scalars, as the product of the linear factors (x - r).
func Vanishing(cv curve.Curve, roots []curve.Scalar) Polynomial {
	phi := Polynomial{cv.ScalarFromUint64(1)}
	for _, r := range roots {
		phi = phi.Mul(cv, Polynomial{cv.ScalarFromUint64(1), r.Neg()})
	}
	return phi
}

// Eval evaluates p at x with Horner's rule.
func (p Polynomial) Eval(cv curve.Curve, x curve.Scalar) curve.Scalar {
	acc := cv.ScalarFromUint64(0)
	for _, c := range p {
		acc = acc.Mul(x).Add(c)
	}
	return acc
}

// Mul returns the product of p and q by coefficient convolution.
func (p Polynomial) Mul(cv curve.Curve, q Polynomial) Polynomial {
	if len(p) == 0 || len(q) == 0 {
		return nil
	}
	out := make(Polynomial, len(p)+len(q)-1)
	zero := cv.ScalarFromUint64(0)
	for i := range out {
		out[i] = zero
	}
	for i := range p {
		for j := range q {
			out[i+j] = out[i+j].Add(p[i].Mul(q[j]))
		}
	}
	return out
}

// Psi divides p minus its value at x0 by (x - x0) using synthetic division.
// px0 must be the evaluation of p at x0; the division is then exact and the
// remainder slot is dropped.
func (p Polynomial) Psi(x0, px0 curve.Scalar) Polynomial {
	if len(p) == 0 {
		return nil
	}
	r := make(Polynomial, len(p))
	copy(r, p)
	r[len(r)-1] = r[len(r)-1].Sub(px0)
	q := make(Polynomial, len(r))
	q[0] = r[0]
	for i := 0; i+1 < len(r); i++ {
		q[i+1] = q[i].Mul(x0).Add(r[i+1])
	}
	return q[:len(q)-1]
}
