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

// GT is the target group of the pairing, the subgroup of order r of (Fp¹²)*.
type GT = E12

// Pair computes the optimal ate pairing e(p, q). Either argument at
// infinity yields the identity of GT.
func Pair(p *G1Affine, q *G2Affine) GT {
	f := MillerLoop(p, q)
	return FinalExponentiation(&f)
}

// MillerLoop accumulates the line functions f_{x₀,q}(p) over the 64-bit
// curve seed, without the final exponentiation. The G2 accumulator stays in
// affine coordinates on the twist and the G1 argument is lifted to the twist
// once per line evaluation. The seed is negative, which surfaces as a single
// conjugation at the end.
func MillerLoop(p *G1Affine, q *G2Affine) GT {
	var result GT
	result.SetOne()
	if p.Infinity || q.Infinity {
		return result
	}

	var acc G2Affine
	acc.Set(q)

	var l GT
	for i := 62; i >= 0; i-- {
		// doubling step: tangent at acc, then 2·acc
		lineDouble(&l, &acc, p)
		acc.Double(&acc)
		result.Square(&result).Mul(&result, &l)

		if loopParameter>>uint(i)&1 == 1 {
			// addition step: chord through acc and q, then acc+q
			lineAdd(&l, &acc, q, p)
			acc.Add(&acc, q)
			result.Mul(&result, &l)
		}
	}

	result.Conjugate(&result)
	return result
}

// lineDouble evaluates the tangent line to the twist at acc on the lifted
// point p.
func lineDouble(l *GT, acc *G2Affine, p *G1Affine) {
	// λ = 3x² / 2y
	var xx, num, den, lambda E2
	xx.Square(&acc.X)
	num.Double(&xx).Add(&num, &xx)
	den.Double(&acc.Y)
	lambda.Inverse(&den).Mul(&lambda, &num)

	evalLine(l, &lambda, acc, p)
}

// lineAdd evaluates the chord through acc and q on the lifted point p.
func lineAdd(l *GT, acc, q *G2Affine, p *G1Affine) {
	// λ = (qy - accy) / (qx - accx)
	var num, den, lambda E2
	num.Sub(&q.Y, &acc.Y)
	den.Sub(&q.X, &acc.X)
	lambda.Inverse(&den).Mul(&lambda, &num)

	evalLine(l, &lambda, acc, p)
}

// evalLine assembles y - λx - b evaluated at the lift of p, where the line
// of slope λ passes through acc, so b = acc.Y - λ·acc.X. The lift of
// (px, py) through the M-twist is (px·v, py·vw), which keeps everything on
// the twist equation y² = x³ + 4(u+1) over Fp¹². The result is sparse:
//
//	C0.B0 ← λ·acc.X - acc.Y
//	C0.B1 ← -λ·px
//	C1.B1 ← py
//
// Any constant factor of the line is in a proper subfield and dies in the
// final exponentiation, so the overall sign is immaterial.
func evalLine(l *GT, lambda *E2, acc *G2Affine, p *G1Affine) {
	l.SetZero()
	l.C0.B0.Mul(lambda, &acc.X).Sub(&l.C0.B0, &acc.Y)
	l.C0.B1.MulByElement(lambda, &p.X).Neg(&l.C0.B1)
	l.C1.B1.SetElement(&p.Y)
}

// FinalExponentiation raises a Miller loop output to (p¹²-1)/r times the
// cofactor 3 of Hayashida, Hayasaka and Teruya
// (https://eprint.iacr.org/2020/875.pdf). The cofactor is coprime to r, so
// pairing equalities are unaffected, and the exponent is the one
// gnark-crypto uses, making the two curve backends agree value for value.
func FinalExponentiation(m *GT) GT {
	var z GT
	z.Set(m)

	// easy part: m^((p⁶-1)(p²+1)). The input is not yet of norm one, so
	// this is the one genuine Fp¹² inversion of the pairing.
	var t0, inv GT
	t0.Conjugate(&z)
	inv.Inverse(&z)
	t0.Mul(&t0, &inv)
	z.FrobeniusSquare(&t0)
	z.Mul(&z, &t0)

	// hard part: ^3(p⁴-p²+1)/r through the addition chain for
	// (x₀-1)²(x₀+p)(x₀²+p²-1) + 3. All operands are now of norm one, so
	// conjugation is inversion.
	var t1, t2 GT
	t0.Square(&z)
	t1.expByHalfSeed(&t0)
	t2.Conjugate(&z)
	t1.Mul(&t1, &t2)
	t2.expBySeed(&t1)
	t1.Conjugate(&t1)
	t1.Mul(&t1, &t2)
	t2.expBySeed(&t1)
	t1.Frobenius(&t1)
	t1.Mul(&t1, &t2)
	z.Mul(&z, &t0)
	t0.expBySeed(&t1)
	t2.expBySeed(&t0)
	t0.FrobeniusSquare(&t1)
	t1.Conjugate(&t1)
	t1.Mul(&t1, &t2)
	t1.Mul(&t1, &t0)
	z.Mul(&z, &t1)

	return z
}

// expBySeed sets z = x^x₀ for x of norm one. The seed is negative, hence
// the conjugation after the ladder.
func (z *E12) expBySeed(x *E12) *E12 {
	var s fr.Element
	s.SetUint64(loopParameter)
	z.Exp(x, &s)
	return z.Conjugate(z)
}

// expByHalfSeed sets z = x^(x₀/2) for x of norm one.
func (z *E12) expByHalfSeed(x *E12) *E12 {
	var s fr.Element
	s.SetUint64(loopParameter / 2)
	z.Exp(x, &s)
	return z.Conjugate(z)
}
