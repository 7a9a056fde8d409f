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
	"github.com/pkg/errors"

	"github.com/consensys/zkzg/curve"
)

// SchnorrProof is a proof of knowledge of a representation z = a·g1 + b·H1.
// The challenge is recomputed by the verifier from the transcript, so only
// the nonce commitments and the responses travel.
type SchnorrProof struct {
	N1, N2 curve.Point
	S1, S2 curve.Scalar
}

// SchnorrProve proves knowledge of a and b with z = a·g1 + b·H1. It draws
// one nonce per base, commits N1 = r1·g1 and N2 = r2·H1, derives the
// challenge c from the transcript of z, N1, N2 and H1, and responds with
// s1 = r1 - c·a, s2 = r2 - c·b. The point z is returned alongside the proof.
func SchnorrProve(cv curve.Curve, pk *VerifiableKey, a, b curve.Scalar, opts ...Option) (curve.Point, *SchnorrProof, error) {
	opt := buildOptions(opts...)
	r1, err := cv.RandomScalar(opt.rand)
	if err != nil {
		return nil, nil, errors.Wrap(err, "kzg: sampling schnorr nonce")
	}
	r2, err := cv.RandomScalar(opt.rand)
	if err != nil {
		return nil, nil, errors.Wrap(err, "kzg: sampling schnorr nonce")
	}
	g1 := cv.G1()
	z := g1.Mul(a).Add(pk.H1.Mul(b))
	n1 := g1.Mul(r1)
	n2 := pk.H1.Mul(r2)
	c := cv.FiatShamirHash(z, n1, n2, pk.H1)
	proof := &SchnorrProof{
		N1: n1, N2: n2,
		S1: r1.Sub(c.Mul(a)),
		S2: r2.Sub(c.Mul(b)),
	}
	return z, proof, nil
}

// SchnorrVerify checks a proof of representation for z over the bases g1
// and pk.H1. With c = FiatShamirHash(z, n1, n2, pk.H1) it accepts exactly
// when
//
//	n1 + n2 == s1·g1 + s2·H1 + c·z
//
// The equation binds the sum of the responses, not each base on its own.
func SchnorrVerify(cv curve.Curve, pk *VerifiableKey, z, n1, n2 curve.Point, s1, s2 curve.Scalar) bool {
	if pk == nil || pk.H1 == nil || z == nil || n1 == nil || n2 == nil || s1 == nil || s2 == nil {
		return false
	}
	c := cv.FiatShamirHash(z, n1, n2, pk.H1)
	left := n1.Add(n2)
	right := cv.G1().Mul(s1).Add(pk.H1.Mul(s2)).Add(z.Mul(c))
	return left.Equal(right)
}
