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

// Package bls381 implements the BLS12-381 pairing-friendly elliptic curve
// from first principles, in affine coordinates.
//
//	G1: y² = x³ + 4, over the 381-bit base field Fp
//	G2: y² = x³ + 4(u+1), over Fp², the M-twist
//	GT: a multiplicative subgroup of Fp¹²
//
// The extension tower is Fp² = Fp(u) with u² = -1, Fp⁶ = Fp²(v) with
// v³ = u+1 and Fp¹² = Fp⁶(w) with w² = v. The curve seed is
// x₀ = -0xd201000000010000.
//
// The package favors auditability over speed: affine group law with an
// explicit infinity flag, Fermat inversions and fixed-width ladders (see the
// fp package notes). Package curve exposes it side by side with a
// gnark-crypto backed implementation of the same operations.
package bls381

import (
	"github.com/consensys/zkzg/ecc"
	"github.com/consensys/zkzg/ecc/bls381/fp"
)

// ID bls381 ID
const ID = ecc.BLS381

// loopParameter is |x₀|, the absolute value of the curve seed. The seed
// itself is negative, which the Miller loop accounts for with a final
// conjugation.
const loopParameter uint64 = 0xd201000000010000

// bCurveCoeff: G1 curve equation coefficient, y² = x³ + 4.
var bCurveCoeff fp.Element

// bTwistCurveCoeff: G2 (twist) curve equation coefficient, 4(u+1).
var bTwistCurveCoeff E2

var (
	g1Gen G1Affine
	g2Gen G2Affine
)

func init() {
	bCurveCoeff.SetUint64(4)
	bTwistCurveCoeff.A0.SetUint64(4)
	bTwistCurveCoeff.A1.SetUint64(4)

	g1Gen.X = mustElement("17f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb")
	g1Gen.Y = mustElement("08b3f481e3aaa0f1a09e30ed741d8ae4fcf5e095d5d00af600db18cb2c04b3edd03cc744a2888ae40caa232946c5e7e1")

	g2Gen.X.A0 = mustElement("024aa2b2f08f0a91260805272dc51051c6e47ad4fa403b02b4510b647ae3d1770bac0326a805bbefd48056c8c121bdb8")
	g2Gen.X.A1 = mustElement("13e02b6052719f607dacd3a088274f65596bd0d09920b61ab5da61bbdc7f5049334cf11213945d57e5ac7d055d042b7e")
	g2Gen.Y.A0 = mustElement("0ce5d527727d6e118cc9cdc6da2e351aadfd9baa8cbdd3a76d429a695160d12c923ac9cc3baca289e193548608b82801")
	g2Gen.Y.A1 = mustElement("0606c4a02ea734cc32acd2b02bc28b99cb3e287e85a763af267492ab572e99ab3f370d275cec1da1aaa9075ff05f79be")
}

// Generators returns the canonical generators of the r-torsion subgroups of
// G1 and G2 (the "zcash" generators, shared with gnark-crypto and blst).
func Generators() (g1 G1Affine, g2 G2Affine) {
	g1.Set(&g1Gen)
	g2.Set(&g2Gen)
	return
}

func mustElement(s string) fp.Element {
	var e fp.Element
	if _, err := e.SetHex(s); err != nil {
		panic(err)
	}
	return e
}
