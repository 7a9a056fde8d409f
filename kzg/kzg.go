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

// Package kzg implements a hiding variant of the Kate-Zaverucha-Goldberg
// polynomial commitment scheme, specialised to zero-knowledge set membership.
//
// A committer encodes a set as the vanishing polynomial phi with the set
// elements as roots, masks it with a random polynomial phiHat of equal
// length committed on a second basis, and publishes a single digest of both.
// A query at a point k is answered with a constant size witness: for members
// the masking evaluation phiHat(k) is revealed, for non-members a Schnorr
// proof shows phi(k) != 0 without revealing anything else about the set.
// Verification takes two pairings and the VerifiableKey only.
//
// See Kate, Zaverucha and Goldberg, "Constant-Size Commitments to
// Polynomials and Their Applications" (Asiacrypt 2010),
// https://cacr.uwaterloo.ca/techreports/2010/cacr2010-10.pdf
package kzg

import (
	"crypto/rand"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/consensys/zkzg/curve"
	"github.com/consensys/zkzg/logger"
)

// VerifiableKey carries the public parameters of the scheme. The powers are
// stored in descending order, matching the polynomial convention: GPowers[i]
// is [α^(degree-i)]·g1, so the last entry is g1 itself.
type VerifiableKey struct {
	GPowers []curve.Point
	HPowers []curve.Point // same powers over H1
	H1      curve.Point   // blinding generator ρ·g1 with ρ unknown
	AlphaG2 curve.Point   // α·g2, right side of the pairing checks
}

// Degree returns the largest polynomial degree the key supports.
func (pk *VerifiableKey) Degree() int {
	return len(pk.GPowers) - 1
}

// Option configures the randomized operations of the package.
type Option func(*options)

type options struct {
	rand io.Reader
}

// WithRand sets the randomness source. It defaults to crypto/rand.Reader;
// tests inject deterministic streams here.
func WithRand(random io.Reader) Option {
	return func(o *options) {
		o.rand = random
	}
}

func buildOptions(opts ...Option) options {
	o := options{rand: rand.Reader}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// Setup generates a VerifiableKey for polynomials up to the given degree.
// The trapdoor α and the discrete log of H1 are drawn from the randomness
// source and discarded on return; production deployments obtain the powers
// from a multi-party ceremony instead.
func Setup(cv curve.Curve, degree uint64, opts ...Option) (*VerifiableKey, error) {
	if degree > 1<<32 {
		return nil, errors.Errorf("kzg: unsupported degree %d", degree)
	}
	opt := buildOptions(opts...)
	log := logger.Logger().With().Str("curve", cv.Name()).Uint64("degree", degree).Logger()
	start := time.Now()

	alpha, err := cv.RandomScalar(opt.rand)
	if err != nil {
		return nil, errors.Wrap(err, "kzg: sampling trapdoor")
	}
	rho, err := cv.RandomScalar(opt.rand)
	if err != nil {
		return nil, errors.Wrap(err, "kzg: sampling blinding generator")
	}

	g1 := cv.G1()
	pk := &VerifiableKey{
		GPowers: make([]curve.Point, degree+1),
		HPowers: make([]curve.Point, degree+1),
		H1:      g1.Mul(rho),
		AlphaG2: cv.G2().Mul(alpha),
	}
	power := cv.ScalarFromUint64(1)
	for i := len(pk.GPowers) - 1; i >= 0; i-- {
		pk.GPowers[i] = g1.Mul(power)
		pk.HPowers[i] = pk.H1.Mul(power)
		power = power.Mul(alpha)
	}

	log.Debug().Dur("took", time.Since(start)).Msg("kzg setup done")
	return pk, nil
}

// Commitment is the committer's state after CommitZK. Digest is the public
// commitment; Phi and PhiHat stay private and are needed to answer queries.
type Commitment struct {
	Digest curve.Point
	Phi    Polynomial
	PhiHat Polynomial
}

// CommitZK commits to a set of scalars. The digest binds the vanishing
// polynomial of the set on the G powers and hides it behind a random
// polynomial of equal length on the H powers. Duplicate set elements become
// repeated roots.
func CommitZK(cv curve.Curve, pk *VerifiableKey, set []curve.Scalar, opts ...Option) (*Commitment, error) {
	if len(set) == 0 {
		return nil, errors.New("kzg: empty set")
	}
	opt := buildOptions(opts...)
	phi := Vanishing(cv, set)
	phiHat, err := RandomPolynomial(cv, len(phi), opt.rand)
	if err != nil {
		return nil, err
	}
	cg, err := commitPoly(cv, phi, pk.GPowers)
	if err != nil {
		return nil, err
	}
	ch, err := commitPoly(cv, phiHat, pk.HPowers)
	if err != nil {
		return nil, err
	}
	return &Commitment{Digest: cg.Add(ch), Phi: phi, PhiHat: phiHat}, nil
}

// commitPoly commits poly on a descending power basis: the leading
// coefficient pairs with basis[len(basis)-len(poly)].
func commitPoly(cv curve.Curve, poly Polynomial, basis []curve.Point) (curve.Point, error) {
	if len(poly) > len(basis) {
		return nil, errors.Errorf("kzg: polynomial length %d exceeds key size %d", len(poly), len(basis))
	}
	acc := cv.G1Infinity()
	offset := len(basis) - len(poly)
	for i, c := range poly {
		acc = acc.Add(basis[offset+i].Mul(c))
	}
	return acc, nil
}

// Opening is an evaluation of the committed pair at one point together with
// its constant size witness.
type Opening struct {
	K       curve.Scalar
	PhiK    curve.Scalar
	PhiHatK curve.Scalar
	Witness curve.Point
}

// CreateWitness opens the committed pair at k. The witness commits the two
// quotients (phi - phi(k))/(x - k) and (phiHat - phiHat(k))/(x - k) on
// their respective bases.
func CreateWitness(cv curve.Curve, pk *VerifiableKey, phi, phiHat Polynomial, k curve.Scalar) (*Opening, error) {
	phiK := phi.Eval(cv, k)
	phiHatK := phiHat.Eval(cv, k)
	wg, err := commitPoly(cv, phi.Psi(k, phiK), pk.GPowers)
	if err != nil {
		return nil, err
	}
	wh, err := commitPoly(cv, phiHat.Psi(k, phiHatK), pk.HPowers)
	if err != nil {
		return nil, err
	}
	return &Opening{K: k, PhiK: phiK, PhiHatK: phiHatK, Witness: wg.Add(wh)}, nil
}

// Proof answers a query at K. Exactly one branch is set: PhiHatK when K is
// in the committed set, NonMember when it is not.
type Proof struct {
	K         curve.Scalar
	Witness   curve.Point
	PhiHatK   curve.Scalar
	NonMember *NonMembershipProof
}

// NonMembershipProof shows phi(K) != 0 without revealing the evaluations.
// P1 and P2 carry them blinded into the group; the Schnorr data proves
// knowledge of a representation of P1 + P2 over the bases g1 and H1.
type NonMembershipProof struct {
	P1, P2 curve.Point
	N1, N2 curve.Point
	S1, S2 curve.Scalar
}

// QueryZK answers a query at k against a commitment. Membership is decided
// by phi(k) == 0, which holds exactly when k is a root of the committed
// vanishing polynomial.
func QueryZK(cv curve.Curve, pk *VerifiableKey, com *Commitment, k curve.Scalar, opts ...Option) (*Proof, error) {
	op, err := CreateWitness(cv, pk, com.Phi, com.PhiHat, k)
	if err != nil {
		return nil, err
	}
	if op.PhiK.IsZero() {
		return &Proof{K: k, Witness: op.Witness, PhiHatK: op.PhiHatK}, nil
	}
	_, sp, err := SchnorrProve(cv, pk, op.PhiK, op.PhiHatK, opts...)
	if err != nil {
		return nil, err
	}
	return &Proof{
		K:       k,
		Witness: op.Witness,
		NonMember: &NonMembershipProof{
			P1: cv.G1().Mul(op.PhiK),
			P2: pk.H1.Mul(op.PhiHatK),
			N1: sp.N1, N2: sp.N2,
			S1: sp.S1, S2: sp.S2,
		},
	}, nil
}

// VerifyZK checks a query answer against the public digest.
//
// For members the revealed masking evaluation must open the digest at K
// with phi(K) = 0. For non-members the Schnorr proof must hold for P1 + P2
// and the witness must open the digest to that sum; P1 = infinity is
// rejected outright, since it would encode phi(K) = 0, a membership the
// committer chose to deny.
func VerifyZK(cv curve.Curve, pk *VerifiableKey, digest curve.Point, proof *Proof) bool {
	if digest == nil || proof == nil || proof.K == nil || proof.Witness == nil {
		return false
	}
	if proof.NonMember == nil {
		if proof.PhiHatK == nil {
			return false
		}
		return VerifyEval(cv, pk, digest, proof.K, cv.ScalarFromUint64(0), proof.PhiHatK, proof.Witness)
	}
	nm := proof.NonMember
	if nm.P1 == nil || nm.P2 == nil || nm.N1 == nil || nm.N2 == nil || nm.S1 == nil || nm.S2 == nil {
		return false
	}
	if nm.P1.IsInfinity() {
		return false
	}
	z := nm.P1.Add(nm.P2)
	if !SchnorrVerify(cv, pk, z, nm.N1, nm.N2, nm.S1, nm.S2) {
		return false
	}
	left := cv.Pair(proof.Witness, pk.AlphaG2.Sub(cv.G2().Mul(proof.K)))
	right := cv.Pair(digest.Sub(z), cv.G2())
	return left.Equal(right)
}

// VerifyEval checks that the committed pair evaluates to (phiK, phiHatK) at
// k: e(W, αg2 - k·g2) == e(digest - phiK·g1 - phiHatK·H1, g2).
func VerifyEval(cv curve.Curve, pk *VerifiableKey, digest curve.Point, k, phiK, phiHatK curve.Scalar, witness curve.Point) bool {
	if digest == nil || k == nil || phiK == nil || phiHatK == nil || witness == nil {
		return false
	}
	left := cv.Pair(witness, pk.AlphaG2.Sub(cv.G2().Mul(k)))
	opened := cv.G1().Mul(phiK).Add(pk.H1.Mul(phiHatK))
	right := cv.Pair(digest.Sub(opened), cv.G2())
	return left.Equal(right)
}
