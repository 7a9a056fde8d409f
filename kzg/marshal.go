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
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"

	"github.com/consensys/zkzg/curve"
)

// Wire forms hold curve elements as the byte encodings of the curve
// package, so both backends and any CBOR implementation agree on the
// layout.

type wireVerifiableKey struct {
	GPowers [][]byte
	HPowers [][]byte
	H1      []byte
	AlphaG2 []byte
}

type wireCommitment struct {
	Digest []byte
	Phi    [][]byte
	PhiHat [][]byte
}

type wireProof struct {
	K         []byte
	Witness   []byte
	PhiHatK   []byte
	NonMember *wireNonMembership
}

type wireNonMembership struct {
	P1, P2 []byte
	N1, N2 []byte
	S1, S2 []byte
}

var encMode = func() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// MarshalVerifiableKey encodes pk into canonical CBOR.
func MarshalVerifiableKey(pk *VerifiableKey) ([]byte, error) {
	if pk == nil || pk.H1 == nil || pk.AlphaG2 == nil {
		return nil, errors.New("kzg: incomplete verifiable key")
	}
	w := wireVerifiableKey{
		GPowers: make([][]byte, len(pk.GPowers)),
		HPowers: make([][]byte, len(pk.HPowers)),
		H1:      pk.H1.Bytes(),
		AlphaG2: pk.AlphaG2.Bytes(),
	}
	for i, p := range pk.GPowers {
		w.GPowers[i] = p.Bytes()
	}
	for i, p := range pk.HPowers {
		w.HPowers[i] = p.Bytes()
	}
	out, err := encMode.Marshal(w)
	return out, errors.Wrap(err, "kzg: encoding verifiable key")
}

// UnmarshalVerifiableKey decodes a key produced by MarshalVerifiableKey,
// rebuilding the points on the given backend.
func UnmarshalVerifiableKey(cv curve.Curve, data []byte) (*VerifiableKey, error) {
	var w wireVerifiableKey
	if err := cbor.Unmarshal(data, &w); err != nil {
		return nil, errors.Wrap(err, "kzg: decoding verifiable key")
	}
	pk := &VerifiableKey{
		GPowers: make([]curve.Point, len(w.GPowers)),
		HPowers: make([]curve.Point, len(w.HPowers)),
	}
	var err error
	for i, b := range w.GPowers {
		if pk.GPowers[i], err = cv.G1FromBytes(b); err != nil {
			return nil, errors.Wrap(err, "kzg: decoding verifiable key")
		}
	}
	for i, b := range w.HPowers {
		if pk.HPowers[i], err = cv.G1FromBytes(b); err != nil {
			return nil, errors.Wrap(err, "kzg: decoding verifiable key")
		}
	}
	if pk.H1, err = cv.G1FromBytes(w.H1); err != nil {
		return nil, errors.Wrap(err, "kzg: decoding verifiable key")
	}
	if pk.AlphaG2, err = cv.G2FromBytes(w.AlphaG2); err != nil {
		return nil, errors.Wrap(err, "kzg: decoding verifiable key")
	}
	return pk, nil
}

// MarshalCommitment encodes the committer state, private polynomials
// included. Only Digest is public; the result must be kept secret.
func MarshalCommitment(com *Commitment) ([]byte, error) {
	if com == nil || com.Digest == nil {
		return nil, errors.New("kzg: incomplete commitment")
	}
	w := wireCommitment{
		Digest: com.Digest.Bytes(),
		Phi:    make([][]byte, len(com.Phi)),
		PhiHat: make([][]byte, len(com.PhiHat)),
	}
	for i, c := range com.Phi {
		w.Phi[i] = c.Bytes()
	}
	for i, c := range com.PhiHat {
		w.PhiHat[i] = c.Bytes()
	}
	out, err := encMode.Marshal(w)
	return out, errors.Wrap(err, "kzg: encoding commitment")
}

// UnmarshalCommitment decodes committer state produced by MarshalCommitment.
func UnmarshalCommitment(cv curve.Curve, data []byte) (*Commitment, error) {
	var w wireCommitment
	if err := cbor.Unmarshal(data, &w); err != nil {
		return nil, errors.Wrap(err, "kzg: decoding commitment")
	}
	com := &Commitment{
		Phi:    make(Polynomial, len(w.Phi)),
		PhiHat: make(Polynomial, len(w.PhiHat)),
	}
	var err error
	if com.Digest, err = cv.G1FromBytes(w.Digest); err != nil {
		return nil, errors.Wrap(err, "kzg: decoding commitment")
	}
	for i, b := range w.Phi {
		if com.Phi[i], err = cv.ScalarFromBytesCanonical(b); err != nil {
			return nil, errors.Wrap(err, "kzg: decoding commitment")
		}
	}
	for i, b := range w.PhiHat {
		if com.PhiHat[i], err = cv.ScalarFromBytesCanonical(b); err != nil {
			return nil, errors.Wrap(err, "kzg: decoding commitment")
		}
	}
	return com, nil
}

// MarshalProof encodes a query answer into canonical CBOR. The absent
// branch encodes as null.
func MarshalProof(p *Proof) ([]byte, error) {
	if p == nil || p.K == nil || p.Witness == nil {
		return nil, errors.New("kzg: incomplete proof")
	}
	if (p.PhiHatK == nil) == (p.NonMember == nil) {
		return nil, errors.New("kzg: proof must carry exactly one branch")
	}
	w := wireProof{
		K:       p.K.Bytes(),
		Witness: p.Witness.Bytes(),
	}
	if p.PhiHatK != nil {
		w.PhiHatK = p.PhiHatK.Bytes()
	}
	if nm := p.NonMember; nm != nil {
		if nm.P1 == nil || nm.P2 == nil || nm.N1 == nil || nm.N2 == nil || nm.S1 == nil || nm.S2 == nil {
			return nil, errors.New("kzg: incomplete non-membership proof")
		}
		w.NonMember = &wireNonMembership{
			P1: nm.P1.Bytes(), P2: nm.P2.Bytes(),
			N1: nm.N1.Bytes(), N2: nm.N2.Bytes(),
			S1: nm.S1.Bytes(), S2: nm.S2.Bytes(),
		}
	}
	out, err := encMode.Marshal(w)
	return out, errors.Wrap(err, "kzg: encoding proof")
}

// UnmarshalProof decodes a proof, enforcing that exactly one of the
// membership branches is present.
func UnmarshalProof(cv curve.Curve, data []byte) (*Proof, error) {
	var w wireProof
	if err := cbor.Unmarshal(data, &w); err != nil {
		return nil, errors.Wrap(err, "kzg: decoding proof")
	}
	if (w.PhiHatK == nil) == (w.NonMember == nil) {
		return nil, errors.New("kzg: proof must carry exactly one branch")
	}
	p := &Proof{}
	var err error
	if p.K, err = cv.ScalarFromBytesCanonical(w.K); err != nil {
		return nil, errors.Wrap(err, "kzg: decoding proof")
	}
	if p.Witness, err = cv.G1FromBytes(w.Witness); err != nil {
		return nil, errors.Wrap(err, "kzg: decoding proof")
	}
	if w.PhiHatK != nil {
		if p.PhiHatK, err = cv.ScalarFromBytesCanonical(w.PhiHatK); err != nil {
			return nil, errors.Wrap(err, "kzg: decoding proof")
		}
		return p, nil
	}
	nm := &NonMembershipProof{}
	if nm.S1, err = cv.ScalarFromBytesCanonical(w.NonMember.S1); err != nil {
		return nil, errors.Wrap(err, "kzg: decoding proof")
	}
	if nm.S2, err = cv.ScalarFromBytesCanonical(w.NonMember.S2); err != nil {
		return nil, errors.Wrap(err, "kzg: decoding proof")
	}
	if nm.P1, err = cv.G1FromBytes(w.NonMember.P1); err != nil {
		return nil, errors.Wrap(err, "kzg: decoding proof")
	}
	if nm.P2, err = cv.G1FromBytes(w.NonMember.P2); err != nil {
		return nil, errors.Wrap(err, "kzg: decoding proof")
	}
	if nm.N1, err = cv.G1FromBytes(w.NonMember.N1); err != nil {
		return nil, errors.Wrap(err, "kzg: decoding proof")
	}
	if nm.N2, err = cv.G1FromBytes(w.NonMember.N2); err != nil {
		return nil, errors.Wrap(err, "kzg: decoding proof")
	}
	p.NonMember = nm
	return p, nil
}
