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
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/consensys/zkzg/curve"
	"github.com/consensys/zkzg/ecc/bls381"
)

func TestVerifiableKeyRoundTrip(t *testing.T) {
	cv := curve.NewFastCurve()

	pk, err := Setup(cv, 3, WithRand(newTestStream()))
	require.NoError(t, err)

	data, err := MarshalVerifiableKey(pk)
	require.NoError(t, err)

	back, err := UnmarshalVerifiableKey(cv, data)
	require.NoError(t, err)
	require.Equal(t, pk.Degree(), back.Degree())

	again, err := MarshalVerifiableKey(back)
	require.NoError(t, err)
	require.Equal(t, data, again)

	// decoding on the other backend yields the same key bytes
	spec, err := UnmarshalVerifiableKey(curve.NewSpecCurve(), data)
	require.NoError(t, err)
	crossed, err := MarshalVerifiableKey(spec)
	require.NoError(t, err)
	require.Equal(t, data, crossed)
}

// Field level variant of the byte equality checks: when the backends
// drift apart this pinpoints the offending wire field.
func TestWireKeyMatchesAcrossBackends(t *testing.T) {
	fast, err := Setup(curve.NewFastCurve(), 3, WithRand(newTestStream()))
	require.NoError(t, err)
	spec, err := Setup(curve.NewSpecCurve(), 3, WithRand(newTestStream()))
	require.NoError(t, err)

	fastData, err := MarshalVerifiableKey(fast)
	require.NoError(t, err)
	specData, err := MarshalVerifiableKey(spec)
	require.NoError(t, err)

	var fastWire, specWire wireVerifiableKey
	require.NoError(t, cbor.Unmarshal(fastData, &fastWire))
	require.NoError(t, cbor.Unmarshal(specData, &specWire))
	if diff := cmp.Diff(fastWire, specWire); diff != "" {
		t.Fatalf("backends disagree on the serialized key (-fast +spec):\n%s", diff)
	}
}

func TestCommitmentRoundTrip(t *testing.T) {
	cv := curve.NewFastCurve()

	pk, err := Setup(cv, 5, WithRand(newTestStream()))
	require.NoError(t, err)
	com, err := CommitZK(cv, pk, scalarSet(cv, 2, 5, 7), WithRand(newTestStream()))
	require.NoError(t, err)

	data, err := MarshalCommitment(com)
	require.NoError(t, err)
	back, err := UnmarshalCommitment(cv, data)
	require.NoError(t, err)

	// the restored state answers queries like the original
	proof, err := QueryZK(cv, pk, back, cv.ScalarFromUint64(9))
	require.NoError(t, err)
	require.True(t, VerifyZK(cv, pk, back.Digest, proof))

	again, err := MarshalCommitment(back)
	require.NoError(t, err)
	require.Equal(t, data, again)
}

func TestProofRoundTrip(t *testing.T) {
	cv := curve.NewFastCurve()

	pk, err := Setup(cv, 5, WithRand(newTestStream()))
	require.NoError(t, err)
	com, err := CommitZK(cv, pk, scalarSet(cv, 2, 5, 7), WithRand(newTestStream()))
	require.NoError(t, err)

	for _, k := range []uint64{5, 3} {
		proof, err := QueryZK(cv, pk, com, cv.ScalarFromUint64(k))
		require.NoError(t, err)

		data, err := MarshalProof(proof)
		require.NoError(t, err)
		back, err := UnmarshalProof(cv, data)
		require.NoError(t, err)

		require.True(t, VerifyZK(cv, pk, com.Digest, back))

		again, err := MarshalProof(back)
		require.NoError(t, err)
		require.Equal(t, data, again)
	}
}

func TestMarshalProofValidation(t *testing.T) {
	cv := curve.NewFastCurve()
	one := cv.ScalarFromUint64(1)
	g := cv.G1()

	_, err := MarshalProof(nil)
	require.Error(t, err)

	// no branch
	_, err = MarshalProof(&Proof{K: one, Witness: g})
	require.Error(t, err)

	// both branches
	_, err = MarshalProof(&Proof{K: one, Witness: g, PhiHatK: one, NonMember: &NonMembershipProof{}})
	require.Error(t, err)

	_, err = MarshalProof(&Proof{K: one, Witness: g, NonMember: &NonMembershipProof{}})
	require.Error(t, err)
}

func TestUnmarshalRejectsBadEncodings(t *testing.T) {
	cv := curve.NewFastCurve()

	_, err := UnmarshalProof(cv, []byte("not cbor at all"))
	require.Error(t, err)

	_, err = UnmarshalVerifiableKey(cv, []byte{0xff, 0xff})
	require.Error(t, err)

	// structurally valid CBOR with a truncated point
	data, err := encMode.Marshal(wireVerifiableKey{
		H1:      []byte{1, 2, 3},
		AlphaG2: make([]byte, bls381.SizeOfG2Affine),
	})
	require.NoError(t, err)
	_, err = UnmarshalVerifiableKey(cv, data)
	require.ErrorIs(t, err, bls381.ErrInvalidEncoding)

	// well formed coordinates that are not on the curve
	badPoint := make([]byte, bls381.SizeOfG1Affine)
	badPoint[len(badPoint)-2] = 1 // y = 1, finite flag
	data, err = encMode.Marshal(wireProof{
		K:       make([]byte, 32),
		Witness: badPoint,
		PhiHatK: make([]byte, 32),
	})
	require.NoError(t, err)
	_, err = UnmarshalProof(cv, data)
	require.ErrorIs(t, err, bls381.ErrPointNotOnCurve)

	// a proof must decode with exactly one branch present
	data, err = encMode.Marshal(wireProof{
		K:       make([]byte, 32),
		Witness: cv.G1().Bytes(),
	})
	require.NoError(t, err)
	_, err = UnmarshalProof(cv, data)
	require.Error(t, err)

	// non canonical scalar bytes (>= r) are rejected
	over := make([]byte, 32)
	for i := range over {
		over[i] = 0xff
	}
	data, err = encMode.Marshal(wireProof{
		K:       over,
		Witness: cv.G1().Bytes(),
		PhiHatK: make([]byte, 32),
	})
	require.NoError(t, err)
	_, err = UnmarshalProof(cv, data)
	require.Error(t, err)
}
