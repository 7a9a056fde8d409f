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

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/consensys/zkzg/curve"
)

func TestSchnorrRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 10

	properties := gopter.NewProperties(parameters)

	cv := curve.NewFastCurve()
	pk, err := Setup(cv, 1, WithRand(newTestStream()))
	require.NoError(t, err)

	properties.Property("honest proofs verify", prop.ForAll(
		func(aw, bw uint64) bool {
			a := cv.ScalarFromUint64(aw)
			b := cv.ScalarFromUint64(bw)
			z, sp, err := SchnorrProve(cv, pk, a, b)
			if err != nil {
				return false
			}
			return SchnorrVerify(cv, pk, z, sp.N1, sp.N2, sp.S1, sp.S2)
		},
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.Property("proving with a different secret fails against the original point", prop.ForAll(
		func(aw, bw uint64) bool {
			a := cv.ScalarFromUint64(aw)
			b := cv.ScalarFromUint64(bw)
			z := cv.G1().Mul(a).Add(pk.H1.Mul(b))

			forgedA := a.Add(cv.ScalarFromUint64(1))
			_, sp, err := SchnorrProve(cv, pk, forgedA, b)
			if err != nil {
				return false
			}
			return !SchnorrVerify(cv, pk, z, sp.N1, sp.N2, sp.S1, sp.S2)
		},
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.Property("tampering with a response fails", prop.ForAll(
		func(aw, bw uint64) bool {
			a := cv.ScalarFromUint64(aw)
			b := cv.ScalarFromUint64(bw)
			z, sp, err := SchnorrProve(cv, pk, a, b)
			if err != nil {
				return false
			}
			bad := sp.S1.Add(cv.ScalarFromUint64(1))
			return !SchnorrVerify(cv, pk, z, sp.N1, sp.N2, bad, sp.S2)
		},
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// The verification equation is total: with every point at infinity and zero
// responses it degenerates to infinity == infinity and must accept, while
// any nonzero response breaks it.
func TestSchnorrDegenerateInputs(t *testing.T) {
	for _, cv := range []curve.Curve{curve.NewSpecCurve(), curve.NewFastCurve()} {
		pk := &VerifiableKey{H1: cv.G1()}
		inf := cv.G1Infinity()
		zero := cv.ScalarFromUint64(0)
		one := cv.ScalarFromUint64(1)

		require.True(t, SchnorrVerify(cv, pk, inf, inf, inf, zero, zero), cv.Name())
		require.False(t, SchnorrVerify(cv, pk, inf, inf, inf, one, zero), cv.Name())
	}
}

func TestSchnorrNilInputs(t *testing.T) {
	cv := curve.NewFastCurve()
	pk, err := Setup(cv, 1, WithRand(newTestStream()))
	require.NoError(t, err)

	inf := cv.G1Infinity()
	zero := cv.ScalarFromUint64(0)

	require.False(t, SchnorrVerify(cv, nil, inf, inf, inf, zero, zero))
	require.False(t, SchnorrVerify(cv, pk, nil, inf, inf, zero, zero))
	require.False(t, SchnorrVerify(cv, pk, inf, inf, inf, nil, zero))
}
