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

package curve

import (
	"bytes"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	"github.com/consensys/zkzg/ecc/bls381"
)

func genScalarBytes() gopter.Gen {
	return gopter.CombineGens(
		gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64(),
	).Map(func(vals []interface{}) []byte {
		buf := make([]byte, 32)
		for i, v := range vals {
			x := v.(uint64)
			for j := 0; j < 8; j++ {
				buf[i*8+j] = byte(x >> (8 * (7 - j)))
			}
		}
		return buf
	})
}

func TestBackendsAgreeOnGenerators(t *testing.T) {
	spec := NewSpecCurve()
	fast := NewFastCurve()

	require.Equal(t, spec.G1().Bytes(), fast.G1().Bytes())
	require.Equal(t, spec.G2().Bytes(), fast.G2().Bytes())
	require.Equal(t, spec.G1Infinity().Bytes(), fast.G1Infinity().Bytes())
	require.Equal(t, spec.G2Infinity().Bytes(), fast.G2Infinity().Bytes())

	require.True(t, spec.G1Infinity().IsInfinity())
	require.True(t, fast.G1Infinity().IsInfinity())
}

func TestBackendsAgreeOnGroupOps(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 10

	properties := gopter.NewProperties(parameters)

	spec := NewSpecCurve()
	fast := NewFastCurve()

	properties.Property("scalar reduction agrees", prop.ForAll(
		func(raw []byte) bool {
			return bytes.Equal(spec.ScalarFromBytes(raw).Bytes(), fast.ScalarFromBytes(raw).Bytes())
		},
		genScalarBytes(),
	))

	properties.Property("G1 scalar multiplication and addition agree", prop.ForAll(
		func(ra, rb []byte) bool {
			sa, sb := spec.ScalarFromBytes(ra), spec.ScalarFromBytes(rb)
			fa, fb := fast.ScalarFromBytes(ra), fast.ScalarFromBytes(rb)

			sp := spec.G1().Mul(sa).Add(spec.G1().Mul(sb))
			ff := fast.G1().Mul(fa).Add(fast.G1().Mul(fb))
			if !bytes.Equal(sp.Bytes(), ff.Bytes()) {
				return false
			}

			sd := spec.G1().Mul(sa).Sub(spec.G1().Mul(sb))
			fd := fast.G1().Mul(fa).Sub(fast.G1().Mul(fb))
			return bytes.Equal(sd.Bytes(), fd.Bytes())
		},
		genScalarBytes(),
		genScalarBytes(),
	))

	properties.Property("G2 scalar multiplication agrees", prop.ForAll(
		func(raw []byte) bool {
			sp := spec.G2().Mul(spec.ScalarFromBytes(raw))
			ff := fast.G2().Mul(fast.ScalarFromBytes(raw))
			return bytes.Equal(sp.Bytes(), ff.Bytes())
		},
		genScalarBytes(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Both backends use the cofactor-3 final exponentiation, so the reduced
// pairing values must agree coefficient for coefficient, not merely up to
// protocol equalities.
func TestBackendsAgreeOnPairing(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 4

	properties := gopter.NewProperties(parameters)

	spec := NewSpecCurve()
	fast := NewFastCurve()

	properties.Property("e(a·G1, b·G2) agrees across backends", prop.ForAll(
		func(ra, rb []byte) bool {
			se := spec.Pair(spec.G1().Mul(spec.ScalarFromBytes(ra)), spec.G2().Mul(spec.ScalarFromBytes(rb)))
			fe := fast.Pair(fast.G1().Mul(fast.ScalarFromBytes(ra)), fast.G2().Mul(fast.ScalarFromBytes(rb)))
			return bytes.Equal(se.Bytes(), fe.Bytes())
		},
		genScalarBytes(),
		genScalarBytes(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))

	se := spec.Pair(spec.G1(), spec.G2())
	fe := fast.Pair(fast.G1(), fast.G2())
	require.Equal(t, se.Bytes(), fe.Bytes())
	require.False(t, se.IsOne())
	require.False(t, fe.IsOne())

	require.True(t, spec.Pair(spec.G1Infinity(), spec.G2()).IsOne())
	require.True(t, fast.Pair(fast.G1Infinity(), fast.G2()).IsOne())
	require.True(t, spec.Pair(spec.G1(), spec.G2Infinity()).IsOne())
	require.True(t, fast.Pair(fast.G1(), fast.G2Infinity()).IsOne())
}

func TestBackendsAgreeOnChallenge(t *testing.T) {
	for _, opts := range [][]Option{
		nil,
		{WithHashFunc(sha3.New256)},
	} {
		spec := NewSpecCurve(opts...)
		fast := NewFastCurve(opts...)

		z := spec.G1().Mul(spec.ScalarFromUint64(7))
		n1 := spec.G1().Mul(spec.ScalarFromUint64(11))
		n2 := spec.G1().Mul(spec.ScalarFromUint64(13))
		h := spec.G1().Mul(spec.ScalarFromUint64(17))

		fz := fast.G1().Mul(fast.ScalarFromUint64(7))
		fn1 := fast.G1().Mul(fast.ScalarFromUint64(11))
		fn2 := fast.G1().Mul(fast.ScalarFromUint64(13))
		fh := fast.G1().Mul(fast.ScalarFromUint64(17))

		cs := spec.FiatShamirHash(z, n1, n2, h)
		cf := fast.FiatShamirHash(fz, fn1, fn2, fh)
		require.Equal(t, cs.Bytes(), cf.Bytes())
	}

	// the hash choice must matter
	sha2 := NewSpecCurve()
	keccak := NewSpecCurve(WithHashFunc(sha3.New256))
	z := sha2.G1()
	c2 := sha2.FiatShamirHash(z, z, z, z)
	c3 := keccak.FiatShamirHash(z, z, z, z)
	require.NotEqual(t, c2.Bytes(), c3.Bytes())
}

func TestScalarAlgebra(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20

	properties := gopter.NewProperties(parameters)

	for _, c := range []Curve{NewSpecCurve(), NewFastCurve()} {
		c := c
		properties.Property(c.Name()+": subtraction undoes addition", prop.ForAll(
			func(ra, rb []byte) bool {
				a, b := c.ScalarFromBytes(ra), c.ScalarFromBytes(rb)
				return a.Add(b).Sub(b).Equal(a)
			},
			genScalarBytes(),
			genScalarBytes(),
		))

		properties.Property(c.Name()+": a + (-a) vanishes", prop.ForAll(
			func(raw []byte) bool {
				a := c.ScalarFromBytes(raw)
				return a.Add(a.Neg()).IsZero()
			},
			genScalarBytes(),
		))

		properties.Property(c.Name()+": pow matches repeated multiplication", prop.ForAll(
			func(raw []byte) bool {
				a := c.ScalarFromBytes(raw)
				return a.Pow(3).Equal(a.Mul(a).Mul(a))
			},
			genScalarBytes(),
		))
	}

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestPointGroupIdentities(t *testing.T) {
	for _, c := range []Curve{NewSpecCurve(), NewFastCurve()} {
		p := c.G1().Mul(c.ScalarFromUint64(42))

		require.True(t, p.Sub(p).IsInfinity(), c.Name())
		require.True(t, p.Add(p.Neg()).IsInfinity(), c.Name())
		require.True(t, p.Add(c.G1Infinity()).Equal(p), c.Name())
		require.True(t, c.G1().Mul(c.ScalarFromUint64(0)).IsInfinity(), c.Name())
		require.True(t, c.G1().Mul(c.ScalarFromUint64(1)).Equal(c.G1()), c.Name())

		q := c.G2().Mul(c.ScalarFromUint64(42))
		require.True(t, q.Sub(q).IsInfinity(), c.Name())
	}
}

func TestPointDecoding(t *testing.T) {
	for _, c := range []Curve{NewSpecCurve(), NewFastCurve()} {
		p := c.G1().Mul(c.ScalarFromUint64(1234567))
		back, err := c.G1FromBytes(p.Bytes())
		require.NoError(t, err, c.Name())
		require.True(t, back.Equal(p), c.Name())

		inf, err := c.G1FromBytes(c.G1Infinity().Bytes())
		require.NoError(t, err, c.Name())
		require.True(t, inf.IsInfinity(), c.Name())

		q := c.G2().Mul(c.ScalarFromUint64(7654321))
		backq, err := c.G2FromBytes(q.Bytes())
		require.NoError(t, err, c.Name())
		require.True(t, backq.Equal(q), c.Name())

		// strictness parity
		_, err = c.G1FromBytes(nil)
		require.ErrorIs(t, err, bls381.ErrInvalidEncoding, c.Name())

		bad := p.Bytes()
		bad[len(bad)-1] = 0x05
		_, err = c.G1FromBytes(bad)
		require.ErrorIs(t, err, bls381.ErrInvalidEncoding, c.Name())

		off := make([]byte, bls381.SizeOfG1Affine)
		off[2*48-1] = 0x01 // (0, 1) misses the curve
		_, err = c.G1FromBytes(off)
		require.ErrorIs(t, err, bls381.ErrPointNotOnCurve, c.Name())
	}
}

func TestRandomScalarIsDeterministicInItsReader(t *testing.T) {
	seed := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}

	spec := NewSpecCurve()
	fast := NewFastCurve()

	a, err := spec.RandomScalar(bytes.NewReader(seed))
	require.NoError(t, err)
	b, err := fast.RandomScalar(bytes.NewReader(seed))
	require.NoError(t, err)
	require.Equal(t, a.Bytes(), b.Bytes())

	// 16 bytes stay below r, the draw is the integer itself
	want := spec.ScalarFromBytes(seed)
	require.True(t, a.Equal(want))

	_, err = spec.RandomScalar(bytes.NewReader(seed[:5]))
	require.Error(t, err)
}

func TestMixedBackendsPanic(t *testing.T) {
	spec := NewSpecCurve()
	fast := NewFastCurve()

	require.Panics(t, func() {
		spec.G1().Mul(fast.ScalarFromUint64(1))
	})
	require.Panics(t, func() {
		fast.G1().Add(spec.G1())
	})
	require.Panics(t, func() {
		// G2 point in a G1 slot
		spec.G1().Add(spec.G2())
	})
}

func TestScalarCanonicalDecoding(t *testing.T) {
	for _, c := range []Curve{NewSpecCurve(), NewFastCurve()} {
		s := c.ScalarFromUint64(42)
		back, err := c.ScalarFromBytesCanonical(s.Bytes())
		require.NoError(t, err, c.Name())
		require.True(t, back.Equal(s), c.Name())

		_, err = c.ScalarFromBytesCanonical([]byte{1, 2, 3})
		require.Error(t, err, c.Name())

		over := bytes.Repeat([]byte{0xff}, 32)
		_, err = c.ScalarFromBytesCanonical(over)
		require.Error(t, err, c.Name())
	}
}
