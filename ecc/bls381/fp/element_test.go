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

package fp

import (
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// genElement draws uniformly from the full field by reducing 384 random bits.
func genElement() gopter.Gen {
	return gen.SliceOfN(6, gen.UInt64()).Map(func(limbs []uint64) Element {
		var b [Bytes]byte
		for i, l := range limbs {
			binary.BigEndian.PutUint64(b[i*8:], l)
		}
		var e Element
		e.SetBytes(b[:])
		return e
	})
}

func TestElementArithmetic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("a + (-a) == 0", prop.ForAll(
		func(a Element) bool {
			var na, sum Element
			na.Neg(&a)
			sum.Add(&a, &na)
			return sum.IsZero()
		},
		genElement(),
	))

	properties.Property("a * inv(a) == 1 for a != 0", prop.ForAll(
		func(a Element) bool {
			if a.IsZero() {
				return true
			}
			var ia, prod Element
			ia.Inverse(&a)
			prod.Mul(&a, &ia)
			return prod.IsOne()
		},
		genElement(),
	))

	properties.Property("(a + b) - b == a", prop.ForAll(
		func(a, b Element) bool {
			var t Element
			t.Add(&a, &b)
			t.Sub(&t, &b)
			return t.Equal(&a)
		},
		genElement(),
		genElement(),
	))

	properties.Property("a * b == b * a", prop.ForAll(
		func(a, b Element) bool {
			var ab, ba Element
			ab.Mul(&a, &b)
			ba.Mul(&b, &a)
			return ab.Equal(&ba)
		},
		genElement(),
		genElement(),
	))

	properties.Property("square matches mul", prop.ForAll(
		func(a Element) bool {
			var s, m Element
			s.Square(&a)
			m.Mul(&a, &a)
			return s.Equal(&m)
		},
		genElement(),
	))

	properties.Property("exp(a, 3) == a*a*a", prop.ForAll(
		func(a Element) bool {
			var e, m Element
			e.Exp(&a, 3)
			m.Mul(&a, &a)
			m.Mul(&m, &a)
			return e.Equal(&m)
		},
		genElement(),
	))

	properties.Property("bytes round trip", prop.ForAll(
		func(a Element) bool {
			b := a.Bytes()
			var back Element
			back.SetBytes(b[:])
			return back.Equal(&a)
		},
		genElement(),
	))

	properties.Property("little-endian ingest matches reversed big-endian", prop.ForAll(
		func(a Element) bool {
			b := a.Bytes()
			rev := make([]byte, len(b))
			for i := range b {
				rev[i] = b[len(b)-1-i]
			}
			var back Element
			back.SetBytesLE(rev)
			return back.Equal(&a)
		},
		genElement(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestElementInverseOfZero(t *testing.T) {
	var z Element
	z.Inverse(&z)
	assert.True(t, z.IsZero(), "Inverse(0) must be 0 by convention")
}

func TestElementReduction(t *testing.T) {
	// q itself reduces to zero.
	var e Element
	e.SetBigInt(Modulus())
	assert.True(t, e.IsZero())

	// q - 1 + 1 wraps to zero.
	var qm1 Element
	qm1.SetBigInt(new(big.Int).Sub(Modulus(), big.NewInt(1)))
	one := One()
	var sum Element
	sum.Add(&qm1, &one)
	assert.True(t, sum.IsZero())
}

func TestElementSetHex(t *testing.T) {
	e, err := new(Element).SetHex("1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab")
	require.NoError(t, err)
	assert.True(t, e.IsZero(), "the modulus reduces to zero")

	e, err = new(Element).SetHex("0f")
	require.NoError(t, err)
	assert.Equal(t, "15", e.String())

	for _, bad := range []string{"", "xyz", "-ab", "+ab", "0x12"} {
		_, err := new(Element).SetHex(bad)
		assert.ErrorIs(t, err, ErrInvalidString, "input %q", bad)
	}
}

func TestElementSetUint128(t *testing.T) {
	var e Element
	e.SetUint128(1, 0)
	expected := new(big.Int).Lsh(big.NewInt(1), 64)
	var got big.Int
	assert.Equal(t, 0, e.BigInt(&got).Cmp(expected))

	e.SetUint128(0xffffffffffffffff, 0xffffffffffffffff)
	expected.Lsh(big.NewInt(1), 128)
	expected.Sub(expected, big.NewInt(1))
	assert.Equal(t, 0, e.BigInt(&got).Cmp(expected))
}

func TestElementBitConvention(t *testing.T) {
	var e Element
	e.SetUint64(6) // 0b110
	assert.Equal(t, uint64(0), e.Bit(0))
	assert.Equal(t, uint64(1), e.Bit(1))
	assert.Equal(t, uint64(1), e.Bit(2))
	assert.Equal(t, uint64(0), e.Bit(3))
}

func TestElementCopyIsIndependent(t *testing.T) {
	var a Element
	a.SetUint64(42)
	b := a
	b.Add(&b, &b)
	assert.Equal(t, "42", a.String(), "operating on a copy must not touch the original")
	assert.Equal(t, "84", b.String())
}
