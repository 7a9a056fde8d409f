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

// Package fr contains field arithmetic operations for modulus = 0x73eda7...000001.
//
// The modulus is hardcoded in all the operations.
//
//	Modulus r =
//
//		r[base10] = 52435875175126190479447740508185965837690552500527637822603658699938581184513
//		r[base16] = 0x73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001
//
// r is the prime order of the G1/G2 subgroups of BLS12-381. Elements are
// backed by math/big and always hold the canonical residue in [0, r); every
// operation writes its result into fresh storage. See package fp for the
// storage and constant-time conventions, which this package shares.
package fr

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

// Element represents a field element mod r.
//
// The zero value is the field's additive identity and ready to use.
type Element struct {
	v big.Int
}

const (
	// Bytes is the number of bytes needed to represent a canonical element.
	// It is also the digest width of the Fiat-Shamir challenge hash, so
	// scalar ladders scan 8·Bytes = 256 bit positions.
	Bytes = 32

	// Bits is the number of bits needed to represent a canonical element.
	Bits = 255
)

// ErrInvalidString is returned by SetHex when its input is not a plain
// hexadecimal string.
var ErrInvalidString = errors.New("fr: invalid hex string")

var (
	rElement *big.Int

	// r - 2, the Fermat inversion exponent.
	rMinusTwo *big.Int
)

func init() {
	rElement, _ = new(big.Int).SetString("73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)
	rMinusTwo = new(big.Int).Sub(rElement, big.NewInt(2))
}

// Modulus returns r as a big.Int.
func Modulus() *big.Int {
	return new(big.Int).Set(rElement)
}

// One returns 1.
func One() Element {
	var one Element
	one.SetOne()
	return one
}

// Set z = x and returns z.
func (z *Element) Set(x *Element) *Element {
	var r big.Int
	r.Set(&x.v)
	z.v = r
	return z
}

// SetZero z = 0.
func (z *Element) SetZero() *Element {
	z.v = big.Int{}
	return z
}

// SetOne z = 1.
func (z *Element) SetOne() *Element {
	return z.SetUint64(1)
}

// SetUint64 sets z to v and returns z.
func (z *Element) SetUint64(v uint64) *Element {
	var r big.Int
	r.SetUint64(v)
	z.v = r
	return z
}

// SetUint128 sets z to hi·2⁶⁴ + lo and returns z.
func (z *Element) SetUint128(hi, lo uint64) *Element {
	var r, l big.Int
	r.SetUint64(hi)
	r.Lsh(&r, 64)
	l.SetUint64(lo)
	r.Or(&r, &l)
	z.v = r
	return z
}

// SetBigInt sets z to v mod r and returns z.
func (z *Element) SetBigInt(v *big.Int) *Element {
	var r big.Int
	r.Mod(v, rElement)
	z.v = r
	return z
}

// SetHex parses a plain hexadecimal string (no 0x prefix, no sign) and sets
// z to its value reduced mod r. Values ≥ r are reduced, not rejected.
func (z *Element) SetHex(s string) (*Element, error) {
	if len(s) == 0 || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return nil, ErrInvalidString
	}
	var r big.Int
	if _, ok := r.SetString(s, 16); !ok {
		return nil, ErrInvalidString
	}
	r.Mod(&r, rElement)
	z.v = r
	return z, nil
}

// SetBytes interprets b as a big-endian unsigned integer, reduces it mod r
// and returns z. This is the digest-to-challenge path of the Fiat-Shamir
// transcript hash.
func (z *Element) SetBytes(b []byte) *Element {
	var r big.Int
	r.SetBytes(b)
	r.Mod(&r, rElement)
	z.v = r
	return z
}

// SetBytesLE interprets b as a little-endian unsigned integer, reduces it
// mod r and returns z.
func (z *Element) SetBytesLE(b []byte) *Element {
	rev := make([]byte, len(b))
	for i := range b {
		rev[i] = b[len(b)-1-i]
	}
	return z.SetBytes(rev)
}

// SetRandom sets z to a uniformly random element and returns z.
//
// The value is drawn from crypto/rand; sixteen extra bytes are read so the
// reduction bias is negligible.
func (z *Element) SetRandom() (*Element, error) {
	b := make([]byte, Bytes+16)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return z.SetBytes(b), nil
}

// Bytes returns the canonical residue of z as a fixed big-endian byte array.
func (z *Element) Bytes() [Bytes]byte {
	var res [Bytes]byte
	z.v.FillBytes(res[:])
	return res
}

// Marshal returns the canonical residue of z as a big-endian byte slice.
func (z *Element) Marshal() []byte {
	b := z.Bytes()
	return b[:]
}

// BigInt sets res to the canonical residue of z and returns res.
func (z *Element) BigInt(res *big.Int) *big.Int {
	return res.Set(&z.v)
}

// Bit returns the i-th bit of the canonical residue of z, least significant
// bit first. Ladders consume bits from the highest index down.
func (z *Element) Bit(i uint64) uint64 {
	return uint64(z.v.Bit(int(i)))
}

// Equal returns z == x.
func (z *Element) Equal(x *Element) bool {
	return z.v.Cmp(&x.v) == 0
}

// IsZero returns z == 0.
func (z *Element) IsZero() bool {
	return z.v.Sign() == 0
}

// IsOne returns z == 1.
func (z *Element) IsOne() bool {
	return z.v.Cmp(big.NewInt(1)) == 0
}

// String returns the decimal representation of z.
func (z *Element) String() string {
	return z.v.String()
}

// Add z = x + y (mod r).
func (z *Element) Add(x, y *Element) *Element {
	var r big.Int
	r.Add(&x.v, &y.v)
	r.Mod(&r, rElement)
	z.v = r
	return z
}

// Double z = 2·x (mod r).
func (z *Element) Double(x *Element) *Element {
	return z.Add(x, x)
}

// Sub z = x - y (mod r).
func (z *Element) Sub(x, y *Element) *Element {
	var r big.Int
	r.Sub(&x.v, &y.v)
	r.Mod(&r, rElement)
	z.v = r
	return z
}

// Neg z = -x (mod r).
func (z *Element) Neg(x *Element) *Element {
	var r big.Int
	r.Neg(&x.v)
	r.Mod(&r, rElement)
	z.v = r
	return z
}

// Mul z = x·y (mod r).
func (z *Element) Mul(x, y *Element) *Element {
	var r big.Int
	r.Mul(&x.v, &y.v)
	r.Mod(&r, rElement)
	z.v = r
	return z
}

// Square z = x² (mod r).
func (z *Element) Square(x *Element) *Element {
	return z.Mul(x, x)
}

// Exp z = x^k (mod r), by square-and-multiply over all 64 exponent bits.
func (z *Element) Exp(x *Element, k uint64) *Element {
	var res Element
	res.SetOne()
	var base Element
	base.Set(x)
	for i := 63; i >= 0; i-- {
		res.Square(&res)
		if (k>>uint(i))&1 == 1 {
			res.Mul(&res, &base)
		}
	}
	z.v = res.v
	return z
}

// Inverse z = x⁻¹ (mod r) by Fermat's little theorem, z = x^(r-2).
//
// The exponentiation runs a fixed 255-iteration ladder whose branches depend
// only on the public constant r-2, so the control flow never depends on x.
// By convention Inverse(0) = 0, which the chain yields naturally.
func (z *Element) Inverse(x *Element) *Element {
	var res Element
	res.SetOne()
	var base Element
	base.Set(x)
	for i := Bits - 1; i >= 0; i-- {
		res.Square(&res)
		if rMinusTwo.Bit(i) == 1 {
			res.Mul(&res, &base)
		}
	}
	z.v = res.v
	return z
}
