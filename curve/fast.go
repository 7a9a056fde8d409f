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
	"hash"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	gfp "github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	gfr "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/pkg/errors"

	"github.com/consensys/zkzg/ecc/bls381"
)

// FastCurve is the production backend over gnark-crypto. It shares the
// scalar, point and GT serialization of SpecCurve byte for byte, including
// the pairing value (both use the Hayashida-Hayasaka-Teruya cofactor-3
// final exponentiation).
type FastCurve struct {
	newHash func() hash.Hash
}

var _ Curve = (*FastCurve)(nil)

// NewFastCurve builds the gnark-crypto backend. The transcript hash
// defaults to SHA-256.
func NewFastCurve(opts ...Option) *FastCurve {
	o := buildOptions(opts...)
	return &FastCurve{newHash: o.newHash}
}

// Name implements Curve.
func (c *FastCurve) Name() string { return "bls381/gnark-crypto" }

// ScalarFromUint64 implements Curve.
func (c *FastCurve) ScalarFromUint64(v uint64) Scalar {
	var e gfr.Element
	e.SetUint64(v)
	return fastScalar{e}
}

// ScalarFromBytes implements Curve.
func (c *FastCurve) ScalarFromBytes(b []byte) Scalar {
	var e gfr.Element
	e.SetBytes(b)
	return fastScalar{e}
}

// ScalarFromBytesCanonical implements Curve.
func (c *FastCurve) ScalarFromBytesCanonical(b []byte) (Scalar, error) {
	var e gfr.Element
	if err := e.SetBytesCanonical(b); err != nil {
		return nil, errors.Wrap(err, "curve: decoding scalar")
	}
	return fastScalar{e}, nil
}

// RandomScalar implements Curve.
func (c *FastCurve) RandomScalar(rand io.Reader) (Scalar, error) {
	var buf [16]byte
	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		return nil, errors.Wrap(err, "curve: sampling scalar")
	}
	var e gfr.Element
	e.SetBytes(buf[:])
	return fastScalar{e}, nil
}

// G1 implements Curve.
func (c *FastCurve) G1() Point {
	_, _, g1, _ := bls12381.Generators()
	return fastG1{g1}
}

// G2 implements Curve.
func (c *FastCurve) G2() Point {
	_, _, _, g2 := bls12381.Generators()
	return fastG2{g2}
}

// G1Infinity implements Curve.
func (c *FastCurve) G1Infinity() Point {
	// the zero value (0,0) is gnark-crypto's affine point at infinity
	var p bls12381.G1Affine
	return fastG1{p}
}

// G2Infinity implements Curve.
func (c *FastCurve) G2Infinity() Point {
	var p bls12381.G2Affine
	return fastG2{p}
}

// G1FromBytes implements Curve. It applies the same strict checks as the
// spec backend and returns the same sentinel errors.
func (c *FastCurve) G1FromBytes(b []byte) (Point, error) {
	if len(b) != bls381.SizeOfG1Affine {
		return nil, bls381.ErrInvalidEncoding
	}

	var x, y big.Int
	x.SetBytes(b[:gfp.Bytes])
	y.SetBytes(b[gfp.Bytes : 2*gfp.Bytes])
	if x.Cmp(gfp.Modulus()) >= 0 || y.Cmp(gfp.Modulus()) >= 0 {
		return nil, bls381.ErrInvalidEncoding
	}

	switch b[bls381.SizeOfG1Affine-1] {
	case 0x01:
		if x.Sign() != 0 || y.Sign() != 0 {
			return nil, bls381.ErrInvalidEncoding
		}
		var p bls12381.G1Affine
		return fastG1{p}, nil
	case 0x00:
	default:
		return nil, bls381.ErrInvalidEncoding
	}

	var p bls12381.G1Affine
	p.X.SetBigInt(&x)
	p.Y.SetBigInt(&y)
	if !p.IsOnCurve() {
		return nil, bls381.ErrPointNotOnCurve
	}
	return fastG1{p}, nil
}

// G2FromBytes implements Curve.
func (c *FastCurve) G2FromBytes(b []byte) (Point, error) {
	if len(b) != bls381.SizeOfG2Affine {
		return nil, bls381.ErrInvalidEncoding
	}

	var coord [4]big.Int
	allZero := true
	for i := range coord {
		coord[i].SetBytes(b[i*gfp.Bytes : (i+1)*gfp.Bytes])
		if coord[i].Cmp(gfp.Modulus()) >= 0 {
			return nil, bls381.ErrInvalidEncoding
		}
		if coord[i].Sign() != 0 {
			allZero = false
		}
	}

	switch b[bls381.SizeOfG2Affine-1] {
	case 0x01:
		if !allZero {
			return nil, bls381.ErrInvalidEncoding
		}
		var p bls12381.G2Affine
		return fastG2{p}, nil
	case 0x00:
	default:
		return nil, bls381.ErrInvalidEncoding
	}

	var p bls12381.G2Affine
	p.X.A0.SetBigInt(&coord[0])
	p.X.A1.SetBigInt(&coord[1])
	p.Y.A0.SetBigInt(&coord[2])
	p.Y.A1.SetBigInt(&coord[3])
	if !p.IsOnCurve() {
		return nil, bls381.ErrPointNotOnCurve
	}
	return fastG2{p}, nil
}

// Pair implements Curve.
func (c *FastCurve) Pair(p, q Point) GT {
	gp := asFastG1(p)
	gq := asFastG2(q)
	e, err := bls12381.Pair([]bls12381.G1Affine{gp.p}, []bls12381.G2Affine{gq.p})
	if err != nil {
		// Pair only errors on mismatched slice lengths
		panic(err)
	}
	return fastGT{e}
}

// FiatShamirHash implements Curve.
func (c *FastCurve) FiatShamirHash(z, n1, n2, h Point) Scalar {
	return c.ScalarFromBytes(transcriptDigest(c.newHash, c.G1(), h, z, n1, n2))
}

type fastScalar struct {
	v gfr.Element
}

func asFastScalar(x Scalar) fastScalar {
	s, ok := x.(fastScalar)
	if !ok {
		panic("curve: scalar is not from the fast backend")
	}
	return s
}

func (s fastScalar) Add(x Scalar) Scalar {
	o := asFastScalar(x)
	var r gfr.Element
	r.Add(&s.v, &o.v)
	return fastScalar{r}
}

func (s fastScalar) Sub(x Scalar) Scalar {
	o := asFastScalar(x)
	var r gfr.Element
	r.Sub(&s.v, &o.v)
	return fastScalar{r}
}

func (s fastScalar) Mul(x Scalar) Scalar {
	o := asFastScalar(x)
	var r gfr.Element
	r.Mul(&s.v, &o.v)
	return fastScalar{r}
}

func (s fastScalar) Neg() Scalar {
	var r gfr.Element
	r.Neg(&s.v)
	return fastScalar{r}
}

func (s fastScalar) Pow(k uint64) Scalar {
	var r gfr.Element
	r.Exp(s.v, new(big.Int).SetUint64(k))
	return fastScalar{r}
}

func (s fastScalar) Equal(x Scalar) bool {
	o := asFastScalar(x)
	return s.v.Equal(&o.v)
}

func (s fastScalar) IsZero() bool { return s.v.IsZero() }

func (s fastScalar) Bytes() []byte {
	b := s.v.Bytes()
	return b[:]
}

func (s fastScalar) String() string { return s.v.String() }

type fastG1 struct {
	p bls12381.G1Affine
}

func asFastG1(x Point) fastG1 {
	p, ok := x.(fastG1)
	if !ok {
		panic("curve: point is not a fast backend G1 point")
	}
	return p
}

func (g fastG1) Add(x Point) Point {
	o := asFastG1(x)
	var r bls12381.G1Affine
	r.Add(&g.p, &o.p)
	return fastG1{r}
}

func (g fastG1) Sub(x Point) Point {
	o := asFastG1(x)
	var n, r bls12381.G1Affine
	n.Neg(&o.p)
	r.Add(&g.p, &n)
	return fastG1{r}
}

func (g fastG1) Neg() Point {
	var r bls12381.G1Affine
	r.Neg(&g.p)
	return fastG1{r}
}

func (g fastG1) Mul(k Scalar) Point {
	s := asFastScalar(k)
	var bi big.Int
	s.v.BigInt(&bi)
	var r bls12381.G1Affine
	r.ScalarMultiplication(&g.p, &bi)
	return fastG1{r}
}

func (g fastG1) Equal(x Point) bool {
	o := asFastG1(x)
	return g.p.Equal(&o.p)
}

func (g fastG1) IsInfinity() bool { return g.p.IsInfinity() }

func (g fastG1) Bytes() []byte {
	out := make([]byte, bls381.SizeOfG1Affine)
	if g.p.IsInfinity() {
		out[bls381.SizeOfG1Affine-1] = 0x01
		return out
	}
	xb := g.p.X.Bytes()
	yb := g.p.Y.Bytes()
	copy(out[:gfp.Bytes], xb[:])
	copy(out[gfp.Bytes:2*gfp.Bytes], yb[:])
	return out
}

func (g fastG1) String() string { return g.p.String() }

type fastG2 struct {
	p bls12381.G2Affine
}

func asFastG2(x Point) fastG2 {
	p, ok := x.(fastG2)
	if !ok {
		panic("curve: point is not a fast backend G2 point")
	}
	return p
}

func (g fastG2) Add(x Point) Point {
	o := asFastG2(x)
	var r bls12381.G2Affine
	r.Add(&g.p, &o.p)
	return fastG2{r}
}

func (g fastG2) Sub(x Point) Point {
	o := asFastG2(x)
	var n, r bls12381.G2Affine
	n.Neg(&o.p)
	r.Add(&g.p, &n)
	return fastG2{r}
}

func (g fastG2) Neg() Point {
	var r bls12381.G2Affine
	r.Neg(&g.p)
	return fastG2{r}
}

func (g fastG2) Mul(k Scalar) Point {
	s := asFastScalar(k)
	var bi big.Int
	s.v.BigInt(&bi)
	var r bls12381.G2Affine
	r.ScalarMultiplication(&g.p, &bi)
	return fastG2{r}
}

func (g fastG2) Equal(x Point) bool {
	o := asFastG2(x)
	return g.p.Equal(&o.p)
}

func (g fastG2) IsInfinity() bool { return g.p.IsInfinity() }

func (g fastG2) Bytes() []byte {
	out := make([]byte, bls381.SizeOfG2Affine)
	if g.p.IsInfinity() {
		out[bls381.SizeOfG2Affine-1] = 0x01
		return out
	}
	x0 := g.p.X.A0.Bytes()
	x1 := g.p.X.A1.Bytes()
	y0 := g.p.Y.A0.Bytes()
	y1 := g.p.Y.A1.Bytes()
	copy(out[:gfp.Bytes], x0[:])
	copy(out[gfp.Bytes:2*gfp.Bytes], x1[:])
	copy(out[2*gfp.Bytes:3*gfp.Bytes], y0[:])
	copy(out[3*gfp.Bytes:4*gfp.Bytes], y1[:])
	return out
}

func (g fastG2) String() string { return g.p.String() }

type fastGT struct {
	e bls12381.GT
}

func asFastGT(x GT) fastGT {
	t, ok := x.(fastGT)
	if !ok {
		panic("curve: element is not from the fast backend")
	}
	return t
}

func (t fastGT) Equal(x GT) bool {
	o := asFastGT(x)
	return t.e.Equal(&o.e)
}

func (t fastGT) IsOne() bool {
	var one bls12381.GT
	one.SetOne()
	return t.e.Equal(&one)
}

func (t fastGT) Bytes() []byte {
	coeffs := [...]gfp.Element{
		t.e.C0.B0.A0, t.e.C0.B0.A1,
		t.e.C0.B1.A0, t.e.C0.B1.A1,
		t.e.C0.B2.A0, t.e.C0.B2.A1,
		t.e.C1.B0.A0, t.e.C1.B0.A1,
		t.e.C1.B1.A0, t.e.C1.B1.A1,
		t.e.C1.B2.A0, t.e.C1.B2.A1,
	}
	out := make([]byte, 0, len(coeffs)*gfp.Bytes)
	for i := range coeffs {
		b := coeffs[i].Bytes()
		out = append(out, b[:]...)
	}
	return out
}

func (t fastGT) String() string { return t.e.String() }
