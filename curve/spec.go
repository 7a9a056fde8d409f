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
	"hash"
	"io"

	"github.com/pkg/errors"

	"github.com/consensys/zkzg/ecc/bls381"
	"github.com/consensys/zkzg/ecc/bls381/fp"
	"github.com/consensys/zkzg/ecc/bls381/fr"
)

// SpecCurve is the first-principles backend over ecc/bls381. Its ladders
// and inversions run in a data-independent number of iterations (see the
// fp package notes), which makes it the reference implementation for the
// protocol's constant-time obligations.
type SpecCurve struct {
	newHash func() hash.Hash
}

var _ Curve = (*SpecCurve)(nil)

// NewSpecCurve builds the spec backend. The transcript hash defaults to
// SHA-256.
func NewSpecCurve(opts ...Option) *SpecCurve {
	o := buildOptions(opts...)
	return &SpecCurve{newHash: o.newHash}
}

// Name implements Curve.
func (c *SpecCurve) Name() string { return "bls381/spec" }

// ScalarFromUint64 implements Curve.
func (c *SpecCurve) ScalarFromUint64(v uint64) Scalar {
	var e fr.Element
	e.SetUint64(v)
	return specScalar{e}
}

// ScalarFromBytes implements Curve.
func (c *SpecCurve) ScalarFromBytes(b []byte) Scalar {
	var e fr.Element
	e.SetBytes(b)
	return specScalar{e}
}

// ScalarFromBytesCanonical implements Curve.
func (c *SpecCurve) ScalarFromBytesCanonical(b []byte) (Scalar, error) {
	if len(b) != fr.Bytes {
		return nil, errors.Errorf("curve: scalar must be %d bytes, got %d", fr.Bytes, len(b))
	}
	var e fr.Element
	e.SetBytes(b)
	if !bytes.Equal(e.Marshal(), b) {
		return nil, errors.New("curve: scalar encoding is not canonical")
	}
	return specScalar{e}, nil
}

// RandomScalar implements Curve.
func (c *SpecCurve) RandomScalar(rand io.Reader) (Scalar, error) {
	var buf [16]byte
	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		return nil, errors.Wrap(err, "curve: sampling scalar")
	}
	var e fr.Element
	e.SetBytes(buf[:])
	return specScalar{e}, nil
}

// G1 implements Curve.
func (c *SpecCurve) G1() Point {
	g1, _ := bls381.Generators()
	return specG1{g1}
}

// G2 implements Curve.
func (c *SpecCurve) G2() Point {
	_, g2 := bls381.Generators()
	return specG2{g2}
}

// G1Infinity implements Curve.
func (c *SpecCurve) G1Infinity() Point {
	var p bls381.G1Affine
	p.SetInfinity()
	return specG1{p}
}

// G2Infinity implements Curve.
func (c *SpecCurve) G2Infinity() Point {
	var p bls381.G2Affine
	p.SetInfinity()
	return specG2{p}
}

// G1FromBytes implements Curve.
func (c *SpecCurve) G1FromBytes(b []byte) (Point, error) {
	var p bls381.G1Affine
	if err := p.SetBytes(b); err != nil {
		return nil, err
	}
	return specG1{p}, nil
}

// G2FromBytes implements Curve.
func (c *SpecCurve) G2FromBytes(b []byte) (Point, error) {
	var p bls381.G2Affine
	if err := p.SetBytes(b); err != nil {
		return nil, err
	}
	return specG2{p}, nil
}

// Pair implements Curve.
func (c *SpecCurve) Pair(p, q Point) GT {
	gp := asSpecG1(p)
	gq := asSpecG2(q)
	return specGT{bls381.Pair(&gp.p, &gq.p)}
}

// FiatShamirHash implements Curve.
func (c *SpecCurve) FiatShamirHash(z, n1, n2, h Point) Scalar {
	return c.ScalarFromBytes(transcriptDigest(c.newHash, c.G1(), h, z, n1, n2))
}

type specScalar struct {
	v fr.Element
}

func asSpecScalar(x Scalar) specScalar {
	s, ok := x.(specScalar)
	if !ok {
		panic("curve: scalar is not from the spec backend")
	}
	return s
}

func (s specScalar) Add(x Scalar) Scalar {
	o := asSpecScalar(x)
	var r fr.Element
	r.Add(&s.v, &o.v)
	return specScalar{r}
}

func (s specScalar) Sub(x Scalar) Scalar {
	o := asSpecScalar(x)
	var r fr.Element
	r.Sub(&s.v, &o.v)
	return specScalar{r}
}

func (s specScalar) Mul(x Scalar) Scalar {
	o := asSpecScalar(x)
	var r fr.Element
	r.Mul(&s.v, &o.v)
	return specScalar{r}
}

func (s specScalar) Neg() Scalar {
	var r fr.Element
	r.Neg(&s.v)
	return specScalar{r}
}

func (s specScalar) Pow(k uint64) Scalar {
	var r fr.Element
	r.Exp(&s.v, k)
	return specScalar{r}
}

func (s specScalar) Equal(x Scalar) bool {
	o := asSpecScalar(x)
	return s.v.Equal(&o.v)
}

func (s specScalar) IsZero() bool { return s.v.IsZero() }

func (s specScalar) Bytes() []byte {
	b := s.v.Bytes()
	return b[:]
}

func (s specScalar) String() string { return s.v.String() }

type specG1 struct {
	p bls381.G1Affine
}

func asSpecG1(x Point) specG1 {
	p, ok := x.(specG1)
	if !ok {
		panic("curve: point is not a spec backend G1 point")
	}
	return p
}

func (g specG1) Add(x Point) Point {
	o := asSpecG1(x)
	var r bls381.G1Affine
	r.Add(&g.p, &o.p)
	return specG1{r}
}

func (g specG1) Sub(x Point) Point {
	o := asSpecG1(x)
	var r bls381.G1Affine
	r.Sub(&g.p, &o.p)
	return specG1{r}
}

func (g specG1) Neg() Point {
	var r bls381.G1Affine
	r.Neg(&g.p)
	return specG1{r}
}

func (g specG1) Mul(k Scalar) Point {
	s := asSpecScalar(k)
	var r bls381.G1Affine
	r.ScalarMultiplication(&g.p, &s.v)
	return specG1{r}
}

func (g specG1) Equal(x Point) bool {
	o := asSpecG1(x)
	return g.p.Equal(&o.p)
}

func (g specG1) IsInfinity() bool { return g.p.IsInfinity() }

func (g specG1) Bytes() []byte { return g.p.Marshal() }

func (g specG1) String() string { return g.p.String() }

type specG2 struct {
	p bls381.G2Affine
}

func asSpecG2(x Point) specG2 {
	p, ok := x.(specG2)
	if !ok {
		panic("curve: point is not a spec backend G2 point")
	}
	return p
}

func (g specG2) Add(x Point) Point {
	o := asSpecG2(x)
	var r bls381.G2Affine
	r.Add(&g.p, &o.p)
	return specG2{r}
}

func (g specG2) Sub(x Point) Point {
	o := asSpecG2(x)
	var r bls381.G2Affine
	r.Sub(&g.p, &o.p)
	return specG2{r}
}

func (g specG2) Neg() Point {
	var r bls381.G2Affine
	r.Neg(&g.p)
	return specG2{r}
}

func (g specG2) Mul(k Scalar) Point {
	s := asSpecScalar(k)
	var r bls381.G2Affine
	r.ScalarMultiplication(&g.p, &s.v)
	return specG2{r}
}

func (g specG2) Equal(x Point) bool {
	o := asSpecG2(x)
	return g.p.Equal(&o.p)
}

func (g specG2) IsInfinity() bool { return g.p.IsInfinity() }

func (g specG2) Bytes() []byte { return g.p.Marshal() }

func (g specG2) String() string { return g.p.String() }

type specGT struct {
	e bls381.GT
}

func asSpecGT(x GT) specGT {
	t, ok := x.(specGT)
	if !ok {
		panic("curve: element is not from the spec backend")
	}
	return t
}

func (t specGT) Equal(x GT) bool {
	o := asSpecGT(x)
	return t.e.Equal(&o.e)
}

func (t specGT) IsOne() bool { return t.e.IsOne() }

func (t specGT) Bytes() []byte {
	coeffs := [...]fp.Element{
		t.e.C0.B0.A0, t.e.C0.B0.A1,
		t.e.C0.B1.A0, t.e.C0.B1.A1,
		t.e.C0.B2.A0, t.e.C0.B2.A1,
		t.e.C1.B0.A0, t.e.C1.B0.A1,
		t.e.C1.B1.A0, t.e.C1.B1.A1,
		t.e.C1.B2.A0, t.e.C1.B2.A1,
	}
	out := make([]byte, 0, len(coeffs)*fp.Bytes)
	for i := range coeffs {
		b := coeffs[i].Bytes()
		out = append(out, b[:]...)
	}
	return out
}

func (t specGT) String() string { return t.e.String() }
