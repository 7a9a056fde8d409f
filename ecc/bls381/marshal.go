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

package bls381

import (
	"errors"
	"math/big"

	"github.com/consensys/zkzg/ecc/bls381/fp"
)

// SizeOfG1Affine is the byte length of the canonical G1 encoding:
// 48-byte big-endian x, 48-byte big-endian y, one flag byte.
const SizeOfG1Affine = 2*fp.Bytes + 1

// SizeOfG2Affine is the byte length of the canonical G2 encoding: the two
// Fp coefficients of x (A0 then A1), the two of y, one flag byte.
const SizeOfG2Affine = 4*fp.Bytes + 1

const (
	flagFinite   byte = 0x00
	flagInfinity byte = 0x01
)

var (
	// ErrInvalidEncoding covers structural decoding failures: wrong length,
	// an unknown flag byte, a coordinate outside [0, p) or a nonzero
	// coordinate under the infinity flag.
	ErrInvalidEncoding = errors.New("bls381: invalid point encoding")

	// ErrPointNotOnCurve marks a structurally valid encoding whose
	// coordinates do not satisfy the curve equation.
	ErrPointNotOnCurve = errors.New("bls381: point not on curve")
)

// Bytes returns the canonical encoding of p. The point at infinity encodes
// with all-zero coordinates and the infinity flag set, so encoding is total.
func (p *G1Affine) Bytes() (res [SizeOfG1Affine]byte) {
	if p.Infinity {
		res[SizeOfG1Affine-1] = flagInfinity
		return
	}
	xb := p.X.Bytes()
	yb := p.Y.Bytes()
	copy(res[:fp.Bytes], xb[:])
	copy(res[fp.Bytes:2*fp.Bytes], yb[:])
	res[SizeOfG1Affine-1] = flagFinite
	return
}

// Marshal returns the canonical encoding of p as a slice.
func (p *G1Affine) Marshal() []byte {
	b := p.Bytes()
	return b[:]
}

// SetBytes decodes p from its canonical encoding, enforced strictly: exact
// length, known flag byte, coordinates in canonical range, all-zero
// coordinates under the infinity flag, and a satisfied curve equation.
// Errors are ErrInvalidEncoding or ErrPointNotOnCurve; p is unspecified
// after a failure.
func (p *G1Affine) SetBytes(buf []byte) error {
	if len(buf) != SizeOfG1Affine {
		return ErrInvalidEncoding
	}

	var x, y big.Int
	x.SetBytes(buf[:fp.Bytes])
	y.SetBytes(buf[fp.Bytes : 2*fp.Bytes])
	if x.Cmp(fp.Modulus()) >= 0 || y.Cmp(fp.Modulus()) >= 0 {
		return ErrInvalidEncoding
	}

	switch buf[SizeOfG1Affine-1] {
	case flagInfinity:
		if x.Sign() != 0 || y.Sign() != 0 {
			return ErrInvalidEncoding
		}
		p.SetInfinity()
		return nil
	case flagFinite:
	default:
		return ErrInvalidEncoding
	}

	p.X.SetBigInt(&x)
	p.Y.SetBigInt(&y)
	p.Infinity = false
	if !p.IsOnCurve() {
		return ErrPointNotOnCurve
	}
	return nil
}

// Unmarshal is an alias for SetBytes.
func (p *G1Affine) Unmarshal(buf []byte) error {
	return p.SetBytes(buf)
}

// Bytes returns the canonical encoding of p. The point at infinity encodes
// with all-zero coordinates and the infinity flag set.
func (p *G2Affine) Bytes() (res [SizeOfG2Affine]byte) {
	if p.Infinity {
		res[SizeOfG2Affine-1] = flagInfinity
		return
	}
	x0 := p.X.A0.Bytes()
	x1 := p.X.A1.Bytes()
	y0 := p.Y.A0.Bytes()
	y1 := p.Y.A1.Bytes()
	copy(res[:fp.Bytes], x0[:])
	copy(res[fp.Bytes:2*fp.Bytes], x1[:])
	copy(res[2*fp.Bytes:3*fp.Bytes], y0[:])
	copy(res[3*fp.Bytes:4*fp.Bytes], y1[:])
	res[SizeOfG2Affine-1] = flagFinite
	return
}

// Marshal returns the canonical encoding of p as a slice.
func (p *G2Affine) Marshal() []byte {
	b := p.Bytes()
	return b[:]
}

// SetBytes decodes p from its canonical encoding, with the same strictness
// as its G1 counterpart.
func (p *G2Affine) SetBytes(buf []byte) error {
	if len(buf) != SizeOfG2Affine {
		return ErrInvalidEncoding
	}

	var c [4]big.Int
	allZero := true
	for i := range c {
		c[i].SetBytes(buf[i*fp.Bytes : (i+1)*fp.Bytes])
		if c[i].Cmp(fp.Modulus()) >= 0 {
			return ErrInvalidEncoding
		}
		if c[i].Sign() != 0 {
			allZero = false
		}
	}

	switch buf[SizeOfG2Affine-1] {
	case flagInfinity:
		if !allZero {
			return ErrInvalidEncoding
		}
		p.SetInfinity()
		return nil
	case flagFinite:
	default:
		return ErrInvalidEncoding
	}

	p.X.A0.SetBigInt(&c[0])
	p.X.A1.SetBigInt(&c[1])
	p.Y.A0.SetBigInt(&c[2])
	p.Y.A1.SetBigInt(&c[3])
	p.Infinity = false
	if !p.IsOnCurve() {
		return ErrPointNotOnCurve
	}
	return nil
}

// Unmarshal is an alias for SetBytes.
func (p *G2Affine) Unmarshal(buf []byte) error {
	return p.SetBytes(buf)
}
