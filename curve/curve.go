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

// Package curve abstracts the BLS12-381 arithmetic the commitment scheme
// consumes behind a small Curve interface, with two interchangeable
// backends: SpecCurve, the auditable first-principles implementation in
// ecc/bls381, and FastCurve, backed by gnark-crypto. Both serialize scalars
// and points identically and produce value-identical pairings, so each acts
// as a differential oracle for the other.
//
// Scalars and points are immutable: every operation returns a fresh value
// and never mutates its operands. Mixing values from different backends, or
// from different groups, is a programming error and panics.
package curve

import (
	"io"
)

// Scalar is an element of the r-order scalar field.
type Scalar interface {
	Add(x Scalar) Scalar
	Sub(x Scalar) Scalar
	Mul(x Scalar) Scalar
	Neg() Scalar
	// Pow raises the scalar to a public exponent.
	Pow(k uint64) Scalar
	Equal(x Scalar) bool
	IsZero() bool
	// Bytes is the canonical 32-byte big-endian encoding.
	Bytes() []byte
	String() string
}

// Point is a group element of G1 or G2. The two groups share the interface;
// a Point only combines with Points of its own group and backend.
type Point interface {
	Add(x Point) Point
	Sub(x Point) Point
	Neg() Point
	// Mul returns k·p.
	Mul(k Scalar) Point
	Equal(x Point) bool
	IsInfinity() bool
	// Bytes is the canonical encoding: for G1, 48-byte big-endian x,
	// 48-byte big-endian y and a flag byte (0x00 finite, 0x01 infinity),
	// 97 bytes in total; for G2, the analogous 193 bytes.
	Bytes() []byte
	String() string
}

// GT is an element of the pairing target group.
type GT interface {
	Equal(x GT) bool
	IsOne() bool
	// Bytes serializes the twelve Fp coefficients in ascending tower
	// order, 48 bytes big-endian each.
	Bytes() []byte
	String() string
}

// Curve bundles the generators, parsers and protocol hashing of one
// backend.
type Curve interface {
	Name() string

	ScalarFromUint64(v uint64) Scalar
	// ScalarFromBytes interprets b as a big-endian unsigned integer and
	// reduces it mod r. Hash digests become challenge scalars through this
	// path.
	ScalarFromBytes(b []byte) Scalar
	// ScalarFromBytesCanonical decodes exactly 32 big-endian bytes strictly
	// below r. Wire ingestion uses this path so every scalar has a single
	// accepted encoding.
	ScalarFromBytesCanonical(b []byte) (Scalar, error)
	// RandomScalar draws 16 bytes from rand and reduces them, mirroring
	// the 128-bit literal range of the protocol's blinding values.
	RandomScalar(rand io.Reader) (Scalar, error)

	G1() Point
	G2() Point
	G1Infinity() Point
	G2Infinity() Point
	// G1FromBytes decodes the canonical 97-byte encoding, strictly.
	G1FromBytes(b []byte) (Point, error)
	// G2FromBytes decodes the canonical 193-byte encoding, strictly.
	G2FromBytes(b []byte) (Point, error)

	// Pair computes the pairing of a G1 point with a G2 point. Either
	// argument at infinity gives the identity of GT.
	Pair(p, q Point) GT

	// FiatShamirHash derives the challenge scalar from the transcript
	// g1 ‖ h ‖ z ‖ n1 ‖ n2 of canonical encodings, reducing the digest
	// mod r.
	FiatShamirHash(z, n1, n2, h Point) Scalar
}
