// Package zkzg provides a BLS12-381 pairing core and a hiding KZG polynomial
// commitment scheme for zero-knowledge set membership.
//
// The module is organised in layers:
//   - ecc/bls381 is a readable big.Int implementation of the curve, its
//     tower of extension fields and the optimal ate pairing
//   - curve wraps that implementation and gnark-crypto behind one interface,
//     with byte identical encodings, so every protocol run can be checked
//     against two independent arithmetic stacks
//   - kzg runs the commitment protocol: trusted setup, blinded commitments,
//     membership and non-membership queries, batch verification
//
// Serialization of protocol objects lives in encoding (curve-tagged CBOR),
// and cmd/zkzg exposes the protocol as a CLI.
package zkzg

import (
	"github.com/blang/semver/v4"

	"github.com/consensys/zkzg/ecc"
)

var Version = semver.MustParse("0.1.0")

// Curves returns the curves supported by zkzg
func Curves() []ecc.ID {
	return []ecc.ID{
		ecc.BLS381,
	}
}
