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
	"crypto/sha256"
	"hash"
)

// Option configures a backend constructor.
type Option func(*options)

type options struct {
	newHash func() hash.Hash
}

// WithHashFunc overrides the transcript hash. The default is SHA-256; any
// 256-bit hash (sha3.New256, for one) fits the challenge derivation.
func WithHashFunc(newHash func() hash.Hash) Option {
	return func(o *options) {
		o.newHash = newHash
	}
}

func buildOptions(opts ...Option) options {
	o := options{newHash: sha256.New}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// transcriptDigest hashes the concatenated canonical encodings in the fixed
// verifier order g1 ‖ h ‖ z ‖ n1 ‖ n2.
func transcriptDigest(newHash func() hash.Hash, g, h, z, n1, n2 Point) []byte {
	hasher := newHash()
	hasher.Write(g.Bytes())
	hasher.Write(h.Bytes())
	hasher.Write(z.Bytes())
	hasher.Write(n1.Bytes())
	hasher.Write(n2.Bytes())
	return hasher.Sum(nil)
}
