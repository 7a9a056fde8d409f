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

// Package encoding offers (de)serialization APIs for zkzg objects.
// It uses CBOR, is schema-less, and tags every payload with the curve it
// was produced on so files cannot be decoded against the wrong curve.
package encoding

import (
	"errors"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"

	"github.com/consensys/zkzg/ecc"
)

var errInvalidCurve = errors.New("trying to deserialize an object serialized with another curve")

var encMode = func() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// Write serializes object into a file.
func Write(path string, from interface{}, curveID ecc.ID) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Serialize(f, from, curveID)
}

// Read reads and deserializes input into object.
// The provided interface must be a pointer.
func Read(path string, into interface{}, expectedCurveID ecc.ID) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Deserialize(f, into, expectedCurveID)
}

// Serialize encodes from into the provided writer, with the curveID in the
// first bytes.
func Serialize(writer io.Writer, from interface{}, curveID ecc.ID) error {
	encoder := encMode.NewEncoder(writer)

	// encode the curve type in the first bytes
	if err := encoder.Encode(curveID); err != nil {
		return err
	}

	// encode our object
	if err := encoder.Encode(from); err != nil {
		return err
	}

	return nil
}

// PeekCurveID reads the first bytes of the file and tries to decode and
// return the curveID.
func PeekCurveID(file string) (ecc.ID, error) {
	reader, err := os.Open(file)
	if err != nil {
		return ecc.UNKNOWN, err
	}
	defer reader.Close()

	decoder := cbor.NewDecoder(reader)

	var curveID ecc.ID
	if err = decoder.Decode(&curveID); err != nil {
		return ecc.UNKNOWN, err
	}
	return curveID, nil
}

// Deserialize reads bytes from reader and constructs the object into.
func Deserialize(reader io.Reader, into interface{}, expectedCurveID ecc.ID) error {
	decoder := cbor.NewDecoder(reader)

	// decode the curve type, and ensure it matches
	var curveID ecc.ID
	if err := decoder.Decode(&curveID); err != nil {
		return err
	}
	if curveID != expectedCurveID {
		return errInvalidCurve
	}

	if err := decoder.Decode(into); err != nil {
		return err
	}

	return nil
}
