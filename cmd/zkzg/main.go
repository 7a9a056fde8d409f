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

// zkzg is a CLI around the kzg set-membership commitment scheme: it
// generates keys, commits to sets, answers queries and verifies the
// answers, storing every object as a curve-tagged file.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	zkzg "github.com/consensys/zkzg"
	"github.com/consensys/zkzg/curve"
	"github.com/consensys/zkzg/ecc"
	"github.com/consensys/zkzg/encoding"
	"github.com/consensys/zkzg/kzg"
)

var rootCmd = &cobra.Command{
	Use:     "zkzg",
	Short:   "zkzg commits to sets and answers membership queries with constant size proofs",
	Version: zkzg.Version.String(),
}

var errNotFound = errors.New("file not found")

var fCurve string

func init() {
	rootCmd.PersistentFlags().StringVar(&fCurve, "curve", "fast", "arithmetic backend: fast (gnark-crypto) or spec (big.Int reference)")
}

func backendFromFlag() curve.Curve {
	switch fCurve {
	case "fast":
		return curve.NewFastCurve()
	case "spec":
		return curve.NewSpecCurve()
	default:
		fmt.Println("unknown curve backend:", fCurve)
		os.Exit(-1)
		return nil
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// readObject loads the raw payload of a curve-tagged file.
func readObject(path, kind string) []byte {
	path = filepath.Clean(path)
	if !fileExists(path) {
		fmt.Println(path, errNotFound)
		os.Exit(-1)
	}
	var data []byte
	if err := encoding.Read(path, &data, ecc.BLS381); err != nil {
		fmt.Println("can't load "+kind, err)
		os.Exit(-1)
	}
	return data
}

func loadVerifiableKey(cv curve.Curve, path string) *kzg.VerifiableKey {
	pk, err := kzg.UnmarshalVerifiableKey(cv, readObject(path, "verifiable key"))
	if err != nil {
		fmt.Println("can't load verifiable key", err)
		os.Exit(-1)
	}
	fmt.Printf("%-30s %-30s\n", "loaded verifiable key", path)
	return pk
}

func parseSet(cv curve.Curve, list string) ([]curve.Scalar, error) {
	parts := strings.Split(list, ",")
	set := make([]curve.Scalar, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return nil, err
		}
		set = append(set, cv.ScalarFromUint64(v))
	}
	return set, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
