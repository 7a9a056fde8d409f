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

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/consensys/zkzg/kzg"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify [proof]",
	Short: "verifies a query answer against a public digest",
	Run:   cmdVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.PersistentFlags().StringVar(&fVkPath, "vk", "zkzg.vk", "path to the verifiable key")
	verifyCmd.PersistentFlags().StringVar(&fDigestPath, "digest", "zkzg.digest", "path to the public digest")
}

func cmdVerify(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("missing proof path -- zkzg verify -h for help")
		os.Exit(-1)
	}
	proofPath := filepath.Clean(args[0])

	cv := backendFromFlag()
	pk := loadVerifiableKey(cv, fVkPath)

	digest, err := cv.G1FromBytes(readObject(fDigestPath, "digest"))
	if err != nil {
		fmt.Println("can't parse digest", err)
		os.Exit(-1)
	}

	proof, err := kzg.UnmarshalProof(cv, readObject(proofPath, "proof"))
	if err != nil {
		fmt.Println("can't parse proof", err)
		os.Exit(-1)
	}

	start := time.Now()
	if !kzg.VerifyZK(cv, pk, digest, proof) {
		fmt.Printf("%-30s %-30s %-30s\n", "proof is invalid", proofPath, time.Since(start))
		os.Exit(-1)
	}
	fmt.Printf("%-30s %-30s %-30s\n", "proof is valid", proofPath, time.Since(start))
}
