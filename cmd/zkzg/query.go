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
	"time"

	"github.com/spf13/cobra"

	"github.com/consensys/zkzg/ecc"
	"github.com/consensys/zkzg/encoding"
	"github.com/consensys/zkzg/kzg"
)

// queryCmd represents the query command
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "answers a membership query against committed state",
	Run:   cmdQuery,
}

var (
	fAt        uint64
	fProofPath string
)

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.PersistentFlags().Uint64Var(&fAt, "at", 0, "query point")
	queryCmd.PersistentFlags().StringVar(&fVkPath, "vk", "zkzg.vk", "path to the verifiable key")
	queryCmd.PersistentFlags().StringVar(&fStatePath, "state", "zkzg.state", "path to the private committer state")
	queryCmd.PersistentFlags().StringVar(&fProofPath, "proof", "zkzg.proof", "output path for the proof")
	_ = queryCmd.MarkPersistentFlagRequired("at")
}

func cmdQuery(cmd *cobra.Command, args []string) {
	cv := backendFromFlag()
	pk := loadVerifiableKey(cv, fVkPath)

	com, err := kzg.UnmarshalCommitment(cv, readObject(fStatePath, "committer state"))
	if err != nil {
		fmt.Println("can't load committer state", err)
		os.Exit(-1)
	}

	start := time.Now()
	proof, err := kzg.QueryZK(cv, pk, com, cv.ScalarFromUint64(fAt))
	if err != nil {
		fmt.Println("query failed:", err)
		os.Exit(-1)
	}
	duration := time.Since(start)

	answer := "member"
	if proof.NonMember != nil {
		answer = "not a member"
	}

	data, err := kzg.MarshalProof(proof)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
	if err := encoding.Write(fProofPath, data, ecc.BLS381); err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}

	fmt.Printf("%-30s %-30d %-30s\n", "queried point", fAt, answer)
	fmt.Printf("%-30s %-30s %-30s\n", "generated proof", fProofPath, duration)
}
