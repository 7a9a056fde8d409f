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

// commitCmd represents the commit command
var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "commits to a set of field elements",
	Long:  "commit hides a set behind a single digest; the private state file is needed later to answer queries",
	Run:   cmdCommit,
}

var (
	fSet        string
	fStatePath  string
	fDigestPath string
)

func init() {
	rootCmd.AddCommand(commitCmd)

	commitCmd.PersistentFlags().StringVar(&fSet, "set", "", "comma separated set elements, e.g. 1,5,42")
	commitCmd.PersistentFlags().StringVar(&fVkPath, "vk", "zkzg.vk", "path to the verifiable key")
	commitCmd.PersistentFlags().StringVar(&fStatePath, "state", "zkzg.state", "output path for the private committer state")
	commitCmd.PersistentFlags().StringVar(&fDigestPath, "digest", "zkzg.digest", "output path for the public digest")
	_ = commitCmd.MarkPersistentFlagRequired("set")
}

func cmdCommit(cmd *cobra.Command, args []string) {
	cv := backendFromFlag()
	pk := loadVerifiableKey(cv, fVkPath)

	set, err := parseSet(cv, fSet)
	if err != nil {
		fmt.Println("can't parse set:", err)
		os.Exit(-1)
	}

	start := time.Now()
	com, err := kzg.CommitZK(cv, pk, set)
	if err != nil {
		fmt.Println("commit failed:", err)
		os.Exit(-1)
	}
	duration := time.Since(start)

	state, err := kzg.MarshalCommitment(com)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
	if err := encoding.Write(fStatePath, state, ecc.BLS381); err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
	if err := encoding.Write(fDigestPath, com.Digest.Bytes(), ecc.BLS381); err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}

	fmt.Printf("%-30s %-30s %-30s\n", "committed set", fStatePath, duration)
	fmt.Printf("%-30s %-30s\n", "public digest", fDigestPath)
}
