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

// setupCmd represents the setup command
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "generates a verifiable key for polynomials up to the given degree",
	Run:   cmdSetup,
}

var (
	fDegree uint64
	fVkPath string
)

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.PersistentFlags().Uint64Var(&fDegree, "degree", 0, "largest polynomial degree the key supports")
	setupCmd.PersistentFlags().StringVar(&fVkPath, "vk", "zkzg.vk", "output path for the verifiable key")
	_ = setupCmd.MarkPersistentFlagRequired("degree")
}

func cmdSetup(cmd *cobra.Command, args []string) {
	cv := backendFromFlag()

	start := time.Now()
	pk, err := kzg.Setup(cv, fDegree)
	if err != nil {
		fmt.Println("setup failed:", err)
		os.Exit(-1)
	}
	duration := time.Since(start)

	data, err := kzg.MarshalVerifiableKey(pk)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
	if err := encoding.Write(fVkPath, data, ecc.BLS381); err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
	fmt.Printf("%-30s %-30s %-30s\n", "generated verifiable key", fVkPath, duration)
}
