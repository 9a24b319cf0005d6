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

// vep is a CLI tool to expand a secret into a longer pseudorandom byte
// sequence, or reduce it to a single digest-sized block, printed as hex.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/veplib/vep"
	"github.com/veplib/vep/digest"
)

var (
	fAlgorithm string
	fHex       bool
)

var rootCmd = &cobra.Command{
	Use:     "vep",
	Short:   "variable-length expansion of a secret over a cryptographic digest",
	Version: vep.Version.String(),
}

var expandCmd = &cobra.Command{
	Use:   "expand [secret]",
	Short: "expands the secret; output length = digest size × max(len, 2)",
	Run:   cmdExpand,
}

var reduceCmd = &cobra.Command{
	Use:   "reduce [secret]",
	Short: "expands then reduces the secret to one digest-sized block",
	Run:   cmdReduce,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&fAlgorithm, "algorithm", "a", "SHA2_256", "digest algorithm, see 'vep algorithms'")
	rootCmd.PersistentFlags().BoolVar(&fHex, "hex", false, "interpret the secret argument as hex")
	rootCmd.AddCommand(expandCmd, reduceCmd, algorithmsCmd)
}

var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "lists the supported digest algorithms",
	Run: func(cmd *cobra.Command, args []string) {
		for _, h := range vep.Hashes() {
			fmt.Printf("%-12s %d bytes\n", h.String(), h.Size())
		}
	},
}

func cmdExpand(cmd *cobra.Command, args []string) {
	h, secret := parseArgs(cmd, args)
	fmt.Println(hex.EncodeToString(vep.Expand(h.New(), secret)))
}

func cmdReduce(cmd *cobra.Command, args []string) {
	h, secret := parseArgs(cmd, args)
	fmt.Println(hex.EncodeToString(vep.ExpandReduce(h.New(), secret)))
}

func parseArgs(cmd *cobra.Command, args []string) (digest.Hash, []byte) {
	if len(args) < 1 {
		fmt.Println("missing secret -- vep " + cmd.Name() + " -h for help")
		os.Exit(-1)
	}

	h, ok := hashByName(fAlgorithm)
	if !ok {
		fmt.Println("unknown algorithm", fAlgorithm, "-- vep algorithms to list them")
		os.Exit(-1)
	}

	secret := []byte(args[0])
	if fHex {
		decoded, err := hex.DecodeString(args[0])
		if err != nil {
			fmt.Println("can't decode secret:", err)
			os.Exit(-1)
		}
		secret = decoded
	}
	return h, secret
}

func hashByName(name string) (digest.Hash, bool) {
	for _, h := range vep.Hashes() {
		if h.String() == name {
			return h, true
		}
	}
	return 0, false
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
}
