// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-framecheck/pkg/schemafile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// describeCmd represents the describe command
var describeCmd = &cobra.Command{
	Use:   "describe [flags] schema_file",
	Short: "Print the normalised form of a schema declaration.",
	Long: `Print the normalised form of a schema declaration: field order,
	canonical type expressions and validator descriptions.  Useful
	for checking what a declaration actually means, since unions
	and options normalise during construction.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(2)
		}
		//
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		spec, err := schemafile.Load(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		width := termWidth()
		//
		fmt.Printf("schema %q (%d fields)\n", spec.Name(), spec.Width())
		//
		for _, field := range spec.Fields() {
			fmt.Println(truncate(fmt.Sprintf("  %s: %s", field.Name, field.Type.String()), width))
			//
			for _, v := range field.Validators {
				fmt.Println(truncate(fmt.Sprintf("    - %s", v.Describe()), width))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
