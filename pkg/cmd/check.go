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

	"github.com/consensys/go-framecheck/pkg/schema"
	"github.com/consensys/go-framecheck/pkg/schemafile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] dataset_file schema_file",
	Short: "Check a given dataset against a schema.",
	Long: `Check a given dataset against a schema declaration.
	Datasets can be given either as JSON or CSV files, and schemas
	as YAML declarations.  All field failures are reported, not
	just the first.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(2)
		}
		//
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		var cfg checkConfig
		cfg.strict = GetFlag(cmd, "strict")
		cfg.report = GetFlag(cmd, "report")
		// Parse dataset
		dataset := readFrameFile(args[0])
		// Parse schema declaration
		spec, err := schemafile.Load(args[1])
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		log.Debugf("checking %d columns (%d rows) against schema %q (%d fields)",
			len(dataset.Columns()), dataset.Height(), spec.Name(), spec.Width())
		// Go!
		report := schema.ValidateWith(spec, dataset, schema.Options{Strict: cfg.strict})
		//
		printReport(report, cfg)
		//
		if !report.Ok() {
			os.Exit(1)
		}
	},
}

// check config encapsulates certain parameters to be used when checking
// datasets.
type checkConfig struct {
	// Specifies whether columns the schema does not name are reported as
	// unknown, rather than ignored.
	strict bool
	// Specifies whether to report per-field details for passing fields as
	// well as failing ones.
	report bool
}

func printReport(report *schema.Report, cfg checkConfig) {
	width := termWidth()
	//
	for _, fr := range report.Fields {
		if fr.Outcome != nil {
			fmt.Println(truncate(fmt.Sprintf("FAIL %s", fr.Outcome.Message()), width))
		} else if cfg.report {
			fmt.Println(truncate(fmt.Sprintf("OK   column %q", fr.Field), width))
		}
	}
	//
	if report.Ok() {
		fmt.Println("OK")
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("strict", false, "report columns the schema does not name")
	checkCmd.Flags().Bool("report", false, "report passing fields as well as failing ones")
}
