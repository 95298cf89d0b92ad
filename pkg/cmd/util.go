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
	"path"

	"github.com/consensys/go-framecheck/pkg/frame"
	framecsv "github.com/consensys/go-framecheck/pkg/frame/csv"
	framejson "github.com/consensys/go-framecheck/pkg/frame/json"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// readFrameFile parses a dataset file using a reader based on the extension
// of the filename.
func readFrameFile(filename string) *frame.ArrayFrame {
	var (
		f   *frame.ArrayFrame
		err error
	)
	//
	switch ext := path.Ext(filename); ext {
	case ".json":
		var bytes []byte
		if bytes, err = os.ReadFile(filename); err == nil {
			f, err = framejson.FromBytes(bytes)
		}
	case ".csv":
		var file *os.File
		if file, err = os.Open(filename); err == nil {
			defer file.Close()
			f, err = framecsv.FromReader(file)
		}
	default:
		err = fmt.Errorf("unknown dataset file format: %s", ext)
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return f
}

// termWidth determines the width available for report output, falling back
// to a fixed width when stdout is not a terminal.
func termWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	//
	return 80
}

// truncate shortens a line to the given width.
func truncate(line string, width int) string {
	if width > 3 && len(line) > width {
		return line[:width-3] + "..."
	}
	//
	return line
}
