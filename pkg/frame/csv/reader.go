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

// Package csv reads datasets expressed as CSV, where the first record names
// the columns.  CSV carries no type information, so each column's value kind
// is inferred: the narrowest of int, float and bool which parses every
// non-empty cell, with string as the fallback.  Empty cells become the null
// marker.
package csv

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/consensys/go-framecheck/pkg/frame"
)

// FromReader parses a CSV dataset, inferring column value kinds as described
// in the package documentation.
func FromReader(r io.Reader) (*frame.ArrayFrame, error) {
	reader := csv.NewReader(r)
	//
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	} else if len(records) == 0 {
		return frame.FromColumns()
	}
	//
	var (
		header  = records[0]
		rows    = records[1:]
		columns = make([]frame.Column, len(header))
	)
	//
	for i, name := range header {
		cells := make([]string, len(rows))
		for j, row := range rows {
			cells[j] = row[i]
		}
		//
		columns[i] = frame.NewColumn(name, inferValues(cells))
	}
	//
	return frame.FromColumns(columns...)
}

// inferValues converts the raw cells of one column into typed values, using
// the narrowest kind which accommodates every non-empty cell.
func inferValues(cells []string) []any {
	values := make([]any, len(cells))
	//
	switch {
	case allParse(cells, parsesInt):
		convert(values, cells, func(s string) any {
			i, _ := strconv.ParseInt(s, 10, 64)
			return i
		})
	case allParse(cells, parsesFloat):
		convert(values, cells, func(s string) any {
			f, _ := strconv.ParseFloat(s, 64)
			return f
		})
	case allParse(cells, parsesBool):
		convert(values, cells, func(s string) any {
			return s == "true"
		})
	default:
		convert(values, cells, func(s string) any {
			return s
		})
	}
	//
	return values
}

func allParse(cells []string, parses func(string) bool) bool {
	for _, s := range cells {
		if s != "" && !parses(s) {
			return false
		}
	}
	//
	return true
}

func convert(values []any, cells []string, conv func(string) any) {
	for i, s := range cells {
		if s == "" {
			values[i] = nil
		} else {
			values[i] = conv(s)
		}
	}
}

func parsesInt(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

func parsesFloat(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func parsesBool(s string) bool {
	return s == "true" || s == "false"
}
