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

// Package json reads datasets expressed in JSON notation.  For example,
// {"X": [0, 1], "Y": ["a", "b"]} is a dataset with two rows of data for two
// columns "X" and "Y".
package json

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/consensys/go-framecheck/pkg/frame"
)

// FromBytes parses a dataset expressed in JSON notation.  Column order
// follows the order of keys in the document, which requires token-level
// decoding (a plain map would forget it).  JSON numbers become int64 when
// integral and float64 otherwise; JSON null becomes the null marker.
func FromBytes(data []byte) (*frame.ArrayFrame, error) {
	var columns []frame.Column
	//
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	// Opening brace
	if tok, err := decoder.Token(); err != nil {
		return nil, err
	} else if tok != json.Delim('{') {
		return nil, fmt.Errorf("expected JSON object, found %v", tok)
	}
	//
	for decoder.More() {
		tok, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		// Keys are always strings inside an object.
		name := tok.(string)
		//
		var raw []any
		if err := decoder.Decode(&raw); err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		//
		values := make([]any, len(raw))
		//
		for i, v := range raw {
			if values[i], err = convertValue(v); err != nil {
				return nil, fmt.Errorf("column %q (row %d): %w", name, i, err)
			}
		}
		//
		columns = append(columns, frame.NewColumn(name, values))
	}
	// Closing brace
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	//
	return frame.FromColumns(columns...)
}

func convertValue(v any) (any, error) {
	switch v := v.(type) {
	case nil, bool, string:
		return v, nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		//
		return v.Float64()
	}
	//
	return nil, fmt.Errorf("unsupported value %v", v)
}
