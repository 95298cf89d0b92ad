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
package schema

import (
	"fmt"
	"strings"
)

// SchemaDefinitionError reports a malformed schema declaration.  It is
// raised at schema-build time and is never recoverable at validation time.
//
//nolint:revive
type SchemaDefinitionError struct {
	// Schema being built.
	Schema string
	// Field at fault, where applicable.
	Field string
	// Msg describes what is malformed.
	Msg string
}

func definitionError(schema, field, msg string) *SchemaDefinitionError {
	return &SchemaDefinitionError{schema, field, msg}
}

func (e *SchemaDefinitionError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("schema %q: %s", e.Schema, e.Msg)
	}
	//
	return fmt.Sprintf("schema %q, field %q: %s", e.Schema, e.Field, e.Msg)
}

// ValidationError is the aggregated error surfaced when a dataset fails
// validation.  Its message lists every failing field's reason and, for
// constraint violations, every offending row index.  Callers wanting the
// structured results instead should use Validate directly and inspect the
// report.
type ValidationError struct {
	// Report holds the complete, structured validation outcome.
	Report *Report
}

func (e *ValidationError) Error() string {
	var lines []string
	//
	for _, fr := range e.Report.Fields {
		if fr.Outcome != nil {
			lines = append(lines, fr.Outcome.Message())
		}
	}
	//
	return fmt.Sprintf("schema validation failed:\n  %s", strings.Join(lines, "\n  "))
}
