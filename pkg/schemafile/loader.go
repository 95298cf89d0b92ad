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

// Package schemafile loads schema declarations from YAML files.  A
// declaration names the schema and lists its fields, each with a type
// expression (see ParseType) and an optional validator chain:
//
//	schema: user
//	fields:
//	  - name: name
//	    type: str
//	  - name: age
//	    type: int
//	    validators:
//	      - range: {min: 0, max: 150}
//	  - name: status
//	    type: literal(pending, approved, rejected)
package schemafile

import (
	"fmt"
	"os"
	"sync"

	"github.com/consensys/go-framecheck/pkg/schema"
	"github.com/consensys/go-framecheck/pkg/schema/constraint"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// declaration mirrors the YAML document structure.
type declaration struct {
	Schema string  `yaml:"schema"`
	Fields []field `yaml:"fields"`
}

type field struct {
	Name       string           `yaml:"name"`
	Type       string           `yaml:"type"`
	Validators []map[string]any `yaml:"validators"`
}

// Load reads and builds a schema declaration from a YAML file.
func Load(path string) (*schema.SchemaSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	//
	return FromBytes(data)
}

// Building a spec is deterministic and side-effect free, so caching one per
// declaration file is purely an optimisation.
var (
	cacheMutex sync.Mutex
	cache      = make(map[string]*schema.SchemaSpec)
)

// LoadCached is Load with a per-path cache of built specs.
func LoadCached(path string) (*schema.SchemaSpec, error) {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()
	//
	if spec, ok := cache[path]; ok {
		return spec, nil
	}
	//
	spec, err := Load(path)
	if err != nil {
		return nil, err
	}
	//
	cache[path] = spec
	//
	return spec, nil
}

// FromBytes builds a schema declaration from YAML data.  Malformed
// declarations (bad type expressions, illegal notrequired nesting, duplicate
// fields, unknown validators) surface as a *schema.SchemaDefinitionError.
func FromBytes(data []byte) (*schema.SchemaSpec, error) {
	var decl declaration
	//
	if err := yaml.Unmarshal(data, &decl); err != nil {
		return nil, err
	}
	//
	builder := schema.NewBuilder(decl.Schema)
	//
	for _, f := range decl.Fields {
		t, err := ParseType(f.Type)
		if err != nil {
			return nil, &schema.SchemaDefinitionError{
				Schema: decl.Schema, Field: f.Name, Msg: err.Error(),
			}
		}
		//
		validators, err := decodeValidators(f.Validators)
		if err != nil {
			return nil, &schema.SchemaDefinitionError{
				Schema: decl.Schema, Field: f.Name, Msg: err.Error(),
			}
		}
		//
		builder.Field(f.Name, t, validators...)
	}
	//
	return builder.Build()
}

// decodeValidators converts the raw validator entries of one field into
// constraints, preserving declaration order.  Each entry is a single-key map
// naming the validator, with a validator-specific configuration value.
func decodeValidators(entries []map[string]any) ([]constraint.Constraint, error) {
	var validators []constraint.Constraint
	//
	for _, entry := range entries {
		if len(entry) != 1 {
			return nil, fmt.Errorf("validator entry must have exactly one key")
		}
		//
		for name, config := range entry {
			v, err := decodeValidator(name, config)
			if err != nil {
				return nil, err
			}
			//
			validators = append(validators, v)
		}
	}
	//
	return validators, nil
}

func decodeValidator(name string, config any) (constraint.Constraint, error) {
	switch name {
	case "range":
		var cfg struct {
			Min float64
			Max float64
		}
		//
		if err := mapstructure.Decode(config, &cfg); err != nil {
			return nil, fmt.Errorf("range: %w", err)
		}
		//
		return constraint.Range(cfg.Min, cfg.Max), nil
	case "regex":
		pattern, ok := config.(string)
		if !ok {
			return nil, fmt.Errorf("regex expects a pattern string")
		}
		//
		return constraint.Regex(pattern)
	case "in":
		var allowed []any
		if err := mapstructure.Decode(config, &allowed); err != nil {
			return nil, fmt.Errorf("in: %w", err)
		}
		//
		return constraint.In(normalizeScalars(allowed)...), nil
	case "minlen":
		n, err := decodeUint(config)
		if err != nil {
			return nil, fmt.Errorf("minlen: %w", err)
		}
		//
		return constraint.MinLen(n), nil
	case "maxlen":
		n, err := decodeUint(config)
		if err != nil {
			return nil, fmt.Errorf("maxlen: %w", err)
		}
		//
		return constraint.MaxLen(n), nil
	case "unique":
		return constraint.Unique(), nil
	}
	//
	return nil, fmt.Errorf("unknown validator %q", name)
}

func decodeUint(config any) (uint, error) {
	var n uint
	//
	if err := mapstructure.Decode(config, &n); err != nil {
		return 0, err
	}
	//
	return n, nil
}

// normalizeScalars widens YAML-decoded numerics into the frame value model
// (int64 / float64).
func normalizeScalars(values []any) []any {
	for i, v := range values {
		switch v := v.(type) {
		case int:
			values[i] = int64(v)
		case float32:
			values[i] = float64(v)
		}
	}
	//
	return values
}
