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
package schemafile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/consensys/go-framecheck/pkg/schema"
)

// ParseType parses a type expression string into the type algebra.  The
// grammar is:
//
//	type := "int" | "float" | "str" | "bool" | "timestamp" | "none"
//	      | "option" "(" type ")"
//	      | "union" "(" type { "," type } ")"
//	      | "literal" "(" scalar { "," scalar } ")"
//	      | "notrequired" "(" type ")"
//	      | "native" "(" tag ")"
//
// Scalars inside literal(...) parse as int, float or bool where possible,
// with single- or double-quoted strings for everything else (bare words also
// read as strings).
func ParseType(input string) (schema.Type, error) {
	p := &typeParser{input, 0}
	//
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	//
	p.skipSpace()
	//
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("trailing input %q in type expression", p.input[p.pos:])
	}
	//
	return t, nil
}

type typeParser struct {
	input string
	pos   int
}

func (p *typeParser) parseType() (schema.Type, error) {
	word := p.parseWord()
	//
	switch word {
	case "int":
		return schema.Int, nil
	case "float":
		return schema.Float, nil
	case "str", "string":
		return schema.String, nil
	case "bool":
		return schema.Bool, nil
	case "timestamp":
		return schema.Timestamp, nil
	case "none", "null":
		return schema.Null, nil
	case "option":
		inner, err := p.parseUnaryArg()
		if err != nil {
			return nil, err
		}
		//
		return schema.NewOption(inner), nil
	case "notrequired":
		inner, err := p.parseUnaryArg()
		if err != nil {
			return nil, err
		}
		//
		return schema.NewNotRequired(inner), nil
	case "union":
		members, err := p.parseTypeArgs()
		if err != nil {
			return nil, err
		}
		//
		return schema.NewUnion(members...), nil
	case "literal":
		values, err := p.parseScalarArgs()
		if err != nil {
			return nil, err
		}
		//
		return schema.NewLiteral(values...), nil
	case "native":
		tags, err := p.parseScalarArgs()
		if err != nil {
			return nil, err
		} else if len(tags) != 1 {
			return nil, fmt.Errorf("native expects exactly one tag")
		}
		//
		tag, ok := tags[0].(string)
		if !ok {
			return nil, fmt.Errorf("native tag must be a name, found %v", tags[0])
		}
		//
		return schema.NewNative(tag), nil
	case "":
		return nil, fmt.Errorf("missing type expression")
	}
	//
	return nil, fmt.Errorf("unknown type %q", word)
}

// parseUnaryArg parses "(" type ")".
func (p *typeParser) parseUnaryArg() (schema.Type, error) {
	args, err := p.parseTypeArgs()
	if err != nil {
		return nil, err
	} else if len(args) != 1 {
		return nil, fmt.Errorf("expected exactly one argument, found %d", len(args))
	}
	//
	return args[0], nil
}

// parseTypeArgs parses a parenthesised, comma-separated list of types.
func (p *typeParser) parseTypeArgs() ([]schema.Type, error) {
	var args []schema.Type
	//
	err := p.parseList(func() error {
		arg, err := p.parseType()
		args = append(args, arg)
		return err
	})
	//
	return args, err
}

// parseScalarArgs parses a parenthesised, comma-separated list of scalars.
func (p *typeParser) parseScalarArgs() ([]any, error) {
	var args []any
	//
	err := p.parseList(func() error {
		arg, err := p.parseScalarArg()
		args = append(args, arg)
		return err
	})
	//
	return args, err
}

func (p *typeParser) parseList(elem func() error) error {
	if !p.consume('(') {
		return fmt.Errorf("expected '(' at position %d", p.pos)
	}
	//
	for {
		if err := elem(); err != nil {
			return err
		}
		//
		if p.consume(',') {
			continue
		} else if p.consume(')') {
			return nil
		}
		//
		return fmt.Errorf("expected ',' or ')' at position %d", p.pos)
	}
}

// parseScalarArg parses one literal value: an int, float or bool where it
// parses as such, a quoted string, the word none/null, or a bare word read
// as a string.
func (p *typeParser) parseScalarArg() (any, error) {
	p.skipSpace()
	// Quoted strings
	if p.pos < len(p.input) && (p.input[p.pos] == '\'' || p.input[p.pos] == '"') {
		return p.parseQuoted()
	}
	//
	word := p.parseWord()
	if word == "" {
		return nil, fmt.Errorf("missing value at position %d", p.pos)
	}
	//
	switch word {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "none", "null":
		return nil, nil
	}
	//
	if i, err := strconv.ParseInt(word, 10, 64); err == nil {
		return i, nil
	} else if f, err := strconv.ParseFloat(word, 64); err == nil {
		return f, nil
	}
	//
	return word, nil
}

func (p *typeParser) parseQuoted() (any, error) {
	quote := p.input[p.pos]
	p.pos++
	//
	end := strings.IndexByte(p.input[p.pos:], quote)
	if end < 0 {
		return nil, fmt.Errorf("unterminated string at position %d", p.pos-1)
	}
	//
	s := p.input[p.pos : p.pos+end]
	p.pos += end + 1
	//
	return s, nil
}

// parseWord reads an identifier or bare scalar, stopping at punctuation.
func (p *typeParser) parseWord() string {
	p.skipSpace()
	//
	start := p.pos
	for p.pos < len(p.input) && !strings.ContainsRune("(),'\" \t", rune(p.input[p.pos])) {
		p.pos++
	}
	//
	return p.input[start:p.pos]
}

func (p *typeParser) consume(c byte) bool {
	p.skipSpace()
	//
	if p.pos < len(p.input) && p.input[p.pos] == c {
		p.pos++
		return true
	}
	//
	return false
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}
