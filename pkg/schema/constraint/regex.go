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
package constraint

import (
	"fmt"
	"regexp"
)

// RegexConstraint restricts string values to those matching a pattern in
// full (the pattern is anchored at both ends).
type RegexConstraint struct {
	pattern string
	regex   *regexp.Regexp
}

// Regex constructs a constraint requiring string values to match the given
// pattern in full.  An invalid pattern is reported as an error.
func Regex(pattern string) (*RegexConstraint, error) {
	regex, err := regexp.Compile(fmt.Sprintf(`\A(?:%s)\z`, pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	//
	return &RegexConstraint{pattern, regex}, nil
}

// MustRegex is like Regex, but panics on an invalid pattern.
func MustRegex(pattern string) *RegexConstraint {
	c, err := Regex(pattern)
	if err != nil {
		panic(err)
	}
	//
	return c
}

// Check determines whether a single value satisfies this constraint.
// Non-string values fail.
func (p *RegexConstraint) Check(value any) bool {
	if s, ok := value.(string); ok {
		return p.regex.MatchString(s)
	}
	//
	return false
}

// Describe returns a human-readable description of this constraint.
func (p *RegexConstraint) Describe() string {
	return fmt.Sprintf("value must match pattern %q", p.pattern)
}
