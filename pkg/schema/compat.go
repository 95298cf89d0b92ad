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

// Compatible decides structural subtyping between schemas: it holds when
// every field required by the second schema is declared by the first with a
// subsumed type.  In that case any dataset satisfying the candidate also
// satisfies the requirement, since datasets are matched purely on field
// names and types.
func Compatible(candidate, required *SchemaSpec) bool {
	for _, rf := range required.Fields() {
		cf, ok := candidate.Field(rf.Name)
		//
		if !ok {
			if rf.Required() {
				return false
			}
			//
			continue
		}
		//
		if !subsumes(unwrap(rf.Type), unwrap(cf.Type)) {
			return false
		}
	}
	//
	return true
}

func unwrap(t Type) Type {
	if nr := t.AsNotRequired(); nr != nil {
		return nr.Inner
	}
	//
	return t
}

// subsumes checks whether every value accepted by the sub type is also
// accepted by the super type.  This is deliberately syntactic, mirroring the
// acceptance rules of the algebra rather than attempting full semantic
// inclusion.
func subsumes(super, sub Type) bool {
	if super.Equal(sub) {
		return true
	}
	//
	switch super := super.(type) {
	case *FloatType:
		// Integers embed into floats.
		_, ok := sub.(*IntType)
		return ok
	case *OptionType:
		if o, ok := sub.(*OptionType); ok {
			return subsumes(super.Inner, o.Inner)
		} else if _, ok := sub.(*nullType); ok {
			return true
		}
		//
		return subsumes(super.Inner, sub)
	case *UnionType:
		return unionSubsumes(super, sub)
	case *LiteralType:
		if o, ok := sub.(*LiteralType); ok {
			for _, v := range o.Values {
				if !super.Accept(v) {
					return false
				}
			}
			//
			return true
		}
	}
	//
	return false
}

func unionSubsumes(super *UnionType, sub Type) bool {
	switch sub := sub.(type) {
	case *nullType:
		return super.IsNullable
	case *OptionType:
		return super.IsNullable && unionSubsumes(super, sub.Inner)
	case *UnionType:
		if sub.IsNullable && !super.IsNullable {
			return false
		}
		//
		for _, m := range sub.Members {
			if !unionSubsumes(super, m) {
				return false
			}
		}
		//
		return true
	}
	// Otherwise, some member must subsume the sub type.
	for _, m := range super.Members {
		if subsumes(m, sub) {
			return true
		}
	}
	//
	return false
}
