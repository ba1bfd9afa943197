// Copyright 2024 genftype Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ftype

import (
	"fmt"

	"genftype/internal/common"
)

// Rule replaces the mnemonic From with To.
type Rule struct {
	From byte
	To   byte
}

// ParseRules reads a translation string two characters at a time.
// "dDl@" yields d->D and l->@. An empty string yields no rules.
func ParseRules(s string) ([]Rule, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: %q", common.ErrTranslateOddLength, s)
	}
	rules := make([]Rule, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		rules = append(rules, Rule{From: s[i], To: s[i+1]})
	}
	return rules, nil
}

// Translate rewrites the table in place. Each slot is run through every rule
// in order, so a rule sees the output of the rules before it: "abbc" turns
// 'a' into 'c'.
func (t Table) Translate(rules []Rule) {
	for i := range t {
		for _, r := range rules {
			if t[i] == r.From {
				t[i] = r.To
			}
		}
	}
}
