// Copyright 2025 walteh LLC
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

// Package pattern compiles the ordered expression list that defines groups.
//
// Expressions are unanchored and match against the whole path of a file as
// produced by the scan, with forward slashes as separators on every platform.
// Use ^ and $ to anchor.
package pattern

import (
	"path/filepath"
	"regexp"

	"github.com/walteh/regroup/pkg/errs"
	"gitlab.com/tozd/go/errors"
)

// 🧩 Pattern is one compiled expression and its position in the list
type Pattern struct {
	Index int
	Expr  string
	re    *regexp.Regexp
}

// Number is the 1-based position used to name the pattern's group
func (p *Pattern) Number() int {
	return p.Index + 1
}

// Match reports whether the expression matches anywhere in path
func (p *Pattern) Match(path string) bool {
	return p.re.MatchString(filepath.ToSlash(path))
}

func (p *Pattern) String() string {
	return p.Expr
}

// 🏗️ Compile compiles every expression in order. The first invalid expression
// aborts compilation and nothing is returned.
func Compile(exprs []string) ([]*Pattern, error) {
	if len(exprs) == 0 {
		return nil, &errs.PatternError{Index: -1, Err: errors.New("at least one expression is required")}
	}

	patterns := make([]*Pattern, 0, len(exprs))
	for i, expr := range exprs {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, &errs.PatternError{Index: i, Expr: expr, Err: err}
		}
		patterns = append(patterns, &Pattern{Index: i, Expr: expr, re: re})
	}
	return patterns, nil
}
