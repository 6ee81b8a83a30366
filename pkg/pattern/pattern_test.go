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
package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/regroup/pkg/errs"
)

func TestCompile(t *testing.T) {
	patterns, err := Compile([]string{`\.bin$`, `\.d$`, `\.bin$`})
	require.NoError(t, err)
	require.Len(t, patterns, 3)

	for i, p := range patterns {
		assert.Equal(t, i, p.Index)
		assert.Equal(t, i+1, p.Number())
	}
	assert.Equal(t, `\.d$`, patterns[1].String())
}

func TestCompileIsAllOrNothing(t *testing.T) {
	patterns, err := Compile([]string{`ok`, `(unclosed`, `[also bad`})
	require.Error(t, err)
	assert.Nil(t, patterns)

	var perr *errs.PatternError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 1, perr.Index)
	assert.Equal(t, `(unclosed`, perr.Expr)
	assert.Contains(t, err.Error(), "invalid expression #2")
}

func TestCompileEmpty(t *testing.T) {
	_, err := Compile(nil)
	require.Error(t, err)
	assert.True(t, errs.IsPattern(err))
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name string
		expr string
		path string
		want bool
	}{
		{"suffix", `\.bin$`, "some/path/file.bin", true},
		{"suffix_miss", `\.bin$`, "some/path/file.bin.bak", false},
		{"unanchored_substring", `path`, "some/path/file.d", true},
		{"directory_part_matches", `^src/sub/`, "src/sub/b.bin", true},
		{"anchored_start_miss", `^sub/`, "src/sub/b.bin", false},
		{"unescaped_dot_is_any_char", `.d$`, "src/cod", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patterns, err := Compile([]string{tt.expr})
			require.NoError(t, err)
			assert.Equal(t, tt.want, patterns[0].Match(tt.path))
		})
	}
}
