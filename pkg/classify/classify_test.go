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

package classify_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/regroup/pkg/classify"
	"github.com/walteh/regroup/pkg/pattern"
)

func mustCompile(t *testing.T, exprs ...string) []*pattern.Pattern {
	t.Helper()
	patterns, err := pattern.Compile(exprs)
	require.NoError(t, err)
	return patterns
}

func targets(g *classify.Group, outputRoot, prefix string) []string {
	out := make([]string, 0, len(g.Entries))
	for _, e := range g.Entries {
		out = append(out, g.Target(outputRoot, prefix, e))
	}
	return out
}

func TestClassify(t *testing.T) {
	files := []string{"src/a.bin", "src/sub/b.bin", "src/c.d"}

	tests := []struct {
		name    string
		exprs   []string
		files   []string
		root    string
		flatten bool
		want    [][]string
	}{
		{
			name:  "preserve_structure",
			exprs: []string{`.bin$`, `.d$`},
			files: files,
			root:  "src",
			want: [][]string{
				{"out/g1/a.bin", "out/g1/sub/b.bin"},
				{"out/g2/c.d"},
			},
		},
		{
			name:    "flatten",
			exprs:   []string{`.bin$`, `.d$`},
			files:   files,
			root:    "src",
			flatten: true,
			want: [][]string{
				{"out/g1/a.bin", "out/g1/b.bin"},
				{"out/g2/c.d"},
			},
		},
		{
			name:  "identical_patterns_are_independent",
			exprs: []string{`.bin$`, `.bin$`},
			files: []string{"src/a.bin"},
			root:  "src",
			want: [][]string{
				{"out/g1/a.bin"},
				{"out/g2/a.bin"},
			},
		},
		{
			name:  "unmatched_files_are_absent",
			exprs: []string{`\.txt$`, `.d$`},
			files: files,
			root:  "src",
			want: [][]string{
				{},
				{"out/g2/c.d"},
			},
		},
		{
			name:  "file_outside_root_is_kept_whole",
			exprs: []string{`\.bin$`},
			files: []string{"elsewhere/x.bin"},
			root:  "src",
			want: [][]string{
				{"out/g1/elsewhere/x.bin"},
			},
		},
		{
			name:  "dot_root_keeps_paths",
			exprs: []string{`\.bin$`},
			files: []string{"some/path/with/file.bin", "some/other/path/with/file.bin"},
			root:  ".",
			want: [][]string{
				{"out/g1/some/path/with/file.bin", "out/g1/some/other/path/with/file.bin"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := classify.Classify(mustCompile(t, tt.exprs...), tt.files, tt.root, tt.flatten)
			require.Len(t, groups, len(tt.exprs))
			for i, g := range groups {
				assert.Equal(t, i, g.Index)
				assert.Equal(t, i+1, g.Number())
				want := make([]string, 0, len(tt.want[i]))
				for _, w := range tt.want[i] {
					want = append(want, filepath.FromSlash(w))
				}
				assert.Equal(t, want, targets(g, "out", "g"), "group %d", g.Number())
			}
		})
	}
}

func TestClassifyMembershipFollowsMatch(t *testing.T) {
	patterns := mustCompile(t, `\.bin$`, `^src/sub/`, `nomatch`)
	files := []string{"src/a.bin", "src/sub/b.bin", "src/sub/c.txt", "src/d.txt"}

	groups := classify.Classify(patterns, files, "src", false)

	for _, g := range groups {
		for _, f := range files {
			assert.Equal(t, g.Pattern.Match(f), g.Contains(f), "group %d file %s", g.Number(), f)
		}
	}
}

func TestClassifyNoDuplicateSources(t *testing.T) {
	patterns := mustCompile(t, `\.bin$`)
	files := []string{"src/a.bin", "src/a.bin", "src/b.bin"}

	groups := classify.Classify(patterns, files, "src", false)
	require.Len(t, groups, 1)
	assert.Equal(t, []classify.Entry{
		{Source: "src/a.bin", Destination: "a.bin"},
		{Source: "src/b.bin", Destination: "b.bin"},
	}, groups[0].Entries)
}

func TestClassifyFlattenKeepsSourcePairing(t *testing.T) {
	patterns := mustCompile(t, `\.bin$`)
	files := []string{"src/x/a.bin", "src/y/a.bin"}

	groups := classify.Classify(patterns, files, "src", true)
	require.Len(t, groups[0].Entries, 2)

	assert.Equal(t, "src/x/a.bin", groups[0].Entries[0].Source)
	assert.Equal(t, "src/y/a.bin", groups[0].Entries[1].Source)
	for _, e := range groups[0].Entries {
		assert.Equal(t, "a.bin", e.Destination)
	}
	assert.Equal(t, []string{"a.bin"}, groups[0].Collisions())
}

func TestClassifySkipsUnusableNames(t *testing.T) {
	patterns := mustCompile(t, `.*`)
	files := []string{"src/ok.bin", "src/bad\xff.bin"}

	groups := classify.Classify(patterns, files, "src", true)
	assert.Equal(t, []classify.Entry{{Source: "src/ok.bin", Destination: "ok.bin"}}, groups[0].Entries)
}

func TestDestination(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		root    string
		flatten bool
		want    string
		ok      bool
	}{
		{"relative", "src/sub/b.bin", "src", false, "sub/b.bin", true},
		{"flat", "src/sub/b.bin", "src", true, "b.bin", true},
		{"root_with_trailing_slash", "src/sub/b.bin", "src/", false, "sub/b.bin", true},
		{"root_with_dot_slash", "src/sub/b.bin", "./src", false, "sub/b.bin", true},
		{"not_under_root", "other/b.bin", "src", false, "other/b.bin", true},
		{"prefix_is_not_a_parent", "srcx/b.bin", "src", false, "srcx/b.bin", true},
		{"file_is_root", "src/a.bin", "src/a.bin", false, "a.bin", true},
		{"empty", "", "src", true, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := classify.Destination(filepath.FromSlash(tt.file), filepath.FromSlash(tt.root), tt.flatten)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, filepath.FromSlash(tt.want), got)
		})
	}
}

func TestFolder(t *testing.T) {
	assert.Equal(t, "1", classify.Folder("", 0))
	assert.Equal(t, "g3", classify.Folder("g", 2))
	assert.Equal(t, "prefix10", classify.Folder("prefix", 9))
}
