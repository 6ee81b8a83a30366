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

// Package classify assigns scanned files to the groups defined by the
// pattern list and plans where each one lands.
package classify

import (
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/walteh/regroup/pkg/pattern"
	"github.com/walteh/regroup/pkg/scan"
)

// 📦 Entry pairs a scanned file with its path inside the group folder
type Entry struct {
	Source      string `json:"source" yaml:"source"`
	Destination string `json:"destination" yaml:"destination"`
}

// 📂 Group holds the entries matched by one pattern, in scan order
type Group struct {
	Index   int
	Pattern *pattern.Pattern
	Entries []Entry

	sources map[string]struct{}
}

// Number is the 1-based group number
func (g *Group) Number() int {
	return g.Index + 1
}

// Folder is the name of the group's folder under the output root
func (g *Group) Folder(prefix string) string {
	return Folder(prefix, g.Index)
}

// Target is the full destination of e under outputRoot
func (g *Group) Target(outputRoot, prefix string, e Entry) string {
	return filepath.Join(outputRoot, g.Folder(prefix), e.Destination)
}

// Contains reports whether source was already assigned to the group
func (g *Group) Contains(source string) bool {
	_, ok := g.sources[source]
	return ok
}

// add appends e unless its source is already present
func (g *Group) add(e Entry) bool {
	if g.Contains(e.Source) {
		return false
	}
	if g.sources == nil {
		g.sources = make(map[string]struct{})
	}
	g.sources[e.Source] = struct{}{}
	g.Entries = append(g.Entries, e)
	return true
}

// Collisions returns destinations claimed by more than one source, each
// listed once in first-seen order. Only flattened groups can have them.
func (g *Group) Collisions() []string {
	seen := make(map[string]int, len(g.Entries))
	var out []string
	for _, e := range g.Entries {
		seen[e.Destination]++
		if seen[e.Destination] == 2 {
			out = append(out, e.Destination)
		}
	}
	return out
}

// Folder names the folder of the group at 0-based index: prefix followed by
// the 1-based group number.
func Folder(prefix string, index int) string {
	return prefix + strconv.Itoa(index+1)
}

// 🗂️ Classify builds one group per pattern. Every pattern is evaluated
// independently for every file, so a file may land in several groups.
func Classify(patterns []*pattern.Pattern, files []scan.Entry, sourceRoot string, flatten bool) []*Group {
	groups := make([]*Group, len(patterns))
	for i, p := range patterns {
		groups[i] = &Group{Index: i, Pattern: p}
	}

	for _, file := range files {
		dest, ok := Destination(file, sourceRoot, flatten)
		if !ok {
			continue
		}
		for i, p := range patterns {
			if !p.Match(file) {
				continue
			}
			groups[i].add(Entry{Source: file, Destination: dest})
		}
	}

	return groups
}

// Destination computes the group-relative destination of file. The source
// root is stripped when file lies under it and file is kept as is otherwise.
// With flatten only the base name is kept. ok is false when no usable
// destination exists.
func Destination(file, sourceRoot string, flatten bool) (string, bool) {
	if !utf8.ValidString(file) {
		return "", false
	}

	rel := Relative(file, sourceRoot)
	if flatten {
		rel = filepath.Base(rel)
	}

	switch rel {
	case "", ".", string(filepath.Separator):
		return "", false
	}
	return rel, true
}

// Relative strips sourceRoot from file. A file equal to the root (a file
// given as the source) keeps its base name.
func Relative(file, sourceRoot string) string {
	root := filepath.Clean(sourceRoot)
	clean := filepath.Clean(file)

	if clean == root {
		return filepath.Base(clean)
	}
	if root == "." {
		return file
	}

	prefix := root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	if rel, ok := strings.CutPrefix(clean, prefix); ok {
		return rel
	}
	return file
}
