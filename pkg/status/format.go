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

package status

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🖨️ Format selects how a report is rendered
type Format string

const (
	FormatText Format = "text"
	FormatTree Format = "tree"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Formats lists every supported format
var Formats = []Format{FormatText, FormatTree, FormatYAML, FormatJSON}

// ParseFormat resolves a user supplied format name
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatText, nil
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.Errorf("unknown format %q (want one of %v)", s, Formats)
}

// 🎯 Render writes the group listing of r to w
func Render(w io.Writer, r *Report, format Format) error {
	switch format {
	case FormatText, "":
		return renderText(w, r)
	case FormatTree:
		return renderTree(w, r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return errors.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return errors.Errorf("encoding json: %w", err)
		}
		return nil
	default:
		return errors.Errorf("unknown format %q", format)
	}
}

// renderText prints each group heading followed by its tab-indented targets
func renderText(w io.Writer, r *Report) error {
	for _, g := range r.Groups {
		if _, err := fmt.Fprintf(w, "Group %d:\n", g.Number); err != nil {
			return errors.Errorf("writing group %d: %w", g.Number, err)
		}
		for _, t := range g.Transfers {
			if _, err := fmt.Fprintf(w, "\t%s\n", t.Target); err != nil {
				return errors.Errorf("writing group %d: %w", g.Number, err)
			}
		}
	}
	return nil
}

func renderTree(w io.Writer, r *Report) error {
	root := pterm.TreeNode{Text: r.Output}
	for _, g := range r.Groups {
		node := pterm.TreeNode{
			Text: fmt.Sprintf("Group %d %s (%s)", g.Number, g.Folder, g.Pattern),
		}
		for _, t := range g.Transfers {
			node.Children = append(node.Children, pterm.TreeNode{Text: t.Target})
		}
		root.Children = append(root.Children, node)
	}

	out, err := pterm.DefaultTree.WithRoot(root).Srender()
	if err != nil {
		return errors.Errorf("rendering tree: %w", err)
	}
	if _, err := io.WriteString(w, out); err != nil {
		return errors.Errorf("writing tree: %w", err)
	}
	return nil
}
