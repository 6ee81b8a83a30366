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
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent   = 4  // spaces to indent file entries
	nameWidth    = 35 // Base width for target path
	outcomeWidth = 15 // Width for outcome text
)

// 🎯 FormatTransfer formats one transfer for display
func FormatTransfer(t Transfer) string {
	var prefix string
	switch t.Outcome {
	case OutcomeCopied:
		prefix = color.GreenString("✓")
	case OutcomeMoved:
		prefix = color.CyanString("→")
	case OutcomeMovedByCopy:
		prefix = color.YellowString("⟳")
	case OutcomePlanned:
		prefix = color.HiBlackString("•")
	default:
		prefix = color.HiBlackString("-")
	}

	return fmt.Sprintf("%s%s %s %s",
		strings.Repeat(" ", fileIndent),
		prefix,
		fmt.Sprintf("%-*s", nameWidth, t.Target),
		fmt.Sprintf("%-*s", outcomeWidth, t.Outcome),
	)
}

// 📊 FormatSummary formats the totals of a report
func FormatSummary(r *Report) string {
	counts := r.Counts()
	parts := make([]string, 0, 4)
	for _, o := range []Outcome{OutcomePlanned, OutcomeCopied, OutcomeMoved, OutcomeMovedByCopy} {
		if counts[o] > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", counts[o], o))
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%d groups, no files", len(r.Groups))
	}
	return fmt.Sprintf("%d groups, %s", len(r.Groups), strings.Join(parts, ", "))
}
