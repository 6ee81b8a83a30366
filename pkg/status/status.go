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
	"gitlab.com/tozd/go/errors"
)

// 📊 Outcome is what happened to one planned transfer
type Outcome int

const (
	OutcomeUnknown     Outcome = iota
	OutcomePlanned             // computed but not executed (dry run)
	OutcomeCopied              // copied, source left in place
	OutcomeMoved               // renamed in one step
	OutcomeMovedByCopy         // rename failed, copied then source removed
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomePlanned:
		return "planned"
	case OutcomeCopied:
		return "copied"
	case OutcomeMoved:
		return "moved"
	case OutcomeMovedByCopy:
		return "moved-by-copy"
	default:
		return "unknown"
	}
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(b []byte) error {
	for _, c := range []Outcome{OutcomePlanned, OutcomeCopied, OutcomeMoved, OutcomeMovedByCopy} {
		if c.String() == string(b) {
			*o = c
			return nil
		}
	}
	return errors.Errorf("unknown outcome %q", string(b))
}

// 📄 Transfer is one file written into a group folder
type Transfer struct {
	Source  string  `json:"source" yaml:"source"`
	Target  string  `json:"target" yaml:"target"`
	Outcome Outcome `json:"outcome" yaml:"outcome"`
}

// 📂 Group collects the transfers of one group
type Group struct {
	Number    int        `json:"group" yaml:"group"`
	Pattern   string     `json:"pattern" yaml:"pattern"`
	Folder    string     `json:"folder" yaml:"folder"`
	Transfers []Transfer `json:"files" yaml:"files"`
}

// Track records a transfer
func (g *Group) Track(t Transfer) {
	g.Transfers = append(g.Transfers, t)
}

// 📈 Report is the outcome of one run, group by group
type Report struct {
	Output string   `json:"output,omitempty" yaml:"output,omitempty"`
	DryRun bool     `json:"dry_run" yaml:"dry_run"`
	Groups []*Group `json:"groups" yaml:"groups"`
}

// 🏭 NewReport creates an empty report
func NewReport(output string, dryRun bool) *Report {
	return &Report{
		Output: output,
		DryRun: dryRun,
		Groups: []*Group{},
	}
}

// StartGroup appends a new group and returns it for tracking
func (r *Report) StartGroup(number int, pattern, folder string) *Group {
	g := &Group{
		Number:    number,
		Pattern:   pattern,
		Folder:    folder,
		Transfers: []Transfer{},
	}
	r.Groups = append(r.Groups, g)
	return g
}

// Total is the number of transfers across all groups
func (r *Report) Total() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Transfers)
	}
	return n
}

// Counts tallies transfers by outcome
func (r *Report) Counts() map[Outcome]int {
	counts := make(map[Outcome]int)
	for _, g := range r.Groups {
		for _, t := range g.Transfers {
			counts[t.Outcome]++
		}
	}
	return counts
}
