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

// Package fileopstest provides a recording fileops.Handler for tests.
package fileopstest

import (
	"os"

	"github.com/stretchr/testify/mock"
	"github.com/walteh/regroup/pkg/fileops"
)

var _ fileops.Handler = (*Recorder)(nil)

// 🔧 Recorder is a testify mock of fileops.Handler. Every call is recorded in
// order; expectations are set with On as with any testify mock.
type Recorder struct {
	mock.Mock
}

// 🏭 NewRecorder creates a recorder that asserts its expectations when the test ends
func NewRecorder(t interface {
	mock.TestingT
	Cleanup(func())
}) *Recorder {
	r := &Recorder{}
	r.Mock.Test(t)
	t.Cleanup(func() { r.AssertExpectations(t) })
	return r
}

func (r *Recorder) MkdirAll(path string, perm os.FileMode) error {
	return r.Called(path, perm).Error(0)
}

func (r *Recorder) Rename(from, to string) error {
	return r.Called(from, to).Error(0)
}

func (r *Recorder) Copy(from, to string) (int64, error) {
	args := r.Called(from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (r *Recorder) Remove(path string) error {
	return r.Called(path).Error(0)
}

// Methods returns the names of the recorded calls in the order they were made
func (r *Recorder) Methods() []string {
	calls := r.Mock.Calls
	out := make([]string, 0, len(calls))
	for _, c := range calls {
		out = append(out, c.Method)
	}
	return out
}

// CallsTo returns the arguments of each recorded call to method, in order
func (r *Recorder) CallsTo(method string) [][]any {
	var out [][]any
	for _, c := range r.Mock.Calls {
		if c.Method == method {
			out = append(out, []any(c.Arguments))
		}
	}
	return out
}
