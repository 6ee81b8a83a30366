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

package operation

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/regroup/pkg/classify"
	"github.com/walteh/regroup/pkg/errs"
	"github.com/walteh/regroup/pkg/fileops"
)

// 📁 EnsureDirectories creates the parent directory of every target in the
// group. Each parent is requested once per group.
func EnsureDirectories(ctx context.Context, h fileops.Handler, g *classify.Group, outputRoot, prefix string) error {
	logger := zerolog.Ctx(ctx)

	seen := make(map[string]struct{}, len(g.Entries))
	for _, e := range g.Entries {
		dir := filepath.Dir(g.Target(outputRoot, prefix, e))
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}

		if err := h.MkdirAll(dir, DirPerm); err != nil {
			return &errs.IOError{Op: "mkdir", Path: dir, Err: err}
		}
		logger.Trace().Str("dir", dir).Int("group", g.Number()).Msg("directory ready")
	}

	return nil
}
