// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Package git provides a simplified git interface for reading file revisions from a repository.
package git

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

type Repo struct {
	dir string
}

func Open(dir string) (*Repo, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}
	if _, err := git("-C", dir, "rev-parse", "--git-dir"); err != nil {
		return nil, err
	}
	return &Repo{dir: dir}, nil
}

// Log returns up to n commit IDs that changed path, newest first. The path is relative to the
// directory the repository was opened with. If n <= 0, all commits are
// returned.
func (r *Repo) Log(path string, n int) ([]string, error) {
	args := []string{"-C", r.dir, "log", "--format=%H"}
	if n > 0 {
		args = append(args, fmt.Sprintf("-n%d", n))
	}
	args = append(args, "--", path)
	out, err := git(args...)
	if err != nil {
		return nil, err
	}
	revs := strings.Split(out, "\n")
	if revs[len(revs)-1] == "" {
		revs = revs[:len(revs)-1]
	}
	return revs, nil
}

// Show returns the contents of path at revision rev. Like for Log, the path is relative to the
// directory the repository was opened with.
func (r *Repo) Show(rev, path string) (string, error) {
	return git("-C", r.dir, "show", rev+":./"+filepath.ToSlash(path))
}

func git(args ...string) (string, error) {
	var wout, werr strings.Builder
	cmd := exec.Command("git", args...)
	cmd.Stdout = &wout
	cmd.Stderr = &werr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running git command %v: %v\n%s", cmd, err, werr.String())
	}
	return wout.String(), nil
}
