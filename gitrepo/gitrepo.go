// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package gitrepo queries a git repository for the years in which files
// were modified.
//
// It shells out to the git binary and parses its output; no libgit
// bindings are involved. All paths handed to [Repository] methods are
// relative to the repository root and use forward slashes, matching how
// git itself reports them.
package gitrepo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// YearSource resolves modification years from version control history.
// It exists so the updater can be exercised in tests without invoking
// real version control.
type YearSource interface {
	// Years returns the distinct, sorted years in which the file at path
	// (relative to the repository root) had its content modified.
	// Rename-only commits don't count. If since is non-zero, only commits
	// at or after it are considered. An empty result means the file has
	// no usable history.
	Years(ctx context.Context, path string, since time.Time) ([]int, error)

	// RepoYears is like Years, but for the repository as a whole.
	RepoYears(ctx context.Context, since time.Time) ([]int, error)

	// Staged returns the set of repository-relative paths that have
	// staged content changes. Rename-only entries are excluded.
	Staged(ctx context.Context) (map[string]bool, error)
}

// ErrNotRepository is returned by [Open] when the directory is not part of
// a git working tree.
var ErrNotRepository = errors.New("not a git repository")

// ErrOutsideRepository is returned by [Repository.Rel] for paths that
// don't live under the repository root.
var ErrOutsideRepository = errors.New("outside of the repository")

// Repository is a handle to a local git working tree.
type Repository struct {
	root string
}

var _ YearSource = (*Repository)(nil)

// Open locates the repository containing dir.
func Open(ctx context.Context, dir string) (*Repository, error) {
	if dir == "" {
		dir = "."
	}
	root, err := runGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotRepository, dir)
	}
	return &Repository{root: root}, nil
}

// Root returns the absolute path of the repository root.
func (r *Repository) Root() string { return r.root }

// Rel resolves path against the repository root and returns it in the
// slash-separated form git uses. It returns [ErrOutsideRepository] if the
// path doesn't live under the root.
func (r *Repository) Rel(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(r.root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s: %w", path, ErrOutsideRepository)
	}
	return filepath.ToSlash(rel), nil
}

// Years implements [YearSource].
//
// It asks git for every commit that touched path, following the file
// across renames, and collects the author years. A pure rename (status
// R100, no content delta) contributes nothing.
func (r *Repository) Years(ctx context.Context, path string, since time.Time) ([]int, error) {
	ok, err := r.hasCommits(ctx)
	if err != nil || !ok {
		return nil, err
	}
	args := []string{"log", "--follow", "--name-status", "--pretty=format:%aI"}
	if !since.IsZero() {
		args = append(args, "--since="+since.Format(time.RFC3339))
	}
	args = append(args, "--", path)
	out, err := r.git(ctx, args...)
	if err != nil {
		return nil, err
	}
	return logYears(out), nil
}

// RepoYears implements [YearSource].
func (r *Repository) RepoYears(ctx context.Context, since time.Time) ([]int, error) {
	ok, err := r.hasCommits(ctx)
	if err != nil || !ok {
		return nil, err
	}
	args := []string{"log", "--pretty=format:%aI"}
	if !since.IsZero() {
		args = append(args, "--since="+since.Format(time.RFC3339))
	}
	out, err := r.git(ctx, args...)
	if err != nil {
		return nil, err
	}
	seen := make(map[int]bool)
	for line := range strings.Lines(out) {
		if t, err := time.Parse(time.RFC3339, strings.TrimSpace(line)); err == nil {
			seen[t.Year()] = true
		}
	}
	return sortedYears(seen), nil
}

// Staged implements [YearSource].
func (r *Repository) Staged(ctx context.Context) (map[string]bool, error) {
	ok, err := r.hasCommits(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		// No HEAD to diff against; everything in the index counts.
		out, err := r.git(ctx, "ls-files", "--cached")
		if err != nil {
			return nil, err
		}
		staged := make(map[string]bool)
		for line := range strings.Lines(out) {
			if p := strings.TrimSpace(line); p != "" {
				staged[p] = true
			}
		}
		return staged, nil
	}
	out, err := r.git(ctx, "diff", "--name-status", "--cached")
	if err != nil {
		return nil, err
	}
	return changedPaths(out), nil
}

func (r *Repository) hasCommits(ctx context.Context) (bool, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return false, fmt.Errorf("git binary not found: %w", err)
	}
	_, err := r.git(ctx, "rev-parse", "HEAD")
	return err == nil, nil
}

func (r *Repository) git(ctx context.Context, args ...string) (string, error) {
	return runGit(ctx, r.root, args...)
}

func runGit(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("git %s: %w: %s", args[0], err, msg)
		}
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	return strings.TrimSuffix(stdout.String(), "\n"), nil
}

// logYears extracts the distinct author years from the output of
// git log --name-status --pretty=format:%aI for a single path.
//
// Each commit is printed as a timestamp line followed by the status entry
// for the path. A commit whose status is R100 renamed the file without
// changing its content and is skipped.
func logYears(out string) []int {
	var (
		seen    = make(map[int]bool)
		current time.Time
		valid   bool
	)
	for line := range strings.Lines(out) {
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}
		if !strings.Contains(line, "\t") {
			t, err := time.Parse(time.RFC3339, line)
			if err == nil {
				current, valid = t, true
			}
			continue
		}
		status, _, _ := strings.Cut(line, "\t")
		if status == "R100" {
			continue
		}
		if valid {
			seen[current.Year()] = true
		}
	}
	return sortedYears(seen)
}

// changedPaths parses git diff --name-status output into the set of paths
// whose content changed. A rename entry lists source and destination; the
// destination counts unless the rename carried no content change (R100).
func changedPaths(out string) map[string]bool {
	changed := make(map[string]bool)
	for line := range strings.Lines(out) {
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}
		if fields[0] == "R100" {
			continue
		}
		changed[fields[len(fields)-1]] = true
	}
	return changed
}

func sortedYears(seen map[int]bool) []int {
	if len(seen) == 0 {
		return nil
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
