// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"

	"go.astrophena.name/copyright-updater/cli"
	"go.astrophena.name/copyright-updater/copyright"
	"go.astrophena.name/copyright-updater/gitrepo"
	"go.astrophena.name/copyright-updater/logger"
)

func main() { cli.Main(new(app)) }

// repository is the slice of [gitrepo.Repository] the driver needs.
// Tests substitute a fake so no real version control is involved.
type repository interface {
	Root() string
	Rel(path string) (string, error)
	gitrepo.YearSource
}

type app struct {
	required bool
	verbose  bool
	dryRun   bool
	config   string

	// Overridable in tests.
	repo repository
	now  func() time.Time
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&a.required, "required", a.required, "Fail when a file lacks a copyright header and none can be inserted.")
	fs.BoolVar(&a.verbose, "verbose", a.verbose, "Print a diagnostic line per file.")
	fs.BoolVar(&a.dryRun, "dry-run", a.dryRun, "Report changes without writing any file.")
	fs.StringVar(&a.config, "config", a.config, "Read configuration from `file` instead of the repository root.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	ctx = logger.Put(ctx, logger.New(env.Stderr, level))

	if len(env.Args) == 0 {
		return fmt.Errorf("%w: no files to process", cli.ErrInvalidArgs)
	}

	repo := a.repo
	if repo == nil {
		r, err := gitrepo.Open(ctx, filepath.Dir(env.Args[0]))
		if err != nil {
			return err
		}
		repo = r
	}
	logger.Debug(ctx, "repository root", slog.String("path", repo.Root()))

	cfgPath, err := copyright.FindConfig(a.config, repo.Root())
	if err != nil {
		return err
	}
	logger.Debug(ctx, "loading configuration", slog.String("path", cfgPath))
	cfg, err := copyright.LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	pat, err := cfg.Compile()
	if err != nil {
		return fmt.Errorf("invalid configuration %s: %w", cfgPath, err)
	}

	staged, err := repo.Staged(ctx)
	if err != nil {
		return err
	}

	now := time.Now
	if a.now != nil {
		now = a.now
	}

	var (
		errs            *multierror.Error
		requiredMissing int
	)
	for _, path := range env.Args {
		outcome, err := a.processFile(ctx, repo, cfg, pat, path, staged, now().Year())
		if err != nil {
			if errors.Is(err, gitrepo.ErrOutsideRepository) {
				// A bad argument, not a bad file.
				return err
			}
			logger.Error(ctx, "failed to process file",
				slog.String("file", path), slog.Any("error", err))
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		if outcome == copyright.MissingAndRequired {
			requiredMissing++
			logger.Error(ctx, "copyright header required but missing", slog.String("file", path))
			continue
		}
		logger.Debug(ctx, "processed file",
			slog.String("file", path), slog.String("outcome", outcome.String()))
	}

	if requiredMissing > 0 {
		errs = multierror.Append(errs, fmt.Errorf("%d file(s) lack a required copyright header", requiredMissing))
	}
	return errs.ErrorOrNil()
}

// processFile resolves the file's year range and applies the header
// decision to it. It returns an error only for hard per-file failures
// (unreadable, unwritable, outside the repository); a failing history
// query degrades to "no usable history" so an existing header can still
// satisfy -required.
func (a *app) processFile(ctx context.Context, repo repository, cfg *copyright.Config, pat *copyright.Pattern, path string, staged map[string]bool, currentYear int) (copyright.Outcome, error) {
	rel, err := repo.Rel(path)
	if err != nil {
		return copyright.Unchanged, err
	}

	var years []int
	if rel == cfg.LicenseFile {
		years, err = repo.RepoYears(ctx, cfg.IgnoreCommitsBefore)
	} else {
		years, err = repo.Years(ctx, rel, cfg.IgnoreCommitsBefore)
	}
	if err != nil {
		logger.Warn(ctx, "history query failed",
			slog.String("file", rel), slog.Any("error", err))
		years = nil
	}
	if staged[rel] {
		// The staged edit will be committed now, so the current year
		// counts as a modification year.
		years = append(years, currentYear)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return copyright.Unchanged, err
	}
	if !utf8.Valid(raw) {
		logger.Debug(ctx, "skipping non-UTF-8 file", slog.String("file", rel))
		return copyright.Unchanged, nil
	}

	var r copyright.Range
	hasYears := len(years) > 0
	if hasYears {
		r = copyright.Range{First: slices.Min(years), Last: slices.Max(years)}
	}

	content, outcome := copyright.Update(string(raw), pat, r, hasYears, a.required)
	if !outcome.Changed() {
		return outcome, nil
	}

	if a.dryRun {
		logger.Info(ctx, "would rewrite copyright header",
			slog.String("file", rel),
			slog.String("outcome", outcome.String()),
			slog.String("years", r.String()))
		return outcome, nil
	}

	fi, err := os.Stat(path)
	if err != nil {
		return copyright.Unchanged, err
	}
	if err := os.WriteFile(path, []byte(content), fi.Mode().Perm()); err != nil {
		return copyright.Unchanged, err
	}
	return outcome, nil
}
