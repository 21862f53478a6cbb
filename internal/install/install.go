// Package install materializes Agent OS templates into a project directory.
package install

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fenghaitao/agent-os/internal/logging"
	"github.com/fenghaitao/agent-os/internal/messages"
	"github.com/fenghaitao/agent-os/internal/source"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Options controls installer behavior.
type Options struct {
	// Profile selects platforms and overwrite flags; nil means core files only.
	Profile *Profile
	// Source provides template content.
	Source source.Provider
	// Reporter receives progress, warnings and errors; nil discards them.
	Reporter Reporter
	// System performs filesystem writes on the target.
	System System
	// DiffMaxLines caps each diff preview; zero uses DefaultDiffMaxLines.
	DiffMaxLines int
}

// Status is the outcome of a single item.
type Status int

const (
	// StatusInstalled means the item was copied or downloaded.
	StatusInstalled Status = iota
	// StatusSkippedMissing means the source did not exist.
	StatusSkippedMissing
	// StatusSkippedExisting means the destination exists and its overwrite flag is off.
	StatusSkippedExisting
	// StatusFailed means the item aborted the run.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusInstalled:
		return "installed"
	case StatusSkippedMissing:
		return "skipped (missing source)"
	case StatusSkippedExisting:
		return "skipped (exists)"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome records what happened to one item.
type Outcome struct {
	Item   Item
	Status Status
	// Files is the number of files written.
	Files int
	Bytes int64
	// Err explains skips and failures.
	Err error
	// Diff is set when an existing file was kept although it differs from the template.
	Diff *DiffPreview
}

// Result aggregates a run. Outcomes holds one entry per attempted item, in order.
type Result struct {
	OK       bool
	Items    []Item
	Outcomes []Outcome
}

// Count returns the number of outcomes with the given status.
func (r Result) Count(status Status) int {
	n := 0
	for _, outcome := range r.Outcomes {
		if outcome.Status == status {
			n++
		}
	}
	return n
}

// Diffs returns the diff previews collected during the run.
func (r Result) Diffs() []DiffPreview {
	var out []DiffPreview
	for _, outcome := range r.Outcomes {
		if outcome.Diff != nil {
			out = append(out, *outcome.Diff)
		}
	}
	return out
}

type installer struct {
	root         string
	profile      *Profile
	src          source.Provider
	reporter     Reporter
	sys          System
	diffMaxLines int
	log          zerolog.Logger
}

// Run installs the items selected by opts.Profile into root.
//
// Items run sequentially in BuildItems order. Missing sources are reported as
// warnings and skipped; any other error stops the run, leaving earlier items
// in place, and is returned alongside a Result whose OK is false.
func Run(ctx context.Context, root string, opts Options) (Result, error) {
	if strings.TrimSpace(root) == "" {
		return Result{}, errors.New(messages.InstallRootRequired)
	}
	if opts.Source == nil {
		return Result{}, errors.New(messages.InstallSourceRequired)
	}
	if opts.System == nil {
		return Result{}, errors.New(messages.InstallSystemRequired)
	}
	profile := opts.Profile
	if profile == nil {
		profile = NewProfile()
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = Discard{}
	}
	inst := &installer{
		root:         root,
		profile:      profile,
		src:          opts.Source,
		reporter:     reporter,
		sys:          opts.System,
		diffMaxLines: normalizeDiffMaxLines(opts.DiffMaxLines),
		log:          logging.Component("install"),
	}
	return inst.run(ctx)
}

func (inst *installer) run(ctx context.Context) (Result, error) {
	done := logging.OperationStart(inst.log, "install")
	defer done()

	if err := inst.sys.MkdirAll(inst.root, dirPerm); err != nil {
		err = fmt.Errorf(messages.InstallCreateDirFailedFmt, inst.root, err)
		inst.reporter.Error(err.Error())
		return Result{}, err
	}

	items := BuildItems(inst.profile, inst.src.Mode())
	result := Result{Items: items, Outcomes: make([]Outcome, 0, len(items))}
	inst.log.Debug().
		Str("root", inst.root).
		Str("source", inst.src.Location()).
		Stringer("mode", inst.src.Mode()).
		Int("items", len(items)).
		Msg("Resolved install items")

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf(messages.InstallCancelledFmt, item.Source, err)
		}
		inst.reporter.Progress(fmt.Sprintf(messages.InstallProgressFmt, i+1, len(items), item.Source))
		outcome, err := inst.installItem(ctx, item)
		result.Outcomes = append(result.Outcomes, outcome)
		if err != nil {
			inst.reporter.Error(fmt.Sprintf(messages.InstallItemErrorFmt, item.Source, err))
			return result, fmt.Errorf(messages.InstallItemFailedFmt, item.Source, err)
		}
		inst.log.Debug().
			Str("source", item.Source).
			Str("dest", item.Dest).
			Stringer("status", outcome.Status).
			Int("files", outcome.Files).
			Int64("bytes", outcome.Bytes).
			Msg("Item processed")
	}
	result.OK = true
	return result, nil
}

func (inst *installer) installItem(ctx context.Context, item Item) (Outcome, error) {
	dest, err := resolveUnder(inst.root, item.Dest)
	if err != nil {
		return failed(item, err)
	}
	if err := checkResolved(inst.sys, inst.root, dest); err != nil {
		return failed(item, err)
	}
	if !inst.profile.overwriteAllowed(item.Category) {
		exists, err := inst.exists(dest)
		if err != nil {
			return failed(item, err)
		}
		if exists {
			return inst.keepExisting(ctx, item, dest), nil
		}
	}
	if item.Kind == KindDirectory {
		return inst.installDir(ctx, item, dest)
	}
	return inst.installFile(ctx, item, dest)
}

// installDir replaces dest with the full contents of the source directory.
// Every target path is validated before the existing directory is removed.
func (inst *installer) installDir(ctx context.Context, item Item, dest string) (Outcome, error) {
	files, err := inst.src.List(ctx, item.Source)
	if errors.Is(err, source.ErrNotFound) {
		inst.reporter.Warning(fmt.Sprintf(messages.InstallSkipMissingFmt, item.Source, err))
		if inst.src.Mode() == source.ModeRemote {
			// Remote directories without a manifest still get their destination.
			if mkErr := inst.sys.MkdirAll(dest, dirPerm); mkErr != nil {
				return failed(item, fmt.Errorf(messages.InstallCreateDirFailedFmt, dest, mkErr))
			}
		}
		return Outcome{Item: item, Status: StatusSkippedMissing, Err: err}, nil
	}
	if err != nil {
		return failed(item, err)
	}

	targets := make([]string, len(files))
	for i, rel := range files {
		target, err := resolveUnder(dest, rel)
		if err != nil {
			return failed(item, err)
		}
		targets[i] = target
	}

	if err := inst.sys.MkdirAll(filepath.Dir(dest), dirPerm); err != nil {
		return failed(item, fmt.Errorf(messages.InstallFailedCreateDirForFmt, dest, err))
	}
	if err := inst.sys.RemoveAll(dest); err != nil {
		return failed(item, fmt.Errorf(messages.InstallFailedRemoveFmt, dest, err))
	}
	if err := inst.sys.MkdirAll(dest, dirPerm); err != nil {
		return failed(item, fmt.Errorf(messages.InstallCreateDirFailedFmt, dest, err))
	}

	outcome := Outcome{Item: item, Status: StatusInstalled}
	srcDir := strings.TrimSuffix(item.Source, "/")
	for i, rel := range files {
		n, err := inst.copyFile(ctx, path.Join(srcDir, rel), targets[i])
		if err != nil {
			outcome.Status = StatusFailed
			outcome.Err = err
			return outcome, err
		}
		outcome.Files++
		outcome.Bytes += n
	}
	return outcome, nil
}

func (inst *installer) installFile(ctx context.Context, item Item, dest string) (Outcome, error) {
	n, err := inst.copyFile(ctx, item.Source, dest)
	if errors.Is(err, source.ErrNotFound) {
		inst.reporter.Warning(fmt.Sprintf(messages.InstallSkipMissingFmt, item.Source, err))
		return Outcome{Item: item, Status: StatusSkippedMissing, Err: err}, nil
	}
	if err != nil {
		return failed(item, err)
	}
	return Outcome{Item: item, Status: StatusInstalled, Files: 1, Bytes: n}, nil
}

// copyFile streams one source file into dest, creating parent directories.
func (inst *installer) copyFile(ctx context.Context, rel string, dest string) (int64, error) {
	rc, err := inst.src.Open(ctx, rel)
	if err != nil {
		return 0, err
	}
	defer func() { _ = rc.Close() }()

	if err := inst.sys.MkdirAll(filepath.Dir(dest), dirPerm); err != nil {
		return 0, fmt.Errorf(messages.InstallFailedCreateDirForFmt, dest, err)
	}
	n, err := inst.sys.WriteReaderAtomic(dest, rc, filePerm)
	if err != nil {
		return n, fmt.Errorf(messages.InstallFailedWriteFmt, dest, err)
	}
	return n, nil
}

// keepExisting records a skipped core item. For files, a diff against the
// template is attached when one can be computed; failing to compute it is not
// an install failure.
func (inst *installer) keepExisting(ctx context.Context, item Item, dest string) Outcome {
	outcome := Outcome{Item: item, Status: StatusSkippedExisting}
	flag := item.Category.FlagName()
	if item.Kind == KindFile {
		if diff := inst.diffAgainstTemplate(ctx, item, dest); diff != nil {
			outcome.Diff = diff
			inst.reporter.Warning(fmt.Sprintf(messages.InstallKeepExistingDiffFmt, item.Dest, flag))
			return outcome
		}
	}
	inst.reporter.Warning(fmt.Sprintf(messages.InstallKeepExistingFmt, item.Dest, flag))
	return outcome
}

func (inst *installer) diffAgainstTemplate(ctx context.Context, item Item, dest string) *DiffPreview {
	current, err := inst.sys.ReadFile(dest)
	if err != nil {
		inst.log.Debug().Err(err).Str("path", dest).Msg("Skipping diff preview")
		return nil
	}
	rc, err := inst.src.Open(ctx, item.Source)
	if err != nil {
		inst.log.Debug().Err(err).Str("source", item.Source).Msg("Skipping diff preview")
		return nil
	}
	defer func() { _ = rc.Close() }()
	template, err := io.ReadAll(rc)
	if err != nil {
		inst.log.Debug().Err(err).Str("source", item.Source).Msg("Skipping diff preview")
		return nil
	}
	return buildDiffPreview(item.Dest, current, template, inst.diffMaxLines)
}

func (inst *installer) exists(name string) (bool, error) {
	_, err := inst.sys.Stat(name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf(messages.InstallFailedStatFmt, name, err)
}

func failed(item Item, err error) (Outcome, error) {
	return Outcome{Item: item, Status: StatusFailed, Err: err}, err
}
