package fix

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/gostylecheck/pkg/check"
	"github.com/yaklabco/gostylecheck/pkg/config"
	"github.com/yaklabco/gostylecheck/pkg/fsutil"
	"github.com/yaklabco/gostylecheck/pkg/styleguide"
)

// DefaultMaxPasses bounds the check/apply rounds per file. One fix can
// expose the next issue (a replacement phrase may itself need fixing),
// so the pipeline re-checks after every apply until the text settles.
const DefaultMaxPasses = 5

// ErrFileModified is returned when a file changes on disk between the
// pipeline reading it and writing the fixed content back.
var ErrFileModified = errors.New("file modified during fix")

// FileResult summarizes one file's trip through the fix pipeline.
type FileResult struct {
	// Path is the file the pipeline ran on.
	Path string

	// Passes is the number of apply rounds that ran.
	Passes int

	// Applied lists the edits applied across all passes, in order.
	Applied []Edit

	// Gated counts edits still proposed for the final text but withheld
	// by the confidence threshold.
	Gated int

	// Remaining is the issue count against the final text.
	Remaining int

	// Final is the check result for the final text. Its issues are what
	// a subsequent run would still report.
	Final *check.Result

	// Changed reports whether the revised content differs from the
	// original.
	Changed bool

	// Written reports whether the revised content reached disk. Always
	// false in dry runs.
	Written bool

	// Diff is the unified diff between original and revised content.
	// Nil when nothing changed.
	Diff *Diff

	// BackupPath is where the original content was saved, when a backup
	// was written.
	BackupPath string
}

// Pipeline runs the multi-pass fix loop: check, propose, gate by
// confidence, apply, and repeat until no admitted edits remain or the
// pass budget runs out.
type Pipeline struct {
	// MaxPasses bounds the apply rounds per file.
	MaxPasses int

	engine *check.Engine
	fixer  *Fixer
	guide  *styleguide.Guide
	cfg    *config.Config
}

// NewPipeline creates a fix pipeline around the given engine, guide,
// and configuration.
func NewPipeline(engine *check.Engine, guide *styleguide.Guide, cfg *config.Config) *Pipeline {
	return &Pipeline{
		MaxPasses: DefaultMaxPasses,
		engine:    engine,
		fixer:     NewFixer(guide),
		guide:     guide,
		cfg:       cfg,
	}
}

// threshold is the minimum confidence rank an edit needs to be applied.
func (p *Pipeline) threshold() int {
	if r := p.cfg.Confidence.Rank(); r > 0 {
		return r
	}
	return config.ConfidenceMedium.Rank()
}

// grantedRules returns the rule IDs the configuration allows to fix.
// Issues keep their AutoFixable flag for reporting either way; this set
// decides what the pipeline actually touches.
func (p *Pipeline) grantedRules() map[string]bool {
	granted := make(map[string]bool)
	for _, rr := range check.ResolveRules(p.engine.Registry, p.cfg) {
		if rr.AutoFix {
			granted[rr.Rule.ID()] = true
		}
	}
	return granted
}

// FixContent runs the fix loop on in-memory content and returns the
// result metadata together with the revised text. The final check pass
// runs against the revised text, so Remaining and Gated describe what
// a subsequent run would still find.
func (p *Pipeline) FixContent(ctx context.Context, path string, content []byte) (*FileResult, string, error) {
	res := &FileResult{Path: path}
	text := string(content)
	threshold := p.threshold()
	granted := p.grantedRules()

	for {
		result, err := p.engine.CheckFile(ctx, path, []byte(text), p.cfg, p.guide)
		if err != nil {
			return nil, "", fmt.Errorf("check %s: %w", path, err)
		}
		res.Remaining = result.IssueCount()
		res.Final = result

		var candidates []check.Issue
		for _, issue := range result.Issues {
			if granted[issue.RuleID] {
				candidates = append(candidates, issue)
			}
		}

		proposed := p.fixer.Propose(text, candidates)
		var admitted []Edit
		res.Gated = 0
		for _, e := range proposed {
			if e.Confidence.Rank() >= threshold {
				admitted = append(admitted, e)
			} else {
				res.Gated++
			}
		}

		if len(admitted) == 0 || res.Passes >= p.MaxPasses {
			return res, text, nil
		}

		revised := Apply(text, admitted)
		if revised == text {
			return res, text, nil
		}
		res.Passes++
		res.Applied = append(res.Applied, admitted...)
		text = revised
	}
}

// FixFile runs the fix loop on a file and writes the revised content
// back atomically. In dry-run mode nothing is written; the result's
// Diff carries what would change. Before writing, the pipeline verifies
// the file on disk still matches what it read and backs up the original
// when backups are enabled.
func (p *Pipeline) FixFile(ctx context.Context, path string) (*FileResult, error) {
	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	res, revised, err := p.FixContent(ctx, path, content)
	if err != nil {
		return nil, err
	}

	res.Changed = revised != string(content)
	if !res.Changed {
		return res, nil
	}
	res.Diff = GenerateDiff(path, content, []byte(revised))

	if p.cfg.DryRun {
		return res, nil
	}

	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		return nil, err
	}
	if modified {
		return nil, fmt.Errorf("%w: %s", ErrFileModified, path)
	}

	backups := p.backupConfig()
	created, err := fsutil.CreateBackup(ctx, path, backups)
	if err != nil {
		return nil, err
	}
	if created {
		res.BackupPath = fsutil.BackupPath(path, backups.Mode)
	}

	if err := fsutil.WriteAtomic(ctx, path, []byte(revised), info.Mode); err != nil {
		return nil, err
	}
	res.Written = true
	return res, nil
}

func (p *Pipeline) backupConfig() fsutil.BackupConfig {
	bc := fsutil.BackupConfig{
		Enabled: p.cfg.Backups.Enabled && !p.cfg.NoBackups,
		Mode:    fsutil.BackupMode(p.cfg.Backups.Mode),
	}
	if bc.Mode == "" {
		bc.Mode = fsutil.BackupModeSidecar
	}
	return bc
}
