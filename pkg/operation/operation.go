// Package operation provides the planning, apply, and undo engine for
// rule-driven file organization.
package operation

import (
	"context"
	"path/filepath"
	"time"

	"github.com/walteh/sortrc/pkg/config"
	"github.com/walteh/sortrc/pkg/ledger"
	"github.com/walteh/sortrc/pkg/plan"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operator defines the main interface for sortrc operations
type Operator interface {
	// Plan walks the source tree and returns the ordered list of
	// intended moves without touching the filesystem
	Plan(ctx context.Context) (*plan.Plan, error)
	// Apply executes a plan, one item at a time, writing a durable
	// batch log and replacing the undo ledger
	Apply(ctx context.Context, p *plan.Plan) (*ApplyResult, error)
	// Undo reverses the most recent apply batch and consumes its ledger
	Undo(ctx context.Context) (*UndoResult, error)
}

// 📣 ProgressFunc is invoked synchronously after each processed item.
// Purely observational; a nil callback changes nothing.
type ProgressFunc func(completed, total int)

// 🔧 Options contains configuration for the operator
type Options struct {
	// Config is the validated rule set
	Config *config.Config
	// SourceRoot is the directory tree to organize
	SourceRoot string
	// Ledger overrides the ledger manager; defaults to the ledger file
	// under the organization root
	Ledger *ledger.Manager
	// LogDir overrides where batch logs are written; defaults to
	// Config.LogDir, then "logs" under the organization root
	LogDir string
	// OnProgress is an optional per-item progress callback
	OnProgress ProgressFunc
	// Now overrides the clock used for log timestamps; defaults to
	// time.Now
	Now func() time.Time
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (Operator, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.SourceRoot == "" {
		return nil, errors.Errorf("source root is required")
	}

	sourceRoot, err := filepath.Abs(opts.SourceRoot)
	if err != nil {
		return nil, errors.Errorf("resolving source root: %w", err)
	}
	orgRoot := plan.ResolveTarget(sourceRoot, opts.Config.Target)

	logDir := opts.LogDir
	if logDir == "" {
		logDir = opts.Config.LogDir
	}
	switch {
	case logDir == "":
		logDir = filepath.Join(orgRoot, "logs")
	case !filepath.IsAbs(logDir):
		logDir = filepath.Join(orgRoot, logDir)
	}

	led := opts.Ledger
	if led == nil {
		led = ledger.NewManager(orgRoot)
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &operator{
		config:     opts.Config,
		sourceRoot: sourceRoot,
		orgRoot:    orgRoot,
		logDir:     logDir,
		ledger:     led,
		onProgress: opts.OnProgress,
		now:        now,
	}, nil
}

// 🎮 operator implements the Operator interface
type operator struct {
	config     *config.Config
	sourceRoot string
	orgRoot    string
	logDir     string
	ledger     *ledger.Manager
	onProgress ProgressFunc
	now        func() time.Time
}

// Plan implements Operator.Plan. Apply and Undo are implemented in
// apply.go and undo.go.
func (o *operator) Plan(ctx context.Context) (*plan.Plan, error) {
	// The log dir is excluded so batch logs written inside the source
	// tree are never planned as ordinary files.
	return plan.Build(ctx, o.sourceRoot, o.config, o.logDir)
}

// progress fires the callback when one is configured.
func (o *operator) progress(completed, total int) {
	if o.onProgress != nil {
		o.onProgress(completed, total)
	}
}
