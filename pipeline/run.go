package pipeline

import (
	"context"
	"time"

	"github.com/teranos/confgen/flagmodel"
	"github.com/teranos/confgen/gen"
	"github.com/teranos/confgen/logger"
	"github.com/teranos/confgen/settings"
)

// Options configures one generation run
type Options struct {
	// Root holds the input and receives the artifacts.
	Root     string
	Settings *settings.Settings
	// Force regenerates even when the artifacts are up to date.
	Force bool
}

// Result describes a finished run
type Result struct {
	Model     *flagmodel.Model
	Artifacts []gen.Artifact
	// Skipped is set when every artifact was already up to date.
	Skipped bool
}

// Run renders every target and writes the artifacts unless they are already
// newer than all inputs. Configuration errors are reported even when nothing
// would be written.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	model, artifacts, err := Render(opts.Root, opts.Settings)
	if err != nil {
		return nil, err
	}
	result := &Result{Model: model, Artifacts: artifacts}

	logger.Debugw("Rendered artifacts",
		"modules", len(model.Modules()),
		"flags", len(model.Flags()),
		"artifacts", len(artifacts))

	if !opts.Force && !opts.Settings.Force {
		stale, err := IsStale(opts.Root, opts.Settings, artifacts)
		if err != nil {
			return nil, err
		}
		if !stale {
			logger.Infow("Artifacts are up to date",
				"root", opts.Root)
			result.Skipped = true
			return result, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := Write(opts.Root, artifacts); err != nil {
		return nil, err
	}

	logger.Infow("Generated artifacts",
		"root", opts.Root,
		"count", len(artifacts),
		"duration", time.Since(start))
	return result, nil
}
