package commands

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/teranos/confgen/logger"
	"github.com/teranos/confgen/pipeline"
	"github.com/teranos/confgen/settings"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [root]",
		Short: "Regenerate whenever the INI file changes",
		Long: `Generate once, then watch the INI file, the settings file and the license
header, and regenerate after each burst of changes. Settings are read again
before every regeneration. The input and license_header paths watched are
the ones set when watching starts. With --exec, the command runs after every
successful regeneration, e.g. to rebuild.

Configuration and settings errors are reported and watching continues.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := rootDir(args)

			s, err := loadSettings(cmd, root)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			regenerate := func(ctx context.Context, force bool) error {
				current, err := loadSettings(cmd, root)
				if err != nil {
					return err
				}
				result, err := pipeline.Run(ctx, pipeline.Options{Root: root, Settings: current, Force: force})
				if err != nil {
					return err
				}
				if !result.Skipped {
					successPrinter(cmd).Printfln("Generated %d artifacts in %s", len(result.Artifacts), root)
				}
				if current.Watch.Exec == "" {
					return nil
				}
				return pipeline.RunHook(ctx, root, current.Watch.Exec, cmd.OutOrStdout(), cmd.ErrOrStderr())
			}

			if err := regenerate(ctx, false); err != nil {
				PrintError(cmd.ErrOrStderr(), err, verbosity(cmd))
			}

			// The settings file is watched even before it exists.
			files := append(pipeline.Inputs(root, s), settingsPath(cmd, root))
			watcher, err := pipeline.NewWatcher(
				files,
				s.Watch.Debounce.Std(),
				func(ctx context.Context) error { return regenerate(ctx, true) },
			)
			if err != nil {
				return err
			}

			if logger.ShouldOutput(verbosity(cmd), logger.OutputProgress) {
				successPrinter(cmd).Printfln("Watching %s", filepath.Join(root, s.Input))
			}
			return watcher.Run(ctx)
		},
	}

	cmd.Flags().String("exec", "", "Command to run after each regeneration")
	cmd.Flags().String("debounce", "", "Wait this long after the last change (default "+settings.DefaultDebounce+")")
	return cmd
}
