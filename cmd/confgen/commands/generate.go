package commands

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/teranos/confgen/logger"
	"github.com/teranos/confgen/pipeline"
)

type generateOptions struct {
	force  bool
	stdout bool
}

func addGenerateFlags(cmd *cobra.Command, opts *generateOptions) {
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Regenerate even if the artifacts are up to date")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "Print the artifacts instead of writing them")
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate [root]",
		Short: "Generate artifacts from the INI file",
		Long: `Render every configured target and write the artifacts below root.

Nothing is written unless the INI file, the settings file or the license
header changed since the last run, or an artifact is missing. Use --force
to regenerate regardless. A configuration error leaves every artifact
untouched.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, rootDir(args), opts)
		},
	}
	addGenerateFlags(cmd, opts)
	return cmd
}

func runGenerate(cmd *cobra.Command, root string, opts *generateOptions) error {
	start := time.Now()

	s, err := loadSettings(cmd, root)
	if err != nil {
		return err
	}

	if opts.stdout {
		_, artifacts, err := pipeline.Render(root, s)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, a := range artifacts {
			fmt.Fprintf(out, "==> %s <==\n", a.Path)
			out.Write(a.Content)
		}
		return nil
	}

	result, err := pipeline.Run(cmd.Context(), pipeline.Options{
		Root:     root,
		Settings: s,
		Force:    opts.force,
	})
	if err != nil {
		return err
	}

	v := verbosity(cmd)
	if result.Skipped {
		if logger.ShouldOutput(v, logger.OutputProgress) {
			successPrinter(cmd).Println("Artifacts are up to date")
		}
		return nil
	}

	if logger.ShouldOutput(v, logger.OutputResults) {
		for _, a := range result.Artifacts {
			successPrinter(cmd).Printfln("Generated %s", filepath.Join(root, filepath.FromSlash(a.Path)))
		}
	}
	if logger.ShouldOutput(v, logger.OutputSettings) {
		file := s.File
		if file == "" {
			file = "defaults"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  settings: %s, targets: %s\n", file, strings.Join(s.TargetLanguages(), ", "))
	}
	if logger.ShouldOutput(v, logger.OutputModel) {
		fmt.Fprintf(cmd.OutOrStdout(), "  %d modules, %d flags\n", len(result.Model.Modules()), len(result.Model.Flags()))
	}
	if logger.ShouldOutput(v, logger.OutputTiming) {
		fmt.Fprintf(cmd.OutOrStdout(), "  took %s\n", time.Since(start).Round(time.Millisecond))
	}
	return nil
}
