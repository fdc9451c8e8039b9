package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/confgen/errors"
	"github.com/teranos/confgen/pipeline"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [root]",
		Short: "Check that generated artifacts match the INI file",
		Long: `Render every configured target in memory and compare it with the files
below root. Exits with status 1 if any artifact differs or is missing.
Nothing is written.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := rootDir(args)

			s, err := loadSettings(cmd, root)
			if err != nil {
				return err
			}

			_, artifacts, err := pipeline.Render(root, s)
			if err != nil {
				return err
			}

			result, err := pipeline.Compare(root, artifacts)
			if err != nil {
				return err
			}

			if result.UpToDate {
				successPrinter(cmd).Println("Artifacts are up to date")
				return nil
			}

			warn := warningPrinter(cmd)
			for _, path := range result.Differences {
				warn.Printfln("%s differs", path)
			}
			for _, path := range result.Missing {
				warn.Printfln("%s is missing", path)
			}
			return errors.New("artifacts are out of date - run 'confgen' to update")
		},
	}
}
