// Package commands implements the confgen command line.
package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/teranos/confgen/errors"
	"github.com/teranos/confgen/logger"
	"github.com/teranos/confgen/settings"
)

// NewRootCmd builds the confgen command tree. Running it without a
// subcommand generates.
func NewRootCmd() *cobra.Command {
	opts := &generateOptions{}

	root := &cobra.Command{
		Use:   "confgen [root]",
		Short: "Generate typed option parsers from an INI file",
		Long: `confgen - Generate typed option parsers from an INI file

Reads <root>/config.ini and writes a flat option parser plus one value
struct per section. Types are inferred from values or taken from a type
keyword in front of the key ("uint32_t retries = 3").

Settings sources (in order of precedence):
1. Command line flags
2. Environment variables (CONFGEN_* prefix, also read from <root>/.env)
3. <root>/confgen.toml, or the file given with --config
4. Default values

Examples:
  confgen .                       # Regenerate if config.ini changed
  confgen -f -l cpp,go ./service  # Always regenerate C++ and Go
  confgen check .                 # Fail if generated files are stale
  confgen watch . --exec "make"   # Regenerate and rebuild on change`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbosity, _ := cmd.Flags().GetCount("verbose")
			jsonOutput, _ := cmd.Flags().GetBool("log-json")
			if err := logger.Initialize(verbosity, jsonOutput); err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, rootDir(args), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Settings file (default <root>/"+settings.FileName+")")
	flags.StringSliceP("lang", "l", nil, "Target languages: cpp, go, markdown, all (default cpp)")
	flags.StringP("input", "i", "", "INI file relative to root (default "+settings.DefaultInput+")")
	flags.String("key-syntax", "", "Where type keywords go: type-first or type-last (default type-first)")
	flags.CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	flags.Bool("log-json", false, "Write logs as JSON")

	addGenerateFlags(root, opts)

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newWatchCmd())
	root.AddCommand(newSettingsCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func rootDir(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}

// flagBindings maps settings keys to command-line flags
var flagBindings = map[string]string{
	"languages":      "lang",
	"input":          "input",
	"key_syntax":     "key-syntax",
	"force":          "force",
	"watch.exec":     "exec",
	"watch.debounce": "debounce",
}

// settingsPath is the settings file for root: --config or <root>/confgen.toml.
func settingsPath(cmd *cobra.Command, root string) string {
	if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
		return configFile
	}
	return filepath.Join(root, settings.FileName)
}

// loadSettings reads settings for root with command-line flags on top.
func loadSettings(cmd *cobra.Command, root string) (*settings.Settings, error) {
	configFile, _ := cmd.Flags().GetString("config")

	v, err := settings.NewViper(root, configFile)
	if err != nil {
		return nil, err
	}
	if err := bindFlags(cmd.Flags(), v); err != nil {
		return nil, err
	}

	s, err := settings.LoadWithViper(v)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid settings")
	}

	logger.Debugw("Loaded settings",
		"verbosity", logger.LevelName(logger.Verbosity),
		"file", s.File,
		"input", s.Input,
		"languages", s.TargetLanguages(),
		"key_syntax", s.KeySyntax.String())
	return s, nil
}

// bindFlags binds the flags of fs that carry a setting. Flags the command
// does not define are skipped.
func bindFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	for key, name := range flagBindings {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return errors.Wrapf(err, "failed to bind --%s", name)
		}
	}
	return nil
}

// PrintError writes err as one line. Hints follow with -v.
func PrintError(w io.Writer, err error, verbosity int) {
	if !logger.ShouldOutput(verbosity, logger.OutputErrors) {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	if !logger.ShouldOutput(verbosity, logger.OutputHints) {
		return
	}
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}

func successPrinter(cmd *cobra.Command) *pterm.PrefixPrinter {
	return pterm.Success.WithWriter(cmd.OutOrStdout())
}

func warningPrinter(cmd *cobra.Command) *pterm.PrefixPrinter {
	return pterm.Warning.WithWriter(cmd.OutOrStdout())
}

func verbosity(cmd *cobra.Command) int {
	v, _ := cmd.Flags().GetCount("verbose")
	return v
}
