package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/confgen/errors"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect confgen settings",
	}

	var format string
	show := &cobra.Command{
		Use:   "show [root]",
		Short: "Show the effective settings",
		Long:  "Display the settings confgen would use for root, from all sources",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, rootDir(args))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				data, err := json.MarshalIndent(s, "", "  ")
				if err != nil {
					return errors.Wrap(err, "failed to marshal settings to JSON")
				}
				fmt.Fprintln(out, string(data))

			case "yaml":
				data, err := yaml.Marshal(s)
				if err != nil {
					return errors.Wrap(err, "failed to marshal settings to YAML")
				}
				fmt.Fprintf(out, "# confgen settings\n%s", string(data))

			case "toml":
				data, err := toml.Marshal(s)
				if err != nil {
					return errors.Wrap(err, "failed to marshal settings to TOML")
				}
				fmt.Fprintf(out, "# confgen settings\n%s", string(data))

			default:
				return errors.Newf("unsupported format: %s (supported: toml, json, yaml)", format)
			}
			return nil
		},
	}
	show.Flags().StringVar(&format, "format", "toml", "Output format: toml, json, yaml")

	cmd.AddCommand(show)
	return cmd
}
