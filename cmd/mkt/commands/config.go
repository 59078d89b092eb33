package commands

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/mkt/internal/config"
	"github.com/thoreinstein/mkt/internal/errors"
	"github.com/thoreinstein/mkt/pkg/fileutil"
)

var configListFormat string

func init() {
	configListCmd.Flags().StringVarP(&configListFormat, "format", "f", "yaml", "output format: yaml, json, toml")
	configCmd.Flags().StringVarP(&configListFormat, "format", "f", "yaml", "output format: yaml, json, toml")

	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage mkt configuration",
	Long: `Manage mkt configuration stored in $XDG_CONFIG_HOME/mkt/config.yaml.

The owner and license values seed new marketplaces created by 'mkt init';
strict and output are the defaults for 'mkt validate'. Every key can also
be set through the environment, e.g. MKT_OWNER_NAME or MKT_STRICT.

Without a subcommand, lists all configuration values.`,
	Example: `  # List all configuration
  mkt config

  # Get a specific value
  mkt config get owner.email

  # Set a value
  mkt config set owner.name "Jane Doe"

See Also: mkt init, mkt validate`,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a single configuration value by key, using dot notation for
nested keys.`,
	Example: `  mkt config get owner.name
  mkt config get strict

See Also: mkt config set, mkt config list`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and write the config file.

Values are validated before anything is written: version must be a
supported schema version, strict a boolean, output one of text, json or
yaml, and owner.email an email address.`,
	Example: `  mkt config set owner.email jane@example.com
  mkt config set strict true
  mkt config set output json

See Also: mkt config get, mkt config list`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration",
	Long:  `List all configuration values in YAML, JSON or TOML format.`,
	Example: `  mkt config list
  mkt config list --format toml

See Also: mkt config get, mkt config set`,
	RunE: runConfigList,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open configuration in $EDITOR",
	Long: `Open the configuration file in your default editor, writing the
current values to it first if it does not exist yet.`,
	Example: `  mkt config edit
  EDITOR=nano mkt config edit

See Also: mkt config list`,
	RunE: runConfigEdit,
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	cfg, err := config.Current()
	if err != nil {
		return err
	}

	val, ok := cfg.Values()[key]
	if !ok {
		return errors.NewUserError(errors.Wrapf(config.ErrUnknownKey, "%s", key),
			"Run 'mkt config list' to see available keys")
	}

	fmt.Fprintln(cmd.OutOrStdout(), val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	if err := config.Set(key, value); err != nil {
		return errors.NewUserError(err, "Run 'mkt config list' to see available keys")
	}

	cfg, err := config.Current()
	if err != nil {
		return err
	}
	if err := config.Save(configPath(), cfg); err != nil {
		return errors.NewSystemError(err, "")
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, cfg.Values()[key])
	}
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Current()
	if err != nil {
		return err
	}

	var data []byte
	switch configListFormat {
	case "yaml", "":
		data, err = yaml.Marshal(cfg)
	case "json":
		data, err = fileutil.EncodeJSON(cfg)
	case "toml":
		data, err = toml.Marshal(cfg)
	default:
		return errors.NewUserError(errors.Newf("unknown format %q", configListFormat),
			"Use --format yaml, json or toml")
	}
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigEdit(cmd *cobra.Command, _ []string) error {
	path := configPath()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		cfg, err := config.Current()
		if err != nil {
			return err
		}
		if err := config.Save(path, cfg); err != nil {
			return errors.NewSystemError(err, "")
		}
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Location: %s\n", path)
	if err := openEditor(cmd.Context(), path); err != nil {
		return errors.NewSystemError(err, "Set $EDITOR to your preferred editor")
	}
	return nil
}

// configPath returns the file written by config set and edit.
func configPath() string {
	if configFile != "" {
		return configFile
	}
	return config.Path()
}
