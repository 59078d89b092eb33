package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/mkt/internal/config"
	"github.com/thoreinstein/mkt/internal/errors"
	"github.com/thoreinstein/mkt/internal/logging"
	"github.com/thoreinstein/mkt/internal/marketplace"
	"github.com/thoreinstein/mkt/internal/validator"
)

// errValidationFailed is returned when the verdict is a failure so the
// process exits with ExitUser after the report is printed.
var errValidationFailed = errors.New("validation failed")

var (
	validateStrict bool
	validateOutput string
)

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "treat warnings as failures (default: config strict)")
	validateCmd.Flags().StringVarP(&validateOutput, "output", "o", "", "report format: text, json, yaml (default: config output)")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [marketplace-dir]",
	Short: "Validate a marketplace",
	Long: `Check marketplace.json and every skill it references.

Errors are problems that break the marketplace: missing required fields,
names that are not kebab-case, duplicate plugins, skill paths without a
SKILL.md carrying name and description frontmatter, and a metadata.version
that is not semantic. Warnings flag placeholder values, short or long
descriptions and missing recommended fields.

Validation fails on any error, and in --strict mode on any warning.`,
	Example: `  # Validate the marketplace in the current directory
  mkt validate

  # Fail on warnings and emit JSON for CI
  mkt validate ./my-marketplace --strict --output json

  See Also: mkt init, mkt add`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Current()
	if err != nil {
		return err
	}

	strict := cfg.Strict
	if cmd.Flags().Changed("strict") {
		strict = validateStrict
	}

	format, err := validator.ParseFormat(firstNonEmpty(validateOutput, cfg.Output))
	if err != nil {
		return errors.NewUserError(err, "Use --output text, json or yaml")
	}

	root := marketplaceDir(args)
	logger := logging.FromContext(cmd.Context())
	logger.Info("validating marketplace", "root", root, "strict", strict)

	checker := marketplace.NewChecker(root, marketplace.WithLogger(logger))
	summary := checker.Check().Finalize(strict)
	summary.Target = root

	if err := validator.NewReporter(cmd.OutOrStdout(), format).Report(summary); err != nil {
		return errors.NewSystemError(err, "")
	}

	if !summary.Passed {
		return errors.NewExitError(errValidationFailed, errors.ExitUser)
	}
	return nil
}
