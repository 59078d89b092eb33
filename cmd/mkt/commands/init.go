package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mkt/internal/config"
	"github.com/thoreinstein/mkt/internal/errors"
	"github.com/thoreinstein/mkt/internal/logging"
	"github.com/thoreinstein/mkt/internal/paths"
	"github.com/thoreinstein/mkt/internal/scaffold"
)

var (
	initPath       string
	initOwnerName  string
	initOwnerEmail string
	initLicense    string
)

func init() {
	initCmd.Flags().StringVar(&initPath, "path", ".", "directory to create the marketplace in")
	initCmd.Flags().StringVar(&initOwnerName, "owner-name", "", "owner name (default: config owner.name)")
	initCmd.Flags().StringVar(&initOwnerEmail, "owner-email", "", "owner email (default: config owner.email)")
	initCmd.Flags().StringVar(&initLicense, "license", "", "license identifier (default: config license)")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Create a new marketplace",
	Long: `Create <path>/<name> holding .claude-plugin/marketplace.json with
placeholder owner and metadata values, plus README.md, LICENSE,
CHANGELOG.md and .gitignore.

The name must be kebab-case: lowercase letters, digits and hyphens, not
starting or ending with a hyphen. <path> is created if missing; the
<path>/<name> directory must not exist.`,
	Example: `  # Create ./my-marketplace
  mkt init my-marketplace

  # Create it elsewhere with real owner details
  mkt init my-marketplace --path ~/src --owner-name "Jane Doe" --owner-email jane@example.com

  See Also: mkt add, mkt validate`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Current()
	if err != nil {
		return err
	}

	outputDir, err := paths.ExpandHome(initPath)
	if err != nil {
		return errors.NewUserError(err, "Pass a valid --path")
	}

	opts := scaffold.Options{
		Name:       args[0],
		OutputDir:  outputDir,
		OwnerName:  firstNonEmpty(initOwnerName, cfg.Owner.Name),
		OwnerEmail: firstNonEmpty(initOwnerEmail, cfg.Owner.Email),
		License:    firstNonEmpty(initLicense, cfg.License),
	}

	logging.FromContext(cmd.Context()).Debug("initializing marketplace",
		"name", opts.Name, "path", opts.OutputDir)

	res, err := scaffold.Init(cmd.Context(), opts)
	if err != nil {
		return exitError(err)
	}

	if quiet {
		return nil
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Initializing marketplace: %s\n", bold(opts.Name))
	fmt.Fprintf(w, "  Location: %s\n\n", res.Root)
	for _, p := range res.Created {
		printOK(w, "Created %s", filepath.ToSlash(p))
	}
	fmt.Fprintln(w)
	printOK(w, "Marketplace '%s' initialized successfully at %s", opts.Name, res.Root)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintf(w, "  1. cd %s\n", res.Root)
	fmt.Fprintln(w, "  2. Update marketplace.json with your information (owner, description, repository)")
	fmt.Fprintln(w, "  3. Add your first plugin: mkt skill new skills/<name> && mkt add --name <plugin> --skills skills/<name>")
	fmt.Fprintln(w, "  4. Update README.md with marketplace details")
	fmt.Fprintln(w, "  5. Validate the marketplace: mkt validate")
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
