package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/thoreinstein/mkt/internal/cli/prompt"
	"github.com/thoreinstein/mkt/internal/errors"
	"github.com/thoreinstein/mkt/internal/logging"
	"github.com/thoreinstein/mkt/internal/marketplace"
	"github.com/thoreinstein/mkt/internal/skill"
	"github.com/thoreinstein/mkt/pkg/fileutil"
)

var (
	addName        string
	addDescription string
	addSkills      []string
	addSource      string
	addStrict      bool
	addYes         bool
	addNoFuzzy     bool
)

// stdinIsTerminal reports whether interactive prompts can be shown.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "plugin name (kebab-case)")
	addCmd.Flags().StringVar(&addDescription, "description", "", "plugin description (20-200 characters recommended)")
	addCmd.Flags().StringSliceVar(&addSkills, "skills", nil, "skill paths relative to the marketplace root")
	addCmd.Flags().StringVar(&addSource, "source", marketplace.DefaultPluginSource, "plugin source path")
	addCmd.Flags().BoolVar(&addStrict, "strict", false, "mark the plugin as strict")
	addCmd.Flags().BoolVarP(&addYes, "yes", "y", false, "add even if some skill paths have issues")
	addCmd.Flags().BoolVar(&addNoFuzzy, "no-fuzzy", false, "pick skills from a numbered list instead of the fuzzy finder")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("description")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add [marketplace-dir]",
	Short: "Add a plugin to a marketplace",
	Long: `Append a plugin entry bundling one or more skills to marketplace.json.

Skill paths are relative to the marketplace root and are stored with a
leading "./". Each path should be a directory containing SKILL.md; when
one is not, you are asked whether to continue. Non-interactive runs
decline unless --yes is given.

Without --skills on a terminal, the skills found in the marketplace are
offered in a picker.`,
	Example: `  # Add a plugin to the marketplace in the current directory
  mkt add --name code-tools --description "Tools for reviewing and refactoring code" \
    --skills skills/review,skills/refactor

  # Pick skills interactively
  mkt add ./my-marketplace --name code-tools --description "Tools for reviewing code"

  See Also: mkt skill new, mkt validate`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	root := marketplaceDir(args)
	logger := logging.FromContext(cmd.Context())

	skills := addSkills
	if len(skills) == 0 {
		picked, err := pickSkills(root)
		if err != nil {
			return err
		}
		skills = picked
	}

	var confirm marketplace.Confirmer = prompt.NewConfirmer()
	if addYes {
		confirm = prompt.Always{}
	}

	logger.Info("adding plugin", "name", addName, "root", root)
	res, err := marketplace.Add(cmd.Context(), root, marketplace.AddOptions{
		Name:        addName,
		Description: addDescription,
		Skills:      skills,
		Source:      addSource,
		Strict:      addStrict,
	}, confirm)
	if err != nil {
		return exitError(err)
	}

	if quiet {
		return nil
	}
	w := cmd.OutOrStdout()
	for _, p := range res.Problems {
		printWarn(w, "%s: %s", p.Status, p.Path)
	}
	printOK(w, "Successfully added plugin '%s'", res.Plugin.Name)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Plugin configuration:")
	data, err := fileutil.EncodeJSON(res.Plugin)
	if err != nil {
		return errors.Wrap(err, "encoding plugin entry")
	}
	fmt.Fprint(w, string(data))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, "  1. Verify the marketplace structure: mkt validate")
	fmt.Fprintln(w, "  2. Update README.md to document the new plugin")
	return nil
}

// pickSkills offers the skills discovered under root and returns the
// chosen manifest paths.
func pickSkills(root string) ([]string, error) {
	if !stdinIsTerminal() {
		return nil, errors.NewUserError(marketplace.ErrNoSkills, "Pass --skills path[,path...]")
	}

	found, err := skill.Discover(root)
	if err != nil {
		return nil, exitError(err)
	}

	var picker prompt.Picker = prompt.FuzzyPicker{}
	if addNoFuzzy {
		picker = prompt.NewSelector()
	}
	chosen, err := picker.Pick(found)
	if err != nil {
		if errors.Is(err, prompt.ErrNoSkills) {
			return nil, errors.NewUserError(err, "Create one with: mkt skill new skills/<name>")
		}
		return nil, errors.NewUserError(err, "")
	}

	refs := make([]string, len(chosen))
	for i, s := range chosen {
		refs[i] = s.Path
	}
	return refs, nil
}

func marketplaceDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
