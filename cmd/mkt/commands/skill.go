package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mkt/internal/editor"
	"github.com/thoreinstein/mkt/internal/errors"
	"github.com/thoreinstein/mkt/internal/logging"
	"github.com/thoreinstein/mkt/internal/skill"
)

var (
	skillRoot        string
	skillName        string
	skillDescription string
	skillForce       bool
	skillEdit        bool
)

// openEditor is replaced in tests.
var openEditor = editor.Open

func init() {
	skillCmd.PersistentFlags().StringVar(&skillRoot, "root", ".", "marketplace root directory")

	skillNewCmd.Flags().StringVar(&skillName, "name", "", "skill name (default: directory name)")
	skillNewCmd.Flags().StringVar(&skillDescription, "description", "", "what the skill does and when to use it")
	skillNewCmd.Flags().BoolVar(&skillForce, "force", false, "overwrite an existing SKILL.md")
	skillNewCmd.Flags().BoolVar(&skillEdit, "edit", false, "open the new SKILL.md in $EDITOR")
	_ = skillNewCmd.MarkFlagRequired("description")

	skillCmd.AddCommand(skillNewCmd, skillEditCmd, skillListCmd)
	rootCmd.AddCommand(skillCmd)
}

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Create and inspect skills inside a marketplace",
	Long: `Manage skill directories inside a marketplace. A skill is a directory
holding SKILL.md, whose YAML frontmatter declares its name and description.`,
	Example: `  # Create skills/review/SKILL.md
  mkt skill new skills/review --description "Reviews a diff for bugs and style issues"

  # List every skill directory in the marketplace
  mkt skill list

  See Also:
    mkt skill new    - Create a skill
    mkt skill edit   - Edit a skill's SKILL.md
    mkt skill list   - List discovered skills`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var skillNewCmd = &cobra.Command{
	Use:   "new <dir>",
	Short: "Create a skill directory with SKILL.md",
	Long: `Create <root>/<dir>/SKILL.md with name and description frontmatter
and a starter body. The name defaults to the directory's base name and
must be kebab-case. An existing SKILL.md is kept unless --force is given.`,
	Example: `  mkt skill new skills/review --description "Reviews a diff for bugs and style issues"
  mkt skill new tools/fmt --name go-fmt --description "Formats Go code" --edit`,
	Args: cobra.ExactArgs(1),
	RunE: runSkillNew,
}

var skillEditCmd = &cobra.Command{
	Use:   "edit <path>",
	Short: "Open a skill's SKILL.md in your editor",
	Long: `Open SKILL.md of the skill at <path>, relative to the marketplace root,
in $EDITOR (falling back to $VISUAL, nano, then vi).`,
	Example: `  mkt skill edit skills/review
  EDITOR="code --wait" mkt skill edit ./skills/review`,
	Args: cobra.ExactArgs(1),
	RunE: runSkillEdit,
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List skill directories found in the marketplace",
	Long: `Walk the marketplace and list every directory containing SKILL.md,
whether or not a plugin references it. Hidden directories are skipped.`,
	Args: cobra.NoArgs,
	RunE: runSkillList,
}

func runSkillNew(cmd *cobra.Command, args []string) error {
	s, err := skill.Create(skillRoot, skill.CreateOptions{
		Dir:         args[0],
		Name:        skillName,
		Description: skillDescription,
		Force:       skillForce,
	})
	if err != nil {
		if errors.Is(err, errors.ErrAlreadyExists) {
			return errors.NewUserError(err, "Pass --force to overwrite it")
		}
		return exitError(err)
	}
	logging.FromContext(cmd.Context()).Debug("created skill", "path", s.Path, "name", s.Name)

	if !quiet {
		printOK(cmd.OutOrStdout(), "Created %s", s.File())
		fmt.Fprintf(cmd.OutOrStdout(), "  Register it with: mkt add --name <plugin> --description <text> --skills %s\n", s.Path)
	}

	if skillEdit {
		return openSkill(cmd, s)
	}
	return nil
}

func runSkillEdit(cmd *cobra.Command, args []string) error {
	s, err := skill.Load(skillRoot, args[0])
	if err != nil {
		return exitError(err)
	}
	return openSkill(cmd, s)
}

func openSkill(cmd *cobra.Command, s *skill.Skill) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Location: %s\n", s.File())
	if err := openEditor(cmd.Context(), s.File()); err != nil {
		return errors.NewSystemError(err, "Set $EDITOR to your preferred editor")
	}
	return nil
}

func runSkillList(cmd *cobra.Command, _ []string) error {
	skills, err := skill.Discover(skillRoot)
	if err != nil {
		return errors.NewUserError(err, "Pass --root with a marketplace directory")
	}

	w := cmd.OutOrStdout()
	if len(skills) == 0 {
		fmt.Fprintln(w, "No skills found")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tNAME\tDESCRIPTION")
	for _, s := range skills {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Path, s.Name, truncate(s.Description, 60))
	}
	return tw.Flush()
}
