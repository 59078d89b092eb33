package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/thoreinstein/mkt/internal/errors"
	"github.com/thoreinstein/mkt/internal/paths"
)

// genDocDir holds the value of the gen-doc --dir flag.
var genDocDir string

func init() {
	genDocCmd.Flags().StringVarP(&genDocDir, "dir", "d", "", "directory to write the Markdown pages to")
	rootCmd.AddCommand(genDocCmd)
}

var genDocCmd = &cobra.Command{
	Use:    "gen-doc",
	Short:  "Write one Markdown reference page per command",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE:   runGenDoc,
}

func runGenDoc(cmd *cobra.Command, _ []string) error {
	if genDocDir == "" {
		return errors.NewUserError(errors.New("output directory is required"), "Pass --dir")
	}
	if err := paths.EnsureDir(genDocDir, 0o755); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "creating output directory"), "")
	}
	if err := doc.GenMarkdownTreeCustom(rootCmd, genDocDir, filePrepender, linkHandler); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "generating markdown"), "")
	}
	printOK(cmd.OutOrStdout(), "Reference pages written to %s", genDocDir)
	return nil
}

// filePrepender gives each page site front matter; mkt_skill_new.md is
// titled "skill new".
func filePrepender(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), ".md")
	title := "mkt"
	if base != "mkt" {
		title = strings.ReplaceAll(strings.TrimPrefix(base, "mkt_"), "_", " ")
	}
	return fmt.Sprintf("---\ntitle: %q\ndescription: %q\n---\n", title, "mkt "+title+" command reference")
}

// linkHandler maps mkt_config_set.md to /docs/reference/mkt_config_set/.
func linkHandler(name string) string {
	return "/docs/reference/" + strings.ToLower(strings.TrimSuffix(name, ".md")) + "/"
}
