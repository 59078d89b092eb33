package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mkt/internal/marketplace"
	"github.com/thoreinstein/mkt/internal/skill"
	"github.com/thoreinstein/mkt/pkg/fileutil"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output in JSON format")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [marketplace-dir]",
	Short: "List plugins and their skills",
	Long: `List the plugins registered in marketplace.json together with the
name and description each skill declares in its SKILL.md frontmatter.

Skills whose directory or SKILL.md is missing are shown as unresolved.`,
	Example: `  # List plugins in the current marketplace
  mkt list

  # Output as JSON
  mkt list ./my-marketplace --json

  See Also: mkt add, mkt validate`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

// pluginListing is a plugin entry with its resolved skills.
type pluginListing struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Source      string         `json:"source"`
	Strict      bool           `json:"strict"`
	Skills      []skillListing `json:"skills"`
}

// skillListing is a skill path with the frontmatter found there.
type skillListing struct {
	Path        string `json:"path"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Resolved    bool   `json:"resolved"`
}

func runList(cmd *cobra.Command, args []string) error {
	root := marketplaceDir(args)

	m, err := marketplace.Load(root)
	if err != nil {
		return exitError(err)
	}

	listings := make([]pluginListing, 0, len(m.Plugins))
	for _, p := range m.Plugins {
		pl := pluginListing{
			Name:        p.Name,
			Description: p.Description,
			Source:      p.Source,
			Strict:      p.Strict,
			Skills:      make([]skillListing, 0, len(p.Skills)),
		}
		for _, ref := range p.Skills {
			sl := skillListing{Path: ref}
			if s, err := skill.Load(root, ref); err == nil {
				sl.Name = s.Name
				sl.Description = s.Description
				sl.Resolved = true
			}
			pl.Skills = append(pl.Skills, sl)
		}
		listings = append(listings, pl)
	}

	w := cmd.OutOrStdout()
	if listJSON {
		data, err := fileutil.EncodeJSON(listings)
		if err != nil {
			return exitError(err)
		}
		_, err = w.Write(data)
		return exitError(err)
	}

	if len(listings) == 0 {
		fmt.Fprintf(w, "No plugins in %s\n", m.Name)
		return nil
	}
	printListings(w, m.Name, listings)
	return nil
}

func printListings(w io.Writer, name string, listings []pluginListing) {
	fmt.Fprintf(w, "%s (%d plugins)\n", bold(name), len(listings))
	for _, p := range listings {
		fmt.Fprintf(w, "\n%s  %s\n", bold(p.Name), faint(truncate(p.Description, 60)))

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, s := range p.Skills {
			if !s.Resolved {
				fmt.Fprintf(tw, "  %s\t%s\t\n", s.Path, warnMark+" unresolved")
				continue
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", s.Path, s.Name, faint(truncate(s.Description, 50)))
		}
		_ = tw.Flush()
	}
}

// truncate shortens s to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
