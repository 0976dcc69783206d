// internal/cli/results.go
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/seurahaku/harava/internal/artifact"
	"github.com/seurahaku/harava/internal/ui"
)

var resultsLimit int

var resultsCmd = &cobra.Command{
	Use:   "results [leagues|teams|contacts]",
	Short: "Show collected artifacts: counts and the first rows",
	Long: `Reads the artifacts written by previous runs and prints their counts
and first rows. Without an argument every artifact that exists is
shown.`,
	Example: `# Everything collected so far
harava results

# Only the contact rows, more of them
harava results contacts --limit 50`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"leagues", "teams", "contacts"},
	RunE:      showResults,
}

func init() {
	resultsCmd.Flags().IntVar(&resultsLimit, "limit", 10, "Rows to show per artifact")
	rootCmd.AddCommand(resultsCmd)
}

func showResults(cmd *cobra.Command, args []string) error {
	which := ""
	if len(args) > 0 {
		which = args[0]
	}

	cfg := GetApp().Config
	shown := 0

	if which == "" || which == "leagues" {
		if artifact.Exists(cfg.Output.LeaguesFile) {
			if err := showLeagues(cfg.Output.LeaguesFile); err != nil {
				return err
			}
			shown++
		} else if which == "leagues" {
			return fmt.Errorf("no leagues artifact at %s, run \"harava run categories\" first", cfg.Output.LeaguesFile)
		}
	}

	if which == "" || which == "teams" {
		if artifact.Exists(cfg.Output.TeamsFile) {
			if err := showTeams(cfg.Output.TeamsFile); err != nil {
				return err
			}
			shown++
		} else if which == "teams" {
			return fmt.Errorf("no teams artifact at %s, run \"harava run teams\" first", cfg.Output.TeamsFile)
		}
	}

	if which == "" || which == "contacts" {
		if artifact.Exists(cfg.Output.ContactsFile) {
			if err := showContacts(cfg.Output.ContactsFile); err != nil {
				return err
			}
			shown++
		} else if which == "contacts" {
			return fmt.Errorf("no contacts artifact at %s, run \"harava run contact\" first", cfg.Output.ContactsFile)
		}
	}

	if shown == 0 {
		fmt.Printf("%s\n", ui.Info("No artifacts collected yet, run \"harava run all\" first"))
	}
	return nil
}

func showLeagues(path string) error {
	doc, err := artifact.LoadLeagues(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	fmt.Printf("\n%s  %d leagues, collected %s\n",
		ui.Bold("Leagues"), len(doc.Leagues), doc.Timestamp)

	t := newTable()
	t.AppendHeader(table.Row{"#", "League", "URL"})
	for i, league := range doc.Leagues {
		if i >= resultsLimit {
			break
		}
		t.AppendRow(table.Row{i + 1, league.Name, league.URL})
	}
	t.Render()
	printTruncated(len(doc.Leagues))
	return nil
}

func showTeams(path string) error {
	doc, err := artifact.LoadTeams(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	fmt.Printf("\n%s  %d teams in %d leagues, collected %s\n",
		ui.Bold("Teams"), doc.TotalTeams, doc.LeaguesProcessed, doc.Timestamp)

	t := newTable()
	t.AppendHeader(table.Row{"#", "Team", "League"})
	shown := 0
	for _, league := range doc.Leagues {
		for _, team := range league.Teams {
			if shown >= resultsLimit {
				break
			}
			shown++
			t.AppendRow(table.Row{shown, team.Name, league.LeagueName})
		}
	}
	t.Render()
	printTruncated(doc.TotalTeams)
	return nil
}

func showContacts(path string) error {
	contacts, err := artifact.LoadContacts(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	fmt.Printf("\n%s  %d unique administrators\n", ui.Bold("Contacts"), len(contacts))

	t := newTable()
	t.AppendHeader(table.Row{"#", "Name", "Position", "Email", "Teams"})
	for i, contact := range contacts {
		if i >= resultsLimit {
			break
		}
		t.AppendRow(table.Row{i + 1, contact.Name, contact.Position, contact.Email,
			strings.Join(contact.Teams, ", ")})
	}
	t.Render()
	printTruncated(len(contacts))
	return nil
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	return t
}

func printTruncated(total int) {
	if total > resultsLimit {
		fmt.Printf("%s\n", ui.Info(fmt.Sprintf("... and %d more (use --limit to see them)", total-resultsLimit)))
	}
}
