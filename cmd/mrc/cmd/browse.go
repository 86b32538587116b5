package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/mRC/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interaktiver Katalog-Browser",
	Long: `Startet den interaktiven Katalog-Browser: tippen filtert die Liste,
Tab wechselt die Kategorie, die Detailansicht zeigt Syntax, Aliasse und
Quellenangaben des gewählten Befehls.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry()
	if err != nil {
		printError("Katalog konnte nicht geladen werden", err)
		return err
	}

	program := tea.NewProgram(tui.NewBrowser(registry), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		printError("Browser beendet mit Fehler", err)
		return err
	}
	return nil
}
