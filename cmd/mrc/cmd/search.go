package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mRC/internal/catalog"
)

var (
	searchCategory string
	searchLong     bool
)

var searchCmd = &cobra.Command{
	Use:   "search [begriff]",
	Short: "Katalog per Stichwort durchsuchen",
	Long: `Durchsucht Befehlsnamen, Aliasse und Beschreibungen nach einem
Stichwort (Groß-/Kleinschreibung egal). Ohne Begriff wird der komplette
Katalog gelistet.

Beispiele:
  mrc search rmc
  mrc search --kategorie "Result Queries" throughput
  mrc search --kategorie "Call Processing"
  mrc search -l bandwidth`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVarP(&searchCategory, "kategorie", "k", "", "Auf eine Kategorie einschränken")
	searchCmd.Flags().BoolVarP(&searchLong, "long", "l", false, "Beschreibung mit ausgeben")
}

func runSearch(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry()
	if err != nil {
		printError("Katalog konnte nicht geladen werden", err)
		return err
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	results, err := registry.Search(query, catalog.Category(searchCategory))
	if err != nil {
		printError("Suche fehlgeschlagen", err)
		return err
	}

	if len(results) == 0 {
		fmt.Println("Keine Treffer.")
		return nil
	}

	for _, entry := range results {
		if searchLong {
			fmt.Printf("%-24s %-26s %s\n", entry.CanonicalName, entry.Category, entry.Description)
		} else {
			fmt.Printf("%-24s %s\n", entry.CanonicalName, entry.Category)
		}
	}
	fmt.Printf("\n%d Treffer\n", len(results))
	return nil
}
