package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	mrcerror "github.com/msto63/mRC/foundation/core/error"
	"github.com/msto63/mRC/internal/catalog"
)

var lookupSuggestions int

var lookupCmd = &cobra.Command{
	Use:   "lookup <befehl>",
	Short: "Einzelnen Befehl exakt nachschlagen",
	Long: `Schlägt einen Befehl exakt nach. Groß-/Kleinschreibung ist relevant,
Trennzeichen (Leerzeichen, Unterstrich, Bindestrich) sind es nicht.

Beispiele:
  mrc lookup ULRMC_RB
  mrc lookup "ULRMC RB"
  mrc lookup CALLSTAT?`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().IntVarP(&lookupSuggestions, "suggestions", "s", 3, "Anzahl Vorschläge bei unbekanntem Befehl")
}

func runLookup(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry()
	if err != nil {
		printError("Katalog konnte nicht geladen werden", err)
		return err
	}

	token := args[0]
	entry, err := registry.Lookup(token)
	if err != nil {
		if mrcerror.HasCode(err, mrcerror.CodeNotFound) {
			fmt.Printf("Befehl %q nicht gefunden.\n", token)
			if suggestions := registry.Suggest(token, lookupSuggestions); len(suggestions) > 0 {
				fmt.Printf("Meinten Sie: %s\n", strings.Join(suggestions, ", "))
			}
		} else {
			printError("Nachschlagen fehlgeschlagen", err)
		}
		return err
	}

	printEntry(entry)
	return nil
}

// printEntry writes the full detail block of a command entry
func printEntry(entry *catalog.CommandEntry) {
	fmt.Printf("Befehl:      %s\n", entry.CanonicalName)
	fmt.Printf("Kategorie:   %s\n", entry.Category)
	fmt.Printf("Syntax:      %s\n", entry.SyntaxTemplate)
	if entry.IsQuery() {
		fmt.Println("Typ:         Abfrage")
	} else {
		fmt.Println("Typ:         Einstellung")
	}
	fmt.Printf("Beschreibung: %s\n", entry.Description)

	if len(entry.Aliases) > 0 {
		fmt.Println("Aliasse:")
		for _, alias := range entry.Aliases {
			if alias.Provenance == catalog.ProvenanceOCR {
				fmt.Printf("  %s (OCR, unbestätigt)\n", alias.Name)
			} else {
				fmt.Printf("  %s\n", alias.Name)
			}
		}
	}
	if len(entry.SourceRefs) > 0 {
		fmt.Printf("Quellen:     %s\n", strings.Join(entry.SourceRefs, ", "))
	}
}
