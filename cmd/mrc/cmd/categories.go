package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Die 16 Befehlskategorien anzeigen",
	Long: `Listet die festen Befehlskategorien in Katalogreihenfolge mit der
Anzahl der enthaltenen Befehle.`,
	Args: cobra.NoArgs,
	RunE: runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry()
	if err != nil {
		printError("Katalog konnte nicht geladen werden", err)
		return err
	}

	total := 0
	for _, category := range registry.Categories() {
		count := registry.CategoryCount(category)
		total += count
		fmt.Printf("%-26s %4d\n", category, count)
	}
	fmt.Printf("\n%d Befehle insgesamt\n", total)
	return nil
}
