package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/mRC/foundation/core/config"
	"github.com/msto63/mRC/foundation/core/log"
	"github.com/msto63/mRC/internal/catalog"
)

var (
	cfgFile string
	catFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mrc",
	Short: "meinREMOTECOMMANDS - Befehlskatalog für Anritsu MT8000A/MT8821C",
	Long: `meinREMOTECOMMANDS ist ein Nachschlagewerk für die Fernsteuerbefehle
der Anritsu Messplätze MT8000A und MT8821C (5G NR TDD).

Befehle:
  lookup     - Einzelnen Befehl exakt nachschlagen
  search     - Katalog per Stichwort durchsuchen
  categories - Die 16 Befehlskategorien anzeigen
  browse     - Interaktiver Katalog-Browser
  version    - Versionsinformation`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./configs/config.toml)")
	rootCmd.PersistentFlags().StringVar(&catFile, "catalog", "", "Katalog-Datei (default: eingebetteter Katalog)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}

// loadConfig reads the optional config file, nil when none is found
func loadConfig() *config.Config {
	path := cfgFile
	if path == "" {
		path = "./configs/config.toml"
		if _, err := os.Stat(path); err != nil {
			return nil
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		printError("Config konnte nicht geladen werden", err)
		return nil
	}
	return cfg
}

// setupLogger builds the CLI logger from config and flags
func setupLogger(cfg *config.Config) *log.Logger {
	level := log.DefaultLevel()
	format := log.FormatConsole

	if cfg != nil {
		if parsed, err := log.ParseLevel(cfg.GetString("log.level")); err == nil {
			level = parsed
		}
		if parsed, err := log.ParseFormat(cfg.GetString("log.format")); err == nil {
			format = parsed
		}
	}
	if verbose {
		level = log.LevelDebug
	}

	logger := log.New().WithName("mrc").WithLevel(level).WithFormat(format)
	log.SetDefault(logger)
	return logger
}

// loadRegistry resolves the catalog source: --catalog flag, then the
// config file, then the embedded default catalog
func loadRegistry() (*catalog.Registry, error) {
	cfg := loadConfig()
	logger := setupLogger(cfg)

	path := catFile
	if path == "" && cfg != nil {
		path = cfg.GetString("catalog.file")
	}

	if path != "" {
		logger.Debug("loading external catalog", log.Fields{"path": path})
		return catalog.LoadFile(path, catalog.Options{Logger: logger})
	}
	return catalog.Default()
}
