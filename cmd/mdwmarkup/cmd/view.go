// ============================================================================
// mDW Markup - Markup Parser und Strukturpruefung
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the interactive markup tree viewer
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/mdwmarkup/foundation/markup"
	"github.com/msto63/mdwmarkup/internal/tui/viewer"
)

var (
	viewFollow   bool
	viewMaxDepth int
)

var viewCmd = &cobra.Command{
	Use:   "view [datei]",
	Short: "Startet den interaktiven Baum-Viewer",
	Long: `Startet den interaktiven Viewer fuer ein Dokument.

Der Viewer zeigt den Syntaxbaum in einer Terminal-UI an. Schlaegt die
Strukturpruefung fehl, steht die Fehlermeldung ueber dem Baum. Ohne
Datei wird das Beispieldokument angezeigt.

Tastenkuerzel:
  Pfeile      Scrollen
  PgUp/PgDn   Seitenweise scrollen
  g / G       Zum Anfang / Ende springen
  r           Baum / Quelltext umschalten
  R           Neu einlesen und pruefen
  q / Ctrl+C  Beenden`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)

	viewCmd.Flags().BoolVarP(&viewFollow, "follow", "f", false, "Datei beobachten und bei Aenderung neu pruefen")
	viewCmd.Flags().IntVar(&viewMaxDepth, "max-depth", 256, "Max. Verschachtelungstiefe (0 = unbegrenzt)")
}

func runView(cmd *cobra.Command, args []string) error {
	engine, s, err := newEngine(cmd)
	if err != nil {
		return err
	}

	cfg := viewer.Config{Engine: engine}
	if len(args) == 0 {
		cfg.Title = "Beispieldokument"
		cfg.Source = markup.SampleDocument
	} else {
		cfg.Path = args[0]
		if viewFollow {
			cfg.Interval = s.WatchInterval
		}
	}

	return viewer.Run(cfg)
}
