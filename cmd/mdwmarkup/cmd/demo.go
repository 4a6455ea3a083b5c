package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mdwmarkup/foundation/markup"
	mdwanalyzer "github.com/msto63/mdwmarkup/foundation/markup/analyzer"
	mdwrender "github.com/msto63/mdwmarkup/foundation/markup/render"
)

var demoNoColor bool

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Beispieldokument parsen und pruefen",
	Long: `Parst das eingebaute Beispieldokument und prueft seine Struktur.

Ist die Struktur gueltig, wird der Syntaxbaum ausgegeben, sonst die
Fehlermeldung der Strukturpruefung.

Beispiele:
  mdwmarkup demo
  mdwmarkup demo --no-color`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().BoolVar(&demoNoColor, "no-color", false, "Ausgabe ohne Farben")
}

func runDemo(cmd *cobra.Command, args []string) error {
	engine, s, err := newEngine(cmd)
	if err != nil {
		return err
	}

	result, err := engine.Check(markup.SampleDocument)
	if err != nil {
		var mismatch *mdwanalyzer.MismatchError
		if errors.As(err, &mismatch) {
			fmt.Fprintln(cmd.OutOrStdout(), mismatch.Error())
			return nil
		}
		return err
	}

	return mdwrender.Debug(cmd.OutOrStdout(), result.Element, s.Color)
}
