package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/mdwmarkup/foundation/core/error"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "mdwmarkup",
	Short: "mDW Markup - Parser und Strukturpruefung",
	Long: `mdwmarkup liest Dokumente in einer eingeschraenkten HTML-aehnlichen
Auszeichnungssprache, baut daraus einen Syntaxbaum und prueft, ob jedes
Start-Tag mit dem passenden End-Tag geschlossen wird.

Befehle:
  demo     - Beispieldokument parsen und pruefen
  parse    - Dokument parsen und Baum ausgeben
  check    - Dateien parsen und Struktur pruefen
  view     - Interaktiver Baum-Viewer
  watch    - Datei beobachten und bei Aenderung neu pruefen
  config   - Wirksame Konfiguration anzeigen
  version  - Version anzeigen`,
	SilenceUsage: true,
}

// Execute runs the command tree. With --verbose a structured error is
// followed by its code, severity and details.
func Execute() error {
	err := rootCmd.Execute()
	var merr *mdwerror.Error
	if verbose && errors.As(err, &merr) {
		fmt.Fprintln(rootCmd.ErrOrStderr(), merr.String())
	}
	return err
}

// ExitCode maps an error returned by Execute to a process exit status.
// Markup errors exit with 1, unreadable input and bad configuration with 2.
// Errors without an mDW code, such as flag errors, exit with 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var merr *mdwerror.Error
	if !errors.As(err, &merr) {
		return 1
	}
	return mdwerror.GetCode(err).ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (TOML oder YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log-Format (json, text, console)")
}

func printError(w io.Writer, msg string, err error) {
	fmt.Fprintf(w, "Fehler: %s: %v\n", msg, err)
}
