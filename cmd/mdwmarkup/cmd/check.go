package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/mdwmarkup/foundation/core/error"
	"github.com/msto63/mdwmarkup/foundation/markup"
	mdwstringx "github.com/msto63/mdwmarkup/foundation/utils/stringx"
)

var (
	checkMaxDepth        int
	checkRequireComplete bool
	checkQuiet           bool
)

var checkCmd = &cobra.Command{
	Use:   "check [dateien...]",
	Short: "Dateien parsen und Struktur pruefen",
	Long: `Parst jede Datei und prueft, ob alle Start- und End-Tags
zusammenpassen (Gross-/Kleinschreibung wird ignoriert).

Fuer jede Datei wird eine Zeile mit dem Ergebnis ausgegeben. Der
Befehl endet mit einem Fehler, wenn mindestens eine Datei ungueltig ist.

Beispiele:
  mdwmarkup check dokument.mdw
  mdwmarkup check --require-complete docs/*.mdw
  mdwmarkup check -q dokument.mdw && echo ok`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().IntVar(&checkMaxDepth, "max-depth", 256, "Max. Verschachtelungstiefe (0 = unbegrenzt)")
	checkCmd.Flags().BoolVar(&checkRequireComplete, "require-complete", false, "Text nach dem Wurzelelement ablehnen")
	checkCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false, "Nur Fehler ausgeben")
}

func runCheck(cmd *cobra.Command, args []string) error {
	engine, _, err := newEngine(cmd)
	if err != nil {
		return err
	}

	failed := 0
	code := mdwerror.CodeMarkupSemantic
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			readErr := fileError(err, path)
			printError(cmd.ErrOrStderr(), path, readErr)
			failed++
			code = worseCode(code, mdwerror.GetCode(readErr))
			continue
		}
		if err := checkDocument(cmd.OutOrStdout(), engine, path, string(data), checkQuiet); err != nil {
			failed++
			code = worseCode(code, mdwerror.GetCode(err))
		}
	}

	if failed > 0 {
		return mdwerror.New(fmt.Sprintf("%d von %d Dateien ungueltig", failed, len(args))).
			WithCode(code).
			WithOperation("check")
	}
	return nil
}

// worseCode returns whichever code maps to the higher exit status
func worseCode(a, b mdwerror.Code) mdwerror.Code {
	if b.ExitCode() > a.ExitCode() {
		return b
	}
	return a
}

// checkDocument checks one document and prints its verdict line
func checkDocument(w io.Writer, engine *markup.Engine, name, content string, quiet bool) error {
	size := humanize.Bytes(uint64(len(content)))

	result, err := engine.Check(content)
	if err != nil {
		fmt.Fprintf(w, "✗ %s (%s): %v\n", name, size, err)
		return err
	}

	if !quiet {
		fmt.Fprintf(w, "✓ %s (%s, %s Elemente, Tiefe %d, %s)\n",
			name, size,
			humanize.Comma(int64(result.Stats.Elements)),
			result.Stats.MaxDepth,
			result.Duration.Round(time.Microsecond))
	}
	if !quiet && !mdwstringx.IsBlank(result.Rest) {
		fmt.Fprintf(w, "  Rest nach dem Wurzelelement: %q\n", truncateRest(result.Rest))
	}
	return nil
}

func truncateRest(rest string) string {
	return mdwstringx.Truncate(mdwstringx.CollapseSpace(rest), 40, "…")
}
