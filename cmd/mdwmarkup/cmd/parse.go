package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/mdwmarkup/foundation/core/error"
	mdwrender "github.com/msto63/mdwmarkup/foundation/markup/render"
	mdwstringx "github.com/msto63/mdwmarkup/foundation/utils/stringx"
)

var (
	parseInput           string
	parseFormat          string
	parseMaxDepth        int
	parseRequireComplete bool
	parseNoColor         bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [datei|-]",
	Short: "Dokument parsen und Baum ausgeben",
	Long: `Parst ein Dokument ohne Strukturpruefung und gibt den Syntaxbaum aus.
Text nach dem Wurzelelement wird als Rest angezeigt.

Formate:
  debug   - Ausfuehrliche Strukturausgabe
  tree    - Eingerueckter Baum
  markup  - Kanonisches Markup
  html    - HTML
  json    - JSON-Dokument
  yaml    - YAML-Dokument

Beispiele:
  mdwmarkup parse dokument.mdw
  mdwmarkup parse --format tree dokument.mdw
  mdwmarkup parse --input '<p class="a">Hallo</p>'
  cat dokument.mdw | mdwmarkup parse -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseInput, "input", "i", "", "Dokument als Zeichenkette")
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "debug", "Ausgabeformat ("+strings.Join(mdwrender.Formats(), ", ")+")")
	parseCmd.Flags().IntVar(&parseMaxDepth, "max-depth", 256, "Max. Verschachtelungstiefe (0 = unbegrenzt)")
	parseCmd.Flags().BoolVar(&parseRequireComplete, "require-complete", false, "Text nach dem Wurzelelement ablehnen")
	parseCmd.Flags().BoolVar(&parseNoColor, "no-color", false, "Ausgabe ohne Farben")
}

func runParse(cmd *cobra.Command, args []string) error {
	engine, s, err := newEngine(cmd)
	if err != nil {
		return err
	}

	format, err := mdwrender.ParseFormat(s.OutputFormat)
	if err != nil {
		return err
	}

	_, content, err := readInput(cmd, args, parseInput)
	if err != nil {
		return err
	}

	elem, rest, err := engine.Parse(content)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := mdwrender.Write(out, elem, format, mdwrender.Options{Color: s.Color}); err != nil {
		return err
	}

	if !mdwstringx.IsBlank(rest) {
		fmt.Fprintf(out, "\nRest: %q\n", rest)
	}
	return nil
}

// readInput returns a name and the document content. The content comes from
// the inline flag, a file argument, or stdin when the argument is "-" or missing.
func readInput(cmd *cobra.Command, args []string, inline string) (string, string, error) {
	if inline != "" {
		if len(args) > 0 {
			return "", "", mdwerror.New("--input und Datei-Argument schliessen sich aus").
				WithCode(mdwerror.CodeInvalidInput)
		}
		return "input", inline, nil
	}

	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fileError(err, args[0])
		}
		return args[0], string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", "", mdwerror.Wrap(err, "stdin nicht lesbar").WithCode(mdwerror.CodeInvalidInput)
	}
	return "stdin", string(data), nil
}

// fileError classifies a failed document read. A missing file is
// CodeNotFound, anything else CodeInvalidInput.
func fileError(err error, path string) error {
	code := mdwerror.CodeInvalidInput
	if os.IsNotExist(err) {
		code = mdwerror.CodeNotFound
	}
	return mdwerror.Wrap(err, "Datei nicht lesbar").
		WithCode(code).
		WithDetail("path", path)
}
