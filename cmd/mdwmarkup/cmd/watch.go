package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/mdwmarkup/foundation/core/error"
	mdwlog "github.com/msto63/mdwmarkup/foundation/core/log"
	"github.com/msto63/mdwmarkup/foundation/markup"
)

var (
	watchInterval        time.Duration
	watchMaxDepth        int
	watchRequireComplete bool
)

var watchCmd = &cobra.Command{
	Use:   "watch datei",
	Short: "Datei beobachten und bei Aenderung neu pruefen",
	Long: `Prueft eine Datei und wiederholt die Pruefung, sobald sich ihr
Aenderungszeitpunkt aendert. Beenden mit Ctrl+C.

Beispiele:
  mdwmarkup watch dokument.mdw
  mdwmarkup watch --interval 500ms dokument.mdw`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchInterval, "interval", time.Second, "Abfrageintervall")
	watchCmd.Flags().IntVar(&watchMaxDepth, "max-depth", 256, "Max. Verschachtelungstiefe (0 = unbegrenzt)")
	watchCmd.Flags().BoolVar(&watchRequireComplete, "require-complete", false, "Text nach dem Wurzelelement ablehnen")
}

func runWatch(cmd *cobra.Command, args []string) error {
	engine, s, err := newEngine(cmd)
	if err != nil {
		return err
	}
	if s.WatchInterval <= 0 {
		return mdwerror.New(fmt.Sprintf("ungueltiges Intervall: %s", s.WatchInterval)).
			WithCode(mdwerror.CodeInvalidConfig)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Beobachte %s (alle %s, Ctrl+C zum Beenden)\n", args[0], s.WatchInterval)
	return watchFile(ctx, cmd.OutOrStdout(), engine, args[0], s.WatchInterval)
}

// watchFile checks path once and again whenever its modification time
// changes, until ctx is done
func watchFile(ctx context.Context, w io.Writer, engine *markup.Engine, path string, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var lastMod time.Time
	var lastErr string

	poll := func() {
		info, err := os.Stat(path)
		if err != nil {
			// report a missing file once, it may reappear on the next save
			if msg := err.Error(); msg != lastErr {
				printError(w, path, err)
				lastErr = msg
			}
			lastMod = time.Time{}
			return
		}
		lastErr = ""
		if info.ModTime().Equal(lastMod) {
			return
		}
		lastMod = info.ModTime()
		engine.Options().Logger.Info("Watched file changed", mdwlog.Fields{
			"path":     path,
			"modified": lastMod.Format(time.RFC3339),
		})

		data, err := os.ReadFile(path)
		if err != nil {
			printError(w, path, err)
			return
		}
		fmt.Fprintf(w, "[%s] ", time.Now().Format("15:04:05"))
		_ = checkDocument(w, engine, path, string(data), false)
	}

	poll()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			poll()
		}
	}
}
