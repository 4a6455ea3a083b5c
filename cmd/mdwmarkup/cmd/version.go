package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mdwmarkup/pkg/core/version"
)

var versionComponents bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Zeigt die Version an",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprint(out, version.Info())
		if versionComponents {
			for _, name := range []string{"parser", "analyzer", "renderer", "viewer"} {
				fmt.Fprintf(out, "  %-11s %s\n", name+":", version.ComponentVersion(name))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&versionComponents, "components", false, "Komponentenversionen anzeigen")
}
