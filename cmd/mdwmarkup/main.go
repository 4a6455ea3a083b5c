package main

import (
	"os"

	"github.com/msto63/mdwmarkup/cmd/mdwmarkup/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
