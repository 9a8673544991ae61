package main

import (
	"os"

	"github.com/arthur-debert/backup/pkg/output"
)

func main() {
	output.ConfigureColor(os.Stdout)

	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		output.Error(os.Stderr, err)
		os.Exit(1)
	}
}
