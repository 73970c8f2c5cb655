package main

import (
	"fmt"
	"os"

	"github.com/hyprkit/hyprkit/pkg/report"
)

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, report.New().RenderError(err))
		os.Exit(1)
	}
}
