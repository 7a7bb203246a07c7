package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/retitle/cmd/retitle"
	"github.com/arthur-debert/retitle/pkg/output/styles"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	rootCmd := retitle.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		errorStyle := styles.NewRegistry(lipgloss.NewRenderer(os.Stderr), styles.DefaultConfig()).Get("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))

		os.Exit(retitle.ExitCode(err))
	}
}
