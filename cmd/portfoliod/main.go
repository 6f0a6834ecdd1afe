package main

import (
	"fmt"
	"os"

	"github.com/moshiurrahman/portfolio-api/internal/cli"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "portfoliod",
		Short: "Portfolio API daemon",
		Long:  "Portfolio API daemon serving the blog, review, and chat endpoints",
	}

	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.ProfileCmd())

	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
