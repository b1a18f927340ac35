package main

import (
	"fmt"
	"os"

	"github.com/aretw0/espalier/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "espalier",
	Short: "Espalier turns lattice kinetic models into Mathematica notebooks",
	Long: `Espalier generates the Master Equation system for a kinetic model on a
one-dimensional lattice and renders it as Mathematica syntax, exact or
truncated to a mean-field order.`,
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner()
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("catalog", "", "Directory containing model documents")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}
