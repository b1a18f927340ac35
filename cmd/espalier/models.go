package main

import (
	"fmt"
	"os"

	"github.com/aretw0/espalier/internal/cli"
	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Inspect the available kinetic models",
}

var modelsLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List model ids",
	Run: func(cmd *cobra.Command, args []string) {
		catalog, _ := cmd.Flags().GetString("catalog")
		verbose, _ := cmd.Flags().GetBool("verbose")

		if err := cli.ListModels(catalog, verbose); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

var modelsShowCmd = &cobra.Command{
	Use:   "show <model>",
	Short: "Show one model's species, rates and description",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		catalog, _ := cmd.Flags().GetString("catalog")
		verbose, _ := cmd.Flags().GetBool("verbose")

		if err := cli.ShowModel(catalog, args[0], verbose); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	modelsCmd.AddCommand(modelsLsCmd)
	modelsCmd.AddCommand(modelsShowCmd)
	rootCmd.AddCommand(modelsCmd)
}
