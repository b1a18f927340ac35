package main

import (
	"fmt"
	"os"

	"github.com/aretw0/espalier/internal/cli"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [model]",
	Short: "Generate and render a model's Master Equation system",
	Long: `Generates the exact Master Equation system for a kinetic model and
renders it as one notebook block.

The model comes from the catalog (--catalog), from a standalone YAML/JSON
definition (--file), or from the built-ins (currently "co-oxidation").
Without --output the notebook goes to stdout.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.RenderOptions{}
		if len(args) > 0 {
			opts.ModelID = args[0]
		}
		opts.ModelFile, _ = cmd.Flags().GetString("file")
		opts.Catalog, _ = cmd.Flags().GetString("catalog")
		opts.Sites, _ = cmd.Flags().GetInt("sites")
		opts.Order, _ = cmd.Flags().GetInt("order")
		opts.Format, _ = cmd.Flags().GetString("format")
		opts.OutputDir, _ = cmd.Flags().GetString("output")
		opts.Name, _ = cmd.Flags().GetString("name")
		opts.Verbose, _ = cmd.Flags().GetBool("verbose")

		if err := cli.Render(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("file", "f", "", "Path to a YAML/JSON model definition")
	renderCmd.Flags().Int("sites", 0, "Lattice size for built-in models (default 3)")
	renderCmd.Flags().Int("order", 0, "Mean-field truncation order (0 = exact)")
	renderCmd.Flags().String("format", "", "Output format (default mathematica)")
	renderCmd.Flags().StringP("output", "o", "", "Directory to export the notebook into (default stdout)")
	renderCmd.Flags().String("name", "", "File name under --output (default \"equations\")")
}
