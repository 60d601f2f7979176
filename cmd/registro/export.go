package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/registro/pkg/export"
)

var (
	exportFormat string
	exportOut    string
	exportNoYAML bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all records as JSON, XML, YAML or CSV",
	Example: `  registro export --format xml --out personas.xml
  registro export --format yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		exports := export.New(export.WithYAML(cfg.ExportYAML && !exportNoYAML))

		// Fail on the format before touching the data file.
		enc, err := exports.Lookup(exportFormat)
		if err != nil {
			fatal("Error exporting", err)
		}

		store := openStore(ctx, true)
		people := store.List(ctx)

		if exportOut == "" || exportOut == "-" {
			if err := enc.Encode(os.Stdout, people); err != nil {
				fatal("Error exporting", err)
			}
			return
		}

		out := exportOut
		if filepath.Ext(out) == "" {
			out += enc.Extension()
		}
		if err := exports.WriteFile(out, exportFormat, people); err != nil {
			fatal("Error exporting", err)
		}
		fmt.Printf("Exported %d record(s) to %s\n", len(people), out)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format: json, xml, yaml or csv")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default stdout)")
	exportCmd.Flags().BoolVar(&exportNoYAML, "no-yaml", false, "Disable the YAML encoder (env REGISTRO_EXPORT_YAML=false)")
	rootCmd.AddCommand(exportCmd)
}
