package main

import (
	"context"
	"fmt"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"

	"github.com/aretw0/registro"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the record count and the state of the store",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		store := openStore(ctx, true)

		var component introspection.Introspectable = store
		if statusJSON {
			printJSON(map[string]any{
				"version": registro.Version,
				"data":    dataFile,
				"store":   component.State(),
			})
			return
		}

		fmt.Printf("registro %s\n", registro.Version)
		fmt.Printf("Data file: %s\n", dataFile)
		fmt.Printf("Records:   %d\n", store.Len())
	},
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(statusCmd)
}
