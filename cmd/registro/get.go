package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/registro/pkg/core"
)

var getJSON bool

var getCmd = &cobra.Command{
	Use:   "get <control>",
	Short: "Show the record with the given control",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		store := openStore(ctx, true)

		p, ok := store.GetByControl(ctx, args[0])
		if !ok {
			fatal("Error reading record", fmt.Errorf("%w: %s", core.ErrNotFound, args[0]))
		}

		if getJSON {
			printJSON(p)
			return
		}
		fmt.Printf("Name:      %s\nControl:   %s\nSpecialty: %s\n", p.Name, p.Control, p.Specialty)
	},
}

func init() {
	getCmd.Flags().BoolVar(&getJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(getCmd)
}
