package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/registro/pkg/core"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <control>",
	Short: "Delete the record with the given control",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		store := openStore(ctx, true)

		if !store.Remove(ctx, args[0]) {
			fatal("Error deleting record", fmt.Errorf("%w: %s", core.ErrNotFound, args[0]))
		}
		fmt.Printf("Record deleted: %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
