package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update <control>",
	Short: "Replace all fields of a record",
	Long: `Replace name, control and specialty of the record identified by <control>.
All three fields are required. The control may be changed as long as no other
record holds the new value.`,
	Example: `  registro update C001 --name "Ana Maria" --control C001 --specialty Systems`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		store := openStore(ctx, true)

		p, err := store.Update(ctx, args[0], recName, recControl, recSpecialty)
		if err != nil {
			fatal("Error updating record", err)
		}
		fmt.Printf("Record updated: %s (%s)\n", p.Control, p.Name)
	},
}

func init() {
	addRecordFlags(updateCmd)
	rootCmd.AddCommand(updateCmd)
}
