package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	recName      string
	recControl   string
	recSpecialty string
)

var addCmd = &cobra.Command{
	Use:     "add",
	Short:   "Add a record",
	Example: `  registro add --name "Ana" --control C001 --specialty Systems`,
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		store := openStore(ctx, false)

		p, err := store.Add(ctx, recName, recControl, recSpecialty)
		if err != nil {
			fatal("Error adding record", err)
		}
		fmt.Printf("Record added: %s (%s)\n", p.Control, p.Name)
	},
}

func addRecordFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&recName, "name", "n", "", "Full name")
	cmd.Flags().StringVarP(&recControl, "control", "c", "", "Control number")
	cmd.Flags().StringVarP(&recSpecialty, "specialty", "s", "", "Specialty")
}

func init() {
	addRecordFlags(addCmd)
	rootCmd.AddCommand(addCmd)
}
