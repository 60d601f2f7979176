package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aretw0/registro/pkg/core"
)

var (
	listJSON   bool
	listSearch string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List records, optionally filtered by a search term",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		store := openStore(ctx, true)

		people := store.Find(ctx, listSearch)

		if listJSON {
			printJSON(people)
			return
		}
		printTable(people)
		fmt.Printf("%d record(s)\n", len(people))
	},
}

func printJSON(v any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		fatal("Error encoding output", err)
	}
}

func printTable(people []core.Person) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CONTROL\tNAME\tSPECIALTY")
	for _, p := range people {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.Control, p.Name, p.Specialty)
	}
	w.Flush()
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Case-insensitive search on name, control or specialty")
	rootCmd.AddCommand(listCmd)
}
