package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/registro"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of registro",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("registro version %s\n", registro.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
