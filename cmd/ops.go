package cmd

import (
	"fmt"

	"github.com/ArnaudCalmettes/morphos/imp"
	"github.com/spf13/cobra"
)

// opsCmd represents the ops command
var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List available operators",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range imp.OperatorNames() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", name, operatorHelp[name])
		}
	},
}

func init() {
	rootCmd.AddCommand(opsCmd)
}
