package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// outOfScopePersonalities names the peripheral chain-loading and
// console-realizer tools the multi-personality dispatch table this
// binary's personality belongs to would otherwise also implement. They
// are not part of this repository; usage lists them so the shape of the
// dispatch table stays visible without pretending they're implemented.
var outOfScopePersonalities = []string{
	"fdmove",
	"setsid",
	"chdir-home",
	"setenv",
	"move-to-control-group",
	"system-control",
	"service-manager",
	"cyclog",
}

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "List the out-of-scope dispatch-table personalities",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("rootsv implements the supervision-root personality only.")
		fmt.Println("Not implemented here (separate tools in the same dispatch table):")
		for _, name := range outOfScopePersonalities {
			fmt.Printf("  %s\n", name)
		}
	},
}

func init() {
	rootCmd.AddCommand(usageCmd)
}
