package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, built %s)\n", c.BuildVersion, c.BuildHash, c.BuildTime)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
