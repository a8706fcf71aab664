package cmd

import (
	"github.com/spf13/cobra"
)

// execCmd represents the exec command
var execCmd = &cobra.Command{
	Use:   "exec",
	Short: "Execute one GraphQL request against the dataset and print the response",
	Long: `Execute one GraphQL request against the dataset and print the response.

Without --query a request envelope {"query", "operationName", "variables"} is
read from stdin. Mutations only live for the duration of the command.`,
	Run: cmdHandler.Exec.Exec,
}

func init() {
	execCmd.Flags().StringP("query", "q", "", "GraphQL query")
	execCmd.Flags().String("variables", "", "JSON encoded variables of the query")
	RootCmd.AddCommand(execCmd)
}
