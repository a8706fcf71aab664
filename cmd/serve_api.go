package cmd

import (
	"github.com/nsyszr/festival/pkg/cmd/server"
	"github.com/spf13/cobra"
)

// serveAPICmd represents the serve api command
var serveAPICmd = &cobra.Command{
	Use:   "api",
	Short: "Serve the GraphQL API over HTTP",
	Run:   server.RunServeAPI(c),
}

func init() {
	serveCmd.AddCommand(serveAPICmd)
}
