package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/declanmills/cube/internal/api"
)

// serveCmd starts the JSON HTTP API (internal/api), for callers that
// would rather POST an Input document than shell out to solve/find.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the JSON HTTP API",
	Long: `Serve starts a small JSON HTTP API wrapping the search engine and method
drivers: POST an Input document to /api/solve (optionally with "method":
"cfop"/"roux" and the usual max_depth/n/faces/wide/slices/rotations
fields) and get back the same {ok, solutions|solution} shape the solve
CLI command prints. GET /api/health reports liveness.`,
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")

		log := newLogger(cmd.Flags())
		log.WithField("addr", addr).Info("starting cube api server")

		server := api.NewServer(algorithmDB, log)
		if err := server.Start(addr); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "api server error: %v\n", err)
		}
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "address to bind the server to (host:port)")
	addSearchFlags(serveCmd.Flags())
}
