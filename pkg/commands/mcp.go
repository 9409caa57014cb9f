package commands

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/cal/pkg/app"
	"tableflip.dev/cal/pkg/form"
	"tableflip.dev/cal/pkg/runner/mcp"
	"tableflip.dev/cal/pkg/store"
)

func addMCP(topLevel *cobra.Command) {
	var (
		transport string
		httpHost  string
		httpPort  int
		httpPath  string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server that lets agents list, create, update and delete
calendar events, read the agenda and inspect single calendar cells.`,
		Example: `
cal mcp
cal mcp --transport http --http-port 8080
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := mcp.ParseTransport(transport)
			if err != nil {
				return output.HandleError(err)
			}
			if httpPort < 0 || httpPort > 65535 {
				return output.HandleError(fmt.Errorf("invalid http-port %d", httpPort))
			}

			err = withService(cmd.Context(), func(svc *app.Service, _ store.Persistence) error {
				r := mcp.Runner{
					Service:          svc,
					Form:             form.New(nil),
					Limits:           cfg.Limits(),
					Version:          version,
					Transport:        t,
					HTTPEndpointPath: strings.TrimSpace(httpPath),
				}
				if t == mcp.TransportHTTP {
					r.HTTPListenAddr = net.JoinHostPort(strings.TrimSpace(httpHost), strconv.Itoa(httpPort))
					r.OnHTTPListening = func(a net.Addr) {
						_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP HTTP server listening on %s%s\n", a, r.HTTPEndpointPath)
					}
				}
				return r.Do(cmd.Context())
			})
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&transport, "transport", string(mcp.TransportStdio), "Transport to serve, stdio or http.")
	cmd.Flags().StringVar(&httpHost, "http-host", "127.0.0.1", "Host to listen on with --transport http.")
	cmd.Flags().IntVar(&httpPort, "http-port", 8080, "Port to listen on with --transport http.")
	cmd.Flags().StringVar(&httpPath, "http-path", "/mcp", "Endpoint path with --transport http.")

	topLevel.AddCommand(cmd)
}
