package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"kite-mcp-gateway/internal/broker"
	"kite-mcp-gateway/internal/gateway"
	"kite-mcp-gateway/internal/tools"
)

func newServeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP tool server",
		Long: `Start the MCP tool server over stdio (default) or SSE.

Tools can be withheld from clients with --exclude-tools, e.g.
--exclude-tools place_order,cancel_order for a read-only session.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			useSSE, _ := cmd.Flags().GetBool("sse")
			listen, _ := cmd.Flags().GetString("listen")
			excludeList, _ := cmd.Flags().GetString("exclude-tools")
			if excludeList == "" {
				excludeList = app.Config.Server.ExcludedTools
			}
			if listen == "" {
				listen = app.Config.Server.Listen
			}

			kite := broker.NewKite(broker.Config{
				APIKey:    app.Config.Credentials.Kite.APIKey,
				APISecret: app.Config.Credentials.Kite.APISecret,
			})
			gw := gateway.New(kite, app.Logger)

			excluded := tools.ParseExcludedTools(excludeList)
			s := tools.NewServer(gw, Version, excluded)

			if useSSE {
				app.Logger.Info().Str("listen", listen).Msg("Starting SSE server")
				return server.NewSSEServer(s).Start(listen)
			}
			app.Logger.Info().Msg("Starting stdio server")
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().Bool("sse", false, "serve over SSE instead of stdio")
	cmd.Flags().String("listen", "", "SSE listen address (default :8080)")
	cmd.Flags().String("exclude-tools", "", "comma-separated tool names to withhold")

	return cmd
}
