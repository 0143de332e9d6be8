package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"kite-mcp-gateway/internal/gateway"
)

type LoginURLTool struct{}

func (*LoginURLTool) Tool() mcp.Tool {
	return mcp.NewTool("login_url",
		mcp.WithDescription("Get the Kite Connect login URL. Visit it in a browser, complete the login, and pass the resulting request token to set_access_token."),
	)
}

func (*LoginURLTool) Handler(gw *gateway.Gateway) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		url := gw.LoginURL(ctx)
		return mcp.NewToolResultText(fmt.Sprintf("Please login to Kite by visiting: %s", url)), nil
	}
}

type SetAccessTokenTool struct{}

func (*SetAccessTokenTool) Tool() mcp.Tool {
	return mcp.NewTool("set_access_token",
		mcp.WithDescription("Exchange a request token for an access token and activate the session. Must be called before any other trading operation."),
		mcp.WithString("request_token",
			mcp.Description("Request token obtained from the login redirect"),
			mcp.Required(),
		),
	)
}

func (*SetAccessTokenTool) Handler(gw *gateway.Gateway) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		requestToken := argString(request.GetArguments(), "request_token")
		if requestToken == "" {
			return mcp.NewToolResultError("request_token is required"), nil
		}
		if err := gw.SetAccessToken(ctx, requestToken); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText("Access token set successfully."), nil
	}
}
