package main

import "kite-mcp-gateway/internal/cli"

func main() {
	cli.Execute()
}
