package main

import "conduit-cli/internal/cli"

func main() {
	cli.Execute()
}
