/*
main.go - Application entry point

PURPOSE:
  Builds the salary binary. All commands live in the cli package:

    salary serve   Web form + JSON API
    salary calc    One breakdown printed to the terminal

BUILD:
  go build -ldflags "-X main.version=1.2.0" ./cmd/salary

SEE ALSO:
  - cli/root.go: Command tree and exit codes
  - cli/serve.go: HTTP server lifecycle
*/
package main

import "github.com/warp/salary-engine/cli"

var version = "dev"

func main() {
	cli.Version = version
	cli.Execute(cli.NewRootCommand())
}
