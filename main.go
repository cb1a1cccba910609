package main

import (
	"fmt"
	"os"

	"github.com/agentx-labs/cratekit/internal/cli"
	"github.com/agentx-labs/cratekit/internal/errors"
	"github.com/agentx-labs/cratekit/internal/style"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func printError(err error) {
	chain := errors.Chain(err)
	fmt.Fprintln(os.Stderr, style.Error.Render("Error:")+" "+chain[0])
	for _, cause := range chain[1:] {
		fmt.Fprintln(os.Stderr, style.Muted.Render("  caused by: ")+cause)
	}
}
