// Command sno runs line-oriented pattern tools built on the sno engine.
package main

import (
	"fmt"
	"os"

	"github.com/cspjst/sno/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sno:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
