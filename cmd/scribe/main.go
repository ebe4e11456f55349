// Command scribe runs the collaborative editor.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/scribe-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
