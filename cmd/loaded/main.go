// Command loaded generates HTTP/1.1 load against a target URL using one
// of its pluggable engines.
package main

import (
	"fmt"
	"os"

	"github.com/loadgen/loaded/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
