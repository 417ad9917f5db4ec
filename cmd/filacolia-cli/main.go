package main

import (
	"fmt"
	"os"

	"github.com/kailas-cloud/filacolia/internal/cli"
	"github.com/kailas-cloud/filacolia/internal/version"
)

func main() {
	if err := cli.NewRootCmd(version.Version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
