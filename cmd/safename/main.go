package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/danieljhkim/safename/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		if errors.Is(err, cli.ErrCancelled) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
