package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ib-77/img-resize/internal/cli"
)

func main() {
	cmd := cli.NewCommand(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", cli.Name, err)
		os.Exit(1)
	}
}
