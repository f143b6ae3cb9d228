package main

import (
	"context"
	"fmt"
	"os"

	"github.com/noah-isme/pack-scheduler-api/internal/cli"
)

func main() {
	if err := cli.NewRootCommand(os.Stdout).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "catalogctl:", err)
		os.Exit(1)
	}
}
