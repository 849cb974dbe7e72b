package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"taskflow/internal/app"
	"taskflow/internal/cli"
	"taskflow/internal/client"
	"taskflow/internal/util"
)

func main() {
	_ = godotenv.Load()

	serverFlag := flag.String("server", util.EnvOrDefault("TASKFLOW_API_URL", "http://localhost:5000"), "Base URL of the taskflow server")
	flag.Parse()

	shell := app.NewShell(client.New(*serverFlag))

	ui, err := cli.New(shell)
	if err != nil {
		fmt.Fprintf(os.Stderr, "taskcli: %v\n", err)
		os.Exit(1)
	}
	defer ui.Close()

	if err := ui.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "taskcli: %v\n", err)
		os.Exit(1)
	}
}
