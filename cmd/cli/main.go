package main

import (
	"context"
	"log"
	"os"

	"shelfkeeper/internal/buildinfo"
	"shelfkeeper/internal/cli"
	"shelfkeeper/internal/config"
	"shelfkeeper/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
