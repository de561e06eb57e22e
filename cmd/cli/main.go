package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"visualnotes/internal/buildinfo"
	"visualnotes/internal/cli"
	"visualnotes/internal/config"
	"visualnotes/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewDefault(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
