package main

import (
	"fmt"
	"os"

	"drukwater-admin/internal/cli"
	"drukwater-admin/internal/config"
	"drukwater-admin/internal/logger"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "drukwater-admin")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	app := cli.NewApp(cfg, log)
	if err := cli.NewRootCmd(app).Execute(); err != nil {
		os.Exit(1)
	}
}
