package main

import (
	"os"

	"github.com/noah-isme/toko-arith/cmd/arith/cmd"
	"github.com/noah-isme/toko-arith/internal/config"
	"github.com/noah-isme/toko-arith/internal/obs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger := obs.NewLogger("json", "info")
		logger.Error().Err(err).Msg("config_load_failed")
		os.Exit(1)
	}
	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel)
	if err := cmd.NewRootCmd(cfg, logger).Execute(); err != nil {
		os.Exit(1)
	}
}
