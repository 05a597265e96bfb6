package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/lifeforge-dev/lifeforge/internal/proxy"
	"github.com/lifeforge-dev/lifeforge/shared/config"
	"github.com/lifeforge-dev/lifeforge/shared/logger"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to the yaml config file")
	flag.Parse()

	var cfg *config.Config
	if configPath != "" {
		cfg = config.MustLoad(configPath)
	} else {
		cfg = config.Default()
	}
	logger.Initialize(cfg.Log.Level, cfg.Log.JSON)

	handler, err := proxy.New(cfg.Proxy)
	if err != nil {
		logger.Log.Error("failed to build proxy", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Proxy.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Proxy.ReadTimeout,
		WriteTimeout: cfg.Proxy.WriteTimeout,
	}

	logger.Log.Info("starting dev proxy",
		"port", cfg.Proxy.Port,
		"backend", cfg.Proxy.BackendURL,
	)
	if err := server.ListenAndServe(); err != nil {
		logger.Log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
