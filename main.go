package main

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"

	"fieldboard/config"
	"fieldboard/di"
	"fieldboard/driver/workspace_db"
	"fieldboard/rest"
	"fieldboard/utils/logger"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		panic(fmt.Sprintf("invalid configuration: %v", err))
	}

	log := logger.InitLogger(cfg.Logging.Level, cfg.Logging.Format)
	log.Info("starting fieldboard backend", "port", cfg.Server.Port)

	ctx := context.Background()
	pool, err := workspace_db.InitPool(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic(err)
	}
	defer pool.Close()

	container := di.NewApplicationComponents(cfg, pool)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	rest.RegisterRoutes(e, container, cfg)

	if err := e.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		log.Error("server stopped", "error", err)
		panic(err)
	}
}
