package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/webshop/storefront/internal/devserver"
	"github.com/webshop/storefront/internal/infrastructure/logger"
)

func main() {
	log := logger.New(logger.Config{Level: "info", Format: "console", Output: "stdout"})
	defer func() {
		_ = logger.Sync(log)
	}()

	addr := os.Getenv("MOCKAPI_ADDR")
	if addr == "" {
		addr = ":8081"
	}

	server := devserver.New(log, devserver.Fixture())
	log.Info("mock shop API listening", zap.String("addr", addr))
	if err := server.Router().Run(addr); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}
