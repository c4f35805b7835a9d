package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/digivend/credit-shop/internal/pkg/logging"
	"github.com/digivend/credit-shop/internal/server/bootstrap"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaultLogger := logging.StdoutLogger

	cfg := bootstrap.LoadServerConfig()
	app := bootstrap.NewServerApp(cfg, defaultLogger)

	if err := app.Run(mainCtx); err != nil {
		defaultLogger.Error("server stopped with error", "error", err.Error())
	}

	app.Shutdown()
}
