package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"petbloom/internal/config"
	"petbloom/internal/demoserver"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[MAIN] No .env file found, relying on system env vars")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	srv := demoserver.NewServer(config.Load(), logger)

	// Run server in a separate goroutine so we can listen for shutdown signals
	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down demo server")
}
