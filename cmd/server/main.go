package main

import (
	"log"
	"net/http"

	webAdapter "invoice-service/internal/adapters/web"
	"invoice-service/internal/app"
	"invoice-service/internal/config"
	"invoice-service/internal/pdf"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	cfg := config.Load()

	renderer, err := pdf.NewRenderer(cfg.PDF, logger)
	if err != nil {
		logger.Fatal("renderer", zap.Error(err))
	}

	svc := app.NewService(renderer)
	handler := webAdapter.NewHandler(svc, cfg.AllowedOrigins, logger)

	logger.Info("server starting", zap.String("port", cfg.ServerPort))
	if err := http.ListenAndServe(":"+cfg.ServerPort, handler); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
