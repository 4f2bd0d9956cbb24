// Command invoicegen renders an invoice PDF from a JSON request file, for
// previewing document changes without running the server.
//
//	invoicegen -in request.json -lang es [-out dir]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"

	"invoice-service/internal/app"
	"invoice-service/internal/config"
	"invoice-service/internal/i18n"
	"invoice-service/internal/pdf"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	in := flag.String("in", "", "path to an invoice request JSON file")
	lang := flag.String("lang", "en", "document language (en, es)")
	out := flag.String("out", ".", "output directory")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	data, err := os.ReadFile(*in)
	if err != nil {
		logger.Fatal("reading request file", zap.Error(err))
	}
	var req app.CreateInvoiceRequest
	if err := json.Unmarshal(data, &req); err != nil {
		logger.Fatal("parsing request file", zap.Error(err))
	}

	renderer, err := pdf.NewRenderer(config.Load().PDF, logger)
	if err != nil {
		logger.Fatal("renderer", zap.Error(err))
	}
	svc := app.NewService(renderer)

	result, err := svc.CreateInvoicePDF(context.Background(), req, i18n.ResolveLocale(*lang, ""))
	if err != nil {
		logger.Fatal("generating invoice", zap.Error(err))
	}

	path := filepath.Join(*out, result.Filename)
	if err := os.WriteFile(path, result.PDF, 0o644); err != nil {
		logger.Fatal("writing pdf", zap.Error(err))
	}
	logger.Info("invoice written", zap.String("path", path))
}
