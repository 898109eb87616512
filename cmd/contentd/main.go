package main

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"azmedical/internal/config"
	"azmedical/internal/content"
	"azmedical/internal/handler"
	"azmedical/internal/server"
)

func main() {
	// A missing .env is fine; the defaults stand.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	loader := content.NewLoader(os.DirFS(cfg.ContentDir))
	contentH := handler.NewContentHandler(loader, log)

	addr := ":" + cfg.Port
	log.Info("content server starting",
		zap.String("addr", addr),
		zap.String("content_dir", cfg.ContentDir),
	)

	if err := server.Start(addr, contentH); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
