package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/nftmedia/upload-api/docs"
	"github.com/nftmedia/upload-api/internal/config"
	"github.com/nftmedia/upload-api/internal/http/handlers/files"
	"github.com/nftmedia/upload-api/internal/http/handlers/health"
	"github.com/nftmedia/upload-api/internal/http/middleware"
	"github.com/nftmedia/upload-api/internal/services/store"
)

// @title nft-upload-api
// @version 0.2.0
// @description HTTP file-management service for album media: multipart uploads into a fixed directory layout, recursive album deletion, health check.
func main() {
	// load config
	cfg := config.MustLoad()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// file store setup
	owner := store.OwnerFromConfig(cfg.Storage.FileOwner)
	fileStore, err := store.New(&cfg.Storage, owner)
	if err != nil {
		log.Fatal("Failed to initialize file store:", err)
	}
	slog.Info("File store ready", slog.String("root", fileStore.Root()))

	fileHandlers := files.NewFileHandlers(fileStore, cfg.Storage.MaxUploadBytes)

	// setup server
	router := http.NewServeMux()

	router.HandleFunc("GET /api/health", health.Health())
	router.HandleFunc("POST /api/upload", fileHandlers.Upload())
	router.HandleFunc("POST /api/delete", fileHandlers.Delete())
	router.Handle("GET /swagger/", httpSwagger.WrapHandler)

	handler := middleware.CORS(cfg.CORS.AllowedOrigins)(middleware.Logging(logger)(router))

	server := http.Server{
		Addr:    cfg.HTTPServer.Address,
		Handler: handler,
	}

	log.Println("server started on", cfg.HTTPServer.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %s", err)
		}
	}()

	<-done

	slog.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = server.Shutdown(ctx)
	if err != nil {
		slog.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
		return
	}

	slog.Info("Server stopped")
}
