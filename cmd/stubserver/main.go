package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/LuisAngelSanchezRomero/product-admin/internal/domain"
	"github.com/LuisAngelSanchezRomero/product-admin/internal/server"
	"github.com/LuisAngelSanchezRomero/product-admin/internal/store"
	"github.com/gorilla/handlers"
	"github.com/hashicorp/go-hclog"
	"github.com/nicholasjackson/env"
)

// Environment variables
var (
	bindAddress = env.String("BIND_ADDRESS", false,
		":8080", "Bind address for the stub server")
	logLevel = env.String("LOG_LEVEL", false,
		"debug", "Log output level for the server [debug, info, trace]")
)

func main() {
	env.Parse()

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "stubserver",
		Level: hclog.LevelFromString(*logLevel),
	})

	standardLogger := logger.StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true})

	memory := store.NewMemory(store.SampleProducts()...)
	validator := domain.NewValidation()

	ph := server.NewProductHandler(memory, logger.Named("product-handler"))
	mw := server.NewMiddleware(logger.Named("middleware"), validator)
	router := server.NewRouter(ph, mw)

	// Browser frontends develop against the stub, so CORS is wide open here.
	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "X-Request-ID"}),
	)(router)

	srv := &http.Server{
		Addr:         *bindAddress,
		Handler:      corsHandler,
		ErrorLog:     standardLogger,
		IdleTimeout:  120 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Starting stub server", "bind_address", *bindAddress)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Error starting server", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	<-sigChan
	logger.Info("Shutting down stub server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	srv.Shutdown(shutdownCtx)
}
