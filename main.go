package main

import (
	"context"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"showroom/internal/api"
	"showroom/internal/config"
	"showroom/internal/container"
	"showroom/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appContainer, err := container.New(appConfig)
	if err != nil {
		log.Fatalf("Failed to create application container: %v", err)
	}
	defer appContainer.Shutdown()
	logger := appContainer.Logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go appContainer.Warm(ctx)

	webApp, err := ui.NewApp(ui.Config{Port: appConfig.Server.Port, Logger: logger}, appContainer.Inventory, appContainer.Presenter)
	if err != nil {
		log.Fatalf("Failed to initialize UI: %v", err)
	}
	apiServer := api.NewServer(appConfig.API.Port,
		api.NewInventoryHandler(appContainer.Inventory, appContainer.Presenter, logger),
		logger, appConfig.API.GinMode)

	// Start pprof server for performance profiling
	if appConfig.Profiling.Enabled {
		go func() {
			logger.Info("Performance profiling server starting on :%s", appConfig.Profiling.Port)
			if err := http.ListenAndServe(":"+appConfig.Profiling.Port, nil); err != nil {
				logger.Error("pprof server failed: %v", err)
			}
		}()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(webApp.Start)
	g.Go(apiServer.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("Shutting down showroom servers")
		webErr := webApp.Shutdown(shutdownCtx)
		apiErr := apiServer.Shutdown(shutdownCtx)
		if webErr != nil {
			return webErr
		}
		return apiErr
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error: %v", err)
		appContainer.Shutdown()
		os.Exit(1)
	}
}
