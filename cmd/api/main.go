package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"showroom/internal/api"
	"showroom/internal/config"
	"showroom/internal/container"
)

func main() {
	_ = godotenv.Load()

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	c, err := container.New(appConfig)
	if err != nil {
		log.Fatalf("Failed to create application container: %v", err)
	}
	defer c.Shutdown()

	go c.Warm(context.Background())

	handler := api.NewInventoryHandler(c.Inventory, c.Presenter, c.Logger)
	server := api.NewServer(appConfig.API.Port, handler, c.Logger, appConfig.API.GinMode)

	log.Printf("Starting showroom API on :%s", appConfig.API.Port)
	if err := server.Start(); err != nil {
		log.Fatal("Server failed:", err)
	}
}
