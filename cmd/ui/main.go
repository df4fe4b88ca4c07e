package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"showroom/internal/config"
	"showroom/internal/container"
	"showroom/ui"
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

	app, err := ui.NewApp(ui.Config{Port: appConfig.Server.Port, Logger: c.Logger}, c.Inventory, c.Presenter)
	if err != nil {
		log.Fatal("Failed to create UI app:", err)
	}

	log.Printf("Starting showroom UI on http://localhost:%s", appConfig.Server.Port)
	log.Fatal(app.Start())
}
