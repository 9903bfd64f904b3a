package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/config"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/logging"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/services"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := config.LoadConfig(); err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := logging.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	logging.Logger.Info("Starting Exegese Sync Service")

	config.InitRedis()
	if config.Redis == nil {
		log.Fatal("Failed to initialize Redis client")
	}

	config.InitMongoDB()
	if config.MongoDB == nil {
		log.Fatal("Failed to initialize MongoDB")
	}

	workerCount := config.AppConfig.DBWorkerCount
	if workerCount == 0 {
		workerCount = 5
	}

	syncService := services.NewSyncService(
		config.Redis,
		config.MongoDB,
		workerCount,
		logging.Logger,
	)

	syncService.Start()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan
	logging.Logger.Info("Shutdown signal received")

	syncService.Stop()

	logging.Logger.Info("Exegese Sync Service stopped")
}
