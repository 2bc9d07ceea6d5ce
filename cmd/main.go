package main

import (
	"log"
	"time"

	"github.com/vatsala281203/food-logger/config"
	"github.com/vatsala281203/food-logger/controllers"
	"github.com/vatsala281203/food-logger/routes"
	"github.com/vatsala281203/food-logger/services"
	"github.com/vatsala281203/food-logger/storage"
)

func main() {
	cfg := config.Load()

	store := storage.NewFileStore(cfg.LogStorePath)
	logSvc := services.NewLogService(store, time.Now)
	summarySvc := services.NewSummaryService(store, time.Now, cfg.DisplayLoc)
	predictSvc := services.NewPredictionService(cfg.PredictURL)

	r := routes.SetupRouter(
		&controllers.LogController{Logs: logSvc, Summary: summarySvc},
		&controllers.PredictController{Predictor: predictSvc},
		cfg.WebDir,
	)

	log.Printf("food-logger listening on :%s (predict endpoint %s)", cfg.Port, cfg.PredictURL)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
