package main

import (
	"fmt"
	"log"

	"github.com/Thariq15/react-cafe/configs"
	"github.com/Thariq15/react-cafe/middlewares"
	"github.com/Thariq15/react-cafe/pkg/logging"
	"github.com/Thariq15/react-cafe/pkg/metrics"
	"github.com/Thariq15/react-cafe/repository"
	"github.com/Thariq15/react-cafe/routes"
	"github.com/Thariq15/react-cafe/ws"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()
	logger := logging.Init("cafe-api", cfg.LogFile)

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedMenu(); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	// Live cart fan-out
	hub := ws.NewCartHub(repository.NewCartRepository(db))
	go hub.Run()

	m := metrics.NewServerMetrics("api")

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.Metrics(m))

	routes.RegisterRoutes(r, db, cfg, hub, m)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info("server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
