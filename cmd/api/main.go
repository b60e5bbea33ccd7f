package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VelvetStudioPL/salon-scheduler/internal/config"
	dbpkg "github.com/VelvetStudioPL/salon-scheduler/internal/db"
	"github.com/VelvetStudioPL/salon-scheduler/internal/middleware"
	"github.com/VelvetStudioPL/salon-scheduler/internal/routes"
	"github.com/VelvetStudioPL/salon-scheduler/internal/uploads"
)

func main() {

	cfg := config.Load()
	adapter := dbpkg.NewAdapter(cfg)

	store, err := uploads.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("failed to prepare upload dir: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, adapter, cfg, store)

	log.Printf("Server running on %s (db: %s)", cfg.Addr(), adapter.Dialect())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
