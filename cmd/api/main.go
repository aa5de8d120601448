package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lostpaws/petfinder-api/internal/config"
	dbpkg "github.com/lostpaws/petfinder-api/internal/db"
	"github.com/lostpaws/petfinder-api/internal/middleware"
	"github.com/lostpaws/petfinder-api/internal/routes"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
