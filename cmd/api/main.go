package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/threadfolio/threadfolio-api/internal/cache"
	"github.com/threadfolio/threadfolio-api/internal/config"
	dbpkg "github.com/threadfolio/threadfolio-api/internal/db"
	"github.com/threadfolio/threadfolio-api/internal/mailer"
	"github.com/threadfolio/threadfolio-api/internal/media"
	"github.com/threadfolio/threadfolio-api/internal/middleware"
	"github.com/threadfolio/threadfolio-api/internal/payments"
	"github.com/threadfolio/threadfolio-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	cc := cache.New(cfg)
	storage := media.New(cfg)
	mail := mailer.New(cfg)

	checkout, err := payments.New(cfg)
	if err != nil {
		log.Fatalf("payment gateway init: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, cc, storage, mail, checkout)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
