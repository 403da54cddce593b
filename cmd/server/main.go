package main

import (
	"context"
	"log"

	"event-booking-api/config"
	"event-booking-api/internal/database"
	"event-booking-api/internal/handler"
	"event-booking-api/internal/middleware"
	"event-booking-api/internal/repository"
	"event-booking-api/internal/service"
	"event-booking-api/migrations"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	if err := migrations.Apply(context.Background(), pool); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	eventRepo := repository.NewEventRepository(pool)
	locationRepo := repository.NewLocationRepository(pool)
	eventLocationRepo := repository.NewEventLocationRepository(pool)

	eventService := service.NewEventService(eventRepo)
	locationService := service.NewLocationService(locationRepo)
	eventLocationService := service.NewEventLocationService(eventLocationRepo, eventRepo, locationRepo)

	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimit(rdb, middleware.DefaultRateLimitConfig()))

	handler.NewEventHandler(eventService).RegisterRoutes(api)
	handler.NewLocationHandler(locationService).RegisterRoutes(api)
	handler.NewEventLocationHandler(eventLocationService).RegisterRoutes(api)

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
