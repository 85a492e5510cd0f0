package main

import (
	"errors"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/divinedarshan/divine-darshan-backend/config"
	"github.com/divinedarshan/divine-darshan-backend/database"
	"github.com/divinedarshan/divine-darshan-backend/internal/auditlog"
	"github.com/divinedarshan/divine-darshan-backend/internal/auth"
	"github.com/divinedarshan/divine-darshan-backend/internal/booking"
	"github.com/divinedarshan/divine-darshan-backend/internal/content"
	"github.com/divinedarshan/divine-darshan-backend/internal/service"
	"github.com/divinedarshan/divine-darshan-backend/internal/subscription"
	"github.com/divinedarshan/divine-darshan-backend/internal/temple"
	"github.com/divinedarshan/divine-darshan-backend/routes"
	"github.com/divinedarshan/divine-darshan-backend/utils"
)

func main() {
	cfg := config.Load()

	// All required secrets are checked before anything binds or connects;
	// a partially configured process must not come up.
	if err := cfg.Validate(); err != nil {
		log.Fatalf("configuration invalid: %v", err)
	}

	db := database.Connect(cfg)

	if err := utils.InitRedis(cfg); err != nil {
		if errors.Is(err, utils.ErrRedisDisabled) {
			log.Println("redis not configured, password reset tokens disabled")
		} else {
			log.Fatalf("redis init failed: %v", err)
		}
	}

	log.Println("running database migrations")
	if err := db.AutoMigrate(
		&auth.User{},
		&temple.Temple{},
		&service.Service{},
		&content.Testimonial{},
		&content.SeasonalEvent{},
		&booking.Booking{},
		&subscription.PrasadSubscription{},
		&auditlog.AuditLog{},
	); err != nil {
		log.Fatalf("auto-migrate failed: %v", err)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	allowOrigins := []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	if cfg.FrontendURL != "" {
		allowOrigins = append(allowOrigins, cfg.FrontendURL)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Setup(router, cfg)

	log.Printf("listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
