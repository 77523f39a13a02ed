package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"taskhub/taskhub/config"
	"taskhub/taskhub/database"
	"taskhub/taskhub/middleware"
	"taskhub/taskhub/routes"
	"taskhub/taskhub/services"
)

const version = "1.0.0"

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Setup(cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "To-Do API", "version": version})
	})
	router.GET("/health", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterUserRoutes(router, db, services.UserServiceInstance)
	routes.RegisterTaskRoutes(router, db, services.TaskServiceInstance)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		logrus.Info("Shutting down server...")
		db.Close()
		os.Exit(0)
	}()

	logrus.WithField("port", cfg.AppPort).Info("API server is running")
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
