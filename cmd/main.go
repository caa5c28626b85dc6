package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"greensentinel/backend/internal/api/handler"
	"greensentinel/backend/internal/auth"
	"greensentinel/backend/internal/complaint"
	"greensentinel/backend/internal/config"
	"greensentinel/backend/internal/feedhub"
	"greensentinel/backend/internal/models"
	"greensentinel/backend/internal/storage"
	"greensentinel/backend/internal/telegram"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies(cfg *config.Config) (*gorm.DB, *redis.Client) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Complaint{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting GreenSentinel Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()

	db, rdb := setupDependencies(cfg)
	s := storage.NewStorageService(db, rdb)

	hub := feedhub.NewManager(s)
	go hub.Run()

	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != "" {
		chatID, err := strconv.ParseInt(cfg.TelegramChatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		notifier, err := telegram.NewNotifier(cfg.TelegramBotToken, chatID, s)
		if err != nil {
			log.Fatalf("Failed to start Telegram notifier: %v", err)
		}
		go notifier.Run()
	}

	authManager := auth.NewManager(cfg.JWTSecret)
	complaints := complaint.NewService(s)
	h := handler.NewHandler(s, complaints, authManager, hub, cfg.BaseURL)

	r := gin.Default()

	r.POST("/auth/signup", h.Signup)
	r.POST("/auth/login", h.Login)
	r.GET("/auth/verify", h.VerifyEmail)
	r.POST("/auth/forgot-password", h.RequestPasswordReset)
	r.POST("/auth/reset-password", h.ResetPassword)
	r.GET("/catalog/regions", h.GetRegionCatalog)
	r.GET("/catalog/questions", h.GetQuestionSets)
	r.GET("/ws", h.ServeFeed) // WebSocket upgrade; token checked in handler

	authorized := r.Group("/")
	authorized.Use(authManager.Middleware())
	{
		authorized.POST("/auth/resend-verification", h.ResendVerification)
		authorized.GET("/profile", h.GetProfile)
		authorized.POST("/profile/onboarding", h.CompleteOnboarding)
		authorized.GET("/complaints", h.ListComplaints)
		authorized.POST("/complaints", h.SubmitComplaint)
		authorized.GET("/complaints/:id", h.GetComplaint)
		authorized.PATCH("/complaints/:id/status", h.UpdateComplaintStatus)
	}

	server := &http.Server{
		Addr:           cfg.HTTPAddr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
