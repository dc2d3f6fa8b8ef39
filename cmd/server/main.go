// main.go
//
// Farm record keeping and crop prediction data service for Gaine Africa
// Copyright (c) 2026 Gaine Africa
//
// This file is part of farmrecords.
// farmrecords is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// farmrecords is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with farmrecords.
// If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	"github.com/gaineafrica/farmrecords/internal/config"
	"github.com/gaineafrica/farmrecords/internal/database"
	"github.com/gaineafrica/farmrecords/internal/handlers"
	"github.com/gaineafrica/farmrecords/internal/middleware"
	"github.com/gaineafrica/farmrecords/internal/services"
	"github.com/gaineafrica/farmrecords/internal/types"

	_ "github.com/gaineafrica/farmrecords/docs/api" // Swagger docs
)

// @title Gaine Africa Farm Records API
// @version 1.0.0
// @description Multi-tenant record keeping for smallholder farmers

// @contact.name API Support
// @contact.url https://github.com/gaineafrica/farmrecords

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Token service for issuing and verifying bearer tokens
	tokens := services.NewTokenService(cfg.JWTSecret, time.Duration(cfg.JWTExpirySeconds)*time.Second)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("farmrecords")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")

	// Create handlers
	authHandler := &handlers.AuthHandler{DB: db, Tokens: tokens}
	userHandler := &handlers.UserHandler{DB: db}
	recordHandler := &handlers.RecordHandler{DB: db}
	predictionHandler := &handlers.PredictionHandler{DB: db}
	marketHandler := &handlers.MarketDataHandler{DB: db}
	healthHandler := &handlers.HealthHandler{Cfg: cfg, DB: db}

	// Public routes
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/logout", authHandler.Logout)
	api.Get("/users", userHandler.ListUsers)
	api.Get("/users/:id", userHandler.GetUser)
	api.Get("/predictions", predictionHandler.ListPredictions)
	api.Post("/predictions", predictionHandler.CreatePrediction)
	api.Get("/market-data", marketHandler.ListMarketData)
	api.Post("/market-data", marketHandler.CreateMarketData)
	api.Get("/health", healthHandler.GetHealth)

	// Owner-scoped routes (all require bearer authentication)
	auth := middleware.RequireAuth(tokens)
	api.Put("/users/:id", auth, userHandler.UpdateUser)
	api.Get("/users/:id/records", auth, recordHandler.ListRecords)
	api.Post("/users/:id/records", auth, recordHandler.CreateRecord)
	api.Get("/users/:id/records/:rid", auth, recordHandler.GetRecord)
	api.Put("/users/:id/records/:rid", auth, recordHandler.UpdateRecord)
	api.Delete("/users/:id/records/:rid", auth, recordHandler.DeleteRecord)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
			"type":      "router.notfound",
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	var ce *types.CustomError
	if errors.As(err, &ce) {
		code = ce.Code
		message = ce.Message
		errorType = ce.Type
	} else if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
