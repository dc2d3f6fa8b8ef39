// data.go
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

package helpers

import (
	"testing"
	"time"

	"github.com/gaineafrica/farmrecords/internal/handlers"
	"github.com/gaineafrica/farmrecords/internal/middleware"
	"github.com/gaineafrica/farmrecords/internal/models"
	"github.com/gaineafrica/farmrecords/internal/services"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// NewTestDB creates an in-memory SQLite database with the full schema
func NewTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// A pooled second connection would see a different :memory: database
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Record{},
		&models.Prediction{},
		&models.MarketData{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// NewTestApp wires the complete route surface against an in-memory database,
// mirroring the server wiring minus metrics and swagger
func NewTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db := NewTestDB(t)
	tokens := services.NewTokenService("e2e-test-secret", time.Hour)

	app := fiber.New()
	api := app.Group("/api")

	authHandler := &handlers.AuthHandler{DB: db, Tokens: tokens}
	userHandler := &handlers.UserHandler{DB: db}
	recordHandler := &handlers.RecordHandler{DB: db}
	predictionHandler := &handlers.PredictionHandler{DB: db}
	marketHandler := &handlers.MarketDataHandler{DB: db}

	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/logout", authHandler.Logout)
	api.Get("/users", userHandler.ListUsers)
	api.Get("/users/:id", userHandler.GetUser)
	api.Get("/predictions", predictionHandler.ListPredictions)
	api.Post("/predictions", predictionHandler.CreatePrediction)
	api.Get("/market-data", marketHandler.ListMarketData)
	api.Post("/market-data", marketHandler.CreateMarketData)

	auth := middleware.RequireAuth(tokens)
	api.Put("/users/:id", auth, userHandler.UpdateUser)
	api.Get("/users/:id/records", auth, recordHandler.ListRecords)
	api.Post("/users/:id/records", auth, recordHandler.CreateRecord)
	api.Get("/users/:id/records/:rid", auth, recordHandler.GetRecord)
	api.Put("/users/:id/records/:rid", auth, recordHandler.UpdateRecord)
	api.Delete("/users/:id/records/:rid", auth, recordHandler.DeleteRecord)

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

	return app, db
}
