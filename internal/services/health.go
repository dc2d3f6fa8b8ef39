package services

import (
	"fmt"
	"log"

	"github.com/gaineafrica/farmrecords/internal/config"
	"github.com/gaineafrica/farmrecords/internal/utils"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Predictor    string            `json:"predictor,omitempty"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck performs a comprehensive health check of the service
func HealthCheck(cfg *config.Config, db *gorm.DB) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	// Check database connectivity
	sqlDB, err := db.DB()
	if err != nil {
		result.Status = "unhealthy"
		result.Database = "error"
		result.Details["database_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database connection error: %v", err)
		log.Printf("Health check failed - database connection: %v", err)
	} else {
		if err := sqlDB.Ping(); err != nil {
			result.Status = "unhealthy"
			result.Database = "unreachable"
			result.Details["database_ping_error"] = err.Error()
			result.ErrorMessage = fmt.Sprintf("Database ping failed: %v", err)
			log.Printf("Health check failed - database ping: %v", err)
		} else {
			result.Database = "ok"
			result.Details["database_type"] = cfg.DBType
			result.Details["database_name"] = cfg.DBDatabase
		}
	}

	// Check upstream predictor connectivity when configured
	if cfg.PredictorURL != "" {
		if err := utils.PingPredictor(cfg.PredictorURL); err != nil {
			result.Status = "unhealthy"
			result.Predictor = "unreachable"
			result.Details["predictor_error"] = err.Error()
			if result.ErrorMessage == "" {
				result.ErrorMessage = fmt.Sprintf("Predictor ping failed: %v", err)
			} else {
				result.ErrorMessage += fmt.Sprintf("; predictor ping failed: %v", err)
			}
			log.Printf("Health check failed - predictor ping: %v", err)
		} else {
			result.Predictor = "ok"
			result.Details["predictor_url"] = cfg.PredictorURL
		}
	}

	if result.Status == "healthy" {
		log.Println("Health check passed - all systems operational")
	}

	return result
}
