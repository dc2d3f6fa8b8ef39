package integration_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/gaineafrica/farmrecords/internal/config"
	"github.com/gaineafrica/farmrecords/internal/database"
	"github.com/gaineafrica/farmrecords/internal/services"
	"github.com/gaineafrica/farmrecords/internal/types"
	_ "github.com/go-sql-driver/mysql"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

func dbImage() string {
	if img := os.Getenv("DB_IMAGE"); img != "" {
		return img
	}
	return "mariadb:11"
}

// TestWithMariaDB runs the service layer against a real MariaDB container
func TestWithMariaDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	mariadbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        dbImage(),
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
				"MYSQL_DATABASE":      "testdb",
				"MYSQL_USER":          "testuser",
				"MYSQL_PASSWORD":      "testpass",
			},
			WaitingFor: wait.ForLog("ready for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer func() {
		if err := mariadbContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB container: %v", err)
		}
	}()

	host, err := mariadbContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}
	port, err := mariadbContainer.MappedPort(ctx, "3306")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	waitForMySQL(t, host, port.Port())

	cfg := &config.Config{
		DBType:            "mysql",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "testdb",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
	}

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Run("RegisterAndAuthenticate", func(t *testing.T) {
		testRegisterAndAuthenticate(t, db)
	})

	t.Run("RecordLifecycle", func(t *testing.T) {
		testRecordLifecycle(t, db)
	})

	t.Run("OwnershipScope", func(t *testing.T) {
		testOwnershipScope(t, db)
	})

	t.Run("HealthCheck", func(t *testing.T) {
		testHealthCheck(t, cfg, db)
	})
}

// waitForMySQL pings through the raw driver until the server accepts writes
func waitForMySQL(t *testing.T, host, port string) {
	t.Helper()

	dsn := fmt.Sprintf("root:rootpass@tcp(%s:%s)/", host, port)
	raw, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("Failed to open raw connection: %v", err)
	}
	defer raw.Close()

	for i := 0; i < 30; i++ {
		if err = raw.Ping(); err == nil {
			return
		}
		time.Sleep(1 * time.Second)
	}
	t.Fatalf("MariaDB not ready after 30 seconds: %v", err)
}

func strPtr(s string) *string {
	return &s
}

func flexF(v float64) *types.FlexFloat64 {
	f := types.FlexFloat64(v)
	return &f
}

func flexU(v uint64) *types.FlexUint64 {
	u := types.FlexUint64(v)
	return &u
}

func registerInput(email string) services.RegisterInput {
	return services.RegisterInput{
		Name:     strPtr("Integration Farmer"),
		Email:    strPtr(email),
		Password: strPtr("S3cret!pass"),
		Phone:    strPtr("+254700111222"),
		Age:      flexU(30),
		Location: strPtr("Kisumu"),
		LandSize: flexF(3),
		Crop:     strPtr("maize"),
	}
}

func testRegisterAndAuthenticate(t *testing.T, db *gorm.DB) {
	user, err := services.RegisterUser(db, registerInput("int-auth@example.com"))
	if err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	authed, err := services.AuthenticateUser(db, "int-auth@example.com", "S3cret!pass")
	if err != nil {
		t.Fatalf("Failed to authenticate: %v", err)
	}
	if authed.UserID != user.UserID {
		t.Errorf("Expected user %s, got %s", user.UserID, authed.UserID)
	}

	if _, err := services.AuthenticateUser(db, "int-auth@example.com", "wrong"); err == nil {
		t.Error("Expected wrong password to fail")
	}
}

func testRecordLifecycle(t *testing.T, db *gorm.DB) {
	user, err := services.RegisterUser(db, registerInput("int-records@example.com"))
	if err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	created, err := services.CreateRecord(db, user.UserID, services.RecordInput{
		Crop:       strPtr("maize"),
		Planting:   flexF(100),
		Weeding:    flexF(50),
		Harvesting: flexF(30),
		Storage:    flexF(20),
		Sales:      flexF(500),
	})
	if err != nil {
		t.Fatalf("Failed to create record: %v", err)
	}
	if created.ProfitOrLoss != 300 {
		t.Errorf("Expected profit 300, got %v", created.ProfitOrLoss)
	}

	updated, err := services.UpdateRecord(db, user.UserID, created.ID, services.RecordInput{
		Sales: flexF(400),
	})
	if err != nil {
		t.Fatalf("Failed to update record: %v", err)
	}
	if updated.ProfitOrLoss != 200 {
		t.Errorf("Expected recomputed profit 200, got %v", updated.ProfitOrLoss)
	}

	if err := services.DeleteRecord(db, user.UserID, created.ID); err != nil {
		t.Fatalf("Failed to delete record: %v", err)
	}
	if _, err := services.GetRecord(db, user.UserID, created.ID); err == nil {
		t.Error("Expected not found after delete")
	}
}

func testOwnershipScope(t *testing.T, db *gorm.DB) {
	a, err := services.RegisterUser(db, registerInput("int-owner-a@example.com"))
	if err != nil {
		t.Fatalf("Failed to register owner: %v", err)
	}
	b, err := services.RegisterUser(db, registerInput("int-owner-b@example.com"))
	if err != nil {
		t.Fatalf("Failed to register second owner: %v", err)
	}

	record, err := services.CreateRecord(db, a.UserID, services.RecordInput{
		Crop:       strPtr("beans"),
		Planting:   flexF(10),
		Weeding:    flexF(10),
		Harvesting: flexF(10),
		Storage:    flexF(10),
		Sales:      flexF(100),
	})
	if err != nil {
		t.Fatalf("Failed to create record: %v", err)
	}

	if _, err := services.GetRecord(db, b.UserID, record.ID); err == nil {
		t.Error("Expected foreign record to read as not found")
	}
	if err := services.DeleteRecord(db, b.UserID, record.ID); err == nil {
		t.Error("Expected foreign delete to fail")
	}
	if _, err := services.GetRecord(db, a.UserID, record.ID); err != nil {
		t.Errorf("Record should survive foreign delete: %v", err)
	}
}

func testHealthCheck(t *testing.T, cfg *config.Config, db *gorm.DB) {
	result := services.HealthCheck(cfg, db)
	if result.Database != "ok" {
		t.Errorf("Expected database ok, got: %s", result.Database)
	}
	if result.Status != "healthy" {
		t.Errorf("Expected healthy, got: %s (%s)", result.Status, result.ErrorMessage)
	}

	// An unreachable predictor flips the overall status
	broken := *cfg
	broken.PredictorURL = "http://localhost:9"
	result = services.HealthCheck(&broken, db)
	if result.Predictor != "unreachable" {
		t.Errorf("Expected predictor unreachable, got: %s", result.Predictor)
	}
	if result.Status != "unhealthy" {
		t.Errorf("Expected unhealthy, got: %s", result.Status)
	}
}
