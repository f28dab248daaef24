// Package db provides the GORM database connection for the application.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "tasktrack_backend/internal/feature/auth/domain/entity"
	taskentity "tasktrack_backend/internal/feature/tasks/domain/entity"
)

// Config holds the database connection settings read from the environment.
type Config struct {
	Driver   string // "mysql" (default) or "postgres"
	User     string
	Password string
	Name     string
	Host     string
	Port     string
	// InstanceName is the Cloud SQL instance connection name. When set,
	// the MySQL connection goes over the Cloud SQL unix socket instead
	// of TCP.
	InstanceName string
}

// LoadConfig reads the database configuration from environment variables.
func LoadConfig() Config {
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "mysql"
	}
	return Config{
		Driver:       driver,
		User:         os.Getenv("DB_USER"),
		Password:     os.Getenv("DB_PASSWORD"),
		Name:         os.Getenv("DB_NAME"),
		Host:         os.Getenv("DB_HOST"),
		Port:         os.Getenv("DB_PORT"),
		InstanceName: os.Getenv("INSTANCE_CONNECTION_NAME"),
	}
}

// BuildDSN builds the MySQL DSN. A non-empty InstanceName takes precedence
// and selects the Cloud SQL unix socket.
func BuildDSN(cfg Config) string {
	if cfg.InstanceName != "" {
		return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.InstanceName, cfg.Name)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}

// BuildPostgresDSN builds the PostgreSQL DSN in keyword/value form.
func BuildPostgresDSN(cfg Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
}

// dialector selects the GORM driver for the configured backend.
func dialector(cfg Config) gorm.Dialector {
	if cfg.Driver == "postgres" {
		return gpostgres.Open(BuildPostgresDSN(cfg))
	}
	return gmysql.Open(BuildDSN(cfg))
}

// OpenDB connects to the database, retrying for up to 60 seconds so the
// server survives a database that comes up slightly later (compose,
// rolling deploys). TranslateError lets adapters match gorm.ErrDuplicatedKey
// across drivers.
func OpenDB() *gorm.DB {
	cfg := LoadConfig()

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(dialector(cfg), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&authentity.User{},
			&taskentity.Task{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
