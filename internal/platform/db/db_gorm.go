// Package db bootstraps the gorm database connection.
package db

import (
	"fmt"
	"log"
	"time"

	gmysql "gorm.io/driver/mysql"
	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	analysisentity "devlens_backend/internal/feature/analysis/domain/entity"
	authentity "devlens_backend/internal/feature/auth/domain/entity"
	"devlens_backend/internal/platform/config"
)

// OpenDB connects to the configured database, retrying until a deadline,
// and optionally runs schema migrations. It exits the process on failure:
// without a database nothing else can serve.
func OpenDB(cfg *config.Config) *gorm.DB {
	dialector := dialectorFor(cfg)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(
			&authentity.User{},
			&analysisentity.Repository{},
			&analysisentity.Report{},
			&analysisentity.Comparison{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

// dialectorFor builds the gorm dialector from configuration.
// A full DSN wins; otherwise one is composed from the individual parts.
func dialectorFor(cfg *config.Config) gorm.Dialector {
	dsn := cfg.DSN
	switch cfg.DBDriver {
	case "postgres":
		if dsn == "" {
			dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
				cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
		}
		return gpostgres.Open(dsn)
	default:
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
				cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
		}
		return gmysql.Open(dsn)
	}
}
