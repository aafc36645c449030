// Package db opens the GORM database connection and runs schema migration.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authadapters "fitness_backend/internal/feature/auth/adapters"
	authentity "fitness_backend/internal/feature/auth/domain/entity"
	catalogadapters "fitness_backend/internal/feature/catalog/adapters"
	resourcesadapters "fitness_backend/internal/feature/resources/adapters"
	syncadapters "fitness_backend/internal/feature/sync/adapters"
)

// OpenDB connects to the configured database and migrates the schema.
// DB_DRIVER selects "mysql" (default, including Cloud SQL unix sockets) or
// "postgres". The connection is retried for up to 60 seconds so the server
// can start before the database is ready.
func OpenDB() *gorm.DB {
	dialector := newDialector()

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(dialector, &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	// マイグレーション（User, Session, 所有リファレンス, クロック, ドキュメント, カタログ）
	models := []any{
		&authentity.User{},
		&authadapters.SessionModel{},
	}
	models = append(models, syncadapters.OwnershipModels()...)
	models = append(models, syncadapters.CatalogClockModels()...)
	models = append(models, resourcesadapters.DocumentModels()...)
	models = append(models, catalogadapters.CatalogModels()...)
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// newDialector builds the GORM dialector from environment variables.
func newDialector() gorm.Dialector {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")

	if os.Getenv("DB_DRIVER") == "postgres" {
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host, port, user, pass, name)
		return gpostgres.Open(dsn)
	}

	instance := os.Getenv("INSTANCE_CONNECTION_NAME")

	return gmysql.Open(mysqlDSN(user, pass, host, port, name, instance))
}

// mysqlDSN builds the MySQL connection string. clientFoundRows makes the
// driver count matched rows instead of changed rows, so updates that rewrite
// identical content still report the row as found.
func mysqlDSN(user, pass, host, port, name, instance string) string {
	const params = "charset=utf8mb4&parseTime=true&loc=Local&clientFoundRows=true"
	if instance != "" {
		return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?%s", user, pass, instance, name, params)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, name, params)
}
