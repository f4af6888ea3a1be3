package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database bundles the GORM handle used by the controllers and the raw pgx
// pool used by bulk tooling. It is constructed once in main and passed down;
// no package-level globals.
type Database struct {
	Gorm *gorm.DB
	Pool *pgxpool.Pool
}

// OpenDatabase connects GORM and pgx against DASHBOARD_DB_URL (falling back to
// local defaults) and pings both before returning.
func OpenDatabase(ctx context.Context) (*Database, error) {
	dsn := os.Getenv("DASHBOARD_DB_URL")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/dbusana_dashboard?sslmode=disable",
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("⚠️ DASHBOARD_DB_URL not set, using local default")
	}

	gormLogger := logger.Default.LogMode(logger.Info)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("connect dashboard database (GORM): %w", err)
	}
	if sqlDB, err := gdb.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Println("✅ Dashboard database connected (GORM)")

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect dashboard database (pgx): %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("dashboard database ping failed: %w", err)
	}
	log.Println("✅ Dashboard database connected (pgx)")

	return &Database{Gorm: gdb, Pool: pool}, nil
}

// Close releases both connection pools.
func (d *Database) Close() {
	if d == nil {
		return
	}
	if d.Pool != nil {
		d.Pool.Close()
		log.Println("✅ Dashboard database connection closed (pgx)")
	}
	if d.Gorm != nil {
		if sqlDB, err := d.Gorm.DB(); err == nil && sqlDB != nil {
			sqlDB.Close()
			log.Println("✅ Dashboard database connection closed (GORM)")
		}
	}
}

// WithTimeout returns a context with a 10s timeout (bumped from 5s for managed
// Postgres cold starts)
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
