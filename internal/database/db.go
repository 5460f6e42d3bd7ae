package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/eduflow/eduflow-api/internal/config"
)

// Open connects to Postgres with the regular application role and verifies
// the connection. Row-level security policies apply to every query issued
// on this pool.
func Open(cfg config.Config) (*sqlx.DB, error) {
	return open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
}

// OpenService connects with the elevated service role that bypasses
// row-level security. It is reserved for trusted server-side mutations
// (course creation, lesson edits). When no service role is configured a
// second pool is opened with the application credentials so the mutation
// endpoints still function against development databases without RLS.
func OpenService(cfg config.Config) (*sqlx.DB, error) {
	if cfg.DBServiceUser == "" {
		return open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	}
	return open(cfg.DBServiceUser, cfg.DBServicePass, cfg.DBHost, cfg.DBPort, cfg.DBName)
}

func open(user, pass, host, port, name string) (*sqlx.DB, error) {
	auth := url.User(user)
	if pass != "" {
		auth = url.UserPassword(user, pass)
	}
	// sslmode=disable keeps local development simple; production overrides
	// via PGSSLMODE in the environment, which lib/pq honours.
	dsn := fmt.Sprintf("postgres://%s@%s:%s/%s?sslmode=disable", auth.String(), host, port, name)

	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}
