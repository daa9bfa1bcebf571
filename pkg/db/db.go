package db

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the postgres connection named by DATABASE_URL. An unset
// DATABASE_URL is a startup error, never a silent default.
func Connect() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	return gdb, nil
}

// ConnectRedis dials the redis instance used for session revocation.
func ConnectRedis(ctx context.Context) (*redis.Client, error) {
	useTLS := os.Getenv("REDIS_TLS") == "true"

	var tlsConfig *tls.Config
	if useTLS {
		tlsConfig = &tls.Config{}
	}

	dbNum := 0
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("error converting REDIS_DB to int: %w", err)
		}
		dbNum = n
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:      os.Getenv("REDIS_ADDR"),
		Username:  os.Getenv("REDIS_USERNAME"),
		Password:  os.Getenv("REDIS_PASSWORD"),
		DB:        dbNum,
		TLSConfig: tlsConfig,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return rdb, nil
}
