package database

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/campuskit/enrollment-api/pkg/config"
)

// NewPostgres returns a configured PostgreSQL client. Row-lock waits are
// bounded by cfg.LockTimeout so a blocked operation fails as a transient
// store error instead of hanging.
func NewPostgres(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	dsn := cfg.URL
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host,
			cfg.Port,
			cfg.User,
			cfg.Password,
			cfg.Name,
			cfg.SSLMode,
		)
	}
	dsn = withLockTimeout(dsn, cfg.LockTimeout)

	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	db.SetConnMaxLifetime(1 * time.Hour)
	db.SetConnMaxIdleTime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func withLockTimeout(dsn string, timeout time.Duration) string {
	if timeout <= 0 || strings.Contains(dsn, "lock_timeout") {
		return dsn
	}

	option := fmt.Sprintf("-c lock_timeout=%dms", timeout.Milliseconds())
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		return dsn + sep + "options=" + url.QueryEscape(option)
	}
	return dsn + fmt.Sprintf(" options='%s'", option)
}
