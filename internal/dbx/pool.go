package dbx

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql" // registers the "mysql" driver

	"github.com/GreicodexJM/MyREST/internal/config"
)

const defaultPort = 3306

// buildPool opens a *sql.DB against the MySQL/MariaDB dialect and applies
// cfg's pool tuning, falling back to the teacher's defaults when unset.
func buildPool(cfg *config.Config) (*sql.DB, error) {
	dsn := buildDSN(cfg)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql pool: %w", err)
	}

	maxOpen := cfg.ConnectionLimit
	if maxOpen == 0 {
		maxOpen = 10
	}
	maxIdle := cfg.MaxIdleConns
	if maxIdle == 0 {
		maxIdle = 5
	}

	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

// buildDSN constructs the go-sql-driver/mysql DSN for cfg. parseTime keeps
// DATE/DATETIME columns scanning into time.Time; multiStatements is off —
// the executor never sends more than one statement per round trip except
// through the explicit SET-then-execute claim protocol, which uses two
// separate round trips on the same borrowed connection, not multiStatements.
func buildDSN(cfg *config.Config) string {
	port := cfg.Port
	if port == 0 {
		port = defaultPort
	}
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/%s?parseTime=true",
		cfg.User, cfg.Password, cfg.Host, port, cfg.Database,
	)
}
