// Command gateway starts the REST gateway against a MySQL/MariaDB
// database: it opens the connection pool, introspects the schema, loads
// the row-level-security policy store, and serves the PostgREST-compatible
// HTTP surface.
//
// Configuration is read from the environment — parsing a richer
// databaseUrl or CLI flag set is left to the embedding deployment:
//
//	GATEWAY_DB_HOST, GATEWAY_DB_PORT, GATEWAY_DB_USER, GATEWAY_DB_PASSWORD,
//	GATEWAY_DB_NAME, GATEWAY_PORT, GATEWAY_JWT_SECRET, GATEWAY_JWT_REQUIRED
package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/GreicodexJM/MyREST/internal/catalog"
	"github.com/GreicodexJM/MyREST/internal/config"
	"github.com/GreicodexJM/MyREST/internal/dbx"
	"github.com/GreicodexJM/MyREST/internal/httpapi"
	"github.com/GreicodexJM/MyREST/internal/logger"
	"github.com/GreicodexJM/MyREST/internal/rls"
)

func main() {
	log := logger.New(nil)

	cfg := config.DefaultConfig(
		getEnv("GATEWAY_DB_HOST", "127.0.0.1"),
		getEnv("GATEWAY_DB_USER", "root"),
		getEnv("GATEWAY_DB_PASSWORD", ""),
		getEnv("GATEWAY_DB_NAME", "gateway"),
	)
	cfg.Port = getEnvInt("GATEWAY_DB_PORT", cfg.Port)
	cfg.PortNumber = getEnvInt("GATEWAY_PORT", cfg.PortNumber)
	cfg.JWTSecret = getEnv("GATEWAY_JWT_SECRET", "")
	cfg.JWTRequired = getEnvBool("GATEWAY_JWT_REQUIRED", false)

	ctx := context.Background()

	db, err := dbx.New(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Info("connected to database")

	cat, err := catalog.LoadCatalog(ctx, db.DB(), cfg.Database)
	if cat == nil {
		log.Fatalf("failed to load catalog: %v", err)
	}
	if err != nil {
		log.ErrorWith("failed to load routines, continuing with none", err, nil)
	}
	store := &catalog.Store{}
	store.Swap(cat)
	log.InfoWith("catalog loaded", map[string]interface{}{"tables": len(cat.Tables), "routines": len(cat.Routines)})

	engine, err := rls.New(ctx, db.DB())
	if err != nil {
		log.ErrorWith("failed to load policy store, continuing with no policies", err, nil)
	} else {
		log.Info("policy store loaded")
	}

	router := httpapi.NewRouter(store, db, engine, cfg, log)

	addr := ":" + strconv.Itoa(cfg.PortNumber)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	log.InfoWith("listening", map[string]interface{}{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server failed: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
