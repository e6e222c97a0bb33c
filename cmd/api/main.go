package main

import (
	"context"
	"expvar"
	"fmt"
	"os"
	"runtime"
	"time"

	"bazaar/internal/auth"
	"bazaar/internal/config"
	"bazaar/internal/db"
	"bazaar/internal/domain/storage"
	"bazaar/internal/services"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a new zap logger with color.
func NewLogger(level string) (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.Lock(zapcore.AddSync(os.Stdout)), lvl)
	return zap.New(core).Sugar(), nil
}

var version = "1.0.0"

//	@title			Ramadhan Bazaar API
//	@description	Reviews, votes and subscriptions for Ramadhan bazaars.

//	@BasePath					/api
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token returned by signup and login

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		fmt.Println("Error loading configuration:", err)
		os.Exit(1)
	}

	logger, err := NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Println("Error creating logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Database
	dialect, err := db.DialectFor(cfg.DB.Driver)
	if err != nil {
		logger.Fatal(err)
	}

	conn, err := db.New(
		cfg.DB.Driver,
		cfg.DB.Addr,
		cfg.DB.MaxOpenConns,
		cfg.DB.MaxIdleConns,
		cfg.DB.MaxIdleTime,
	)
	if err != nil {
		logger.Fatal(err)
	}
	defer conn.Close()
	logger.Infow("database connection pool established", "driver", cfg.DB.Driver)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = db.Migrate(ctx, conn, dialect)
	cancel()
	if err != nil {
		logger.Fatal(err)
	}

	store := storage.NewContainer(conn)

	jwtAuthenticator := auth.NewJWTAuthenticator(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TokenExp)

	app := &application{
		config:   cfg,
		logger:   logger,
		store:    store,
		services: services.New(store, jwtAuthenticator, logger),
	}

	// Metrics collected at /api/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("database", expvar.Func(func() any {
		return conn.Stats()
	}))
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
