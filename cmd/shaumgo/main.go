package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/IRedDragonICY/shaum/internal/api"
	"github.com/IRedDragonICY/shaum/internal/auth"
	"github.com/IRedDragonICY/shaum/internal/ephemeris"
	"github.com/IRedDragonICY/shaum/internal/geo"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, "could not load .env:", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	addr := os.Getenv("SHAUM_HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	authCfg, err := loadAuthConfig(logger)
	if err != nil {
		logger.Error("invalid auth configuration", "error", err)
		os.Exit(1)
	}

	geoCfg := loadGeoConfig(logger)

	var lookup *geo.Lookup
	var locCache *geo.Cache
	if geoCfg.EnableLookup {
		lookup = geo.NewLookup(geoCfg.LookupURL)
		locCache = geo.NewCache(geoCfg.CacheDir, geoCfg.MaxFiles)

		// Surface the cached location on startup so operators can see
		// what a cold /api/v1/location fallback would serve.
		if info, ts, err := locCache.LoadLatest(); err == nil {
			logger.Info("loaded cached location",
				"place", info.DisplayName(), "cached_at", ts.Format(time.RFC3339))
		} else {
			logger.Info("no cached location found", "error", err)
		}
	}

	srv := api.NewServer(api.Config{
		Addr:          addr,
		Logger:        logger,
		Auth:          authCfg,
		TrustProxy:    geoCfg.TrustProxy,
		Lookup:        lookup,
		LocationCache: locCache,
		ReadyCheck:    ephemerisSelfCheck,
	})

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server",
			"addr", addr,
			"auth_enabled", authCfg.Enabled,
			"geo_lookup_enabled", geoCfg.EnableLookup,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server listen error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.HTTPServer().Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// ephemerisSelfCheck verifies the computation core returns sane values.
// The Sun's distance must stay near 1 AU and the Moon's inside its
// orbital envelope; anything else means the series tables are corrupt.
func ephemerisSelfCheck() error {
	now := time.Now()
	sun := ephemeris.SunPosition(now)
	if math.Abs(sun.Distance-1.0) > 0.02 {
		return fmt.Errorf("sun distance %.4f AU out of range", sun.Distance)
	}
	moon := ephemeris.MoonPosition(now)
	if moon.Distance < 356000 || moon.Distance > 407000 {
		return fmt.Errorf("moon distance %.0f km out of range", moon.Distance)
	}
	return nil
}

func loadAuthConfig(logger *slog.Logger) (auth.Config, error) {
	cfg := auth.Config{}

	enabledStr := os.Getenv("SHAUM_AUTH_ENABLED")
	if enabledStr != "" {
		enabled, err := strconv.ParseBool(enabledStr)
		if err != nil {
			return cfg, errors.New("SHAUM_AUTH_ENABLED must be a boolean value (true/false/1/0)")
		}
		cfg.Enabled = enabled
	}

	if cfg.Enabled {
		cfg.Token = os.Getenv("SHAUM_AUTH_TOKEN")
		if cfg.Token == "" {
			return cfg, errors.New("SHAUM_AUTH_TOKEN is required when auth is enabled")
		}
		logger.Info("auth enabled")
	}

	return cfg, nil
}

type geoConfig struct {
	EnableLookup bool
	LookupURL    string
	CacheDir     string
	MaxFiles     int
	TrustProxy   bool
}

func loadGeoConfig(logger *slog.Logger) geoConfig {
	cfg := geoConfig{
		EnableLookup: true,
		CacheDir:     "/tmp/shaum/location",
		MaxFiles:     5,
	}

	if v := os.Getenv("SHAUM_ENABLE_GEO_LOOKUP"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			logger.Warn("invalid SHAUM_ENABLE_GEO_LOOKUP value, defaulting to false", "value", v)
			cfg.EnableLookup = false
		} else {
			cfg.EnableLookup = enabled
		}
	}

	if v := os.Getenv("SHAUM_GEO_LOOKUP_URL"); v != "" {
		cfg.LookupURL = v
	}

	if v := os.Getenv("SHAUM_GEO_CACHE_DIR"); v != "" {
		cfg.CacheDir = v
	}

	if v := os.Getenv("SHAUM_GEO_CACHE_MAX_FILES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			logger.Warn("invalid SHAUM_GEO_CACHE_MAX_FILES value, using default", "value", v, "default", cfg.MaxFiles)
		} else {
			cfg.MaxFiles = n
		}
	}

	if v := os.Getenv("SHAUM_TRUST_PROXY"); v != "" {
		trust, err := strconv.ParseBool(v)
		if err != nil {
			logger.Warn("invalid SHAUM_TRUST_PROXY value, defaulting to false", "value", v)
		} else {
			cfg.TrustProxy = trust
		}
	}

	logger.Info("geo config",
		"lookup_enabled", cfg.EnableLookup,
		"cache_dir", cfg.CacheDir,
		"trust_proxy", cfg.TrustProxy,
	)

	return cfg
}
