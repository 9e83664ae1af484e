package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"
	"github.com/shandysiswandi/healthsheet/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/healthsheet/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/healthsheet/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/healthsheet/internal/pkg/pkguid"
)

func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	if os.Getenv("LOCAL") == "true" {
		return "./config/config.yaml"
	}
	return "/config/config.yaml"
}

func (a *App) initConfig() {
	cfg, err := pkgconfig.NewViper(configPath())
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	if tz := cfg.GetString("tz"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			slog.Error("failed to load timezone", "tz", tz, "error", err)
			os.Exit(1)
		}
		time.Local = loc
	}

	a.config = cfg
}

func (a *App) initLibraries() {
	a.goroutine = pkgroutine.NewManager(100)
	a.uuid = pkguid.NewUUID()

	sf, err := pkguid.NewSnowflake(a.config.GetInt("server.node_id"))
	if err != nil {
		slog.Error("failed to init snowflake", "error", err)
		os.Exit(1)
	}
	a.snowflake = sf
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(a.uuid)

	origins := a.config.GetArray("server.cors.origins")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Authorization", "Content-Type", pkgrouter.HeaderCorrelationID},
		ExposedHeaders:   []string{"Content-Disposition", pkgrouter.HeaderCorrelationID},
		AllowCredentials: true,
	})

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("server.address.http"),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       time.Minute,
		WriteTimeout:      time.Minute,
	}
}

func (a *App) initClosers() {
	a.addCloser("Config", func(context.Context) error {
		return a.config.Close()
	})
}
