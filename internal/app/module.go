package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/healthsheet/internal/health"
)

func (a *App) initModules() {
	if !a.config.GetBool("modules.health.enabled") {
		slog.Warn("module health is disabled")
		return
	}

	closer, err := health.New(health.Dependency{
		Config:    a.config,
		Router:    a.router,
		Goroutine: a.goroutine,
		Context:   a.ctx,
		ID:        a.uuid,
		UserID:    a.snowflake,
	})
	if err != nil {
		slog.Error("failed to init module health", "error", err)
		os.Exit(1)
	}
	if closer != nil {
		a.addCloser("Health", closer)
	}
}
