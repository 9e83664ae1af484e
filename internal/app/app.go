package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/healthsheet/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/healthsheet/internal/pkg/pkglog"
	"github.com/shandysiswandi/healthsheet/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/healthsheet/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/healthsheet/internal/pkg/pkguid"
)

type closer struct {
	name string
	fn   func(context.Context) error
}

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config pkgconfig.Config

	// libraries
	uuid      pkguid.StringID
	snowflake pkguid.NumberID
	goroutine *pkgroutine.Manager

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	// closed in order by Stop, after the http server and background goroutines
	closers []closer
}

func New() *App {
	pkglog.InitLogging()

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initLibraries()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}

func (a *App) addCloser(name string, fn func(context.Context) error) {
	a.closers = append(a.closers, closer{name: name, fn: fn})
}
