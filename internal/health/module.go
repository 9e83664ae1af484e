package health

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shandysiswandi/healthsheet/internal/health/event"
	"github.com/shandysiswandi/healthsheet/internal/health/inbound"
	"github.com/shandysiswandi/healthsheet/internal/health/sheet"
	"github.com/shandysiswandi/healthsheet/internal/health/store"
	"github.com/shandysiswandi/healthsheet/internal/health/usecase"
	"github.com/shandysiswandi/healthsheet/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/healthsheet/internal/pkg/pkghash"
	"github.com/shandysiswandi/healthsheet/internal/pkg/pkgjwt"
	"github.com/shandysiswandi/healthsheet/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/healthsheet/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/healthsheet/internal/pkg/pkguid"
)

type Dependency struct {
	Config    pkgconfig.Config
	Goroutine *pkgroutine.Manager
	Router    *pkgrouter.Router
	Context   context.Context
	ID        pkguid.StringID
	UserID    pkguid.NumberID
}

func New(dep Dependency) (func(context.Context) error, error) {
	if dep.Config == nil || dep.Router == nil || dep.Goroutine == nil {
		return nil, errors.New("health: config, router and goroutine manager are required")
	}

	if dep.Context == nil {
		dep.Context = context.Background()
	}
	if dep.ID == nil {
		dep.ID = pkguid.NewUUID()
	}
	if dep.UserID == nil {
		sf, err := pkguid.NewSnowflake(-1)
		if err != nil {
			return nil, err
		}
		dep.UserID = sf
	}

	tokens, err := pkgjwt.NewHS256(pkgjwt.Config{
		Secret: dep.Config.GetBinary("auth.secret"),
		Issuer: dep.Config.GetString("auth.issuer"),
		TTL:    time.Duration(dep.Config.GetInt("auth.token_ttl_minutes")) * time.Minute,
		ID:     dep.ID,
	})
	if err != nil {
		return nil, err
	}

	bus := event.NewBus(int(dep.Config.GetInt("events.buffer")))
	consumer := event.NewConsumer(bus, event.AuditLogger{Logger: slog.Default()}, event.ConsumerConfig{
		Workers:     int(dep.Config.GetInt("events.workers")),
		MaxRetries:  int(dep.Config.GetInt("events.max_retries")),
		BaseBackoff: 200 * time.Millisecond,
	})

	uc := usecase.New(usecase.Dependency{
		Records:  store.NewInMemoryRecordStore(),
		Users:    store.NewInMemoryUserStore(),
		Tokens:   tokens,
		Hasher:   pkghash.NewBcrypt(int(dep.Config.GetInt("auth.bcrypt_cost"))),
		Pipeline: sheet.NewPipeline(sheet.HealthSchema(), sheet.WithUnzipSizeLimit(dep.Config.GetInt("upload.unzip_limit_bytes"))),
		Events:   bus,
		Runner:   dep.Goroutine,
		Clock:    nil,
		ID:       dep.ID,
		UserID:   dep.UserID,
		RootCtx:  dep.Context,
	})

	seed := dep.Config.GetMap("auth.users")
	if err := uc.SeedUsers(dep.Context, seed); err != nil {
		return nil, err
	}
	slog.Info("seeded users", "count", len(seed))

	inbound.RegisterHTTPEndpoint(dep.Router, uc, dep.Config.GetInt("upload.max_bytes"))

	consumer.Start()

	return consumer.Stop, nil
}
