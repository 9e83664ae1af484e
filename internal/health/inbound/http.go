package inbound

import (
	"context"

	"github.com/shandysiswandi/healthsheet/internal/health/usecase"
	"github.com/shandysiswandi/healthsheet/internal/pkg/pkgrouter"
)

type uc interface {
	Authenticate(ctx context.Context, token string) (string, error)
	Login(ctx context.Context, in usecase.LoginInput) (usecase.LoginResult, error)
	Register(ctx context.Context, in usecase.RegisterInput) (usecase.Profile, error)
	Me(ctx context.Context, username string) (usecase.Profile, error)
	Upload(ctx context.Context, in usecase.UploadInput) (usecase.UploadResult, error)
	Data(ctx context.Context, username string) (usecase.DataResult, error)
	Export(ctx context.Context, username string) (usecase.ExportResult, error)
}

// DefaultMaxUploadBytes caps upload bodies when no limit is configured.
const DefaultMaxUploadBytes int64 = 10 << 20

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc, maxUploadBytes int64) {
	if maxUploadBytes < 1 {
		maxUploadBytes = DefaultMaxUploadBytes
	}

	end := &HTTPEndpoint{uc: uc, maxUploadBytes: maxUploadBytes}
	auth := pkgrouter.MiddlewareBearerAuth(uc)

	r.POST("/token", end.Token)
	r.POST("/users", end.Register)
	r.GET("/users/me", end.Me, auth)

	r.POST("/upload-data", end.UploadData, auth) // multipart, part "file"
	r.GET("/data", end.Data, auth)
	r.GET("/data/export", end.Export, auth)
}
