package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/shandysiswandi/healthsheet/internal/health/entity"
	"github.com/shandysiswandi/healthsheet/internal/health/sheet"
	"github.com/shandysiswandi/healthsheet/internal/pkg/pkgerror"
	"github.com/shandysiswandi/healthsheet/internal/pkg/pkgjwt"
	"github.com/shandysiswandi/healthsheet/internal/pkg/pkguid"
)

type RecordStore interface {
	Replace(ctx context.Context, username string, dataset entity.Dataset) (entity.Dataset, error)
	Fetch(ctx context.Context, username string) (entity.Dataset, error)
}

type UserStore interface {
	Create(ctx context.Context, user entity.User) error
	Get(ctx context.Context, username string) (entity.User, error)
}

type TokenManager interface {
	Issue(subject string) (pkgjwt.Token, error)
	Verify(token string) (string, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

type Pipeline interface {
	Run(data []byte) ([]entity.Record, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entity.DatasetReplacedEvent) error
}

type Runner interface {
	Go(ctx context.Context, f func(ctx context.Context) error) bool
}

type Clock interface {
	Now() time.Time
}

type Dependency struct {
	Records  RecordStore
	Users    UserStore
	Tokens   TokenManager
	Hasher   PasswordHasher
	Pipeline Pipeline
	Events   EventPublisher
	Runner   Runner
	Clock    Clock
	ID       pkguid.StringID
	UserID   pkguid.NumberID
	RootCtx  context.Context
}

type Usecase struct {
	records  RecordStore
	users    UserStore
	tokens   TokenManager
	hasher   PasswordHasher
	pipeline Pipeline
	events   EventPublisher
	runner   Runner
	clock    Clock
	id       pkguid.StringID
	userID   pkguid.NumberID
	rootCtx  context.Context
}

func New(dep Dependency) *Usecase {
	root := dep.RootCtx
	if root == nil {
		root = context.Background()
	}

	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	pipeline := dep.Pipeline
	if pipeline == nil {
		pipeline = sheet.NewPipeline(sheet.HealthSchema())
	}

	return &Usecase{
		records:  dep.Records,
		users:    dep.Users,
		tokens:   dep.Tokens,
		hasher:   dep.Hasher,
		pipeline: pipeline,
		events:   dep.Events,
		runner:   dep.Runner,
		clock:    clock,
		id:       dep.ID,
		userID:   dep.UserID,
		rootCtx:  root,
	}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// mapSheetErr turns a pipeline failure into a client-facing error carrying the
// failure kind and, when known, the offending column and row.
func mapSheetErr(err error) error {
	var serr *sheet.Error
	if !errors.As(err, &serr) {
		return normalizeErr(err)
	}

	fields := map[string]string{"kind": serr.KindName()}
	if serr.Column != "" {
		fields["column"] = serr.Column
	}
	if serr.Row > 0 {
		fields["row"] = strconv.Itoa(serr.Row)
	}
	if len(serr.Missing) > 0 {
		fields["missing"] = strings.Join(serr.Missing, ", ")
	}

	switch {
	case errors.Is(serr, sheet.ErrFilename), errors.Is(serr, sheet.ErrDecode):
		return pkgerror.NewValidation(serr.Error(), pkgerror.CodeInvalidFormat, serr, fields)
	case errors.Is(serr, sheet.ErrSchema), errors.Is(serr, sheet.ErrEmptyData), errors.Is(serr, sheet.ErrDateFormat):
		return pkgerror.NewValidation(serr.Error(), pkgerror.CodeInvalidInput, serr, fields)
	default:
		return pkgerror.NewServer(serr)
	}
}

func mapStoreErr(err error, what string) error {
	if errors.Is(err, pkgerror.ErrNotFound) {
		return pkgerror.NewBusiness(what+" not found", pkgerror.CodeNotFound)
	}
	return normalizeErr(err)
}

func normalizeErr(err error) error {
	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		return perr
	}
	return pkgerror.NewServer(err)
}
