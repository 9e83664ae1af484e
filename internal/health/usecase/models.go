package usecase

import (
	"time"

	"github.com/shandysiswandi/healthsheet/internal/health/entity"
)

type LoginInput struct {
	Username string
	Password string
}

type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

type RegisterInput struct {
	Username string
	Password string
	FullName string
	Email    string
}

// Profile is the public view of a user.
type Profile struct {
	ID        int64
	Username  string
	FullName  string
	Email     string
	Disabled  bool
	CreatedAt time.Time
}

type UploadInput struct {
	Username string
	Filename string
	Data     []byte
}

type UploadResult struct {
	Meta    entity.UploadMeta
	Records []entity.Record
}

type DataResult struct {
	Meta    entity.UploadMeta
	Records []entity.Record
}

type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

func toProfile(u entity.User) Profile {
	return Profile{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Email:     u.Email,
		Disabled:  u.Disabled,
		CreatedAt: u.CreatedAt,
	}
}
