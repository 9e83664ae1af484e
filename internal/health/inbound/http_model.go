package inbound

import (
	"net/http"
	"time"

	"github.com/shandysiswandi/healthsheet/internal/health/entity"
	"github.com/shandysiswandi/healthsheet/internal/health/usecase"
)

type TokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type UserResponse struct {
	ID        int64     `json:"id,string"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Disabled  bool      `json:"disabled"`
	CreatedAt time.Time `json:"created_at"`
}

type RegisterResponse struct {
	UserResponse
}

func (RegisterResponse) StatusCode() int {
	return http.StatusCreated
}

func (RegisterResponse) Message() string {
	return "user registered"
}

type UploadResponse struct {
	UploadID    string          `json:"upload_id"`
	Filename    string          `json:"filename"`
	RecordCount int             `json:"record_count"`
	UploadedAt  time.Time       `json:"uploaded_at"`
	Records     []entity.Record `json:"records"`
}

func (UploadResponse) Message() string {
	return "file processed successfully"
}

type DataResponse struct {
	Records []entity.Record `json:"records"`
	meta    entity.UploadMeta
}

func (r DataResponse) Meta() map[string]any {
	if r.meta.ID == "" {
		return nil
	}

	return map[string]any{
		"upload_id":    r.meta.ID,
		"filename":     r.meta.Filename,
		"record_count": r.meta.RecordCount,
		"uploaded_at":  r.meta.UploadedAt,
	}
}

func toUserResponse(p usecase.Profile) UserResponse {
	return UserResponse{
		ID:        p.ID,
		Username:  p.Username,
		FullName:  p.FullName,
		Email:     p.Email,
		Disabled:  p.Disabled,
		CreatedAt: p.CreatedAt,
	}
}
