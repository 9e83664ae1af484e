package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/shandysiswandi/healthsheet/internal/health/usecase"
	"github.com/shandysiswandi/healthsheet/internal/pkg/pkgerror"
	"github.com/shandysiswandi/healthsheet/internal/pkg/pkgrouter"
)

type HTTPEndpoint struct {
	uc             uc
	maxUploadBytes int64
}

// Token exchanges credentials for a bearer token. It accepts an OAuth2 style
// form body or JSON.
func (h *HTTPEndpoint) Token(ctx context.Context, r *http.Request) (any, error) {
	var req TokenRequest

	if mediaType(r) == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, pkgerror.NewInvalidFormat()
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return nil, pkgerror.NewInvalidFormat()
		}
		req.Username = r.PostForm.Get("username")
		req.Password = r.PostForm.Get("password")
	}

	result, err := h.uc.Login(ctx, usecase.LoginInput{Username: req.Username, Password: req.Password})
	if err != nil {
		return nil, err
	}

	return TokenResponse{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
		ExpiresAt:   result.ExpiresAt,
	}, nil
}

func (h *HTTPEndpoint) Register(ctx context.Context, r *http.Request) (any, error) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, pkgerror.NewInvalidFormat()
	}

	profile, err := h.uc.Register(ctx, usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
		Email:    req.Email,
	})
	if err != nil {
		return nil, err
	}

	return RegisterResponse{UserResponse: toUserResponse(profile)}, nil
}

func (h *HTTPEndpoint) Me(ctx context.Context, r *http.Request) (any, error) {
	profile, err := h.uc.Me(ctx, pkgrouter.GetSubject(ctx))
	if err != nil {
		return nil, err
	}

	return toUserResponse(profile), nil
}

func (h *HTTPEndpoint) UploadData(ctx context.Context, r *http.Request) (any, error) {
	filename, data, err := h.readUpload(r)
	if err != nil {
		return nil, err
	}

	result, err := h.uc.Upload(ctx, usecase.UploadInput{
		Username: pkgrouter.GetSubject(ctx),
		Filename: filename,
		Data:     data,
	})
	if err != nil {
		return nil, err
	}

	return UploadResponse{
		UploadID:    result.Meta.ID,
		Filename:    result.Meta.Filename,
		RecordCount: result.Meta.RecordCount,
		UploadedAt:  result.Meta.UploadedAt,
		Records:     result.Records,
	}, nil
}

func (h *HTTPEndpoint) Data(ctx context.Context, r *http.Request) (any, error) {
	result, err := h.uc.Data(ctx, pkgrouter.GetSubject(ctx))
	if err != nil {
		return nil, err
	}

	return DataResponse{Records: result.Records, meta: result.Meta}, nil
}

func (h *HTTPEndpoint) Export(ctx context.Context, r *http.Request) (any, error) {
	result, err := h.uc.Export(ctx, pkgrouter.GetSubject(ctx))
	if err != nil {
		return nil, err
	}

	return pkgrouter.File{
		Name:        result.Filename,
		ContentType: result.ContentType,
		Data:        result.Data,
	}, nil
}

// readUpload buffers the "file" part of a multipart body, up to maxUploadBytes.
func (h *HTTPEndpoint) readUpload(r *http.Request) (string, []byte, error) {
	if mediaType(r) != "multipart/form-data" {
		return "", nil, pkgerror.NewValidation("request must be multipart/form-data with a file part",
			pkgerror.CodeInvalidFormat, nil, nil)
	}

	r.Body = http.MaxBytesReader(nil, r.Body, h.maxUploadBytes)

	reader, err := r.MultipartReader()
	if err != nil {
		return "", nil, pkgerror.NewInvalidFormat()
	}

	for {
		part, err := reader.NextPart()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", nil, pkgerror.NewValidation("file part is required", pkgerror.CodeInvalidInput, nil,
					map[string]string{"file": "is required"})
			}
			return "", nil, uploadReadErr(err)
		}

		if part.FormName() != "file" {
			_ = part.Close()
			continue
		}

		data, err := io.ReadAll(part)
		_ = part.Close()
		if err != nil {
			return "", nil, uploadReadErr(err)
		}

		return part.FileName(), data, nil
	}
}

func uploadReadErr(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return pkgerror.NewValidation("file is too large", pkgerror.CodeTooLarge, err, nil)
	}
	return pkgerror.NewInvalidFormat()
}

func mediaType(r *http.Request) string {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}
	return strings.ToLower(mt)
}
