package pkgrouter

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/shandysiswandi/healthsheet/internal/pkg/pkgerror"
	"github.com/shandysiswandi/healthsheet/internal/pkg/pkglog"
)

// Authenticator resolves a bearer token to the subject it was issued for.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// GetSubject returns the authenticated subject stored by MiddlewareBearerAuth.
func GetSubject(ctx context.Context) string {
	return pkglog.GetSubject(ctx)
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

// MiddlewareBearerAuth rejects requests without a valid "Authorization: Bearer" token.
//
// Authenticator errors that are not *pkgerror.Error are reported as 401.
func MiddlewareBearerAuth(auth Authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				writeError(r.Context(), w, pkgerror.NewUnauthorized("not authenticated", nil))
				return
			}

			sub, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				var gerr *pkgerror.Error
				if !errors.As(err, &gerr) {
					err = pkgerror.NewUnauthorized("could not validate credentials", err)
				}
				writeError(r.Context(), w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(pkglog.SetSubject(r.Context(), sub)))
		})
	}
}
