package pkgjwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLen is the shortest HMAC secret accepted by NewHS256.
const MinSecretLen = 32

var (
	// ErrTokenExpired is returned when the token is past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers bad signatures, wrong issuer and malformed tokens.
	ErrTokenInvalid = errors.New("token invalid")
)

// Generator generates unique token IDs.
type Generator interface {
	Generate() string
}

// Config holds the settings for an HS256 token manager.
type Config struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
	ID     Generator
	Now    func() time.Time
}

// Token is a signed access token and the time it stops being valid.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// HS256 issues and verifies HMAC-SHA256 signed JWTs.
type HS256 struct {
	secret []byte
	issuer string
	ttl    time.Duration
	id     Generator
	now    func() time.Time
}

// NewHS256 validates cfg and builds a token manager.
func NewHS256(cfg Config) (*HS256, error) {
	if len(cfg.Secret) < MinSecretLen {
		return nil, fmt.Errorf("jwt secret must be at least %d bytes, got %d", MinSecretLen, len(cfg.Secret))
	}
	if cfg.TTL <= 0 {
		return nil, errors.New("jwt ttl must be positive")
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &HS256{
		secret: cfg.Secret,
		issuer: cfg.Issuer,
		ttl:    cfg.TTL,
		id:     cfg.ID,
		now:    now,
	}, nil
}

// Issue signs a token for subject.
func (h *HS256) Issue(subject string) (Token, error) {
	if subject == "" {
		return Token{}, errors.New("jwt subject is required")
	}

	now := h.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    h.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(h.ttl)),
	}
	if h.id != nil {
		claims.ID = h.id.Generate()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
	if err != nil {
		return Token{}, fmt.Errorf("sign jwt: %w", err)
	}

	return Token{Value: signed, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// Verify checks the signature, issuer and expiry of token and returns its subject.
func (h *HS256) Verify(token string) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(h.now),
	}
	if h.issuer != "" {
		opts = append(opts, jwt.WithIssuer(h.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return h.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return "", fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrTokenInvalid)
	}

	return claims.Subject, nil
}
