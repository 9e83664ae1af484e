package usecase

import (
	"context"
	"errors"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/shandysiswandi/healthsheet/internal/health/entity"
	"github.com/shandysiswandi/healthsheet/internal/pkg/pkgerror"
)

const (
	// MinPasswordLen is the shortest password Register accepts, in characters.
	MinPasswordLen = 8
	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72
)

const tokenType = "bearer"

// Authenticate resolves a bearer token to the username of an enabled user.
func (u *Usecase) Authenticate(ctx context.Context, token string) (string, error) {
	sub, err := u.tokens.Verify(token)
	if err != nil {
		return "", pkgerror.NewUnauthorized("could not validate credentials", err)
	}

	user, err := u.users.Get(ctx, sub)
	if err != nil {
		if errors.Is(err, pkgerror.ErrNotFound) {
			return "", pkgerror.NewUnauthorized("could not validate credentials", err)
		}
		return "", normalizeErr(err)
	}

	if user.Disabled {
		return "", pkgerror.NewBusiness("inactive user", pkgerror.CodeForbidden)
	}

	return user.Username, nil
}

func (u *Usecase) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	if strings.TrimSpace(in.Username) == "" || in.Password == "" {
		return LoginResult{}, pkgerror.NewValidation("username and password are required", pkgerror.CodeInvalidInput, nil, nil)
	}

	user, err := u.users.Get(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		if errors.Is(err, pkgerror.ErrNotFound) {
			return LoginResult{}, pkgerror.NewUnauthorized("incorrect username or password", nil)
		}
		return LoginResult{}, normalizeErr(err)
	}

	if !u.hasher.Verify(user.PasswordHash, in.Password) {
		return LoginResult{}, pkgerror.NewUnauthorized("incorrect username or password", nil)
	}

	if user.Disabled {
		return LoginResult{}, pkgerror.NewBusiness("inactive user", pkgerror.CodeForbidden)
	}

	token, err := u.tokens.Issue(user.Username)
	if err != nil {
		return LoginResult{}, pkgerror.NewServer(err)
	}

	return LoginResult{
		AccessToken: token.Value,
		TokenType:   tokenType,
		ExpiresAt:   token.ExpiresAt,
	}, nil
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (Profile, error) {
	in.Username = strings.TrimSpace(in.Username)

	fields := map[string]string{}
	if in.Username == "" {
		fields["username"] = "is required"
	}
	if utf8.RuneCountInString(in.Password) < MinPasswordLen {
		fields["password"] = "must be at least 8 characters"
	}
	if len(in.Password) > MaxPasswordBytes {
		fields["password"] = "must be at most 72 bytes"
	}
	if len(fields) > 0 {
		return Profile{}, pkgerror.NewValidation("validation error", pkgerror.CodeInvalidInput, nil, fields)
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return Profile{}, pkgerror.NewServer(err)
	}

	user := entity.User{
		ID:           u.userID.Generate(),
		Username:     in.Username,
		FullName:     strings.TrimSpace(in.FullName),
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: hash,
		CreatedAt:    u.clock.Now(),
	}

	if err := u.users.Create(ctx, user); err != nil {
		return Profile{}, normalizeErr(err)
	}

	return toProfile(user), nil
}

func (u *Usecase) Me(ctx context.Context, username string) (Profile, error) {
	user, err := u.users.Get(ctx, username)
	if err != nil {
		return Profile{}, mapStoreErr(err, "user")
	}

	return toProfile(user), nil
}

// SeedUsers creates accounts from username to bcrypt hash pairs, in username order.
func (u *Usecase) SeedUsers(ctx context.Context, hashes map[string]string) error {
	for _, username := range slices.Sorted(maps.Keys(hashes)) {
		err := u.users.Create(ctx, entity.User{
			ID:           u.userID.Generate(),
			Username:     username,
			FullName:     username,
			PasswordHash: hashes[username],
			CreatedAt:    u.clock.Now(),
		})
		if err != nil {
			return err
		}
	}

	return nil
}
