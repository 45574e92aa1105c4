package usecase

import (
	"context"

	"boxrent/internal/domain/user"
	"boxrent/internal/infra"
	"boxrent/internal/pkg/errs"
	"boxrent/internal/pkg/jwt"
	"boxrent/internal/pkg/password"
	"boxrent/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrUserInactive       = errs.New("user is inactive")
)

type UserViewRepo interface {
	FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error)
}

type AuthUseCase interface {
	Login(ctx context.Context, email, plainPassword string) (string, *queries.AuthorizedUserView, error)
	Me(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error)
}

// TokenValidator is what the auth middleware needs; kept narrow so the
// handler layer doesn't depend on the full usecase.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, user.Role, error)
}

type authUseCaseImpl struct {
	users UserViewRepo
	jwt   *jwt.Service
}

func NewAuthUseCase(users UserViewRepo, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{users: users, jwt: jwtService}
}

func (a *authUseCaseImpl) Login(ctx context.Context, email, plainPassword string) (string, *queries.AuthorizedUserView, error) {
	view, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !view.IsActive {
		return "", nil, ErrUserInactive
	}

	if err := password.Compare(view.PasswordHash, plainPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwt.GenerateToken(view.ID, user.Role(view.Role))
	if err != nil {
		return "", nil, errs.Wrap(err, "failed to sign token")
	}
	return token, view, nil
}

func (a *authUseCaseImpl) Me(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	return a.users.FindByID(ctx, id)
}

type jwtTokenValidator struct {
	jwt *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwt: jwtService}
}

func (v *jwtTokenValidator) ValidateToken(token string) (uuid.UUID, user.Role, error) {
	claims, err := v.jwt.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", err
	}
	return claims.UserID, user.Role(claims.Role), nil
}
