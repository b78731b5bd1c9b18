package usecase

import (
	"context"
	"fmt"
)

// Authorizer decides whether a credential may perform admin operations.
type Authorizer interface {
	Authorize(ctx context.Context, credential string) bool
}

// AuthService answers the login probe without touching any store.
type AuthService struct {
	authorizer Authorizer
}

func NewAuthService(authorizer Authorizer) *AuthService {
	return &AuthService{authorizer: authorizer}
}

func (s *AuthService) Authenticate(ctx context.Context, password string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Authenticate")
	defer span.End()

	if !s.authorizer.Authorize(ctx, password) {
		return fmt.Errorf("%w: invalid password", ErrForbidden)
	}
	return nil
}
