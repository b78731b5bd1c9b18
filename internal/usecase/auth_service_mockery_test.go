package usecase

import (
	"context"
	"errors"
	"testing"

	usecasemock "github.com/riskibarqy/matchbook/internal/mocks/usecase"
	"github.com/stretchr/testify/mock"
)

func TestAuthService_Authenticate(t *testing.T) {
	t.Parallel()

	authorizer := usecasemock.NewAuthorizer(t)
	authorizer.On("Authorize", mock.Anything, "right").Return(true).Once()
	authorizer.On("Authorize", mock.Anything, "wrong").Return(false).Once()

	service := NewAuthService(authorizer)
	if err := service.Authenticate(context.Background(), "right"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if err := service.Authenticate(context.Background(), "wrong"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
