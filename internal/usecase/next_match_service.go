package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/matchbook/internal/domain/nextmatch"
	"github.com/riskibarqy/matchbook/internal/domain/validation"
)

type NextMatchService struct {
	store nextmatch.Store
}

func NewNextMatchService(store nextmatch.Store) *NextMatchService {
	return &NextMatchService{store: store}
}

// Get reports false when no next match has ever been set.
func (s *NextMatchService) Get(ctx context.Context) (nextmatch.NextMatch, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NextMatchService.Get")
	defer span.End()

	next, ok, err := s.store.Get(ctx)
	if err != nil {
		return nextmatch.NextMatch{}, false, fmt.Errorf("get next match: %w", err)
	}
	return next, ok, nil
}

func (s *NextMatchService) Set(ctx context.Context, fields validation.Fields) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.NextMatchService.Set")
	defer span.End()

	next, err := validation.ValidateNextMatch(fields)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := s.store.Set(ctx, next); err != nil {
		return fmt.Errorf("set next match: %w", err)
	}
	return nil
}
