package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/matchbook/internal/domain/match"
	"github.com/riskibarqy/matchbook/internal/domain/validation"
)

type MatchService struct {
	matchRepo match.Repository
}

func NewMatchService(matchRepo match.Repository) *MatchService {
	return &MatchService{matchRepo: matchRepo}
}

// List returns every match, newest date first.
func (s *MatchService) List(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

func (s *MatchService) Create(ctx context.Context, fields validation.Fields) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	draft, err := validation.ValidateMatch(fields)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	id, err := s.matchRepo.Create(ctx, draft)
	if err != nil {
		return 0, fmt.Errorf("create match: %w", err)
	}
	return id, nil
}

// Update validates the body before the id so a bad body wins over a bad id.
func (s *MatchService) Update(ctx context.Context, rawID string, fields validation.Fields) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Update")
	defer span.End()

	draft, err := validation.ValidateMatch(fields)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	id, err := validation.ParseMatchID(rawID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	found, err := s.matchRepo.Update(ctx, id, draft)
	if err != nil {
		return fmt.Errorf("update match id=%d: %w", id, err)
	}
	if !found {
		return fmt.Errorf("%w: match=%d", ErrNotFound, id)
	}
	return nil
}

func (s *MatchService) Delete(ctx context.Context, rawID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Delete")
	defer span.End()

	id, err := validation.ParseMatchID(rawID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	found, err := s.matchRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete match id=%d: %w", id, err)
	}
	if !found {
		return fmt.Errorf("%w: match=%d", ErrNotFound, id)
	}
	return nil
}
