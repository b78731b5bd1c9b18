package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/matchbook/internal/domain/teamstats"
	"github.com/riskibarqy/matchbook/internal/domain/validation"
)

type StatsService struct {
	log teamstats.Log
}

func NewStatsService(log teamstats.Log) *StatsService {
	return &StatsService{log: log}
}

// Latest returns the newest snapshot, or an all-zero snapshot with ID 0 when
// the log is empty. The zero snapshot is never written back.
func (s *StatsService) Latest(ctx context.Context) (teamstats.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Latest")
	defer span.End()

	snapshot, ok, err := s.log.Latest(ctx)
	if err != nil {
		return teamstats.Snapshot{}, fmt.Errorf("latest stats: %w", err)
	}
	if !ok {
		return teamstats.Snapshot{}, nil
	}
	return snapshot, nil
}

func (s *StatsService) Append(ctx context.Context, fields validation.Fields) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Append")
	defer span.End()

	snapshot, err := validation.ValidateStats(fields)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	id, err := s.log.Append(ctx, snapshot)
	if err != nil {
		return 0, fmt.Errorf("append stats: %w", err)
	}
	return id, nil
}
