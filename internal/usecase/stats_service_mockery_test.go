package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/riskibarqy/matchbook/internal/domain/teamstats"
	"github.com/riskibarqy/matchbook/internal/domain/validation"
	teamstatsmock "github.com/riskibarqy/matchbook/internal/mocks/domain/teamstats"
	"github.com/stretchr/testify/mock"
)

func TestStatsService_Latest_SynthesizesZeroWithoutWriting(t *testing.T) {
	t.Parallel()

	log := teamstatsmock.NewLog(t)
	log.On("Latest", mock.Anything).Return(teamstats.Snapshot{}, false, nil).Once()

	got, err := NewStatsService(log).Latest(context.Background())
	if err != nil {
		t.Fatalf("latest stats: %v", err)
	}
	if got != (teamstats.Snapshot{}) {
		t.Fatalf("expected zero snapshot, got %+v", got)
	}
	log.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestStatsService_Latest_ReturnsStoredSnapshot(t *testing.T) {
	t.Parallel()

	log := teamstatsmock.NewLog(t)
	stored := teamstats.Snapshot{ID: 4, Wins: 3, Draws: 1, Goals: 9, GoalsAgainst: 2}
	log.On("Latest", mock.Anything).Return(stored, true, nil).Once()

	got, err := NewStatsService(log).Latest(context.Background())
	if err != nil {
		t.Fatalf("latest stats: %v", err)
	}
	if got != stored {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
}

func TestStatsService_Append(t *testing.T) {
	t.Parallel()

	log := teamstatsmock.NewLog(t)
	service := NewStatsService(log)

	log.
		On("Append", mock.Anything, teamstats.Snapshot{Wins: 1, Goals: 3, GoalsAgainst: 1}).
		Return(int64(8), nil).
		Once()

	id, err := service.Append(context.Background(), validation.Fields{
		"wins":         json.Number("1"),
		"draws":        json.Number("0"),
		"losses":       json.Number("0"),
		"goals":        json.Number("3"),
		"goalsAgainst": json.Number("1"),
	})
	if err != nil {
		t.Fatalf("append stats: %v", err)
	}
	if id != 8 {
		t.Fatalf("unexpected id: %d", id)
	}

	_, err = service.Append(context.Background(), validation.Fields{
		"wins": json.Number("-1"), "draws": json.Number("0"), "losses": json.Number("0"),
		"goals": json.Number("0"), "goalsAgainst": json.Number("0"),
	})
	if v, ok := validation.AsViolation(err); !errors.Is(err, ErrInvalidInput) || !ok || v.Reason != validation.NegativeStat {
		t.Fatalf("expected NegativeStat, got %v", err)
	}
}
