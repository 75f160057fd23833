package service

import (
	"context"

	"github.com/druvus/vocabulator/internal/models"
	"go.uber.org/zap"
)

type HistoryRI interface {
	SessionHistoryRI
	ProblematicGroupIDs(ctx context.Context, f models.StatsFilter) ([]int64, error)
	SetStats(ctx context.Context, f models.StatsFilter) (models.SetStats, error)
}

type StatsS struct {
	repo      HistoryRI
	threshold float64
	log       *zap.Logger
}

func NewStatsService(repo HistoryRI, threshold float64, log *zap.Logger) *StatsS {
	return &StatsS{repo: repo, threshold: threshold, log: log}
}

// ProblematicGroups returns the groups of a set whose correctness ratio
// over recorded answers is strictly below the threshold. The configured
// default threshold applies when the filter leaves it zero. Groups that
// were never answered have no ratio and are never reported.
func (s *StatsS) ProblematicGroups(ctx context.Context, f models.StatsFilter) ([]int64, error) {
	if f.Threshold == 0 {
		f.Threshold = s.threshold
	}
	ids, err := s.repo.ProblematicGroupIDs(ctx, f)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}

func (s *StatsS) SetStats(ctx context.Context, f models.StatsFilter) (models.SetStats, error) {
	return s.repo.SetStats(ctx, f)
}
