package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/druvus/vocabulator/internal/models"
	"github.com/druvus/vocabulator/internal/repository"
	"go.uber.org/zap"
)

// maxBox caps the Leitner box; box 5 puts a card 32 days out.
const maxBox = 5

type ProgressRI interface {
	Progress(ctx context.Context, userID, groupID int64) (models.ProgressRecord, error)
	UpsertProgress(ctx context.Context, rec models.ProgressRecord) error
	DueGroupIDs(ctx context.Context, setID, userID int64, now time.Time) ([]int64, error)
}

type ProgressS struct {
	repo ProgressRI
	log  *zap.Logger
}

func NewProgressService(repo ProgressRI, log *zap.Logger) *ProgressS {
	return &ProgressS{repo: repo, log: log}
}

// RecordAnswer advances the Leitner state for (user, group). A correct
// answer moves the card up one box (capped at maxBox), a miss drops it
// back to box 0 regardless of streak. The next review is scheduled
// 2^box days out, so box 0 means tomorrow and box 5 means 32 days.
func (p *ProgressS) RecordAnswer(ctx context.Context, userID, groupID int64, correct bool) (models.ProgressRecord, error) {
	rec, err := p.repo.Progress(ctx, userID, groupID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		rec = models.ProgressRecord{UserID: userID, GroupID: groupID}
		if correct {
			rec.Box = 1
		}
	case err != nil:
		return models.ProgressRecord{}, err
	case correct:
		if rec.Box < maxBox {
			rec.Box++
		}
	default:
		rec.Box = 0
	}

	rec.DueAt = time.Now().AddDate(0, 0, 1<<rec.Box)

	if err := p.repo.UpsertProgress(ctx, rec); err != nil {
		return models.ProgressRecord{}, fmt.Errorf("failed to save progress: %w", err)
	}

	p.log.Debug("recorded answer",
		zap.Int64("user_id", userID),
		zap.Int64("group_id", groupID),
		zap.Bool("correct", correct),
		zap.Int("box", rec.Box),
	)

	return rec, nil
}

// DueGroups returns every group of the set the user should review now.
// Groups without any progress record are always included.
func (p *ProgressS) DueGroups(ctx context.Context, setID, userID int64) ([]int64, error) {
	ids, err := p.repo.DueGroupIDs(ctx, setID, userID, time.Now())
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}
