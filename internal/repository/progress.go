package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/druvus/vocabulator/internal/models"
)

type ProgressR struct {
	db QueryI
}

func NewProgressRepository(db QueryI) *ProgressR {
	return &ProgressR{db: db}
}

// Progress returns the record for (user, group), or ErrNotFound when
// the pair has never been answered.
func (p *ProgressR) Progress(ctx context.Context, userID, groupID int64) (models.ProgressRecord, error) {
	var rec models.ProgressRecord
	err := p.db.GetContext(ctx, &rec, `
		SELECT user_id, group_id, box, due_at
		FROM user_progress
		WHERE user_id = $1 AND group_id = $2`,
		userID, groupID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ProgressRecord{}, ErrNotFound
	}
	if err != nil {
		return models.ProgressRecord{}, fmt.Errorf("failed to get progress for user %d group %d: %w", userID, groupID, err)
	}
	return rec, nil
}

func (p *ProgressR) UpsertProgress(ctx context.Context, rec models.ProgressRecord) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO user_progress (user_id, group_id, box, due_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, group_id) DO UPDATE SET
			box = EXCLUDED.box,
			due_at = EXCLUDED.due_at`,
		rec.UserID, rec.GroupID, rec.Box, rec.DueAt)
	if err != nil {
		return fmt.Errorf("failed to upsert progress for user %d group %d: %w", rec.UserID, rec.GroupID, err)
	}
	return nil
}

// DueGroupIDs returns every group in the set that has either no
// progress record for the user or a due timestamp at or before now.
func (p *ProgressR) DueGroupIDs(ctx context.Context, setID, userID int64, now time.Time) ([]int64, error) {
	ids := make([]int64, 0)
	err := p.db.SelectContext(ctx, &ids, `
		SELECT sg.group_id
		FROM set_groups sg
		LEFT JOIN user_progress up
			ON sg.group_id = up.group_id AND up.user_id = $1
		WHERE sg.set_id = $2
			AND (up.due_at IS NULL OR up.due_at <= $3)`,
		userID, setID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch due groups for set %d: %w", setID, err)
	}
	return ids, nil
}
