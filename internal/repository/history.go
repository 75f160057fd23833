package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/druvus/vocabulator/internal/models"
)

type HistoryR struct {
	db QueryI
}

func NewHistoryRepository(db QueryI) *HistoryR {
	return &HistoryR{db: db}
}

// AddSession persists a finished session summary and returns its id.
// A zero user id is stored as NULL (anonymous session).
func (h *HistoryR) AddSession(ctx context.Context, rec models.SessionRecord) (int64, error) {
	user := sql.NullInt64{Int64: rec.UserID, Valid: rec.UserID != 0}

	var id int64
	err := h.db.GetContext(ctx, &id, `
		INSERT INTO quiz_sessions (set_id, user_id, total_questions, correct_answers)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		rec.SetID, user, rec.Total, rec.Correct)
	if err != nil {
		return 0, fmt.Errorf("failed to record session for set %d: %w", rec.SetID, err)
	}
	return id, nil
}

func (h *HistoryR) AddAnswer(ctx context.Context, sessionID int64, a models.Answer) error {
	_, err := h.db.ExecContext(ctx, `
		INSERT INTO quiz_answers (session_id, group_id, from_lang, to_lang, correct)
		VALUES ($1, $2, $3, $4, $5)`,
		sessionID, a.GroupID, a.FromLanguage, a.ToLanguage, a.Correct)
	if err != nil {
		return fmt.Errorf("failed to record answer for session %d: %w", sessionID, err)
	}
	return nil
}

// ProblematicGroupIDs returns groups whose historical correctness ratio
// is strictly below the filter threshold. Groups without any recorded
// answer are not returned.
func (h *HistoryR) ProblematicGroupIDs(ctx context.Context, f models.StatsFilter) ([]int64, error) {
	query := `
		SELECT a.group_id
		FROM quiz_answers a
		JOIN quiz_sessions s ON a.session_id = s.id
		WHERE s.set_id = $1`
	args := []interface{}{f.SetID}

	if f.SinceDays > 0 {
		args = append(args, time.Now().AddDate(0, 0, -f.SinceDays))
		query += fmt.Sprintf(" AND s.taken_at >= $%d", len(args))
	}
	if f.UserID != 0 {
		args = append(args, f.UserID)
		query += fmt.Sprintf(" AND s.user_id = $%d", len(args))
	}

	args = append(args, f.Threshold)
	query += fmt.Sprintf(`
		GROUP BY a.group_id
		HAVING CAST(SUM(CASE WHEN a.correct THEN 1 ELSE 0 END) AS FLOAT) / COUNT(*) < $%d`, len(args))

	ids := make([]int64, 0)
	if err := h.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch problematic groups for set %d: %w", f.SetID, err)
	}
	return ids, nil
}

// SetStats aggregates session history for a set. All values are zero
// when no session matches the filter.
func (h *HistoryR) SetStats(ctx context.Context, f models.StatsFilter) (models.SetStats, error) {
	query := `
		SELECT COUNT(*) AS session_count,
			COALESCE(AVG(correct_answers), 0) AS avg_correct,
			COALESCE(AVG(CAST(correct_answers AS FLOAT) / NULLIF(total_questions, 0)), 0) AS avg_ratio
		FROM quiz_sessions
		WHERE set_id = $1`
	args := []interface{}{f.SetID}

	if f.SinceDays > 0 {
		args = append(args, time.Now().AddDate(0, 0, -f.SinceDays))
		query += fmt.Sprintf(" AND taken_at >= $%d", len(args))
	}
	if f.UserID != 0 {
		args = append(args, f.UserID)
		query += fmt.Sprintf(" AND user_id = $%d", len(args))
	}

	var stats models.SetStats
	if err := h.db.GetContext(ctx, &stats, query, args...); err != nil {
		return models.SetStats{}, fmt.Errorf("failed to fetch stats for set %d: %w", f.SetID, err)
	}
	return stats, nil
}
