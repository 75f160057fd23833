package models

import "time"

// ProgressRecord tracks Leitner scheduling state for one (user, group)
// pair. A record exists only after the first answer; its absence means
// the group has never been studied and is always due.
type ProgressRecord struct {
	UserID  int64     `db:"user_id"`
	GroupID int64     `db:"group_id"`
	Box     int       `db:"box"`
	DueAt   time.Time `db:"due_at"`
}
