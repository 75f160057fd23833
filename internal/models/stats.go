package models

// StatsFilter scopes historical answer queries. SinceDays limits to
// sessions taken within the last N days (0 means no limit), UserID
// limits to one user (0 means all users).
type StatsFilter struct {
	SetID     int64
	Threshold float64
	SinceDays int
	UserID    int64
}

type SetStats struct {
	TotalSessions int     `db:"session_count"`
	AvgCorrect    float64 `db:"avg_correct"`
	AvgRatio      float64 `db:"avg_ratio"`
}
