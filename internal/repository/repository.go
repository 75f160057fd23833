package repository

import (
	"context"
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a requested row does not exist. Callers
// rely on it to distinguish "never studied" from storage failures.
var ErrNotFound = errors.New("record not found")

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	*VocabR
	*UserR
	*ProgressR
	*HistoryR
}

func NewRepository(db QueryI) Repository {
	return Repository{
		VocabR:    NewVocabRepository(db),
		UserR:     NewUserRepository(db),
		ProgressR: NewProgressRepository(db),
		HistoryR:  NewHistoryRepository(db),
	}
}
