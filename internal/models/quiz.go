package models

import "time"

type Mode string

const (
	ModeTyped     Mode = "typed"
	ModeChoice    Mode = "choice"
	ModeFlashcard Mode = "flashcard"
)

type Question struct {
	SetID          int64
	GroupID        int64
	SourceLanguage string
	SourceWord     string
	TargetLanguage string
	TargetWord     string
	// Choices is populated in multiple-choice mode only: the distractors
	// plus the target word.
	Choices []string
}

type Answer struct {
	GroupID      int64  `db:"group_id"`
	FromLanguage string `db:"from_lang"`
	ToLanguage   string `db:"to_lang"`
	Correct      bool   `db:"correct"`
}

// SessionRecord is the persisted summary of a finished quiz session.
// UserID is 0 for anonymous sessions and stored as NULL.
type SessionRecord struct {
	ID      int64     `db:"id"`
	SetID   int64     `db:"set_id"`
	UserID  int64     `db:"user_id"`
	Total   int       `db:"total_questions"`
	Correct int       `db:"correct_answers"`
	TakenAt time.Time `db:"taken_at"`
}
