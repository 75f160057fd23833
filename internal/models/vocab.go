package models

import "time"

type Language struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	Code string `db:"code"`
}

type VocabSet struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	ImportedAt  time.Time `db:"imported_at"`
}

type User struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
}
