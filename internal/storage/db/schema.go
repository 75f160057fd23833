package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// initSchema creates all tables if they do not already exist. Apart from
// the id column type the DDL is shared between sqlite and postgres.
func initSchema(db *sqlx.DB, driver string) error {
	serial := "BIGSERIAL PRIMARY KEY"
	if driver == "sqlite" {
		serial = "INTEGER PRIMARY KEY AUTOINCREMENT"
	}

	stmts := []string{
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS languages (
			id %s,
			name TEXT UNIQUE NOT NULL,
			code TEXT NOT NULL DEFAULT ''
		)`, serial),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS translation_groups (
			id %s
		)`, serial),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS vocab_items (
			id %s,
			group_id BIGINT NOT NULL REFERENCES translation_groups(id) ON DELETE CASCADE,
			language_id BIGINT NOT NULL REFERENCES languages(id) ON DELETE CASCADE,
			word TEXT NOT NULL,
			imported_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (group_id, language_id)
		)`, serial),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS sets (
			id %s,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			imported_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`, serial),
		`
		CREATE TABLE IF NOT EXISTS set_groups (
			set_id BIGINT NOT NULL REFERENCES sets(id) ON DELETE CASCADE,
			group_id BIGINT NOT NULL REFERENCES translation_groups(id) ON DELETE CASCADE,
			PRIMARY KEY (set_id, group_id)
		)`,
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS tags (
			id %s,
			name TEXT UNIQUE NOT NULL
		)`, serial),
		`
		CREATE TABLE IF NOT EXISTS set_tags (
			set_id BIGINT NOT NULL REFERENCES sets(id) ON DELETE CASCADE,
			tag_id BIGINT NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
			PRIMARY KEY (set_id, tag_id)
		)`,
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS users (
			id %s,
			username TEXT UNIQUE NOT NULL
		)`, serial),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS quiz_sessions (
			id %s,
			set_id BIGINT NOT NULL REFERENCES sets(id) ON DELETE CASCADE,
			user_id BIGINT REFERENCES users(id) ON DELETE CASCADE,
			total_questions INTEGER NOT NULL,
			correct_answers INTEGER NOT NULL,
			taken_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`, serial),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS quiz_answers (
			id %s,
			session_id BIGINT NOT NULL REFERENCES quiz_sessions(id) ON DELETE CASCADE,
			group_id BIGINT NOT NULL REFERENCES translation_groups(id) ON DELETE CASCADE,
			from_lang TEXT NOT NULL,
			to_lang TEXT NOT NULL,
			correct BOOLEAN NOT NULL
		)`, serial),
		`
		CREATE TABLE IF NOT EXISTS user_progress (
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			group_id BIGINT NOT NULL REFERENCES translation_groups(id) ON DELETE CASCADE,
			box INTEGER NOT NULL DEFAULT 0,
			due_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (user_id, group_id)
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}
