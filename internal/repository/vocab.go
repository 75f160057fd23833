package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/druvus/vocabulator/internal/models"
)

type VocabR struct {
	db QueryI
}

func NewVocabRepository(db QueryI) *VocabR {
	return &VocabR{db: db}
}

// LanguageID returns the id for a language name, inserting it on first
// use. The code is stored on first insert only and ignored afterwards.
func (v *VocabR) LanguageID(ctx context.Context, name, code string) (int64, error) {
	var id int64
	err := v.db.GetContext(ctx, &id, `SELECT id FROM languages WHERE name = $1`, name)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to look up language %q: %w", name, err)
	}

	err = v.db.GetContext(ctx, &id, `INSERT INTO languages (name, code) VALUES ($1, $2) RETURNING id`, name, code)
	if err != nil {
		return 0, fmt.Errorf("failed to insert language %q: %w", name, err)
	}
	return id, nil
}

func (v *VocabR) Languages(ctx context.Context) ([]models.Language, error) {
	langs := make([]models.Language, 0)
	err := v.db.SelectContext(ctx, &langs, `SELECT id, name, code FROM languages ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list languages: %w", err)
	}
	return langs, nil
}

func (v *VocabR) CreateSet(ctx context.Context, name, description string) (int64, error) {
	var id int64
	err := v.db.GetContext(ctx, &id,
		`INSERT INTO sets (name, description) VALUES ($1, $2) RETURNING id`, name, description)
	if err != nil {
		return 0, fmt.Errorf("failed to create set %q: %w", name, err)
	}
	return id, nil
}

func (v *VocabR) Sets(ctx context.Context) ([]models.VocabSet, error) {
	sets := make([]models.VocabSet, 0)
	err := v.db.SelectContext(ctx, &sets,
		`SELECT id, name, description, imported_at FROM sets ORDER BY imported_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sets: %w", err)
	}
	return sets, nil
}

func (v *VocabR) AddGroup(ctx context.Context) (int64, error) {
	var id int64
	err := v.db.GetContext(ctx, &id, `INSERT INTO translation_groups DEFAULT VALUES RETURNING id`)
	if err != nil {
		return 0, fmt.Errorf("failed to create translation group: %w", err)
	}
	return id, nil
}

// AddWord stores a word for (group, language). A word already present
// for that pair wins: the duplicate insert is silently ignored.
func (v *VocabR) AddWord(ctx context.Context, groupID int64, language, word string) error {
	langID, err := v.LanguageID(ctx, language, "")
	if err != nil {
		return err
	}

	_, err = v.db.ExecContext(ctx, `
		INSERT INTO vocab_items (group_id, language_id, word)
		VALUES ($1, $2, $3)
		ON CONFLICT (group_id, language_id) DO NOTHING`,
		groupID, langID, word)
	if err != nil {
		return fmt.Errorf("failed to add word to group %d: %w", groupID, err)
	}
	return nil
}

func (v *VocabR) AddGroupToSet(ctx context.Context, setID, groupID int64) error {
	_, err := v.db.ExecContext(ctx, `
		INSERT INTO set_groups (set_id, group_id)
		VALUES ($1, $2)
		ON CONFLICT (set_id, group_id) DO NOTHING`,
		setID, groupID)
	if err != nil {
		return fmt.Errorf("failed to add group %d to set %d: %w", groupID, setID, err)
	}
	return nil
}

// GroupWords returns the language name to word mapping for one group.
func (v *VocabR) GroupWords(ctx context.Context, groupID int64) (map[string]string, error) {
	var rows []struct {
		Language string `db:"language"`
		Word     string `db:"word"`
	}
	err := v.db.SelectContext(ctx, &rows, `
		SELECT l.name AS language, i.word AS word
		FROM vocab_items i
		JOIN languages l ON i.language_id = l.id
		WHERE i.group_id = $1`,
		groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch words for group %d: %w", groupID, err)
	}

	words := make(map[string]string, len(rows))
	for _, r := range rows {
		words[r.Language] = r.Word
	}
	return words, nil
}

func (v *VocabR) SetGroupIDs(ctx context.Context, setID int64) ([]int64, error) {
	ids := make([]int64, 0)
	err := v.db.SelectContext(ctx, &ids, `SELECT group_id FROM set_groups WHERE set_id = $1`, setID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch group ids for set %d: %w", setID, err)
	}
	return ids, nil
}

func (v *VocabR) TagSet(ctx context.Context, setID int64, tag string) error {
	var tagID int64
	err := v.db.GetContext(ctx, &tagID, `SELECT id FROM tags WHERE name = $1`, tag)
	if errors.Is(err, sql.ErrNoRows) {
		err = v.db.GetContext(ctx, &tagID, `INSERT INTO tags (name) VALUES ($1) RETURNING id`, tag)
	}
	if err != nil {
		return fmt.Errorf("failed to resolve tag %q: %w", tag, err)
	}

	_, err = v.db.ExecContext(ctx, `
		INSERT INTO set_tags (set_id, tag_id)
		VALUES ($1, $2)
		ON CONFLICT (set_id, tag_id) DO NOTHING`,
		setID, tagID)
	if err != nil {
		return fmt.Errorf("failed to tag set %d: %w", setID, err)
	}
	return nil
}

func (v *VocabR) SetTags(ctx context.Context, setID int64) ([]string, error) {
	tags := make([]string, 0)
	err := v.db.SelectContext(ctx, &tags, `
		SELECT t.name
		FROM set_tags st
		JOIN tags t ON st.tag_id = t.id
		WHERE st.set_id = $1
		ORDER BY t.name`,
		setID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tags for set %d: %w", setID, err)
	}
	return tags, nil
}
