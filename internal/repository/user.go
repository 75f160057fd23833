package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/druvus/vocabulator/internal/models"
)

type UserR struct {
	db QueryI
}

func NewUserRepository(db QueryI) *UserR {
	return &UserR{db: db}
}

func (u *UserR) GetOrCreateUser(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := u.db.GetContext(ctx, &user, `SELECT id, username FROM users WHERE username = $1`, username)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.User{}, fmt.Errorf("failed to look up user %q: %w", username, err)
	}

	err = u.db.GetContext(ctx, &user.ID, `INSERT INTO users (username) VALUES ($1) RETURNING id`, username)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to create user %q: %w", username, err)
	}
	user.Username = username
	return user, nil
}

func (u *UserR) Users(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	err := u.db.SelectContext(ctx, &users, `SELECT id, username FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
