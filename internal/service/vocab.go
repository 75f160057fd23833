package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/druvus/vocabulator/internal/models"
	"go.uber.org/zap"
)

type VocabRI interface {
	LanguageID(ctx context.Context, name, code string) (int64, error)
	Languages(ctx context.Context) ([]models.Language, error)
	CreateSet(ctx context.Context, name, description string) (int64, error)
	Sets(ctx context.Context) ([]models.VocabSet, error)
	AddGroup(ctx context.Context) (int64, error)
	AddWord(ctx context.Context, groupID int64, language, word string) error
	AddGroupToSet(ctx context.Context, setID, groupID int64) error
	GroupWords(ctx context.Context, groupID int64) (map[string]string, error)
	SetGroupIDs(ctx context.Context, setID int64) ([]int64, error)
	TagSet(ctx context.Context, setID int64, tag string) error
	SetTags(ctx context.Context, setID int64) ([]string, error)
}

type UserRI interface {
	GetOrCreateUser(ctx context.Context, username string) (models.User, error)
	Users(ctx context.Context) ([]models.User, error)
}

type VocabS struct {
	repo  VocabRI
	users UserRI
	log   *zap.Logger
}

func NewVocabService(repo VocabRI, users UserRI, log *zap.Logger) *VocabS {
	return &VocabS{repo: repo, users: users, log: log}
}

// defaultLanguages are seeded on startup so an empty database is
// immediately usable for importing.
var defaultLanguages = []models.Language{
	{Name: "Swedish", Code: "sv"},
	{Name: "English", Code: "en"},
	{Name: "Spanish", Code: "es"},
}

func (v *VocabS) EnsureDefaultLanguages(ctx context.Context) error {
	for _, lang := range defaultLanguages {
		if _, err := v.repo.LanguageID(ctx, lang.Name, lang.Code); err != nil {
			return fmt.Errorf("failed to seed language %s: %w", lang.Name, err)
		}
	}
	return nil
}

func (v *VocabS) Languages(ctx context.Context) ([]models.Language, error) {
	return v.repo.Languages(ctx)
}

func (v *VocabS) Sets(ctx context.Context) ([]models.VocabSet, error) {
	return v.repo.Sets(ctx)
}

func (v *VocabS) SetTags(ctx context.Context, setID int64) ([]string, error) {
	return v.repo.SetTags(ctx, setID)
}

func (v *VocabS) Words(ctx context.Context, groupID int64) (map[string]string, error) {
	return v.repo.GroupWords(ctx, groupID)
}

func (v *VocabS) SetGroupIDs(ctx context.Context, setID int64) ([]int64, error) {
	return v.repo.SetGroupIDs(ctx, setID)
}

// GetOrCreateUser looks a user up by name, creating them on first use.
// Names are stored title-cased so "anna" and "Anna" are one user.
func (v *VocabS) GetOrCreateUser(ctx context.Context, username string) (models.User, error) {
	username = titleCase(strings.TrimSpace(username))
	if username == "" {
		return models.User{}, fmt.Errorf("username must not be empty")
	}

	user, err := v.users.GetOrCreateUser(ctx, username)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to resolve user %s: %w", username, err)
	}
	return user, nil
}

func (v *VocabS) Users(ctx context.Context) ([]models.User, error) {
	return v.users.Users(ctx)
}

// titleCase upper-cases the first rune and lower-cases the rest. It is
// deliberately simpler than full title casing: language names, tags and
// usernames are single words in practice.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
