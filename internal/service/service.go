package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

var (
	// ErrInvalidLanguagePair is returned when a language constraint is
	// given with anything other than exactly two names.
	ErrInvalidLanguagePair = errors.New("languages must contain exactly two names")
	// ErrNoEligibleGroups is returned by StartQuiz when the initial
	// restriction leaves nothing to ask.
	ErrNoEligibleGroups = errors.New("no eligible questions for this set")
	// ErrSessionFinished is returned when answering a finished session.
	ErrSessionFinished = errors.New("quiz session already finished")
	// ErrEmptySet is returned when exporting a set without any groups.
	ErrEmptySet = errors.New("set has no vocabulary to export")
)

type TranslatorI interface {
	Translate(ctx context.Context, text, srcCode, destCode string) (string, error)
}

// RepositoryI is the full storage surface the services run on.
type RepositoryI interface {
	VocabRI
	UserRI
	ProgressRI
	HistoryRI
}

type Options struct {
	MainLanguage     string
	NumChoices       int
	ProblemThreshold float64
}

type Service struct {
	*VocabS
	*QuizS
	*ProgressS
	*StatsS
	*ImportS
	*ExportS
}

func InitServices(translator TranslatorI, repo RepositoryI, opts Options, log *zap.Logger) *Service {
	if opts.MainLanguage == "" {
		opts.MainLanguage = "Swedish"
	}
	if opts.NumChoices == 0 {
		opts.NumChoices = 3
	}
	if opts.ProblemThreshold == 0 {
		opts.ProblemThreshold = 0.7
	}

	progress := NewProgressService(repo, log)
	stats := NewStatsService(repo, opts.ProblemThreshold, log)

	return &Service{
		VocabS:    NewVocabService(repo, repo, log),
		ProgressS: progress,
		StatsS:    stats,
		QuizS:     NewQuizService(repo, repo, progress, stats, opts.NumChoices, log),
		ImportS:   NewImportService(repo, translator, opts.MainLanguage, log),
		ExportS:   NewExportService(repo, log),
	}
}

func intersect(a, b []int64) []int64 {
	set := make(map[int64]struct{}, len(b))
	for _, id := range b {
		set[id] = struct{}{}
	}
	out := make([]int64, 0, len(a))
	for _, id := range a {
		if _, ok := set[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
