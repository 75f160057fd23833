package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/druvus/vocabulator/internal/models"
	"go.uber.org/zap"
)

type SessionHistoryRI interface {
	AddSession(ctx context.Context, rec models.SessionRecord) (int64, error)
	AddAnswer(ctx context.Context, sessionID int64, a models.Answer) error
}

type ProgressI interface {
	RecordAnswer(ctx context.Context, userID, groupID int64, correct bool) (models.ProgressRecord, error)
	DueGroups(ctx context.Context, setID, userID int64) ([]int64, error)
}

type StatsI interface {
	ProblematicGroups(ctx context.Context, f models.StatsFilter) ([]int64, error)
}

type SessionState int

const (
	StateAwaitingQuestion SessionState = iota
	StateQuestionPresented
	StateFinished
)

type SessionParams struct {
	SetID  int64
	UserID int64 // 0 runs the session anonymously
	// Languages is nil or exactly two names, as for NextQuestion.
	Languages        []string
	RandomDirection  bool
	Mode             models.Mode
	SpacedRepetition bool
	ProblemOnly      bool
}

// Session is one quiz run. It is not safe for concurrent use; callers
// must serialize interactions per session.
type Session struct {
	quiz    *QuizS
	params  SessionParams
	state   SessionState
	current *models.Question
	allowed []int64
	answers []models.Answer
	total   int
	score   int
}

type AnswerResult struct {
	Correct       bool
	CorrectAnswer string
	Next          *models.Question
	Finished      bool
	Total         int
	Score         int
}

// eligibleGroups combines the due and problematic filters into the
// allowed-group restriction. nil means unrestricted; an empty slice
// means nothing is eligible and must not be reinterpreted.
func (q *QuizS) eligibleGroups(ctx context.Context, p SessionParams) ([]int64, error) {
	if p.SpacedRepetition {
		var due []int64
		if p.UserID != 0 {
			d, err := q.progress.DueGroups(ctx, p.SetID, p.UserID)
			if err != nil {
				return nil, err
			}
			due = d
		}
		if p.ProblemOnly {
			prob, err := q.stats.ProblematicGroups(ctx, models.StatsFilter{SetID: p.SetID})
			if err != nil {
				return nil, err
			}
			if due != nil {
				return intersect(due, prob), nil
			}
			return prob, nil
		}
		return due, nil
	}

	if p.ProblemOnly {
		return q.stats.ProblematicGroups(ctx, models.StatsFilter{SetID: p.SetID})
	}

	return nil, nil
}

// StartQuiz computes the initial eligibility restriction and draws the
// first question. An initial restriction that leaves nothing to ask
// aborts with ErrNoEligibleGroups; the session never starts empty.
func (q *QuizS) StartQuiz(ctx context.Context, p SessionParams) (*Session, error) {
	if p.Mode == "" {
		p.Mode = models.ModeTyped
	}
	for i, lang := range p.Languages {
		p.Languages[i] = titleCase(strings.TrimSpace(lang))
	}

	allowed, err := q.eligibleGroups(ctx, p)
	if err != nil {
		return nil, err
	}

	question, err := q.NextQuestion(ctx, QuestionParams{
		SetID:           p.SetID,
		Languages:       p.Languages,
		RandomDirection: p.RandomDirection,
		AllowedGroupIDs: allowed,
	})
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrNoEligibleGroups
	}
	if p.Mode == models.ModeChoice {
		if err := q.attachChoices(ctx, question); err != nil {
			return nil, err
		}
	}

	q.log.Info("quiz session started",
		zap.Int64("set_id", p.SetID),
		zap.Int64("user_id", p.UserID),
		zap.String("mode", string(p.Mode)),
		zap.Bool("spaced", p.SpacedRepetition),
		zap.Bool("problem_only", p.ProblemOnly),
	)

	return &Session{
		quiz:    q,
		params:  p,
		state:   StateQuestionPresented,
		current: question,
		allowed: allowed,
	}, nil
}

// Current returns the question awaiting an answer, nil once finished.
func (s *Session) Current() *models.Question {
	return s.current
}

func (s *Session) State() SessionState {
	return s.state
}

func (s *Session) Total() int {
	return s.total
}

func (s *Session) Score() int {
	return s.score
}

// Answer grades the caller's input against the current question,
// updates progress for an attached user, and advances to the next
// question. When the candidate pool is exhausted the session finishes
// and the summary plus every logged answer is persisted.
func (s *Session) Answer(ctx context.Context, input string) (AnswerResult, error) {
	if s.state != StateQuestionPresented {
		return AnswerResult{}, ErrSessionFinished
	}

	correct := s.grade(input)
	target := s.current.TargetWord

	s.answers = append(s.answers, models.Answer{
		GroupID:      s.current.GroupID,
		FromLanguage: s.current.SourceLanguage,
		ToLanguage:   s.current.TargetLanguage,
		Correct:      correct,
	})
	s.total++
	if correct {
		s.score++
	}

	// Progress is committed per answer, not at session end: a later
	// persistence failure must not lose review scheduling.
	if s.params.UserID != 0 {
		if _, err := s.quiz.progress.RecordAnswer(ctx, s.params.UserID, s.current.GroupID, correct); err != nil {
			return AnswerResult{}, err
		}
	}

	if s.params.SpacedRepetition {
		allowed, err := s.quiz.eligibleGroups(ctx, s.params)
		if err != nil {
			return AnswerResult{}, err
		}
		// Mid-session only: an exhausted due pool relaxes to
		// unrestricted instead of ending the quiz.
		if allowed != nil && len(allowed) == 0 {
			allowed = nil
		}
		s.allowed = allowed
	}

	next, err := s.quiz.NextQuestion(ctx, QuestionParams{
		SetID:           s.params.SetID,
		Languages:       s.params.Languages,
		RandomDirection: s.params.RandomDirection,
		AllowedGroupIDs: s.allowed,
	})
	if err != nil {
		return AnswerResult{}, err
	}

	if next == nil {
		if err := s.finish(ctx); err != nil {
			return AnswerResult{}, err
		}
		return AnswerResult{
			Correct:       correct,
			CorrectAnswer: target,
			Finished:      true,
			Total:         s.total,
			Score:         s.score,
		}, nil
	}

	if s.params.Mode == models.ModeChoice {
		if err := s.quiz.attachChoices(ctx, next); err != nil {
			return AnswerResult{}, err
		}
	}
	s.current = next

	return AnswerResult{
		Correct:       correct,
		CorrectAnswer: target,
		Next:          next,
		Total:         s.total,
		Score:         s.score,
	}, nil
}

func (s *Session) grade(input string) bool {
	switch s.params.Mode {
	case models.ModeChoice:
		return input == s.current.TargetWord
	case models.ModeFlashcard:
		// Self-graded: the caller asserts whether they knew it.
		return input == "yes"
	default:
		return strings.EqualFold(strings.TrimSpace(input), strings.TrimSpace(s.current.TargetWord))
	}
}

func (s *Session) finish(ctx context.Context) error {
	s.state = StateFinished
	s.current = nil

	sessionID, err := s.quiz.history.AddSession(ctx, models.SessionRecord{
		SetID:   s.params.SetID,
		UserID:  s.params.UserID,
		Total:   s.total,
		Correct: s.score,
	})
	if err != nil {
		return fmt.Errorf("failed to persist session summary: %w", err)
	}
	for _, a := range s.answers {
		if err := s.quiz.history.AddAnswer(ctx, sessionID, a); err != nil {
			return fmt.Errorf("failed to persist session answers: %w", err)
		}
	}

	s.quiz.log.Info("quiz session finished",
		zap.Int64("set_id", s.params.SetID),
		zap.Int64("user_id", s.params.UserID),
		zap.Int("total", s.total),
		zap.Int("score", s.score),
	)
	return nil
}
