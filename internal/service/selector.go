package service

import (
	"context"
	crypto "crypto/rand"
	"fmt"
	"math/big"
	"math/rand"

	"github.com/druvus/vocabulator/internal/models"
	"go.uber.org/zap"
)

// SelectorRI is the vocabulary surface question selection reads from.
type SelectorRI interface {
	SetGroupIDs(ctx context.Context, setID int64) ([]int64, error)
	GroupWords(ctx context.Context, groupID int64) (map[string]string, error)
}

type QuizS struct {
	repo       SelectorRI
	history    SessionHistoryRI
	progress   ProgressI
	stats      StatsI
	numChoices int
	log        *zap.Logger
}

func NewQuizService(repo SelectorRI, history SessionHistoryRI, progress ProgressI, stats StatsI, numChoices int, log *zap.Logger) *QuizS {
	return &QuizS{
		repo:       repo,
		history:    history,
		progress:   progress,
		stats:      stats,
		numChoices: numChoices,
		log:        log,
	}
}

type QuestionParams struct {
	SetID int64
	// Languages is nil for "any pair" or exactly two language names
	// giving the fixed (source, target) direction.
	Languages       []string
	RandomDirection bool
	// AllowedGroupIDs restricts the candidate pool. nil means
	// unrestricted; an empty slice means nothing is eligible.
	AllowedGroupIDs []int64
}

// NextQuestion picks one random translation pair from the set.
//
// The draw is deliberately two-staged: a uniformly random group first,
// then a random valid language pair within it. Groups are not weighted
// by how many pairs they contain. It returns (nil, nil) when no
// candidate group yields a valid pair.
func (q *QuizS) NextQuestion(ctx context.Context, p QuestionParams) (*models.Question, error) {
	if p.Languages != nil && len(p.Languages) != 2 {
		return nil, ErrInvalidLanguagePair
	}

	ids, err := q.repo.SetGroupIDs(ctx, p.SetID)
	if err != nil {
		return nil, fmt.Errorf("failed to build candidate pool: %w", err)
	}
	if p.AllowedGroupIDs != nil {
		ids = intersect(ids, p.AllowedGroupIDs)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	rand.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	for _, groupID := range ids {
		words, err := q.repo.GroupWords(ctx, groupID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch group %d: %w", groupID, err)
		}
		if len(words) == 0 {
			continue
		}

		var pairs [][2]string
		if p.Languages != nil {
			src, tgt := p.Languages[0], p.Languages[1]
			if _, ok := words[src]; !ok {
				continue
			}
			if _, ok := words[tgt]; !ok {
				continue
			}
			if p.RandomDirection && rand.Intn(2) == 1 {
				src, tgt = tgt, src
			}
			pairs = [][2]string{{src, tgt}}
		} else {
			langs := make([]string, 0, len(words))
			for lang := range words {
				langs = append(langs, lang)
			}
			if len(langs) < 2 {
				continue
			}
			for i := range langs {
				for j := range langs {
					if i != j {
						pairs = append(pairs, [2]string{langs[i], langs[j]})
					}
				}
			}
			rand.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })
		}

		for _, pair := range pairs {
			srcWord, tgtWord := words[pair[0]], words[pair[1]]
			if srcWord == "" || tgtWord == "" {
				continue
			}
			return &models.Question{
				SetID:          p.SetID,
				GroupID:        groupID,
				SourceLanguage: pair[0],
				SourceWord:     srcWord,
				TargetLanguage: pair[1],
				TargetWord:     tgtWord,
			}, nil
		}
	}

	return nil, nil
}

// Distractors collects up to numChoices distinct wrong answers in the
// target language, drawn from other groups of the same set. Fewer are
// returned when the set cannot provide enough distinct words.
func (q *QuizS) Distractors(ctx context.Context, setID, excludeGroupID int64, targetLanguage string, numChoices int) ([]string, error) {
	ids, err := q.repo.SetGroupIDs(ctx, setID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch distractor pool: %w", err)
	}

	candidates := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id != excludeGroupID {
			candidates = append(candidates, id)
		}
	}
	rand.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })

	seen := make(map[string]struct{}, numChoices)
	distractors := make([]string, 0, numChoices)
	for _, groupID := range candidates {
		if len(distractors) >= numChoices {
			break
		}
		words, err := q.repo.GroupWords(ctx, groupID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch group %d: %w", groupID, err)
		}
		word, ok := words[targetLanguage]
		if !ok || word == "" {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		distractors = append(distractors, word)
	}

	return distractors, nil
}

// attachChoices fills in the multiple-choice options for a question:
// the distractors with the correct word inserted at a random position.
func (q *QuizS) attachChoices(ctx context.Context, question *models.Question) error {
	distractors, err := q.Distractors(ctx, question.SetID, question.GroupID, question.TargetLanguage, q.numChoices)
	if err != nil {
		return err
	}

	pos, err := randomPosition(len(distractors) + 1)
	if err != nil {
		q.log.Warn("crypto/rand failed, using math/rand fallback", zap.Error(err))
		pos = rand.Intn(len(distractors) + 1)
	}

	choices := make([]string, 0, len(distractors)+1)
	choices = append(choices, distractors[:pos]...)
	choices = append(choices, question.TargetWord)
	choices = append(choices, distractors[pos:]...)
	question.Choices = choices
	return nil
}

func randomPosition(n int) (int, error) {
	v, err := crypto.Int(crypto.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
