package service

import (
	"context"
	"testing"

	"github.com/druvus/vocabulator/internal/models"
	mock_service "github.com/druvus/vocabulator/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newQuizServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockRepositoryI)) *QuizS {
	repo := mock_service.NewMockRepositoryI(ctrl)
	if setupMock != nil {
		setupMock(repo)
	}

	log := zap.NewNop()
	progress := NewProgressService(repo, log)
	stats := NewStatsService(repo, 0.7, log)

	return NewQuizService(repo, repo, progress, stats, 3, log)
}

func groupWordsStub(groups map[int64]map[string]string) func(context.Context, int64) (map[string]string, error) {
	return func(_ context.Context, groupID int64) (map[string]string, error) {
		return groups[groupID], nil
	}
}

func TestQuizS_NextQuestion(t *testing.T) {
	t.Parallel()

	groups := map[int64]map[string]string{
		1: {"Swedish": "hund", "English": "dog"},
		2: {"Swedish": "katt"},
	}

	tests := []struct {
		name     string
		params   QuestionParams
		f        func(*mock_service.MockRepositoryI)
		wantNil  bool
		wantErr  error
		validate func(*testing.T, *models.Question)
	}{
		{
			name:   "any pair from a full group",
			params: QuestionParams{SetID: 1},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().SetGroupIDs(gomock.Any(), int64(1)).Return([]int64{1}, nil)
				mri.EXPECT().GroupWords(gomock.Any(), gomock.Any()).
					DoAndReturn(groupWordsStub(groups)).AnyTimes()
			},
			validate: func(t *testing.T, q *models.Question) {
				assert.Equal(t, int64(1), q.GroupID)
				assert.NotEqual(t, q.SourceLanguage, q.TargetLanguage)
				assert.Equal(t, groups[1][q.SourceLanguage], q.SourceWord)
				assert.Equal(t, groups[1][q.TargetLanguage], q.TargetWord)
			},
		},
		{
			name:   "fixed direction",
			params: QuestionParams{SetID: 1, Languages: []string{"Swedish", "English"}},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().SetGroupIDs(gomock.Any(), int64(1)).Return([]int64{1}, nil)
				mri.EXPECT().GroupWords(gomock.Any(), gomock.Any()).
					DoAndReturn(groupWordsStub(groups)).AnyTimes()
			},
			validate: func(t *testing.T, q *models.Question) {
				assert.Equal(t, "Swedish", q.SourceLanguage)
				assert.Equal(t, "hund", q.SourceWord)
				assert.Equal(t, "English", q.TargetLanguage)
				assert.Equal(t, "dog", q.TargetWord)
			},
		},
		{
			name:    "one language is rejected",
			params:  QuestionParams{SetID: 1, Languages: []string{"Swedish"}},
			wantErr: ErrInvalidLanguagePair,
		},
		{
			name:    "three languages are rejected",
			params:  QuestionParams{SetID: 1, Languages: []string{"Swedish", "English", "Spanish"}},
			wantErr: ErrInvalidLanguagePair,
		},
		{
			name:   "empty allowed pool is exhausted, not unrestricted",
			params: QuestionParams{SetID: 1, AllowedGroupIDs: []int64{}},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().SetGroupIDs(gomock.Any(), int64(1)).Return([]int64{1, 2}, nil)
			},
			wantNil: true,
		},
		{
			name:   "single language group cannot form a pair",
			params: QuestionParams{SetID: 1, AllowedGroupIDs: []int64{2}},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().SetGroupIDs(gomock.Any(), int64(1)).Return([]int64{1, 2}, nil)
				mri.EXPECT().GroupWords(gomock.Any(), int64(2)).Return(groups[2], nil)
			},
			wantNil: true,
		},
		{
			name:   "group missing a requested language is skipped",
			params: QuestionParams{SetID: 1, Languages: []string{"Swedish", "Spanish"}},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().SetGroupIDs(gomock.Any(), int64(1)).Return([]int64{1, 2}, nil)
				mri.EXPECT().GroupWords(gomock.Any(), gomock.Any()).
					DoAndReturn(groupWordsStub(groups)).AnyTimes()
			},
			wantNil: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizS := newQuizServiceMock(t, ctrl, tt.f)

			got, err := quizS.NextQuestion(context.Background(), tt.params)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			if tt.validate != nil {
				tt.validate(t, got)
			}
		})
	}
}

func TestQuizS_NextQuestion_RandomDirection(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	groups := map[int64]map[string]string{
		1: {"Swedish": "hund", "English": "dog"},
	}

	quizS := newQuizServiceMock(t, ctrl, func(mri *mock_service.MockRepositoryI) {
		mri.EXPECT().SetGroupIDs(gomock.Any(), int64(1)).Return([]int64{1}, nil).AnyTimes()
		mri.EXPECT().GroupWords(gomock.Any(), gomock.Any()).
			DoAndReturn(groupWordsStub(groups)).AnyTimes()
	})

	// Both directions must stay within the requested pair.
	for i := 0; i < 20; i++ {
		q, err := quizS.NextQuestion(context.Background(), QuestionParams{
			SetID:           1,
			Languages:       []string{"Swedish", "English"},
			RandomDirection: true,
		})
		require.NoError(t, err)
		require.NotNil(t, q)

		switch q.SourceLanguage {
		case "Swedish":
			assert.Equal(t, "English", q.TargetLanguage)
			assert.Equal(t, "hund", q.SourceWord)
		case "English":
			assert.Equal(t, "Swedish", q.TargetLanguage)
			assert.Equal(t, "dog", q.SourceWord)
		default:
			t.Fatalf("unexpected source language %q", q.SourceLanguage)
		}
	}
}

func TestQuizS_Distractors(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	groups := map[int64]map[string]string{
		1: {"English": "dog"},
		2: {"English": "cat"},
		3: {"English": "bird"},
		4: {"English": "cat"}, // duplicate word
		5: {"Swedish": "sol"}, // no target language
	}

	quizS := newQuizServiceMock(t, ctrl, func(mri *mock_service.MockRepositoryI) {
		mri.EXPECT().SetGroupIDs(gomock.Any(), int64(1)).Return([]int64{1, 2, 3, 4, 5}, nil)
		mri.EXPECT().GroupWords(gomock.Any(), gomock.Any()).
			DoAndReturn(groupWordsStub(groups)).AnyTimes()
	})

	got, err := quizS.Distractors(context.Background(), 1, 1, "English", 3)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(got), 3)
	assert.NotContains(t, got, "dog")
	seen := make(map[string]int)
	for _, word := range got {
		seen[word]++
		assert.Equal(t, 1, seen[word], "distractors must be distinct")
	}
}
