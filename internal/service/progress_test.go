package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/druvus/vocabulator/internal/models"
	"github.com/druvus/vocabulator/internal/repository"
	mock_service "github.com/druvus/vocabulator/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newProgressServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockRepositoryI)) *ProgressS {
	repo := mock_service.NewMockRepositoryI(ctrl)
	if setupMock != nil {
		setupMock(repo)
	}

	return NewProgressService(repo, zap.NewNop())
}

func TestProgressS_RecordAnswer(t *testing.T) {
	t.Parallel()

	days := func(n int) time.Duration { return time.Duration(n) * 24 * time.Hour }

	tests := []struct {
		name      string
		existing  *models.ProgressRecord
		correct   bool
		wantBox   int
		wantDueIn time.Duration
	}{
		{
			name:      "first correct answer starts in box 1",
			correct:   true,
			wantBox:   1,
			wantDueIn: days(2),
		},
		{
			name:      "first wrong answer starts in box 0",
			correct:   false,
			wantBox:   0,
			wantDueIn: days(1),
		},
		{
			name:      "correct answer moves up a box",
			existing:  &models.ProgressRecord{UserID: 7, GroupID: 1, Box: 2},
			correct:   true,
			wantBox:   3,
			wantDueIn: days(8),
		},
		{
			name:      "top box stays capped",
			existing:  &models.ProgressRecord{UserID: 7, GroupID: 1, Box: 5},
			correct:   true,
			wantBox:   5,
			wantDueIn: days(32),
		},
		{
			name:      "wrong answer resets any box to 0",
			existing:  &models.ProgressRecord{UserID: 7, GroupID: 1, Box: 4},
			correct:   false,
			wantBox:   0,
			wantDueIn: days(1),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			var saved models.ProgressRecord
			progressS := newProgressServiceMock(t, ctrl, func(mri *mock_service.MockRepositoryI) {
				if tt.existing != nil {
					mri.EXPECT().Progress(gomock.Any(), int64(7), int64(1)).
						Return(*tt.existing, nil)
				} else {
					mri.EXPECT().Progress(gomock.Any(), int64(7), int64(1)).
						Return(models.ProgressRecord{}, repository.ErrNotFound)
				}
				mri.EXPECT().UpsertProgress(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rec models.ProgressRecord) error {
						saved = rec
						return nil
					})
			})

			got, err := progressS.RecordAnswer(context.Background(), 7, 1, tt.correct)
			require.NoError(t, err)

			assert.Equal(t, tt.wantBox, got.Box)
			assert.Equal(t, int64(7), got.UserID)
			assert.Equal(t, int64(1), got.GroupID)
			assert.WithinDuration(t, time.Now().Add(tt.wantDueIn), got.DueAt, 5*time.Second)
			assert.Equal(t, got, saved)
		})
	}
}

func TestProgressS_RecordAnswer_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f    func(*mock_service.MockRepositoryI)
	}{
		{
			name: "lookup fails",
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().Progress(gomock.Any(), int64(7), int64(1)).
					Return(models.ProgressRecord{}, errors.New("db error"))
			},
		},
		{
			name: "save fails",
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().Progress(gomock.Any(), int64(7), int64(1)).
					Return(models.ProgressRecord{}, repository.ErrNotFound)
				mri.EXPECT().UpsertProgress(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			progressS := newProgressServiceMock(t, ctrl, tt.f)

			_, err := progressS.RecordAnswer(context.Background(), 7, 1, true)
			require.Error(t, err)
		})
	}
}

func TestProgressS_DueGroups(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f    func(*mock_service.MockRepositoryI)
		want []int64
	}{
		{
			name: "due groups pass through",
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().DueGroupIDs(gomock.Any(), int64(1), int64(7), gomock.Any()).
					Return([]int64{2, 3}, nil)
			},
			want: []int64{2, 3},
		},
		{
			name: "nil result normalizes to empty",
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().DueGroupIDs(gomock.Any(), int64(1), int64(7), gomock.Any()).
					Return(nil, nil)
			},
			want: []int64{},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			progressS := newProgressServiceMock(t, ctrl, tt.f)

			got, err := progressS.DueGroups(context.Background(), 1, 7)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
