package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/druvus/vocabulator/internal/models"
	mock_repository "github.com/druvus/vocabulator/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHistoryMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *HistoryR {
	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return &HistoryR{db: db}
}

func TestHistoryR_AddSession(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rec     models.SessionRecord
		f       func(*mock_repository.MockQueryI)
		want    int64
		wantErr bool
	}{
		{
			name: "success",
			rec:  models.SessionRecord{SetID: 1, UserID: 2, Total: 10, Correct: 7},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
						*dest.(*int64) = 42
						return nil
					})
			},
			want:    42,
			wantErr: false,
		},
		{
			name: "anonymous session",
			rec:  models.SessionRecord{SetID: 1, Total: 5, Correct: 5},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
						*dest.(*int64) = 43
						return nil
					})
			},
			want:    43,
			wantErr: false,
		},
		{
			name: "db error",
			rec:  models.SessionRecord{SetID: 1},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			historyR := newHistoryMock(t, ctrl, tt.f)

			got, err := historyR.AddSession(context.Background(), tt.rec)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHistoryR_AddAnswer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			wantErr: false,
		},
		{
			name: "db error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("exec error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			historyR := newHistoryMock(t, ctrl, tt.f)

			err := historyR.AddAnswer(context.Background(), 42, models.Answer{
				GroupID:      1,
				FromLanguage: "Swedish",
				ToLanguage:   "English",
				Correct:      true,
			})
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestHistoryR_ProblematicGroupIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		filter    models.StatsFilter
		wantQuery []string
		skipQuery []string
		want      []int64
	}{
		{
			name:      "base filter",
			filter:    models.StatsFilter{SetID: 1, Threshold: 0.7},
			wantQuery: []string{"HAVING"},
			skipQuery: []string{"taken_at", "user_id = "},
			want:      []int64{3},
		},
		{
			name:      "time window",
			filter:    models.StatsFilter{SetID: 1, Threshold: 0.7, SinceDays: 30},
			wantQuery: []string{"taken_at >="},
			want:      []int64{3},
		},
		{
			name:      "user scoped",
			filter:    models.StatsFilter{SetID: 1, Threshold: 0.7, UserID: 2},
			wantQuery: []string{"user_id = "},
			want:      []int64{3},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			var gotQuery string
			historyR := newHistoryMock(t, ctrl, func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, dest interface{}, query string, _ ...interface{}) error {
						gotQuery = query
						*dest.(*[]int64) = []int64{3}
						return nil
					})
			})

			got, err := historyR.ProblematicGroupIDs(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			for _, fragment := range tt.wantQuery {
				assert.True(t, strings.Contains(gotQuery, fragment), "query should contain %q", fragment)
			}
			for _, fragment := range tt.skipQuery {
				assert.False(t, strings.Contains(gotQuery, fragment), "query should not contain %q", fragment)
			}
		})
	}
}

func TestHistoryR_SetStats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    models.SetStats
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
						*dest.(*models.SetStats) = models.SetStats{
							TotalSessions: 4,
							AvgCorrect:    7.5,
							AvgRatio:      0.75,
						}
						return nil
					})
			},
			want: models.SetStats{TotalSessions: 4, AvgCorrect: 7.5, AvgRatio: 0.75},
		},
		{
			name: "no history yields zero stats",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			want: models.SetStats{},
		},
		{
			name: "db error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			historyR := newHistoryMock(t, ctrl, tt.f)

			got, err := historyR.SetStats(context.Background(), models.StatsFilter{SetID: 1})
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
