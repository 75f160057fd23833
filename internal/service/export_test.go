package service

import (
	"bytes"
	"context"
	"testing"

	mock_service "github.com/druvus/vocabulator/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func newExportServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockRepositoryI)) *ExportS {
	repo := mock_service.NewMockRepositoryI(ctrl)
	if setupMock != nil {
		setupMock(repo)
	}

	return NewExportService(repo, zap.NewNop())
}

func exportFixture(mri *mock_service.MockRepositoryI) {
	groups := map[int64]map[string]string{
		1: {"Swedish": "hund", "English": "dog"},
		2: {"Swedish": "katt"},
	}

	mri.EXPECT().SetGroupIDs(gomock.Any(), int64(1)).Return([]int64{1, 2}, nil)
	mri.EXPECT().GroupWords(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, groupID int64) (map[string]string, error) {
			return groups[groupID], nil
		}).AnyTimes()
}

func TestExportS_ExportCSV(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exportS := newExportServiceMock(t, ctrl, exportFixture)

	var buf bytes.Buffer
	err := exportS.ExportCSV(context.Background(), 1, &buf)
	require.NoError(t, err)

	// Language columns come out sorted, gaps stay blank.
	assert.Equal(t, "English,Swedish\ndog,hund\n,katt\n", buf.String())
}

func TestExportS_ExportXLSX(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exportS := newExportServiceMock(t, ctrl, exportFixture)

	var buf bytes.Buffer
	err := exportS.ExportXLSX(context.Background(), 1, &buf)
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"English", "Swedish"}, rows[0])
	assert.Equal(t, []string{"dog", "hund"}, rows[1])
	assert.Equal(t, []string{"", "katt"}, rows[2])
}

func TestExportS_EmptySet(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exportS := newExportServiceMock(t, ctrl, func(mri *mock_service.MockRepositoryI) {
		mri.EXPECT().SetGroupIDs(gomock.Any(), int64(1)).Return([]int64{}, nil)
	})

	var buf bytes.Buffer
	err := exportS.ExportCSV(context.Background(), 1, &buf)
	require.ErrorIs(t, err, ErrEmptySet)
	assert.Zero(t, buf.Len())
}
