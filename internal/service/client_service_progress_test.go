package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/readsync/internal/logger"
	"github.com/MKhiriev/readsync/internal/mock"
	"github.com/MKhiriev/readsync/models"
)

func newTestProgressSvc(t *testing.T, ctrl *gomock.Controller, mu *sync.Mutex) (*progressService, *mock.MockLocalStorage) {
	t.Helper()
	local := mock.NewMockLocalStorage(ctrl)
	svc := newProgressService(local, mu, logger.Nop())
	svc.now = func() time.Time { return time.UnixMilli(7000) }
	return svc, local
}

func chapter(v int) *int { return &v }

// captureSave records the raw map handed to SaveRaw and decodes it back.
func captureSave(t *testing.T, local *mock.MockLocalStorage) *models.SyncStateDocument {
	t.Helper()
	doc := &models.SyncStateDocument{}
	local.EXPECT().SaveRaw(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, raw map[string]any) error {
		built, err := BuildSnapshot(raw)
		require.NoError(t, err)
		*doc = built
		return nil
	})
	return doc
}

func TestProgressService_RejectsEmptyReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestProgressSvc(t, ctrl, new(sync.Mutex))

	changed, err := svc.RecordPosition(context.Background(), models.PositionReport{})
	require.ErrorIs(t, err, ErrInvalidPositionReport)
	assert.False(t, changed)
}

func TestProgressService_StoresNewPosition(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, local := newTestProgressSvc(t, ctrl, new(sync.Mutex))

	local.EXPECT().LoadRaw(gomock.Any()).Return(localRaw(), nil)
	saved := captureSave(t, local)

	report := models.PositionReport{
		PositionKey: "book-1",
		Position:    models.ReadingPosition{ChapterIndex: chapter(2), BlockIndex: 4, Timestamp: 6000},
	}
	changed, err := svc.RecordPosition(context.Background(), report)
	require.NoError(t, err)
	assert.True(t, changed)

	assert.Equal(t, int64(7000), saved.UpdatedAt)
	require.Contains(t, saved.Positions, "book-1")
	assert.Equal(t, 4, saved.Positions["book-1"].BlockIndex)
	assert.Equal(t, 2, saved.Positions["book-1"].Chapter())
}

func TestProgressService_IgnoresBackwardPosition(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, local := newTestProgressSvc(t, ctrl, new(sync.Mutex))

	raw := localRaw()
	raw["positions"] = map[string]any{
		"book-1": map[string]any{"chapterIndex": float64(3), "blockIndex": float64(1), "charOffset": float64(0), "timestamp": float64(100)},
	}
	local.EXPECT().LoadRaw(gomock.Any()).Return(raw, nil)

	report := models.PositionReport{
		PositionKey: "book-1",
		Position:    models.ReadingPosition{ChapterIndex: chapter(1), BlockIndex: 90, Timestamp: 6000},
	}
	changed, err := svc.RecordPosition(context.Background(), report)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestProgressService_MovesItemProgressForward(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, local := newTestProgressSvc(t, ctrl, new(sync.Mutex))

	local.EXPECT().LoadRaw(gomock.Any()).Return(localRaw(), nil)
	saved := captureSave(t, local)

	report := models.PositionReport{
		ItemID:   "a1",
		Position: models.ReadingPosition{BlockIndex: 12, Timestamp: 6500},
		Progress: &models.ReadingProgress{Percent: 40},
		OpenedAt: 6500,
	}
	changed, err := svc.RecordPosition(context.Background(), report)
	require.NoError(t, err)
	assert.True(t, changed)

	require.Len(t, saved.ArchiveItems, 1)
	item := saved.ArchiveItems[0]
	require.NotNil(t, item.LastPosition)
	assert.Equal(t, 12, item.LastPosition.BlockIndex)
	require.NotNil(t, item.Progress)
	assert.InDelta(t, 40, item.Progress.Percent, 0.001)
	assert.Equal(t, int64(6500), item.LastOpenedAt)
}

func TestProgressService_UnknownItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, local := newTestProgressSvc(t, ctrl, new(sync.Mutex))

	local.EXPECT().LoadRaw(gomock.Any()).Return(localRaw(), nil)

	_, err := svc.RecordPosition(context.Background(), models.PositionReport{ItemID: "missing"})
	require.ErrorIs(t, err, ErrArchiveItemNotFound)
}

func TestProgressService_StorageErrors(t *testing.T) {
	report := models.PositionReport{PositionKey: "k", Position: models.ReadingPosition{BlockIndex: 1}}

	t.Run("load", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, local := newTestProgressSvc(t, ctrl, new(sync.Mutex))
		local.EXPECT().LoadRaw(gomock.Any()).Return(nil, errors.New("disk gone"))

		_, err := svc.RecordPosition(context.Background(), report)
		require.ErrorIs(t, err, ErrLoadLocalState)
	})

	t.Run("save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, local := newTestProgressSvc(t, ctrl, new(sync.Mutex))
		local.EXPECT().LoadRaw(gomock.Any()).Return(localRaw(), nil)
		local.EXPECT().SaveRaw(gomock.Any(), gomock.Any()).Return(errors.New("read-only"))

		_, err := svc.RecordPosition(context.Background(), report)
		require.ErrorIs(t, err, ErrSaveLocalState)
	})
}

func TestProgressService_WaitsForSharedLock(t *testing.T) {
	ctrl := gomock.NewController(t)
	mu := new(sync.Mutex)
	svc, local := newTestProgressSvc(t, ctrl, mu)

	local.EXPECT().LoadRaw(gomock.Any()).Return(localRaw(), nil)
	local.EXPECT().SaveRaw(gomock.Any(), gomock.Any()).Return(nil)

	mu.Lock()
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = svc.RecordPosition(context.Background(), models.PositionReport{PositionKey: "k"})
	}()

	select {
	case <-done:
		t.Fatal("recorded while the sync cycle held the lock")
	case <-time.After(50 * time.Millisecond):
	}

	mu.Unlock()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("record did not finish after the lock was released")
	}
}
