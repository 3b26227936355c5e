package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/readsync/internal/logger"
	"github.com/MKhiriev/readsync/internal/progress"
	"github.com/MKhiriev/readsync/internal/schema"
	"github.com/MKhiriev/readsync/internal/store"
	"github.com/MKhiriev/readsync/models"
)

type progressService struct {
	local   store.LocalStorage
	tracker *progress.Tracker

	mu  *sync.Mutex
	now func() time.Time

	logger *logger.Logger
}

// NewProgressService returns a ProgressService over local.
func NewProgressService(local store.LocalStorage, logger *logger.Logger) ProgressService {
	return newProgressService(local, new(sync.Mutex), logger)
}

func newProgressService(local store.LocalStorage, mu *sync.Mutex, logger *logger.Logger) *progressService {
	return &progressService{
		local:   local,
		tracker: progress.NewTracker(),
		mu:      mu,
		now:     time.Now,
		logger:  logger,
	}
}

func (p *progressService) RecordPosition(ctx context.Context, report models.PositionReport) (bool, error) {
	if report.PositionKey == "" && report.ItemID == "" {
		return false, fmt.Errorf("%w: position key or item id is required", ErrInvalidPositionReport)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	raw, err := p.local.LoadRaw(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrLoadLocalState, err)
	}
	raw, _, err = schema.MigrateWithLogger(raw, p.logger)
	if err != nil {
		return false, err
	}

	doc, err := BuildSnapshot(raw)
	if err != nil {
		return false, err
	}

	changed := false
	if report.PositionKey != "" {
		if doc.Positions == nil {
			doc.Positions = make(map[string]models.ReadingPosition)
		}
		changed = p.tracker.RecordPosition(doc.Positions, report.PositionKey, report.Position)
	}

	if report.ItemID != "" {
		found := false
		for i := range doc.ArchiveItems {
			if doc.ArchiveItems[i].ID != report.ItemID {
				continue
			}
			found = true
			pos := report.Position
			openedAt := doc.ArchiveItems[i].LastOpenedAt
			moved := p.tracker.RecordItemProgress(&doc.ArchiveItems[i], &pos, report.Progress, report.OpenedAt)
			if moved || doc.ArchiveItems[i].LastOpenedAt != openedAt {
				changed = true
			}
			break
		}
		if !found {
			return false, fmt.Errorf("%w: %s", ErrArchiveItemNotFound, report.ItemID)
		}
	}

	if !changed {
		return false, nil
	}

	doc.UpdatedAt = p.now().UnixMilli()
	raw, err = ApplySnapshot(raw, doc)
	if err != nil {
		return false, err
	}
	if err = p.local.SaveRaw(ctx, raw); err != nil {
		return false, fmt.Errorf("%w: %w", ErrSaveLocalState, err)
	}

	p.logger.Debug().
		Str("func", "progressService.RecordPosition").
		Str("item_id", report.ItemID).
		Str("position_key", report.PositionKey).
		Msg("reading progress moved forward")
	return true, nil
}
