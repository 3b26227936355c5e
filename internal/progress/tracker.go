package progress

import "github.com/MKhiriev/readsync/models"

// Tracker applies locally reported reading progress to archive items and
// the positions map. It only ever moves progress forward, so a reader
// jumping back to re-read a paragraph does not lose the furthest point.
type Tracker struct{}

// NewTracker returns a ready to use Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// RecordPosition stores pos under key in positions if it is further than
// the stored one (or on a tie, newer). It reports whether the map changed.
func (t *Tracker) RecordPosition(positions map[string]models.ReadingPosition, key string, pos models.ReadingPosition) bool {
	if positions == nil {
		return false
	}

	current, ok := positions[key]
	if !ok {
		positions[key] = pos
		return true
	}

	winner := FurtherPosition(&current, &pos)
	if winner == &current {
		return false
	}
	positions[key] = pos
	return true
}

// RecordItemProgress updates item.LastPosition and item.Progress with the
// furthest of the stored and reported values and bumps LastOpenedAt to
// openedAt. It reports whether the reading progress moved forward.
func (t *Tracker) RecordItemProgress(item *models.ArchiveItem, pos *models.ReadingPosition, prog *models.ReadingProgress, openedAt int64) bool {
	if item == nil {
		return false
	}

	moved := false
	if next := FurtherPosition(item.LastPosition, pos); next != item.LastPosition {
		item.LastPosition = next
		moved = true
	}
	if next := FurtherProgress(item.Progress, prog); next != item.Progress {
		item.Progress = next
		moved = true
	}
	if openedAt > item.LastOpenedAt {
		item.LastOpenedAt = openedAt
	}

	return moved
}
