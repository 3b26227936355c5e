package models

// SyncResult summarises a single sync cycle.
type SyncResult struct {
	// Skipped is set when another cycle was already in flight for the same
	// local store; nothing else in the result is meaningful then.
	Skipped bool `json:"skipped"`

	Success bool `json:"success"`

	// HasChanges reports whether the remote contributed anything to the
	// local state.
	HasChanges bool `json:"hasChanges"`

	// Uploaded reports whether the merged state was pushed back.
	Uploaded bool `json:"uploaded"`

	ContentUploaded   int `json:"contentUploaded"`
	ContentDownloaded int `json:"contentDownloaded"`

	// Error holds the message recorded as lastSyncError when the cycle failed.
	Error string `json:"error,omitempty"`

	FinishedAt int64 `json:"finishedAt"`
}

// SyncStatus is the sync bookkeeping kept in local storage.
type SyncStatus struct {
	SyncEnabled   bool    `json:"syncEnabled"`
	SyncProvider  *string `json:"syncProvider"`
	LastSyncTime  *int64  `json:"lastSyncTime"`
	LastSyncError *string `json:"lastSyncError"`
}

// PositionReport is a reading position reported by the reader for one
// document. PositionKey addresses the positions map; ItemID, when set,
// also updates the matching archive item.
type PositionReport struct {
	ItemID      string           `json:"itemId,omitempty"`
	PositionKey string           `json:"positionKey,omitempty"`
	Position    ReadingPosition  `json:"position"`
	Progress    *ReadingProgress `json:"progress,omitempty"`
	OpenedAt    int64            `json:"openedAt,omitempty"`
}
