package models

// UploadResult describes a successful upload of the state blob.
type UploadResult struct {
	Success   bool   `json:"success"`
	UpdatedAt int64  `json:"updatedAt"`
	ETag      string `json:"etag,omitempty"`
}

// RemoteMetadata describes the state blob currently held by a provider
// without downloading it.
type RemoteMetadata struct {
	Exists    bool   `json:"exists"`
	UpdatedAt int64  `json:"updatedAt"`
	Size      int64  `json:"size"`
	ETag      string `json:"etag,omitempty"`
}

// ContentList is the listing of the remote content folder.
type ContentList struct {
	Files []string `json:"files"`
}
