// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ArchiveItemType is the kind of source an archived item was extracted from.
type ArchiveItemType string

const (
	ArchiveItemWeb   ArchiveItemType = "web"
	ArchiveItemPDF   ArchiveItemType = "pdf"
	ArchiveItemDOCX  ArchiveItemType = "docx"
	ArchiveItemEPUB  ArchiveItemType = "epub"
	ArchiveItemMOBI  ArchiveItemType = "mobi"
	ArchiveItemPaste ArchiveItemType = "paste"
)

// ArchiveItem is a single entry of the reading archive as it travels in the
// sync wire format. The locally cached extracted document is intentionally
// not part of this type: it never leaves the device.
type ArchiveItem struct {
	ID           string           `json:"id"`
	Type         ArchiveItemType  `json:"type"`
	Title        string           `json:"title"`
	SourceLabel  string           `json:"sourceLabel"`
	URL          string           `json:"url,omitempty"`
	CreatedAt    int64            `json:"createdAt"`
	LastOpenedAt int64            `json:"lastOpenedAt"`
	LastPosition *ReadingPosition `json:"lastPosition,omitempty"`
	Progress     *ReadingProgress `json:"progress,omitempty"`

	// CollectionIDs is a set; merge takes the union of both sides.
	CollectionIDs []string `json:"collectionIds,omitempty"`

	// FileHash identifies the cached source file in the content folder.
	FileHash     string `json:"fileHash,omitempty"`
	PasteContent string `json:"pasteContent,omitempty"`
}

// ReadingPosition marks how far a document has been read.
// A nil ChapterIndex is semantically chapter 0.
type ReadingPosition struct {
	BlockIndex    int   `json:"blockIndex"`
	CharOffset    int   `json:"charOffset"`
	Timestamp     int64 `json:"timestamp"`
	ChapterIndex  *int  `json:"chapterIndex,omitempty"`
	SentenceIndex *int  `json:"sentenceIndex,omitempty"`
	WordIndex     *int  `json:"wordIndex,omitempty"`
}

// Chapter returns the chapter index, treating a missing one as 0.
func (p ReadingPosition) Chapter() int {
	if p.ChapterIndex == nil {
		return 0
	}
	return *p.ChapterIndex
}

// ReadingProgress is the coarse "how much is done" marker shown in the
// archive list.
type ReadingProgress struct {
	Percent float64 `json:"percent"`
	Label   string  `json:"label,omitempty"`
}
