// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package progress

import "github.com/MKhiriev/readsync/models"

// IsPositionFurther reports whether a is strictly further into the document
// than b. A nil a is never further; a non-nil a is always further than a
// nil b. Equal (chapter, block) pairs are not further either way.
func IsPositionFurther(a, b *models.ReadingPosition) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}

	ac, bc := a.Chapter(), b.Chapter()
	if ac != bc {
		return ac > bc
	}
	return a.BlockIndex > b.BlockIndex
}

// FurtherPosition returns whichever of a and b is further. On an exact
// (chapter, block) tie the position with the newer Timestamp wins; if the
// timestamps tie as well a is returned.
func FurtherPosition(a, b *models.ReadingPosition) *models.ReadingPosition {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case IsPositionFurther(a, b):
		return a
	case IsPositionFurther(b, a):
		return b
	case b.Timestamp > a.Timestamp:
		return b
	default:
		return a
	}
}

// FurtherProgress returns the progress with the strictly higher Percent
// (nil counts as 0). Ties return a.
func FurtherProgress(a, b *models.ReadingProgress) *models.ReadingProgress {
	if a == nil && b == nil {
		return nil
	}
	if percentOf(b) > percentOf(a) {
		return b
	}
	if a == nil {
		return b
	}
	return a
}

func percentOf(p *models.ReadingProgress) float64 {
	if p == nil {
		return 0
	}
	return p.Percent
}
