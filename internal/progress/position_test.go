// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package progress

import (
	"testing"

	"github.com/MKhiriev/readsync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func pos(chapter *int, block int, ts int64) *models.ReadingPosition {
	return &models.ReadingPosition{ChapterIndex: chapter, BlockIndex: block, Timestamp: ts}
}

// ── IsPositionFurther ────────────────────────────────────────────────────────

func TestIsPositionFurther(t *testing.T) {
	tests := []struct {
		name string
		a, b *models.ReadingPosition
		want bool
	}{
		{name: "both nil", a: nil, b: nil, want: false},
		{name: "a nil", a: nil, b: pos(nil, 1, 0), want: false},
		{name: "b nil", a: pos(nil, 0, 0), b: nil, want: true},
		{name: "chapter dominates block", a: pos(intPtr(3), 0, 0), b: pos(intPtr(1), 100, 0), want: true},
		{name: "earlier chapter with larger block", a: pos(intPtr(1), 100, 0), b: pos(intPtr(3), 0, 0), want: false},
		{name: "same chapter larger block", a: pos(intPtr(2), 10, 0), b: pos(intPtr(2), 9, 0), want: true},
		{name: "missing chapter is zero", a: pos(nil, 5, 0), b: pos(intPtr(0), 4, 0), want: true},
		{name: "equal tuples", a: pos(intPtr(2), 7, 10), b: pos(intPtr(2), 7, 99), want: false},
		{name: "missing vs explicit zero equal", a: pos(nil, 7, 0), b: pos(intPtr(0), 7, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPositionFurther(tt.a, tt.b))
		})
	}
}

// ── FurtherPosition ──────────────────────────────────────────────────────────

func TestFurtherPosition_NilHandling(t *testing.T) {
	p := pos(nil, 1, 1)

	assert.Nil(t, FurtherPosition(nil, nil))
	assert.Same(t, p, FurtherPosition(nil, p))
	assert.Same(t, p, FurtherPosition(p, nil))
}

func TestFurtherPosition_TieBreaksOnNewerTimestamp(t *testing.T) {
	older := pos(intPtr(2), 5, 1000)
	newer := pos(intPtr(2), 5, 2000)

	assert.Same(t, newer, FurtherPosition(older, newer))
	assert.Same(t, newer, FurtherPosition(newer, older))
}

func TestFurtherPosition_Commutative(t *testing.T) {
	a := pos(intPtr(1), 100, 5000)
	b := pos(intPtr(3), 5, 1000)

	require.Same(t, b, FurtherPosition(a, b))
	assert.Same(t, FurtherPosition(a, b), FurtherPosition(b, a))
}

func TestFurtherPosition_FullTieReturnsFirst(t *testing.T) {
	a := pos(nil, 3, 10)
	b := pos(intPtr(0), 3, 10)

	assert.Same(t, a, FurtherPosition(a, b))
}

// ── FurtherProgress ──────────────────────────────────────────────────────────

func TestFurtherProgress(t *testing.T) {
	low := &models.ReadingProgress{Percent: 10, Label: "10%"}
	high := &models.ReadingProgress{Percent: 55.5, Label: "Chapter 4"}
	zero := &models.ReadingProgress{Percent: 0}

	assert.Nil(t, FurtherProgress(nil, nil))
	assert.Same(t, high, FurtherProgress(low, high))
	assert.Same(t, high, FurtherProgress(high, low))
	assert.Same(t, low, FurtherProgress(low, nil))
	assert.Same(t, low, FurtherProgress(nil, low))
	assert.Same(t, zero, FurtherProgress(nil, zero))

	tieA := &models.ReadingProgress{Percent: 40, Label: "a"}
	tieB := &models.ReadingProgress{Percent: 40, Label: "b"}
	assert.Same(t, tieA, FurtherProgress(tieA, tieB))
	assert.Same(t, tieB, FurtherProgress(tieB, tieA))
}
