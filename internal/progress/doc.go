// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package progress defines the total ordering over reading-progress markers.
//
// The comparators are pure and total: they accept nil on either side and
// never panic. They are shared by the merge engine, which must never let a
// device regress another device's progress, and by local progress tracking.
//
// Ordering is lexicographic over (chapter, block) with a missing chapter
// treated as chapter 0, so a later chapter always dominates a larger block
// index inside an earlier one.
package progress
