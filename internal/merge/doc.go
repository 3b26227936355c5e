// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package merge reconciles a local and a remote sync snapshot into one.
//
// The merge is pairwise (one local, one remote), pure over its inputs and
// idempotent: merging a snapshot with itself yields the same snapshot
// (apart from a fresh UpdatedAt) and reports no changes.
//
// Field policies:
//
//   - settings and the boolean flags: taken whole from the document with the
//     greater UpdatedAt, ties favour local;
//   - presets and custom themes: union by name, conflicting names resolved by
//     document recency;
//   - archive items: union by id; for an id on both sides the metadata comes
//     from the item with the greater LastOpenedAt, while LastPosition and
//     Progress are always the furthest of the two so that reopening an item
//     never regresses progress made on another device;
//   - positions: union by document key, furthest position wins.
//
// Merged collections keep local order and append remote-only entries in
// remote order.
package merge
