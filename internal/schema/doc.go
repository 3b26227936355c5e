// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package schema evolves the persisted local state version by version.
//
// Local state is a flat key/value record (the same keys the browser
// extension keeps in its storage area). Each step is a pure function over
// the raw record that returns a new record: the input shallow-merged with
// the step's own additions. Keys a step does not touch survive unchanged.
//
// Steps only move forward. A record written by a newer application version
// is refused with [ErrUnsupportedSchema] instead of guessing a downgrade.
package schema
