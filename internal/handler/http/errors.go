// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when
	// the request carries no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoAccountInContext means a protected handler ran without the auth
	// middleware in front of it.
	ErrNoAccountInContext = errors.New("no account in request context")

	ErrBodyTooLarge = errors.New("request body too large")
)
