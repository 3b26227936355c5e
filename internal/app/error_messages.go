// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the blob server handlers.
// They are written into HTTP response bodies, so wording stays identical
// across routes.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or the blob envelope fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	MsgInvalidAccount = "invalid account name"

	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is expired
	// or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	MsgStateNotFound   = "state not found"
	MsgContentNotFound = "content file not found"

	MsgBodyTooLarge = "request body too large"

	// MsgAccessDenied is returned when the blob directory refuses access.
	MsgAccessDenied = "access denied"

	MsgStorageUnavailable = "storage temporarily unavailable"

	MsgLoginAlreadyExists = "login already exists"

	// MsgInvalidCredentials covers both an unknown account and a wrong
	// password.
	MsgInvalidCredentials = "invalid login/password"
)
