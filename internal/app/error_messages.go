// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the response messages shared by the reference sync
// server handlers and middleware.
package app

const (
	// MsgInvalidDataProvided is returned when the form body or its settings
	// field cannot be decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned for failures the client cannot
	// resolve.
	MsgInternalServerError = "internal server error"

	// MsgInvalidSyncKey is returned when the Authorization header does not
	// carry a configured sync key.
	MsgInvalidSyncKey = "invalid sync key"

	// MsgArchiveNotFound is returned by /v1/dlZip when no archive was
	// prepared for the key, or the requested name does not match it.
	MsgArchiveNotFound = "archive not found"
)
