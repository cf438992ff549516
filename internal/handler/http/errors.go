// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the authorization middleware and the form decoding.
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidSettings is returned when the settings form field of
	// /v1/getZipFileName is not valid JSON.
	ErrInvalidSettings = errors.New("invalid `settings` form field")
)
