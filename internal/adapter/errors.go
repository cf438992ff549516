// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrNoNewContent means the remote has nothing new for the credential.
	ErrNoNewContent = errors.New("no new content")
	// ErrAuthentication wraps every resolve failure: the remote could not be
	// reached or did not accept the credential.
	ErrAuthentication = errors.New("remote rejected or unreachable during resolve")
	// ErrNetwork wraps every fetch failure.
	ErrNetwork = errors.New("archive download failed")

	ErrUnauthorized     = errors.New("client unauthorized")
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrInvalidBaseURL   = errors.New("invalid base url")
	ErrUnknownRemote    = errors.New("unknown remote")
	ErrEmptyArchive     = errors.New("empty archive body")
	ErrDigestMismatch   = errors.New("archive digest mismatch")
)
